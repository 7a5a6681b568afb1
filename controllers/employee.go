package controllers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/janvichoudhary08/FactoryManageServer/condb"
	"github.com/janvichoudhary08/FactoryManageServer/middleware"
	"github.com/janvichoudhary08/FactoryManageServer/models"
	"github.com/janvichoudhary08/FactoryManageServer/utils"
	"go.mongodb.org/mongo-driver/bson"
)

// CreateEmployee stores the joining date exactly as sent.
func (h *Controller) CreateEmployee(c *fiber.Ctx) error {
	const op = "create employee"

	var in models.EmployeeInput
	if err := c.BodyParser(&in); err != nil {
		return middleware.BadRequest(op, err)
	}

	var f utils.Fields
	emp := models.Employee{
		Name:   in.Name,
		Date:   in.JoiningDate,
		Day:    in.Weekday,
		Salary: f.OptFloat("salary", in.Salary),
	}
	if err := f.Err(); err != nil {
		return middleware.BadRequest(op, err)
	}
	log.Printf("new employee %s (%s)", emp.Name, emp.Date)

	ctx, cancel := h.ctx(c)
	defer cancel()
	if _, err := h.coll(condb.Employees).InsertOne(ctx, emp); err != nil {
		return middleware.QueryFailure(op, "Could not add entry", err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"status": "Success"})
}

func (h *Controller) GetEmployees(c *fiber.Ctx) error {
	ctx, cancel := h.ctx(c)
	defer cancel()

	employees := []models.Employee{}
	if err := h.coll(condb.Employees).Find(ctx, bson.M{}, &employees); err != nil {
		return middleware.QueryFailure("list employees", "Could not retrieve employees", err)
	}

	return c.JSON(fiber.Map{"status": "Success", "Result": employees})
}

func (h *Controller) GetEmployeeByID(c *fiber.Ctx) error {
	const op = "get employee"

	id, err := idParam(c, op, "id")
	if err != nil {
		return err
	}

	ctx, cancel := h.ctx(c)
	defer cancel()

	var emp models.Employee
	err = h.coll(condb.Employees).FindOne(ctx, bson.M{"_id": id}, &emp)
	if errors.Is(err, condb.ErrNotFound) {
		return middleware.NotFound(op, "Employee not found")
	}
	if err != nil {
		return middleware.QueryFailure(op, "Error getting employee details", err)
	}

	return c.JSON(fiber.Map{"Result": emp})
}

// UpdateEmployee rewrites all fields and normalizes the joining date to
// YYYY-MM-DD. Writing values identical to the stored ones reports 404, the
// same as a missing id.
func (h *Controller) UpdateEmployee(c *fiber.Ctx) error {
	const op = "update employee"

	id, err := idParam(c, op, "id")
	if err != nil {
		return err
	}

	var in models.EmployeeInput
	if err := c.BodyParser(&in); err != nil {
		return middleware.BadRequest(op, err)
	}

	var f utils.Fields
	set := bson.M{
		"name":   in.Name,
		"date":   f.Date("joiningDate", in.JoiningDate),
		"day":    in.Weekday,
		"salary": f.OptFloat("salary", in.Salary),
	}
	if err := f.Err(); err != nil {
		return middleware.BadRequest(op, err)
	}

	ctx, cancel := h.ctx(c)
	defer cancel()

	n, err := h.coll(condb.Employees).UpdateOne(ctx, bson.M{"_id": id}, set)
	if err != nil {
		return middleware.QueryFailure(op, "Error updating employee", err)
	}
	if n == 0 {
		return middleware.NotFound(op, "Employee not found")
	}

	return c.JSON(fiber.Map{"Status": "Success"})
}

func (h *Controller) DeleteEmployee(c *fiber.Ctx) error {
	const op = "delete employee"

	id, err := idParam(c, op, "id")
	if err != nil {
		return err
	}

	ctx, cancel := h.ctx(c)
	defer cancel()

	n, err := h.coll(condb.Employees).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return middleware.QueryFailure(op, "Error deleting employee", err)
	}
	if n == 0 {
		return middleware.NotFound(op, "Employee not found")
	}

	return c.JSON(fiber.Map{"Status": "Success"})
}

func (h *Controller) GetSalary(c *fiber.Ctx) error {
	const op = "get salary"

	id, err := idParam(c, op, "id")
	if err != nil {
		return err
	}

	ctx, cancel := h.ctx(c)
	defer cancel()

	var emp models.Employee
	err = h.coll(condb.Employees).FindOne(ctx, bson.M{"_id": id}, &emp)
	if errors.Is(err, condb.ErrNotFound) {
		return middleware.NotFound(op, "Employee not found")
	}
	if err != nil {
		return middleware.QueryFailure(op, "Error getting employee details", err)
	}

	return c.JSON(fiber.Map{"Salary": emp.Salary})
}
