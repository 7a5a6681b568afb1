package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/janvichoudhary08/FactoryManageServer/condb"
	"github.com/janvichoudhary08/FactoryManageServer/middleware"
	"github.com/janvichoudhary08/FactoryManageServer/models"
	"github.com/janvichoudhary08/FactoryManageServer/utils"
	"go.mongodb.org/mongo-driver/bson"
)

func (h *Controller) findProgress(c *fiber.Ctx, op, msg string, filter bson.M) error {
	ctx, cancel := h.ctx(c)
	defer cancel()

	rows := []models.Progress{}
	if err := h.coll(condb.Progress).Find(ctx, filter, &rows); err != nil {
		return middleware.QueryFailure(op, msg, err)
	}
	return c.JSON(fiber.Map{"Result": rows})
}

func (h *Controller) SubmitProgress(c *fiber.Ctx) error {
	const op = "submit progress"

	var in models.ProgressInput
	if err := c.BodyParser(&in); err != nil {
		return middleware.BadRequest(op, err)
	}

	var f utils.Fields
	row := models.Progress{
		EmpID:    c.Params("id"),
		Month:    f.Int("month", in.Month),
		Day:      f.Int("day", in.Day),
		Year:     f.Int("year", in.Year),
		Quantity: f.OptFloat("quantity", in.Quantity),
		Sizeno:   f.OptString("sizeno", in.Sizeno),
		Value:    f.OptFloat("value", in.Value),
		Packed:   f.OptString("packed", in.Packed),
	}
	if err := f.Err(); err != nil {
		return middleware.BadRequest(op, err)
	}

	ctx, cancel := h.ctx(c)
	defer cancel()
	if _, err := h.coll(condb.Progress).InsertOne(ctx, row); err != nil {
		return middleware.QueryFailure(op, "Error in adding progress", err)
	}

	return c.JSON(fiber.Map{"Status": "Progress added successfully"})
}

// GET /getProgress/:id?month=&year=
func (h *Controller) GetProgress(c *fiber.Ctx) error {
	const op = "get progress"

	var f utils.Fields
	filter := monthKey(&f, c.Query("month"), c.Query("year"))
	if err := f.Err(); err != nil {
		return middleware.BadRequest(op, err)
	}
	filter["emp_id"] = c.Params("id")

	return h.findProgress(c, op, "Error getting progress details", filter)
}

// GET /getDayProgress/:id/:day/:month/:year
func (h *Controller) GetDayProgress(c *fiber.Ctx) error {
	const op = "get day progress"

	var f utils.Fields
	filter := dayKey(&f, c.Params("day"), c.Params("month"), c.Params("year"))
	if err := f.Err(); err != nil {
		return middleware.BadRequest(op, err)
	}
	filter["emp_id"] = c.Params("id")

	return h.findProgress(c, op, "Error getting day-wise progress details", filter)
}

// UpdateProgress matches on both emp_id and _id, so a record id under another
// employee is reported as not found.
func (h *Controller) UpdateProgress(c *fiber.Ctx) error {
	const op = "update progress"

	id, err := idParam(c, op, "id")
	if err != nil {
		return err
	}

	var in models.ProgressInput
	if err := c.BodyParser(&in); err != nil {
		return middleware.BadRequest(op, err)
	}

	var f utils.Fields
	set := bson.M{
		"quantity": f.OptFloat("quantity", in.Quantity),
		"sizeno":   f.OptString("sizeno", in.Sizeno),
		"value":    f.OptFloat("value", in.Value),
		"packed":   f.OptString("packed", in.Packed),
	}
	if err := f.Err(); err != nil {
		return middleware.BadRequest(op, err)
	}

	ctx, cancel := h.ctx(c)
	defer cancel()

	filter := bson.M{"emp_id": c.Params("emp_id"), "_id": id}
	n, err := h.coll(condb.Progress).UpdateOne(ctx, filter, set)
	if err != nil {
		return middleware.QueryFailure(op, "Error updating progress", err)
	}
	if n == 0 {
		return middleware.NotFound(op, "Progress not found")
	}

	return c.JSON(fiber.Map{"success": true, "message": "Progress updated successfully"})
}

func (h *Controller) DeleteProgress(c *fiber.Ctx) error {
	const op = "delete progress"

	id, err := idParam(c, op, "id")
	if err != nil {
		return err
	}

	ctx, cancel := h.ctx(c)
	defer cancel()

	filter := bson.M{"emp_id": c.Params("emp_id"), "_id": id}
	n, err := h.coll(condb.Progress).DeleteOne(ctx, filter)
	if err != nil {
		return middleware.QueryFailure(op, "Delete progress error", err)
	}
	if n == 0 {
		return middleware.NotFound(op, "Progress not found")
	}

	return c.JSON(fiber.Map{"Status": "Success"})
}
