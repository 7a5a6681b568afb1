package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/janvichoudhary08/FactoryManageServer/condb"
	"github.com/janvichoudhary08/FactoryManageServer/middleware"
	"github.com/janvichoudhary08/FactoryManageServer/models"
	"github.com/janvichoudhary08/FactoryManageServer/utils"
	"go.mongodb.org/mongo-driver/bson"
)

func (h *Controller) GetSizes(c *fiber.Ctx) error {
	ctx, cancel := h.ctx(c)
	defer cancel()

	sizes := []models.Size{}
	if err := h.coll(condb.Sizes).Find(ctx, bson.M{}, &sizes); err != nil {
		return middleware.QueryFailure("list sizes", "Could not retrieve sizes", err)
	}

	return c.JSON(fiber.Map{"status": "Success", "Result": sizes})
}

func parseSize(in models.SizeInput) (models.Size, error) {
	var f utils.Fields
	s := models.Size{
		Sizeno:   f.OptString("sizeno", in.Sizeno),
		Sizecode: f.OptString("sizecode", in.Sizecode),
	}
	return s, f.Err()
}

func (h *Controller) AddSize(c *fiber.Ctx) error {
	const op = "add size"

	var in models.SizeInput
	if err := c.BodyParser(&in); err != nil {
		return middleware.BadRequest(op, err)
	}
	size, err := parseSize(in)
	if err != nil {
		return middleware.BadRequest(op, err)
	}

	ctx, cancel := h.ctx(c)
	defer cancel()
	if _, err := h.coll(condb.Sizes).InsertOne(ctx, size); err != nil {
		return middleware.QueryFailure(op, "Error adding size entry", err)
	}

	return c.JSON(fiber.Map{"Status": "Size entry added successfully"})
}

func (h *Controller) UpdateSize(c *fiber.Ctx) error {
	const op = "update size"

	id, err := idParam(c, op, "id")
	if err != nil {
		return err
	}

	var in models.SizeInput
	if err := c.BodyParser(&in); err != nil {
		return middleware.BadRequest(op, err)
	}
	size, err := parseSize(in)
	if err != nil {
		return middleware.BadRequest(op, err)
	}

	ctx, cancel := h.ctx(c)
	defer cancel()

	n, err := h.coll(condb.Sizes).UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"sizeno":   size.Sizeno,
		"sizecode": size.Sizecode,
	})
	if err != nil {
		return middleware.QueryFailure(op, "Error updating size entry", err)
	}
	if n == 0 {
		return middleware.NotFound(op, "Size entry not found")
	}

	return c.JSON(fiber.Map{"success": true, "message": "Size entry updated successfully"})
}

func (h *Controller) DeleteSize(c *fiber.Ctx) error {
	const op = "delete size"

	id, err := idParam(c, op, "id")
	if err != nil {
		return err
	}

	ctx, cancel := h.ctx(c)
	defer cancel()

	n, err := h.coll(condb.Sizes).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return middleware.QueryFailure(op, "Error deleting size entry", err)
	}
	if n == 0 {
		return middleware.NotFound(op, "Size entry not found")
	}

	return c.JSON(fiber.Map{"Status": "Success"})
}
