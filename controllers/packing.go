package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/janvichoudhary08/FactoryManageServer/middleware"
	"github.com/janvichoudhary08/FactoryManageServer/utils"
)

// Packing views are progress records selected by their packed flag.

// GET /getPacking/:packed?month=&year=
func (h *Controller) GetPacking(c *fiber.Ctx) error {
	const op = "get packing"

	var f utils.Fields
	filter := monthKey(&f, c.Query("month"), c.Query("year"))
	if err := f.Err(); err != nil {
		return middleware.BadRequest(op, err)
	}
	filter["packed"] = c.Params("packed")

	return h.findProgress(c, op, "Error getting packing details", filter)
}

// GET /getDayPacking/:packed/:day/:month/:year
func (h *Controller) GetDayPacking(c *fiber.Ctx) error {
	const op = "get day packing"

	var f utils.Fields
	filter := dayKey(&f, c.Params("day"), c.Params("month"), c.Params("year"))
	if err := f.Err(); err != nil {
		return middleware.BadRequest(op, err)
	}
	filter["packed"] = c.Params("packed")

	return h.findProgress(c, op, "Error getting packing details", filter)
}
