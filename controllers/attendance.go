package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/janvichoudhary08/FactoryManageServer/condb"
	"github.com/janvichoudhary08/FactoryManageServer/middleware"
	"github.com/janvichoudhary08/FactoryManageServer/models"
	"github.com/janvichoudhary08/FactoryManageServer/utils"
	"go.mongodb.org/mongo-driver/bson"
)

// monthKey and dayKey build the date part of the composite keys used by
// attendance, progress and packing lookups.
func monthKey(f *utils.Fields, month, year any) bson.M {
	return bson.M{
		"month": f.Int("month", month),
		"year":  f.Int("year", year),
	}
}

func dayKey(f *utils.Fields, day, month, year any) bson.M {
	key := monthKey(f, month, year)
	key["day"] = f.Int("day", day)
	return key
}

func (h *Controller) findAttendance(c *fiber.Ctx, op string, filter bson.M) error {
	ctx, cancel := h.ctx(c)
	defer cancel()

	rows := []models.Attendance{}
	if err := h.coll(condb.Attendance).Find(ctx, filter, &rows); err != nil {
		return middleware.QueryFailure(op, "Error getting attendance", err)
	}
	return c.JSON(fiber.Map{"Result": rows})
}

// GET /getAttendance/:id?month=&year=
func (h *Controller) GetAttendance(c *fiber.Ctx) error {
	const op = "get attendance"

	var f utils.Fields
	filter := monthKey(&f, c.Query("month"), c.Query("year"))
	if err := f.Err(); err != nil {
		return middleware.BadRequest(op, err)
	}
	filter["employee_id"] = c.Params("id")

	return h.findAttendance(c, op, filter)
}

// GET /getDayAttendance/:id/:year/:month/:day
func (h *Controller) GetDayAttendance(c *fiber.Ctx) error {
	const op = "get day attendance"

	var f utils.Fields
	filter := dayKey(&f, c.Params("day"), c.Params("month"), c.Params("year"))
	if err := f.Err(); err != nil {
		return middleware.BadRequest(op, err)
	}
	filter["employee_id"] = c.Params("id")

	return h.findAttendance(c, op, filter)
}

// SubmitAttendance always inserts; resubmitting a day adds another row.
func (h *Controller) SubmitAttendance(c *fiber.Ctx) error {
	const op = "submit attendance"

	var in models.AttendanceInput
	if err := c.BodyParser(&in); err != nil {
		return middleware.BadRequest(op, err)
	}

	var f utils.Fields
	row := models.Attendance{
		EmployeeID: c.Params("id"),
		Month:      f.Int("month", in.Month),
		Day:        f.Int("day", in.Day),
		Year:       f.Int("year", in.Year),
		Status:     in.Status,
	}
	if err := f.Err(); err != nil {
		return middleware.BadRequest(op, err)
	}

	ctx, cancel := h.ctx(c)
	defer cancel()
	if _, err := h.coll(condb.Attendance).InsertOne(ctx, row); err != nil {
		return middleware.QueryFailure(op, "Error in adding attendance", err)
	}

	return c.JSON(fiber.Map{"Status": "Success"})
}

// PUT /updateAttendance/:id/:day/:month/:year
func (h *Controller) UpdateAttendance(c *fiber.Ctx) error {
	const op = "update attendance"

	var f utils.Fields
	filter := dayKey(&f, c.Params("day"), c.Params("month"), c.Params("year"))
	if err := f.Err(); err != nil {
		return middleware.BadRequest(op, err)
	}
	filter["employee_id"] = c.Params("id")

	var in struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&in); err != nil {
		return middleware.BadRequest(op, err)
	}

	ctx, cancel := h.ctx(c)
	defer cancel()

	n, err := h.coll(condb.Attendance).UpdateOne(ctx, filter, bson.M{"status": in.Status})
	if err != nil {
		return middleware.QueryFailure(op, "Error updating attendance", err)
	}
	if n == 0 {
		return middleware.NotFound(op, "Attendance not found")
	}

	return c.JSON(fiber.Map{"success": true, "message": "Attendance updated successfully"})
}
