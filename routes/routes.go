package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/janvichoudhary08/FactoryManageServer/controllers"
)

func RegisterRoutes(app *fiber.App, h *controllers.Controller) {

	app.Get("/", h.Welcome)
	app.Get("/health", h.Health)

	//employee
	app.Post("/create", h.CreateEmployee)
	app.Get("/getEmployee", h.GetEmployees)
	app.Get("/get/:id", h.GetEmployeeByID)
	app.Put("/update/:id", h.UpdateEmployee)
	app.Delete("/delete/:id", h.DeleteEmployee)
	app.Get("/getSalary/:id", h.GetSalary)

	//sizes
	app.Get("/getSizes", h.GetSizes)
	app.Post("/addsize", h.AddSize)
	app.Put("/updateSizeEntry/:id", h.UpdateSize)
	app.Delete("/deleteSizeEntry/:id", h.DeleteSize)

	//attendance
	app.Get("/getAttendance/:id", h.GetAttendance)
	app.Get("/getDayAttendance/:id/:year/:month/:day", h.GetDayAttendance)
	app.Post("/submitAttendance/:id", h.SubmitAttendance)
	app.Put("/updateAttendance/:id/:day/:month/:year", h.UpdateAttendance)

	//progress
	app.Post("/submitProgress/:id", h.SubmitProgress)
	app.Get("/getProgress/:id", h.GetProgress)
	app.Get("/getDayProgress/:id/:day/:month/:year", h.GetDayProgress)
	app.Put("/updateProgress/:emp_id/:id", h.UpdateProgress)
	app.Delete("/deleteProgress/:emp_id/:id", h.DeleteProgress)

	//packing
	app.Get("/getPacking/:packed", h.GetPacking)
	app.Get("/getDayPacking/:packed/:day/:month/:year", h.GetDayPacking)

	// Login
	app.Post("/login", h.Login)
}
