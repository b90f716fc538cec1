package router

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	_ "HRMS-Lite/docs"
	"HRMS-Lite/handlers"
	"HRMS-Lite/models"
)

// Handlers groups everything SetupRoutes mounts.
type Handlers struct {
	Employee   *handlers.EmployeeHandler
	Attendance *handlers.AttendanceHandler
	Dashboard  *handlers.DashboardHandler
}

func SetupRoutes(app *fiber.App, h Handlers) {
	log.Println("Registering routes...")

	// Health check & Docs
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(models.HealthResponse{
			Message: "HRMS Lite API",
			Status:  "running",
			Docs:    "/docs/index.html",
		})
	})
	app.Get("/docs/*", swagger.HandlerDefault)

	api := app.Group("/api")

	employees := api.Group("/employees")
	employees.Get("/", h.Employee.ListEmployees)
	employees.Post("/", h.Employee.CreateEmployee)
	employees.Get("/:id/attendance", h.Employee.GetEmployeeAttendance)
	employees.Get("/:id/badge", h.Employee.GetEmployeeBadge)
	employees.Delete("/:id", h.Employee.DeleteEmployee)

	attendance := api.Group("/attendance")
	attendance.Get("/", h.Attendance.ListAttendance)
	attendance.Post("/", h.Attendance.MarkAttendance)

	api.Get("/dashboard/summary", h.Dashboard.GetSummary)

	log.Println("Routes registered")
}
