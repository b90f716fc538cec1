package handlers

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	qrcode "github.com/skip2/go-qrcode"

	"HRMS-Lite/models"
)

// EmployeeDirectory is what the employee routes need from the service layer.
type EmployeeDirectory interface {
	ListEmployees(ctx context.Context, filter models.EmployeeFilter) ([]models.Employee, error)
	AddEmployee(ctx context.Context, input models.EmployeeCreatePayload) (*models.Employee, error)
	GetEmployee(ctx context.Context, id string) (*models.Employee, error)
	RemoveEmployee(ctx context.Context, id string) (*models.DeletionResult, error)
}

const (
	defaultBadgeSize = 256
	minBadgeSize     = 64
	maxBadgeSize     = 1024
)

type EmployeeHandler struct {
	directory EmployeeDirectory
	ledger    AttendanceLedger
	timeout   time.Duration
}

func NewEmployeeHandler(directory EmployeeDirectory, ledger AttendanceLedger, timeout time.Duration) *EmployeeHandler {
	return &EmployeeHandler{directory: directory, ledger: ledger, timeout: timeout}
}

// ListEmployees godoc
// @Summary List employees
// @Description Returns every employee, newest first. search matches name or department, case-insensitive.
// @Tags Employees
// @Produce json
// @Param search query string false "Name or department fragment"
// @Success 200 {array} models.Employee
// @Failure 500 {object} models.ErrorResponse
// @Router /employees [get]
func (h *EmployeeHandler) ListEmployees(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), h.timeout)
	defer cancel()

	employees, err := h.directory.ListEmployees(ctx, models.EmployeeFilter{Search: c.Query("search")})
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(employees)
}

// CreateEmployee godoc
// @Summary Add employee
// @Description Employee code and email must be unique.
// @Tags Employees
// @Accept json
// @Produce json
// @Param employee body models.EmployeeCreatePayload true "New employee"
// @Success 201 {object} models.Employee
// @Failure 400 {object} models.ErrorResponse "Validation error or duplicate code/email"
// @Failure 500 {object} models.ErrorResponse
// @Router /employees [post]
func (h *EmployeeHandler) CreateEmployee(c *fiber.Ctx) error {
	var payload models.EmployeeCreatePayload
	if err := c.BodyParser(&payload); err != nil {
		return badBody(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Context(), h.timeout)
	defer cancel()

	employee, err := h.directory.AddEmployee(ctx, payload)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(employee)
}

// DeleteEmployee godoc
// @Summary Delete employee
// @Description Deletes the employee and every attendance record that references it.
// @Tags Employees
// @Produce json
// @Param id path string true "Employee ID"
// @Success 200 {object} models.DeletionResult
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /employees/{id} [delete]
func (h *EmployeeHandler) DeleteEmployee(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), h.timeout)
	defer cancel()

	result, err := h.directory.RemoveEmployee(ctx, c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(result)
}

// GetEmployeeAttendance godoc
// @Summary Attendance of one employee
// @Description Latest date first. Unknown employees yield an empty list.
// @Tags Employees
// @Produce json
// @Param id path string true "Employee ID"
// @Success 200 {array} models.Attendance
// @Failure 500 {object} models.ErrorResponse
// @Router /employees/{id}/attendance [get]
func (h *EmployeeHandler) GetEmployeeAttendance(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), h.timeout)
	defer cancel()

	records, err := h.ledger.ListAttendanceForEmployee(ctx, c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(records)
}

// GetEmployeeBadge godoc
// @Summary Employee badge
// @Description PNG QR code carrying the employee code, for kiosk check-in.
// @Tags Employees
// @Produce png
// @Param id path string true "Employee ID"
// @Param size query int false "Edge length in pixels (64-1024)" default(256)
// @Success 200 {file} binary
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /employees/{id}/badge [get]
func (h *EmployeeHandler) GetEmployeeBadge(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), h.timeout)
	defer cancel()

	employee, err := h.directory.GetEmployee(ctx, c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}

	png, err := qrcode.Encode(employee.EmployeeCode, qrcode.Medium, badgeSize(c.Query("size")))
	if err != nil {
		return writeError(c, err)
	}

	c.Set(fiber.HeaderContentType, "image/png")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="`+badgeFilename(employee.EmployeeCode)+`"`)
	return c.Status(fiber.StatusOK).Send(png)
}

// badgeFilename keeps only characters that are safe inside a quoted
// Content-Disposition filename.
func badgeFilename(code string) string {
	safe := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '.':
			return r
		default:
			return '_'
		}
	}, code)
	if safe == "" {
		safe = "badge"
	}
	return safe + ".png"
}

func badgeSize(raw string) int {
	size, err := strconv.Atoi(raw)
	if err != nil {
		return defaultBadgeSize
	}
	if size < minBadgeSize {
		return minBadgeSize
	}
	if size > maxBadgeSize {
		return maxBadgeSize
	}
	return size
}
