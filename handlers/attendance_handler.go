package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"HRMS-Lite/models"
)

type AttendanceLedger interface {
	ListAttendance(ctx context.Context) ([]models.AttendanceWithEmployee, error)
	MarkAttendance(ctx context.Context, input models.AttendanceCreatePayload) (*models.Attendance, error)
	ListAttendanceForEmployee(ctx context.Context, id string) ([]models.Attendance, error)
}

type AttendanceHandler struct {
	ledger  AttendanceLedger
	timeout time.Duration
}

func NewAttendanceHandler(ledger AttendanceLedger, timeout time.Duration) *AttendanceHandler {
	return &AttendanceHandler{ledger: ledger, timeout: timeout}
}

// ListAttendance godoc
// @Summary List attendance
// @Description Every record in the order it was marked, with the employee's code and name.
// @Tags Attendance
// @Produce json
// @Success 200 {array} models.AttendanceWithEmployee
// @Failure 500 {object} models.ErrorResponse
// @Router /attendance [get]
func (h *AttendanceHandler) ListAttendance(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), h.timeout)
	defer cancel()

	records, err := h.ledger.ListAttendance(ctx)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(records)
}

// MarkAttendance godoc
// @Summary Mark attendance
// @Description One record per employee per date. status defaults to Present.
// @Tags Attendance
// @Accept json
// @Produce json
// @Param attendance body models.AttendanceCreatePayload true "Attendance"
// @Success 201 {object} models.Attendance
// @Failure 400 {object} models.ErrorResponse "Validation error or attendance already recorded for this date"
// @Failure 404 {object} models.ErrorResponse "Employee not found"
// @Failure 500 {object} models.ErrorResponse
// @Router /attendance [post]
func (h *AttendanceHandler) MarkAttendance(c *fiber.Ctx) error {
	var payload models.AttendanceCreatePayload
	if err := c.BodyParser(&payload); err != nil {
		return badBody(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Context(), h.timeout)
	defer cancel()

	record, err := h.ledger.MarkAttendance(ctx, payload)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(record)
}
