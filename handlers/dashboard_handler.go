package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"HRMS-Lite/models"
)

type SummaryProvider interface {
	Summary(ctx context.Context, date string) (*models.DashboardSummary, error)
}

type DashboardHandler struct {
	summary SummaryProvider
	timeout time.Duration
}

func NewDashboardHandler(summary SummaryProvider, timeout time.Duration) *DashboardHandler {
	return &DashboardHandler{summary: summary, timeout: timeout}
}

// GetSummary godoc
// @Summary Dashboard counters
// @Description Employee and department totals plus the status counts for one day.
// @Tags Dashboard
// @Produce json
// @Param date query string false "YYYY-MM-DD, defaults to today"
// @Success 200 {object} models.DashboardSummary
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /dashboard/summary [get]
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), h.timeout)
	defer cancel()

	summary, err := h.summary.Summary(ctx, c.Query("date"))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(summary)
}
