package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/scan-track/fridge-service/internal/models"
)

// ReminderRunner triggers one expiration reminder sweep.
type ReminderRunner interface {
	RunOnce(ctx context.Context) (int, error)
}

// ReminderHandler handles internal reminder trigger requests
type ReminderHandler struct {
	reminder ReminderRunner
	logger   *slog.Logger
}

// NewReminderHandler creates a new reminder handler
func NewReminderHandler(reminder ReminderRunner, logger *slog.Logger) *ReminderHandler {
	return &ReminderHandler{
		reminder: reminder,
		logger:   logger,
	}
}

// Run handles POST /api/reminders/run
func (h *ReminderHandler) Run(c *gin.Context) {
	sent, err := h.reminder.RunOnce(c.Request.Context())
	if err != nil {
		h.logger.Error("Reminder sweep failed", "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "internal_error",
			Message: "Reminder sweep failed",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"reminders_sent": sent,
	})
}
