package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	dberrors "github.com/scan-track/fridge-service/internal/errors"
	"github.com/scan-track/fridge-service/internal/models"
	"github.com/scan-track/fridge-service/internal/service"
)

// InventoryHandler handles inventory and product lookup HTTP requests
type InventoryHandler struct {
	inventoryService service.InventoryService
	lookupService    service.LookupService
	logger           *slog.Logger
	validator        *validator.Validate
}

// NewInventoryHandler creates a new inventory handler
func NewInventoryHandler(
	inventoryService service.InventoryService,
	lookupService service.LookupService,
	logger *slog.Logger,
) *InventoryHandler {
	return &InventoryHandler{
		inventoryService: inventoryService,
		lookupService:    lookupService,
		logger:           logger,
		validator:        validator.New(),
	}
}

// respondError maps service and database errors to HTTP status codes
func (h *InventoryHandler) respondError(c *gin.Context, err error, operation string) {
	switch {
	case dberrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "not_found",
			Message: "Requested resource does not exist",
		})

	case dberrors.IsConflict(err):
		c.JSON(http.StatusConflict, models.ErrorResponse{
			Error:   "conflict",
			Message: err.Error(),
		})

	case dberrors.IsInvalidData(err), errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: err.Error(),
		})

	default:
		h.logger.Error("Request failed", "operation", operation, "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "internal_error",
			Message: "Failed to " + operation,
		})
	}
}
