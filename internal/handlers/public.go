package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/scan-track/fridge-service/internal/models"
	"github.com/scan-track/fridge-service/internal/view"
)

// LookupProduct handles GET /api/product
func (h *InventoryHandler) LookupProduct(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "missing_code",
			Message: "Query parameter 'code' is required",
		})
		return
	}

	page := 1
	if raw := c.Query("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "invalid_page",
				Message: "Query parameter 'page' must be an integer",
			})
			return
		}
		page = parsed
	}

	result, err := h.lookupService.Lookup(c.Request.Context(), code, page)
	if err != nil {
		h.respondError(c, err, "look up product")
		return
	}

	if result.Total == 0 {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "product_not_found",
			Message: "No product matched the given code or keyword",
		})
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetItems handles GET /api/items
func (h *InventoryHandler) GetItems(c *gin.Context) {
	refrigeratorID, err := uuid.Parse(c.Query("refrigerator_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_refrigerator_id",
			Message: "Query parameter 'refrigerator_id' must be a UUID",
		})
		return
	}

	params := view.DefaultParams()
	params.Search = c.Query("search")
	params.RangeStart = c.Query("expires_from")
	params.RangeEnd = c.Query("expires_to")

	if raw := c.Query("filter"); raw != "" {
		filter, ok := view.ParseFilterOption(raw)
		if !ok {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "invalid_filter",
				Message: "Filter must be one of: all, expired, unexpired",
			})
			return
		}
		params.Filter = filter
	}

	if raw := c.Query("sort"); raw != "" {
		sort, ok := view.ParseSortOption(raw)
		if !ok {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "invalid_sort",
				Message: "Sort must be one of: expiry_ascending, created_descending, created_ascending, name_ascending",
			})
			return
		}
		params.Sort = sort
	}

	result, err := h.inventoryService.ListItems(c.Request.Context(), refrigeratorID, params)
	if err != nil {
		h.respondError(c, err, "list inventory")
		return
	}

	c.JSON(http.StatusOK, result)
}

// CreateItem handles POST /api/items
func (h *InventoryHandler) CreateItem(c *gin.Context) {
	var req models.CreateItemRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request format",
			Details: map[string]interface{}{"validation_error": err.Error()},
		})
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "validation_failed",
			Message: "Request validation failed",
			Details: map[string]interface{}{"validation_error": err.Error()},
		})
		return
	}

	item, err := h.inventoryService.CreateItem(c.Request.Context(), &req)
	if err != nil {
		h.respondError(c, err, "create item")
		return
	}

	c.JSON(http.StatusCreated, item)
}

// UpdateItem handles PATCH /api/items/:id
func (h *InventoryHandler) UpdateItem(c *gin.Context) {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_item_id",
			Message: "Item id must be a UUID",
		})
		return
	}

	var req models.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request format",
			Details: map[string]interface{}{"validation_error": err.Error()},
		})
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "validation_failed",
			Message: "Request validation failed",
			Details: map[string]interface{}{"validation_error": err.Error()},
		})
		return
	}

	item, err := h.inventoryService.UpdateItem(c.Request.Context(), itemID, &req)
	if err != nil {
		h.respondError(c, err, "update item")
		return
	}

	c.JSON(http.StatusOK, item)
}

// DeleteItem handles DELETE /api/items/:id
func (h *InventoryHandler) DeleteItem(c *gin.Context) {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_item_id",
			Message: "Item id must be a UUID",
		})
		return
	}

	if err := h.inventoryService.DeleteItem(c.Request.Context(), itemID); err != nil {
		h.respondError(c, err, "delete item")
		return
	}

	c.Status(http.StatusNoContent)
}

// CreateRefrigerator handles POST /api/refrigerators
func (h *InventoryHandler) CreateRefrigerator(c *gin.Context) {
	var req models.CreateRefrigeratorRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request format",
			Details: map[string]interface{}{"validation_error": err.Error()},
		})
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "validation_failed",
			Message: "Request validation failed",
			Details: map[string]interface{}{"validation_error": err.Error()},
		})
		return
	}

	fridge, err := h.inventoryService.CreateRefrigerator(c.Request.Context(), req.Name)
	if err != nil {
		h.respondError(c, err, "create refrigerator")
		return
	}

	c.JSON(http.StatusCreated, fridge)
}

// ListRefrigerators handles GET /api/refrigerators
func (h *InventoryHandler) ListRefrigerators(c *gin.Context) {
	fridges, err := h.inventoryService.ListRefrigerators(c.Request.Context())
	if err != nil {
		h.respondError(c, err, "list refrigerators")
		return
	}

	c.JSON(http.StatusOK, gin.H{"refrigerators": fridges})
}
