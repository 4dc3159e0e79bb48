package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stockbill/backend/internal/application/inventory"
	"github.com/stockbill/backend/internal/interfaces/http/dto"
)

// InventoryHandler handles stock batch HTTP requests
type InventoryHandler struct {
	BaseHandler
	inventoryService *inventory.InventoryService
}

// NewInventoryHandler creates a new inventory handler
func NewInventoryHandler(inventoryService *inventory.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService}
}

// RegisterRoutes registers inventory routes on the given router group
func (h *InventoryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	inv := rg.Group("/inventory")
	{
		inv.POST("", h.Add)
		inv.GET("", h.List)
		inv.DELETE("/:id", h.Delete)
	}
}

// Add records a received stock batch, merging quantity into an existing
// batch when the product already has one with the same batch number
func (h *InventoryHandler) Add(c *gin.Context) {
	var req inventory.AddBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	result, err := h.inventoryService.AddOrMerge(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	if result.Merged {
		h.Success(c, result)
		return
	}
	h.Created(c, result)
}

// List returns all stock batches joined with their product data
func (h *InventoryHandler) List(c *gin.Context) {
	batches, err := h.inventoryService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, batches)
}

// Delete removes a stock batch
func (h *InventoryHandler) Delete(c *gin.Context) {
	var req dto.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.BadRequest(c, "Invalid batch ID")
		return
	}
	id, err := uuid.Parse(req.ID)
	if err != nil {
		h.BadRequest(c, "Invalid batch ID")
		return
	}

	if err := h.inventoryService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
