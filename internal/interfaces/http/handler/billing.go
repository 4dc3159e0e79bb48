package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/stockbill/backend/internal/application/billing"
)

// BillingHandler handles bill generation and retrieval HTTP requests
type BillingHandler struct {
	BaseHandler
	billingService *billing.BillingService
}

// NewBillingHandler creates a new billing handler
func NewBillingHandler(billingService *billing.BillingService) *BillingHandler {
	return &BillingHandler{billingService: billingService}
}

// RegisterRoutes registers billing routes on the given router group.
// Creation lives at /bill and listing at /bills, matching the upstream
// API contract.
func (h *BillingHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/bill", h.Generate)
	rg.GET("/bills", h.List)
}

// Generate creates a bill: deducts stock for every requested line in a
// single transaction and persists the bill with its computed total
func (h *BillingHandler) Generate(c *gin.Context) {
	var req billing.GenerateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	result, err := h.billingService.GenerateBill(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, result)
}

// List returns all stored bills, newest first, with nested line items
func (h *BillingHandler) List(c *gin.Context) {
	bills, err := h.billingService.ListBills(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, bills)
}
