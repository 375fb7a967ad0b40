package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sangkips/vendorpulse-api/internal/application/service"
	"github.com/sangkips/vendorpulse-api/internal/domain/enum"
	"github.com/sangkips/vendorpulse-api/internal/presentation/http/dto/request"
	"github.com/sangkips/vendorpulse-api/internal/presentation/http/dto/response"
)

// PurchaseOrderHandler handles purchase-order HTTP requests
type PurchaseOrderHandler struct {
	poService *service.PurchaseOrderService
}

// NewPurchaseOrderHandler creates a new purchase order handler
func NewPurchaseOrderHandler(poService *service.PurchaseOrderService) *PurchaseOrderHandler {
	return &PurchaseOrderHandler{poService: poService}
}

// List handles listing purchase orders with an optional vendor_id filter
func (h *PurchaseOrderHandler) List(c *gin.Context) {
	var vendorID *uuid.UUID
	if v := c.Query("vendor_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			response.BadRequest(c, "Invalid vendor ID")
			return
		}
		vendorID = &id
	}

	orders, err := h.poService.ListPurchaseOrders(c.Request.Context(), vendorID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Purchase orders retrieved successfully", orders)
}

// Create handles creating a purchase order
func (h *PurchaseOrderHandler) Create(c *gin.Context) {
	var req request.CreatePurchaseOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	vendorID, err := uuid.Parse(req.VendorID)
	if err != nil {
		response.BadRequest(c, "Invalid vendor ID")
		return
	}

	po, err := h.poService.CreatePurchaseOrder(c.Request.Context(), &service.CreatePurchaseOrderInput{
		PONumber:      req.PONumber,
		VendorID:      vendorID,
		OrderDate:     req.OrderDate,
		DeliveryDate:  req.DeliveryDate,
		Items:         req.Items,
		Quantity:      req.Quantity,
		Status:        enum.POStatus(req.Status),
		QualityRating: req.QualityRating,
		IssueDate:     req.IssueDate,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Purchase order created successfully", po)
}

// Get handles getting a single purchase order
func (h *PurchaseOrderHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid purchase order ID")
		return
	}

	po, err := h.poService.GetPurchaseOrder(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Purchase order retrieved successfully", po)
}

// Update handles updating a purchase order
func (h *PurchaseOrderHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid purchase order ID")
		return
	}

	var req request.UpdatePurchaseOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	var status *enum.POStatus
	if req.Status != nil {
		s := enum.POStatus(*req.Status)
		status = &s
	}

	po, err := h.poService.UpdatePurchaseOrder(c.Request.Context(), &service.UpdatePurchaseOrderInput{
		ID:                 id,
		OrderDate:          req.OrderDate,
		DeliveryDate:       req.DeliveryDate,
		Items:              req.Items,
		Quantity:           req.Quantity,
		Status:             status,
		QualityRating:      req.QualityRating,
		AcknowledgmentDate: req.AcknowledgmentDate,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Purchase order updated successfully", po)
}

// Delete handles deleting a purchase order
func (h *PurchaseOrderHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid purchase order ID")
		return
	}

	if err := h.poService.DeletePurchaseOrder(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// Acknowledge stamps the acknowledgment date on a purchase order. A second
// call returns a conflict.
func (h *PurchaseOrderHandler) Acknowledge(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid purchase order ID")
		return
	}

	po, err := h.poService.AcknowledgePurchaseOrder(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Purchase order acknowledged successfully.", po)
}
