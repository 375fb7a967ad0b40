package request

import (
	"time"

	"gorm.io/datatypes"
)

// CreatePurchaseOrderRequest represents a create purchase order request
type CreatePurchaseOrderRequest struct {
	PONumber      string         `json:"po_number" binding:"required,max=100"`
	VendorID      string         `json:"vendor_id" binding:"required,uuid"`
	OrderDate     time.Time      `json:"order_date" binding:"required"`
	DeliveryDate  time.Time      `json:"delivery_date" binding:"required"`
	Items         datatypes.JSON `json:"items" binding:"required"`
	Quantity      int            `json:"quantity" binding:"required,min=1"`
	Status        string         `json:"status"`
	QualityRating *float64       `json:"quality_rating"`
	IssueDate     *time.Time     `json:"issue_date"`
}

// UpdatePurchaseOrderRequest represents an update purchase order request
type UpdatePurchaseOrderRequest struct {
	OrderDate          *time.Time     `json:"order_date"`
	DeliveryDate       *time.Time     `json:"delivery_date"`
	Items              datatypes.JSON `json:"items"`
	Quantity           *int           `json:"quantity"`
	Status             *string        `json:"status"`
	QualityRating      *float64       `json:"quality_rating"`
	AcknowledgmentDate *time.Time     `json:"acknowledgment_date"`
}
