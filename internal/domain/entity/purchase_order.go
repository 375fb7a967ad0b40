package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/vendorpulse-api/internal/domain/enum"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PurchaseOrder represents a single order placed with a vendor.
type PurchaseOrder struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	PONumber     string         `gorm:"size:100;unique;not null;column:po_number" json:"po_number"`
	VendorID     uuid.UUID      `gorm:"type:uuid;not null;index" json:"vendor_id"`
	OrderDate    time.Time      `gorm:"not null" json:"order_date"`
	DeliveryDate time.Time      `gorm:"not null" json:"delivery_date"`
	Items        datatypes.JSON `gorm:"type:jsonb" json:"items"`
	Quantity     int            `gorm:"not null;check:quantity >= 1" json:"quantity"`
	Status       enum.POStatus  `gorm:"size:20;default:'pending'" json:"status"`

	// QualityRating is assigned when a completed order is reviewed, 0-5.
	QualityRating *float64 `json:"quality_rating,omitempty"`

	// IssueDate is when the order was issued to the vendor; defaults to
	// creation time. AcknowledgmentDate goes from null to a timestamp at
	// most once and is never cleared.
	IssueDate          time.Time  `gorm:"not null" json:"issue_date"`
	AcknowledgmentDate *time.Time `json:"acknowledgment_date,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Vendor Vendor `gorm:"foreignKey:VendorID" json:"-"`
}

// BeforeCreate generates a UUID and defaults the issue date before creating
// a new purchase order
func (p *PurchaseOrder) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.IssueDate.IsZero() {
		p.IssueDate = time.Now()
	}
	return nil
}

// TableName returns the table name for the PurchaseOrder model
func (PurchaseOrder) TableName() string {
	return "purchase_orders"
}
