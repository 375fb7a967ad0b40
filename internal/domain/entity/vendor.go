package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Vendor represents a supplier the business places purchase orders with.
// The four rate/average fields are a materialized view over the vendor's
// purchase orders: they are recomputed by the metrics engine on every
// purchase-order write and are never set directly from client input.
type Vendor struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name           string    `gorm:"size:255;not null" json:"name"`
	ContactDetails string    `gorm:"type:text;not null" json:"contact_details"`
	Address        string    `gorm:"type:text;not null" json:"address"`
	VendorCode     string    `gorm:"size:100;unique;not null" json:"vendor_code"`

	OnTimeDeliveryRate  float64 `gorm:"default:0" json:"on_time_delivery_rate"`
	QualityRatingAvg    float64 `gorm:"default:0" json:"quality_rating_avg"`
	AverageResponseTime float64 `gorm:"default:0" json:"average_response_time"`
	FulfillmentRate     float64 `gorm:"default:0" json:"fulfillment_rate"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	PurchaseOrders         []PurchaseOrder         `gorm:"foreignKey:VendorID;constraint:OnDelete:CASCADE" json:"-"`
	HistoricalPerformances []HistoricalPerformance `gorm:"foreignKey:VendorID;constraint:OnDelete:CASCADE" json:"-"`
}

// BeforeCreate generates a UUID before creating a new vendor
func (v *Vendor) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Vendor model
func (Vendor) TableName() string {
	return "vendors"
}
