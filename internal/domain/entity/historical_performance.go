package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// HistoricalPerformance is one daily snapshot of a vendor's aggregate
// metrics. There is exactly one row per (vendor, date); only today's row is
// ever written, older rows are immutable history.
type HistoricalPerformance struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	VendorID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_vendor_date" json:"vendor_id"`
	Date     time.Time `gorm:"type:date;not null;uniqueIndex:idx_vendor_date" json:"date"`

	OnTimeDeliveryRate  float64 `gorm:"default:0" json:"on_time_delivery_rate"`
	QualityRatingAvg    float64 `gorm:"default:0" json:"quality_rating_avg"`
	AverageResponseTime float64 `gorm:"default:0" json:"average_response_time"`
	FulfillmentRate     float64 `gorm:"default:0" json:"fulfillment_rate"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Vendor Vendor `gorm:"foreignKey:VendorID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new snapshot row
func (h *HistoricalPerformance) BeforeCreate(tx *gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the HistoricalPerformance model
func (HistoricalPerformance) TableName() string {
	return "historical_performances"
}
