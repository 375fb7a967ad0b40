package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/vendorpulse-api/internal/domain/entity"
)

// PerformanceRepository defines the interface for historical performance
// snapshot data operations
type PerformanceRepository interface {
	Create(ctx context.Context, perf *entity.HistoricalPerformance) error
	GetByVendorAndDate(ctx context.Context, vendorID uuid.UUID, day time.Time) (*entity.HistoricalPerformance, error)
	ListByVendor(ctx context.Context, vendorID uuid.UUID) ([]entity.HistoricalPerformance, error)
	Update(ctx context.Context, perf *entity.HistoricalPerformance) error
}
