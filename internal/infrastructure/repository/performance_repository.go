package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/vendorpulse-api/internal/domain/entity"
	domainRepo "github.com/sangkips/vendorpulse-api/internal/domain/repository"
	"gorm.io/gorm"
)

type performanceRepository struct {
	db *gorm.DB
}

// NewPerformanceRepository creates a new historical performance repository
func NewPerformanceRepository(db *gorm.DB) domainRepo.PerformanceRepository {
	return &performanceRepository{db: db}
}

func (r *performanceRepository) Create(ctx context.Context, perf *entity.HistoricalPerformance) error {
	return r.db.WithContext(ctx).Create(perf).Error
}

func (r *performanceRepository) GetByVendorAndDate(ctx context.Context, vendorID uuid.UUID, day time.Time) (*entity.HistoricalPerformance, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.AddDate(0, 0, 1)

	var perf entity.HistoricalPerformance
	err := r.db.WithContext(ctx).
		Where("vendor_id = ? AND date >= ? AND date < ?", vendorID, start, end).
		First(&perf).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &perf, err
}

func (r *performanceRepository) ListByVendor(ctx context.Context, vendorID uuid.UUID) ([]entity.HistoricalPerformance, error) {
	var perfs []entity.HistoricalPerformance
	err := r.db.WithContext(ctx).
		Where("vendor_id = ?", vendorID).
		Order("date ASC").
		Find(&perfs).Error
	return perfs, err
}

func (r *performanceRepository) Update(ctx context.Context, perf *entity.HistoricalPerformance) error {
	return r.db.WithContext(ctx).Save(perf).Error
}
