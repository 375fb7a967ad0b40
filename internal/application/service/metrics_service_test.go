package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/vendorpulse-api/internal/domain/entity"
	"github.com/sangkips/vendorpulse-api/internal/domain/enum"
	"github.com/sangkips/vendorpulse-api/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDay = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func newMetricsFixture(t *testing.T) (*MetricsService, *stubVendorRepo, *stubPORepo, *stubPerfRepo, *entity.Vendor) {
	t.Helper()
	vendorRepo := newStubVendorRepo()
	poRepo := newStubPORepo()
	perfRepo := newStubPerfRepo()
	vendor := seedVendor(vendorRepo, "Acme Industrial", "ACME001")

	svc := NewMetricsService(vendorRepo, poRepo, perfRepo)
	svc.now = func() time.Time { return testDay }
	return svc, vendorRepo, poRepo, perfRepo, vendor
}

func addOrder(repo *stubPORepo, vendorID uuid.UUID, status enum.POStatus, orderDate, deliveryDate time.Time) *entity.PurchaseOrder {
	po := &entity.PurchaseOrder{
		ID:           uuid.New(),
		PONumber:     "PO-" + uuid.NewString()[:8],
		VendorID:     vendorID,
		OrderDate:    orderDate,
		DeliveryDate: deliveryDate,
		Quantity:     10,
		Status:       status,
		IssueDate:    orderDate,
	}
	repo.orders[po.ID] = po
	return po
}

func TestOnTimeDeliveryRateHalfOnTime(t *testing.T) {
	svc, vendorRepo, poRepo, _, vendor := newMetricsFixture(t)

	// Four orders, two completed. One completed order was delivered on its
	// order date, the other a day late.
	addOrder(poRepo, vendor.ID, enum.POStatusCompleted, testDay, testDay)
	late := addOrder(poRepo, vendor.ID, enum.POStatusCompleted, testDay, testDay.AddDate(0, 0, 1))
	addOrder(poRepo, vendor.ID, enum.POStatusPending, testDay, testDay)
	addOrder(poRepo, vendor.ID, enum.POStatusCanceled, testDay, testDay)

	err := svc.PurchaseOrderSaved(context.Background(), late)
	require.NoError(t, err)

	got := vendorRepo.vendors[vendor.ID]
	assert.Equal(t, 50.0, got.OnTimeDeliveryRate)
	assert.Equal(t, 50.0, got.FulfillmentRate)
}

func TestPendingSaveLeavesOnTimeRateUntouched(t *testing.T) {
	svc, vendorRepo, poRepo, _, vendor := newMetricsFixture(t)
	vendor.OnTimeDeliveryRate = 75.0

	pending := addOrder(poRepo, vendor.ID, enum.POStatusPending, testDay, testDay)

	err := svc.PurchaseOrderSaved(context.Background(), pending)
	require.NoError(t, err)

	got := vendorRepo.vendors[vendor.ID]
	assert.Equal(t, 75.0, got.OnTimeDeliveryRate)
	// Fulfillment always recomputes: one order, zero completed.
	assert.Equal(t, 0.0, got.FulfillmentRate)
}

func TestQualityRatingAverageSkipsUnratedAndNonCompleted(t *testing.T) {
	svc, vendorRepo, poRepo, _, vendor := newMetricsFixture(t)

	rated := addOrder(poRepo, vendor.ID, enum.POStatusCompleted, testDay, testDay)
	rated.QualityRating = floatPtr(4.0)
	addOrder(poRepo, vendor.ID, enum.POStatusCompleted, testDay, testDay)
	pendingRated := addOrder(poRepo, vendor.ID, enum.POStatusPending, testDay, testDay)
	pendingRated.QualityRating = floatPtr(1.0)

	err := svc.PurchaseOrderSaved(context.Background(), rated)
	require.NoError(t, err)

	// Only the completed rated order counts: 4.0 / 1.
	assert.Equal(t, 4.0, vendorRepo.vendors[vendor.ID].QualityRatingAvg)
}

func TestAverageResponseTimeInHours(t *testing.T) {
	svc, vendorRepo, poRepo, _, vendor := newMetricsFixture(t)

	fast := addOrder(poRepo, vendor.ID, enum.POStatusPending, testDay, testDay.AddDate(0, 0, 5))
	fast.IssueDate = testDay
	fast.AcknowledgmentDate = timePtr(testDay.Add(6 * time.Hour))

	slow := addOrder(poRepo, vendor.ID, enum.POStatusPending, testDay, testDay.AddDate(0, 0, 5))
	slow.IssueDate = testDay
	slow.AcknowledgmentDate = timePtr(testDay.Add(18 * time.Hour))

	err := svc.PurchaseOrderSaved(context.Background(), fast)
	require.NoError(t, err)

	assert.InDelta(t, 12.0, vendorRepo.vendors[vendor.ID].AverageResponseTime, 1e-9)
}

func TestAggregateGuards(t *testing.T) {
	var none []entity.PurchaseOrder

	_, ok := onTimeDeliveryRate(none)
	assert.False(t, ok)

	_, ok = averageResponseTime(none)
	assert.False(t, ok)

	_, ok = fulfillmentRate(none)
	assert.False(t, ok)

	assert.Equal(t, 0.0, qualityRatingAverage(none))
	assert.Equal(t, 0.0, meanQualityRating(none))
}

func TestMetricsVendorNotFound(t *testing.T) {
	svc, _, poRepo, _, _ := newMetricsFixture(t)

	orphan := addOrder(poRepo, uuid.New(), enum.POStatusPending, testDay, testDay)

	err := svc.PurchaseOrderSaved(context.Background(), orphan)
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestMetricsVendorIsolation(t *testing.T) {
	svc, vendorRepo, poRepo, _, vendorA := newMetricsFixture(t)
	vendorB := seedVendor(vendorRepo, "Borealis Supply", "BOREAL01")
	vendorB.FulfillmentRate = 80.0

	saved := addOrder(poRepo, vendorA.ID, enum.POStatusCompleted, testDay, testDay)
	addOrder(poRepo, vendorB.ID, enum.POStatusPending, testDay, testDay)

	err := svc.PurchaseOrderSaved(context.Background(), saved)
	require.NoError(t, err)

	assert.Equal(t, 100.0, vendorRepo.vendors[vendorA.ID].FulfillmentRate)
	assert.Equal(t, 80.0, vendorRepo.vendors[vendorB.ID].FulfillmentRate)
}

func TestSnapshotRowCreatedButEmptyWithoutCompletedOrders(t *testing.T) {
	svc, _, poRepo, perfRepo, vendor := newMetricsFixture(t)

	pending := addOrder(poRepo, vendor.ID, enum.POStatusPending, testDay, testDay)

	err := svc.PurchaseOrderSaved(context.Background(), pending)
	require.NoError(t, err)

	row, err := perfRepo.GetByVendorAndDate(context.Background(), vendor.ID, testDay)
	require.NoError(t, err)
	require.NotNil(t, row)
	assert.Equal(t, 0.0, row.OnTimeDeliveryRate)
	assert.Equal(t, 0.0, row.FulfillmentRate)
}

func TestSnapshotFulfillmentPinsAtHundred(t *testing.T) {
	svc, vendorRepo, poRepo, perfRepo, vendor := newMetricsFixture(t)

	completed := addOrder(poRepo, vendor.ID, enum.POStatusCompleted, testDay, testDay)
	addOrder(poRepo, vendor.ID, enum.POStatusPending, testDay, testDay)
	addOrder(poRepo, vendor.ID, enum.POStatusPending, testDay, testDay)

	err := svc.PurchaseOrderSaved(context.Background(), completed)
	require.NoError(t, err)

	row, err := perfRepo.GetByVendorAndDate(context.Background(), vendor.ID, testDay)
	require.NoError(t, err)
	require.NotNil(t, row)
	assert.Equal(t, 100.0, row.FulfillmentRate)
	// The vendor aggregate uses the full order count as denominator.
	assert.InDelta(t, 100.0/3.0, vendorRepo.vendors[vendor.ID].FulfillmentRate, 1e-9)
}

func TestSnapshotOnTimeCountsWholeDay(t *testing.T) {
	svc, _, poRepo, perfRepo, vendor := newMetricsFixture(t)

	// Two completed orders, one on time. A pending order delivered on its
	// order date also lands in the snapshot numerator, so the snapshot rate
	// reads 100 while the vendor aggregate reads 50.
	onTime := addOrder(poRepo, vendor.ID, enum.POStatusCompleted, testDay, testDay)
	addOrder(poRepo, vendor.ID, enum.POStatusCompleted, testDay, testDay.AddDate(0, 0, 2))
	addOrder(poRepo, vendor.ID, enum.POStatusPending, testDay, testDay)

	err := svc.PurchaseOrderSaved(context.Background(), onTime)
	require.NoError(t, err)

	row, err := perfRepo.GetByVendorAndDate(context.Background(), vendor.ID, testDay)
	require.NoError(t, err)
	require.NotNil(t, row)
	assert.Equal(t, 100.0, row.OnTimeDeliveryRate)
}

func TestSnapshotQualityAveragesAllRatedOrders(t *testing.T) {
	svc, vendorRepo, poRepo, perfRepo, vendor := newMetricsFixture(t)

	completed := addOrder(poRepo, vendor.ID, enum.POStatusCompleted, testDay, testDay)
	completed.QualityRating = floatPtr(4.0)
	pending := addOrder(poRepo, vendor.ID, enum.POStatusPending, testDay, testDay)
	pending.QualityRating = floatPtr(2.0)

	err := svc.PurchaseOrderSaved(context.Background(), completed)
	require.NoError(t, err)

	row, err := perfRepo.GetByVendorAndDate(context.Background(), vendor.ID, testDay)
	require.NoError(t, err)
	require.NotNil(t, row)
	assert.Equal(t, 3.0, row.QualityRatingAvg)
	assert.Equal(t, 4.0, vendorRepo.vendors[vendor.ID].QualityRatingAvg)
}

func TestSnapshotUpsertsSingleRowPerDay(t *testing.T) {
	svc, _, poRepo, perfRepo, vendor := newMetricsFixture(t)

	first := addOrder(poRepo, vendor.ID, enum.POStatusCompleted, testDay, testDay)
	require.NoError(t, svc.PurchaseOrderSaved(context.Background(), first))

	second := addOrder(poRepo, vendor.ID, enum.POStatusCompleted, testDay, testDay)
	require.NoError(t, svc.PurchaseOrderSaved(context.Background(), second))

	rows, err := perfRepo.ListByVendor(context.Background(), vendor.ID)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestSnapshotOnlyConsidersTodaysOrders(t *testing.T) {
	svc, _, poRepo, perfRepo, vendor := newMetricsFixture(t)

	yesterday := testDay.AddDate(0, 0, -1)
	addOrder(poRepo, vendor.ID, enum.POStatusCompleted, yesterday, yesterday.AddDate(0, 0, 3))

	today := addOrder(poRepo, vendor.ID, enum.POStatusCompleted, testDay, testDay)
	require.NoError(t, svc.PurchaseOrderSaved(context.Background(), today))

	row, err := perfRepo.GetByVendorAndDate(context.Background(), vendor.ID, testDay)
	require.NoError(t, err)
	require.NotNil(t, row)
	// Yesterday's late delivery must not drag today's snapshot down.
	assert.Equal(t, 100.0, row.OnTimeDeliveryRate)
}

func TestRecomputeErrorPropagates(t *testing.T) {
	svc, vendorRepo, poRepo, _, vendor := newMetricsFixture(t)
	vendorRepo.updateErr = errors.New("connection reset")

	completed := addOrder(poRepo, vendor.ID, enum.POStatusCompleted, testDay, testDay)

	err := svc.PurchaseOrderSaved(context.Background(), completed)
	require.Error(t, err)
	assert.Equal(t, "connection reset", err.Error())
}
