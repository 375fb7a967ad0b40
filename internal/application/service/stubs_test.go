package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/vendorpulse-api/internal/domain/entity"
	"github.com/sangkips/vendorpulse-api/internal/domain/repository"
)

// ── In-memory repository stubs ───────────────────────────────────────────────

type stubVendorRepo struct {
	vendors   map[uuid.UUID]*entity.Vendor
	updateErr error
	updates   int
	poRepo    *stubPORepo
	perfRepo  *stubPerfRepo
}

func newStubVendorRepo() *stubVendorRepo {
	return &stubVendorRepo{vendors: make(map[uuid.UUID]*entity.Vendor)}
}

func (r *stubVendorRepo) Create(_ context.Context, v *entity.Vendor) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	r.vendors[v.ID] = v
	return nil
}

func (r *stubVendorRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Vendor, error) {
	v, ok := r.vendors[id]
	if !ok {
		return nil, nil
	}
	return v, nil
}

func (r *stubVendorRepo) GetByVendorCode(_ context.Context, code string) (*entity.Vendor, error) {
	for _, v := range r.vendors {
		if v.VendorCode == code {
			return v, nil
		}
	}
	return nil, nil
}

func (r *stubVendorRepo) List(_ context.Context) ([]entity.Vendor, error) {
	result := make([]entity.Vendor, 0, len(r.vendors))
	for _, v := range r.vendors {
		result = append(result, *v)
	}
	return result, nil
}

func (r *stubVendorRepo) Update(_ context.Context, v *entity.Vendor) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	r.updates++
	r.vendors[v.ID] = v
	return nil
}

func (r *stubVendorRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.vendors, id)
	if r.poRepo != nil {
		for poID, po := range r.poRepo.orders {
			if po.VendorID == id {
				delete(r.poRepo.orders, poID)
			}
		}
	}
	if r.perfRepo != nil {
		kept := r.perfRepo.rows[:0]
		for _, row := range r.perfRepo.rows {
			if row.VendorID != id {
				kept = append(kept, row)
			}
		}
		r.perfRepo.rows = kept
	}
	return nil
}

var _ repository.VendorRepository = (*stubVendorRepo)(nil)

type stubPORepo struct {
	orders map[uuid.UUID]*entity.PurchaseOrder
}

func newStubPORepo() *stubPORepo {
	return &stubPORepo{orders: make(map[uuid.UUID]*entity.PurchaseOrder)}
}

func (r *stubPORepo) Create(_ context.Context, po *entity.PurchaseOrder) error {
	if po.ID == uuid.Nil {
		po.ID = uuid.New()
	}
	if po.IssueDate.IsZero() {
		po.IssueDate = time.Now()
	}
	r.orders[po.ID] = po
	return nil
}

func (r *stubPORepo) GetByID(_ context.Context, id uuid.UUID) (*entity.PurchaseOrder, error) {
	po, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	return po, nil
}

func (r *stubPORepo) GetByPONumber(_ context.Context, poNumber string) (*entity.PurchaseOrder, error) {
	for _, po := range r.orders {
		if po.PONumber == poNumber {
			return po, nil
		}
	}
	return nil, nil
}

func (r *stubPORepo) Update(_ context.Context, po *entity.PurchaseOrder) error {
	r.orders[po.ID] = po
	return nil
}

func (r *stubPORepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.orders, id)
	return nil
}

func (r *stubPORepo) List(_ context.Context, vendorID *uuid.UUID) ([]entity.PurchaseOrder, error) {
	var result []entity.PurchaseOrder
	for _, po := range r.orders {
		if vendorID == nil || po.VendorID == *vendorID {
			result = append(result, *po)
		}
	}
	return result, nil
}

func (r *stubPORepo) ListByVendor(_ context.Context, vendorID uuid.UUID) ([]entity.PurchaseOrder, error) {
	return r.List(context.Background(), &vendorID)
}

func (r *stubPORepo) ListByVendorAndDate(_ context.Context, vendorID uuid.UUID, day time.Time) ([]entity.PurchaseOrder, error) {
	var result []entity.PurchaseOrder
	for _, po := range r.orders {
		if po.VendorID == vendorID && sameDay(po.OrderDate, day) {
			result = append(result, *po)
		}
	}
	return result, nil
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

var _ repository.PurchaseOrderRepository = (*stubPORepo)(nil)

type stubPerfRepo struct {
	rows      []*entity.HistoricalPerformance
	updateErr error
}

func newStubPerfRepo() *stubPerfRepo {
	return &stubPerfRepo{}
}

func (r *stubPerfRepo) Create(_ context.Context, perf *entity.HistoricalPerformance) error {
	if perf.ID == uuid.Nil {
		perf.ID = uuid.New()
	}
	r.rows = append(r.rows, perf)
	return nil
}

func (r *stubPerfRepo) GetByVendorAndDate(_ context.Context, vendorID uuid.UUID, day time.Time) (*entity.HistoricalPerformance, error) {
	for _, row := range r.rows {
		if row.VendorID == vendorID && sameDay(row.Date, day) {
			return row, nil
		}
	}
	return nil, nil
}

func (r *stubPerfRepo) ListByVendor(_ context.Context, vendorID uuid.UUID) ([]entity.HistoricalPerformance, error) {
	var result []entity.HistoricalPerformance
	for _, row := range r.rows {
		if row.VendorID == vendorID {
			result = append(result, *row)
		}
	}
	return result, nil
}

func (r *stubPerfRepo) Update(_ context.Context, perf *entity.HistoricalPerformance) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	for i, row := range r.rows {
		if row.ID == perf.ID {
			r.rows[i] = perf
			return nil
		}
	}
	r.rows = append(r.rows, perf)
	return nil
}

var _ repository.PerformanceRepository = (*stubPerfRepo)(nil)

type stubUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (r *stubUserRepo) Create(_ context.Context, u *entity.User) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	r.users[u.ID] = u
	return nil
}

func (r *stubUserRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return u, nil
}

func (r *stubUserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (r *stubUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *stubUserRepo) Update(_ context.Context, u *entity.User) error {
	r.users[u.ID] = u
	return nil
}

var _ repository.UserRepository = (*stubUserRepo)(nil)

// ── Shared helpers ───────────────────────────────────────────────────────────

func seedVendor(repo *stubVendorRepo, name, code string) *entity.Vendor {
	v := &entity.Vendor{
		ID:             uuid.New(),
		Name:           name,
		ContactDetails: "procurement@" + code + ".example.com",
		Address:        "1 Industrial Way, Springfield",
		VendorCode:     code,
	}
	repo.vendors[v.ID] = v
	return v
}

func floatPtr(f float64) *float64 { return &f }

func timePtr(t time.Time) *time.Time { return &t }
