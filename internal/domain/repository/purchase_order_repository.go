package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/vendorpulse-api/internal/domain/entity"
)

// PurchaseOrderRepository defines the interface for purchase order data operations
type PurchaseOrderRepository interface {
	Create(ctx context.Context, po *entity.PurchaseOrder) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.PurchaseOrder, error)
	GetByPONumber(ctx context.Context, poNumber string) (*entity.PurchaseOrder, error)
	Update(ctx context.Context, po *entity.PurchaseOrder) error
	Delete(ctx context.Context, id uuid.UUID) error
	// List returns all purchase orders, optionally restricted to one vendor
	// when vendorID is non-nil.
	List(ctx context.Context, vendorID *uuid.UUID) ([]entity.PurchaseOrder, error)
	ListByVendor(ctx context.Context, vendorID uuid.UUID) ([]entity.PurchaseOrder, error)
	// ListByVendorAndDate returns the vendor's purchase orders whose
	// order_date falls on the given calendar day.
	ListByVendorAndDate(ctx context.Context, vendorID uuid.UUID, day time.Time) ([]entity.PurchaseOrder, error)
}
