package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/sangkips/vendorpulse-api/internal/domain/entity"
)

// VendorRepository defines the interface for vendor data operations
type VendorRepository interface {
	Create(ctx context.Context, vendor *entity.Vendor) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Vendor, error)
	GetByVendorCode(ctx context.Context, code string) (*entity.Vendor, error)
	List(ctx context.Context) ([]entity.Vendor, error)
	Update(ctx context.Context, vendor *entity.Vendor) error
	// Delete removes the vendor together with its purchase orders and
	// historical performance rows.
	Delete(ctx context.Context, id uuid.UUID) error
}
