package service

import (
	"context"
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/vendorpulse-api/internal/domain/entity"
	"github.com/sangkips/vendorpulse-api/internal/domain/repository"
	"github.com/sangkips/vendorpulse-api/pkg/apperror"
)

var vendorCodePattern = regexp.MustCompile(`^[a-zA-Z0-9]+$`)

const minDetailLength = 10

// VendorService handles vendor CRUD and performance lookups. The four
// cached metric fields are owned by the metrics engine and are never
// accepted from client input.
type VendorService struct {
	vendorRepo repository.VendorRepository
	perfRepo   repository.PerformanceRepository
}

// NewVendorService creates a new vendor service
func NewVendorService(vendorRepo repository.VendorRepository, perfRepo repository.PerformanceRepository) *VendorService {
	return &VendorService{vendorRepo: vendorRepo, perfRepo: perfRepo}
}

// CreateVendorInput represents the create vendor input
type CreateVendorInput struct {
	Name           string
	ContactDetails string
	Address        string
	VendorCode     string
}

// CreateVendor validates and creates a new vendor with zeroed metrics
func (s *VendorService) CreateVendor(ctx context.Context, input *CreateVendorInput) (*entity.Vendor, error) {
	if fieldErrs := validateVendorFields(input.Name, input.ContactDetails, input.Address, input.VendorCode); len(fieldErrs) > 0 {
		return nil, apperror.NewValidationError(fieldErrs)
	}

	existing, err := s.vendorRepo.GetByVendorCode(ctx, input.VendorCode)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Vendor code already exists")
	}

	vendor := &entity.Vendor{
		Name:           input.Name,
		ContactDetails: input.ContactDetails,
		Address:        input.Address,
		VendorCode:     input.VendorCode,
	}

	if err := s.vendorRepo.Create(ctx, vendor); err != nil {
		return nil, err
	}

	return vendor, nil
}

// GetVendor retrieves a vendor by ID
func (s *VendorService) GetVendor(ctx context.Context, id uuid.UUID) (*entity.Vendor, error) {
	vendor, err := s.vendorRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, apperror.NewNotFoundError("Vendor")
	}
	return vendor, nil
}

// ListVendors lists all vendors
func (s *VendorService) ListVendors(ctx context.Context) ([]entity.Vendor, error) {
	return s.vendorRepo.List(ctx)
}

// UpdateVendorInput represents the update vendor input
type UpdateVendorInput struct {
	ID             uuid.UUID
	Name           *string
	ContactDetails *string
	Address        *string
	VendorCode     *string
}

// UpdateVendor updates a vendor's identity fields
func (s *VendorService) UpdateVendor(ctx context.Context, input *UpdateVendorInput) (*entity.Vendor, error) {
	vendor, err := s.vendorRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, apperror.NewNotFoundError("Vendor")
	}

	if input.Name != nil {
		vendor.Name = *input.Name
	}
	if input.ContactDetails != nil {
		vendor.ContactDetails = *input.ContactDetails
	}
	if input.Address != nil {
		vendor.Address = *input.Address
	}
	if input.VendorCode != nil && *input.VendorCode != vendor.VendorCode {
		existing, err := s.vendorRepo.GetByVendorCode(ctx, *input.VendorCode)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apperror.NewConflictError("Vendor code already exists")
		}
		vendor.VendorCode = *input.VendorCode
	}

	if fieldErrs := validateVendorFields(vendor.Name, vendor.ContactDetails, vendor.Address, vendor.VendorCode); len(fieldErrs) > 0 {
		return nil, apperror.NewValidationError(fieldErrs)
	}

	if err := s.vendorRepo.Update(ctx, vendor); err != nil {
		return nil, err
	}

	return vendor, nil
}

// DeleteVendor deletes a vendor and everything it owns: purchase orders and
// historical performance rows go with it
func (s *VendorService) DeleteVendor(ctx context.Context, id uuid.UUID) error {
	vendor, err := s.vendorRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if vendor == nil {
		return apperror.NewNotFoundError("Vendor")
	}
	return s.vendorRepo.Delete(ctx, id)
}

// GetTodayPerformance returns the vendor's snapshot row for today, or a not
// found error when no snapshot has been written yet today
func (s *VendorService) GetTodayPerformance(ctx context.Context, vendorID uuid.UUID) (*entity.HistoricalPerformance, error) {
	vendor, err := s.vendorRepo.GetByID(ctx, vendorID)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, apperror.NewNotFoundError("Vendor")
	}

	perf, err := s.perfRepo.GetByVendorAndDate(ctx, vendorID, time.Now())
	if err != nil {
		return nil, err
	}
	if perf == nil {
		return nil, apperror.NewAppError(404, "No performance data available for today.")
	}
	return perf, nil
}

func validateVendorFields(name, contactDetails, address, vendorCode string) []apperror.FieldError {
	var fieldErrs []apperror.FieldError
	if name == "" {
		fieldErrs = append(fieldErrs, apperror.FieldError{Field: "name", Message: "Name is required"})
	}
	if len(contactDetails) < minDetailLength {
		fieldErrs = append(fieldErrs, apperror.FieldError{
			Field:   "contact_details",
			Message: "Contact details must be at least 10 characters",
		})
	}
	if len(address) < minDetailLength {
		fieldErrs = append(fieldErrs, apperror.FieldError{
			Field:   "address",
			Message: "Address must be at least 10 characters",
		})
	}
	if !vendorCodePattern.MatchString(vendorCode) {
		fieldErrs = append(fieldErrs, apperror.FieldError{
			Field:   "vendor_code",
			Message: "Vendor code must be alphanumeric",
		})
	}
	return fieldErrs
}
