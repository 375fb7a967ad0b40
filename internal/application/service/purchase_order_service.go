package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/vendorpulse-api/internal/domain/entity"
	"github.com/sangkips/vendorpulse-api/internal/domain/enum"
	"github.com/sangkips/vendorpulse-api/internal/domain/event"
	"github.com/sangkips/vendorpulse-api/internal/domain/repository"
	"github.com/sangkips/vendorpulse-api/pkg/apperror"
	"gorm.io/datatypes"
)

// PurchaseOrderService handles purchase-order operations and notifies the
// registered observers after every persisted write
type PurchaseOrderService struct {
	poRepo     repository.PurchaseOrderRepository
	vendorRepo repository.VendorRepository
	observers  []event.PurchaseOrderObserver
}

// NewPurchaseOrderService creates a new purchase order service
func NewPurchaseOrderService(
	poRepo repository.PurchaseOrderRepository,
	vendorRepo repository.VendorRepository,
) *PurchaseOrderService {
	return &PurchaseOrderService{
		poRepo:     poRepo,
		vendorRepo: vendorRepo,
	}
}

// RegisterObserver adds an observer invoked synchronously after each
// purchase-order write commits
func (s *PurchaseOrderService) RegisterObserver(o event.PurchaseOrderObserver) {
	s.observers = append(s.observers, o)
}

func (s *PurchaseOrderService) notifySaved(ctx context.Context, po *entity.PurchaseOrder) error {
	for _, o := range s.observers {
		if err := o.PurchaseOrderSaved(ctx, po); err != nil {
			return err
		}
	}
	return nil
}

// CreatePurchaseOrderInput represents the create purchase order input
type CreatePurchaseOrderInput struct {
	PONumber      string
	VendorID      uuid.UUID
	OrderDate     time.Time
	DeliveryDate  time.Time
	Items         datatypes.JSON
	Quantity      int
	Status        enum.POStatus
	QualityRating *float64
	IssueDate     *time.Time
}

// CreatePurchaseOrder validates and persists a new purchase order, then
// triggers metric recomputation for its vendor
func (s *PurchaseOrderService) CreatePurchaseOrder(ctx context.Context, input *CreatePurchaseOrderInput) (*entity.PurchaseOrder, error) {
	status := input.Status
	if status == "" {
		status = enum.POStatusPending
	}

	if fieldErrs := validatePurchaseOrderFields(input.OrderDate, input.DeliveryDate, input.Quantity, status, input.QualityRating); len(fieldErrs) > 0 {
		return nil, apperror.NewValidationError(fieldErrs)
	}

	vendor, err := s.vendorRepo.GetByID(ctx, input.VendorID)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, apperror.NewNotFoundError("Vendor")
	}

	existing, err := s.poRepo.GetByPONumber(ctx, input.PONumber)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("PO number already exists")
	}

	po := &entity.PurchaseOrder{
		PONumber:      input.PONumber,
		VendorID:      input.VendorID,
		OrderDate:     input.OrderDate,
		DeliveryDate:  input.DeliveryDate,
		Items:         input.Items,
		Quantity:      input.Quantity,
		Status:        status,
		QualityRating: input.QualityRating,
	}
	if input.IssueDate != nil {
		po.IssueDate = *input.IssueDate
	} else {
		po.IssueDate = time.Now()
	}

	if err := s.poRepo.Create(ctx, po); err != nil {
		return nil, err
	}

	if err := s.notifySaved(ctx, po); err != nil {
		return nil, err
	}

	return po, nil
}

// GetPurchaseOrder retrieves a purchase order by ID
func (s *PurchaseOrderService) GetPurchaseOrder(ctx context.Context, id uuid.UUID) (*entity.PurchaseOrder, error) {
	po, err := s.poRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if po == nil {
		return nil, apperror.NewNotFoundError("Purchase order")
	}
	return po, nil
}

// ListPurchaseOrders lists purchase orders, optionally filtered by vendor
func (s *PurchaseOrderService) ListPurchaseOrders(ctx context.Context, vendorID *uuid.UUID) ([]entity.PurchaseOrder, error) {
	return s.poRepo.List(ctx, vendorID)
}

// UpdatePurchaseOrderInput represents the update purchase order input
type UpdatePurchaseOrderInput struct {
	ID                 uuid.UUID
	OrderDate          *time.Time
	DeliveryDate       *time.Time
	Items              datatypes.JSON
	Quantity           *int
	Status             *enum.POStatus
	QualityRating      *float64
	AcknowledgmentDate *time.Time
}

// UpdatePurchaseOrder applies the requested changes, enforcing that a
// completed order never leaves the completed state and that the
// acknowledgment date is written at most once, then triggers metric
// recomputation
func (s *PurchaseOrderService) UpdatePurchaseOrder(ctx context.Context, input *UpdatePurchaseOrderInput) (*entity.PurchaseOrder, error) {
	po, err := s.poRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if po == nil {
		return nil, apperror.NewNotFoundError("Purchase order")
	}

	if input.Status != nil {
		if !input.Status.IsValid() {
			return nil, apperror.NewFieldError("status", "Status must be one of pending, completed, canceled")
		}
		if po.Status == enum.POStatusCompleted && *input.Status != enum.POStatusCompleted {
			return nil, apperror.NewFieldError("status", "Completed purchase orders cannot change status")
		}
		po.Status = *input.Status
	}

	if input.AcknowledgmentDate != nil {
		if po.AcknowledgmentDate != nil {
			return nil, apperror.NewConflictError("Purchase order already acknowledged.")
		}
		po.AcknowledgmentDate = input.AcknowledgmentDate
	}

	if input.OrderDate != nil {
		po.OrderDate = *input.OrderDate
	}
	if input.DeliveryDate != nil {
		po.DeliveryDate = *input.DeliveryDate
	}
	if input.Items != nil {
		po.Items = input.Items
	}
	if input.Quantity != nil {
		po.Quantity = *input.Quantity
	}
	if input.QualityRating != nil {
		po.QualityRating = input.QualityRating
	}

	if fieldErrs := validatePurchaseOrderFields(po.OrderDate, po.DeliveryDate, po.Quantity, po.Status, po.QualityRating); len(fieldErrs) > 0 {
		return nil, apperror.NewValidationError(fieldErrs)
	}

	if err := s.poRepo.Update(ctx, po); err != nil {
		return nil, err
	}

	if err := s.notifySaved(ctx, po); err != nil {
		return nil, err
	}

	return po, nil
}

// AcknowledgePurchaseOrder stamps the acknowledgment date exactly once. A
// second acknowledgment is a conflict, not a silent no-op.
func (s *PurchaseOrderService) AcknowledgePurchaseOrder(ctx context.Context, id uuid.UUID) (*entity.PurchaseOrder, error) {
	po, err := s.poRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if po == nil {
		return nil, apperror.NewNotFoundError("Purchase order")
	}

	if po.AcknowledgmentDate != nil {
		return nil, apperror.NewConflictError("Purchase order already acknowledged.")
	}

	now := time.Now()
	po.AcknowledgmentDate = &now

	if err := s.poRepo.Update(ctx, po); err != nil {
		return nil, err
	}

	if err := s.notifySaved(ctx, po); err != nil {
		return nil, err
	}

	return po, nil
}

// DeletePurchaseOrder deletes a purchase order
func (s *PurchaseOrderService) DeletePurchaseOrder(ctx context.Context, id uuid.UUID) error {
	po, err := s.poRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if po == nil {
		return apperror.NewNotFoundError("Purchase order")
	}
	return s.poRepo.Delete(ctx, id)
}

func validatePurchaseOrderFields(orderDate, deliveryDate time.Time, quantity int, status enum.POStatus, rating *float64) []apperror.FieldError {
	var fieldErrs []apperror.FieldError
	if deliveryDate.Before(orderDate) {
		fieldErrs = append(fieldErrs, apperror.FieldError{
			Field:   "delivery_date",
			Message: "Delivery date must be after order date.",
		})
	}
	if quantity < 1 {
		fieldErrs = append(fieldErrs, apperror.FieldError{
			Field:   "quantity",
			Message: "Quantity must be at least 1",
		})
	}
	if !status.IsValid() {
		fieldErrs = append(fieldErrs, apperror.FieldError{
			Field:   "status",
			Message: "Status must be one of pending, completed, canceled",
		})
	}
	if rating != nil && (*rating < 0 || *rating > 5) {
		fieldErrs = append(fieldErrs, apperror.FieldError{
			Field:   "quality_rating",
			Message: "Quality rating must be between 0 and 5",
		})
	}
	return fieldErrs
}
