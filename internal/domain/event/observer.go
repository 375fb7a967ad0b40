package event

import (
	"context"

	"github.com/sangkips/vendorpulse-api/internal/domain/entity"
)

// PurchaseOrderObserver is notified synchronously after a purchase order has
// been persisted (create, update or acknowledge). The write that triggered
// the notification is not reported as successful until every observer
// returns nil, so an observer error fails the enclosing write.
type PurchaseOrderObserver interface {
	PurchaseOrderSaved(ctx context.Context, po *entity.PurchaseOrder) error
}
