package ports

import (
	"context"
	"time"

	"cleanly/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its identifier.
	// Returns an ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id order.ID) (*order.Order, error)

	// SetComplaintIfEmpty conditionally writes the complaint fields, keyed
	// on the description currently being empty. This is the storage half of
	// the write-once rule: under concurrent complaint submissions at most
	// one caller wins. Returns an ObjectAlreadyExistsError when the
	// predicate fails and an ObjectNotFoundError when the order is absent.
	SetComplaintIfEmpty(ctx context.Context, id order.ID, description, imageURL string, now time.Time) error

	// GetAllBilledBefore retrieves orders whose COD bill has been
	// outstanding since before the cutoff. Used by the payment reminder job.
	GetAllBilledBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error)
}
