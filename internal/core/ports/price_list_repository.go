package ports

import (
	"context"

	"cleanly/internal/core/domain/services"

	"github.com/shopspring/decimal"
)

// PriceListRepository provides access to the configured unit prices.
// The list is administered out of band; the core only ever reads a snapshot.
type PriceListRepository interface {
	// GetAll loads the complete price list as an immutable snapshot.
	// An empty table yields an empty list, not an error; the pricing engine
	// treats missing entries as zero.
	GetAll(ctx context.Context) (services.PriceList, error)

	// Upsert creates or replaces a single price entry. Used by provisioning
	// and tests; no request handler mutates prices in this scope.
	Upsert(ctx context.Context, key string, price decimal.Decimal) error
}
