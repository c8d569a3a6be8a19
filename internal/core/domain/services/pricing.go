package services

import (
	"fmt"

	"cleanly/internal/core/domain/model/order"
	"cleanly/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Price-list keys for the courier fees. The per-kilogram service keys are
// owned by order.ServiceType.RateKey.
const (
	PriceKeyPickup   = "pickup"
	PriceKeyDelivery = "delivery"
)

// PriceList is an immutable snapshot of the configured unit prices, keyed by
// service or fee name. It is loaded from storage per request and passed into
// the calculator by value, so concurrent price updates can never bleed into
// an in-flight computation.
type PriceList map[string]decimal.Decimal

// Rate returns the unit price for a key. Missing entries read as zero; the
// legacy backend behaves the same way, so an incomplete price list silently
// produces an underpriced bill rather than an error. Operators must keep
// the list fully populated.
func (p PriceList) Rate(key string) decimal.Decimal {
	if rate, ok := p[key]; ok {
		return rate
	}
	return decimal.Zero
}

// PriceCalculator is the domain service that computes order bills.
//
// The bill is composed of:
//   - base: weight × the service's per-kilogram rate. Unknown service types
//     yield a base of zero instead of an error, preserving the permissive
//     legacy behavior (tests pin this down so the gap stays visible)
//   - pickup fee, when a courier collects the laundry
//   - delivery fee, when a courier returns it
//
// Example:
//
//	calc := NewPriceCalculator()
//	total, err := calc.Calculate(
//	    order.ServiceWashFold, decimal.NewFromInt(3),
//	    order.PickupByCourier, order.DeliverySelfPickup,
//	    priceList,
//	)
//	// with cuci_lipat_per_kg=5000 and pickup=2000, total is 17000
type PriceCalculator struct{}

// NewPriceCalculator creates a new PriceCalculator instance.
func NewPriceCalculator() PriceCalculator {
	return PriceCalculator{}
}

// Calculate computes the bill total for one weighing.
// Weight must be positive; the lifecycle machine guarantees this before
// asking for a price, and the calculator re-checks it as a precondition.
func (c PriceCalculator) Calculate(
	service order.ServiceType,
	weight decimal.Decimal,
	pickupOption order.PickupOption,
	deliveryOption order.DeliveryOption,
	priceList PriceList,
) (decimal.Decimal, error) {
	if !weight.IsPositive() {
		return decimal.Zero, errs.NewValueIsInvalidErrorWithCause(
			"weight",
			fmt.Errorf("%s is not greater than 0", weight),
		)
	}

	base := decimal.Zero
	if rateKey, ok := service.RateKey(); ok {
		base = weight.Mul(priceList.Rate(rateKey))
	}

	total := base
	if pickupOption.IncursFee() {
		total = total.Add(priceList.Rate(PriceKeyPickup))
	}
	if deliveryOption.IncursFee() {
		total = total.Add(priceList.Rate(PriceKeyDelivery))
	}

	return total, nil
}
