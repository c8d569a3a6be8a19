package order

import (
	"errors"
	"fmt"
	"time"

	"cleanly/internal/core/domain/model/kernel"
	"cleanly/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder. This ensures all orders are
	// properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// Order represents a laundry order in the system. It is the aggregate root
// that manages the order lifecycle from intake through washing to handover.
//
// Order follows these invariants:
//   - Identity, owning user, service type, and fulfillment options are
//     immutable after creation
//   - Status transitions follow the transition table in Status
//   - Weight must be positive once set; it starts at zero (unweighed)
//   - Price is only ever derived from a weighing event, never set directly
//   - A complaint may be filed once; a second attempt is rejected, not
//     overwritten
//   - Completing an order forces the payment status to Paid
//
// The struct uses private fields to ensure encapsulation and maintains its
// invariants through validated methods. Every successful mutation bumps the
// last-modified timestamp, which the revenue aggregator buckets on.
type Order struct {
	// id is the externally visible identifier, e.g. "ORDER-42"
	id ID

	// userID references the owning customer
	userID kernel.UUID

	// service is the ordered laundry service
	service ServiceType

	// pickupOption and deliveryOption are the fulfillment choices
	pickupOption   PickupOption
	deliveryOption DeliveryOption

	// weight in kilograms; zero until the facility weighs the laundry
	weight decimal.Decimal

	// price is derived from weight and the price list at weighing time
	price decimal.Decimal

	// status is the current lifecycle stage
	status Status

	// rating is 0 (unrated) or 1..5
	rating int

	// paymentMethod is empty until the customer confirms COD
	paymentMethod string

	// paymentStatus tracks settlement, orthogonal to status
	paymentStatus PaymentStatus

	// complaintDescription and complaintImageURL are write-once
	complaintDescription string
	complaintImageURL    string

	createdAt time.Time
	updatedAt time.Time

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order with validation. This is the only way to
// place an order, ensuring all business invariants hold from the start.
//
// The order starts as Incoming and Unpaid, with zero weight and price; the
// price appears later when the facility weighs the laundry.
func NewOrder(
	id ID,
	userID kernel.UUID,
	service ServiceType,
	pickupOption PickupOption,
	deliveryOption DeliveryOption,
	now time.Time,
) (*Order, error) {
	order := &Order{
		weight:        decimal.Zero,
		price:         decimal.Zero,
		status:        Incoming,
		paymentStatus: PaymentUnpaid,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setUserID(userID),
		order.setService(service),
		order.setPickupOption(pickupOption),
		order.setDeliveryOption(deliveryOption),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persistence without replaying its
// history. It validates the same invariants as NewOrder plus the ones that
// only arise later in the lifecycle (status, payment status, rating bounds).
func RestoreOrder(
	id ID,
	userID kernel.UUID,
	service ServiceType,
	pickupOption PickupOption,
	deliveryOption DeliveryOption,
	weight decimal.Decimal,
	price decimal.Decimal,
	status Status,
	rating int,
	paymentMethod string,
	paymentStatus PaymentStatus,
	complaintDescription string,
	complaintImageURL string,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	order := &Order{
		rating:               rating,
		paymentMethod:        paymentMethod,
		complaintDescription: complaintDescription,
		complaintImageURL:    complaintImageURL,
		createdAt:            createdAt,
		updatedAt:            updatedAt,
		isConstructed:        true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setUserID(userID),
		order.setService(service),
		order.setPickupOption(pickupOption),
		order.setDeliveryOption(deliveryOption),
		order.setWeightAndPrice(weight, price),
		order.setStatus(status),
		order.setPaymentStatus(paymentStatus),
		validateRating(rating),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed.
// Call this when reconstructing orders from persistence to guarantee
// data integrity.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's identifier.
func (o *Order) ID() ID {
	return o.id
}

// UserID returns the owning customer's identifier.
func (o *Order) UserID() kernel.UUID {
	return o.userID
}

// Service returns the ordered laundry service.
func (o *Order) Service() ServiceType {
	return o.service
}

// PickupOption returns the pickup fulfillment choice.
func (o *Order) PickupOption() PickupOption {
	return o.pickupOption
}

// DeliveryOption returns the delivery fulfillment choice.
func (o *Order) DeliveryOption() DeliveryOption {
	return o.deliveryOption
}

// Weight returns the laundry weight in kilograms, zero until weighed.
func (o *Order) Weight() decimal.Decimal {
	return o.weight
}

// Price returns the current bill total, zero until weighed.
func (o *Order) Price() decimal.Decimal {
	return o.price
}

// Status returns the current lifecycle stage.
func (o *Order) Status() Status {
	return o.status
}

// Rating returns the customer rating: 0 means unrated, otherwise 1..5.
func (o *Order) Rating() int {
	return o.rating
}

// PaymentMethod returns the confirmed payment method, empty until confirmed.
func (o *Order) PaymentMethod() string {
	return o.paymentMethod
}

// PaymentStatus returns the settlement state.
func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

// ComplaintDescription returns the complaint text, empty when none filed.
func (o *Order) ComplaintDescription() string {
	return o.complaintDescription
}

// ComplaintImageURL returns the complaint attachment reference.
func (o *Order) ComplaintImageURL() string {
	return o.complaintImageURL
}

// HasComplaint reports whether a complaint has been filed.
func (o *Order) HasComplaint() bool {
	return o.complaintDescription != ""
}

// CreatedAt returns the placement timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the last-modified timestamp.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// AdvanceTo moves the order to the target lifecycle stage.
//
// Business rules:
//   - The transition must be present in the status transition table;
//     out-of-table moves fail with a validation error
//   - Entering Completed forces the payment status to Paid regardless of
//     its current value
//   - Entering Accepted or Washing produces a customer Notice; all other
//     targets return a nil Notice
//
// The returned Notice, if any, must be emitted after the mutation is
// persisted; emission failures do not undo the transition.
func (o *Order) AdvanceTo(target Status, now time.Time) (*Notice, error) {
	newStatus, err := o.status.Advance(target)
	if err != nil {
		return nil, err
	}

	o.status = newStatus
	if newStatus == Completed {
		o.paymentStatus = PaymentPaid
	}
	o.updatedAt = now

	return noticeForStatus(o, newStatus), nil
}

// ApplyWeighing records the measured weight and the price derived from it,
// and moves the order to ReceivedByFacility. This single operation is both
// a pricing step and a lifecycle transition; the two are deliberately
// coupled because the bill only exists once the laundry has been weighed.
//
// Business rules:
//   - Weight must be greater than zero
//   - Price must not be negative (it is computed by the pricing engine and
//     passed in, never invented here)
//   - Weighing is only allowed before washing starts; re-weighing while
//     still in ReceivedByFacility corrects a mistaken entry
//
// Always returns the bill-ready Notice on success.
func (o *Order) ApplyWeighing(weight, price decimal.Decimal, now time.Time) (*Notice, error) {
	if !weight.IsPositive() {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"weight",
			fmt.Errorf("%s is not greater than 0", weight),
		)
	}
	if price.IsNegative() {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"price",
			fmt.Errorf("%s is negative", price),
		)
	}
	if !o.status.CanBeWeighed() {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("order in status %s cannot be weighed", o.status),
		)
	}

	o.weight = weight
	o.price = price
	o.status = ReceivedByFacility
	o.updatedAt = now

	return billIssuedNotice(o.id), nil
}

// ConfirmPayment records the customer's payment method choice.
// Only COD is accepted; the payment status becomes CODBilled and settles to
// Paid when the order completes.
func (o *Order) ConfirmPayment(method string, now time.Time) error {
	if method != PaymentMethodCOD {
		return errs.NewValueIsInvalidErrorWithCause(
			"paymentMethod",
			fmt.Errorf("%q is not an accepted payment method", method),
		)
	}

	o.paymentMethod = method
	o.paymentStatus = PaymentCODBilled
	o.updatedAt = now
	return nil
}

// SetRating records a customer rating between 1 and 5.
// Rating is allowed in any lifecycle stage, including before completion;
// the legacy backend behaves this way and product has not asked otherwise.
// A repeated rating overwrites the previous one.
func (o *Order) SetRating(rating int, now time.Time) error {
	if rating < 1 || rating > 5 {
		return errs.NewValueIsOutOfRangeError("rating", rating, 1, 5)
	}

	o.rating = rating
	o.updatedAt = now
	return nil
}

// FileComplaint records a complaint description and optional image
// reference. Complaints are write-once: a second attempt fails with an
// already-exists error and leaves the first submission untouched. The
// repository enforces the same predicate with a conditional update so
// concurrent submissions cannot both win.
func (o *Order) FileComplaint(description, imageURL string, now time.Time) error {
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}
	if o.HasComplaint() {
		return errs.NewObjectAlreadyExistsError("complaint", o.id.String())
	}

	o.complaintDescription = description
	o.complaintImageURL = imageURL
	o.updatedAt = now
	return nil
}

func (o *Order) setID(id ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	o.userID = userID
	return nil
}

func (o *Order) setService(service ServiceType) error {
	if err := service.Validate(); err != nil {
		return err
	}
	o.service = service
	return nil
}

func (o *Order) setPickupOption(option PickupOption) error {
	if err := option.Validate(); err != nil {
		return err
	}
	o.pickupOption = option
	return nil
}

func (o *Order) setDeliveryOption(option DeliveryOption) error {
	if err := option.Validate(); err != nil {
		return err
	}
	o.deliveryOption = option
	return nil
}

func (o *Order) setWeightAndPrice(weight, price decimal.Decimal) error {
	if weight.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(
			"weight",
			fmt.Errorf("%s is negative", weight),
		)
	}
	if price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(
			"price",
			fmt.Errorf("%s is negative", price),
		)
	}
	o.weight = weight
	o.price = price
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setPaymentStatus(status PaymentStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.paymentStatus = status
	return nil
}

func validateRating(rating int) error {
	if rating != 0 && (rating < 1 || rating > 5) {
		return errs.NewValueIsOutOfRangeError("rating", rating, 1, 5)
	}
	return nil
}
