package ports

import "context"

// SequenceGenerator produces strictly increasing integers per sequence name,
// used to build human-readable order identifiers.
//
// Next must be atomic: two concurrent calls for the same name never observe
// or return the same value, and a missing counter is implicitly created so
// the first call returns 1. The only failure mode is a storage error.
type SequenceGenerator interface {
	Next(ctx context.Context, name string) (int64, error)
}

// OrderIDSequence is the sequence name backing order identifiers.
const OrderIDSequence = "orderId"
