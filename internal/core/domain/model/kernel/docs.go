// Package kernel provides core domain primitives for the laundry backend.
// It implements fundamental building blocks following Domain-Driven Design
// principles that are used throughout the domain model.
//
// The package includes:
//   - UUID: A value object for unique identifiers with validation and
//     comparison capabilities, used for user and notification identity
//
// Order identity is deliberately not a UUID; orders carry a human-readable
// sequence-derived identifier owned by the order package.
//
// These primitives enforce domain invariants and validation rules, ensuring
// that domain objects are always in a valid state. They are immutable and
// thread-safe, making them suitable for concurrent use.
package kernel
