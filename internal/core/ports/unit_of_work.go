package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and repositories bound to the current
// transaction. Client code must explicitly manage the transaction lifecycle.
//
// Notification emission is intentionally not part of the unit of work:
// notices are emitted after Commit through a NotificationEmitter, so they
// can never hold up or roll back the primary mutation.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository bound to the current transaction.
	OrderRepository() OrderRepository

	// UserRepository returns a UserRepository bound to the current transaction.
	UserRepository() UserRepository

	// NotificationRepository returns a NotificationRepository bound to the
	// current transaction. Used by notification CRUD commands; lifecycle
	// side effects go through the post-commit emitter instead.
	NotificationRepository() NotificationRepository

	// PriceListRepository returns a PriceListRepository bound to the current
	// transaction, so a weighing reads prices from a consistent snapshot.
	PriceListRepository() PriceListRepository

	// SequenceGenerator returns a SequenceGenerator bound to the current
	// transaction.
	SequenceGenerator() SequenceGenerator
}
