// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"cleanly/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends on the narrowest interface that covers its needs, so
// tests only mock what a command actually touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// UserRepoFactory provides access to the user repository within a transaction.
	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// NotificationRepoFactory provides access to the notification repository
	// within a transaction.
	NotificationRepoFactory interface {
		NotificationRepository() ports.NotificationRepository
	}

	// PriceListRepoFactory provides access to the price list within a transaction.
	PriceListRepoFactory interface {
		PriceListRepository() ports.PriceListRepository
	}

	// SequenceFactory provides access to the sequence generator within a transaction.
	SequenceFactory interface {
		SequenceGenerator() ports.SequenceGenerator
	}

	// OrderUoW manages transactions for order-only operations:
	// status advancement, payment confirmation, rating, complaints.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// CreateOrderUoW manages the order placement transaction. It spans the
	// sequence counter (for the new identifier), the user repository (the
	// owner must exist) and the order repository.
	CreateOrderUoW interface {
		TxManager
		OrderRepoFactory
		UserRepoFactory
		SequenceFactory
	}

	// CreateOrderUoWFactory creates new order placement unit of work instances.
	CreateOrderUoWFactory interface {
		Create() CreateOrderUoW
	}

	// WeighingUoW manages the weighing transaction, which reads the price
	// list and updates the order in one atomic step.
	WeighingUoW interface {
		TxManager
		OrderRepoFactory
		PriceListRepoFactory
	}

	// WeighingUoWFactory creates new weighing unit of work instances.
	WeighingUoWFactory interface {
		Create() WeighingUoW
	}

	// UserUoW manages transactions for user-only operations.
	UserUoW interface {
		TxManager
		UserRepoFactory
	}

	// UserUoWFactory creates new user unit of work instances.
	UserUoWFactory interface {
		Create() UserUoW
	}

	// NotificationUoW manages transactions for notification-only operations.
	NotificationUoW interface {
		TxManager
		NotificationRepoFactory
	}

	// NotificationUoWFactory creates new notification unit of work instances.
	NotificationUoWFactory interface {
		Create() NotificationUoW
	}
)
