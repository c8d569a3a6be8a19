package queries

import (
	"errors"

	"cleanly/internal/core/domain/model/kernel"
	"cleanly/internal/pkg/guard"
)

// Dashboard stages group lifecycle statuses the way the admin screens slice
// them: fresh intake, everything in flight, and finished orders.
const (
	StageIncoming  = "incoming"
	StageOngoing   = "ongoing"
	StageCompleted = "completed"
)

var (
	ErrGetOrdersByStageQueryIsNotConstructed = errors.New(
		"GetOrdersByStageQuery must be created via NewGetOrdersByStageQuery constructor",
	)
	ErrStageIsInvalid = errors.New("stage must be incoming, ongoing or completed")
)

// GetOrdersByStageQuery retrieves orders for one admin dashboard stage,
// joined with the owning customer.
type GetOrdersByStageQuery struct { //nolint:recvcheck //using for validation
	stage string

	guard guard.ConstructorGuard
}

// NewGetOrdersByStageQuery creates a query for an admin dashboard stage.
func NewGetOrdersByStageQuery(stage string) (GetOrdersByStageQuery, error) {
	stageQuery := GetOrdersByStageQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := stageQuery.setStage(stage); err != nil {
		return GetOrdersByStageQuery{}, err
	}

	return stageQuery, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrdersByStageQueryIsNotConstructed if validation fails.
func (q GetOrdersByStageQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByStageQueryIsNotConstructed)
}

// Stage returns the dashboard stage being listed.
func (q GetOrdersByStageQuery) Stage() string {
	return q.stage
}

func (q *GetOrdersByStageQuery) setStage(stage string) error {
	switch stage {
	case StageIncoming, StageOngoing, StageCompleted:
		q.stage = stage
		return nil
	default:
		return ErrStageIsInvalid
	}
}

// OrderWithUserView is an order row joined with its owning customer, as the
// admin dashboards display it.
type OrderWithUserView struct {
	OrderView
	UserID       kernel.UUID
	UserFullName string
	UserPhone    string
	UserAddress  string
}
