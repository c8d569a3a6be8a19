package queries

import (
	"errors"

	"cleanly/internal/pkg/guard"
)

var (
	ErrGetComplaintsQueryIsNotConstructed = errors.New(
		"GetComplaintsQuery must be created via NewGetComplaintsQuery constructor",
	)
)

// GetComplaintsQuery retrieves every order that carries a complaint, joined
// with the owning customer, most recently touched first.
type GetComplaintsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetComplaintsQuery creates a query for the admin complaint listing.
// This is a parameterless query.
func NewGetComplaintsQuery() GetComplaintsQuery {
	return GetComplaintsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetComplaintsQueryIsNotConstructed if validation fails.
func (q GetComplaintsQuery) Validate() error {
	return q.guard.Validate(ErrGetComplaintsQueryIsNotConstructed)
}
