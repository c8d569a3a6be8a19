package queries

import (
	"errors"
	"time"

	"cleanly/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// Revenue filters select the aggregation window. All windows are anchored to
// the current moment and bucket on the order's last-modified timestamp, which
// for completed orders is the completion time.
const (
	RevenueFilterAll          = "all"
	RevenueFilterDaily        = "daily"
	RevenueFilterWeekly       = "weekly"
	RevenueFilterMonthly      = "monthly"
	RevenueFilterYearly       = "yearly"
	RevenueFilterYearlyDetail = "yearly_detail"
)

var (
	ErrGetRevenueQueryIsNotConstructed = errors.New(
		"GetRevenueQuery must be created via NewGetRevenueQuery constructor",
	)
	ErrRevenueFilterIsInvalid = errors.New(
		"filter must be one of all, daily, weekly, monthly, yearly, yearly_detail",
	)
)

// GetRevenueQuery sums the revenue of completed orders over a time window.
type GetRevenueQuery struct { //nolint:recvcheck //using for validation
	filter string

	guard guard.ConstructorGuard
}

// NewGetRevenueQuery creates a revenue query for the given filter.
// An empty filter defaults to the all-time window.
func NewGetRevenueQuery(filter string) (GetRevenueQuery, error) {
	revenueQuery := GetRevenueQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := revenueQuery.setFilter(filter); err != nil {
		return GetRevenueQuery{}, err
	}

	return revenueQuery, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetRevenueQueryIsNotConstructed if validation fails.
func (q GetRevenueQuery) Validate() error {
	return q.guard.Validate(ErrGetRevenueQueryIsNotConstructed)
}

// Filter returns the selected aggregation window.
func (q GetRevenueQuery) Filter() string {
	return q.filter
}

func (q *GetRevenueQuery) setFilter(filter string) error {
	if filter == "" {
		filter = RevenueFilterAll
	}

	switch filter {
	case RevenueFilterAll, RevenueFilterDaily, RevenueFilterWeekly,
		RevenueFilterMonthly, RevenueFilterYearly, RevenueFilterYearlyDetail:
		q.filter = filter
		return nil
	default:
		return ErrRevenueFilterIsInvalid
	}
}

// MonthlyRevenueView is one month's revenue within the yearly detail.
// Months without completed orders are omitted from the result entirely.
type MonthlyRevenueView struct {
	Month time.Month
	Total decimal.Decimal
}

// GetRevenueQueryResponse carries the aggregated revenue.
// Months is populated only for the yearly_detail filter, in ascending month
// order; Total is always the sum over the selected window.
type GetRevenueQueryResponse struct {
	Filter string
	Total  decimal.Decimal
	Months []MonthlyRevenueView
}
