package queries

import (
	"context"
	"time"

	"cleanly/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetRevenueQueryHandler aggregates completed-order revenue in the database.
type GetRevenueQueryHandler struct {
	db *gorm.DB
}

// NewGetRevenueQueryHandler creates a handler for revenue aggregation.
func NewGetRevenueQueryHandler(db *gorm.DB) GetRevenueQueryHandler {
	return GetRevenueQueryHandler{db: db}
}

// revenueWindow returns the half-open interval [start, end) for a filter
// anchored at now. The weekly window starts on Sunday. The all-time filter
// has no window; the second return value reports whether one applies.
func revenueWindow(filter string, now time.Time) (start, end time.Time, bounded bool) {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch filter {
	case RevenueFilterDaily:
		return midnight, midnight.AddDate(0, 0, 1), true
	case RevenueFilterWeekly:
		weekStart := midnight.AddDate(0, 0, -int(now.Weekday()))
		return weekStart, weekStart.AddDate(0, 0, 7), true
	case RevenueFilterMonthly:
		monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return monthStart, monthStart.AddDate(0, 1, 0), true
	case RevenueFilterYearly, RevenueFilterYearlyDetail:
		yearStart := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())
		return yearStart, yearStart.AddDate(1, 0, 0), true
	default:
		return time.Time{}, time.Time{}, false
	}
}

// Handle executes the revenue query.
func (h GetRevenueQueryHandler) Handle(
	ctx context.Context,
	query GetRevenueQuery,
) (GetRevenueQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetRevenueQueryResponse{}, err
	}

	if query.Filter() == RevenueFilterYearlyDetail {
		return h.handleYearlyDetail(ctx, query)
	}

	start, end, bounded := revenueWindow(query.Filter(), time.Now())

	var total decimal.Decimal
	var row *gorm.DB
	if bounded {
		row = h.db.WithContext(ctx).Raw(`
			SELECT COALESCE(SUM(price), 0)
			FROM orders
			WHERE status = ? AND updated_at >= ? AND updated_at < ?
		`, order.Completed.String(), start, end)
	} else {
		row = h.db.WithContext(ctx).Raw(`
			SELECT COALESCE(SUM(price), 0)
			FROM orders
			WHERE status = ?
		`, order.Completed.String())
	}

	if err := row.Row().Scan(&total); err != nil {
		return GetRevenueQueryResponse{}, err
	}

	return GetRevenueQueryResponse{
		Filter: query.Filter(),
		Total:  total,
	}, nil
}

// handleYearlyDetail groups this year's revenue per month. Months without
// completed orders produce no row, so they are absent from the response.
func (h GetRevenueQueryHandler) handleYearlyDetail(
	ctx context.Context,
	query GetRevenueQuery,
) (GetRevenueQueryResponse, error) {
	start, end, _ := revenueWindow(query.Filter(), time.Now())

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			EXTRACT(MONTH FROM updated_at)::int AS month,
			SUM(price) AS total
		FROM orders
		WHERE status = ? AND updated_at >= ? AND updated_at < ?
		GROUP BY month
		ORDER BY month
	`, order.Completed.String(), start, end).Rows()
	if err != nil {
		return GetRevenueQueryResponse{}, err
	}
	defer rows.Close()

	response := GetRevenueQueryResponse{
		Filter: query.Filter(),
		Total:  decimal.Zero,
		Months: make([]MonthlyRevenueView, 0),
	}

	for rows.Next() {
		var month int
		var total decimal.Decimal
		if err = rows.Scan(&month, &total); err != nil {
			return GetRevenueQueryResponse{}, err
		}

		response.Months = append(response.Months, MonthlyRevenueView{
			Month: time.Month(month),
			Total: total,
		})
		response.Total = response.Total.Add(total)
	}

	if err = rows.Err(); err != nil {
		return GetRevenueQueryResponse{}, err
	}

	return response, nil
}
