package queries

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRevenueWindow_Daily(t *testing.T) {
	now := time.Date(2025, 3, 12, 15, 4, 5, 0, time.UTC) // a Wednesday
	start, end, bounded := revenueWindow(RevenueFilterDaily, now)
	require.True(t, bounded)
	assert.Equal(t, time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 3, 13, 0, 0, 0, 0, time.UTC), end)
}

func TestRevenueWindow_WeeklyStartsOnSunday(t *testing.T) {
	now := time.Date(2025, 3, 12, 15, 4, 5, 0, time.UTC) // a Wednesday
	start, end, bounded := revenueWindow(RevenueFilterWeekly, now)
	require.True(t, bounded)
	assert.Equal(t, time.Sunday, start.Weekday())
	assert.Equal(t, time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 3, 16, 0, 0, 0, 0, time.UTC), end)
}

func TestRevenueWindow_WeeklyOnSundayStartsToday(t *testing.T) {
	now := time.Date(2025, 3, 9, 8, 0, 0, 0, time.UTC) // a Sunday
	start, _, bounded := revenueWindow(RevenueFilterWeekly, now)
	require.True(t, bounded)
	assert.Equal(t, time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC), start)
}

func TestRevenueWindow_Monthly(t *testing.T) {
	now := time.Date(2025, 12, 31, 23, 59, 59, 0, time.UTC)
	start, end, bounded := revenueWindow(RevenueFilterMonthly, now)
	require.True(t, bounded)
	assert.Equal(t, time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), end)
}

func TestRevenueWindow_YearlyCoversYearlyDetail(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	for _, filter := range []string{RevenueFilterYearly, RevenueFilterYearlyDetail} {
		start, end, bounded := revenueWindow(filter, now)
		require.True(t, bounded, filter)
		assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), start, filter)
		assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), end, filter)
	}
}

func TestRevenueWindow_AllTimeIsUnbounded(t *testing.T) {
	_, _, bounded := revenueWindow(RevenueFilterAll, time.Now())
	assert.False(t, bounded)
}
