package expiry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAddMonths(t *testing.T) {
	tests := []struct {
		name   string
		start  time.Time
		months int
		want   time.Time
	}{
		{"simple", date(2024, time.January, 15), 3, date(2024, time.April, 15)},
		{"clamps to leap february", date(2024, time.January, 31), 1, date(2024, time.February, 29)},
		{"clamps to february", date(2023, time.January, 31), 1, date(2023, time.February, 28)},
		{"clamps to 30 day month", date(2024, time.March, 31), 1, date(2024, time.April, 30)},
		{"crosses year", date(2024, time.November, 30), 3, date(2025, time.February, 28)},
		{"many years", date(2020, time.February, 29), 48, date(2024, time.February, 29)},
		{"leap day to non leap", date(2024, time.February, 29), 12, date(2025, time.February, 28)},
		{"full service life", date(2000, time.June, 1), 600, date(2050, time.June, 1)},
		{"negative", date(2024, time.March, 31), -1, date(2024, time.February, 29)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AddMonths(tt.start, tt.months))
		})
	}
}

func TestAddMonthsIgnoresClockTime(t *testing.T) {
	start := time.Date(2024, time.January, 15, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, date(2024, time.February, 15), AddMonths(start, 1))
}

func TestEvaluateReferenceExample(t *testing.T) {
	status := Evaluate(date(2024, time.April, 10), date(2024, time.January, 15), 3, DefaultWindowDays)

	assert.Equal(t, date(2024, time.April, 15), status.ExpirationDate)
	assert.Equal(t, 5, status.DaysRemaining)
	assert.True(t, status.Expiring)
}

func TestIsExpiringBoundaries(t *testing.T) {
	today := date(2024, time.April, 10)

	assert.True(t, IsExpiring(today, today, DefaultWindowDays), "expires today")
	assert.True(t, IsExpiring(today, today.AddDate(0, 0, 90), DefaultWindowDays), "last day of window")
	assert.False(t, IsExpiring(today, today.AddDate(0, 0, 91), DefaultWindowDays), "past window")
	assert.False(t, IsExpiring(today, today.AddDate(0, 0, -1), DefaultWindowDays), "already expired")
	assert.True(t, IsExpiring(today, today, 0), "zero window still includes today")
}

func TestDaysRemaining(t *testing.T) {
	today := date(2024, time.April, 10)

	assert.Equal(t, 0, DaysRemaining(today, today))
	assert.Equal(t, 90, DaysRemaining(today, date(2024, time.July, 9)))
	assert.Equal(t, -3, DaysRemaining(today, date(2024, time.April, 7)))
	// DST in the caller's zone must not shift the day count.
	msk := time.FixedZone("UTC+3", 3*3600)
	assert.Equal(t, 1, DaysRemaining(time.Date(2024, time.March, 30, 0, 0, 0, 0, msk), date(2024, time.March, 31)))
}

func TestWindow(t *testing.T) {
	from, to := Window(time.Date(2024, time.April, 10, 15, 30, 0, 0, time.UTC), 90)
	assert.Equal(t, date(2024, time.April, 10), from)
	assert.Equal(t, date(2024, time.July, 9), to)
	assert.Equal(t, to, LatestInspection(from, 90))
}

func TestToday(t *testing.T) {
	now := time.Date(2024, time.April, 10, 22, 30, 0, 0, time.UTC)
	vladivostok := time.FixedZone("UTC+10", 10*3600)

	assert.Equal(t, date(2024, time.April, 10), Today(now, nil))
	assert.Equal(t, date(2024, time.April, 11), Today(now, vladivostok))
}

func TestFormatAndParse(t *testing.T) {
	d, err := Parse("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", Format(d))

	_, err = Parse("2024-02-30")
	assert.Error(t, err)
	_, err = Parse("29.02.2024")
	assert.Error(t, err)
}
