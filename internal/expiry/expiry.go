// Package expiry computes when a component reaches the end of its service
// life and whether that moment falls inside the notification window.
package expiry

import "time"

// DefaultWindowDays is the look-ahead used by both the API listing and the
// notification worker.
const DefaultWindowDays = 90

const dateLayout = "2006-01-02"

// Status is the computed expiry state of one component on a given day.
type Status struct {
	ExpirationDate time.Time
	DaysRemaining  int
	Expiring       bool
}

// Civil truncates t to midnight UTC of its own calendar date.
func Civil(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Today returns the civil date of now as seen in loc.
func Today(now time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return Civil(now.In(loc))
}

// AddMonths adds calendar months to d. When the target month is shorter than
// the day of d the result is clamped to the target month's last day, so
// Jan 31 + 1 month is Feb 28 (or 29).
func AddMonths(d time.Time, months int) time.Time {
	d = Civil(d)
	y, m, day := d.Date()

	total := int(m) - 1 + months
	ty := y + total/12
	tm := total % 12
	if tm < 0 {
		tm += 12
		ty--
	}
	target := time.Month(tm + 1)

	if last := daysIn(ty, target); day > last {
		day = last
	}
	return time.Date(ty, target, day, 0, 0, 0, 0, time.UTC)
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// ExpirationDate is the last inspection date plus the service life.
func ExpirationDate(lastInspection time.Time, serviceLifeMonths int) time.Time {
	return AddMonths(lastInspection, serviceLifeMonths)
}

// DaysRemaining counts whole calendar days from today to expiration.
// Negative when the component is already past its expiration.
func DaysRemaining(today, expiration time.Time) int {
	return int(Civil(expiration).Sub(Civil(today)).Hours() / 24)
}

// Window returns the inclusive [from, to] range of expiration dates that
// count as expiring on today.
func Window(today time.Time, windowDays int) (time.Time, time.Time) {
	from := Civil(today)
	return from, from.AddDate(0, 0, windowDays)
}

// IsExpiring reports whether expiration lies in [today, today+windowDays].
func IsExpiring(today, expiration time.Time, windowDays int) bool {
	from, to := Window(today, windowDays)
	exp := Civil(expiration)
	return !exp.Before(from) && !exp.After(to)
}

// Evaluate computes the full expiry status of a component.
func Evaluate(today, lastInspection time.Time, serviceLifeMonths, windowDays int) Status {
	exp := ExpirationDate(lastInspection, serviceLifeMonths)
	return Status{
		ExpirationDate: exp,
		DaysRemaining:  DaysRemaining(today, exp),
		Expiring:       IsExpiring(today, exp, windowDays),
	}
}

// LatestInspection is the newest last_inspection_date that can still expire
// on or before the end of the window. Service life is at least one month, so
// anything inspected after windowEnd cannot be inside the window.
func LatestInspection(today time.Time, windowDays int) time.Time {
	_, to := Window(today, windowDays)
	return to
}

// Format renders a civil date as YYYY-MM-DD.
func Format(d time.Time) string {
	return Civil(d).Format(dateLayout)
}

// Parse reads a YYYY-MM-DD date.
func Parse(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}
