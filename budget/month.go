package budget

import (
	"time"
)

// =============================================================================
// MONTH KEY - The YYYY-MM ledger period
// =============================================================================

// MonthKey identifies a ledger period, formatted "2006-01". Payments are
// partitioned by MonthKey and the rollover archives one MonthKey at a time.
type MonthKey string

const monthKeyLayout = "2006-01"

// MonthOf returns the period containing t.
func MonthOf(t time.Time) MonthKey {
	return MonthKey(t.Format(monthKeyLayout))
}

// ParseMonthKey validates a period string from an external caller.
func ParseMonthKey(s string) (MonthKey, error) {
	if _, err := time.Parse(monthKeyLayout, s); err != nil {
		return "", ErrInvalidMonthKey
	}
	return MonthKey(s), nil
}

// Time returns the first instant of the period (UTC).
func (m MonthKey) Time() time.Time {
	t, err := time.Parse(monthKeyLayout, string(m))
	if err != nil {
		return time.Time{}
	}
	return t
}

func (m MonthKey) Valid() bool {
	_, err := time.Parse(monthKeyLayout, string(m))
	return err == nil
}

func (m MonthKey) Before(o MonthKey) bool { return m.Time().Before(o.Time()) }

func (m MonthKey) String() string { return string(m) }

// SameMonth reports whether two instants fall in the same calendar month.
// The rollover only ever compares last-seen to now; months with no app
// launch are skipped, not back-filled.
func SameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}
