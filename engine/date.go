package engine

import (
	"fmt"
	"time"
)

// =============================================================================
// DATE - Calendar date without a time-of-day
// =============================================================================

// Date is a plain calendar date. The zero value means "absent" (legacy
// records without a join date).
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate constructs a Date, normalizing overflow the way time.Date
// does (e.g. Feb 29 on a non-leap year becomes Mar 1). Grant
// anniversaries rely on this normalization.
func NewDate(year int, month time.Month, day int) Date {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// DateOf extracts the calendar date of an instant in its own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDate parses "YYYY-MM-DD".
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return DateOf(t), nil
}

func (d Date) IsZero() bool { return d == Date{} }

func (d Date) midnight() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// Comparison
func (d Date) Before(other Date) bool { return d.midnight().Before(other.midnight()) }
func (d Date) After(other Date) bool  { return d.midnight().After(other.midnight()) }
func (d Date) Equal(other Date) bool  { return d == other }

// Arithmetic
func (d Date) AddDays(n int) Date  { return DateOf(d.midnight().AddDate(0, 0, n)) }
func (d Date) AddYears(n int) Date { return DateOf(d.midnight().AddDate(n, 0, 0)) }

func (d Date) Weekday() time.Weekday { return d.midnight().Weekday() }

func (d Date) String() string { return d.midnight().Format("2006-01-02") }

// =============================================================================
// CLOCK TIME - Time-of-day (expected start times, shift starts)
// =============================================================================

// ClockTime is a wall-clock time of day.
type ClockTime struct {
	Hour   int
	Minute int
}

// ParseClockTime parses "HH:MM".
func ParseClockTime(s string) (ClockTime, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return ClockTime{}, fmt.Errorf("invalid clock time %q: %w", s, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return ClockTime{}, fmt.Errorf("invalid clock time %q: out of range", s)
	}
	return ClockTime{Hour: h, Minute: m}, nil
}

// MinuteOfDay returns minutes since local midnight.
func (c ClockTime) MinuteOfDay() int { return c.Hour*60 + c.Minute }

func (c ClockTime) String() string { return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute) }

// MinuteOfDay returns the wall-clock minutes since midnight of an
// instant, in the instant's own location. Seconds are truncated.
func MinuteOfDay(t time.Time) int { return t.Hour()*60 + t.Minute() }

// =============================================================================
// CLOCK - Injectable "now" provider
// =============================================================================

// Clock supplies the current time. Inject FixedClock in tests for
// deterministic as-of dates.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns the real wall clock.
func SystemClock() Clock { return systemClock{} }

// FixedClock always reports the same instant.
type FixedClock struct {
	At time.Time
}

func (f FixedClock) Now() time.Time { return f.At }
