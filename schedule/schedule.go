/*
Package schedule assigns shift patterns to employees by month.

PURPOSE:
  Shift workers do not carry a fixed start time; their expected start
  comes from a monthly assignment mapping each weekday to a shift code.
  This package holds the assignment model and turns stored assignments
  into the lookup the lateness evaluator consumes.

KEY CONCEPTS:
  - Assignment: one employee's weekday-to-shift map for one month
  - Calendar: resolves concrete dates against assignments, producing
    an engine.ShiftLookup

A weekday absent from the map means no shift scheduled that day, which
surfaces as "no applicable schedule" downstream.

SEE ALSO:
  - engine/lateness.go: consumes the lookup this package produces
*/
package schedule

import (
	"fmt"
	"time"

	"github.com/kintai/attendance-engine/engine"
)

// =============================================================================
// MONTH
// =============================================================================

// Month is a calendar month, the granularity of shift assignments.
type Month struct {
	Year  int
	Month time.Month
}

// ParseMonth parses "YYYY-MM".
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Month{}, fmt.Errorf("parse month %q: %w", s, err)
	}
	return Month{Year: t.Year(), Month: t.Month()}, nil
}

// MonthOf returns the month containing the date.
func MonthOf(d engine.Date) Month {
	return Month{Year: d.Year, Month: d.Month}
}

func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

func (m Month) IsZero() bool {
	return m.Year == 0 && m.Month == 0
}

// =============================================================================
// ASSIGNMENTS
// =============================================================================

// Assignment is one employee's shift pattern for one month. Weekdays
// missing from the map carry no shift.
type Assignment struct {
	EmployeeID engine.EmployeeID
	Month      Month
	Shifts     map[time.Weekday]engine.ShiftCode
}

// Validate rejects assignments with unknown shift codes.
func (a Assignment) Validate() error {
	if a.EmployeeID == "" {
		return fmt.Errorf("shift assignment: missing employee id")
	}
	if a.Month.IsZero() {
		return fmt.Errorf("shift assignment: missing month")
	}
	for wd, code := range a.Shifts {
		if !code.Valid() {
			return fmt.Errorf("shift assignment: unknown shift code %d on %s", code, wd)
		}
	}
	return nil
}

// =============================================================================
// CALENDAR
// =============================================================================

// Calendar resolves dates to shift codes for one employee, from that
// employee's assignments keyed by month.
type Calendar struct {
	assignments map[Month]Assignment
}

// NewCalendar indexes the assignments. All must belong to the same
// employee; mixing employees is a caller bug and later lookups would
// silently blend their patterns.
func NewCalendar(assignments []Assignment) *Calendar {
	byMonth := make(map[Month]Assignment, len(assignments))
	for _, a := range assignments {
		byMonth[a.Month] = a
	}
	return &Calendar{assignments: byMonth}
}

// Shift returns the shift code scheduled on the date, if any.
func (c *Calendar) Shift(d engine.Date) (engine.ShiftCode, bool) {
	a, ok := c.assignments[MonthOf(d)]
	if !ok {
		return 0, false
	}
	code, ok := a.Shifts[d.Weekday()]
	return code, ok
}

// Lookup adapts the calendar to the evaluator's lookup contract.
func (c *Calendar) Lookup() engine.ShiftLookup {
	return c.Shift
}
