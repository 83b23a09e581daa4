package schedule_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kintai/attendance-engine/engine"
	"github.com/kintai/attendance-engine/schedule"
)

func march() schedule.Month {
	return schedule.Month{Year: 2025, Month: time.March}
}

func assignment(shifts map[time.Weekday]engine.ShiftCode) schedule.Assignment {
	return schedule.Assignment{
		EmployeeID: "emp-1",
		Month:      march(),
		Shifts:     shifts,
	}
}

// =============================================================================
// MONTH PARSING
// =============================================================================

func TestParseMonth(t *testing.T) {
	m, err := schedule.ParseMonth("2025-03")
	require.NoError(t, err)
	assert.Equal(t, march(), m)
	assert.Equal(t, "2025-03", m.String())

	_, err = schedule.ParseMonth("2025/03")
	assert.Error(t, err)
	_, err = schedule.ParseMonth("2025-13")
	assert.Error(t, err)
}

func TestMonthOf(t *testing.T) {
	d := engine.NewDate(2025, time.March, 31)
	assert.Equal(t, march(), schedule.MonthOf(d))
}

// =============================================================================
// CALENDAR RESOLUTION
// =============================================================================

func TestCalendar_ResolvesWeekdayPattern(t *testing.T) {
	// GIVEN: March 2025 pattern - early shift Mon, night shift Fri
	// THEN: concrete Mondays and Fridays resolve, other days do not

	cal := schedule.NewCalendar([]schedule.Assignment{
		assignment(map[time.Weekday]engine.ShiftCode{
			time.Monday: engine.ShiftEarly,
			time.Friday: engine.ShiftNight,
		}),
	})

	code, ok := cal.Shift(engine.NewDate(2025, time.March, 10)) // Monday
	require.True(t, ok)
	assert.Equal(t, engine.ShiftEarly, code)

	code, ok = cal.Shift(engine.NewDate(2025, time.March, 14)) // Friday
	require.True(t, ok)
	assert.Equal(t, engine.ShiftNight, code)

	_, ok = cal.Shift(engine.NewDate(2025, time.March, 11)) // Tuesday
	assert.False(t, ok)
}

func TestCalendar_UnassignedMonth(t *testing.T) {
	cal := schedule.NewCalendar([]schedule.Assignment{
		assignment(map[time.Weekday]engine.ShiftCode{time.Monday: engine.ShiftEarly}),
	})

	// April Monday; no April assignment.
	_, ok := cal.Shift(engine.NewDate(2025, time.April, 7))
	assert.False(t, ok)
}

func TestCalendar_MonthsAreIndependent(t *testing.T) {
	aprilAssignment := schedule.Assignment{
		EmployeeID: "emp-1",
		Month:      schedule.Month{Year: 2025, Month: time.April},
		Shifts:     map[time.Weekday]engine.ShiftCode{time.Monday: engine.ShiftLateNight},
	}
	cal := schedule.NewCalendar([]schedule.Assignment{
		assignment(map[time.Weekday]engine.ShiftCode{time.Monday: engine.ShiftEarly}),
		aprilAssignment,
	})

	marchCode, _ := cal.Shift(engine.NewDate(2025, time.March, 10))
	aprilCode, _ := cal.Shift(engine.NewDate(2025, time.April, 7))
	assert.Equal(t, engine.ShiftEarly, marchCode)
	assert.Equal(t, engine.ShiftLateNight, aprilCode)
}

func TestCalendar_FeedsLatenessEvaluator(t *testing.T) {
	// End to end: calendar lookup drives the overnight retry.
	cal := schedule.NewCalendar([]schedule.Assignment{
		assignment(map[time.Weekday]engine.ShiftCode{time.Monday: engine.ShiftLateNight}),
	})

	e := engine.NewLatenessEvaluator()
	emp := engine.Employee{ID: "emp-1", Name: "Sato", ShiftWorker: true}

	// Tuesday 00:10 check-in against Monday's 23:50 shift.
	checkIn := time.Date(2025, time.March, 11, 0, 10, 0, 0, time.UTC)
	res, err := e.Evaluate(emp, checkIn, cal.Lookup())
	require.NoError(t, err)
	assert.Equal(t, 20, res.LateMinutes)
}

// =============================================================================
// VALIDATION
// =============================================================================

func TestAssignment_Validate(t *testing.T) {
	valid := assignment(map[time.Weekday]engine.ShiftCode{time.Monday: engine.ShiftEarly})
	assert.NoError(t, valid.Validate())

	badCode := assignment(map[time.Weekday]engine.ShiftCode{time.Monday: engine.ShiftCode(7)})
	assert.Error(t, badCode.Validate())

	noEmployee := valid
	noEmployee.EmployeeID = ""
	assert.Error(t, noEmployee.Validate())

	noMonth := valid
	noMonth.Month = schedule.Month{}
	assert.Error(t, noMonth.Validate())
}
