package engine_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kintai/attendance-engine/engine"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

func clockTime(h, m int) *engine.ClockTime {
	return &engine.ClockTime{Hour: h, Minute: m}
}

func fixedStartEmployee(h, m int) engine.Employee {
	return engine.Employee{
		ID:           "emp-1",
		Name:         "Aoki",
		DefaultStart: clockTime(h, m),
	}
}

func shiftWorker() engine.Employee {
	return engine.Employee{ID: "emp-2", Name: "Sato", ShiftWorker: true}
}

// calendar builds a ShiftLookup from explicit date assignments.
func calendar(assignments map[engine.Date]engine.ShiftCode) engine.ShiftLookup {
	return func(d engine.Date) (engine.ShiftCode, bool) {
		code, ok := assignments[d]
		return code, ok
	}
}

// Monday 2025-03-10.
var monday = engine.NewDate(2025, time.March, 10)

// =============================================================================
// FIXED START TIME
// =============================================================================

func TestEvaluate_FixedStart_SevenMinutesLate(t *testing.T) {
	// GIVEN: default start 09:00, check-in 09:07
	// THEN: 7 minutes late, flagged in zero-grace mode

	e := engine.NewLatenessEvaluator()
	res, err := e.Evaluate(fixedStartEmployee(9, 0), at(10, 9, 7), nil)
	require.NoError(t, err)

	assert.True(t, res.IsLate)
	assert.Equal(t, 7, res.LateMinutes)
}

func TestEvaluate_FixedStart_OnTimeAndEarly(t *testing.T) {
	e := engine.NewLatenessEvaluator()

	onTime, err := e.Evaluate(fixedStartEmployee(9, 0), at(10, 9, 0), nil)
	require.NoError(t, err)
	assert.False(t, onTime.IsLate)
	assert.Equal(t, 0, onTime.LateMinutes)

	early, err := e.Evaluate(fixedStartEmployee(9, 0), at(10, 8, 15), nil)
	require.NoError(t, err)
	assert.False(t, early.IsLate)
	assert.Equal(t, 0, early.LateMinutes, "early arrival never reports negative lateness")
}

func TestEvaluate_FixedStart_GraceWindow(t *testing.T) {
	// GIVEN: the 5-minute export grace
	// THEN: arrivals up to 5 minutes late are not flagged, but the
	//       magnitude is still reported

	e := &engine.LatenessEvaluator{GraceMinutes: engine.ExportGraceMinutes}

	within, err := e.Evaluate(fixedStartEmployee(9, 0), at(10, 9, 5), nil)
	require.NoError(t, err)
	assert.False(t, within.IsLate)
	assert.Equal(t, 5, within.LateMinutes)

	beyond, err := e.Evaluate(fixedStartEmployee(9, 0), at(10, 9, 6), nil)
	require.NoError(t, err)
	assert.True(t, beyond.IsLate)
	assert.Equal(t, 6, beyond.LateMinutes)
}

// =============================================================================
// SHIFT WORKERS
// =============================================================================

func TestEvaluate_Shift_DayShiftLate(t *testing.T) {
	// GIVEN: shift 1 (08:30) scheduled on Monday, check-in 08:45
	// THEN: 15 minutes late

	e := engine.NewLatenessEvaluator()
	shifts := calendar(map[engine.Date]engine.ShiftCode{monday: engine.ShiftEarly})

	res, err := e.Evaluate(shiftWorker(), at(10, 8, 45), shifts)
	require.NoError(t, err)
	assert.True(t, res.IsLate)
	assert.Equal(t, 15, res.LateMinutes)
}

func TestEvaluate_Shift_EarlyArrivalNotLate(t *testing.T) {
	e := engine.NewLatenessEvaluator()
	shifts := calendar(map[engine.Date]engine.ShiftCode{monday: engine.ShiftNight})

	res, err := e.Evaluate(shiftWorker(), at(10, 22, 0), shifts)
	require.NoError(t, err)
	assert.False(t, res.IsLate)
	assert.Equal(t, 0, res.LateMinutes)
}

func TestEvaluate_Shift_NightShiftSameEvening(t *testing.T) {
	// Check-in 22:40 for a 22:30 shift, still on the scheduled day.
	e := engine.NewLatenessEvaluator()
	shifts := calendar(map[engine.Date]engine.ShiftCode{monday: engine.ShiftNight})

	res, err := e.Evaluate(shiftWorker(), at(10, 22, 40), shifts)
	require.NoError(t, err)
	assert.True(t, res.IsLate)
	assert.Equal(t, 10, res.LateMinutes)
}

func TestEvaluate_Shift_OvernightCheckInAfterMidnight(t *testing.T) {
	// GIVEN: shift 5 (23:50) scheduled on Monday, nothing on Tuesday
	// WHEN: check-in Tuesday 00:10
	// THEN: resolution retries Monday, expected start rolls back one
	//       day, lateness is 20 minutes - not 20 hours

	e := engine.NewLatenessEvaluator()
	shifts := calendar(map[engine.Date]engine.ShiftCode{monday: engine.ShiftLateNight})

	res, err := e.Evaluate(shiftWorker(), at(11, 0, 10), shifts)
	require.NoError(t, err)
	assert.True(t, res.IsLate)
	assert.Equal(t, 20, res.LateMinutes)
}

func TestEvaluate_Shift_VeryLateOvernightArrival(t *testing.T) {
	// Shift 4 (22:30) on Monday, check-in Tuesday 04:00: 5.5 hours late.
	e := engine.NewLatenessEvaluator()
	shifts := calendar(map[engine.Date]engine.ShiftCode{monday: engine.ShiftNight})

	res, err := e.Evaluate(shiftWorker(), at(11, 4, 0), shifts)
	require.NoError(t, err)
	assert.Equal(t, 330, res.LateMinutes)
}

func TestEvaluate_Shift_NoRetryAfterFiveAM(t *testing.T) {
	// At 06:00 the previous-day retry no longer applies; with no shift
	// scheduled for the day itself, lateness is unknown.
	e := engine.NewLatenessEvaluator()
	shifts := calendar(map[engine.Date]engine.ShiftCode{monday: engine.ShiftLateNight})

	_, err := e.Evaluate(shiftWorker(), at(11, 6, 0), shifts)
	assert.ErrorIs(t, err, engine.ErrNoApplicableSchedule)
}

func TestEvaluate_Shift_FallsBackToDefaultStart(t *testing.T) {
	// A shift worker without a calendar entry still has a usable
	// default start time.
	e := engine.NewLatenessEvaluator()
	emp := shiftWorker()
	emp.DefaultStart = clockTime(9, 0)

	res, err := e.Evaluate(emp, at(10, 9, 30), calendar(nil))
	require.NoError(t, err)
	assert.Equal(t, 30, res.LateMinutes)
}

// =============================================================================
// NO APPLICABLE SCHEDULE
// =============================================================================

func TestEvaluate_NoSchedule_IsUnknownNotOnTime(t *testing.T) {
	// GIVEN: no default start and no shift calendar
	// THEN: NoScheduleError - callers must render "lateness unknown"

	e := engine.NewLatenessEvaluator()
	emp := engine.Employee{ID: "emp-3", Name: "Ito"}

	_, err := e.Evaluate(emp, at(10, 9, 0), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, engine.ErrNoApplicableSchedule)

	var detail *engine.NoScheduleError
	require.ErrorAs(t, err, &detail)
	assert.Equal(t, engine.EmployeeID("emp-3"), detail.EmployeeID)
	assert.Equal(t, engine.NewDate(2025, time.March, 10), detail.Date)
	assert.True(t, engine.IsScheduleUnknown(err))
}

// =============================================================================
// SHIFT TABLE CONSTANTS
// =============================================================================

func TestShiftTable_StartTimes(t *testing.T) {
	cases := []struct {
		code  engine.ShiftCode
		start engine.ClockTime
		night bool
	}{
		{engine.ShiftEarly, engine.ClockTime{Hour: 8, Minute: 30}, false},
		{engine.ShiftMidday, engine.ClockTime{Hour: 12, Minute: 0}, false},
		{engine.ShiftAfternoon, engine.ClockTime{Hour: 13, Minute: 30}, false},
		{engine.ShiftNight, engine.ClockTime{Hour: 22, Minute: 30}, true},
		{engine.ShiftLateNight, engine.ClockTime{Hour: 23, Minute: 50}, true},
	}

	for _, tc := range cases {
		start, ok := tc.code.StartTime()
		require.True(t, ok)
		assert.Equal(t, tc.start, start)
		assert.Equal(t, tc.night, tc.code.NightStart())
	}

	assert.False(t, engine.ShiftCode(9).Valid())
}
