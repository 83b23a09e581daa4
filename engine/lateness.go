/*
lateness.go - Fixed-start and shift-aware lateness evaluation

PURPOSE:
  Answers "was this check-in late, and by how many minutes?" against
  either a fixed daily start time or a monthly shift calendar.

SHIFT TABLE:
  Codes 1-5 map to fixed start times; codes 4 and 5 start at night and
  their check-ins commonly land after midnight, on the calendar day
  following the scheduled one. Resolution therefore retries the
  previous day for early-morning check-ins, and rolls the expected
  start back one day before comparing.

LATENESS UNKNOWN vs ON TIME:
  When neither a default start time nor a resolvable shift code exists
  the evaluator fails with NoScheduleError. Callers must surface this
  as "lateness unknown" - never as "on time".
*/
package engine

import "time"

// =============================================================================
// SHIFT CODES
// =============================================================================

// ShiftCode identifies one of the fixed shift start times.
type ShiftCode int

const (
	ShiftEarly     ShiftCode = 1 // 08:30
	ShiftMidday    ShiftCode = 2 // 12:00
	ShiftAfternoon ShiftCode = 3 // 13:30
	ShiftNight     ShiftCode = 4 // 22:30
	ShiftLateNight ShiftCode = 5 // 23:50
)

var shiftStarts = map[ShiftCode]ClockTime{
	ShiftEarly:     {Hour: 8, Minute: 30},
	ShiftMidday:    {Hour: 12, Minute: 0},
	ShiftAfternoon: {Hour: 13, Minute: 30},
	ShiftNight:     {Hour: 22, Minute: 30},
	ShiftLateNight: {Hour: 23, Minute: 50},
}

// StartTime returns the scheduled start for the code.
func (c ShiftCode) StartTime() (ClockTime, bool) {
	ct, ok := shiftStarts[c]
	return ct, ok
}

// NightStart reports whether the shift starts at or after 22:00, i.e.
// its check-ins may fall on the next calendar day.
func (c ShiftCode) NightStart() bool {
	ct, ok := shiftStarts[c]
	return ok && ct.Hour >= 22
}

// Valid reports whether the code is in the shift table.
func (c ShiftCode) Valid() bool {
	_, ok := shiftStarts[c]
	return ok
}

// ShiftLookup resolves the shift code scheduled for a calendar day.
// The second return is false when no shift is scheduled for that day.
type ShiftLookup func(date Date) (ShiftCode, bool)

// =============================================================================
// LATENESS EVALUATOR
// =============================================================================

// LatenessResult is the outcome of a successful evaluation.
type LatenessResult struct {
	IsLate      bool
	LateMinutes int // non-negative
}

// ExportGraceMinutes is the grace window the export reports use: an
// arrival within five minutes of the expected start is not flagged.
const ExportGraceMinutes = 5

// LatenessEvaluator compares check-ins with expected start times.
// GraceMinutes is the tolerance below which a late arrival is not
// flagged; LateMinutes is reported regardless.
type LatenessEvaluator struct {
	GraceMinutes int
}

// NewLatenessEvaluator returns a zero-grace evaluator: any positive
// lateness is flagged.
func NewLatenessEvaluator() *LatenessEvaluator {
	return &LatenessEvaluator{}
}

// Evaluate determines lateness for one check-in. Shift workers resolve
// their expected start through the shift calendar (falling back to the
// default start time if the calendar has no entry); everyone else uses
// the default start time directly. Fails with NoScheduleError when
// neither applies.
func (e *LatenessEvaluator) Evaluate(emp Employee, checkIn time.Time, shifts ShiftLookup) (LatenessResult, error) {
	if emp.ShiftWorker && shifts != nil {
		if res, ok := e.evaluateShift(checkIn, shifts); ok {
			return res, nil
		}
	}
	if emp.DefaultStart != nil {
		return e.evaluateFixed(checkIn, *emp.DefaultStart), nil
	}
	return LatenessResult{}, &NoScheduleError{EmployeeID: emp.ID, Date: DateOf(checkIn)}
}

func (e *LatenessEvaluator) evaluateFixed(checkIn time.Time, start ClockTime) LatenessResult {
	late := MinuteOfDay(checkIn) - start.MinuteOfDay()
	if late < 0 {
		late = 0
	}
	return e.result(late)
}

func (e *LatenessEvaluator) evaluateShift(checkIn time.Time, shifts ShiftLookup) (LatenessResult, bool) {
	day := DateOf(checkIn)

	code, ok := shifts(day)
	if !ok && checkIn.Hour() < 5 {
		// Early-morning check-ins may belong to an overnight shift
		// scheduled on the previous day.
		code, ok = shifts(day.AddDays(-1))
	}
	if !ok {
		return LatenessResult{}, false
	}

	start, ok := code.StartTime()
	if !ok {
		return LatenessResult{}, false
	}

	late := MinuteOfDay(checkIn) - start.MinuteOfDay()
	if start.Hour >= 22 && checkIn.Hour() < 5 {
		// The expected start was yesterday evening; a negative
		// minute-of-day difference crossed midnight.
		if late < 0 {
			late += 24 * 60
		}
	}
	if late < 0 {
		late = 0
	}
	return e.result(late), true
}

func (e *LatenessEvaluator) result(late int) LatenessResult {
	return LatenessResult{
		IsLate:      late > e.GraceMinutes,
		LateMinutes: late,
	}
}
