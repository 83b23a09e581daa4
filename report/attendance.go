/*
Package report builds the read-side views: per-session attendance rows
for export and per-employee leave balances, singly or for the whole
roster.

PURPOSE:
  The engine computes; this package assembles. It fetches employees,
  sessions, leave records and shift calendars through the repository
  interfaces, runs the pure computations, and shapes the rows the API
  serves.

KEY CONCEPTS:
  - SessionRow: one completed session with its time buckets and
    lateness, as exported to payroll
  - Stored lateness wins: an admin-corrected late_minutes on the
    session overrides the evaluator
  - Unknown lateness is reported as unknown, never as on-time

SEE ALSO:
  - engine/timebucket.go, engine/lateness.go: the computations
  - report/balance.go: leave balance assembly
*/
package report

import (
	"context"
	"fmt"

	"github.com/kintai/attendance-engine/engine"
	"github.com/kintai/attendance-engine/schedule"
)

// SessionRow is one completed attendance session prepared for export.
type SessionRow struct {
	Session engine.AttendanceSession
	Buckets engine.TimeBuckets
	Date    engine.Date

	LateKnown   bool
	IsLate      bool
	LateMinutes int
}

// AttendanceReporter assembles session rows for one employee.
type AttendanceReporter struct {
	Employees  engine.EmployeeRepository
	Sessions   engine.SessionRepository
	Shifts     schedule.Repository
	Classifier *engine.TimeBucketClassifier
	Evaluator  *engine.LatenessEvaluator
}

// NewAttendanceReporter wires the default classifier and the export
// evaluator (5-minute grace).
func NewAttendanceReporter(employees engine.EmployeeRepository, sessions engine.SessionRepository, shifts schedule.Repository) *AttendanceReporter {
	return &AttendanceReporter{
		Employees:  employees,
		Sessions:   sessions,
		Shifts:     shifts,
		Classifier: engine.NewTimeBucketClassifier(),
		Evaluator:  &engine.LatenessEvaluator{GraceMinutes: engine.ExportGraceMinutes},
	}
}

// SessionRows builds export rows from the employee's completed
// sessions, chronological by check-in.
func (r *AttendanceReporter) SessionRows(ctx context.Context, employeeID engine.EmployeeID) ([]SessionRow, error) {
	emp, err := r.Employees.Employee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("load employee: %w", err)
	}
	if emp == nil {
		return nil, fmt.Errorf("employee %s not found", employeeID)
	}

	sessions, err := r.Sessions.CompletedSessions(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("load sessions: %w", err)
	}

	lookup, err := r.shiftLookup(ctx, *emp)
	if err != nil {
		return nil, err
	}

	rows := make([]SessionRow, 0, len(sessions))
	for _, ses := range sessions {
		row, err := r.buildRow(*emp, ses, lookup)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (r *AttendanceReporter) buildRow(emp engine.Employee, ses engine.AttendanceSession, lookup engine.ShiftLookup) (SessionRow, error) {
	buckets, err := r.Classifier.Classify(ses.CheckIn, ses.CheckOut)
	if err != nil {
		return SessionRow{}, fmt.Errorf("session %s: %w", ses.ID, err)
	}

	row := SessionRow{
		Session: ses,
		Buckets: buckets,
		Date:    engine.DateOf(ses.CheckIn),
	}

	// An admin-corrected value on the session beats the evaluator.
	if ses.LateMinutes != nil {
		row.LateKnown = true
		row.LateMinutes = *ses.LateMinutes
		row.IsLate = *ses.LateMinutes > r.Evaluator.GraceMinutes
		return row, nil
	}

	res, err := r.Evaluator.Evaluate(emp, ses.CheckIn, lookup)
	switch {
	case err == nil:
		row.LateKnown = true
		row.IsLate = res.IsLate
		row.LateMinutes = res.LateMinutes
	case engine.IsScheduleUnknown(err):
		// No start time to compare against; leave LateKnown false.
	default:
		return SessionRow{}, fmt.Errorf("session %s: %w", ses.ID, err)
	}
	return row, nil
}

func (r *AttendanceReporter) shiftLookup(ctx context.Context, emp engine.Employee) (engine.ShiftLookup, error) {
	if !emp.ShiftWorker || r.Shifts == nil {
		return nil, nil
	}
	assignments, err := r.Shifts.Assignments(ctx, emp.ID)
	if err != nil {
		return nil, fmt.Errorf("load shift assignments: %w", err)
	}
	return schedule.NewCalendar(assignments).Lookup(), nil
}
