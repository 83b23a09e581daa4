package report_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kintai/attendance-engine/engine"
	"github.com/kintai/attendance-engine/report"
	"github.com/kintai/attendance-engine/schedule"
	"github.com/kintai/attendance-engine/store/memory"
)

func ts(day, hour, minute int) time.Time {
	return time.Date(2025, time.March, day, hour, minute, 0, 0, time.UTC)
}

func saveEmployee(t *testing.T, s *memory.Store, e engine.Employee) engine.Employee {
	t.Helper()
	require.NoError(t, s.SaveEmployee(context.Background(), &e))
	return e
}

func saveClosedSession(t *testing.T, s *memory.Store, ses engine.AttendanceSession) engine.AttendanceSession {
	t.Helper()
	ses.Completed = true
	require.NoError(t, s.SaveSession(context.Background(), &ses))
	return ses
}

// =============================================================================
// SESSION ROWS
// =============================================================================

func TestSessionRows_BucketsAndLateness(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	start := engine.ClockTime{Hour: 9, Minute: 0}
	emp := saveEmployee(t, s, engine.Employee{Name: "Tanaka", DefaultStart: &start})

	// 09:10 - 18:10: nine hours raw, 10 minutes late.
	saveClosedSession(t, s, engine.AttendanceSession{
		EmployeeID: emp.ID,
		Kind:       engine.KindWork,
		CheckIn:    ts(10, 9, 10),
		CheckOut:   ts(10, 18, 10),
	})

	r := report.NewAttendanceReporter(s, s, s)
	rows, err := r.SessionRows(ctx, emp.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, engine.NewDate(2025, time.March, 10), row.Date)
	assert.Equal(t, 540, row.Buckets.RawMinutes)
	assert.Equal(t, 480, row.Buckets.WorkedMinutes)
	assert.True(t, row.LateKnown)
	assert.True(t, row.IsLate)
	assert.Equal(t, 10, row.LateMinutes)
}

func TestSessionRows_GraceSuppressesSmallDelays(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	start := engine.ClockTime{Hour: 9, Minute: 0}
	emp := saveEmployee(t, s, engine.Employee{Name: "Sato", DefaultStart: &start})

	// 4 minutes late: inside the 5-minute export grace.
	saveClosedSession(t, s, engine.AttendanceSession{
		EmployeeID: emp.ID,
		Kind:       engine.KindWork,
		CheckIn:    ts(10, 9, 4),
		CheckOut:   ts(10, 17, 4),
	})

	r := report.NewAttendanceReporter(s, s, s)
	rows, err := r.SessionRows(ctx, emp.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.True(t, rows[0].LateKnown)
	assert.False(t, rows[0].IsLate)
	assert.Equal(t, 4, rows[0].LateMinutes)
}

func TestSessionRows_StoredLatenessOverridesEvaluator(t *testing.T) {
	// An admin corrected the session to 30 minutes late; the evaluator
	// would have said 10.
	ctx := context.Background()
	s := memory.NewStore()
	start := engine.ClockTime{Hour: 9, Minute: 0}
	emp := saveEmployee(t, s, engine.Employee{Name: "Ito", DefaultStart: &start})

	corrected := 30
	saveClosedSession(t, s, engine.AttendanceSession{
		EmployeeID:  emp.ID,
		Kind:        engine.KindWork,
		CheckIn:     ts(10, 9, 10),
		CheckOut:    ts(10, 18, 0),
		LateMinutes: &corrected,
	})

	r := report.NewAttendanceReporter(s, s, s)
	rows, err := r.SessionRows(ctx, emp.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.True(t, rows[0].LateKnown)
	assert.True(t, rows[0].IsLate)
	assert.Equal(t, 30, rows[0].LateMinutes)
}

func TestSessionRows_UnknownScheduleReportedAsUnknown(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	emp := saveEmployee(t, s, engine.Employee{Name: "NoStart"})

	saveClosedSession(t, s, engine.AttendanceSession{
		EmployeeID: emp.ID,
		Kind:       engine.KindWork,
		CheckIn:    ts(10, 9, 0),
		CheckOut:   ts(10, 18, 0),
	})

	r := report.NewAttendanceReporter(s, s, s)
	rows, err := r.SessionRows(ctx, emp.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.False(t, rows[0].LateKnown, "unknown is not on-time")
	assert.False(t, rows[0].IsLate)
}

func TestSessionRows_ShiftWorkerUsesStoredCalendar(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	emp := saveEmployee(t, s, engine.Employee{Name: "Abe", ShiftWorker: true})

	require.NoError(t, s.SaveAssignment(ctx, schedule.Assignment{
		EmployeeID: emp.ID,
		Month:      schedule.Month{Year: 2025, Month: time.March},
		Shifts:     map[time.Weekday]engine.ShiftCode{time.Monday: engine.ShiftEarly},
	}))

	// Monday 08:50 check-in for an 08:30 shift.
	saveClosedSession(t, s, engine.AttendanceSession{
		EmployeeID: emp.ID,
		Kind:       engine.KindWork,
		CheckIn:    ts(10, 8, 50),
		CheckOut:   ts(10, 17, 50),
	})

	r := report.NewAttendanceReporter(s, s, s)
	rows, err := r.SessionRows(ctx, emp.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.True(t, rows[0].LateKnown)
	assert.Equal(t, 20, rows[0].LateMinutes)
}

// =============================================================================
// BALANCES
// =============================================================================

func TestEmployeeBalance_CombinesSessionsAndRecords(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	emp := saveEmployee(t, s, engine.Employee{
		Name:     "Kato",
		JoinDate: engine.NewDate(2020, time.January, 1),
		Category: engine.EmploymentCategory{Kind: engine.FullTime},
	})

	saveClosedSession(t, s, engine.AttendanceSession{
		EmployeeID: emp.ID,
		Kind:       engine.KindPaidLeave,
		CheckIn:    ts(10, 9, 0),
		CheckOut:   ts(10, 17, 0),
	})
	rec := engine.LeaveRecord{
		EmployeeID: emp.ID,
		Type:       engine.LeavePaid,
		Date:       engine.NewDate(2020, time.March, 3),
		Hours:      decimal.NewFromInt(4),
	}
	require.NoError(t, s.SaveLeaveRecord(ctx, &rec))

	r := report.NewBalanceReporter(s, s, s)
	got, err := r.EmployeeBalance(ctx, emp.ID, engine.NewDate(2020, time.June, 1))
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, 80, got.EntitlementHours)
	assert.True(t, decimal.NewFromInt(12).Equal(got.UsedHours))
	assert.Equal(t, "8d 4h", got.Formatted)
}

func TestEmployeeBalance_UnknownEmployee(t *testing.T) {
	r := report.NewBalanceReporter(memory.NewStore(), memory.NewStore(), memory.NewStore())
	got, err := r.EmployeeBalance(context.Background(), "nope", engine.Date{})
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestAllBalances_SkipsResigned(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	active := saveEmployee(t, s, engine.Employee{
		Name:     "Active",
		JoinDate: engine.NewDate(2022, time.April, 1),
		Category: engine.EmploymentCategory{Kind: engine.FullTime},
	})
	gone := saveEmployee(t, s, engine.Employee{
		Name:     "Gone",
		JoinDate: engine.NewDate(2019, time.April, 1),
		Category: engine.EmploymentCategory{Kind: engine.FullTime},
	})
	require.NoError(t, s.MarkResigned(ctx, gone.ID))

	r := report.NewBalanceReporter(s, s, s)
	rows, err := r.AllBalances(ctx, engine.NewDate(2023, time.June, 1))
	require.NoError(t, err)

	require.Len(t, rows, 1)
	assert.Equal(t, active.ID, rows[0].Employee.ID)
	require.NoError(t, rows[0].Err)
	assert.Equal(t, (10+11)*8, rows[0].Report.EntitlementHours)
}

func TestAllBalances_OneFailureDoesNotAbortBatch(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	ok := saveEmployee(t, s, engine.Employee{
		Name:     "Fine",
		JoinDate: engine.NewDate(2022, time.April, 1),
		Category: engine.EmploymentCategory{Kind: engine.FullTime},
	})
	broken := saveEmployee(t, s, engine.Employee{
		Name:     "Broken",
		JoinDate: engine.NewDate(2022, time.April, 1),
		Category: engine.EmploymentCategory{Kind: engine.FullTime},
	})

	r := report.NewBalanceReporter(s, failingSessions{Store: s, failFor: broken.ID}, s)
	rows, err := r.AllBalances(ctx, engine.NewDate(2023, time.June, 1))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	byID := map[engine.EmployeeID]report.BalanceRow{}
	for _, row := range rows {
		byID[row.Employee.ID] = row
	}
	assert.NoError(t, byID[ok.ID].Err)
	assert.Error(t, byID[broken.ID].Err)
}

// failingSessions wraps the memory store, failing paid-leave loads for
// one employee.
type failingSessions struct {
	*memory.Store
	failFor engine.EmployeeID
}

func (f failingSessions) PaidLeaveSessions(ctx context.Context, id engine.EmployeeID) ([]engine.AttendanceSession, error) {
	if id == f.failFor {
		return nil, errors.New("disk on fire")
	}
	return f.Store.PaidLeaveSessions(ctx, id)
}
