package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kintai/attendance-engine/engine"
	"github.com/kintai/attendance-engine/schedule"
	"github.com/kintai/attendance-engine/store/sqlite"
)

func newStore(t *testing.T) *sqlite.Store {
	t.Helper()
	s, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func saveEmployee(t *testing.T, s *sqlite.Store, name string) engine.Employee {
	t.Helper()
	start := engine.ClockTime{Hour: 9, Minute: 0}
	e := engine.Employee{
		Name:         name,
		Department:   "ops",
		JoinDate:     engine.NewDate(2021, time.October, 1),
		Category:     engine.EmploymentCategory{Kind: engine.PartTime, WeeklyDays: 3},
		DefaultStart: &start,
	}
	require.NoError(t, s.SaveEmployee(context.Background(), &e))
	require.NotEmpty(t, e.ID)
	return e
}

// =============================================================================
// EMPLOYEES
// =============================================================================

func TestSQLite_EmployeeRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	saved := saveEmployee(t, s, "Tanaka")

	got, err := s.Employee(ctx, saved.ID)
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, saved.Name, got.Name)
	assert.Equal(t, saved.Department, got.Department)
	assert.Equal(t, saved.JoinDate, got.JoinDate)
	assert.Equal(t, saved.Category, got.Category)
	require.NotNil(t, got.DefaultStart)
	assert.Equal(t, *saved.DefaultStart, *got.DefaultStart)
	assert.False(t, got.Resigned)

	missing, err := s.Employee(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestSQLite_EmployeeOptionalFieldsNull(t *testing.T) {
	// Legacy rows: no join date, no default start.
	ctx := context.Background()
	s := newStore(t)

	e := engine.Employee{Name: "Legacy", Category: engine.EmploymentCategory{Kind: engine.FullTime}}
	require.NoError(t, s.SaveEmployee(ctx, &e))

	got, err := s.Employee(ctx, e.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.JoinDate.IsZero())
	assert.Nil(t, got.DefaultStart)
}

func TestSQLite_UpdateAndResign(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	e := saveEmployee(t, s, "Sato")

	e.Department = "warehouse"
	e.ShiftWorker = true
	require.NoError(t, s.UpdateEmployee(ctx, e))
	require.NoError(t, s.MarkResigned(ctx, e.ID))

	got, err := s.EmployeeByName(ctx, "Sato")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "warehouse", got.Department)
	assert.True(t, got.ShiftWorker)
	assert.True(t, got.Resigned)

	all, err := s.Employees(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1, "resigned employees stay listed")
}

// =============================================================================
// SESSIONS
// =============================================================================

func TestSQLite_SessionLifecycle(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	e := saveEmployee(t, s, "Ito")

	checkIn := time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)
	ses := engine.AttendanceSession{
		EmployeeID: e.ID,
		Kind:       engine.KindWork,
		CheckIn:    checkIn,
		HoursUsed:  decimal.Zero,
	}
	require.NoError(t, s.SaveSession(ctx, &ses))

	open, err := s.OpenSession(ctx, e.ID)
	require.NoError(t, err)
	require.NotNil(t, open)
	assert.Equal(t, ses.ID, open.ID)
	assert.True(t, open.CheckOut.IsZero())
	assert.Nil(t, open.LateMinutes)

	// Clock out with a correction.
	late := 12
	ses.CheckOut = checkIn.Add(9 * time.Hour)
	ses.Completed = true
	ses.LateMinutes = &late
	ses.IsOvertime = false
	require.NoError(t, s.UpdateSession(ctx, ses))

	got, err := s.Session(ctx, ses.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.Closed())
	assert.True(t, got.CheckOut.Equal(ses.CheckOut))
	require.NotNil(t, got.LateMinutes)
	assert.Equal(t, 12, *got.LateMinutes)

	open, err = s.OpenSession(ctx, e.ID)
	require.NoError(t, err)
	assert.Nil(t, open)
}

func TestSQLite_PaidLeaveSessionFilter(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	e := saveEmployee(t, s, "Mori")

	day := func(d, h int) time.Time {
		return time.Date(2025, time.March, d, h, 0, 0, 0, time.UTC)
	}
	sessions := []engine.AttendanceSession{
		{EmployeeID: e.ID, Kind: engine.KindWork, CheckIn: day(10, 9), CheckOut: day(10, 18), Completed: true, HoursUsed: decimal.Zero},
		{EmployeeID: e.ID, Kind: engine.KindPaidLeave, CheckIn: day(11, 9), CheckOut: day(11, 17), Completed: true, HoursUsed: decimal.NewFromInt(8)},
		{EmployeeID: e.ID, Kind: engine.KindPaidLeave, CheckIn: day(12, 9), HoursUsed: decimal.Zero}, // still open
	}
	for i := range sessions {
		require.NoError(t, s.SaveSession(ctx, &sessions[i]))
	}

	paid, err := s.PaidLeaveSessions(ctx, e.ID)
	require.NoError(t, err)
	require.Len(t, paid, 1)
	assert.Equal(t, sessions[1].ID, paid[0].ID)
	assert.True(t, decimal.NewFromInt(8).Equal(paid[0].HoursUsed))

	completed, err := s.CompletedSessions(ctx, e.ID)
	require.NoError(t, err)
	require.Len(t, completed, 2)
	assert.True(t, completed[0].CheckIn.Before(completed[1].CheckIn))

	all, err := s.OpenSessions(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, s.DeleteSession(ctx, sessions[0].ID))
	gone, err := s.Session(ctx, sessions[0].ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}

// =============================================================================
// LEAVE RECORDS
// =============================================================================

func TestSQLite_LeaveRecordFilters(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	e := saveEmployee(t, s, "Kato")

	mk := func(lt engine.LeaveType, y int, m time.Month, d int, hours string) engine.LeaveRecord {
		r := engine.LeaveRecord{
			EmployeeID: e.ID,
			Type:       lt,
			Date:       engine.NewDate(y, m, d),
			Hours:      decimal.RequireFromString(hours),
			Notes:      "entered by admin",
		}
		require.NoError(t, s.SaveLeaveRecord(ctx, &r))
		return r
	}
	mk(engine.LeavePaid, 2025, time.February, 3, "8")
	summer := mk(engine.LeaveSummer, 2025, time.July, 22, "8")
	mk(engine.LeavePaid, 2025, time.August, 5, "4.5")

	lt := engine.LeavePaid
	paid, err := s.LeaveRecords(ctx, e.ID, engine.LeaveFilter{Type: &lt})
	require.NoError(t, err)
	require.Len(t, paid, 2)
	assert.True(t, paid[0].Date.After(paid[1].Date), "newest first")
	assert.True(t, decimal.RequireFromString("4.5").Equal(paid[0].Hours))

	from := engine.NewDate(2025, time.July, 1)
	to := engine.NewDate(2025, time.September, 30)
	ranged, err := s.LeaveRecords(ctx, e.ID, engine.LeaveFilter{From: &from, To: &to})
	require.NoError(t, err)
	assert.Len(t, ranged, 2)

	summer.Hours = decimal.NewFromInt(4)
	require.NoError(t, s.UpdateLeaveRecord(ctx, summer))
	got, err := s.LeaveRecord(ctx, summer.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, decimal.NewFromInt(4).Equal(got.Hours))

	require.NoError(t, s.DeleteLeaveRecord(ctx, summer.ID))
	gone, err := s.LeaveRecord(ctx, summer.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}

// =============================================================================
// SHIFT ASSIGNMENTS
// =============================================================================

func TestSQLite_AssignmentUpsertAndRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	e := saveEmployee(t, s, "Abe")
	march := schedule.Month{Year: 2025, Month: time.March}

	a := schedule.Assignment{
		EmployeeID: e.ID,
		Month:      march,
		Shifts: map[time.Weekday]engine.ShiftCode{
			time.Monday:   engine.ShiftEarly,
			time.Thursday: engine.ShiftLateNight,
		},
	}
	require.NoError(t, s.SaveAssignment(ctx, a))

	// Upsert replaces the month's pattern.
	a.Shifts = map[time.Weekday]engine.ShiftCode{time.Monday: engine.ShiftNight}
	require.NoError(t, s.SaveAssignment(ctx, a))

	got, err := s.Assignment(ctx, e.ID, march)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, a.Shifts, got.Shifts)

	none, err := s.Assignment(ctx, e.ID, schedule.Month{Year: 2025, Month: time.April})
	require.NoError(t, err)
	assert.Nil(t, none)

	all, err := s.Assignments(ctx, e.ID)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
