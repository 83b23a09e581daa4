package engine_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/kintai/attendance-engine/engine"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

func closedSession(kind engine.SessionKind, checkIn time.Time, hours float64) engine.AttendanceSession {
	return engine.AttendanceSession{
		ID:         "ses-1",
		EmployeeID: "emp-1",
		Kind:       kind,
		CheckIn:    checkIn,
		CheckOut:   checkIn.Add(time.Duration(hours * float64(time.Hour))),
		Completed:  true,
	}
}

func paidRecord(hours string) engine.LeaveRecord {
	return engine.LeaveRecord{
		ID:         "rec-1",
		EmployeeID: "emp-1",
		Type:       engine.LeavePaid,
		Date:       engine.NewDate(2025, time.March, 10),
		Hours:      decimal.RequireFromString(hours),
	}
}

func assertHours(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(want).Equal(got), "want %s, got %s", want, got)
}

// =============================================================================
// SESSION CONTRIBUTIONS
// =============================================================================

func TestConsumedHours_PaidLeaveSessionCappedAtOneDay(t *testing.T) {
	// GIVEN: a 10-hour paid-leave session
	// THEN: it consumes 8 hours, not 10

	sessions := []engine.AttendanceSession{
		closedSession(engine.KindPaidLeave, at(10, 9, 0), 10),
	}
	assertHours(t, "8", engine.ConsumedHours(sessions, nil))
}

func TestConsumedHours_MultiDaySessionStillOneDay(t *testing.T) {
	// A forgotten checkout spanning 26 hours cannot burn more than a
	// day's entitlement.
	sessions := []engine.AttendanceSession{
		closedSession(engine.KindPaidLeave, at(10, 9, 0), 26),
	}
	assertHours(t, "8", engine.ConsumedHours(sessions, nil))
}

func TestConsumedHours_ShortSessionCountsActualHours(t *testing.T) {
	sessions := []engine.AttendanceSession{
		closedSession(engine.KindPaidLeave, at(10, 9, 0), 3.5),
	}
	assertHours(t, "3.5", engine.ConsumedHours(sessions, nil))
}

func TestConsumedHours_OpenSessionsIgnored(t *testing.T) {
	open := engine.AttendanceSession{
		ID:         "ses-2",
		EmployeeID: "emp-1",
		Kind:       engine.KindPaidLeave,
		CheckIn:    at(10, 9, 0),
	}
	assertHours(t, "0", engine.ConsumedHours([]engine.AttendanceSession{open}, nil))
}

func TestConsumedHours_NonPaidKindsIgnored(t *testing.T) {
	sessions := []engine.AttendanceSession{
		closedSession(engine.KindWork, at(10, 9, 0), 8),
		closedSession(engine.KindUnpaidLeave, at(11, 9, 0), 8),
	}
	assertHours(t, "0", engine.ConsumedHours(sessions, nil))
}

// =============================================================================
// MANUAL RECORDS
// =============================================================================

func TestConsumedHours_ManualPaidRecordsUncapped(t *testing.T) {
	// Admin-entered records are trusted as already day-correct; a 16-hour
	// record (two days entered at once) counts in full.
	records := []engine.LeaveRecord{paidRecord("16")}
	assertHours(t, "16", engine.ConsumedHours(nil, records))
}

func TestConsumedHours_NonPaidTypesIgnored(t *testing.T) {
	records := []engine.LeaveRecord{
		{Type: engine.LeaveUnpaid, Hours: decimal.NewFromInt(8)},
		{Type: engine.LeaveSummer, Hours: decimal.NewFromInt(8)},
		{Type: engine.LeaveBereavement, Hours: decimal.NewFromInt(8)},
	}
	assertHours(t, "0", engine.ConsumedHours(nil, records))
}

func TestConsumedHours_SessionsAndRecordsCombine(t *testing.T) {
	sessions := []engine.AttendanceSession{
		closedSession(engine.KindPaidLeave, at(10, 9, 0), 4),
	}
	records := []engine.LeaveRecord{paidRecord("8")}
	assertHours(t, "12", engine.ConsumedHours(sessions, records))
}

// =============================================================================
// HALF-HOUR ROUNDING
// =============================================================================

func TestConsumedHours_RoundsToNearestHalfHour(t *testing.T) {
	// 7h20m of paid leave rounds up to 7.5.
	sessions := []engine.AttendanceSession{
		closedSession(engine.KindPaidLeave, at(10, 9, 0), 7.0+20.0/60.0),
	}
	assertHours(t, "7.5", engine.ConsumedHours(sessions, nil))
}

func TestRoundToHalfHour(t *testing.T) {
	cases := []struct{ in, want string }{
		{"0", "0"},
		{"7.2", "7"},
		{"7.25", "7.5"}, // half up
		{"7.33", "7.5"},
		{"7.5", "7.5"},
		{"7.74", "7.5"},
		{"7.75", "8"},
		{"8.01", "8"},
	}
	for _, tc := range cases {
		got := engine.RoundToHalfHour(decimal.RequireFromString(tc.in))
		assert.True(t, decimal.RequireFromString(tc.want).Equal(got), "%s -> want %s, got %s", tc.in, tc.want, got)
	}
}
