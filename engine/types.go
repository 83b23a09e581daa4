/*
Package engine implements the attendance and leave accounting core.

PURPOSE:
  This package contains the pure computation layer of the attendance
  tracker: classifying raw check-in/check-out intervals into worked,
  overtime and night-work minutes, evaluating lateness against fixed or
  shift-based schedules, and accounting statutory paid-leave entitlement
  grants and their consumption.

KEY CONCEPTS IN THIS FILE (types.go):
  - Employee: the subject of all accounting, keyed by an opaque id
  - EmploymentCategory: full-time vs part-time (with weekly working days)
  - AttendanceSession: one check-in/check-out pair, possibly still open
  - LeaveRecord: a manual leave entry, distinct from attendance sessions
  - SessionKind / LeaveType: closed enumerations, no free-form strings

DESIGN PRINCIPLES:
  1. Purity: every computation is a function over immutable inputs.
     There is no hidden state and no I/O anywhere in this package.
  2. Precision: leave hours use decimal.Decimal so the half-hour
     rounding policy is exact; worked time uses whole minutes.
  3. Totality: apart from the two explicit error conditions
     (invalid interval, no applicable schedule) every function is
     total over well-formed domain values. Input validation belongs
     to the repository/API boundary, not here.

SEE ALSO:
  - timebucket.go: worked/overtime/night classification
  - lateness.go: fixed-start and shift-aware lateness
  - entitlement.go: statutory entitlement tables
  - grants.go: anniversary grants with 2-year expiry
  - consumption.go: paid-leave consumption accounting
  - balance.go: remaining-balance reports
*/
package engine

import (
	"time"

	"github.com/shopspring/decimal"
)

// =============================================================================
// IDENTIFIERS
// =============================================================================

type EmployeeID string
type SessionID string
type LeaveRecordID string

// =============================================================================
// EMPLOYMENT CATEGORY
// =============================================================================

// EmploymentKind distinguishes full-time from part-time employment.
type EmploymentKind string

const (
	FullTime EmploymentKind = "full_time"
	PartTime EmploymentKind = "part_time"
)

// EmploymentCategory captures the employment kind plus, for part-time
// employees, the number of contracted working days per week (1-4).
// Part-time with five or more weekly days is treated as full-time for
// entitlement purposes, mirroring the statutory tables.
type EmploymentCategory struct {
	Kind       EmploymentKind
	WeeklyDays int // only meaningful when Kind == PartTime
}

// IsFullTime reports whether the category routes to the full-time
// entitlement table.
func (c EmploymentCategory) IsFullTime() bool {
	return c.Kind != PartTime || c.WeeklyDays >= 5
}

// =============================================================================
// EMPLOYEE
// =============================================================================

// Employee is the accounting view of an employee record. Face
// descriptors, credentials and other collaborator-owned attributes are
// deliberately absent.
type Employee struct {
	ID         EmployeeID
	Name       string // unique across the system
	Department string

	// JoinDate drives all entitlement computations. A zero JoinDate is
	// tolerated (legacy records): entitlement is then zero, not an error.
	JoinDate Date

	Category EmploymentCategory

	// ShiftWorker employees are scheduled via monthly shift calendars;
	// everyone else uses DefaultStart when set.
	ShiftWorker  bool
	DefaultStart *ClockTime

	// Resigned is a soft marker. Employees are never hard-deleted from
	// the accounting engine's perspective.
	Resigned bool

	CreatedAt time.Time
}

// =============================================================================
// ATTENDANCE SESSION
// =============================================================================

// SessionKind classifies what an attendance session represents.
type SessionKind string

const (
	KindWork        SessionKind = "work"
	KindPaidLeave   SessionKind = "paid_leave"
	KindUnpaidLeave SessionKind = "unpaid_leave"
)

// ValidSessionKind reports whether k is a known session kind.
func ValidSessionKind(k SessionKind) bool {
	switch k {
	case KindWork, KindPaidLeave, KindUnpaidLeave:
		return true
	default:
		return false
	}
}

// AttendanceSession is one check-in/check-out pair. CheckOut is the
// zero time while the session is open; an open session is not eligible
// for any time-bucket or consumption computation.
type AttendanceSession struct {
	ID         SessionID
	EmployeeID EmployeeID

	CheckIn   time.Time
	CheckOut  time.Time
	Completed bool

	Kind SessionKind

	// HoursUsed is recorded for leave-kind sessions at entry time.
	HoursUsed decimal.Decimal

	// LateMinutes, when set, is an admin-recorded override that takes
	// precedence over schedule-derived lateness in reports.
	LateMinutes *int

	// IsOvertime is the session-flagging threshold (raw duration beyond
	// OvertimeFlagAfterMinutes), distinct from the overtime quantity.
	IsOvertime bool
}

// Closed reports whether the session has both endpoints and can enter
// time-bucket or consumption computations.
func (s AttendanceSession) Closed() bool {
	return s.Completed && !s.CheckOut.IsZero()
}

// Duration returns the raw session length. Zero for open sessions.
func (s AttendanceSession) Duration() time.Duration {
	if !s.Closed() {
		return 0
	}
	return s.CheckOut.Sub(s.CheckIn)
}

// =============================================================================
// LEAVE RECORD
// =============================================================================

// LeaveType enumerates the manual leave categories. Only LeavePaid
// feeds paid-leave consumption; the rest are recorded for reporting.
type LeaveType string

const (
	LeavePaid        LeaveType = "paid"
	LeaveUnpaid      LeaveType = "unpaid"
	LeaveSubstitute  LeaveType = "substitute"
	LeaveChildcare   LeaveType = "childcare"
	LeaveMaternity   LeaveType = "maternity"
	LeaveBereavement LeaveType = "bereavement"
	LeaveSummer      LeaveType = "summer"
	LeaveCare        LeaveType = "care"
	LeaveInjury      LeaveType = "injury"
	LeaveOther       LeaveType = "other"
)

// LeaveTypes lists every known leave type, in display order.
func LeaveTypes() []LeaveType {
	return []LeaveType{
		LeavePaid, LeaveUnpaid, LeaveSubstitute, LeaveChildcare,
		LeaveMaternity, LeaveBereavement, LeaveSummer, LeaveCare,
		LeaveInjury, LeaveOther,
	}
}

// ValidLeaveType reports whether t is a known leave type.
func ValidLeaveType(t LeaveType) bool {
	switch t {
	case LeavePaid, LeaveUnpaid, LeaveSubstitute, LeaveChildcare,
		LeaveMaternity, LeaveBereavement, LeaveSummer, LeaveCare,
		LeaveInjury, LeaveOther:
		return true
	default:
		return false
	}
}

// LeaveRecord is a manual leave entry created by an admin, distinct
// from attendance sessions. Hours are assumed already day/hour-correct
// and are not capped by the consumption aggregator.
type LeaveRecord struct {
	ID         LeaveRecordID
	EmployeeID EmployeeID
	Type       LeaveType
	Date       Date
	Hours      decimal.Decimal // > 0, enforced at the boundary
	Notes      string
	CreatedAt  time.Time
}
