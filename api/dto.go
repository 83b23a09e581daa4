/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types
  decouple the internal domain model from the external API contract,
  allowing:
  - Field renaming without breaking clients
  - API-specific validation
  - Version evolution

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

ENCODING:
  Dates travel as "YYYY-MM-DD", timestamps as RFC 3339, hour
  quantities as JSON strings ("7.5") so clients never see binary
  floating point.

VALIDATION:
  Validation is done in handlers, not in DTOs. DTOs are pure data
  carriers.

SEE ALSO:
  - handlers.go: Uses these types
*/
package api

import (
	"time"

	"github.com/kintai/attendance-engine/engine"
	"github.com/kintai/attendance-engine/report"
	"github.com/kintai/attendance-engine/schedule"
)

// =============================================================================
// EMPLOYEES
// =============================================================================

// EmployeeDTO represents an employee in API responses.
type EmployeeDTO struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Department   string `json:"department,omitempty"`
	JoinDate     string `json:"join_date,omitempty"`
	Employment   string `json:"employment"`
	WeeklyDays   int    `json:"weekly_days,omitempty"`
	ShiftWorker  bool   `json:"shift_worker"`
	DefaultStart string `json:"default_start,omitempty"`
	Resigned     bool   `json:"resigned"`
	CreatedAt    string `json:"created_at"`
}

// CreateEmployeeRequest is the POST /api/employees body. Update uses
// the same shape.
type CreateEmployeeRequest struct {
	Name         string `json:"name"`
	Department   string `json:"department"`
	JoinDate     string `json:"join_date"`
	Employment   string `json:"employment"`
	WeeklyDays   int    `json:"weekly_days"`
	ShiftWorker  bool   `json:"shift_worker"`
	DefaultStart string `json:"default_start"`
}

func toEmployeeDTO(e engine.Employee) EmployeeDTO {
	dto := EmployeeDTO{
		ID:          string(e.ID),
		Name:        e.Name,
		Department:  e.Department,
		Employment:  string(e.Category.Kind),
		WeeklyDays:  e.Category.WeeklyDays,
		ShiftWorker: e.ShiftWorker,
		Resigned:    e.Resigned,
		CreatedAt:   e.CreatedAt.Format(time.RFC3339),
	}
	if !e.JoinDate.IsZero() {
		dto.JoinDate = e.JoinDate.String()
	}
	if e.DefaultStart != nil {
		dto.DefaultStart = e.DefaultStart.String()
	}
	return dto
}

// =============================================================================
// SESSIONS
// =============================================================================

// SessionDTO represents an attendance session in API responses.
type SessionDTO struct {
	ID          string `json:"id"`
	EmployeeID  string `json:"employee_id"`
	Kind        string `json:"kind"`
	CheckIn     string `json:"check_in"`
	CheckOut    string `json:"check_out,omitempty"`
	Completed   bool   `json:"completed"`
	HoursUsed   string `json:"hours_used"`
	LateMinutes *int   `json:"late_minutes,omitempty"`
	IsOvertime  bool   `json:"is_overtime"`
}

// ClockRequest identifies the employee punching in or out. Name is
// accepted for kiosk-style clients without an id on hand.
type ClockRequest struct {
	EmployeeID string `json:"employee_id"`
	Name       string `json:"name"`
	At         string `json:"at"` // RFC 3339; empty means now
}

// CreateSessionRequest is the POST /api/sessions body for manual
// entry of a full session.
type CreateSessionRequest struct {
	EmployeeID string `json:"employee_id"`
	Kind       string `json:"kind"`
	CheckIn    string `json:"check_in"`
	CheckOut   string `json:"check_out"`
}

// UpdateSessionRequest is the PATCH /api/sessions/{id} body. Nil
// fields keep the stored value.
type UpdateSessionRequest struct {
	Kind        *string `json:"kind"`
	CheckIn     *string `json:"check_in"`
	CheckOut    *string `json:"check_out"`
	LateMinutes *int    `json:"late_minutes"`
}

func toSessionDTO(s engine.AttendanceSession) SessionDTO {
	dto := SessionDTO{
		ID:          string(s.ID),
		EmployeeID:  string(s.EmployeeID),
		Kind:        string(s.Kind),
		CheckIn:     s.CheckIn.Format(time.RFC3339),
		Completed:   s.Completed,
		HoursUsed:   s.HoursUsed.String(),
		LateMinutes: s.LateMinutes,
		IsOvertime:  s.IsOvertime,
	}
	if !s.CheckOut.IsZero() {
		dto.CheckOut = s.CheckOut.Format(time.RFC3339)
	}
	return dto
}

// =============================================================================
// LEAVE RECORDS
// =============================================================================

// LeaveRecordDTO represents a manual leave record.
type LeaveRecordDTO struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	Type       string `json:"type"`
	Date       string `json:"date"`
	Hours      string `json:"hours"`
	Notes      string `json:"notes,omitempty"`
	CreatedAt  string `json:"created_at"`
}

// CreateLeaveRequest is the POST body; update uses the same shape.
type CreateLeaveRequest struct {
	EmployeeID string `json:"employee_id"`
	Type       string `json:"type"`
	Date       string `json:"date"`
	Hours      string `json:"hours"`
	Notes      string `json:"notes"`
}

func toLeaveRecordDTO(r engine.LeaveRecord) LeaveRecordDTO {
	return LeaveRecordDTO{
		ID:         string(r.ID),
		EmployeeID: string(r.EmployeeID),
		Type:       string(r.Type),
		Date:       r.Date.String(),
		Hours:      r.Hours.String(),
		Notes:      r.Notes,
		CreatedAt:  r.CreatedAt.Format(time.RFC3339),
	}
}

// =============================================================================
// SHIFT ASSIGNMENTS
// =============================================================================

// AssignmentDTO maps weekday names to shift codes for one month.
type AssignmentDTO struct {
	EmployeeID string         `json:"employee_id"`
	Month      string         `json:"month"`
	Shifts     map[string]int `json:"shifts"`
}

// SaveAssignmentRequest is the PUT /api/shifts body.
type SaveAssignmentRequest = AssignmentDTO

func toAssignmentDTO(a schedule.Assignment) AssignmentDTO {
	shifts := make(map[string]int, len(a.Shifts))
	for wd, code := range a.Shifts {
		shifts[wd.String()] = int(code)
	}
	return AssignmentDTO{
		EmployeeID: string(a.EmployeeID),
		Month:      a.Month.String(),
		Shifts:     shifts,
	}
}

func weekdayByName(name string) (time.Weekday, bool) {
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		if wd.String() == name {
			return wd, true
		}
	}
	return 0, false
}

// =============================================================================
// BALANCES AND REPORTS
// =============================================================================

// BalanceDTO is the remaining paid-leave balance for one employee.
type BalanceDTO struct {
	EmployeeID       string `json:"employee_id"`
	Name             string `json:"name,omitempty"`
	AsOf             string `json:"as_of"`
	EntitlementHours int    `json:"entitlement_hours"`
	EntitlementDays  int    `json:"entitlement_days"`
	UsedHours        string `json:"used_hours"`
	RemainingHours   string `json:"remaining_hours"`
	Display          string `json:"display"`
	Error            string `json:"error,omitempty"`
}

func toBalanceDTO(b engine.BalanceReport) BalanceDTO {
	return BalanceDTO{
		EmployeeID:       string(b.EmployeeID),
		AsOf:             b.AsOf.String(),
		EntitlementHours: b.EntitlementHours,
		EntitlementDays:  b.EntitlementDays,
		UsedHours:        b.UsedHours.String(),
		RemainingHours:   b.RemainingHours.String(),
		Display:          b.Formatted,
	}
}

// SessionRowDTO is one completed session prepared for payroll export.
type SessionRowDTO struct {
	SessionID       string `json:"session_id"`
	Date            string `json:"date"`
	Kind            string `json:"kind"`
	CheckIn         string `json:"check_in"`
	CheckOut        string `json:"check_out"`
	RawMinutes      int    `json:"raw_minutes"`
	BreakDeduction  int    `json:"break_deduction"`
	WorkedMinutes   int    `json:"worked_minutes"`
	OvertimeMinutes int    `json:"overtime_minutes"`
	NightMinutes    int    `json:"night_minutes"`
	IsOvertime      bool   `json:"is_overtime"`
	LateKnown       bool   `json:"late_known"`
	IsLate          bool   `json:"is_late"`
	LateMinutes     int    `json:"late_minutes"`
}

func toSessionRowDTO(row report.SessionRow) SessionRowDTO {
	return SessionRowDTO{
		SessionID:       string(row.Session.ID),
		Date:            row.Date.String(),
		Kind:            string(row.Session.Kind),
		CheckIn:         row.Session.CheckIn.Format(time.RFC3339),
		CheckOut:        row.Session.CheckOut.Format(time.RFC3339),
		RawMinutes:      row.Buckets.RawMinutes,
		BreakDeduction:  row.Buckets.BreakDeduction,
		WorkedMinutes:   row.Buckets.WorkedMinutes,
		OvertimeMinutes: row.Buckets.OvertimeMinutes,
		NightMinutes:    row.Buckets.NightMinutes,
		IsOvertime:      row.Session.IsOvertime,
		LateKnown:       row.LateKnown,
		IsLate:          row.IsLate,
		LateMinutes:     row.LateMinutes,
	}
}

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
