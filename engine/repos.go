/*
repos.go - Repository interfaces for the engine's collaborators

PURPOSE:
  Defines the contracts between the pure core and whatever persists
  employees, attendance sessions and leave records. The engine never
  performs I/O itself; callers fetch a consistent snapshot through
  these interfaces and hand plain values to the computation functions.

JOINS BY ID:
  All lookups are keyed by employee id, never by display name. Joining
  by name invites read skew when names are edited mid-report.

IMPLEMENTATIONS:
  - store/memory: in-memory maps, for tests and development
  - store/sqlite: SQLite-backed, for production

NOT-FOUND CONVENTION:
  Single-record getters return (nil, nil) when the record does not
  exist; errors are reserved for storage failures.
*/
package engine

import "context"

// =============================================================================
// EMPLOYEES
// =============================================================================

type EmployeeRepository interface {
	// Employee fetches by id. (nil, nil) when absent.
	Employee(ctx context.Context, id EmployeeID) (*Employee, error)

	// EmployeeByName fetches by the unique display name. (nil, nil)
	// when absent.
	EmployeeByName(ctx context.Context, name string) (*Employee, error)

	// Employees returns all employees, resigned ones included.
	Employees(ctx context.Context) ([]Employee, error)

	// SaveEmployee inserts a new employee, assigning ID when empty.
	SaveEmployee(ctx context.Context, e *Employee) error

	// UpdateEmployee replaces a stored employee.
	UpdateEmployee(ctx context.Context, e Employee) error

	// MarkResigned applies the soft resignation marker. Employees are
	// never hard-deleted from the accounting engine's view.
	MarkResigned(ctx context.Context, id EmployeeID) error
}

// =============================================================================
// ATTENDANCE SESSIONS
// =============================================================================

type SessionRepository interface {
	// Session fetches by id. (nil, nil) when absent.
	Session(ctx context.Context, id SessionID) (*AttendanceSession, error)

	// OpenSession returns the employee's current open session, or
	// (nil, nil) when there is none.
	OpenSession(ctx context.Context, employeeID EmployeeID) (*AttendanceSession, error)

	// OpenSessions returns every open session, newest check-in first.
	OpenSessions(ctx context.Context) ([]AttendanceSession, error)

	// SessionsByEmployee returns all of the employee's sessions,
	// chronological by check-in.
	SessionsByEmployee(ctx context.Context, employeeID EmployeeID) ([]AttendanceSession, error)

	// CompletedSessions returns only closed sessions (both endpoints
	// present), chronological by check-in.
	CompletedSessions(ctx context.Context, employeeID EmployeeID) ([]AttendanceSession, error)

	// PaidLeaveSessions returns the employee's closed paid-leave
	// sessions; the input to consumption accounting.
	PaidLeaveSessions(ctx context.Context, employeeID EmployeeID) ([]AttendanceSession, error)

	// SaveSession inserts a new session, assigning ID when empty.
	SaveSession(ctx context.Context, s *AttendanceSession) error

	// UpdateSession replaces a stored session (admin correction).
	UpdateSession(ctx context.Context, s AttendanceSession) error

	// DeleteSession removes a session.
	DeleteSession(ctx context.Context, id SessionID) error
}

// =============================================================================
// LEAVE RECORDS
// =============================================================================

// LeaveFilter narrows leave-record queries. Nil fields mean "any".
type LeaveFilter struct {
	Type *LeaveType
	From *Date // inclusive
	To   *Date // inclusive
}

type LeaveRecordRepository interface {
	// LeaveRecord fetches by id. (nil, nil) when absent.
	LeaveRecord(ctx context.Context, id LeaveRecordID) (*LeaveRecord, error)

	// LeaveRecords returns the employee's records matching the filter,
	// newest date first.
	LeaveRecords(ctx context.Context, employeeID EmployeeID, filter LeaveFilter) ([]LeaveRecord, error)

	// SaveLeaveRecord inserts a new record, assigning ID when empty.
	SaveLeaveRecord(ctx context.Context, r *LeaveRecord) error

	// UpdateLeaveRecord replaces a stored record.
	UpdateLeaveRecord(ctx context.Context, r LeaveRecord) error

	// DeleteLeaveRecord removes a record.
	DeleteLeaveRecord(ctx context.Context, id LeaveRecordID) error
}
