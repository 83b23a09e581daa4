/*
Package sqlite provides SQLite-backed implementations of the
repository interfaces.

PURPOSE:
  Persists employees, attendance sessions, leave records and monthly
  shift assignments. In production, the same patterns apply to
  PostgreSQL - only minor SQL dialect differences.

INTERFACES IMPLEMENTED:
  engine.EmployeeRepository
  engine.SessionRepository
  engine.LeaveRecordRepository
  schedule.Repository

ENCODING:
  Timestamps are stored as RFC 3339 text, calendar dates as
  "YYYY-MM-DD" text, and decimal hour quantities as text so no float
  ever touches a leave balance. A shift assignment's weekday map is
  one JSON column; patterns are tiny and always read whole.

SOFT RESIGNATION:
  Employees are never deleted. Resignation sets a flag; history stays
  queryable for payroll.

WAL MODE:
  SQLite is opened with WAL (Write-Ahead Logging) for better
  concurrency: readers don't block, single writer at a time.

USAGE:
  store, err := sqlite.New("./data/attendance.db")
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()

MIGRATION:
  Schema is auto-migrated on New(). For production, use a proper
  migration tool (golang-migrate, goose) with versioned migrations.

SEE ALSO:
  - engine/repos.go: interface definitions
  - store/memory: in-memory implementation for testing
*/
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"

	"github.com/kintai/attendance-engine/engine"
	"github.com/kintai/attendance-engine/schedule"
)

// Store implements all repository interfaces using SQLite.
type Store struct {
	db *sql.DB
}

// New opens (or creates) the database at dbPath and migrates the
// schema. Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS employees (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		department TEXT,
		join_date TEXT,
		employment_kind TEXT NOT NULL,
		weekly_days INTEGER NOT NULL DEFAULT 0,
		shift_worker INTEGER NOT NULL DEFAULT 0,
		default_start TEXT,
		resigned INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS sessions (
		id TEXT PRIMARY KEY,
		employee_id TEXT NOT NULL REFERENCES employees(id),
		kind TEXT NOT NULL,
		check_in TEXT NOT NULL,
		check_out TEXT,
		completed INTEGER NOT NULL DEFAULT 0,
		hours_used TEXT NOT NULL DEFAULT '0',
		late_minutes INTEGER,
		is_overtime INTEGER NOT NULL DEFAULT 0
	);
	CREATE INDEX IF NOT EXISTS idx_sessions_employee_checkin
		ON sessions(employee_id, check_in);
	CREATE INDEX IF NOT EXISTS idx_sessions_open
		ON sessions(employee_id) WHERE completed = 0;

	CREATE TABLE IF NOT EXISTS leave_records (
		id TEXT PRIMARY KEY,
		employee_id TEXT NOT NULL REFERENCES employees(id),
		leave_type TEXT NOT NULL,
		leave_date TEXT NOT NULL,
		hours TEXT NOT NULL,
		notes TEXT,
		created_at TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_leave_records_employee_date
		ON leave_records(employee_id, leave_date);

	CREATE TABLE IF NOT EXISTS shift_assignments (
		employee_id TEXT NOT NULL REFERENCES employees(id),
		month TEXT NOT NULL,
		shifts TEXT NOT NULL,
		UNIQUE(employee_id, month)
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// EMPLOYEES
// =============================================================================

func (s *Store) SaveEmployee(ctx context.Context, e *engine.Employee) error {
	if e.ID == "" {
		e.ID = engine.EmployeeID(uuid.NewString())
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO employees (id, name, department, join_date, employment_kind,
			weekly_days, shift_worker, default_start, resigned, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		string(e.ID), e.Name, e.Department, encodeDate(e.JoinDate),
		string(e.Category.Kind), e.Category.WeeklyDays, boolInt(e.ShiftWorker),
		encodeClock(e.DefaultStart), boolInt(e.Resigned),
		e.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to save employee: %w", err)
	}
	return nil
}

func (s *Store) UpdateEmployee(ctx context.Context, e engine.Employee) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE employees SET name = ?, department = ?, join_date = ?,
			employment_kind = ?, weekly_days = ?, shift_worker = ?,
			default_start = ?, resigned = ?
		WHERE id = ?`,
		e.Name, e.Department, encodeDate(e.JoinDate),
		string(e.Category.Kind), e.Category.WeeklyDays, boolInt(e.ShiftWorker),
		encodeClock(e.DefaultStart), boolInt(e.Resigned), string(e.ID),
	)
	if err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
	}
	return nil
}

func (s *Store) MarkResigned(ctx context.Context, id engine.EmployeeID) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE employees SET resigned = 1 WHERE id = ?`, string(id))
	if err != nil {
		return fmt.Errorf("failed to mark resigned: %w", err)
	}
	return nil
}

const employeeColumns = `id, name, department, join_date, employment_kind,
	weekly_days, shift_worker, default_start, resigned, created_at`

func (s *Store) Employee(ctx context.Context, id engine.EmployeeID) (*engine.Employee, error) {
	return s.queryEmployee(ctx,
		`SELECT `+employeeColumns+` FROM employees WHERE id = ?`, string(id))
}

func (s *Store) EmployeeByName(ctx context.Context, name string) (*engine.Employee, error) {
	return s.queryEmployee(ctx,
		`SELECT `+employeeColumns+` FROM employees WHERE name = ?`, name)
}

func (s *Store) queryEmployee(ctx context.Context, query string, arg any) (*engine.Employee, error) {
	rows, err := s.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to query employee: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}
	e, err := scanEmployee(rows)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *Store) Employees(ctx context.Context) ([]engine.Employee, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+employeeColumns+` FROM employees ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var out []engine.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func scanEmployee(rows *sql.Rows) (engine.Employee, error) {
	var (
		e            engine.Employee
		id, kind     string
		department   sql.NullString
		joinDate     sql.NullString
		defaultStart sql.NullString
		shiftWorker  int
		resigned     int
		createdAt    string
	)
	if err := rows.Scan(&id, &e.Name, &department, &joinDate, &kind,
		&e.Category.WeeklyDays, &shiftWorker, &defaultStart, &resigned, &createdAt); err != nil {
		return e, fmt.Errorf("failed to scan employee: %w", err)
	}
	e.ID = engine.EmployeeID(id)
	e.Department = department.String
	e.Category.Kind = engine.EmploymentKind(kind)
	e.ShiftWorker = shiftWorker != 0
	e.Resigned = resigned != 0

	var err error
	if e.JoinDate, err = decodeDate(joinDate); err != nil {
		return e, err
	}
	if e.DefaultStart, err = decodeClock(defaultStart); err != nil {
		return e, err
	}
	if e.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return e, fmt.Errorf("failed to parse created_at: %w", err)
	}
	return e, nil
}

// =============================================================================
// SESSIONS
// =============================================================================

func (s *Store) SaveSession(ctx context.Context, ses *engine.AttendanceSession) error {
	if ses.ID == "" {
		ses.ID = engine.SessionID(uuid.NewString())
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO sessions (id, employee_id, kind, check_in, check_out,
			completed, hours_used, late_minutes, is_overtime)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		string(ses.ID), string(ses.EmployeeID), string(ses.Kind),
		ses.CheckIn.Format(time.RFC3339), encodeTime(ses.CheckOut),
		boolInt(ses.Completed), ses.HoursUsed.String(),
		nullableInt(ses.LateMinutes), boolInt(ses.IsOvertime),
	)
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func (s *Store) UpdateSession(ctx context.Context, ses engine.AttendanceSession) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE sessions SET kind = ?, check_in = ?, check_out = ?,
			completed = ?, hours_used = ?, late_minutes = ?, is_overtime = ?
		WHERE id = ?`,
		string(ses.Kind), ses.CheckIn.Format(time.RFC3339), encodeTime(ses.CheckOut),
		boolInt(ses.Completed), ses.HoursUsed.String(),
		nullableInt(ses.LateMinutes), boolInt(ses.IsOvertime), string(ses.ID),
	)
	if err != nil {
		return fmt.Errorf("failed to update session: %w", err)
	}
	return nil
}

func (s *Store) DeleteSession(ctx context.Context, id engine.SessionID) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, string(id))
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

const sessionColumns = `id, employee_id, kind, check_in, check_out,
	completed, hours_used, late_minutes, is_overtime`

func (s *Store) Session(ctx context.Context, id engine.SessionID) (*engine.AttendanceSession, error) {
	sessions, err := s.querySessions(ctx,
		`SELECT `+sessionColumns+` FROM sessions WHERE id = ?`, string(id))
	if err != nil || len(sessions) == 0 {
		return nil, err
	}
	return &sessions[0], nil
}

func (s *Store) OpenSession(ctx context.Context, employeeID engine.EmployeeID) (*engine.AttendanceSession, error) {
	sessions, err := s.querySessions(ctx, `
		SELECT `+sessionColumns+` FROM sessions
		WHERE employee_id = ? AND completed = 0
		ORDER BY check_in DESC LIMIT 1`, string(employeeID))
	if err != nil || len(sessions) == 0 {
		return nil, err
	}
	return &sessions[0], nil
}

func (s *Store) OpenSessions(ctx context.Context) ([]engine.AttendanceSession, error) {
	return s.querySessions(ctx, `
		SELECT `+sessionColumns+` FROM sessions
		WHERE completed = 0 ORDER BY check_in DESC`)
}

func (s *Store) SessionsByEmployee(ctx context.Context, employeeID engine.EmployeeID) ([]engine.AttendanceSession, error) {
	return s.querySessions(ctx, `
		SELECT `+sessionColumns+` FROM sessions
		WHERE employee_id = ? ORDER BY check_in`, string(employeeID))
}

func (s *Store) CompletedSessions(ctx context.Context, employeeID engine.EmployeeID) ([]engine.AttendanceSession, error) {
	return s.querySessions(ctx, `
		SELECT `+sessionColumns+` FROM sessions
		WHERE employee_id = ? AND completed = 1 AND check_out IS NOT NULL
		ORDER BY check_in`, string(employeeID))
}

func (s *Store) PaidLeaveSessions(ctx context.Context, employeeID engine.EmployeeID) ([]engine.AttendanceSession, error) {
	return s.querySessions(ctx, `
		SELECT `+sessionColumns+` FROM sessions
		WHERE employee_id = ? AND kind = ? AND completed = 1 AND check_out IS NOT NULL
		ORDER BY check_in`, string(employeeID), string(engine.KindPaidLeave))
}

func (s *Store) querySessions(ctx context.Context, query string, args ...any) ([]engine.AttendanceSession, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query sessions: %w", err)
	}
	defer rows.Close()

	var out []engine.AttendanceSession
	for rows.Next() {
		ses, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, ses)
	}
	return out, rows.Err()
}

func scanSession(rows *sql.Rows) (engine.AttendanceSession, error) {
	var (
		ses             engine.AttendanceSession
		id, empID, kind string
		checkIn         string
		checkOut        sql.NullString
		completed       int
		hoursUsed       string
		lateMinutes     sql.NullInt64
		isOvertime      int
	)
	if err := rows.Scan(&id, &empID, &kind, &checkIn, &checkOut,
		&completed, &hoursUsed, &lateMinutes, &isOvertime); err != nil {
		return ses, fmt.Errorf("failed to scan session: %w", err)
	}
	ses.ID = engine.SessionID(id)
	ses.EmployeeID = engine.EmployeeID(empID)
	ses.Kind = engine.SessionKind(kind)
	ses.Completed = completed != 0
	ses.IsOvertime = isOvertime != 0

	var err error
	if ses.CheckIn, err = time.Parse(time.RFC3339, checkIn); err != nil {
		return ses, fmt.Errorf("failed to parse check_in: %w", err)
	}
	if ses.CheckOut, err = decodeTime(checkOut); err != nil {
		return ses, err
	}
	if ses.HoursUsed, err = decimal.NewFromString(hoursUsed); err != nil {
		return ses, fmt.Errorf("failed to parse hours_used: %w", err)
	}
	if lateMinutes.Valid {
		v := int(lateMinutes.Int64)
		ses.LateMinutes = &v
	}
	return ses, nil
}

// =============================================================================
// LEAVE RECORDS
// =============================================================================

func (s *Store) SaveLeaveRecord(ctx context.Context, r *engine.LeaveRecord) error {
	if r.ID == "" {
		r.ID = engine.LeaveRecordID(uuid.NewString())
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO leave_records (id, employee_id, leave_type, leave_date,
			hours, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		string(r.ID), string(r.EmployeeID), string(r.Type),
		r.Date.String(), r.Hours.String(), r.Notes,
		r.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to save leave record: %w", err)
	}
	return nil
}

func (s *Store) UpdateLeaveRecord(ctx context.Context, r engine.LeaveRecord) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE leave_records SET leave_type = ?, leave_date = ?, hours = ?, notes = ?
		WHERE id = ?`,
		string(r.Type), r.Date.String(), r.Hours.String(), r.Notes, string(r.ID),
	)
	if err != nil {
		return fmt.Errorf("failed to update leave record: %w", err)
	}
	return nil
}

func (s *Store) DeleteLeaveRecord(ctx context.Context, id engine.LeaveRecordID) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM leave_records WHERE id = ?`, string(id))
	if err != nil {
		return fmt.Errorf("failed to delete leave record: %w", err)
	}
	return nil
}

const leaveColumns = `id, employee_id, leave_type, leave_date, hours, notes, created_at`

func (s *Store) LeaveRecord(ctx context.Context, id engine.LeaveRecordID) (*engine.LeaveRecord, error) {
	records, err := s.queryLeaveRecords(ctx,
		`SELECT `+leaveColumns+` FROM leave_records WHERE id = ?`, string(id))
	if err != nil || len(records) == 0 {
		return nil, err
	}
	return &records[0], nil
}

func (s *Store) LeaveRecords(ctx context.Context, employeeID engine.EmployeeID, filter engine.LeaveFilter) ([]engine.LeaveRecord, error) {
	query := `SELECT ` + leaveColumns + ` FROM leave_records WHERE employee_id = ?`
	args := []any{string(employeeID)}

	if filter.Type != nil {
		query += ` AND leave_type = ?`
		args = append(args, string(*filter.Type))
	}
	if filter.From != nil {
		query += ` AND leave_date >= ?`
		args = append(args, filter.From.String())
	}
	if filter.To != nil {
		query += ` AND leave_date <= ?`
		args = append(args, filter.To.String())
	}
	query += ` ORDER BY leave_date DESC`

	return s.queryLeaveRecords(ctx, query, args...)
}

func (s *Store) queryLeaveRecords(ctx context.Context, query string, args ...any) ([]engine.LeaveRecord, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query leave records: %w", err)
	}
	defer rows.Close()

	var out []engine.LeaveRecord
	for rows.Next() {
		var (
			r              engine.LeaveRecord
			id, empID, typ string
			leaveDate      string
			hours          string
			notes          sql.NullString
			createdAt      string
		)
		if err := rows.Scan(&id, &empID, &typ, &leaveDate, &hours, &notes, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan leave record: %w", err)
		}
		r.ID = engine.LeaveRecordID(id)
		r.EmployeeID = engine.EmployeeID(empID)
		r.Type = engine.LeaveType(typ)
		r.Notes = notes.String
		if r.Date, err = engine.ParseDate(leaveDate); err != nil {
			return nil, fmt.Errorf("failed to parse leave_date: %w", err)
		}
		if r.Hours, err = decimal.NewFromString(hours); err != nil {
			return nil, fmt.Errorf("failed to parse hours: %w", err)
		}
		if r.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
			return nil, fmt.Errorf("failed to parse created_at: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// =============================================================================
// SHIFT ASSIGNMENTS
// =============================================================================

func (s *Store) SaveAssignment(ctx context.Context, a schedule.Assignment) error {
	shifts, err := encodeShifts(a.Shifts)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO shift_assignments (employee_id, month, shifts)
		VALUES (?, ?, ?)
		ON CONFLICT(employee_id, month) DO UPDATE SET shifts = excluded.shifts`,
		string(a.EmployeeID), a.Month.String(), shifts,
	)
	if err != nil {
		return fmt.Errorf("failed to save shift assignment: %w", err)
	}
	return nil
}

func (s *Store) Assignment(ctx context.Context, employeeID engine.EmployeeID, month schedule.Month) (*schedule.Assignment, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT employee_id, month, shifts FROM shift_assignments
		WHERE employee_id = ? AND month = ?`,
		string(employeeID), month.String())
	if err != nil {
		return nil, fmt.Errorf("failed to query shift assignment: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}
	a, err := scanAssignment(rows)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *Store) Assignments(ctx context.Context, employeeID engine.EmployeeID) ([]schedule.Assignment, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT employee_id, month, shifts FROM shift_assignments
		WHERE employee_id = ? ORDER BY month`, string(employeeID))
	if err != nil {
		return nil, fmt.Errorf("failed to query shift assignments: %w", err)
	}
	defer rows.Close()

	var out []schedule.Assignment
	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func scanAssignment(rows *sql.Rows) (schedule.Assignment, error) {
	var (
		a            schedule.Assignment
		empID, month string
		shifts       string
	)
	if err := rows.Scan(&empID, &month, &shifts); err != nil {
		return a, fmt.Errorf("failed to scan shift assignment: %w", err)
	}
	a.EmployeeID = engine.EmployeeID(empID)

	var err error
	if a.Month, err = schedule.ParseMonth(month); err != nil {
		return a, err
	}
	if a.Shifts, err = decodeShifts(shifts); err != nil {
		return a, err
	}
	return a, nil
}

// Weekday maps marshal as {"1": 1, ...} keyed by time.Weekday ordinal
// (Sunday = 0), which survives JSON round-trips unambiguously.
func encodeShifts(shifts map[time.Weekday]engine.ShiftCode) (string, error) {
	m := make(map[string]int, len(shifts))
	for wd, code := range shifts {
		m[strconv.Itoa(int(wd))] = int(code)
	}
	b, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("failed to encode shifts: %w", err)
	}
	return string(b), nil
}

func decodeShifts(raw string) (map[time.Weekday]engine.ShiftCode, error) {
	var m map[string]int
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		return nil, fmt.Errorf("failed to decode shifts: %w", err)
	}
	out := make(map[time.Weekday]engine.ShiftCode, len(m))
	for k, v := range m {
		wd, err := strconv.Atoi(k)
		if err != nil {
			return nil, fmt.Errorf("failed to decode shift weekday %q: %w", k, err)
		}
		out[time.Weekday(wd)] = engine.ShiftCode(v)
	}
	return out, nil
}

// =============================================================================
// ENCODING HELPERS
// =============================================================================

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func nullableInt(p *int) any {
	if p == nil {
		return nil
	}
	return *p
}

func encodeDate(d engine.Date) any {
	if d.IsZero() {
		return nil
	}
	return d.String()
}

func decodeDate(ns sql.NullString) (engine.Date, error) {
	if !ns.Valid || ns.String == "" {
		return engine.Date{}, nil
	}
	d, err := engine.ParseDate(ns.String)
	if err != nil {
		return engine.Date{}, fmt.Errorf("failed to parse date: %w", err)
	}
	return d, nil
}

func encodeClock(ct *engine.ClockTime) any {
	if ct == nil {
		return nil
	}
	return ct.String()
}

func decodeClock(ns sql.NullString) (*engine.ClockTime, error) {
	if !ns.Valid || ns.String == "" {
		return nil, nil
	}
	ct, err := engine.ParseClockTime(ns.String)
	if err != nil {
		return nil, fmt.Errorf("failed to parse default_start: %w", err)
	}
	return &ct, nil
}

func encodeTime(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t.Format(time.RFC3339)
}

func decodeTime(ns sql.NullString) (time.Time, error) {
	if !ns.Valid || ns.String == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339, ns.String)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse timestamp: %w", err)
	}
	return t, nil
}
