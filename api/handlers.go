/*
handlers.go - HTTP API handlers for the attendance engine

PURPOSE:
  Exposes attendance tracking and leave accounting via REST API.
  Handles HTTP request/response, JSON serialization, and delegates to
  domain logic.

ENDPOINTS:
  Employees:
    GET    /api/employees                   List all employees
    POST   /api/employees                   Create employee
    GET    /api/employees/{id}              Get employee details
    PUT    /api/employees/{id}              Update employee
    POST   /api/employees/{id}/resign       Soft resignation

  Attendance:
    POST   /api/attendance/clock-in         Open a session
    POST   /api/attendance/clock-out        Close the open session
    GET    /api/attendance/active           List open sessions
    GET    /api/employees/{id}/sessions     Session history
    GET    /api/employees/{id}/report       Export rows with buckets
    POST   /api/sessions                    Manual session entry
    PATCH  /api/sessions/{id}               Correct a session
    DELETE /api/sessions/{id}               Remove a session

  Leave:
    GET    /api/employees/{id}/leave        List leave records
    POST   /api/leave                       Create leave record
    PUT    /api/leave/{id}                  Update leave record
    DELETE /api/leave/{id}                  Delete leave record
    GET    /api/employees/{id}/leave-balance  Remaining balance
    GET    /api/leave-balances              Roster-wide balances

  Shifts:
    GET    /api/employees/{id}/shifts       Monthly assignment
    PUT    /api/shifts                      Save monthly assignment

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Validation errors, invalid input
  - 404: Resource not found
  - 409: Conflict (already clocked in, no open session)
  - 500: Internal errors

SECURITY NOTE:
  Currently NO authentication or authorization. All endpoints are
  public and meant to sit behind an internal gateway.

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
  - sweeper.go: Stale open-session cleanup
*/
package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/kintai/attendance-engine/engine"
	"github.com/kintai/attendance-engine/report"
	"github.com/kintai/attendance-engine/schedule"
)

// summerLeaveBudgetHours caps summer leave per calendar year.
const summerLeaveBudgetHours = 24

// Stores bundles the repositories the handler needs. The SQLite and
// memory stores both satisfy the whole set.
type Stores interface {
	engine.EmployeeRepository
	engine.SessionRepository
	engine.LeaveRecordRepository
	schedule.Repository
}

// Handler holds all endpoint dependencies.
type Handler struct {
	store      Stores
	attendance *report.AttendanceReporter
	balances   *report.BalanceReporter
	classifier *engine.TimeBucketClassifier
	evaluator  *engine.LatenessEvaluator
	clock      engine.Clock
	log        *zap.Logger
}

// NewHandler wires the default engine components onto the store.
func NewHandler(store Stores, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		store:      store,
		attendance: report.NewAttendanceReporter(store, store, store),
		balances:   report.NewBalanceReporter(store, store, store),
		classifier: engine.NewTimeBucketClassifier(),
		evaluator:  engine.NewLatenessEvaluator(),
		clock:      engine.SystemClock(),
		log:        logger,
	}
}

// WithClassifier replaces the time-bucket thresholds (from config).
func (h *Handler) WithClassifier(cfg engine.ClassifierConfig) *Handler {
	h.classifier = &engine.TimeBucketClassifier{Config: cfg}
	h.attendance.Classifier = h.classifier
	return h
}

// WithGrace replaces the export lateness grace (from config). It
// governs both the evaluator and the stored-override comparison in
// report rows.
func (h *Handler) WithGrace(minutes int) *Handler {
	h.attendance.Evaluator.GraceMinutes = minutes
	return h
}

// WithClock pins time for tests.
func (h *Handler) WithClock(clock engine.Clock) *Handler {
	h.clock = clock
	h.balances.Ledger.Clock = clock
	return h
}

// =============================================================================
// EMPLOYEE ENDPOINTS
// =============================================================================

// ListEmployees returns all employees, resigned included.
// GET /api/employees
func (h *Handler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.store.Employees(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list employees", err)
		return
	}
	dtos := make([]EmployeeDTO, 0, len(employees))
	for _, e := range employees {
		dtos = append(dtos, toEmployeeDTO(e))
	}
	writeJSON(w, http.StatusOK, dtos)
}

// GetEmployee returns one employee.
// GET /api/employees/{id}
func (h *Handler) GetEmployee(w http.ResponseWriter, r *http.Request) {
	emp, ok := h.loadEmployee(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, toEmployeeDTO(*emp))
}

// CreateEmployee registers a new employee.
// POST /api/employees
func (h *Handler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	emp, err := employeeFromRequest(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid employee", err)
		return
	}
	emp.CreatedAt = h.clock.Now().UTC()

	if existing, err := h.store.EmployeeByName(r.Context(), emp.Name); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to check name", err)
		return
	} else if existing != nil {
		writeError(w, http.StatusConflict, "employee name already exists", nil)
		return
	}

	if err := h.store.SaveEmployee(r.Context(), &emp); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save employee", err)
		return
	}
	h.log.Info("employee created", zap.String("id", string(emp.ID)), zap.String("name", emp.Name))
	writeJSON(w, http.StatusCreated, toEmployeeDTO(emp))
}

// UpdateEmployee replaces the employee's profile fields.
// PUT /api/employees/{id}
func (h *Handler) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	emp, ok := h.loadEmployee(w, r)
	if !ok {
		return
	}
	var req CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	updated, err := employeeFromRequest(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid employee", err)
		return
	}
	updated.ID = emp.ID
	updated.Resigned = emp.Resigned
	updated.CreatedAt = emp.CreatedAt

	if err := h.store.UpdateEmployee(r.Context(), updated); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to update employee", err)
		return
	}
	writeJSON(w, http.StatusOK, toEmployeeDTO(updated))
}

// ResignEmployee marks the employee resigned. History stays intact.
// POST /api/employees/{id}/resign
func (h *Handler) ResignEmployee(w http.ResponseWriter, r *http.Request) {
	emp, ok := h.loadEmployee(w, r)
	if !ok {
		return
	}
	if err := h.store.MarkResigned(r.Context(), emp.ID); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to resign employee", err)
		return
	}
	h.log.Info("employee resigned", zap.String("id", string(emp.ID)))
	w.WriteHeader(http.StatusNoContent)
}

func employeeFromRequest(req CreateEmployeeRequest) (engine.Employee, error) {
	var emp engine.Employee
	if req.Name == "" {
		return emp, fmt.Errorf("name is required")
	}
	kind := engine.EmploymentKind(req.Employment)
	if kind == "" {
		kind = engine.FullTime
	}
	if kind != engine.FullTime && kind != engine.PartTime {
		return emp, fmt.Errorf("unknown employment kind %q", req.Employment)
	}

	emp = engine.Employee{
		Name:        req.Name,
		Department:  req.Department,
		Category:    engine.EmploymentCategory{Kind: kind, WeeklyDays: req.WeeklyDays},
		ShiftWorker: req.ShiftWorker,
	}
	if req.JoinDate != "" {
		d, err := engine.ParseDate(req.JoinDate)
		if err != nil {
			return emp, fmt.Errorf("join_date: %w", err)
		}
		emp.JoinDate = d
	}
	if req.DefaultStart != "" {
		ct, err := engine.ParseClockTime(req.DefaultStart)
		if err != nil {
			return emp, fmt.Errorf("default_start: %w", err)
		}
		emp.DefaultStart = &ct
	}
	return emp, nil
}

// =============================================================================
// ATTENDANCE ENDPOINTS
// =============================================================================

// ClockIn opens a work session. Refused while one is already open.
// POST /api/attendance/clock-in
func (h *Handler) ClockIn(w http.ResponseWriter, r *http.Request) {
	var req ClockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	emp, ok := h.resolveEmployee(w, r, req)
	if !ok {
		return
	}

	at, err := parseAtOrNow(req.At, h.clock)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid timestamp", err)
		return
	}

	open, err := h.store.OpenSession(r.Context(), emp.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to check open session", err)
		return
	}
	if open != nil {
		writeError(w, http.StatusConflict, "already clocked in", nil)
		return
	}

	ses := engine.AttendanceSession{
		EmployeeID: emp.ID,
		Kind:       engine.KindWork,
		CheckIn:    at,
		HoursUsed:  decimal.Zero,
	}

	// Lateness is evaluated once, at the punch, and stored with the
	// session. If no schedule applies it stays unknown.
	lookup, err := h.shiftLookup(r, *emp)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load shifts", err)
		return
	}
	if res, err := h.evaluator.Evaluate(*emp, at, lookup); err == nil {
		ses.LateMinutes = &res.LateMinutes
	} else if !engine.IsScheduleUnknown(err) {
		writeError(w, http.StatusInternalServerError, "failed to evaluate lateness", err)
		return
	}

	if err := h.store.SaveSession(r.Context(), &ses); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save session", err)
		return
	}
	h.log.Info("clock in",
		zap.String("employee", string(emp.ID)),
		zap.Time("at", at))
	writeJSON(w, http.StatusCreated, toSessionDTO(ses))
}

// ClockOut closes the open session and fixes its derived fields.
// POST /api/attendance/clock-out
func (h *Handler) ClockOut(w http.ResponseWriter, r *http.Request) {
	var req ClockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	emp, ok := h.resolveEmployee(w, r, req)
	if !ok {
		return
	}

	at, err := parseAtOrNow(req.At, h.clock)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid timestamp", err)
		return
	}

	open, err := h.store.OpenSession(r.Context(), emp.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load open session", err)
		return
	}
	if open == nil {
		writeError(w, http.StatusConflict, "not clocked in", nil)
		return
	}

	open.CheckOut = at
	open.Completed = true
	if err := h.finalizeSession(open); err != nil {
		writeError(w, http.StatusBadRequest, "invalid interval", err)
		return
	}

	if err := h.store.UpdateSession(r.Context(), *open); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to update session", err)
		return
	}
	h.log.Info("clock out",
		zap.String("employee", string(emp.ID)),
		zap.Time("at", at),
		zap.Bool("overtime", open.IsOvertime))
	writeJSON(w, http.StatusOK, toSessionDTO(*open))
}

// ActiveSessions lists everyone currently clocked in.
// GET /api/attendance/active
func (h *Handler) ActiveSessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.store.OpenSessions(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list open sessions", err)
		return
	}
	dtos := make([]SessionDTO, 0, len(sessions))
	for _, s := range sessions {
		dtos = append(dtos, toSessionDTO(s))
	}
	writeJSON(w, http.StatusOK, dtos)
}

// ListSessions returns the employee's session history.
// GET /api/employees/{id}/sessions
func (h *Handler) ListSessions(w http.ResponseWriter, r *http.Request) {
	emp, ok := h.loadEmployee(w, r)
	if !ok {
		return
	}
	sessions, err := h.store.SessionsByEmployee(r.Context(), emp.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list sessions", err)
		return
	}
	dtos := make([]SessionDTO, 0, len(sessions))
	for _, s := range sessions {
		dtos = append(dtos, toSessionDTO(s))
	}
	writeJSON(w, http.StatusOK, dtos)
}

// SessionReport returns the export rows with time buckets.
// GET /api/employees/{id}/report
func (h *Handler) SessionReport(w http.ResponseWriter, r *http.Request) {
	emp, ok := h.loadEmployee(w, r)
	if !ok {
		return
	}
	rows, err := h.attendance.SessionRows(r.Context(), emp.ID)
	if err != nil {
		if engine.IsClientError(err) {
			writeError(w, http.StatusBadRequest, "invalid session data", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to build report", err)
		return
	}
	dtos := make([]SessionRowDTO, 0, len(rows))
	for _, row := range rows {
		dtos = append(dtos, toSessionRowDTO(row))
	}
	writeJSON(w, http.StatusOK, dtos)
}

// CreateSession records a full session manually (admin entry).
// POST /api/sessions
func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req CreateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	emp, err := h.store.Employee(r.Context(), engine.EmployeeID(req.EmployeeID))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load employee", err)
		return
	}
	if emp == nil {
		writeError(w, http.StatusNotFound, "employee not found", nil)
		return
	}

	kind := engine.SessionKind(req.Kind)
	if kind == "" {
		kind = engine.KindWork
	}
	if !engine.ValidSessionKind(kind) {
		writeError(w, http.StatusBadRequest, "unknown session kind", nil)
		return
	}

	checkIn, err := time.Parse(time.RFC3339, req.CheckIn)
	if err != nil {
		writeError(w, http.StatusBadRequest, "check_in: invalid timestamp", err)
		return
	}
	checkOut, err := time.Parse(time.RFC3339, req.CheckOut)
	if err != nil {
		writeError(w, http.StatusBadRequest, "check_out: invalid timestamp", err)
		return
	}

	ses := engine.AttendanceSession{
		EmployeeID: emp.ID,
		Kind:       kind,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Completed:  true,
		HoursUsed:  decimal.Zero,
	}
	if err := h.finalizeSession(&ses); err != nil {
		writeError(w, http.StatusBadRequest, "invalid interval", err)
		return
	}
	if err := h.store.SaveSession(r.Context(), &ses); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save session", err)
		return
	}
	writeJSON(w, http.StatusCreated, toSessionDTO(ses))
}

// UpdateSession corrects a stored session and recomputes its derived
// fields (overtime flag, hours used).
// PATCH /api/sessions/{id}
func (h *Handler) UpdateSession(w http.ResponseWriter, r *http.Request) {
	id := engine.SessionID(chi.URLParam(r, "id"))
	ses, err := h.store.Session(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load session", err)
		return
	}
	if ses == nil {
		writeError(w, http.StatusNotFound, "session not found", nil)
		return
	}

	var req UpdateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	if req.Kind != nil {
		kind := engine.SessionKind(*req.Kind)
		if !engine.ValidSessionKind(kind) {
			writeError(w, http.StatusBadRequest, "unknown session kind", nil)
			return
		}
		ses.Kind = kind
	}
	if req.CheckIn != nil {
		t, err := time.Parse(time.RFC3339, *req.CheckIn)
		if err != nil {
			writeError(w, http.StatusBadRequest, "check_in: invalid timestamp", err)
			return
		}
		ses.CheckIn = t
	}
	if req.CheckOut != nil {
		t, err := time.Parse(time.RFC3339, *req.CheckOut)
		if err != nil {
			writeError(w, http.StatusBadRequest, "check_out: invalid timestamp", err)
			return
		}
		ses.CheckOut = t
		ses.Completed = true
	}
	if req.LateMinutes != nil {
		ses.LateMinutes = req.LateMinutes
	}

	if ses.Closed() {
		if err := h.finalizeSession(ses); err != nil {
			writeError(w, http.StatusBadRequest, "invalid interval", err)
			return
		}
	}

	if err := h.store.UpdateSession(r.Context(), *ses); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to update session", err)
		return
	}
	writeJSON(w, http.StatusOK, toSessionDTO(*ses))
}

// DeleteSession removes a session.
// DELETE /api/sessions/{id}
func (h *Handler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	id := engine.SessionID(chi.URLParam(r, "id"))
	if err := h.store.DeleteSession(r.Context(), id); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to delete session", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// finalizeSession recomputes the derived fields of a closed session:
// the overtime flag from raw minutes, and for leave kinds the hours
// consumed (capped at a day, rounded to the half hour).
func (h *Handler) finalizeSession(ses *engine.AttendanceSession) error {
	buckets, err := h.classifier.Classify(ses.CheckIn, ses.CheckOut)
	if err != nil {
		return err
	}
	ses.IsOvertime = buckets.IsOvertime

	switch ses.Kind {
	case engine.KindPaidLeave, engine.KindUnpaidLeave:
		hours := decimal.NewFromFloat(ses.Duration().Hours())
		if hours.GreaterThan(engine.SessionCapHours) {
			hours = engine.SessionCapHours
		}
		ses.HoursUsed = engine.RoundToHalfHour(hours)
	default:
		ses.HoursUsed = decimal.Zero
	}
	return nil
}

// =============================================================================
// LEAVE ENDPOINTS
// =============================================================================

// ListLeave returns the employee's leave records, optionally filtered
// by type and date range.
// GET /api/employees/{id}/leave?type=&from=&to=
func (h *Handler) ListLeave(w http.ResponseWriter, r *http.Request) {
	emp, ok := h.loadEmployee(w, r)
	if !ok {
		return
	}

	var filter engine.LeaveFilter
	if v := r.URL.Query().Get("type"); v != "" {
		lt := engine.LeaveType(v)
		if !engine.ValidLeaveType(lt) {
			writeError(w, http.StatusBadRequest, "unknown leave type", nil)
			return
		}
		filter.Type = &lt
	}
	if v := r.URL.Query().Get("from"); v != "" {
		d, err := engine.ParseDate(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "from: invalid date", err)
			return
		}
		filter.From = &d
	}
	if v := r.URL.Query().Get("to"); v != "" {
		d, err := engine.ParseDate(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "to: invalid date", err)
			return
		}
		filter.To = &d
	}

	records, err := h.store.LeaveRecords(r.Context(), emp.ID, filter)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list leave records", err)
		return
	}
	dtos := make([]LeaveRecordDTO, 0, len(records))
	for _, rec := range records {
		dtos = append(dtos, toLeaveRecordDTO(rec))
	}
	writeJSON(w, http.StatusOK, dtos)
}

// CreateLeave records leave manually.
// POST /api/leave
func (h *Handler) CreateLeave(w http.ResponseWriter, r *http.Request) {
	var req CreateLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	rec, err := h.leaveFromRequest(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid leave record", err)
		return
	}

	emp, err := h.store.Employee(r.Context(), rec.EmployeeID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load employee", err)
		return
	}
	if emp == nil {
		writeError(w, http.StatusNotFound, "employee not found", nil)
		return
	}

	if err := h.checkSummerBudget(r, rec, ""); err != nil {
		writeError(w, http.StatusBadRequest, "summer leave rejected", err)
		return
	}

	rec.CreatedAt = h.clock.Now().UTC()
	if err := h.store.SaveLeaveRecord(r.Context(), &rec); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save leave record", err)
		return
	}
	h.log.Info("leave recorded",
		zap.String("employee", string(rec.EmployeeID)),
		zap.String("type", string(rec.Type)),
		zap.String("hours", rec.Hours.String()))
	writeJSON(w, http.StatusCreated, toLeaveRecordDTO(rec))
}

// UpdateLeave replaces a leave record.
// PUT /api/leave/{id}
func (h *Handler) UpdateLeave(w http.ResponseWriter, r *http.Request) {
	id := engine.LeaveRecordID(chi.URLParam(r, "id"))
	existing, err := h.store.LeaveRecord(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load leave record", err)
		return
	}
	if existing == nil {
		writeError(w, http.StatusNotFound, "leave record not found", nil)
		return
	}

	var req CreateLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if req.EmployeeID == "" {
		req.EmployeeID = string(existing.EmployeeID)
	}
	rec, err := h.leaveFromRequest(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid leave record", err)
		return
	}
	rec.ID = existing.ID
	rec.CreatedAt = existing.CreatedAt

	if err := h.checkSummerBudget(r, rec, rec.ID); err != nil {
		writeError(w, http.StatusBadRequest, "summer leave rejected", err)
		return
	}

	if err := h.store.UpdateLeaveRecord(r.Context(), rec); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to update leave record", err)
		return
	}
	writeJSON(w, http.StatusOK, toLeaveRecordDTO(rec))
}

// DeleteLeave removes a leave record.
// DELETE /api/leave/{id}
func (h *Handler) DeleteLeave(w http.ResponseWriter, r *http.Request) {
	id := engine.LeaveRecordID(chi.URLParam(r, "id"))
	if err := h.store.DeleteLeaveRecord(r.Context(), id); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to delete leave record", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) leaveFromRequest(req CreateLeaveRequest) (engine.LeaveRecord, error) {
	var rec engine.LeaveRecord
	if req.EmployeeID == "" {
		return rec, fmt.Errorf("employee_id is required")
	}
	lt := engine.LeaveType(req.Type)
	if !engine.ValidLeaveType(lt) {
		return rec, fmt.Errorf("unknown leave type %q", req.Type)
	}
	d, err := engine.ParseDate(req.Date)
	if err != nil {
		return rec, fmt.Errorf("date: %w", err)
	}
	hours, err := decimal.NewFromString(req.Hours)
	if err != nil {
		return rec, fmt.Errorf("hours: %w", err)
	}
	if hours.IsNegative() || hours.IsZero() {
		return rec, fmt.Errorf("hours must be positive")
	}

	return engine.LeaveRecord{
		EmployeeID: engine.EmployeeID(req.EmployeeID),
		Type:       lt,
		Date:       d,
		Hours:      hours,
		Notes:      req.Notes,
	}, nil
}

// checkSummerBudget enforces the summer-leave rules: July through
// September only, at most 24 hours per calendar year. excludeID skips
// the record being replaced on update.
func (h *Handler) checkSummerBudget(r *http.Request, rec engine.LeaveRecord, excludeID engine.LeaveRecordID) error {
	if rec.Type != engine.LeaveSummer {
		return nil
	}
	if rec.Date.Month < time.July || rec.Date.Month > time.September {
		return fmt.Errorf("summer leave is limited to July through September")
	}

	lt := engine.LeaveSummer
	from := engine.NewDate(rec.Date.Year, time.January, 1)
	to := engine.NewDate(rec.Date.Year, time.December, 31)
	existing, err := h.store.LeaveRecords(r.Context(), rec.EmployeeID, engine.LeaveFilter{
		Type: &lt, From: &from, To: &to,
	})
	if err != nil {
		return fmt.Errorf("load summer records: %w", err)
	}

	total := rec.Hours
	for _, e := range existing {
		if e.ID == excludeID {
			continue
		}
		total = total.Add(e.Hours)
	}
	if total.GreaterThan(decimal.NewFromInt(summerLeaveBudgetHours)) {
		return fmt.Errorf("summer leave budget exceeded: %s of %d hours", total.String(), summerLeaveBudgetHours)
	}
	return nil
}

// =============================================================================
// BALANCE ENDPOINTS
// =============================================================================

// GetBalance returns the employee's remaining paid-leave balance.
// GET /api/employees/{id}/leave-balance?as_of=
func (h *Handler) GetBalance(w http.ResponseWriter, r *http.Request) {
	emp, ok := h.loadEmployee(w, r)
	if !ok {
		return
	}
	asOf, err := parseAsOf(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "as_of: invalid date", err)
		return
	}

	balance, err := h.balances.EmployeeBalance(r.Context(), emp.ID, asOf)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to compute balance", err)
		return
	}
	if balance == nil {
		writeError(w, http.StatusNotFound, "employee not found", nil)
		return
	}
	dto := toBalanceDTO(*balance)
	dto.Name = emp.Name
	writeJSON(w, http.StatusOK, dto)
}

// ListBalances returns the roster-wide balance report. Rows that fail
// carry their own error instead of failing the batch.
// GET /api/leave-balances?as_of=
func (h *Handler) ListBalances(w http.ResponseWriter, r *http.Request) {
	asOf, err := parseAsOf(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "as_of: invalid date", err)
		return
	}

	rows, err := h.balances.AllBalances(r.Context(), asOf)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to compute balances", err)
		return
	}

	dtos := make([]BalanceDTO, 0, len(rows))
	for _, row := range rows {
		dto := toBalanceDTO(row.Report)
		dto.EmployeeID = string(row.Employee.ID)
		dto.Name = row.Employee.Name
		if row.Err != nil {
			dto.Error = row.Err.Error()
			h.log.Warn("balance row failed",
				zap.String("employee", string(row.Employee.ID)),
				zap.Error(row.Err))
		}
		dtos = append(dtos, dto)
	}
	writeJSON(w, http.StatusOK, dtos)
}

func parseAsOf(r *http.Request) (engine.Date, error) {
	v := r.URL.Query().Get("as_of")
	if v == "" {
		return engine.Date{}, nil
	}
	return engine.ParseDate(v)
}

// =============================================================================
// SHIFT ENDPOINTS
// =============================================================================

// GetShifts returns the employee's assignment for a month.
// GET /api/employees/{id}/shifts?month=YYYY-MM
func (h *Handler) GetShifts(w http.ResponseWriter, r *http.Request) {
	emp, ok := h.loadEmployee(w, r)
	if !ok {
		return
	}
	month, err := schedule.ParseMonth(r.URL.Query().Get("month"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "month: invalid", err)
		return
	}
	a, err := h.store.Assignment(r.Context(), emp.ID, month)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load assignment", err)
		return
	}
	if a == nil {
		writeError(w, http.StatusNotFound, "no assignment for month", nil)
		return
	}
	writeJSON(w, http.StatusOK, toAssignmentDTO(*a))
}

// SaveShifts upserts a monthly assignment.
// PUT /api/shifts
func (h *Handler) SaveShifts(w http.ResponseWriter, r *http.Request) {
	var req SaveAssignmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	month, err := schedule.ParseMonth(req.Month)
	if err != nil {
		writeError(w, http.StatusBadRequest, "month: invalid", err)
		return
	}
	shifts := make(map[time.Weekday]engine.ShiftCode, len(req.Shifts))
	for name, code := range req.Shifts {
		wd, ok := weekdayByName(name)
		if !ok {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown weekday %q", name), nil)
			return
		}
		shifts[wd] = engine.ShiftCode(code)
	}

	a := schedule.Assignment{
		EmployeeID: engine.EmployeeID(req.EmployeeID),
		Month:      month,
		Shifts:     shifts,
	}
	if err := a.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "invalid assignment", err)
		return
	}

	emp, err := h.store.Employee(r.Context(), a.EmployeeID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load employee", err)
		return
	}
	if emp == nil {
		writeError(w, http.StatusNotFound, "employee not found", nil)
		return
	}

	if err := h.store.SaveAssignment(r.Context(), a); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save assignment", err)
		return
	}
	writeJSON(w, http.StatusOK, toAssignmentDTO(a))
}

// =============================================================================
// HELPERS
// =============================================================================

func (h *Handler) loadEmployee(w http.ResponseWriter, r *http.Request) (*engine.Employee, bool) {
	id := engine.EmployeeID(chi.URLParam(r, "id"))
	emp, err := h.store.Employee(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load employee", err)
		return nil, false
	}
	if emp == nil {
		writeError(w, http.StatusNotFound, "employee not found", nil)
		return nil, false
	}
	return emp, true
}

// resolveEmployee resolves a clock request by id first, then by
// display name.
func (h *Handler) resolveEmployee(w http.ResponseWriter, r *http.Request, req ClockRequest) (*engine.Employee, bool) {
	var (
		emp *engine.Employee
		err error
	)
	switch {
	case req.EmployeeID != "":
		emp, err = h.store.Employee(r.Context(), engine.EmployeeID(req.EmployeeID))
	case req.Name != "":
		emp, err = h.store.EmployeeByName(r.Context(), req.Name)
	default:
		writeError(w, http.StatusBadRequest, "employee_id or name is required", nil)
		return nil, false
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load employee", err)
		return nil, false
	}
	if emp == nil {
		writeError(w, http.StatusNotFound, "employee not found", nil)
		return nil, false
	}
	if emp.Resigned {
		writeError(w, http.StatusConflict, "employee has resigned", nil)
		return nil, false
	}
	return emp, true
}

func (h *Handler) shiftLookup(r *http.Request, emp engine.Employee) (engine.ShiftLookup, error) {
	if !emp.ShiftWorker {
		return nil, nil
	}
	assignments, err := h.store.Assignments(r.Context(), emp.ID)
	if err != nil {
		return nil, err
	}
	return schedule.NewCalendar(assignments).Lookup(), nil
}

func parseAtOrNow(raw string, clock engine.Clock) (time.Time, error) {
	if raw == "" {
		return clock.Now(), nil
	}
	return time.Parse(time.RFC3339, raw)
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
