// Package memory provides in-memory repository implementations (for
// testing/dev). All methods copy on the way in and out; callers never
// share storage with the maps.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kintai/attendance-engine/engine"
	"github.com/kintai/attendance-engine/schedule"
)

// =============================================================================
// STORE
// =============================================================================

// Store implements every repository interface over maps guarded by one
// RWMutex. Cross-repository reads under a single store are therefore
// consistent.
type Store struct {
	mu          sync.RWMutex
	employees   map[engine.EmployeeID]engine.Employee
	sessions    map[engine.SessionID]engine.AttendanceSession
	leaves      map[engine.LeaveRecordID]engine.LeaveRecord
	assignments map[assignmentKey]schedule.Assignment
}

type assignmentKey struct {
	EmployeeID engine.EmployeeID
	Month      schedule.Month
}

func NewStore() *Store {
	return &Store{
		employees:   make(map[engine.EmployeeID]engine.Employee),
		sessions:    make(map[engine.SessionID]engine.AttendanceSession),
		leaves:      make(map[engine.LeaveRecordID]engine.LeaveRecord),
		assignments: make(map[assignmentKey]schedule.Assignment),
	}
}

// =============================================================================
// EMPLOYEES
// =============================================================================

func (s *Store) Employee(_ context.Context, id engine.EmployeeID) (*engine.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.employees[id]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

func (s *Store) EmployeeByName(_ context.Context, name string) (*engine.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.employees {
		if e.Name == name {
			e := e
			return &e, nil
		}
	}
	return nil, nil
}

func (s *Store) Employees(_ context.Context) ([]engine.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]engine.Employee, 0, len(s.employees))
	for _, e := range s.employees {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *Store) SaveEmployee(_ context.Context, e *engine.Employee) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e.ID == "" {
		e.ID = engine.EmployeeID(uuid.NewString())
	}
	s.employees[e.ID] = *e
	return nil
}

func (s *Store) UpdateEmployee(_ context.Context, e engine.Employee) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.employees[e.ID] = e
	return nil
}

func (s *Store) MarkResigned(_ context.Context, id engine.EmployeeID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.employees[id]
	if !ok {
		return nil
	}
	e.Resigned = true
	s.employees[id] = e
	return nil
}

// =============================================================================
// SESSIONS
// =============================================================================

func (s *Store) Session(_ context.Context, id engine.SessionID) (*engine.AttendanceSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ses, ok := s.sessions[id]
	if !ok {
		return nil, nil
	}
	return &ses, nil
}

func (s *Store) OpenSession(_ context.Context, employeeID engine.EmployeeID) (*engine.AttendanceSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var newest *engine.AttendanceSession
	for _, ses := range s.sessions {
		if ses.EmployeeID != employeeID || ses.Completed {
			continue
		}
		ses := ses
		if newest == nil || ses.CheckIn.After(newest.CheckIn) {
			newest = &ses
		}
	}
	return newest, nil
}

func (s *Store) OpenSessions(_ context.Context) ([]engine.AttendanceSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []engine.AttendanceSession
	for _, ses := range s.sessions {
		if !ses.Completed {
			out = append(out, ses)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CheckIn.After(out[j].CheckIn) })
	return out, nil
}

func (s *Store) SessionsByEmployee(_ context.Context, employeeID engine.EmployeeID) ([]engine.AttendanceSession, error) {
	return s.sessionsWhere(func(ses engine.AttendanceSession) bool {
		return ses.EmployeeID == employeeID
	})
}

func (s *Store) CompletedSessions(_ context.Context, employeeID engine.EmployeeID) ([]engine.AttendanceSession, error) {
	return s.sessionsWhere(func(ses engine.AttendanceSession) bool {
		return ses.EmployeeID == employeeID && ses.Closed()
	})
}

func (s *Store) PaidLeaveSessions(_ context.Context, employeeID engine.EmployeeID) ([]engine.AttendanceSession, error) {
	return s.sessionsWhere(func(ses engine.AttendanceSession) bool {
		return ses.EmployeeID == employeeID && ses.Kind == engine.KindPaidLeave && ses.Closed()
	})
}

func (s *Store) sessionsWhere(keep func(engine.AttendanceSession) bool) ([]engine.AttendanceSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []engine.AttendanceSession
	for _, ses := range s.sessions {
		if keep(ses) {
			out = append(out, ses)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CheckIn.Before(out[j].CheckIn) })
	return out, nil
}

func (s *Store) SaveSession(_ context.Context, ses *engine.AttendanceSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if ses.ID == "" {
		ses.ID = engine.SessionID(uuid.NewString())
	}
	s.sessions[ses.ID] = *ses
	return nil
}

func (s *Store) UpdateSession(_ context.Context, ses engine.AttendanceSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[ses.ID] = ses
	return nil
}

func (s *Store) DeleteSession(_ context.Context, id engine.SessionID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

// =============================================================================
// LEAVE RECORDS
// =============================================================================

func (s *Store) LeaveRecord(_ context.Context, id engine.LeaveRecordID) (*engine.LeaveRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.leaves[id]
	if !ok {
		return nil, nil
	}
	return &r, nil
}

func (s *Store) LeaveRecords(_ context.Context, employeeID engine.EmployeeID, filter engine.LeaveFilter) ([]engine.LeaveRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []engine.LeaveRecord
	for _, r := range s.leaves {
		if r.EmployeeID != employeeID {
			continue
		}
		if filter.Type != nil && r.Type != *filter.Type {
			continue
		}
		if filter.From != nil && r.Date.Before(*filter.From) {
			continue
		}
		if filter.To != nil && r.Date.After(*filter.To) {
			continue
		}
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (s *Store) SaveLeaveRecord(_ context.Context, r *engine.LeaveRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r.ID == "" {
		r.ID = engine.LeaveRecordID(uuid.NewString())
	}
	s.leaves[r.ID] = *r
	return nil
}

func (s *Store) UpdateLeaveRecord(_ context.Context, r engine.LeaveRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.leaves[r.ID] = r
	return nil
}

func (s *Store) DeleteLeaveRecord(_ context.Context, id engine.LeaveRecordID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.leaves, id)
	return nil
}

// =============================================================================
// SHIFT ASSIGNMENTS
// =============================================================================

func (s *Store) Assignment(_ context.Context, employeeID engine.EmployeeID, month schedule.Month) (*schedule.Assignment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.assignments[assignmentKey{EmployeeID: employeeID, Month: month}]
	if !ok {
		return nil, nil
	}
	a.Shifts = copyShifts(a.Shifts)
	return &a, nil
}

func (s *Store) Assignments(_ context.Context, employeeID engine.EmployeeID) ([]schedule.Assignment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []schedule.Assignment
	for k, a := range s.assignments {
		if k.EmployeeID != employeeID {
			continue
		}
		a.Shifts = copyShifts(a.Shifts)
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Month.String() < out[j].Month.String()
	})
	return out, nil
}

func (s *Store) SaveAssignment(_ context.Context, a schedule.Assignment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	a.Shifts = copyShifts(a.Shifts)
	s.assignments[assignmentKey{EmployeeID: a.EmployeeID, Month: a.Month}] = a
	return nil
}

func copyShifts(in map[time.Weekday]engine.ShiftCode) map[time.Weekday]engine.ShiftCode {
	out := make(map[time.Weekday]engine.ShiftCode, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
