/*
seed.go - Demo data for development

PURPOSE:
  Populates an empty store with a small roster, shift assignments and
  a few weeks of attendance so the UI has something to show. Loaded
  from main with -seed; never wired to a route.
*/
package api

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kintai/attendance-engine/engine"
	"github.com/kintai/attendance-engine/schedule"
)

// Seed inserts the demo roster. Idempotent enough for dev use: it
// refuses to run when employees already exist.
func Seed(ctx context.Context, store Stores, clock engine.Clock) error {
	existing, err := store.Employees(ctx)
	if err != nil {
		return fmt.Errorf("seed: list employees: %w", err)
	}
	if len(existing) > 0 {
		return fmt.Errorf("seed: store is not empty")
	}

	now := clock.Now().UTC()
	nine := engine.ClockTime{Hour: 9, Minute: 0}

	tanaka := engine.Employee{
		Name:         "Tanaka",
		Department:   "office",
		JoinDate:     engine.NewDate(now.Year()-3, time.April, 1),
		Category:     engine.EmploymentCategory{Kind: engine.FullTime},
		DefaultStart: &nine,
	}
	sato := engine.Employee{
		Name:        "Sato",
		Department:  "warehouse",
		JoinDate:    engine.NewDate(now.Year()-1, time.October, 1),
		Category:    engine.EmploymentCategory{Kind: engine.PartTime, WeeklyDays: 3},
		ShiftWorker: true,
	}
	for _, e := range []*engine.Employee{&tanaka, &sato} {
		e.CreatedAt = now
		if err := store.SaveEmployee(ctx, e); err != nil {
			return fmt.Errorf("seed: save employee %s: %w", e.Name, err)
		}
	}

	// Night-shift pattern for the current month.
	month := schedule.Month{Year: now.Year(), Month: now.Month()}
	if err := store.SaveAssignment(ctx, schedule.Assignment{
		EmployeeID: sato.ID,
		Month:      month,
		Shifts: map[time.Weekday]engine.ShiftCode{
			time.Monday:    engine.ShiftNight,
			time.Wednesday: engine.ShiftNight,
			time.Friday:    engine.ShiftLateNight,
		},
	}); err != nil {
		return fmt.Errorf("seed: save assignment: %w", err)
	}

	// A week of office days, one of them long enough to flag overtime.
	day := time.Date(now.Year(), now.Month(), 3, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		in := day.AddDate(0, 0, i)
		out := in.Add(9 * time.Hour)
		if i == 2 {
			out = in.Add(10*time.Hour + 30*time.Minute)
		}
		ses := engine.AttendanceSession{
			EmployeeID: tanaka.ID,
			Kind:       engine.KindWork,
			CheckIn:    in,
			CheckOut:   out,
			Completed:  true,
			HoursUsed:  decimal.Zero,
			IsOvertime: out.Sub(in) > 9*time.Hour,
		}
		if err := store.SaveSession(ctx, &ses); err != nil {
			return fmt.Errorf("seed: save session: %w", err)
		}
	}

	// One paid-leave day and a manual record.
	leaveIn := day.AddDate(0, 0, 7)
	leave := engine.AttendanceSession{
		EmployeeID: tanaka.ID,
		Kind:       engine.KindPaidLeave,
		CheckIn:    leaveIn,
		CheckOut:   leaveIn.Add(8 * time.Hour),
		Completed:  true,
		HoursUsed:  decimal.NewFromInt(8),
	}
	if err := store.SaveSession(ctx, &leave); err != nil {
		return fmt.Errorf("seed: save leave session: %w", err)
	}

	rec := engine.LeaveRecord{
		EmployeeID: sato.ID,
		Type:       engine.LeavePaid,
		Date:       engine.DateOf(day.AddDate(0, 0, 4)),
		Hours:      decimal.NewFromInt(4),
		Notes:      "hospital visit",
		CreatedAt:  now,
	}
	if err := store.SaveLeaveRecord(ctx, &rec); err != nil {
		return fmt.Errorf("seed: save leave record: %w", err)
	}
	return nil
}
