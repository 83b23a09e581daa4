package report

import (
	"context"
	"fmt"

	"github.com/kintai/attendance-engine/engine"
)

// BalanceRow is one employee's balance inside a batch report. Err is
// set when that employee's data could not be loaded; the rest of the
// batch is unaffected.
type BalanceRow struct {
	Employee engine.Employee
	Report   engine.BalanceReport
	Err      error
}

// BalanceReporter assembles remaining-leave balances from stored
// sessions and records.
type BalanceReporter struct {
	Employees engine.EmployeeRepository
	Sessions  engine.SessionRepository
	Leaves    engine.LeaveRecordRepository
	Ledger    *engine.GrantLedger
}

func NewBalanceReporter(employees engine.EmployeeRepository, sessions engine.SessionRepository, leaves engine.LeaveRecordRepository) *BalanceReporter {
	return &BalanceReporter{
		Employees: employees,
		Sessions:  sessions,
		Leaves:    leaves,
		Ledger:    engine.NewGrantLedger(),
	}
}

// EmployeeBalance computes one employee's balance as of the date
// (zero date means today). (nil, nil) when the employee is unknown.
func (r *BalanceReporter) EmployeeBalance(ctx context.Context, id engine.EmployeeID, asOf engine.Date) (*engine.BalanceReport, error) {
	emp, err := r.Employees.Employee(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load employee: %w", err)
	}
	if emp == nil {
		return nil, nil
	}
	report, err := r.balanceFor(ctx, *emp, asOf)
	if err != nil {
		return nil, err
	}
	return &report, nil
}

// AllBalances computes the roster-wide balance report. Resigned
// employees are skipped. One employee's load failure lands in that
// row's Err; it never aborts the batch.
func (r *BalanceReporter) AllBalances(ctx context.Context, asOf engine.Date) ([]BalanceRow, error) {
	employees, err := r.Employees.Employees(ctx)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}

	rows := make([]BalanceRow, 0, len(employees))
	for _, emp := range employees {
		if emp.Resigned {
			continue
		}
		row := BalanceRow{Employee: emp}
		row.Report, row.Err = r.balanceFor(ctx, emp, asOf)
		rows = append(rows, row)
	}
	return rows, nil
}

func (r *BalanceReporter) balanceFor(ctx context.Context, emp engine.Employee, asOf engine.Date) (engine.BalanceReport, error) {
	sessions, err := r.Sessions.PaidLeaveSessions(ctx, emp.ID)
	if err != nil {
		return engine.BalanceReport{}, fmt.Errorf("load paid-leave sessions: %w", err)
	}
	lt := engine.LeavePaid
	records, err := r.Leaves.LeaveRecords(ctx, emp.ID, engine.LeaveFilter{Type: &lt})
	if err != nil {
		return engine.BalanceReport{}, fmt.Errorf("load leave records: %w", err)
	}
	return r.Ledger.ComputeLeaveBalance(emp, sessions, records, asOf), nil
}
