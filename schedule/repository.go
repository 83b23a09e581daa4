package schedule

import (
	"context"

	"github.com/kintai/attendance-engine/engine"
)

// Repository persists monthly shift assignments. One assignment per
// (employee, month); saving again replaces the pattern.
type Repository interface {
	// Assignment fetches the employee's pattern for the month.
	// (nil, nil) when absent.
	Assignment(ctx context.Context, employeeID engine.EmployeeID, month Month) (*Assignment, error)

	// Assignments returns all of the employee's assignments.
	Assignments(ctx context.Context, employeeID engine.EmployeeID) ([]Assignment, error)

	// SaveAssignment upserts the pattern for (employee, month).
	SaveAssignment(ctx context.Context, a Assignment) error
}
