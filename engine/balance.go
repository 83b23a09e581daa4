/*
balance.go - Remaining paid-leave balance reports

PURPOSE:
  Combines the grant ledger (entitlement in force) with the consumption
  aggregator (hours used) into the remaining-balance report shown to
  employees and admins: hours remaining, entitlement days, and the
  "{days}d {hours}h" display string.

FAILURE MODE:
  None of its own. A missing join date propagates the ledger's
  zero-entitlement behavior and renders as "0d 0h".
*/
package engine

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var hoursPerDay = decimal.NewFromInt(HoursPerLeaveDay)

// BalanceReport is the remaining paid-leave balance at a date.
type BalanceReport struct {
	EmployeeID EmployeeID
	AsOf       Date

	EntitlementHours int
	EntitlementDays  int // floor(EntitlementHours / 8)

	UsedHours      decimal.Decimal // multiple of 0.5
	RemainingHours decimal.Decimal // max(0, entitlement - used)

	Formatted string // e.g. "12d 4.5h"
}

// ComputeLeaveBalance produces the balance report for one employee.
// Invoking it twice with identical inputs yields identical reports;
// there is no hidden state.
func (gl *GrantLedger) ComputeLeaveBalance(emp Employee, sessions []AttendanceSession, records []LeaveRecord, asOf Date) BalanceReport {
	at := gl.asOf(asOf)

	entitled := gl.EntitlementHours(emp, at)
	used := ConsumedHours(sessions, records)

	remaining := decimal.NewFromInt(int64(entitled)).Sub(used)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}

	return BalanceReport{
		EmployeeID:       emp.ID,
		AsOf:             at,
		EntitlementHours: entitled,
		EntitlementDays:  entitled / HoursPerLeaveDay,
		UsedHours:        used,
		RemainingHours:   remaining,
		Formatted:        FormatDaysHours(remaining),
	}
}

// FormatDaysHours renders hours as "{days}d {hours}h", with the
// leftover hours rounded to the nearest half hour.
func FormatDaysHours(hours decimal.Decimal) string {
	days := hours.Div(hoursPerDay).Floor().IntPart()
	rest := RoundToHalfHour(hours.Mod(hoursPerDay))
	return fmt.Sprintf("%dd %sh", days, rest.String())
}
