/*
grants.go - Anniversary entitlement grants with 2-year expiry

PURPOSE:
  Expands an employee's join date into the sequence of entitlement
  grants: one grant per join-date anniversary, each valid for two
  calendar years from issue. The total entitlement at a date is the sum
  of the grants in force at that date, capped at the statutory maximum.

WHY A LEDGER OF GRANTS:
  A single "current entitlement" table lookup undercounts: near an
  anniversary, last year's unconsumed grant and this year's fresh grant
  are concurrently valid. Expanding the full grant sequence and summing
  what is in force is the correct generalization.

MISSING JOIN DATE:
  Not an error. Legacy records may lack a join date; entitlement is
  then zero and reports render "0d 0h".

Grants are derived on demand and never persisted.
*/
package engine

// HoursPerLeaveDay converts entitlement days to hours.
const HoursPerLeaveDay = 8

// MaxEntitlementHours caps the total entitlement in force at any one
// time (40 days), regardless of how many grants overlap.
const MaxEntitlementHours = 320

// GrantExpiryYears is the statutory validity of one grant.
const GrantExpiryYears = 2

// EntitlementGrant is one year's allotment of statutory paid leave.
type EntitlementGrant struct {
	IssueDate   Date // the tenure-years-th join-date anniversary
	ExpiryDate  Date // issue + 2 calendar years
	TenureYears int  // full years since join at issue
	Days        int
	Hours       int
}

// InForceAt reports whether the grant is valid at the given date:
// issued on or before it, and not yet expired.
func (g EntitlementGrant) InForceAt(asOf Date) bool {
	return !asOf.Before(g.IssueDate) && asOf.Before(g.ExpiryDate)
}

// =============================================================================
// GRANT LEDGER
// =============================================================================

// GrantLedger derives entitlement grants from join dates. The Clock
// supplies the default as-of date; inject a FixedClock for
// deterministic results.
type GrantLedger struct {
	Clock Clock
}

// NewGrantLedger returns a ledger on the system clock.
func NewGrantLedger() *GrantLedger {
	return &GrantLedger{Clock: SystemClock()}
}

func (gl *GrantLedger) asOf(asOf Date) Date {
	if !asOf.IsZero() {
		return asOf
	}
	clock := gl.Clock
	if clock == nil {
		clock = SystemClock()
	}
	return DateOf(clock.Now())
}

// Grants expands every grant issued between the join date and asOf
// (inclusive), whether or not still in force. Returns nil when the
// employee has no join date.
func (gl *GrantLedger) Grants(emp Employee, asOf Date) []EntitlementGrant {
	if emp.JoinDate.IsZero() {
		return nil
	}
	at := gl.asOf(asOf)

	years := at.Year - emp.JoinDate.Year
	if years < 0 {
		return nil
	}

	grants := make([]EntitlementGrant, 0, years+1)
	for i := 0; i <= years; i++ {
		issue := NewDate(emp.JoinDate.Year+i, emp.JoinDate.Month, emp.JoinDate.Day)
		days := EntitlementDays(emp.Category, i)
		grants = append(grants, EntitlementGrant{
			IssueDate:   issue,
			ExpiryDate:  issue.AddYears(GrantExpiryYears),
			TenureYears: i,
			Days:        days,
			Hours:       days * HoursPerLeaveDay,
		})
	}
	return grants
}

// EntitlementHours sums the hours of all grants in force at asOf,
// capped at MaxEntitlementHours. Zero when the join date is absent.
func (gl *GrantLedger) EntitlementHours(emp Employee, asOf Date) int {
	at := gl.asOf(asOf)

	total := 0
	for _, g := range gl.Grants(emp, at) {
		if g.InForceAt(at) {
			total += g.Hours
		}
	}
	if total > MaxEntitlementHours {
		total = MaxEntitlementHours
	}
	return total
}
