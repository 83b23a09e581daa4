/*
entitlement.go - Statutory paid-leave entitlement tables

PURPOSE:
  Pure lookup from (employment category, tenure in completed years) to
  entitlement days. The tables mirror the statutory schedule: one row
  for full-time employees, one row per weekly-working-days count for
  part-time employees.

CLAMPING:
  Tenure indexes clamp to the table bounds: negative tenure reads the
  first entry, tenure beyond the table reads the last. The lookup
  cannot fail.
*/
package engine

// Entitlement days indexed by completed tenure years (0-based).
var fullTimeEntitlement = []int{10, 11, 12, 14, 16, 18, 20}

var partTimeEntitlement = map[int][]int{
	4: {7, 8, 9, 10, 12, 13, 15},
	3: {5, 6, 6, 8, 9, 10, 11},
	2: {3, 4, 4, 5, 6, 6, 7},
	1: {1, 2, 2, 2, 3, 3, 3},
}

// EntitlementDays returns the statutory paid-leave days for the
// category at the given tenure. Part-time with five or more weekly
// days routes to the full-time table; part-time with a weekly-days
// count outside 1-4 has no row and yields zero.
func EntitlementDays(cat EmploymentCategory, tenureYears int) int {
	if cat.IsFullTime() {
		return fullTimeEntitlement[clampIndex(tenureYears, len(fullTimeEntitlement))]
	}
	row, ok := partTimeEntitlement[cat.WeeklyDays]
	if !ok {
		return 0
	}
	return row[clampIndex(tenureYears, len(row))]
}

func clampIndex(i, length int) int {
	if i < 0 {
		return 0
	}
	if i >= length {
		return length - 1
	}
	return i
}
