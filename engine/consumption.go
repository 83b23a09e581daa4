/*
consumption.go - Paid-leave consumption accounting

PURPOSE:
  Sums the paid-leave hours an employee has consumed: completed
  attendance sessions flagged as paid leave, plus manual leave records
  of type "paid". Other session kinds and leave types never reach this
  total.

CAPPING AND ROUNDING:
  A single session contributes at most one day's worth
  (SessionCapHours), no matter how long its wall-clock span - an
  overnight or forgotten-checkout session cannot burn more than a day.
  Manual records are uncapped: admins enter them already day/hour
  correct. The final sum rounds to the nearest half hour, half up.

  An earlier calendar-day decomposition (fullDays*8 + capped leftover)
  was considered and rejected: the per-session cap handles overnight
  sessions more predictably. See the multi-day tests for the behavioral
  difference.
*/
package engine

import "github.com/shopspring/decimal"

// SessionCapHours caps one paid-leave session's contribution at a full
// day regardless of elapsed wall-clock time.
var SessionCapHours = decimal.NewFromInt(8)

var two = decimal.NewFromInt(2)

// ConsumedHours sums consumed paid-leave hours from sessions and
// manual records, rounded to the nearest 0.5 hour (half up). Open
// sessions and non-paid kinds/types contribute nothing.
func ConsumedHours(sessions []AttendanceSession, records []LeaveRecord) decimal.Decimal {
	sum := decimal.Zero

	for _, s := range sessions {
		switch s.Kind {
		case KindPaidLeave:
			if !s.Closed() {
				continue
			}
			hours := decimal.NewFromFloat(s.Duration().Hours())
			if hours.GreaterThan(SessionCapHours) {
				hours = SessionCapHours
			}
			sum = sum.Add(hours)
		case KindWork, KindUnpaidLeave:
			// Not paid leave; nothing consumed.
		default:
			// Unknown kinds are boundary bugs; count nothing.
		}
	}

	for _, r := range records {
		switch r.Type {
		case LeavePaid:
			sum = sum.Add(r.Hours)
		case LeaveUnpaid, LeaveSubstitute, LeaveChildcare, LeaveMaternity,
			LeaveBereavement, LeaveSummer, LeaveCare, LeaveInjury, LeaveOther:
			// Recorded for reporting only; no paid-leave consumption.
		default:
		}
	}

	return RoundToHalfHour(sum)
}

// RoundToHalfHour rounds to the nearest multiple of 0.5, half up.
func RoundToHalfHour(hours decimal.Decimal) decimal.Decimal {
	return hours.Mul(two).Round(0).Div(two)
}
