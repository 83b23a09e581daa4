/*
timebucket.go - Worked / overtime / night-work classification

PURPOSE:
  Turns one raw check-in/check-out interval into minute buckets:
  worked minutes (after the statutory break deduction), overtime
  minutes, night-work minutes, and the separate overtime session flag.

TWO OVERTIME THRESHOLDS:
  The overtime QUANTITY starts after OvertimeAfterMinutes of adjusted
  work (8h after the break deduction). The overtime FLAG on a session
  trips when the raw duration exceeds OvertimeFlagAfterMinutes (9h,
  i.e. 8h work + 1h break). These are distinct, independently-tunable
  constants; different reports use different ones.

NIGHT WORK:
  Minutes whose wall-clock hour falls in [22:00, 05:00). Computed in
  closed form against the wraparound night window; equivalent to
  sampling the interval minute-by-minute from the check-in instant.
*/
package engine

import (
	"math"
	"time"
)

// =============================================================================
// CONFIGURATION
// =============================================================================

// ClassifierConfig holds the classification thresholds, all in
// minutes. Every threshold is independently tunable.
type ClassifierConfig struct {
	// BreakAfterMinutes: sessions longer than this (raw) get the break
	// deduction applied.
	BreakAfterMinutes int

	// BreakMinutes: size of the deducted break.
	BreakMinutes int

	// OvertimeAfterMinutes: adjusted minutes beyond this count as
	// overtime quantity.
	OvertimeAfterMinutes int

	// OvertimeFlagAfterMinutes: raw minutes beyond this flag the whole
	// session as overtime. Distinct from the quantity threshold.
	OvertimeFlagAfterMinutes int

	// Night window [NightStartHour, NightEndHour) in wall-clock hours,
	// wrapping around midnight.
	NightStartHour int
	NightEndHour   int
}

// DefaultClassifierConfig returns the statutory defaults: 1h break
// after 6h, overtime after 8h adjusted, overtime flag after 9h raw,
// night window 22:00-05:00.
func DefaultClassifierConfig() ClassifierConfig {
	return ClassifierConfig{
		BreakAfterMinutes:        360,
		BreakMinutes:             60,
		OvertimeAfterMinutes:     480,
		OvertimeFlagAfterMinutes: 540,
		NightStartHour:           22,
		NightEndHour:             5,
	}
}

// =============================================================================
// TIME BUCKETS
// =============================================================================

// TimeBuckets is the classification of one completed session.
type TimeBuckets struct {
	RawMinutes      int // rounded wall-clock duration
	BreakDeduction  int
	WorkedMinutes   int // raw minus break deduction
	OvertimeMinutes int
	NightMinutes    int
	IsOvertime      bool // session flag, from the raw duration
}

// =============================================================================
// CLASSIFIER
// =============================================================================

// TimeBucketClassifier classifies intervals. Pure and stateless; safe
// for concurrent use.
type TimeBucketClassifier struct {
	Config ClassifierConfig
}

// NewTimeBucketClassifier returns a classifier with the statutory
// default thresholds.
func NewTimeBucketClassifier() *TimeBucketClassifier {
	return &TimeBucketClassifier{Config: DefaultClassifierConfig()}
}

// Classify computes the time buckets for [checkIn, checkOut].
// Returns InvalidIntervalError when checkOut precedes checkIn; this is
// the classifier's only failure path.
func (c *TimeBucketClassifier) Classify(checkIn, checkOut time.Time) (TimeBuckets, error) {
	if checkOut.Before(checkIn) {
		return TimeBuckets{}, &InvalidIntervalError{CheckIn: checkIn, CheckOut: checkOut}
	}

	cfg := c.Config
	raw := int(math.Round(checkOut.Sub(checkIn).Minutes()))

	deduction := 0
	if raw > cfg.BreakAfterMinutes {
		deduction = cfg.BreakMinutes
	}
	adjusted := raw - deduction

	overtime := adjusted - cfg.OvertimeAfterMinutes
	if overtime < 0 {
		overtime = 0
	}

	return TimeBuckets{
		RawMinutes:      raw,
		BreakDeduction:  deduction,
		WorkedMinutes:   adjusted,
		OvertimeMinutes: overtime,
		NightMinutes:    c.nightMinutes(checkIn, checkOut),
		IsOvertime:      raw > cfg.OvertimeFlagAfterMinutes,
	}, nil
}

// nightMinutes counts whole minutes in [checkIn, checkOut) whose
// wall-clock hour falls in the wraparound night window. The sample
// points are checkIn + k minutes for k = 0, 1, ...; adding whole
// minutes never shifts the second-of-minute, so the hour of sample k
// is fully determined by (minuteOfDay(checkIn) + k) mod 1440. That
// reduces the count to interval intersection on a 1440-minute cycle.
func (c *TimeBucketClassifier) nightMinutes(checkIn, checkOut time.Time) int {
	d := checkOut.Sub(checkIn)
	if d <= 0 {
		return 0
	}
	// Number of sample minutes strictly before checkOut.
	samples := int((d + time.Minute - 1) / time.Minute)

	start := c.Config.NightStartHour * 60
	end := c.Config.NightEndHour * 60
	perCycle := (1440 - start) + end

	// Cumulative night minutes in [0, x) of one day, x in [0, 1440].
	cum := func(x int) int {
		n := 0
		if x < end {
			return x
		}
		n += end
		if x > start {
			n += x - start
		}
		return n
	}

	phase := MinuteOfDay(checkIn)
	full := samples / 1440
	rest := samples % 1440

	n := full * perCycle
	hi := phase + rest
	if hi <= 1440 {
		n += cum(hi) - cum(phase)
	} else {
		n += cum(1440) - cum(phase) + cum(hi-1440)
	}
	return n
}
