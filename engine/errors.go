/*
errors.go - Centralized error types for the accounting engine

PURPOSE:
  All engine error types in one place. The error surface of the core is
  deliberately tiny, two conditions; everything else is rejected at the
  repository/API boundary before it reaches this package.

ERROR CATEGORIES:
  1. InvalidInterval - a check-out preceding its check-in. Never
     silently clamped.
  2. NoApplicableSchedule - lateness cannot be evaluated because the
     employee has neither a default start time nor a resolvable shift
     code. Callers must treat this as "lateness unknown", which is NOT
     the same as "on time".

A missing join date is NOT an error: entitlement computations return a
zero result, matching the tolerance for legacy records.

USAGE:
  if errors.Is(err, engine.ErrNoApplicableSchedule) {
      // render "lateness unknown", keep processing other employees
  }
*/
package engine

import (
	"errors"
	"fmt"
	"time"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrInvalidInterval is returned when a check-out precedes its
	// check-in. The classifier never clamps such intervals.
	ErrInvalidInterval = errors.New("invalid interval: check-out before check-in")

	// ErrNoApplicableSchedule is returned when lateness cannot be
	// evaluated for a session.
	ErrNoApplicableSchedule = errors.New("no applicable schedule")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// InvalidIntervalError reports the offending endpoints.
type InvalidIntervalError struct {
	CheckIn  time.Time
	CheckOut time.Time
}

func (e *InvalidIntervalError) Error() string {
	return fmt.Sprintf("invalid interval: check-out %s before check-in %s",
		e.CheckOut.Format(time.RFC3339), e.CheckIn.Format(time.RFC3339))
}

func (e *InvalidIntervalError) Unwrap() error { return ErrInvalidInterval }

// NoScheduleError identifies whose schedule could not be resolved and
// for which day.
type NoScheduleError struct {
	EmployeeID EmployeeID
	Date       Date
}

func (e *NoScheduleError) Error() string {
	return fmt.Sprintf("no applicable schedule for employee %s on %s", e.EmployeeID, e.Date)
}

func (e *NoScheduleError) Unwrap() error { return ErrNoApplicableSchedule }

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsScheduleUnknown reports whether err means lateness could not be
// determined (as opposed to a hard failure).
func IsScheduleUnknown(err error) bool {
	return errors.Is(err, ErrNoApplicableSchedule)
}

// IsClientError reports whether the error is due to invalid input
// rather than an internal failure.
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidInterval) ||
		errors.Is(err, ErrNoApplicableSchedule)
}
