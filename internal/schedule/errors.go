package schedule

import (
	"fmt"
	"time"
)

// Structural errors. They always reject the operation locally, are never
// retried, and are surfaced to the caller as typed values, never panics.

// OverlapError reports two worked segments on the same day whose time
// ranges intersect.
type OverlapError struct {
	Day      int
	FirstID  string
	SecondID string
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf("shift %s overlaps shift %s on day %d", e.FirstID, e.SecondID, e.Day)
}

// MaxShiftsExceededError reports more worked segments on one day than the
// hard per-day limit allows.
type MaxShiftsExceededError struct {
	Day   int
	Count int
}

func (e *MaxShiftsExceededError) Error() string {
	return fmt.Sprintf("day %d has %d worked segments, maximum is %d", e.Day, e.Count, MaxWorkedSegmentsPerDay)
}

// OutOfContractPeriodError reports a shift dated outside the employment
// window.
type OutOfContractPeriodError struct {
	Date          time.Time
	ContractStart time.Time
	ContractEnd   *time.Time
}

func (e *OutOfContractPeriodError) Error() string {
	end := "open-ended"
	if e.ContractEnd != nil {
		end = e.ContractEnd.Format("2006-01-02")
	}
	return fmt.Sprintf("date %s is outside contract period [%s, %s]",
		e.Date.Format("2006-01-02"), e.ContractStart.Format("2006-01-02"), end)
}

// UnknownEmployeeError reports a mutation targeting an employee that could
// not be resolved.
type UnknownEmployeeError struct {
	EmployeeID string
}

func (e *UnknownEmployeeError) Error() string {
	return fmt.Sprintf("unknown employee %s", e.EmployeeID)
}

// ShiftNotFoundError reports a delete or update of a shift id absent from
// the day's records.
type ShiftNotFoundError struct {
	ShiftID string
}

func (e *ShiftNotFoundError) Error() string {
	return fmt.Sprintf("shift %s not found", e.ShiftID)
}

// InvalidMutationError reports a create/update carrying no record.
type InvalidMutationError struct {
	Op MutationOp
}

func (e *InvalidMutationError) Error() string {
	return fmt.Sprintf("%s mutation carries no shift record", e.Op)
}

// InvalidDayError reports a day index outside the 0..6 week range.
type InvalidDayError struct {
	Day int
}

func (e *InvalidDayError) Error() string {
	return fmt.Sprintf("day index %d out of range 0..6", e.Day)
}
