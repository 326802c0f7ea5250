package shift

import (
	"errors"

	"go-shiftplan/internal/schedule"
	shifterrors "go-shiftplan/internal/shift/errors"

	"gorm.io/gorm"
)

// mapScheduleError translates the compute core's typed structural errors
// into the API error vocabulary. Structural rejections are surfaced
// verbatim as typed results, never retried.
func mapScheduleError(err error) error {
	if err == nil {
		return nil
	}

	var overlapErr *schedule.OverlapError
	if errors.As(err, &overlapErr) {
		return shifterrors.ErrShiftOverlap.WithDetails(map[string]any{
			"day":       overlapErr.Day,
			"first_id":  overlapErr.FirstID,
			"second_id": overlapErr.SecondID,
		})
	}

	var maxErr *schedule.MaxShiftsExceededError
	if errors.As(err, &maxErr) {
		return shifterrors.ErrMaxShiftsExceeded.WithDetails(map[string]any{
			"day":   maxErr.Day,
			"count": maxErr.Count,
		})
	}

	var contractErr *schedule.OutOfContractPeriodError
	if errors.As(err, &contractErr) {
		return shifterrors.ErrOutOfContractPeriod.WithDetails(map[string]any{
			"date": contractErr.Date.Format("2006-01-02"),
		})
	}

	var unknownErr *schedule.UnknownEmployeeError
	if errors.As(err, &unknownErr) {
		return shifterrors.ErrUnknownEmployee
	}

	var notFoundErr *schedule.ShiftNotFoundError
	if errors.As(err, &notFoundErr) {
		return shifterrors.ErrShiftNotFound
	}

	var dayErr *schedule.InvalidDayError
	if errors.As(err, &dayErr) {
		return shifterrors.ErrInvalidShiftShape
	}

	var mutErr *schedule.InvalidMutationError
	if errors.As(err, &mutErr) {
		return shifterrors.ErrInvalidShiftShape
	}

	return err
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return shifterrors.ErrShiftNotFound
	}
	return err
}
