package shifterrors

import (
	"net/http"

	"go-shiftplan/internal/shared/apperror"
)

var (
	ErrInvalidRestaurantID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid restaurant id",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
	ErrInvalidShiftID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid shift id",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrWeekStartNotMonday = apperror.New(
		apperror.CodeInvalidInput,
		"week_start must be a Monday",
		http.StatusBadRequest,
	)
	ErrInvalidClockFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid time, expected HH:MM in 24h format",
		http.StatusBadRequest,
	)
	ErrInvalidStatusCode = apperror.New(
		apperror.CodeInvalidInput,
		"unknown day status code",
		http.StatusBadRequest,
	)
	ErrInvalidShiftShape = apperror.New(
		apperror.CodeInvalidInput,
		"a shift carries either a day status or a start/end time range",
		http.StatusBadRequest,
	)
	ErrShiftNotFound = apperror.New(
		apperror.CodeNotFound,
		"shift not found",
		http.StatusNotFound,
	)
	ErrUnknownEmployee = apperror.New(
		apperror.CodeNotFound,
		"employee not found",
		http.StatusNotFound,
	)
	ErrOutOfContractPeriod = apperror.New(
		apperror.CodeOutOfContract,
		"shift date is outside the employee's contract period",
		http.StatusBadRequest,
	)
	ErrShiftOverlap = apperror.New(
		apperror.CodeShiftOverlap,
		"shift overlaps another shift on the same day",
		http.StatusConflict,
	)
	ErrMaxShiftsExceeded = apperror.New(
		apperror.CodeMaxShifts,
		"an employee can have at most two worked shifts per day",
		http.StatusConflict,
	)
	ErrWeekVersionConflict = apperror.New(
		apperror.CodeConflict,
		"the week schedule changed concurrently, retry the mutation",
		http.StatusConflict,
	)
)
