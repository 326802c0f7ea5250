package employeeerrors

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
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidContractPeriod = apperror.New(
		apperror.CodeInvalidInput,
		"contract_end must be on or after contract_start",
		http.StatusBadRequest,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"employee not found",
		http.StatusNotFound,
	)
	ErrEmployeeAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"employee already exists",
		http.StatusConflict,
	)
)
