package preferenceerrors

import (
	"net/http"

	"go-shiftplan/internal/shared/apperror"
)

var (
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
	ErrPreferencesNotFound = apperror.New(
		apperror.CodeNotFound,
		"no preferences recorded for this employee",
		http.StatusNotFound,
	)
)
