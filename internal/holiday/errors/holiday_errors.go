package holidayerrors

import (
	"net/http"

	"leavehub/internal/shared/apperror"
)

var (
	ErrHolidayAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"holiday already exists for this date",
		http.StatusConflict,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
)
