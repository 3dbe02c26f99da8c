package leaveerrors

import (
	"fmt"
	"net/http"
	"strings"

	"leavehub/internal/shared/apperror"
)

var (
	ErrNoManagerAssigned = apperror.New(
		apperror.CodeInvalidInput,
		"employee does not have an assigned manager",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"start_date must be before or equal end_date",
		http.StatusBadRequest,
	)
	ErrPastStartDate = apperror.New(
		apperror.CodeInvalidInput,
		"cannot request leave for past dates",
		http.StatusBadRequest,
	)
	ErrNoBusinessDays = apperror.New(
		apperror.CodeInvalidInput,
		"no business days in the requested date range",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	// Returned for a request that is missing, not owned by the deciding
	// manager, or no longer pending. The three cases are indistinguishable on
	// purpose so callers cannot probe for other managers' requests.
	ErrRequestNotFound = apperror.New(
		apperror.CodeNotFound,
		"leave request not found or not pending",
		http.StatusNotFound,
	)
	// A pending request whose balance row has vanished is a data-integrity
	// fault, not a policy outcome.
	ErrBalanceMissingOnApproval = apperror.New(
		apperror.CodeInvalidState,
		"employee leave balance not found",
		http.StatusBadRequest,
	)
)

// HolidayOverlap builds the conflict error enumerating every corporate
// holiday inside the requested range.
func HolidayOverlap(dates []string) *apperror.AppError {
	return apperror.New(
		apperror.CodeConflict,
		fmt.Sprintf("leave request overlaps with corporate holidays: %s", strings.Join(dates, ", ")),
		http.StatusUnprocessableEntity,
	)
}

// InsufficientBalance reports how short the balance is at submission time.
func InsufficientBalance(available, requested int) *apperror.AppError {
	return apperror.New(
		apperror.CodeInsufficientBalance,
		fmt.Sprintf("insufficient leave balance: available %d days, requested %d days", available, requested),
		http.StatusBadRequest,
	)
}
