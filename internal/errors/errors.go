// Package errors provides custom error types for the ledger API.
// All service-layer errors should use AppError to ensure consistent,
// secure error responses that never leak internal details to clients.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, optional structured details and
// optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	Details    any    `json:"details,omitempty"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		Details:    sentinel.Details,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// WithDetails creates a new AppError carrying a structured payload that is
// returned to the client alongside the code and message.
func WithDetails(sentinel *AppError, details any) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		Details:    details,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// BudgetConflict identifies a budget row an objective write would overwrite.
type BudgetConflict struct {
	Month      string `json:"month"`
	CategoryID string `json:"category_id"`
}

// ConflictDetails is the Details payload of ErrBudgetConflict.
type ConflictDetails struct {
	Conflicts []BudgetConflict `json:"conflicts"`
}

// NewBudgetConflict builds the conflict error returned when an objective plan
// collides with budgets it does not own.
func NewBudgetConflict(conflicts []BudgetConflict) *AppError {
	return WithDetails(ErrBudgetConflict, ConflictDetails{Conflicts: conflicts})
}

// Authentication & authorization errors.
var (
	ErrUnauthorized = &AppError{Code: "UNAUTHORIZED", Message: "Authentication required", StatusCode: http.StatusUnauthorized}
)

// General errors.
var (
	ErrInvalidInput     = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrInternalServer   = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
	ErrConcurrentUpdate = &AppError{Code: "CONCURRENT_UPDATE", Message: "The request collided with a concurrent update; retry it", StatusCode: http.StatusConflict}
)

// Category errors.
var (
	ErrCategoryNotFound  = &AppError{Code: "CATEGORY_NOT_FOUND", Message: "Category not found", StatusCode: http.StatusNotFound}
	ErrDuplicateCategory = &AppError{Code: "DUPLICATE_CATEGORY", Message: "A category with this name already exists", StatusCode: http.StatusConflict}
)

// Budget errors.
var (
	ErrBudgetNotFound         = &AppError{Code: "BUDGET_NOT_FOUND", Message: "Budget not found", StatusCode: http.StatusNotFound}
	ErrBudgetConflict         = &AppError{Code: "BUDGET_CONFLICT", Message: "Budget conflicts", StatusCode: http.StatusConflict}
	ErrBudgetOwnedByObjective = &AppError{Code: "BUDGET_OWNED_BY_OBJECTIVE", Message: "Budget is managed by an objective; edit the objective plan instead", StatusCode: http.StatusConflict}
)

// Objective errors.
var (
	ErrObjectiveNotFound = &AppError{Code: "OBJECTIVE_NOT_FOUND", Message: "Objective not found", StatusCode: http.StatusNotFound}
	ErrObjectiveArchived = &AppError{Code: "OBJECTIVE_ARCHIVED", Message: "Objective is archived and can no longer change", StatusCode: http.StatusConflict}
)
