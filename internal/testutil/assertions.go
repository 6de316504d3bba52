package testutil

import (
	"errors"
	"testing"

	apperrors "ledger/internal/errors"
)

// AssertAppError checks that err is an *AppError with the expected error code.
func AssertAppError(t *testing.T, err error, expectedCode string) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected AppError with code %q, got nil", expectedCode)
	}

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *AppError, got %T: %v", err, err)
	}

	if appErr.Code != expectedCode {
		t.Errorf("expected error code %q, got %q (message: %s)", expectedCode, appErr.Code, appErr.Message)
	}
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// ConflictsOf extracts the conflict list from a BUDGET_CONFLICT error.
func ConflictsOf(t *testing.T, err error) []apperrors.BudgetConflict {
	t.Helper()

	AssertAppError(t, err, apperrors.ErrBudgetConflict.Code)
	var appErr *apperrors.AppError
	errors.As(err, &appErr)
	details, ok := appErr.Details.(apperrors.ConflictDetails)
	if !ok {
		t.Fatalf("expected ConflictDetails, got %T", appErr.Details)
	}
	return details.Conflicts
}
