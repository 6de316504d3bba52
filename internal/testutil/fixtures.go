package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"ledger/internal/models"
	"ledger/internal/uuid"

	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// NewUserID returns an opaque user id as the auth layer would supply it.
func NewUserID() string {
	return fmt.Sprintf("user-%d", nextID())
}

// StrPtr returns a pointer to s.
func StrPtr(s string) *string { return &s }

// BoolPtr returns a pointer to b.
func BoolPtr(b bool) *bool { return &b }

// Int64Ptr returns a pointer to n.
func Int64Ptr(n int64) *int64 { return &n }

// CreateTestCategory creates a category with a unique name.
func CreateTestCategory(t *testing.T, db *gorm.DB, userID string) *models.Category {
	t.Helper()
	return CreateTestCategoryWithName(t, db, userID, fmt.Sprintf("Test Category %d", nextID()))
}

// CreateTestCategoryWithName creates a category with the given name.
func CreateTestCategoryWithName(t *testing.T, db *gorm.DB, userID, name string) *models.Category {
	t.Helper()

	category := &models.Category{
		UserID: userID,
		Name:   name,
		Icon:   "tag",
		Color:  "#ff0000",
	}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}
	return category
}

// BudgetOption customizes a fixture budget.
type BudgetOption func(*models.Budget)

// WithCarryForward sets the carry-forward flag.
func WithCarryForward(enabled bool) BudgetOption {
	return func(b *models.Budget) { b.CarryForwardEnabled = enabled }
}

// WithTerminal sets the terminal flag.
func WithTerminal(terminal bool) BudgetOption {
	return func(b *models.Budget) { b.IsTerminal = terminal }
}

// WithObjective marks the budget as owned by objectiveID.
func WithObjective(objectiveID string) BudgetOption {
	return func(b *models.Budget) { b.ObjectiveID = &objectiveID }
}

// CreateTestBudget creates an explicit manual budget row. Defaults match a
// freshly upserted budget: carry-forward on, not terminal.
func CreateTestBudget(t *testing.T, db *gorm.DB, userID, month, categoryID string, limit int64, opts ...BudgetOption) *models.Budget {
	t.Helper()

	budget := &models.Budget{
		UserID:              userID,
		Month:               month,
		CategoryID:          categoryID,
		Limit:               limit,
		CarryForwardEnabled: true,
	}
	for _, opt := range opts {
		opt(budget)
	}
	if err := db.Create(budget).Error; err != nil {
		t.Fatalf("failed to create test budget: %v", err)
	}
	return budget
}

// CreateTestObjective inserts a bare ACTIVE objective row without plans.
func CreateTestObjective(t *testing.T, db *gorm.DB, userID, categoryID, name string) *models.Objective {
	t.Helper()

	objective := &models.Objective{
		UserID:     userID,
		Name:       name,
		CategoryID: categoryID,
		Status:     models.ObjectiveStatusActive,
	}
	if err := db.Create(objective).Error; err != nil {
		t.Fatalf("failed to create test objective: %v", err)
	}
	return objective
}

// SignToken issues an HS256 access token for userID, standing in for the
// external auth service in router tests.
func SignToken(t *testing.T, secret, userID string) string {
	t.Helper()

	claims := jwt.RegisteredClaims{
		Subject:   userID,
		ID:        uuid.New(),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(15 * time.Minute)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return token
}
