package services

import (
	"context"

	"ledger/internal/models"
	"ledger/internal/pagination"
)

// CategoryServicer defines the contract for category-related business logic.
type CategoryServicer interface {
	CreateCategory(ctx context.Context, userID string, input CategoryInput) (*models.Category, error)
	GetUserCategories(ctx context.Context, userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Category], error)
	GetCategoryByID(ctx context.Context, userID, categoryID string) (*models.Category, error)
	UpdateCategory(ctx context.Context, userID, categoryID string, input CategoryInput) (*models.Category, error)
	DeleteCategory(ctx context.Context, userID, categoryID string) error
}

// CategoryInput carries category fields. Empty strings leave a field unchanged
// on update.
type CategoryInput struct {
	Name  string
	Group *string
	Icon  string
	Color string
}

// BudgetInput is a partial budget write. Nil fields are left untouched on an
// existing row and take their defaults on a new one.
type BudgetInput struct {
	Limit                    *int64
	Currency                 *string
	Rollover                 *bool
	RolloverTargetCategoryID *string
	CopiedFromMonth          *string
	Purpose                  *string
	CarryForwardEnabled      *bool
	IsTerminal               *bool
}

// DeleteScope selects which explicit rows of a category a scoped delete removes.
type DeleteScope string

const (
	DeleteScopeThisMonth DeleteScope = "this_month"
	DeleteScopeFromMonth DeleteScope = "from_month"
	DeleteScopeAll       DeleteScope = "all"
)

// BudgetServicer defines the contract for the budget ledger.
type BudgetServicer interface {
	ListEffective(ctx context.Context, userID string, month *string) ([]models.Budget, error)
	Upsert(ctx context.Context, userID, month, categoryID string, input BudgetInput, applyFuture bool) (*models.Budget, error)
	DeleteBudget(ctx context.Context, userID, month, categoryID string) error
	DeleteScoped(ctx context.Context, userID, categoryID string, scope DeleteScope, month *string) (int64, error)
	CopyMonth(ctx context.Context, userID, sourceMonth, targetMonth string) ([]models.Budget, error)
}

// PlanInput is one month of an objective plan as submitted by a client.
type PlanInput struct {
	Month       string
	Amount      *int64
	Kind        models.PlanKind
	IsLastMonth bool
}

// CreateObjectiveInput carries the fields of a new objective.
type CreateObjectiveInput struct {
	Name        string
	CategoryID  *string
	Currency    *string
	TotalAmount *int64
	Plans       []PlanInput
}

// UpdateObjectiveInput is a partial objective update. A non-nil Plans
// replaces the whole plan.
type UpdateObjectiveInput struct {
	Name        *string
	CategoryID  *string
	Currency    *string
	TotalAmount *int64
	Status      *models.ObjectiveStatus
	Plans       *[]PlanInput
}

// ObjectiveServicer defines the contract for the objective manager.
type ObjectiveServicer interface {
	CreateObjective(ctx context.Context, userID string, input CreateObjectiveInput, force bool) (*models.Objective, error)
	GetUserObjectives(ctx context.Context, userID string, status *models.ObjectiveStatus, page pagination.PageRequest) (*pagination.PageResponse[models.Objective], error)
	GetObjectiveByID(ctx context.Context, userID, objectiveID string) (*models.Objective, error)
	UpdateObjective(ctx context.Context, userID, objectiveID string, input UpdateObjectiveInput, force bool) (*models.Objective, error)
	CompleteObjective(ctx context.Context, userID, objectiveID string) (*models.Objective, error)
	ArchiveObjective(ctx context.Context, userID, objectiveID string) (*models.Objective, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(ctx context.Context, userID, action, resourceType, resourceID, ipAddress string, changes map[string]interface{})
}
