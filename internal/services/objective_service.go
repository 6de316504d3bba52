package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "ledger/internal/errors"
	"ledger/internal/events"
	"ledger/internal/logger"
	"ledger/internal/models"
	"ledger/internal/month"
	"ledger/internal/pagination"
	"ledger/internal/store"
	"ledger/internal/uuid"
)

// objectiveService is the objective manager. It keeps each objective's month
// plans and the budget rows they generate in one-to-one correspondence.
type objectiveService struct {
	store     *store.Store
	publisher events.Publisher
}

// NewObjectiveService creates a new ObjectiveServicer.
func NewObjectiveService(st *store.Store, publisher events.Publisher) ObjectiveServicer {
	return &objectiveService{store: st, publisher: publisher}
}

// CreateObjective resolves the category, checks the plan months for budgets
// the objective would overwrite and writes the objective, its plans and the
// generated budgets together. Without force any conflict aborts the whole
// operation; with force the conflicting rows are replaced.
func (s *objectiveService) CreateObjective(
	ctx context.Context,
	userID string,
	input CreateObjectiveInput,
	force bool,
) (*models.Objective, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "objective name is required")
	}
	plans, err := normalizePlans(input.Plans)
	if err != nil {
		return nil, err
	}

	var created *models.Objective

	err = s.store.Transaction(ctx, func(tx *gorm.DB) error {
		categoryID, err := resolveCategory(tx, userID, name, input.CategoryID)
		if err != nil {
			return err
		}

		objective := &models.Objective{
			UserID:      userID,
			Name:        name,
			CategoryID:  categoryID,
			Currency:    input.Currency,
			TotalAmount: input.TotalAmount,
			Status:      models.ObjectiveStatusActive,
		}
		objective.ID = uuid.New()

		if err := clearConflicts(tx, objective, monthsOf(plans), force); err != nil {
			return err
		}
		if err := tx.Omit(clause.Associations).Create(objective).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := writePlan(tx, objective, plans); err != nil {
			return err
		}

		created, err = loadObjective(tx, userID, objective.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Infow("objective created",
		"objective_id", created.ID, "category_id", created.CategoryID, "plans", len(created.Plans), "force", force)

	e := events.New(events.TypeObjectiveCreated, userID)
	e.ObjectiveID, e.CategoryID, e.Count = created.ID, created.CategoryID, int64(len(created.Plans))
	publish(ctx, s.publisher, e)

	return created, nil
}

// GetUserObjectives returns a page of the user's objectives, newest first,
// each with its plans in month order.
func (s *objectiveService) GetUserObjectives(
	ctx context.Context,
	userID string,
	status *models.ObjectiveStatus,
	page pagination.PageRequest,
) (*pagination.PageResponse[models.Objective], error) {
	if status != nil && !status.Valid() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "status must be one of ACTIVE, COMPLETED, ARCHIVED")
	}

	db := s.store.DB(ctx)
	base := db.Model(&models.Objective{}).Scopes(store.OwnedBy(userID))
	if status != nil {
		base = base.Where("status = ?", *status)
	}

	result, err := pagination.Query[models.Objective](base, page, "created_at DESC, id DESC")
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if err := attachPlans(db, result.Data); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return result, nil
}

// GetObjectiveByID returns one objective with its plans.
func (s *objectiveService) GetObjectiveByID(ctx context.Context, userID, objectiveID string) (*models.Objective, error) {
	return loadObjective(s.store.DB(ctx), userID, objectiveID)
}

// UpdateObjective applies the present fields. A new plan list replaces the
// old one completely; a category or name change rebuilds the generated
// budgets from the current plans. Conflict handling matches CreateObjective,
// with the objective's own rows never counted as conflicts. Setting status
// ARCHIVED drops the generated budgets the way ArchiveObjective does, and an
// archived objective rejects every further update.
func (s *objectiveService) UpdateObjective(
	ctx context.Context,
	userID, objectiveID string,
	input UpdateObjectiveInput,
	force bool,
) (*models.Objective, error) {
	if input.Status != nil && !input.Status.Valid() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "status must be one of ACTIVE, COMPLETED, ARCHIVED")
	}
	if input.Name != nil && strings.TrimSpace(*input.Name) == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "objective name must not be empty")
	}

	var newPlans []models.ObjectiveMonthPlan
	if input.Plans != nil {
		var err error
		if newPlans, err = normalizePlans(*input.Plans); err != nil {
			return nil, err
		}
	}

	var updated *models.Objective
	archiving := input.Status != nil && *input.Status == models.ObjectiveStatusArchived

	err := s.store.Transaction(ctx, func(tx *gorm.DB) error {
		objective, err := loadObjective(tx, userID, objectiveID)
		if err != nil {
			return err
		}
		if objective.Status == models.ObjectiveStatusArchived {
			return apperrors.ErrObjectiveArchived
		}

		updates := make(map[string]interface{})
		rebuild := input.Plans != nil

		if input.Name != nil {
			if name := strings.TrimSpace(*input.Name); name != objective.Name {
				objective.Name = name
				updates["name"] = name
				rebuild = true
				if input.CategoryID == nil {
					categoryID, err := resolveCategory(tx, userID, name, nil)
					if err != nil {
						return err
					}
					if categoryID != objective.CategoryID {
						objective.CategoryID = categoryID
						updates["category_id"] = categoryID
					}
				}
			}
		}
		if input.CategoryID != nil && *input.CategoryID != objective.CategoryID {
			if err := requireCategory(tx, userID, *input.CategoryID); err != nil {
				return err
			}
			objective.CategoryID = *input.CategoryID
			updates["category_id"] = *input.CategoryID
			rebuild = true
		}
		if input.Currency != nil {
			objective.Currency = input.Currency
			updates["currency"] = *input.Currency
		}
		if input.TotalAmount != nil {
			objective.TotalAmount = input.TotalAmount
			updates["total_amount"] = *input.TotalAmount
		}
		if input.Status != nil {
			objective.Status = *input.Status
			updates["status"] = *input.Status
		}
		if archiving {
			// Archiving drops the generated budgets, so nothing can conflict.
			rebuild = true
		}

		plans := objective.Plans
		if input.Plans != nil {
			plans = newPlans
		}

		if rebuild && !archiving {
			if err := clearConflicts(tx, objective, monthsOf(plans), force); err != nil {
				return err
			}
		}

		if len(updates) > 0 {
			if err := tx.Model(&models.Objective{}).Where("id = ?", objective.ID).
				Updates(updates).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
		}

		if rebuild {
			if err := writePlan(tx, objective, plans); err != nil {
				return err
			}
		} else if input.Currency != nil {
			// Generated rows mirror the objective currency.
			if err := tx.Model(&models.Budget{}).Scopes(store.OwnedBy(userID)).
				Where("objective_id = ?", objective.ID).
				Update("currency", *input.Currency).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
		}

		updated, err = loadObjective(tx, userID, objective.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	eventType := events.TypeObjectiveUpdated
	if archiving {
		eventType = events.TypeObjectiveArchived
	}
	e := events.New(eventType, userID)
	e.ObjectiveID, e.CategoryID, e.Count = updated.ID, updated.CategoryID, int64(len(updated.Plans))
	publish(ctx, s.publisher, e)

	return updated, nil
}

// CompleteObjective marks the objective COMPLETED. Its budgets stay as they are.
// Archived objectives cannot be completed.
func (s *objectiveService) CompleteObjective(ctx context.Context, userID, objectiveID string) (*models.Objective, error) {
	var completed *models.Objective

	err := s.store.Transaction(ctx, func(tx *gorm.DB) error {
		objective, err := loadObjective(tx, userID, objectiveID)
		if err != nil {
			return err
		}
		if objective.Status == models.ObjectiveStatusArchived {
			return apperrors.ErrObjectiveArchived
		}
		if err := tx.Model(&models.Objective{}).Where("id = ?", objective.ID).
			Update("status", models.ObjectiveStatusCompleted).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		completed, err = loadObjective(tx, userID, objective.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	e := events.New(events.TypeObjectiveCompleted, userID)
	e.ObjectiveID, e.CategoryID = completed.ID, completed.CategoryID
	publish(ctx, s.publisher, e)

	return completed, nil
}

// ArchiveObjective deletes the budgets the objective generated and marks it
// ARCHIVED. The objective and its plans remain.
func (s *objectiveService) ArchiveObjective(ctx context.Context, userID, objectiveID string) (*models.Objective, error) {
	var archived *models.Objective
	var removed int64

	err := s.store.Transaction(ctx, func(tx *gorm.DB) error {
		objective, err := loadObjective(tx, userID, objectiveID)
		if err != nil {
			return err
		}

		res := tx.Scopes(store.OwnedBy(userID)).Where("objective_id = ?", objective.ID).Delete(&models.Budget{})
		if res.Error != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
		}
		removed = res.RowsAffected

		if err := tx.Model(&models.Objective{}).Where("id = ?", objective.ID).
			Update("status", models.ObjectiveStatusArchived).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		archived, err = loadObjective(tx, userID, objective.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	e := events.New(events.TypeObjectiveArchived, userID)
	e.ObjectiveID, e.CategoryID, e.Count = archived.ID, archived.CategoryID, removed
	publish(ctx, s.publisher, e)

	return archived, nil
}

// normalizePlans validates client plan entries and returns them as plan rows
// in month order with amounts stored as magnitudes.
func normalizePlans(in []PlanInput) ([]models.ObjectiveMonthPlan, error) {
	plans := make([]models.ObjectiveMonthPlan, 0, len(in))
	seen := make(map[string]bool, len(in))

	for i, p := range in {
		if !month.Valid(p.Month) {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, fmt.Sprintf("plans[%d].month must be in YYYY-MM format", i))
		}
		if p.Amount == nil {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, fmt.Sprintf("plans[%d].amount is required", i))
		}
		kind := p.Kind
		if kind == "" {
			kind = models.PlanKindSpend
		}
		if !kind.Valid() {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, fmt.Sprintf("plans[%d].kind must be SPEND or SAVE", i))
		}
		if seen[p.Month] {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, fmt.Sprintf("plans[%d].month %s appears more than once", i, p.Month))
		}
		seen[p.Month] = true

		amount := *p.Amount
		if amount < 0 {
			amount = -amount
		}
		plans = append(plans, models.ObjectiveMonthPlan{
			Month:       p.Month,
			Amount:      amount,
			Kind:        kind,
			IsLastMonth: p.IsLastMonth,
		})
	}

	sort.Slice(plans, func(i, j int) bool { return plans[i].Month < plans[j].Month })
	return plans, nil
}

func monthsOf(plans []models.ObjectiveMonthPlan) []string {
	months := make([]string, len(plans))
	for i, p := range plans {
		months[i] = p.Month
	}
	return months
}

// resolveCategory returns explicitID when it is one of the user's
// categories. Without one it reuses the category whose trimmed name matches
// name ignoring case, creating it when none does.
func resolveCategory(tx *gorm.DB, userID, name string, explicitID *string) (string, error) {
	if explicitID != nil && *explicitID != "" {
		if err := requireCategory(tx, userID, *explicitID); err != nil {
			return "", err
		}
		return *explicitID, nil
	}

	name = strings.TrimSpace(name)
	existing, found, err := store.Find[models.Category](tx, userID, "LOWER(TRIM(name)) = ?", strings.ToLower(name))
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if found {
		return existing.ID, nil
	}

	category := &models.Category{
		UserID: userID,
		Name:   name,
		Icon:   models.DefaultCategoryIcon,
		Color:  models.DefaultCategoryColor,
	}
	if err := tx.Create(category).Error; err != nil {
		return "", apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return category.ID, nil
}

// clearConflicts finds the budgets at (objective category, months) that the
// objective does not own. Without force they are reported and nothing is
// changed; with force they are deleted.
func clearConflicts(tx *gorm.DB, objective *models.Objective, months []string, force bool) error {
	if len(months) == 0 {
		return nil
	}

	conflicting := func() *gorm.DB {
		return tx.Scopes(store.OwnedBy(objective.UserID)).
			Where("category_id = ? AND month IN ?", objective.CategoryID, months).
			Where("(objective_id IS NULL OR objective_id <> ?)", objective.ID)
	}

	var rows []models.Budget
	if err := conflicting().Order("month ASC").Find(&rows).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if len(rows) == 0 {
		return nil
	}

	if !force {
		conflicts := make([]apperrors.BudgetConflict, len(rows))
		for i, b := range rows {
			conflicts[i] = apperrors.BudgetConflict{Month: b.Month, CategoryID: b.CategoryID}
		}
		return apperrors.NewBudgetConflict(conflicts)
	}

	if err := conflicting().Delete(&models.Budget{}).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// writePlan replaces every plan row and generated budget of objective with
// ones built from plans. Conflicts must already be cleared.
func writePlan(tx *gorm.DB, objective *models.Objective, plans []models.ObjectiveMonthPlan) error {
	if err := tx.Where("objective_id = ?", objective.ID).Delete(&models.ObjectiveMonthPlan{}).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if err := tx.Scopes(store.OwnedBy(objective.UserID)).
		Where("objective_id = ?", objective.ID).
		Delete(&models.Budget{}).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if len(plans) == 0 {
		return nil
	}

	rows := make([]models.ObjectiveMonthPlan, len(plans))
	budgets := make([]models.Budget, len(plans))
	for i, p := range plans {
		p.ObjectiveID = objective.ID
		p.CreatedAt, p.UpdatedAt = time.Time{}, time.Time{}
		rows[i] = p
		budgets[i] = objective.BudgetFor(p)
	}

	if err := tx.Create(&rows).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	// An archived objective keeps its plans but never generates budgets.
	if objective.Status == models.ObjectiveStatusArchived {
		return nil
	}
	if err := tx.Create(&budgets).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// loadObjective fetches one of userID's objectives with its plans.
func loadObjective(tx *gorm.DB, userID, objectiveID string) (*models.Objective, error) {
	if !uuid.IsValid(objectiveID) {
		return nil, apperrors.ErrObjectiveNotFound
	}
	objective, found, err := store.Find[models.Objective](tx, userID, "id = ?", objectiveID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if !found {
		return nil, apperrors.ErrObjectiveNotFound
	}

	objectives := []models.Objective{*objective}
	if err := attachPlans(tx, objectives); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &objectives[0], nil
}

// attachPlans loads the plans of every objective in one query.
func attachPlans(tx *gorm.DB, objectives []models.Objective) error {
	if len(objectives) == 0 {
		return nil
	}

	ids := make([]string, len(objectives))
	for i, o := range objectives {
		ids[i] = o.ID
	}

	var plans []models.ObjectiveMonthPlan
	if err := tx.Where("objective_id IN ?", ids).Order("month ASC").Find(&plans).Error; err != nil {
		return err
	}

	byObjective := make(map[string][]models.ObjectiveMonthPlan, len(objectives))
	for _, p := range plans {
		byObjective[p.ObjectiveID] = append(byObjective[p.ObjectiveID], p)
	}
	for i := range objectives {
		objectives[i].Plans = byObjective[objectives[i].ID]
		if objectives[i].Plans == nil {
			objectives[i].Plans = []models.ObjectiveMonthPlan{}
		}
	}
	return nil
}
