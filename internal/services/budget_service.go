package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	apperrors "ledger/internal/errors"
	"ledger/internal/events"
	"ledger/internal/logger"
	"ledger/internal/models"
	"ledger/internal/month"
	"ledger/internal/store"
	"ledger/internal/uuid"
)

// budgetService is the budget ledger: explicit per-month limits plus the
// fallback that makes a limit visible in later months without a row.
type budgetService struct {
	store     *store.Store
	publisher events.Publisher
}

// NewBudgetService creates a new BudgetServicer.
func NewBudgetService(st *store.Store, publisher events.Publisher) BudgetServicer {
	return &budgetService{store: st, publisher: publisher}
}

// ListEffective returns the budgets visible at target. With no target it
// returns every explicit row ordered by month then category.
func (s *budgetService) ListEffective(ctx context.Context, userID string, target *string) ([]models.Budget, error) {
	db := s.store.DB(ctx)

	if target == nil {
		budgets, err := store.List[models.Budget](db, userID, "month ASC, category_id ASC", "")
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return budgets, nil
	}

	if !month.Valid(*target) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "month must be in YYYY-MM format")
	}

	rows, err := store.List[models.Budget](db, userID, "category_id ASC, month DESC", "month <= ?", *target)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return effectiveAt(rows, *target), nil
}

// effectiveAt resolves visibility per category. rows must be sorted by
// category and then by month descending, so the first row seen for a
// category is the nearest one at or before target and alone decides.
func effectiveAt(rows []models.Budget, target string) []models.Budget {
	out := make([]models.Budget, 0, len(rows))
	decided := make(map[string]bool)

	for _, row := range rows {
		if decided[row.CategoryID] {
			continue
		}
		decided[row.CategoryID] = true

		switch {
		case row.Month == target:
			out = append(out, row)
		case row.Propagates():
			// Synthesized for display only; never written back.
			row.Month = target
			out = append(out, row)
		}
	}
	return out
}

// Upsert writes the row at (month, category). A new row takes the input over
// the defaults. An existing row gets the present input fields and, when
// applyFuture is set, pushes its propagated columns onto the later explicit
// rows of the same category that no objective owns.
func (s *budgetService) Upsert(
	ctx context.Context,
	userID, monthKey, categoryID string,
	input BudgetInput,
	applyFuture bool,
) (*models.Budget, error) {
	if !month.Valid(monthKey) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "month must be in YYYY-MM format")
	}
	if err := input.validate(); err != nil {
		return nil, err
	}

	var result *models.Budget
	var propagated int64

	err := s.store.Transaction(ctx, func(tx *gorm.DB) error {
		if err := requireCategory(tx, userID, categoryID); err != nil {
			return err
		}
		if input.RolloverTargetCategoryID != nil {
			err := requireCategory(tx, userID, *input.RolloverTargetCategoryID)
			if errors.Is(err, apperrors.ErrCategoryNotFound) {
				return apperrors.WithMessage(apperrors.ErrCategoryNotFound, "rollover target category not found")
			}
			if err != nil {
				return err
			}
		}

		existing, found, err := store.Find[models.Budget](tx, userID, "month = ? AND category_id = ?", monthKey, categoryID)
		if err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		if !found {
			if input.Limit == nil {
				return apperrors.WithMessage(apperrors.ErrInvalidInput, "limit is required for a new budget")
			}
			budget := models.Budget{
				UserID:              userID,
				Month:               monthKey,
				CategoryID:          categoryID,
				CarryForwardEnabled: true,
			}
			input.applyTo(&budget)
			if err := tx.Create(&budget).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
			result = &budget
			return nil
		}

		if existing.IsObjectiveOwned() {
			return apperrors.ErrBudgetOwnedByObjective
		}

		if updates := input.columns(); len(updates) > 0 {
			if err := tx.Model(&models.Budget{}).Scopes(store.OwnedBy(userID)).
				Where("month = ? AND category_id = ?", monthKey, categoryID).
				Updates(updates).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
		}

		updated, _, err := store.Find[models.Budget](tx, userID, "month = ? AND category_id = ?", monthKey, categoryID)
		if err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		if applyFuture {
			res := tx.Model(&models.Budget{}).Scopes(store.OwnedBy(userID)).
				Where("category_id = ? AND month > ? AND objective_id IS NULL", categoryID, monthKey).
				Updates(updated.PropagatedColumns())
			if res.Error != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
			}
			propagated = res.RowsAffected
		}

		result = updated
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Debugw("budget upserted",
		"month", monthKey, "category_id", categoryID, "propagated", propagated)

	e := events.New(events.TypeBudgetUpserted, userID)
	e.Month, e.CategoryID, e.Count = monthKey, categoryID, propagated
	publish(ctx, s.publisher, e)

	return result, nil
}

// DeleteBudget removes the single explicit row at (month, category).
func (s *budgetService) DeleteBudget(ctx context.Context, userID, monthKey, categoryID string) error {
	res := s.store.DB(ctx).Scopes(store.OwnedBy(userID)).
		Where("month = ? AND category_id = ?", monthKey, categoryID).
		Delete(&models.Budget{})
	if res.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrBudgetNotFound
	}

	e := events.New(events.TypeBudgetDeleted, userID)
	e.Month, e.CategoryID, e.Count = monthKey, categoryID, 1
	publish(ctx, s.publisher, e)
	return nil
}

// DeleteScoped removes the explicit rows of a category selected by scope
// and reports how many went.
func (s *budgetService) DeleteScoped(
	ctx context.Context,
	userID, categoryID string,
	scope DeleteScope,
	monthKey *string,
) (int64, error) {
	if categoryID == "" {
		return 0, apperrors.WithMessage(apperrors.ErrInvalidInput, "category_id is required")
	}

	q := s.store.DB(ctx).Scopes(store.OwnedBy(userID)).Where("category_id = ?", categoryID)

	switch scope {
	case DeleteScopeThisMonth, DeleteScopeFromMonth:
		if monthKey == nil || !month.Valid(*monthKey) {
			return 0, apperrors.WithMessage(apperrors.ErrInvalidInput, "month is required for scope "+string(scope))
		}
		if scope == DeleteScopeThisMonth {
			q = q.Where("month = ?", *monthKey)
		} else {
			q = q.Where("month >= ?", *monthKey)
		}
	case DeleteScopeAll:
	default:
		return 0, apperrors.WithMessage(apperrors.ErrInvalidInput, "scope must be one of this_month, from_month, all")
	}

	res := q.Delete(&models.Budget{})
	if res.Error != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
	}

	e := events.New(events.TypeBudgetDeleted, userID)
	e.CategoryID, e.Count = categoryID, res.RowsAffected
	if monthKey != nil && scope != DeleteScopeAll {
		e.Month = *monthKey
	}
	publish(ctx, s.publisher, e)

	return res.RowsAffected, nil
}

// CopyMonth clones every source-month row into target for categories that
// have no row at target yet, and returns the rows it created.
func (s *budgetService) CopyMonth(ctx context.Context, userID, sourceMonth, targetMonth string) ([]models.Budget, error) {
	if !month.Valid(sourceMonth) || !month.Valid(targetMonth) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "months must be in YYYY-MM format")
	}
	if sourceMonth == targetMonth {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "source and target month must differ")
	}

	created := make([]models.Budget, 0)

	err := s.store.Transaction(ctx, func(tx *gorm.DB) error {
		source, err := store.List[models.Budget](tx, userID, "category_id ASC", "month = ?", sourceMonth)
		if err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		existing, err := store.List[models.Budget](tx, userID, "", "month = ?", targetMonth)
		if err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		taken := make(map[string]bool, len(existing))
		for _, b := range existing {
			taken[b.CategoryID] = true
		}

		for _, b := range source {
			if taken[b.CategoryID] {
				continue
			}
			clone := b.CloneTo(targetMonth)
			if err := tx.Create(&clone).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
			created = append(created, clone)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	e := events.New(events.TypeBudgetsCopied, userID)
	e.Month, e.SourceMonth, e.Count = targetMonth, sourceMonth, int64(len(created))
	publish(ctx, s.publisher, e)

	return created, nil
}

func (in BudgetInput) validate() error {
	if in.Limit != nil && *in.Limit < 0 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "limit must not be negative")
	}
	if in.CopiedFromMonth != nil && !month.Valid(*in.CopiedFromMonth) {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "copied_from_month must be in YYYY-MM format")
	}
	return nil
}

// applyTo sets every present field on b.
func (in BudgetInput) applyTo(b *models.Budget) {
	if in.Limit != nil {
		b.Limit = *in.Limit
	}
	if in.Currency != nil {
		b.Currency = in.Currency
	}
	if in.Rollover != nil {
		b.Rollover = *in.Rollover
	}
	if in.RolloverTargetCategoryID != nil {
		b.RolloverTargetCategoryID = in.RolloverTargetCategoryID
	}
	if in.CopiedFromMonth != nil {
		b.CopiedFromMonth = in.CopiedFromMonth
	}
	if in.Purpose != nil {
		b.Purpose = in.Purpose
	}
	if in.CarryForwardEnabled != nil {
		b.CarryForwardEnabled = *in.CarryForwardEnabled
	}
	if in.IsTerminal != nil {
		b.IsTerminal = *in.IsTerminal
	}
}

// columns maps every present field to its column for a partial update.
func (in BudgetInput) columns() map[string]interface{} {
	updates := make(map[string]interface{})
	if in.Limit != nil {
		updates["limit_amount"] = *in.Limit
	}
	if in.Currency != nil {
		updates["currency"] = *in.Currency
	}
	if in.Rollover != nil {
		updates["rollover"] = *in.Rollover
	}
	if in.RolloverTargetCategoryID != nil {
		updates["rollover_target_category_id"] = *in.RolloverTargetCategoryID
	}
	if in.CopiedFromMonth != nil {
		updates["copied_from_month"] = *in.CopiedFromMonth
	}
	if in.Purpose != nil {
		updates["purpose"] = *in.Purpose
	}
	if in.CarryForwardEnabled != nil {
		updates["carry_forward_enabled"] = *in.CarryForwardEnabled
	}
	if in.IsTerminal != nil {
		updates["is_terminal"] = *in.IsTerminal
	}
	return updates
}

// requireCategory fails with ErrCategoryNotFound unless categoryID is one of
// userID's categories.
func requireCategory(tx *gorm.DB, userID, categoryID string) error {
	if !uuid.IsValid(categoryID) {
		return apperrors.ErrCategoryNotFound
	}
	_, found, err := store.Find[models.Category](tx, userID, "id = ?", categoryID)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if !found {
		return apperrors.ErrCategoryNotFound
	}
	return nil
}

// publish delivers e after commit. A broker failure is logged and never
// fails the operation that already committed.
func publish(ctx context.Context, p events.Publisher, e events.Event) {
	if p == nil {
		return
	}
	if err := p.Publish(ctx, e); err != nil {
		logger.FromContext(ctx).Warnw("failed to publish event", "type", e.Type, "error", err)
	}
}
