package services

import (
	"context"
	"strings"

	"gorm.io/gorm"

	apperrors "ledger/internal/errors"
	"ledger/internal/models"
	"ledger/internal/pagination"
	"ledger/internal/store"
	"ledger/internal/uuid"
)

// categoryService handles category-related business logic.
type categoryService struct {
	store *store.Store
}

// NewCategoryService creates a new CategoryServicer.
func NewCategoryService(st *store.Store) CategoryServicer {
	return &categoryService{store: st}
}

// CreateCategory creates a new category
func (s *categoryService) CreateCategory(ctx context.Context, userID string, input CategoryInput) (*models.Category, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category name is required")
	}

	db := s.store.DB(ctx)

	// Names are unique per user, ignoring case
	var count int64
	if err := db.Model(&models.Category{}).
		Where("user_id = ? AND LOWER(name) = LOWER(?)", userID, name).
		Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return nil, apperrors.ErrDuplicateCategory
	}

	category := &models.Category{
		UserID: userID,
		Name:   name,
		Group:  input.Group,
		Icon:   input.Icon,
		Color:  input.Color,
	}

	if err := db.Create(category).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return category, nil
}

// GetUserCategories retrieves a paginated list of categories for a user.
func (s *categoryService) GetUserCategories(ctx context.Context, userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Category], error) {
	base := s.store.DB(ctx).Model(&models.Category{}).Scopes(store.OwnedBy(userID))
	result, err := pagination.Query[models.Category](base, page, "name ASC")
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return result, nil
}

// GetCategoryByID retrieves a category by ID for a specific user
func (s *categoryService) GetCategoryByID(ctx context.Context, userID, categoryID string) (*models.Category, error) {
	if !uuid.IsValid(categoryID) {
		return nil, apperrors.ErrCategoryNotFound
	}
	category, found, err := store.Find[models.Category](s.store.DB(ctx), userID, "id = ?", categoryID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if !found {
		return nil, apperrors.ErrCategoryNotFound
	}
	return category, nil
}

// UpdateCategory updates an existing category
func (s *categoryService) UpdateCategory(ctx context.Context, userID, categoryID string, input CategoryInput) (*models.Category, error) {
	category, err := s.GetCategoryByID(ctx, userID, categoryID)
	if err != nil {
		return nil, err
	}

	db := s.store.DB(ctx)

	updates := make(map[string]interface{})
	if name := strings.TrimSpace(input.Name); name != "" && name != category.Name {
		var count int64
		if err := db.Model(&models.Category{}).
			Where("user_id = ? AND LOWER(name) = LOWER(?) AND id <> ?", userID, name, categoryID).
			Count(&count).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if count > 0 {
			return nil, apperrors.ErrDuplicateCategory
		}
		updates["name"] = name
	}
	if input.Group != nil {
		updates["category_group"] = input.Group
	}
	if input.Icon != "" {
		updates["icon"] = input.Icon
	}
	if input.Color != "" {
		updates["color"] = input.Color
	}

	if len(updates) > 0 {
		if err := db.Model(category).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return s.GetCategoryByID(ctx, userID, categoryID)
}

// DeleteCategory deletes a category together with its budgets and the
// objectives that target it. Rollover targets pointing at it are cleared.
func (s *categoryService) DeleteCategory(ctx context.Context, userID, categoryID string) error {
	if !uuid.IsValid(categoryID) {
		return apperrors.ErrCategoryNotFound
	}
	return s.store.Transaction(ctx, func(tx *gorm.DB) error {
		category, found, err := store.Find[models.Category](tx, userID, "id = ?", categoryID)
		if err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if !found {
			return apperrors.ErrCategoryNotFound
		}

		if err := tx.Scopes(store.OwnedBy(userID)).
			Where("category_id = ?", categoryID).
			Delete(&models.Budget{}).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		if err := tx.Model(&models.Budget{}).Scopes(store.OwnedBy(userID)).
			Where("rollover_target_category_id = ?", categoryID).
			Update("rollover_target_category_id", nil).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		objectiveIDs := tx.Model(&models.Objective{}).Select("id").
			Where("user_id = ? AND category_id = ?", userID, categoryID)
		if err := tx.Where("objective_id IN (?)", objectiveIDs).
			Delete(&models.ObjectiveMonthPlan{}).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := tx.Scopes(store.OwnedBy(userID)).
			Where("category_id = ?", categoryID).
			Delete(&models.Objective{}).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		if err := tx.Delete(category).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
}
