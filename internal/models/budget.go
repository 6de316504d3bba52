package models

import "time"

// Budget is the explicit limit for one category in one month. The
// (user, month, category) triple is the primary key.
//
// A non-nil ObjectiveID marks the row as generated by that objective's month
// plan; manually created rows always have a nil ObjectiveID.
type Budget struct {
	UserID                   string    `gorm:"primaryKey" json:"-"`
	Month                    string    `gorm:"primaryKey;size:7" json:"month"`
	CategoryID               string    `gorm:"primaryKey;type:uuid" json:"category_id"`
	Limit                    int64     `gorm:"column:limit_amount;not null" json:"limit"`
	Currency                 *string   `json:"currency"`
	Rollover                 bool      `gorm:"not null" json:"rollover"`
	RolloverTargetCategoryID *string   `gorm:"type:uuid" json:"rollover_target_category_id"`
	CopiedFromMonth          *string   `gorm:"size:7" json:"copied_from_month"`
	Purpose                  *string   `json:"purpose"`
	CarryForwardEnabled      bool      `gorm:"not null" json:"carry_forward_enabled"`
	IsTerminal               bool      `gorm:"not null" json:"is_terminal"`
	ObjectiveID              *string   `gorm:"type:uuid;index" json:"objective_id"`
	CreatedAt                time.Time `json:"created_at"`
	UpdatedAt                time.Time `json:"updated_at"`
}

// IsObjectiveOwned reports whether the row was generated by an objective.
func (b *Budget) IsObjectiveOwned() bool {
	return b.ObjectiveID != nil
}

// OwnedBy reports whether the row belongs to the given objective.
func (b *Budget) OwnedBy(objectiveID string) bool {
	return b.ObjectiveID != nil && *b.ObjectiveID == objectiveID
}

// PropagatedColumns returns the columns a "this and following" edit copies
// onto later explicit rows of the same category.
func (b *Budget) PropagatedColumns() map[string]interface{} {
	return map[string]interface{}{
		"limit_amount":          b.Limit,
		"rollover":              b.Rollover,
		"currency":              b.Currency,
		"purpose":               b.Purpose,
		"carry_forward_enabled": b.CarryForwardEnabled,
		"is_terminal":           b.IsTerminal,
		"objective_id":          b.ObjectiveID,
	}
}

// CloneTo returns a copy of b dated to month, tagged as copied from b's month.
func (b *Budget) CloneTo(month string) Budget {
	source := b.Month
	return Budget{
		UserID:                   b.UserID,
		Month:                    month,
		CategoryID:               b.CategoryID,
		Limit:                    b.Limit,
		Currency:                 b.Currency,
		Rollover:                 b.Rollover,
		RolloverTargetCategoryID: b.RolloverTargetCategoryID,
		CopiedFromMonth:          &source,
		Purpose:                  b.Purpose,
		CarryForwardEnabled:      b.CarryForwardEnabled,
		IsTerminal:               b.IsTerminal,
		ObjectiveID:              b.ObjectiveID,
	}
}

// Propagates reports whether the row's limit stays visible in later months
// that have no explicit row of their own.
func (b *Budget) Propagates() bool {
	return b.CarryForwardEnabled && !b.IsTerminal
}
