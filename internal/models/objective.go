package models

import "time"

// ObjectiveStatus is the lifecycle state of an objective.
type ObjectiveStatus string

const (
	ObjectiveStatusActive    ObjectiveStatus = "ACTIVE"
	ObjectiveStatusCompleted ObjectiveStatus = "COMPLETED"
	ObjectiveStatusArchived  ObjectiveStatus = "ARCHIVED"
)

// PlanKind says whether a month plan amount is money to spend or to set aside.
type PlanKind string

const (
	PlanKindSpend PlanKind = "SPEND"
	PlanKindSave  PlanKind = "SAVE"
)

// Objective is a named savings or spending goal with a month-by-month plan.
type Objective struct {
	Base
	UserID      string          `gorm:"not null;index:idx_objectives_user_status" json:"-"`
	Name        string          `gorm:"not null" json:"name"`
	CategoryID  string          `gorm:"type:uuid;not null" json:"category_id"`
	Currency    *string         `json:"currency"`
	TotalAmount *int64          `json:"total_amount"`
	Status      ObjectiveStatus `gorm:"not null;index:idx_objectives_user_status" json:"status"`

	Plans []ObjectiveMonthPlan `gorm:"foreignKey:ObjectiveID" json:"plans"`
}

// ObjectiveMonthPlan is one month of an objective's plan. Amount is stored as
// a non-negative magnitude; Kind carries the sign semantics.
type ObjectiveMonthPlan struct {
	ObjectiveID string   `gorm:"primaryKey;type:uuid" json:"-"`
	Month       string   `gorm:"primaryKey;size:7" json:"month"`
	Amount      int64    `gorm:"column:amount;not null" json:"amount"`
	Kind        PlanKind `gorm:"not null" json:"kind"`
	// IsLastMonth is stored for clients; no reconciliation logic reads it.
	IsLastMonth bool      `gorm:"not null" json:"is_last_month"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Valid reports whether s is a known lifecycle state.
func (s ObjectiveStatus) Valid() bool {
	switch s {
	case ObjectiveStatusActive, ObjectiveStatusCompleted, ObjectiveStatusArchived:
		return true
	}
	return false
}

// Valid reports whether k is a known plan kind.
func (k PlanKind) Valid() bool {
	return k == PlanKindSpend || k == PlanKindSave
}

// BudgetFor returns the budget row the objective generates for plan. The
// limit is the plan magnitude for both kinds; generated rows never carry
// forward, never roll over and are never terminal.
func (o *Objective) BudgetFor(plan ObjectiveMonthPlan) Budget {
	purpose := o.Name
	objectiveID := o.ID
	return Budget{
		UserID:              o.UserID,
		Month:               plan.Month,
		CategoryID:          o.CategoryID,
		Limit:               plan.Amount,
		Currency:            o.Currency,
		Rollover:            false,
		Purpose:             &purpose,
		CarryForwardEnabled: false,
		IsTerminal:          false,
		ObjectiveID:         &objectiveID,
	}
}
