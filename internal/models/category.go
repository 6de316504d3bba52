package models

// Default presentation for categories created on behalf of an objective.
const (
	DefaultCategoryIcon  = "repeat"
	DefaultCategoryColor = "#06b6d4"
)

// Category groups budgets and transactions under a user-chosen name.
type Category struct {
	Base
	UserID string  `gorm:"not null;index" json:"user_id"`
	Name   string  `gorm:"not null" json:"name"`
	Group  *string `gorm:"column:category_group" json:"group,omitempty"`
	Icon   string  `json:"icon"`
	Color  string  `json:"color"`
}
