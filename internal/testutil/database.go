// Package testutil provides test helpers for setting up in-memory databases,
// creating fixtures, and making assertions.
package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"ledger/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// allModels is the list of all GORM models to auto-migrate in tests.
var allModels = []interface{}{
	&models.Category{},
	&models.Budget{},
	&models.Objective{},
	&models.ObjectiveMonthPlan{},
	&models.AuditLog{},
}

// dbCounter gives each test its own named in-memory database.
var dbCounter atomic.Int64

// SetupTestDB creates an isolated in-memory SQLite database with all models migrated.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:ledgertest%d?mode=memory&cache=shared", dbCounter.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	// One connection keeps the in-memory database alive and serializes access.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get underlying DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(allModels...); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// TeardownTestDB closes the underlying database connection.
func TeardownTestDB(t *testing.T, db *gorm.DB) {
	t.Helper()

	sqlDB, err := db.DB()
	if err != nil {
		t.Errorf("failed to get underlying DB for teardown: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		t.Errorf("failed to close test database: %v", err)
	}
}

// CountBudgets returns the number of explicit budget rows for userID.
func CountBudgets(t *testing.T, db *gorm.DB, userID string) int64 {
	t.Helper()

	var n int64
	if err := db.Model(&models.Budget{}).Where("user_id = ?", userID).Count(&n).Error; err != nil {
		t.Fatalf("failed to count budgets: %v", err)
	}
	return n
}

// CountPlans returns the number of month plans for objectiveID.
func CountPlans(t *testing.T, db *gorm.DB, objectiveID string) int64 {
	t.Helper()

	var n int64
	if err := db.Model(&models.ObjectiveMonthPlan{}).Where("objective_id = ?", objectiveID).Count(&n).Error; err != nil {
		t.Fatalf("failed to count plans: %v", err)
	}
	return n
}

// GetBudget loads the explicit row for (userID, month, categoryID), or nil.
func GetBudget(t *testing.T, db *gorm.DB, userID, month, categoryID string) *models.Budget {
	t.Helper()

	var budgets []models.Budget
	if err := db.Where("user_id = ? AND month = ? AND category_id = ?", userID, month, categoryID).
		Find(&budgets).Error; err != nil {
		t.Fatalf("failed to load budget: %v", err)
	}
	if len(budgets) == 0 {
		return nil
	}
	return &budgets[0]
}
