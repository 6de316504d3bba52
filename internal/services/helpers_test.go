package services

import (
	"context"
	"testing"

	"gorm.io/gorm"

	"ledger/internal/models"
	"ledger/internal/store"
	"ledger/internal/testutil"
)

var ctx = context.Background()

type fixture struct {
	db         *gorm.DB
	publisher  *testutil.RecordingPublisher
	budgets    BudgetServicer
	objectives ObjectiveServicer
	categories CategoryServicer
	userID     string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.TeardownTestDB(t, db) })

	st := store.New(db)
	pub := &testutil.RecordingPublisher{}
	return &fixture{
		db:         db,
		publisher:  pub,
		budgets:    NewBudgetService(st, pub),
		objectives: NewObjectiveService(st, pub),
		categories: NewCategoryService(st),
		userID:     testutil.NewUserID(),
	}
}

// effective returns the rows ListEffective reports for categoryID at month.
func (f *fixture) effective(t *testing.T, month, categoryID string) []models.Budget {
	t.Helper()

	rows, err := f.budgets.ListEffective(ctx, f.userID, &month)
	testutil.AssertNoError(t, err)

	var out []models.Budget
	for _, b := range rows {
		if b.CategoryID == categoryID {
			out = append(out, b)
		}
	}
	return out
}

func plan(month string, amount int64, kind models.PlanKind) PlanInput {
	return PlanInput{Month: month, Amount: &amount, Kind: kind}
}
