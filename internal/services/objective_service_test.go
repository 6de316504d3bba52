package services

import (
	"testing"

	"ledger/internal/events"
	"ledger/internal/models"
	"ledger/internal/pagination"
	"ledger/internal/testutil"
)

func tripPlans() []PlanInput {
	return []PlanInput{
		plan("2025-12", 700000, models.PlanKindSpend),
		plan("2026-01", 300000, models.PlanKindSpend),
		plan("2026-02", 250000, models.PlanKindSpend),
	}
}

func TestCreateObjective(t *testing.T) {
	t.Run("generates_budget_rows", func(t *testing.T) {
		f := newFixture(t)

		obj, err := f.objectives.CreateObjective(ctx, f.userID, CreateObjectiveInput{
			Name:     "Trip",
			Currency: testutil.StrPtr("CLP"),
			Plans:    tripPlans(),
		}, false)
		testutil.AssertNoError(t, err)

		if obj.Status != models.ObjectiveStatusActive {
			t.Errorf("expected ACTIVE, got %s", obj.Status)
		}
		if len(obj.Plans) != 3 || obj.Plans[0].Month != "2025-12" {
			t.Fatalf("expected 3 plans in month order, got %+v", obj.Plans)
		}

		feb := f.effective(t, "2026-02", obj.CategoryID)
		if len(feb) != 1 {
			t.Fatalf("expected exactly one row at 2026-02, got %d", len(feb))
		}
		b := feb[0]
		if !b.OwnedBy(obj.ID) || b.Limit != 250000 || b.CarryForwardEnabled || b.IsTerminal || b.Rollover {
			t.Errorf("unexpected generated budget %+v", b)
		}
		if b.Purpose == nil || *b.Purpose != "Trip" {
			t.Errorf("expected purpose Trip, got %v", b.Purpose)
		}
		if b.Currency == nil || *b.Currency != "CLP" {
			t.Errorf("expected currency CLP, got %v", b.Currency)
		}

		if got := f.effective(t, "2026-03", obj.CategoryID); len(got) != 0 {
			t.Errorf("generated rows must not carry forward, got %+v", got)
		}
		if got := f.publisher.Types(); len(got) != 1 || got[0] != events.TypeObjectiveCreated {
			t.Errorf("expected objective.created, got %v", got)
		}
	})

	t.Run("auto_creates_category", func(t *testing.T) {
		f := newFixture(t)

		obj, err := f.objectives.CreateObjective(ctx, f.userID, CreateObjectiveInput{Name: "  Car Fund "}, false)
		testutil.AssertNoError(t, err)

		cat, err := f.categories.GetCategoryByID(ctx, f.userID, obj.CategoryID)
		testutil.AssertNoError(t, err)
		if cat.Name != "Car Fund" || cat.Icon != models.DefaultCategoryIcon || cat.Color != models.DefaultCategoryColor {
			t.Errorf("unexpected auto-created category %+v", cat)
		}
	})

	t.Run("reuses_category_by_name", func(t *testing.T) {
		f := newFixture(t)
		cat := testutil.CreateTestCategoryWithName(t, f.db, f.userID, "Vacation")

		obj, err := f.objectives.CreateObjective(ctx, f.userID, CreateObjectiveInput{Name: "vacation"}, false)
		testutil.AssertNoError(t, err)
		if obj.CategoryID != cat.ID {
			t.Errorf("expected case-insensitive reuse of %s, got %s", cat.ID, obj.CategoryID)
		}
	})

	t.Run("explicit_category_must_belong_to_user", func(t *testing.T) {
		f := newFixture(t)
		other := testutil.CreateTestCategory(t, f.db, testutil.NewUserID())

		_, err := f.objectives.CreateObjective(ctx, f.userID, CreateObjectiveInput{Name: "Trip", CategoryID: &other.ID}, false)
		testutil.AssertAppError(t, err, "CATEGORY_NOT_FOUND")
	})

	t.Run("conflict_without_force_is_atomic", func(t *testing.T) {
		f := newFixture(t)
		cat := testutil.CreateTestCategory(t, f.db, f.userID)
		testutil.CreateTestBudget(t, f.db, f.userID, "2026-01", cat.ID, 100000)

		_, err := f.objectives.CreateObjective(ctx, f.userID, CreateObjectiveInput{
			Name:       "Trip",
			CategoryID: &cat.ID,
			Plans:      tripPlans(),
		}, false)

		conflicts := testutil.ConflictsOf(t, err)
		if len(conflicts) != 1 || conflicts[0].Month != "2026-01" || conflicts[0].CategoryID != cat.ID {
			t.Errorf("expected conflict at 2026-01/%s, got %+v", cat.ID, conflicts)
		}

		if n := testutil.CountBudgets(t, f.db, f.userID); n != 1 {
			t.Errorf("expected only the manual budget, got %d rows", n)
		}
		var objectives, plans int64
		f.db.Model(&models.Objective{}).Count(&objectives)
		f.db.Model(&models.ObjectiveMonthPlan{}).Count(&plans)
		if objectives != 0 || plans != 0 {
			t.Errorf("expected no objective or plan rows, got %d/%d", objectives, plans)
		}
		if b := testutil.GetBudget(t, f.db, f.userID, "2026-01", cat.ID); b.Limit != 100000 || b.ObjectiveID != nil {
			t.Errorf("manual budget must be unchanged, got %+v", b)
		}
		if len(f.publisher.Events()) != 0 {
			t.Error("failed create must not publish")
		}
	})

	t.Run("force_replaces_conflicts", func(t *testing.T) {
		f := newFixture(t)
		cat := testutil.CreateTestCategory(t, f.db, f.userID)
		testutil.CreateTestBudget(t, f.db, f.userID, "2026-01", cat.ID, 100000)

		obj, err := f.objectives.CreateObjective(ctx, f.userID, CreateObjectiveInput{
			Name:       "Trip",
			CategoryID: &cat.ID,
			Plans:      []PlanInput{plan("2026-01", 300000, models.PlanKindSpend)},
		}, true)
		testutil.AssertNoError(t, err)

		jan := f.effective(t, "2026-01", cat.ID)
		if len(jan) != 1 {
			t.Fatalf("expected one row at 2026-01, got %d", len(jan))
		}
		if jan[0].Limit != 300000 || !jan[0].OwnedBy(obj.ID) {
			t.Errorf("expected objective row with limit 300000, got %+v", jan[0])
		}
	})

	t.Run("rows_owned_by_another_objective_conflict", func(t *testing.T) {
		f := newFixture(t)
		cat := testutil.CreateTestCategory(t, f.db, f.userID)

		first, err := f.objectives.CreateObjective(ctx, f.userID, CreateObjectiveInput{
			Name: "First", CategoryID: &cat.ID, Plans: []PlanInput{plan("2026-01", 1, models.PlanKindSpend)},
		}, false)
		testutil.AssertNoError(t, err)

		_, err = f.objectives.CreateObjective(ctx, f.userID, CreateObjectiveInput{
			Name: "Second", CategoryID: &cat.ID, Plans: []PlanInput{plan("2026-01", 2, models.PlanKindSpend)},
		}, false)
		testutil.AssertAppError(t, err, "BUDGET_CONFLICT")

		if b := testutil.GetBudget(t, f.db, f.userID, "2026-01", cat.ID); !b.OwnedBy(first.ID) {
			t.Errorf("first objective must keep its row, got %+v", b)
		}
	})

	t.Run("amounts_stored_as_magnitudes", func(t *testing.T) {
		f := newFixture(t)

		obj, err := f.objectives.CreateObjective(ctx, f.userID, CreateObjectiveInput{
			Name:  "Savings",
			Plans: []PlanInput{plan("2026-01", -5000, models.PlanKindSave), {Month: "2026-02", Amount: testutil.Int64Ptr(10)}},
		}, false)
		testutil.AssertNoError(t, err)

		if obj.Plans[0].Amount != 5000 || obj.Plans[0].Kind != models.PlanKindSave {
			t.Errorf("expected SAVE 5000, got %+v", obj.Plans[0])
		}
		if obj.Plans[1].Kind != models.PlanKindSpend {
			t.Errorf("kind should default to SPEND, got %s", obj.Plans[1].Kind)
		}
		if b := testutil.GetBudget(t, f.db, f.userID, "2026-01", obj.CategoryID); b.Limit != 5000 {
			t.Errorf("expected budget limit 5000, got %d", b.Limit)
		}
	})

	t.Run("is_last_month_stored", func(t *testing.T) {
		f := newFixture(t)
		last := plan("2026-02", 1, models.PlanKindSpend)
		last.IsLastMonth = true

		obj, err := f.objectives.CreateObjective(ctx, f.userID, CreateObjectiveInput{
			Name: "Trip", Plans: []PlanInput{plan("2026-01", 1, models.PlanKindSpend), last},
		}, false)
		testutil.AssertNoError(t, err)
		if obj.Plans[0].IsLastMonth || !obj.Plans[1].IsLastMonth {
			t.Errorf("expected flag on the second plan only, got %+v", obj.Plans)
		}
	})

	t.Run("invalid_plans", func(t *testing.T) {
		tests := []struct {
			name  string
			plans []PlanInput
		}{
			{"bad_month", []PlanInput{plan("2026-13", 1, models.PlanKindSpend)}},
			{"missing_amount", []PlanInput{{Month: "2026-01"}}},
			{"bad_kind", []PlanInput{plan("2026-01", 1, models.PlanKind("BORROW"))}},
			{"duplicate_month", []PlanInput{plan("2026-01", 1, models.PlanKindSpend), plan("2026-01", 2, models.PlanKindSave)}},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				f := newFixture(t)
				_, err := f.objectives.CreateObjective(ctx, f.userID, CreateObjectiveInput{Name: "Trip", Plans: tt.plans}, false)
				testutil.AssertAppError(t, err, "INVALID_INPUT")
			})
		}
	})

	t.Run("name_required", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.objectives.CreateObjective(ctx, f.userID, CreateObjectiveInput{Name: "   "}, false)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestUpdateObjective(t *testing.T) {
	create := func(t *testing.T, f *fixture) *models.Objective {
		t.Helper()
		obj, err := f.objectives.CreateObjective(ctx, f.userID, CreateObjectiveInput{Name: "Trip", Plans: tripPlans()}, false)
		testutil.AssertNoError(t, err)
		return obj
	}

	t.Run("replaces_plans", func(t *testing.T) {
		f := newFixture(t)
		obj := create(t, f)

		newPlans := []PlanInput{plan("2026-01", 111, models.PlanKindSpend), plan("2026-06", 222, models.PlanKindSave)}
		updated, err := f.objectives.UpdateObjective(ctx, f.userID, obj.ID, UpdateObjectiveInput{Plans: &newPlans}, false)
		testutil.AssertNoError(t, err)

		if len(updated.Plans) != 2 || updated.Plans[0].Month != "2026-01" || updated.Plans[1].Month != "2026-06" {
			t.Fatalf("expected replaced plans, got %+v", updated.Plans)
		}
		if n := testutil.CountBudgets(t, f.db, f.userID); n != 2 {
			t.Errorf("expected 2 generated budgets, got %d", n)
		}
		if b := testutil.GetBudget(t, f.db, f.userID, "2025-12", obj.CategoryID); b != nil {
			t.Errorf("dropped month must lose its budget, got %+v", b)
		}
		if b := testutil.GetBudget(t, f.db, f.userID, "2026-01", obj.CategoryID); b.Limit != 111 || !b.OwnedBy(obj.ID) {
			t.Errorf("expected rebuilt row with limit 111, got %+v", b)
		}
	})

	t.Run("own_rows_are_not_conflicts", func(t *testing.T) {
		f := newFixture(t)
		obj := create(t, f)

		same := tripPlans()
		_, err := f.objectives.UpdateObjective(ctx, f.userID, obj.ID, UpdateObjectiveInput{Plans: &same}, false)
		testutil.AssertNoError(t, err)
	})

	t.Run("conflict_leaves_objective_unchanged", func(t *testing.T) {
		f := newFixture(t)
		obj := create(t, f)
		testutil.CreateTestBudget(t, f.db, f.userID, "2026-05", obj.CategoryID, 42)

		newPlans := []PlanInput{plan("2026-05", 1, models.PlanKindSpend)}
		_, err := f.objectives.UpdateObjective(ctx, f.userID, obj.ID, UpdateObjectiveInput{
			Name:       testutil.StrPtr("Renamed"),
			CategoryID: &obj.CategoryID,
			Plans:      &newPlans,
		}, false)
		conflicts := testutil.ConflictsOf(t, err)
		if len(conflicts) != 1 || conflicts[0].Month != "2026-05" {
			t.Errorf("unexpected conflicts %+v", conflicts)
		}

		after, err := f.objectives.GetObjectiveByID(ctx, f.userID, obj.ID)
		testutil.AssertNoError(t, err)
		if after.Name != "Trip" || len(after.Plans) != 3 {
			t.Errorf("objective must be unchanged, got name %s with %d plans", after.Name, len(after.Plans))
		}
		if n := testutil.CountPlans(t, f.db, obj.ID); n != 3 {
			t.Errorf("expected 3 plans, got %d", n)
		}
		if b := testutil.GetBudget(t, f.db, f.userID, "2026-05", obj.CategoryID); b.Limit != 42 || b.ObjectiveID != nil {
			t.Errorf("manual budget must survive, got %+v", b)
		}
	})

	t.Run("force_replaces_conflicts", func(t *testing.T) {
		f := newFixture(t)
		obj := create(t, f)
		testutil.CreateTestBudget(t, f.db, f.userID, "2026-05", obj.CategoryID, 42)

		newPlans := []PlanInput{plan("2026-05", 1, models.PlanKindSpend)}
		_, err := f.objectives.UpdateObjective(ctx, f.userID, obj.ID, UpdateObjectiveInput{Plans: &newPlans}, true)
		testutil.AssertNoError(t, err)

		if b := testutil.GetBudget(t, f.db, f.userID, "2026-05", obj.CategoryID); b.Limit != 1 || !b.OwnedBy(obj.ID) {
			t.Errorf("expected objective row, got %+v", b)
		}
		if n := testutil.CountBudgets(t, f.db, f.userID); n != 1 {
			t.Errorf("expected a single budget, got %d", n)
		}
	})

	t.Run("category_change_moves_budgets", func(t *testing.T) {
		f := newFixture(t)
		obj := create(t, f)
		target := testutil.CreateTestCategory(t, f.db, f.userID)

		updated, err := f.objectives.UpdateObjective(ctx, f.userID, obj.ID, UpdateObjectiveInput{CategoryID: &target.ID}, false)
		testutil.AssertNoError(t, err)

		if updated.CategoryID != target.ID {
			t.Fatalf("expected category %s, got %s", target.ID, updated.CategoryID)
		}
		if got := f.effective(t, "2026-01", obj.CategoryID); len(got) != 0 {
			t.Errorf("old category must lose the generated rows, got %+v", got)
		}
		if got := f.effective(t, "2026-01", target.ID); len(got) != 1 || got[0].Limit != 300000 {
			t.Errorf("new category must carry the plan, got %+v", got)
		}
	})

	t.Run("rename_updates_purpose_and_category", func(t *testing.T) {
		f := newFixture(t)
		obj := create(t, f)

		updated, err := f.objectives.UpdateObjective(ctx, f.userID, obj.ID, UpdateObjectiveInput{Name: testutil.StrPtr("Japan")}, false)
		testutil.AssertNoError(t, err)

		if updated.CategoryID == obj.CategoryID {
			t.Error("rename without category_id should resolve a category by the new name")
		}
		b := testutil.GetBudget(t, f.db, f.userID, "2026-01", updated.CategoryID)
		if b == nil || b.Purpose == nil || *b.Purpose != "Japan" {
			t.Errorf("expected purpose Japan, got %+v", b)
		}
		if n := testutil.CountBudgets(t, f.db, f.userID); n != 3 {
			t.Errorf("expected 3 budgets, got %d", n)
		}
	})

	t.Run("scalar_fields", func(t *testing.T) {
		f := newFixture(t)
		obj := create(t, f)
		status := models.ObjectiveStatusCompleted

		updated, err := f.objectives.UpdateObjective(ctx, f.userID, obj.ID, UpdateObjectiveInput{
			Currency:    testutil.StrPtr("EUR"),
			TotalAmount: testutil.Int64Ptr(1250000),
			Status:      &status,
		}, false)
		testutil.AssertNoError(t, err)

		if updated.Currency == nil || *updated.Currency != "EUR" || updated.TotalAmount == nil || *updated.TotalAmount != 1250000 {
			t.Errorf("unexpected scalars %+v", updated)
		}
		if updated.Status != models.ObjectiveStatusCompleted {
			t.Errorf("expected COMPLETED, got %s", updated.Status)
		}
		if b := testutil.GetBudget(t, f.db, f.userID, "2026-01", obj.CategoryID); b.Currency == nil || *b.Currency != "EUR" {
			t.Errorf("generated rows should follow the currency, got %v", b.Currency)
		}
	})

	t.Run("invalid_status", func(t *testing.T) {
		f := newFixture(t)
		obj := create(t, f)
		status := models.ObjectiveStatus("PAUSED")

		_, err := f.objectives.UpdateObjective(ctx, f.userID, obj.ID, UpdateObjectiveInput{Status: &status}, false)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("not_found", func(t *testing.T) {
		f := newFixture(t)
		obj := create(t, f)

		_, err := f.objectives.UpdateObjective(ctx, testutil.NewUserID(), obj.ID, UpdateObjectiveInput{Name: testutil.StrPtr("x")}, false)
		testutil.AssertAppError(t, err, "OBJECTIVE_NOT_FOUND")
	})

	t.Run("archived_objective_not_rebuilt", func(t *testing.T) {
		f := newFixture(t)
		obj := create(t, f)
		_, err := f.objectives.ArchiveObjective(ctx, f.userID, obj.ID)
		testutil.AssertNoError(t, err)

		newPlans := tripPlans()
		reactivate := models.ObjectiveStatusActive
		for name, input := range map[string]UpdateObjectiveInput{
			"rename": {Name: testutil.StrPtr("Trip renamed")},
			"plans":  {Plans: &newPlans},
			"status": {Status: &reactivate},
		} {
			t.Run(name, func(t *testing.T) {
				_, err := f.objectives.UpdateObjective(ctx, f.userID, obj.ID, input, true)
				testutil.AssertAppError(t, err, "OBJECTIVE_ARCHIVED")
			})
		}

		if n := testutil.CountBudgets(t, f.db, f.userID); n != 0 {
			t.Errorf("archived objective must not regenerate budgets, got %d", n)
		}
		after, err := f.objectives.GetObjectiveByID(ctx, f.userID, obj.ID)
		testutil.AssertNoError(t, err)
		if after.Name != "Trip" || after.Status != models.ObjectiveStatusArchived {
			t.Errorf("archived objective must be unchanged, got %s %s", after.Name, after.Status)
		}
	})

	t.Run("status_archived_removes_budgets", func(t *testing.T) {
		f := newFixture(t)
		obj := create(t, f)
		testutil.CreateTestBudget(t, f.db, f.userID, "2026-05", obj.CategoryID, 42)
		archived := models.ObjectiveStatusArchived

		updated, err := f.objectives.UpdateObjective(ctx, f.userID, obj.ID, UpdateObjectiveInput{Status: &archived}, false)
		testutil.AssertNoError(t, err)

		if updated.Status != models.ObjectiveStatusArchived || len(updated.Plans) != 3 {
			t.Errorf("expected ARCHIVED with plans kept, got %s with %d plans", updated.Status, len(updated.Plans))
		}
		for _, m := range []string{"2025-12", "2026-01", "2026-02"} {
			if b := testutil.GetBudget(t, f.db, f.userID, m, obj.CategoryID); b != nil {
				t.Errorf("%s: generated budget must be removed, got %+v", m, b)
			}
		}
		if b := testutil.GetBudget(t, f.db, f.userID, "2026-05", obj.CategoryID); b == nil || b.Limit != 42 {
			t.Errorf("manual budget must survive, got %+v", b)
		}

		types := f.publisher.Types()
		if types[len(types)-1] != events.TypeObjectiveArchived {
			t.Errorf("expected objective.archived last, got %v", types)
		}
	})

	t.Run("status_archived_with_new_plans", func(t *testing.T) {
		f := newFixture(t)
		obj := create(t, f)
		archived := models.ObjectiveStatusArchived
		newPlans := []PlanInput{plan("2026-07", 5, models.PlanKindSpend)}

		updated, err := f.objectives.UpdateObjective(ctx, f.userID, obj.ID, UpdateObjectiveInput{Status: &archived, Plans: &newPlans}, false)
		testutil.AssertNoError(t, err)

		if len(updated.Plans) != 1 || updated.Plans[0].Month != "2026-07" {
			t.Errorf("expected plan history replaced, got %+v", updated.Plans)
		}
		if n := testutil.CountBudgets(t, f.db, f.userID); n != 0 {
			t.Errorf("archiving must not generate budgets, got %d", n)
		}
	})
}

func TestCompleteObjective(t *testing.T) {
	t.Run("keeps_budgets", func(t *testing.T) {
		f := newFixture(t)
		obj, err := f.objectives.CreateObjective(ctx, f.userID, CreateObjectiveInput{Name: "Trip", Plans: tripPlans()}, false)
		testutil.AssertNoError(t, err)

		completed, err := f.objectives.CompleteObjective(ctx, f.userID, obj.ID)
		testutil.AssertNoError(t, err)

		if completed.Status != models.ObjectiveStatusCompleted {
			t.Errorf("expected COMPLETED, got %s", completed.Status)
		}
		if got := f.effective(t, "2026-02", obj.CategoryID); len(got) != 1 || !got[0].OwnedBy(obj.ID) {
			t.Errorf("budgets must survive completion, got %+v", got)
		}
	})

	t.Run("not_found", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.objectives.CompleteObjective(ctx, f.userID, "not-a-uuid")
		testutil.AssertAppError(t, err, "OBJECTIVE_NOT_FOUND")
	})

	t.Run("archived_stays_archived", func(t *testing.T) {
		f := newFixture(t)
		obj, err := f.objectives.CreateObjective(ctx, f.userID, CreateObjectiveInput{Name: "Trip", Plans: tripPlans()}, false)
		testutil.AssertNoError(t, err)
		_, err = f.objectives.ArchiveObjective(ctx, f.userID, obj.ID)
		testutil.AssertNoError(t, err)

		_, err = f.objectives.CompleteObjective(ctx, f.userID, obj.ID)
		testutil.AssertAppError(t, err, "OBJECTIVE_ARCHIVED")

		after, err := f.objectives.GetObjectiveByID(ctx, f.userID, obj.ID)
		testutil.AssertNoError(t, err)
		if after.Status != models.ObjectiveStatusArchived {
			t.Errorf("expected ARCHIVED, got %s", after.Status)
		}
	})
}

func TestArchiveObjective(t *testing.T) {
	t.Run("removes_budgets_keeps_plans", func(t *testing.T) {
		f := newFixture(t)
		obj, err := f.objectives.CreateObjective(ctx, f.userID, CreateObjectiveInput{Name: "Trip", Plans: tripPlans()}, false)
		testutil.AssertNoError(t, err)
		manual := testutil.CreateTestCategory(t, f.db, f.userID)
		testutil.CreateTestBudget(t, f.db, f.userID, "2026-01", manual.ID, 1)

		archived, err := f.objectives.ArchiveObjective(ctx, f.userID, obj.ID)
		testutil.AssertNoError(t, err)

		if archived.Status != models.ObjectiveStatusArchived {
			t.Errorf("expected ARCHIVED, got %s", archived.Status)
		}
		for _, m := range []string{"2025-12", "2026-01", "2026-02"} {
			if got := f.effective(t, m, obj.CategoryID); len(got) != 0 {
				t.Errorf("%s: archived objective rows must disappear, got %+v", m, got)
			}
		}
		if n := testutil.CountPlans(t, f.db, obj.ID); n != 3 {
			t.Errorf("plans must remain, got %d", n)
		}
		if got := f.effective(t, "2026-01", manual.ID); len(got) != 1 {
			t.Error("unrelated budgets must survive")
		}

		fetched, err := f.objectives.GetObjectiveByID(ctx, f.userID, obj.ID)
		testutil.AssertNoError(t, err)
		if fetched.Status != models.ObjectiveStatusArchived || len(fetched.Plans) != 3 {
			t.Errorf("archived objective should stay queryable, got %+v", fetched)
		}

		types := f.publisher.Types()
		if types[len(types)-1] != events.TypeObjectiveArchived {
			t.Errorf("expected objective.archived last, got %v", types)
		}
	})

	t.Run("other_user", func(t *testing.T) {
		f := newFixture(t)
		obj, err := f.objectives.CreateObjective(ctx, f.userID, CreateObjectiveInput{Name: "Trip", Plans: tripPlans()}, false)
		testutil.AssertNoError(t, err)

		_, err = f.objectives.ArchiveObjective(ctx, testutil.NewUserID(), obj.ID)
		testutil.AssertAppError(t, err, "OBJECTIVE_NOT_FOUND")
		if n := testutil.CountBudgets(t, f.db, f.userID); n != 3 {
			t.Errorf("budgets must be untouched, got %d", n)
		}
	})
}

func TestGetUserObjectives(t *testing.T) {
	f := newFixture(t)
	a, err := f.objectives.CreateObjective(ctx, f.userID, CreateObjectiveInput{Name: "A", Plans: []PlanInput{plan("2026-01", 1, models.PlanKindSpend)}}, false)
	testutil.AssertNoError(t, err)
	_, err = f.objectives.CreateObjective(ctx, f.userID, CreateObjectiveInput{Name: "B"}, false)
	testutil.AssertNoError(t, err)
	_, err = f.objectives.CompleteObjective(ctx, f.userID, a.ID)
	testutil.AssertNoError(t, err)
	_, err = f.objectives.CreateObjective(ctx, testutil.NewUserID(), CreateObjectiveInput{Name: "C"}, false)
	testutil.AssertNoError(t, err)

	t.Run("all", func(t *testing.T) {
		page, err := f.objectives.GetUserObjectives(ctx, f.userID, nil, pagination.PageRequest{})
		testutil.AssertNoError(t, err)
		if page.TotalItems != 2 || len(page.Data) != 2 {
			t.Fatalf("expected 2 objectives, got %d", page.TotalItems)
		}
		for _, o := range page.Data {
			if o.Plans == nil {
				t.Errorf("plans should be an empty list, not nil, for %s", o.Name)
			}
		}
	})

	t.Run("status_filter", func(t *testing.T) {
		status := models.ObjectiveStatusCompleted
		page, err := f.objectives.GetUserObjectives(ctx, f.userID, &status, pagination.PageRequest{})
		testutil.AssertNoError(t, err)
		if len(page.Data) != 1 || page.Data[0].ID != a.ID || len(page.Data[0].Plans) != 1 {
			t.Errorf("expected completed objective A with its plan, got %+v", page.Data)
		}
	})

	t.Run("invalid_status", func(t *testing.T) {
		status := models.ObjectiveStatus("DONE")
		_, err := f.objectives.GetUserObjectives(ctx, f.userID, &status, pagination.PageRequest{})
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}
