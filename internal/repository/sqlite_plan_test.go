package repository

import (
	"context"
	"database/sql"
	"testing"

	"lifearc/internal/db"
	"lifearc/internal/domain"
	"lifearc/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return database
}

func samplePlan() *domain.Plan {
	d := 1825.0
	plan := testutil.NewTestPlan("Retirement Plan",
		testutil.WithEvent(testutil.NewTestEvent(1, "job", "2010-09-01", "2045-09-01", true)),
		testutil.WithEnvelope(domain.Envelope{
			Name: "Checking", Category: "cash",
			Growth: domain.GrowthNone, AccountType: domain.AccountRegular,
		}),
		testutil.WithEnvelope(domain.Envelope{
			Name: "Car", Category: "property",
			Growth: domain.GrowthAppreciation, Rate: -0.12,
			AccountType: domain.AccountRegular, DaysOfUsefulness: &d,
		}),
	)
	plan.InflationRate = 0.025
	plan.AdjustForInflation = true
	plan.RetirementGoal = 1500000
	plan.ViewStartDate = "2020-01-01"
	plan.ViewEndDate = "2070-01-01"
	plan.Events[0].Parameters = append(plan.Events[0].Parameters,
		domain.Parameter{ID: 2, Type: "frequency_days", Value: domain.Number(14)})
	plan.Events[0].UpdatingEvents = []domain.UpdatingEvent{
		{EventCore: domain.EventCore{
			ID:   2,
			Type: "bill_change",
			Parameters: []domain.Parameter{
				{ID: 0, Type: "new_amount", Value: domain.Number(175.50)},
			},
		}},
	}
	return plan
}

func TestSaveLoad_LosslessRoundTrip(t *testing.T) {
	repo := NewSQLitePlanRepo(testDB(t))
	ctx := context.Background()
	plan := samplePlan()

	require.NoError(t, repo.Save(ctx, "main", plan, nil))
	loaded, locked, err := repo.Load(ctx, "main")
	require.NoError(t, err)

	assert.Equal(t, plan, loaded, "every declared field survives the round trip")
	assert.Nil(t, locked)
}

func TestSaveLoad_WithLockedSnapshot(t *testing.T) {
	repo := NewSQLitePlanRepo(testDB(t))
	ctx := context.Background()
	plan := samplePlan()
	snapshot := plan.Clone()
	snapshot.Title = "Baseline"

	require.NoError(t, repo.Save(ctx, "main", plan, snapshot))
	loaded, locked, err := repo.Load(ctx, "main")
	require.NoError(t, err)

	assert.Equal(t, plan, loaded)
	require.NotNil(t, locked)
	assert.Equal(t, snapshot, locked)
}

func TestSave_UpsertsByName(t *testing.T) {
	repo := NewSQLitePlanRepo(testDB(t))
	ctx := context.Background()
	plan := samplePlan()

	require.NoError(t, repo.Save(ctx, "main", plan, nil))
	plan.Title = "Renamed"
	require.NoError(t, repo.Save(ctx, "main", plan, nil))

	loaded, _, err := repo.Load(ctx, "main")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", loaded.Title)

	infos, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, infos, 1)
	assert.Equal(t, "main", infos[0].Name)
	assert.Equal(t, "Renamed", infos[0].Title)
	assert.False(t, infos[0].HasLocked)
}

func TestLoad_NotFound(t *testing.T) {
	repo := NewSQLitePlanRepo(testDB(t))
	_, _, err := repo.Load(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrPlanNotFound)
}

func TestDelete(t *testing.T) {
	repo := NewSQLitePlanRepo(testDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "main", samplePlan(), nil))
	require.NoError(t, repo.Delete(ctx, "main"))
	_, _, err := repo.Load(ctx, "main")
	assert.ErrorIs(t, err, ErrPlanNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, "main"), ErrPlanNotFound)
}

func TestList_MarksLockedSnapshots(t *testing.T) {
	repo := NewSQLitePlanRepo(testDB(t))
	ctx := context.Background()
	plan := samplePlan()

	require.NoError(t, repo.Save(ctx, "with-lock", plan, plan.Clone()))
	require.NoError(t, repo.Save(ctx, "without-lock", plan, nil))

	infos, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, infos, 2)

	byName := map[string]PlanInfo{}
	for _, info := range infos {
		byName[info.Name] = info
	}
	assert.True(t, byName["with-lock"].HasLocked)
	assert.False(t, byName["without-lock"].HasLocked)
}
