package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"lifearc/internal/db"
	"lifearc/internal/domain"
	"lifearc/internal/expand"
	"lifearc/internal/planner"
	"lifearc/internal/repository"
	"lifearc/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp wires a full App backed by an in-memory DB for CLI
// integration tests. Today is pinned so event defaults are stable.
func testApp(t *testing.T) *App {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	return &App{
		Repo:        repository.NewSQLitePlanRepo(database),
		Catalog:     testutil.NewTestCatalog(),
		Today:       time.Date(2020, 1, 1, 0, 0, 0, 0, time.Local),
		HistoryCap:  100,
		DefaultZoom: 4,
		Colored:     false,
		Observer:    planner.NoopObserver{},
	}
}

// executeCmd runs a cobra command tree and captures its output.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func seedPlan(t *testing.T, app *App) {
	t.Helper()
	_, err := executeCmd(t, app, "plan", "new", "mine", "--birth-date", "1990-01-01")
	require.NoError(t, err)
}

// --- plan ---

func TestPlanNew_RequiresValidBirthDate(t *testing.T) {
	app := testApp(t)
	_, err := executeCmd(t, app, "plan", "new", "mine", "--birth-date", "not-a-date")
	assert.Error(t, err)

	_, err = executeCmd(t, app, "plan", "new", "mine", "--birth-date", "1990-01-01")
	assert.NoError(t, err)

	plan, _, err := app.Repo.Load(context.Background(), "mine")
	require.NoError(t, err)
	assert.Equal(t, "1990-01-01", plan.BirthDate)
	assert.Equal(t, "mine", plan.Title)
}

func TestPlanList_ShowsSavedPlans(t *testing.T) {
	app := testApp(t)
	seedPlan(t, app)

	out, err := executeCmd(t, app, "plan", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "mine")
}

func TestPlanRemove_UnknownPlanFails(t *testing.T) {
	app := testApp(t)
	_, err := executeCmd(t, app, "plan", "remove", "ghost")
	assert.ErrorIs(t, err, repository.ErrPlanNotFound)
}

// --- event ---

func TestEventAdd_DefaultsAndOverrides(t *testing.T) {
	app := testApp(t)
	seedPlan(t, app)

	out, err := executeCmd(t, app, "event", "add", "mine", "buy_car",
		"--set", "price=$25,000.50")
	require.NoError(t, err)
	assert.Contains(t, out, "event #1")

	plan, _, err := app.Repo.Load(context.Background(), "mine")
	require.NoError(t, err)
	require.Len(t, plan.Events, 1)

	price, ok := plan.Events[0].Parameter("price")
	require.True(t, ok)
	assert.Equal(t, domain.Number(25000.5), price)

	// The envelope-unit default provisions its envelope.
	assert.NotNil(t, plan.FindEnvelope("Checking"))
}

func TestEventAdd_UnknownTypeFails(t *testing.T) {
	app := testApp(t)
	seedPlan(t, app)

	_, err := executeCmd(t, app, "event", "add", "mine", "time_machine")
	assert.ErrorIs(t, err, planner.ErrUnknownEventType)
}

func TestEventAdd_UnderParent(t *testing.T) {
	app := testApp(t)
	seedPlan(t, app)

	_, err := executeCmd(t, app, "event", "add", "mine", "monthly_bill")
	require.NoError(t, err)
	_, err = executeCmd(t, app, "event", "add", "mine", "bill_change", "--under", "1")
	require.NoError(t, err)

	plan, _, err := app.Repo.Load(context.Background(), "mine")
	require.NoError(t, err)
	require.Len(t, plan.Events, 1)
	require.Len(t, plan.Events[0].UpdatingEvents, 1)
	assert.Equal(t, 2, plan.Events[0].UpdatingEvents[0].ID)
}

func TestEventSet_ParameterAndTitle(t *testing.T) {
	app := testApp(t)
	seedPlan(t, app)

	_, err := executeCmd(t, app, "event", "add", "mine", "buy_car")
	require.NoError(t, err)

	_, err = executeCmd(t, app, "event", "set", "mine", "1", "price", "12000",
		"--title", "First car")
	require.NoError(t, err)

	plan, _, err := app.Repo.Load(context.Background(), "mine")
	require.NoError(t, err)
	assert.Equal(t, "First car", plan.Events[0].Title)
	price, ok := plan.Events[0].Parameter("price")
	require.True(t, ok)
	assert.Equal(t, domain.Number(12000), price)
}

func TestEventSet_NothingToUpdate(t *testing.T) {
	app := testApp(t)
	seedPlan(t, app)

	_, err := executeCmd(t, app, "event", "add", "mine", "buy_car")
	require.NoError(t, err)

	_, err = executeCmd(t, app, "event", "set", "mine", "1")
	assert.Error(t, err)
}

func TestEventRemove_Cascades(t *testing.T) {
	app := testApp(t)
	seedPlan(t, app)

	_, err := executeCmd(t, app, "event", "add", "mine", "monthly_bill")
	require.NoError(t, err)
	_, err = executeCmd(t, app, "event", "add", "mine", "bill_change", "--under", "1")
	require.NoError(t, err)

	_, err = executeCmd(t, app, "event", "remove", "mine", "1")
	require.NoError(t, err)

	plan, _, err := app.Repo.Load(context.Background(), "mine")
	require.NoError(t, err)
	assert.Empty(t, plan.Events)
}

func TestEventFunction_TogglesByTitle(t *testing.T) {
	app := testApp(t)
	seedPlan(t, app)

	_, err := executeCmd(t, app, "event", "add", "mine", "buy_car")
	require.NoError(t, err)

	_, err = executeCmd(t, app, "event", "function", "mine", "1", "Loan", "on")
	require.NoError(t, err)

	plan, _, err := app.Repo.Load(context.Background(), "mine")
	require.NoError(t, err)
	fns := plan.Events[0].EventFunctions
	require.Len(t, fns, 2)
	assert.Equal(t, domain.EventFunction{Title: "Loan", Enabled: true}, fns[0])

	_, err = executeCmd(t, app, "event", "function", "mine", "1", "Mortgage", "on")
	assert.Error(t, err)
}

func TestEventRecurring_GuardsIneligibleTypes(t *testing.T) {
	app := testApp(t)
	seedPlan(t, app)

	_, err := executeCmd(t, app, "event", "add", "mine", "buy_car")
	require.NoError(t, err)

	_, err = executeCmd(t, app, "event", "recurring", "mine", "1", "on")
	assert.ErrorIs(t, err, planner.ErrNotRecurringCapable)
}

// --- coercion ---

func TestCoerceValue_PerUnit(t *testing.T) {
	app := testApp(t)

	tests := []struct {
		name      string
		eventType string
		paramType string
		raw       string
		want      domain.ParamValue
		wantErr   bool
	}{
		{"currency strips symbols", "buy_car", "price", "$1,200", domain.Number(1200), false},
		{"currency rejects words", "buy_car", "price", "lots", domain.ParamValue{}, true},
		{"date passes through", "buy_car", "start_time", "2025-06-01", domain.String("2025-06-01"), false},
		{"date offset stays numeric", "buy_car", "start_time", "90", domain.Number(90), false},
		{"date rejects garbage", "buy_car", "start_time", "someday", domain.ParamValue{}, true},
		{"days parse as float", "monthly_bill", "frequency_days", "30.44", domain.Number(30.44), false},
		{"enum accepts option", "job", "seniority", "senior", domain.String("senior"), false},
		{"enum rejects others", "job", "seniority", "intern", domain.ParamValue{}, true},
		{"envelope is free text", "buy_car", "spending_envelope", "Vacation", domain.String("Vacation"), false},
		{"unknown param falls back to number", "buy_car", "note", "99", domain.Number(99), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := app.coerceValue(tt.eventType, tt.paramType, tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseOverrides_RejectsBarePairs(t *testing.T) {
	app := testApp(t)
	_, err := parseOverrides(app, "buy_car", []string{"price"})
	assert.Error(t, err)
}

// --- envelope ---

func TestEnvelopeLifecycle(t *testing.T) {
	app := testApp(t)
	seedPlan(t, app)

	_, err := executeCmd(t, app, "envelope", "add", "mine", "Vacation",
		"--growth", "Daily Compound", "--rate", "4")
	require.NoError(t, err)

	plan, _, err := app.Repo.Load(context.Background(), "mine")
	require.NoError(t, err)
	env := plan.FindEnvelope("Vacation")
	require.NotNil(t, env)
	assert.Equal(t, domain.GrowthDailyCompound, env.Growth)
	assert.InDelta(t, 0.04, env.Rate, 1e-9)

	_, err = executeCmd(t, app, "envelope", "set", "mine", "Vacation", "--name", "Trips")
	require.NoError(t, err)
	plan, _, err = app.Repo.Load(context.Background(), "mine")
	require.NoError(t, err)
	assert.Nil(t, plan.FindEnvelope("Vacation"))
	assert.NotNil(t, plan.FindEnvelope("Trips"))

	_, err = executeCmd(t, app, "envelope", "remove", "mine", "Trips")
	require.NoError(t, err)
	plan, _, err = app.Repo.Load(context.Background(), "mine")
	require.NoError(t, err)
	assert.Nil(t, plan.FindEnvelope("Trips"))
}

func TestEnvelopeAdd_RejectsBadGrowth(t *testing.T) {
	app := testApp(t)
	seedPlan(t, app)

	_, err := executeCmd(t, app, "envelope", "add", "mine", "V", "--growth", "Exponential")
	assert.Error(t, err)
}

// --- expand / lock ---

func TestExpandJSON_EmitsOccurrences(t *testing.T) {
	app := testApp(t)
	seedPlan(t, app)

	_, err := executeCmd(t, app, "event", "add", "mine", "buy_car",
		"--set", "start_time=2020-06-01")
	require.NoError(t, err)

	out, err := executeCmd(t, app, "expand", "mine", "--json")
	require.NoError(t, err)

	var occs []expand.Occurrence
	require.NoError(t, json.Unmarshal([]byte(out), &occs))
	require.NotEmpty(t, occs)
	assert.Equal(t, "start-1", occs[0].Key)
	assert.Equal(t, "2020-06-01", occs[0].Date)
}

func TestExpandViewWindow_ValidatedAndPersisted(t *testing.T) {
	app := testApp(t)
	seedPlan(t, app)

	// A malformed window must not reach the saved document.
	_, err := executeCmd(t, app, "expand", "mine", "--from", "sometime")
	assert.Error(t, err)

	plan, _, err := app.Repo.Load(context.Background(), "mine")
	require.NoError(t, err)
	assert.Empty(t, plan.ViewStartDate)

	_, err = executeCmd(t, app, "expand", "mine",
		"--from", "2020-01-01", "--to", "2030-01-01")
	require.NoError(t, err)

	plan, _, err = app.Repo.Load(context.Background(), "mine")
	require.NoError(t, err)
	assert.Equal(t, "2020-01-01", plan.ViewStartDate)
	assert.Equal(t, "2030-01-01", plan.ViewEndDate)
}

func TestLock_ThenCompareExpand(t *testing.T) {
	app := testApp(t)
	seedPlan(t, app)

	_, err := executeCmd(t, app, "event", "add", "mine", "buy_car")
	require.NoError(t, err)

	// Compare before locking has nothing to overlay.
	_, err = executeCmd(t, app, "expand", "mine", "--compare")
	assert.Error(t, err)

	_, err = executeCmd(t, app, "lock", "mine")
	require.NoError(t, err)

	out, err := executeCmd(t, app, "expand", "mine", "--compare", "--json")
	require.NoError(t, err)

	var occs []expand.Occurrence
	require.NoError(t, json.Unmarshal([]byte(out), &occs))
	shadows := 0
	for _, o := range occs {
		if o.IsShadow {
			shadows++
		}
	}
	assert.Greater(t, shadows, 0)
}
