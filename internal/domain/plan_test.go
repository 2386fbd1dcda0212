package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makePlan() *Plan {
	return &Plan{
		Title:     "Test Plan",
		BirthDate: "1990-01-01",
		Events: []Event{
			{
				EventCore: EventCore{
					ID:   1,
					Type: "job",
					Parameters: []Parameter{
						{ID: 0, Type: "salary", Value: Number(60000)},
						{ID: 1, Type: "start_time", Value: String("2020-01-01")},
					},
				},
				UpdatingEvents: []UpdatingEvent{
					{EventCore: EventCore{
						ID:   2,
						Type: "raise",
						Parameters: []Parameter{
							{ID: 0, Type: "new_salary", Value: Number(70000)},
						},
					}},
				},
			},
			{EventCore: EventCore{ID: 5, Type: "buy_car"}},
		},
		Envelopes: []Envelope{
			{Name: "Checking", Category: "cash", Growth: GrowthNone, AccountType: AccountRegular},
			{Name: "Other (cash)", Category: "cash", Growth: GrowthNone, AccountType: AccountRegular},
		},
	}
}

func TestNextEventID_SpansNestingLevels(t *testing.T) {
	p := makePlan()
	assert.Equal(t, 6, p.NextEventID(), "max id is 5 on a main event")

	p.Events[0].UpdatingEvents[0].ID = 9
	assert.Equal(t, 10, p.NextEventID(), "nested ids count toward the max")

	empty := &Plan{}
	assert.Equal(t, 1, empty.NextEventID())
}

func TestFindByID_DualResult(t *testing.T) {
	p := makePlan()

	core, parent := p.FindByID(1)
	require.NotNil(t, core)
	assert.Nil(t, parent, "main events have no parent")
	assert.Equal(t, "job", core.Type)

	core, parent = p.FindByID(2)
	require.NotNil(t, core)
	require.NotNil(t, parent, "updating events report their owner")
	assert.Equal(t, "raise", core.Type)
	assert.Equal(t, 1, parent.ID)

	core, parent = p.FindByID(404)
	assert.Nil(t, core)
	assert.Nil(t, parent)
}

func TestDeleteEvent_CascadesAndFilters(t *testing.T) {
	p := makePlan()

	require.True(t, p.DeleteEvent(1))
	assert.Len(t, p.Events, 1)
	core, _ := p.FindByID(2)
	assert.Nil(t, core, "updating events do not outlive their parent")

	p = makePlan()
	require.True(t, p.DeleteEvent(2))
	assert.Len(t, p.Events, 2)
	assert.Empty(t, p.Events[0].UpdatingEvents)

	assert.False(t, p.DeleteEvent(404), "deleting an absent id is a no-op")
	assert.Len(t, p.Events, 2)
}

func TestClone_NoSharedSubstructure(t *testing.T) {
	p := makePlan()
	d := 42.0
	p.Envelopes[0].DaysOfUsefulness = &d

	c := p.Clone()
	require.Equal(t, p, c)

	c.Events[0].Parameters[0].Value = Number(1)
	c.Events[0].UpdatingEvents[0].Parameters[0].Value = Number(1)
	c.Envelopes[0].Name = "Tampered"
	*c.Envelopes[0].DaysOfUsefulness = 7

	v, _ := p.Events[0].Parameter("salary")
	assert.Equal(t, Number(60000), v)
	v, _ = p.Events[0].UpdatingEvents[0].Parameter("new_salary")
	assert.Equal(t, Number(70000), v)
	assert.Equal(t, "Checking", p.Envelopes[0].Name)
	assert.Equal(t, 42.0, *p.Envelopes[0].DaysOfUsefulness)
}

func TestEnvelope_IsSystem(t *testing.T) {
	system := Envelope{Name: "Other (cash)", Category: "cash"}
	assert.True(t, system.IsSystem())

	regular := Envelope{Name: "Checking", Category: "cash"}
	assert.False(t, regular.IsSystem())

	// The convention binds name and category together.
	mismatched := Envelope{Name: "Other (cash)", Category: "property"}
	assert.False(t, mismatched.IsSystem())
}

func TestSetParameter_ReplacesByType(t *testing.T) {
	p := makePlan()
	core := &p.Events[0].EventCore

	assert.True(t, core.SetParameter("salary", Number(65000)))
	v, ok := core.Parameter("salary")
	require.True(t, ok)
	assert.Equal(t, Number(65000), v)
	assert.Len(t, core.Parameters, 2, "replace never grows the set")

	assert.False(t, core.SetParameter("nonexistent", Number(1)))
}
