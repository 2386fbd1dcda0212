// Package testutil provides shared fixtures for engine tests.
package testutil

import (
	"lifearc/internal/domain"
	"lifearc/internal/schema"
)

// Plan options
type PlanOption func(*domain.Plan)

func WithBirthDate(d string) PlanOption {
	return func(p *domain.Plan) {
		p.BirthDate = d
	}
}

func WithEvent(ev domain.Event) PlanOption {
	return func(p *domain.Plan) {
		p.Events = append(p.Events, ev)
	}
}

func WithEnvelope(env domain.Envelope) PlanOption {
	return func(p *domain.Plan) {
		p.Envelopes = append(p.Envelopes, env)
	}
}

// NewTestPlan builds a plan anchored to a fixed birth date unless
// overridden.
func NewTestPlan(title string, opts ...PlanOption) *domain.Plan {
	p := &domain.Plan{
		Title:     title,
		BirthDate: "1990-01-01",
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// NewTestEvent builds a main event with start/end date parameters given
// as absolute date strings.
func NewTestEvent(id int, eventType, start, end string, recurring bool) domain.Event {
	params := []domain.Parameter{}
	if start != "" {
		params = append(params, domain.Parameter{ID: 0, Type: "start_time", Value: domain.String(start)})
	}
	if end != "" {
		params = append(params, domain.Parameter{ID: 1, Type: "end_time", Value: domain.String(end)})
	}
	return domain.Event{EventCore: domain.EventCore{
		ID:          id,
		Type:        eventType,
		Title:       eventType,
		IsRecurring: recurring,
		Parameters:  params,
	}}
}

// NewTestCatalog builds a small catalog covering the shapes the engine
// cares about: a one-shot purchase, a recurring bill with a nested
// raise-style updating event, and an income type that references a
// default envelope.
func NewTestCatalog() *schema.Catalog {
	editableFalse := false
	lowWeight := 40.0

	return schema.New(map[string]*schema.EventDef{
		"buy_car": {
			DisplayType:  "Buy a Car",
			Category:     "purchase",
			DisplayEvent: true,
			Parameters: []schema.ParamDef{
				{Type: "price", DisplayName: "Price", ParameterUnits: domain.UnitCurrency, Default: domain.Number(30000)},
				{Type: "start_time", DisplayName: "Purchase Date", ParameterUnits: domain.UnitDate, Default: domain.Number(0)},
				{Type: "end_time", DisplayName: "Sell Date", ParameterUnits: domain.UnitDate, Default: domain.Number(3650)},
				{Type: "spending_envelope", DisplayName: "Paid From", ParameterUnits: domain.UnitEnvelope, Default: domain.String("Checking")},
			},
			EventFunctionParts: []schema.FunctionPart{
				{Title: "Loan", Description: "Finance with a loan", DefaultState: false},
				{Title: "Depreciation", DefaultState: true},
			},
		},
		"monthly_bill": {
			DisplayType:     "Monthly Bill",
			Category:        "expense",
			DisplayEvent:    true,
			CanBeReocurring: true,
			IsRecurring:     true,
			Weight:          &lowWeight,
			Parameters: []schema.ParamDef{
				{Type: "amount", DisplayName: "Amount", ParameterUnits: domain.UnitCurrency, Default: domain.Number(100)},
				{Type: "start_time", DisplayName: "First Payment", ParameterUnits: domain.UnitDate, Default: domain.Number(0)},
				{Type: "end_time", DisplayName: "Last Payment", ParameterUnits: domain.UnitDate, Default: domain.Number(365)},
				{Type: "frequency_days", DisplayName: "Frequency", ParameterUnits: domain.UnitDays, Default: domain.Number(30.44)},
			},
			UpdatingEvents: []*schema.EventDef{
				{
					Type:         "bill_change",
					DisplayType:  "Bill Change",
					Category:     "expense",
					DisplayEvent: true,
					Parameters: []schema.ParamDef{
						{Type: "new_amount", DisplayName: "New Amount", ParameterUnits: domain.UnitCurrency, Default: domain.Number(150)},
						{Type: "start_time", DisplayName: "Effective Date", ParameterUnits: domain.UnitDate, Default: domain.Number(180)},
					},
				},
			},
		},
		"job": {
			DisplayType:     "Job",
			Category:        "income",
			DisplayEvent:    true,
			CanBeReocurring: true,
			IsRecurring:     true,
			Disclaimer:      "Salary projections are estimates.",
			OnboardingStage: "income",
			Parameters: []schema.ParamDef{
				{Type: "salary", DisplayName: "Salary", ParameterUnits: domain.UnitCurrency, Default: domain.Number(60000)},
				{Type: "start_time", DisplayName: "Start Date", ParameterUnits: domain.UnitDate, Default: domain.Number(0)},
				{Type: "end_time", DisplayName: "End Date", ParameterUnits: domain.UnitDate, Default: domain.Number(3650)},
				{Type: "frequency_days", DisplayName: "Pay Frequency", ParameterUnits: domain.UnitDays, Default: domain.Number(14)},
				{Type: "pay_envelope", DisplayName: "Paid Into", ParameterUnits: domain.UnitEnvelope, Default: domain.String("Checking")},
				{Type: "seniority", DisplayName: "Seniority", ParameterUnits: domain.UnitEnum, Default: domain.String("mid"), Options: []string{"junior", "mid", "senior"}, Editable: &editableFalse},
			},
		},
		"hidden_marker": {
			DisplayType:  "Hidden Marker",
			Category:     "internal",
			DisplayEvent: false,
			Parameters: []schema.ParamDef{
				{Type: "start_time", DisplayName: "Date", ParameterUnits: domain.UnitDate, Default: domain.Number(0)},
			},
		},
	}, []schema.EnvelopeTemplate{
		{Name: "Checking", Category: "cash", Growth: domain.GrowthNone, AccountType: domain.AccountRegular},
		{Name: "Savings", Category: "cash", Growth: domain.GrowthYearlyCompound, Rate: 0.04, AccountType: domain.AccountRegular},
		{Name: "Other (cash)", Category: "cash", Growth: domain.GrowthNone, AccountType: domain.AccountRegular},
	})
}
