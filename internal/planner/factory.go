package planner

import (
	"fmt"
	"math"
	"time"

	"lifearc/internal/dates"
	"lifearc/internal/domain"
	"lifearc/internal/schema"
)

// AddEvent constructs a new main event of the given type from its
// schema definition and appends it to the current plan.
//
// Overrides take precedence over schema defaults per parameter type.
// Date parameters whose resolved value is still numeric are treated as
// day offsets from today and stored as absolute date strings. Envelope
// parameters whose default names an envelope the plan does not have yet
// auto-provision it from the catalog's default-envelope templates.
// With replaceExisting, all current events of the type are removed
// first, giving the one-instance-per-type pattern onboarding flows use.
//
// The new event's id is returned for immediate follow-up, e.g. opening
// its edit form.
func (p *Planner) AddEvent(eventType string, overrides map[string]domain.ParamValue, replaceExisting bool) (int, error) {
	start := time.Now()
	id, err := p.addEvent(eventType, overrides, replaceExisting)
	p.observe("add_event", start, err, map[string]any{"event_type": eventType})
	return id, err
}

func (p *Planner) addEvent(eventType string, overrides map[string]domain.ParamValue, replaceExisting bool) (int, error) {
	def, ok := p.catalog.Definition(eventType)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownEventType, eventType)
	}

	next := p.current.Clone()
	if replaceExisting {
		kept := next.Events[:0]
		for i := range next.Events {
			if next.Events[i].Type != eventType {
				kept = append(kept, next.Events[i])
			}
		}
		next.Events = kept
	}

	p.provisionEnvelopes(next, def)

	params, err := p.buildParameters(def, overrides, p.todayDayFor(next))
	if err != nil {
		return 0, err
	}

	id := next.NextEventID()
	ev := domain.Event{EventCore: domain.EventCore{
		ID:             id,
		Type:           eventType,
		Title:          def.DisplayType,
		IsRecurring:    def.IsRecurring,
		Parameters:     params,
		EventFunctions: materializeFunctions(def),
	}}
	next.Events = append(next.Events, ev)

	p.commit(next)
	return id, nil
}

// AddUpdatingEvent constructs a new updating event under the given
// parent. Its date parameters resolve relative to the parent's
// start_time rather than today.
func (p *Planner) AddUpdatingEvent(parentID int, eventType string, overrides map[string]domain.ParamValue) (int, error) {
	start := time.Now()
	id, err := p.addUpdatingEvent(parentID, eventType, overrides)
	p.observe("add_updating_event", start, err, map[string]any{
		"event_type": eventType,
		"parent_id":  parentID,
	})
	return id, err
}

func (p *Planner) addUpdatingEvent(parentID int, eventType string, overrides map[string]domain.ParamValue) (int, error) {
	def, ok := p.catalog.Definition(eventType)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownEventType, eventType)
	}

	next := p.current.Clone()
	parent := next.FindEvent(parentID)
	if parent == nil {
		return 0, fmt.Errorf("%w: parent id %d", ErrEventNotFound, parentID)
	}

	p.provisionEnvelopes(next, def)

	base := p.todayDayFor(next)
	if v, ok := parent.Parameter("start_time"); ok {
		if day, err := dates.DaysSinceBirth(v.Text(), next.BirthDate); err == nil {
			base = day
		}
	}

	params, err := p.buildParameters(def, overrides, base)
	if err != nil {
		return 0, err
	}

	id := next.NextEventID()
	ue := domain.UpdatingEvent{EventCore: domain.EventCore{
		ID:             id,
		Type:           eventType,
		Title:          def.DisplayType,
		IsRecurring:    def.IsRecurring,
		Parameters:     params,
		EventFunctions: materializeFunctions(def),
	}}
	parent.UpdatingEvents = append(parent.UpdatingEvents, ue)

	p.commit(next)
	return id, nil
}

// buildParameters materializes the parameter sequence for a definition:
// caller override, else schema default; numeric date values become
// absolute date strings offset from baseDay.
func (p *Planner) buildParameters(def *schema.EventDef, overrides map[string]domain.ParamValue, baseDay int) ([]domain.Parameter, error) {
	params := make([]domain.Parameter, 0, len(def.Parameters))
	for i, pd := range def.Parameters {
		value, overridden := overrides[pd.Type]
		if !overridden {
			value = pd.Default
		}
		if !value.Valid() {
			return nil, fmt.Errorf("%w: parameter %q", ErrInvalidValue, pd.Type)
		}
		if pd.ParameterUnits == domain.UnitDate && !value.IsStr {
			day := baseDay + int(math.Round(value.Num))
			dateStr, err := dates.DateFromDays(day, p.current.BirthDate)
			if err != nil {
				return nil, fmt.Errorf("resolving date parameter %q: %w", pd.Type, err)
			}
			value = domain.String(dateStr)
		}
		params = append(params, domain.Parameter{ID: i, Type: pd.Type, Value: value})
	}
	return params, nil
}

// provisionEnvelopes materializes, from the catalog's default-envelope
// templates, any envelope a definition's envelope-unit defaults name
// but the plan does not have yet.
func (p *Planner) provisionEnvelopes(plan *domain.Plan, def *schema.EventDef) {
	for _, pd := range def.Parameters {
		if pd.ParameterUnits != domain.UnitEnvelope || !pd.Default.IsStr {
			continue
		}
		name := pd.Default.Str
		if name == "" || plan.FindEnvelope(name) != nil {
			continue
		}
		if tmpl, ok := p.catalog.EnvelopeTemplate(name); ok {
			plan.Envelopes = append(plan.Envelopes, tmpl.ToEnvelope())
		}
	}
}

func materializeFunctions(def *schema.EventDef) []domain.EventFunction {
	if len(def.EventFunctionParts) == 0 {
		return nil
	}
	fns := make([]domain.EventFunction, 0, len(def.EventFunctionParts))
	for _, part := range def.EventFunctionParts {
		fns = append(fns, domain.EventFunction{Title: part.Title, Enabled: part.DefaultState})
	}
	return fns
}

// todayDayFor returns today's day offset for the given plan's anchor.
func (p *Planner) todayDayFor(plan *domain.Plan) int {
	day, err := dates.DaysSinceBirth(p.today.Format(dates.Layout), plan.BirthDate)
	if err != nil {
		return 0
	}
	return day
}
