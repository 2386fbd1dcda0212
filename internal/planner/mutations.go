package planner

import (
	"fmt"
	"time"

	"lifearc/internal/domain"
)

// DeleteEvent removes the event with the given id from the current
// plan. Deleting a main event cascades to its updating events; deleting
// an updating event filters it out of its parent. Deletion is
// idempotent: an absent id is a no-op that leaves the plan reference
// and history untouched.
func (p *Planner) DeleteEvent(id int) {
	start := time.Now()
	next := p.current.Clone()
	if !next.DeleteEvent(id) {
		p.observe("delete_event", start, nil, map[string]any{"id": id, "missing": true})
		return
	}
	p.commit(next)
	p.observe("delete_event", start, nil, map[string]any{"id": id})
}

// UpdateParameter replaces the value of one parameter on the event or
// updating event carrying id. Unit coercion (percentage to fraction,
// currency to cents) is the caller's responsibility; this method only
// refuses non-finite numbers so NaN never lands in a plan document.
func (p *Planner) UpdateParameter(id int, paramType string, value domain.ParamValue) error {
	start := time.Now()
	err := p.updateParameter(id, paramType, value)
	p.observe("update_parameter", start, err, map[string]any{"id": id, "parameter": paramType})
	return err
}

func (p *Planner) updateParameter(id int, paramType string, value domain.ParamValue) error {
	if !value.Valid() {
		return fmt.Errorf("%w: parameter %q", ErrInvalidValue, paramType)
	}
	next := p.current.Clone()
	core, _ := next.FindByID(id)
	if core == nil {
		return fmt.Errorf("%w: id %d", ErrEventNotFound, id)
	}
	if !core.SetParameter(paramType, value) {
		core.Parameters = append(core.Parameters, domain.Parameter{
			ID:    len(core.Parameters),
			Type:  paramType,
			Value: value,
		})
	}
	p.commit(next)
	return nil
}

// SetTitle updates the user-editable title of an event or updating
// event.
func (p *Planner) SetTitle(id int, title string) error {
	return p.setCoreField("set_title", id, func(core *domain.EventCore) error {
		core.Title = title
		return nil
	})
}

// SetDescription updates the user-editable description of an event or
// updating event.
func (p *Planner) SetDescription(id int, description string) error {
	return p.setCoreField("set_description", id, func(core *domain.EventCore) error {
		core.Description = description
		return nil
	})
}

// SetRecurring toggles an event's recurrence. Enabling recurrence on a
// type the schema declares non-recurring-capable is rejected.
func (p *Planner) SetRecurring(id int, recurring bool) error {
	return p.setCoreField("set_recurring", id, func(core *domain.EventCore) error {
		if recurring && !p.catalog.CanRecur(core.Type) {
			return fmt.Errorf("%w: %q", ErrNotRecurringCapable, core.Type)
		}
		core.IsRecurring = recurring
		return nil
	})
}

// SetEventFunction flips the named event-function toggle on an event or
// updating event.
func (p *Planner) SetEventFunction(id int, title string, enabled bool) error {
	return p.setCoreField("set_event_function", id, func(core *domain.EventCore) error {
		if !core.SetFunction(title, enabled) {
			return fmt.Errorf("event function %q not found on event %d", title, id)
		}
		return nil
	})
}

func (p *Planner) setCoreField(name string, id int, mutate func(*domain.EventCore) error) error {
	start := time.Now()
	err := p.applyCoreField(id, mutate)
	p.observe(name, start, err, map[string]any{"id": id})
	return err
}

func (p *Planner) applyCoreField(id int, mutate func(*domain.EventCore) error) error {
	next := p.current.Clone()
	core, _ := next.FindByID(id)
	if core == nil {
		return fmt.Errorf("%w: id %d", ErrEventNotFound, id)
	}
	if err := mutate(core); err != nil {
		return err
	}
	p.commit(next)
	return nil
}

// AddEnvelope appends a new envelope to the current plan. Names are
// unique within a plan.
func (p *Planner) AddEnvelope(env domain.Envelope) error {
	start := time.Now()
	err := p.addEnvelope(env)
	p.observe("add_envelope", start, err, map[string]any{"name": env.Name})
	return err
}

func (p *Planner) addEnvelope(env domain.Envelope) error {
	if p.current.FindEnvelope(env.Name) != nil {
		return fmt.Errorf("%w: %q", ErrDuplicateEnvelope, env.Name)
	}
	next := p.current.Clone()
	next.Envelopes = append(next.Envelopes, env)
	p.commit(next)
	return nil
}

// UpdateEnvelope replaces the envelope with the given name. System
// "Other (<category>)" envelopes cannot be renamed; their other fields
// stay editable.
func (p *Planner) UpdateEnvelope(name string, env domain.Envelope) error {
	start := time.Now()
	err := p.updateEnvelope(name, env)
	p.observe("update_envelope", start, err, map[string]any{"name": name})
	return err
}

func (p *Planner) updateEnvelope(name string, env domain.Envelope) error {
	next := p.current.Clone()
	existing := next.FindEnvelope(name)
	if existing == nil {
		return fmt.Errorf("%w: %q", ErrEnvelopeNotFound, name)
	}
	if existing.IsSystem() && env.Name != existing.Name {
		return fmt.Errorf("%w: %q", ErrEnvelopeReadOnly, name)
	}
	if env.Name != name && next.FindEnvelope(env.Name) != nil {
		return fmt.Errorf("%w: %q", ErrDuplicateEnvelope, env.Name)
	}
	*existing = env
	p.commit(next)
	return nil
}

// DeleteEnvelope removes the envelope with the given name. System
// envelopes are non-deletable.
func (p *Planner) DeleteEnvelope(name string) error {
	start := time.Now()
	err := p.deleteEnvelope(name)
	p.observe("delete_envelope", start, err, map[string]any{"name": name})
	return err
}

func (p *Planner) deleteEnvelope(name string) error {
	next := p.current.Clone()
	for i := range next.Envelopes {
		if next.Envelopes[i].Name != name {
			continue
		}
		if next.Envelopes[i].IsSystem() {
			return fmt.Errorf("%w: %q", ErrEnvelopeReadOnly, name)
		}
		next.Envelopes = append(next.Envelopes[:i], next.Envelopes[i+1:]...)
		p.commit(next)
		return nil
	}
	return fmt.Errorf("%w: %q", ErrEnvelopeNotFound, name)
}
