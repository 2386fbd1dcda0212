package domain

import "fmt"

// Plan is the root document: a user's long-horizon financial plan.
// All day-offset math is anchored to BirthDate.
type Plan struct {
	Title              string     `json:"title"`
	BirthDate          string     `json:"birth_date"`
	InflationRate      float64    `json:"inflation_rate"`
	AdjustForInflation bool       `json:"adjust_for_inflation"`
	RetirementGoal     float64    `json:"retirement_goal"`
	Events             []Event    `json:"events"`
	Envelopes          []Envelope `json:"envelopes"`
	ViewStartDate      string     `json:"view_start_date,omitempty"`
	ViewEndDate        string     `json:"view_end_date,omitempty"`
}

// Envelope is a named account or bucket that events reference by name.
type Envelope struct {
	Name             string      `json:"name"`
	Category         string      `json:"category"`
	Growth           GrowthKind  `json:"growth"`
	Rate             float64     `json:"rate"`
	AccountType      AccountType `json:"account_type"`
	DaysOfUsefulness *float64    `json:"days_of_usefulness,omitempty"`
}

// IsSystem reports whether the envelope is a system-generated catch-all.
// Those follow the "Other (<category>)" naming convention and are
// non-deletable and non-renamable regardless of account type.
func (e *Envelope) IsSystem() bool {
	return e.Name == fmt.Sprintf("Other (%s)", e.Category)
}

// NextEventID returns max(all event and updating-event ids)+1, or 1 for
// a plan with no events. Ids are drawn from this single plan-scoped
// counter so they stay unique across nesting levels.
func (p *Plan) NextEventID() int {
	max := 0
	for i := range p.Events {
		if p.Events[i].ID > max {
			max = p.Events[i].ID
		}
		for j := range p.Events[i].UpdatingEvents {
			if p.Events[i].UpdatingEvents[j].ID > max {
				max = p.Events[i].UpdatingEvents[j].ID
			}
		}
	}
	return max + 1
}

// FindByID locates an event or updating event by id. Main events are
// searched first, then each main event's updating events. The second
// result is the owning parent event, nil when the match is itself a
// main event. Both results are nil when the id is absent.
func (p *Plan) FindByID(id int) (*EventCore, *Event) {
	for i := range p.Events {
		if p.Events[i].ID == id {
			return &p.Events[i].EventCore, nil
		}
	}
	for i := range p.Events {
		for j := range p.Events[i].UpdatingEvents {
			if p.Events[i].UpdatingEvents[j].ID == id {
				return &p.Events[i].UpdatingEvents[j].EventCore, &p.Events[i]
			}
		}
	}
	return nil, nil
}

// FindEvent returns the main event with the given id, or nil.
func (p *Plan) FindEvent(id int) *Event {
	for i := range p.Events {
		if p.Events[i].ID == id {
			return &p.Events[i]
		}
	}
	return nil
}

// DeleteEvent removes the event with the given id. A main event is
// removed outright together with its updating events; otherwise the id
// is filtered out of whichever parent owns it. Deleting an absent id is
// a no-op. It reports whether anything was removed.
func (p *Plan) DeleteEvent(id int) bool {
	for i := range p.Events {
		if p.Events[i].ID == id {
			p.Events = append(p.Events[:i], p.Events[i+1:]...)
			return true
		}
	}
	for i := range p.Events {
		ues := p.Events[i].UpdatingEvents
		for j := range ues {
			if ues[j].ID == id {
				p.Events[i].UpdatingEvents = append(ues[:j], ues[j+1:]...)
				return true
			}
		}
	}
	return false
}

// FindEnvelope returns the envelope with the given name, or nil.
func (p *Plan) FindEnvelope(name string) *Envelope {
	for i := range p.Envelopes {
		if p.Envelopes[i].Name == name {
			return &p.Envelopes[i]
		}
	}
	return nil
}

// Clone returns a deep copy of the plan. No mutable substructure is
// shared with the receiver, so the copy and the original can be edited
// independently.
func (p *Plan) Clone() *Plan {
	out := *p
	out.Events = make([]Event, len(p.Events))
	for i := range p.Events {
		out.Events[i] = p.Events[i].Clone()
	}
	out.Envelopes = make([]Envelope, len(p.Envelopes))
	for i := range p.Envelopes {
		env := p.Envelopes[i]
		if env.DaysOfUsefulness != nil {
			d := *env.DaysOfUsefulness
			env.DaysOfUsefulness = &d
		}
		out.Envelopes[i] = env
	}
	return &out
}
