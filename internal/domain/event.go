package domain

// Parameter is one typed value on an event. Type is the effective key
// within one event's parameter set; the numeric ID is only a rendering
// and ordering handle and is reassigned when parameters are rebuilt.
type Parameter struct {
	ID    int        `json:"id"`
	Type  string     `json:"type"`
	Value ParamValue `json:"value"`
}

// EventFunction is a named on/off toggle materialized from the schema
// catalog's function-parts list.
type EventFunction struct {
	Title   string `json:"title"`
	Enabled bool   `json:"enabled"`
}

// EventCore is the shape shared by main events and updating events.
// Mutation operations resolve an id to an EventCore regardless of
// nesting level and edit it in place.
type EventCore struct {
	ID             int             `json:"id"`
	Type           string          `json:"type"`
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	IsRecurring    bool            `json:"is_recurring"`
	Parameters     []Parameter     `json:"parameters"`
	EventFunctions []EventFunction `json:"event_functions,omitempty"`
}

// Event is a main, top-level financial action.
type Event struct {
	EventCore
	UpdatingEvents []UpdatingEvent `json:"updating_events,omitempty"`
}

// UpdatingEvent is a dependent modifier exclusively owned by one parent
// Event. It has the same shape as Event minus nested children.
type UpdatingEvent struct {
	EventCore
}

// Parameter returns the value for the given parameter type.
func (c *EventCore) Parameter(paramType string) (ParamValue, bool) {
	for i := range c.Parameters {
		if c.Parameters[i].Type == paramType {
			return c.Parameters[i].Value, true
		}
	}
	return ParamValue{}, false
}

// SetParameter replaces the value of the parameter matching paramType.
// It reports whether a matching parameter existed.
func (c *EventCore) SetParameter(paramType string, value ParamValue) bool {
	for i := range c.Parameters {
		if c.Parameters[i].Type == paramType {
			c.Parameters[i].Value = value
			return true
		}
	}
	return false
}

// SetFunction flips the named event-function toggle. It reports whether
// the toggle existed.
func (c *EventCore) SetFunction(title string, enabled bool) bool {
	for i := range c.EventFunctions {
		if c.EventFunctions[i].Title == title {
			c.EventFunctions[i].Enabled = enabled
			return true
		}
	}
	return false
}

func (c *EventCore) clone() EventCore {
	out := *c
	out.Parameters = make([]Parameter, len(c.Parameters))
	copy(out.Parameters, c.Parameters)
	out.EventFunctions = make([]EventFunction, len(c.EventFunctions))
	copy(out.EventFunctions, c.EventFunctions)
	return out
}

// Clone returns a deep copy of the event with no shared substructure.
func (e *Event) Clone() Event {
	out := Event{EventCore: e.EventCore.clone()}
	out.UpdatingEvents = make([]UpdatingEvent, len(e.UpdatingEvents))
	for i := range e.UpdatingEvents {
		out.UpdatingEvents[i] = UpdatingEvent{EventCore: e.UpdatingEvents[i].EventCore.clone()}
	}
	return out
}
