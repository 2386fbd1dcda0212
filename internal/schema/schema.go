// Package schema reads the external event-type catalog. The catalog is
// a read-only input: it declares each event type's parameters, defaults
// and recurrence eligibility, and the engine consults it through the
// typed accessors in lookup.go.
package schema

import (
	"encoding/json"
	"fmt"
	"os"

	"lifearc/internal/domain"
)

// Catalog is the parsed schema file plus a flattened lookup table over
// main and nested updating-event definitions, built once at load time.
type Catalog struct {
	Events           map[string]*EventDef `json:"events"`
	DefaultEnvelopes []EnvelopeTemplate   `json:"default_envelopes,omitempty"`

	lookup map[string]catalogEntry
}

type catalogEntry struct {
	def        *EventDef
	parentType string // "" for main event types
}

// EventDef describes one event type. Nested updating-event definitions
// share the same shape.
type EventDef struct {
	Type               string         `json:"type,omitempty"`
	DisplayType        string         `json:"display_type"`
	Category           string         `json:"category"`
	Weight             *float64       `json:"weight,omitempty"`
	Parameters         []ParamDef     `json:"parameters"`
	UpdatingEvents     []*EventDef    `json:"updating_events,omitempty"`
	CanBeReocurring    bool           `json:"can_be_reocurring"`
	IsRecurring        bool           `json:"is_recurring"`
	Disclaimer         string         `json:"disclaimer,omitempty"`
	DisplayEvent       bool           `json:"display_event"`
	EventFunctionParts []FunctionPart `json:"event_functions_parts,omitempty"`
	OnboardingStage    string         `json:"onboarding_stage,omitempty"`
}

// ParamDef describes one parameter of an event type.
type ParamDef struct {
	Type           string            `json:"type"`
	DisplayName    string            `json:"display_name"`
	ParameterUnits domain.UnitKind   `json:"parameter_units"`
	Description    string            `json:"description,omitempty"`
	Default        domain.ParamValue `json:"default"`
	Options        []string          `json:"options,omitempty"`
	Editable       *bool             `json:"editable,omitempty"`
}

// FunctionPart describes one toggleable event function.
type FunctionPart struct {
	Title        string `json:"title"`
	Description  string `json:"description,omitempty"`
	Icon         string `json:"icon,omitempty"`
	DefaultState bool   `json:"default_state"`
}

// EnvelopeTemplate is an auto-provisionable envelope from the catalog's
// default_envelopes list.
type EnvelopeTemplate struct {
	Name             string             `json:"name"`
	Category         string             `json:"category"`
	Growth           domain.GrowthKind  `json:"growth"`
	Rate             float64            `json:"rate"`
	AccountType      domain.AccountType `json:"account_type"`
	DaysOfUsefulness *float64           `json:"days_of_usefulness,omitempty"`
}

// ToEnvelope materializes the template into a plan envelope.
func (t EnvelopeTemplate) ToEnvelope() domain.Envelope {
	env := domain.Envelope{
		Name:        t.Name,
		Category:    t.Category,
		Growth:      t.Growth,
		Rate:        t.Rate,
		AccountType: t.AccountType,
	}
	if t.DaysOfUsefulness != nil {
		d := *t.DaysOfUsefulness
		env.DaysOfUsefulness = &d
	}
	return env
}

// Load reads and parses a schema catalog JSON file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading schema catalog: %w", err)
	}
	return Parse(data)
}

// Parse parses a schema catalog from JSON and builds the lookup table.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing schema catalog: %w", err)
	}
	c.buildLookup()
	return &c, nil
}

// New builds a catalog from already-constructed definitions. Intended
// for tests and embedded defaults.
func New(events map[string]*EventDef, defaultEnvelopes []EnvelopeTemplate) *Catalog {
	c := &Catalog{Events: events, DefaultEnvelopes: defaultEnvelopes}
	c.buildLookup()
	return c
}

func (c *Catalog) buildLookup() {
	c.lookup = make(map[string]catalogEntry, len(c.Events)*2)
	for key, def := range c.Events {
		if def == nil {
			continue
		}
		if def.Type == "" {
			def.Type = key
		}
		c.lookup[key] = catalogEntry{def: def}
		for _, ue := range def.UpdatingEvents {
			if ue == nil || ue.Type == "" {
				continue
			}
			// First definition wins when two parents nest the same type.
			if _, exists := c.lookup[ue.Type]; !exists {
				c.lookup[ue.Type] = catalogEntry{def: ue, parentType: key}
			}
		}
	}
}
