package schema

import "lifearc/internal/domain"

// DefaultWeight is the weight assumed for event types the catalog does
// not declare a weight for.
const DefaultWeight = 100.0

// Definition returns the flattened definition for an event type, main
// or nested. The second result reports whether the type is known.
func (c *Catalog) Definition(eventType string) (*EventDef, bool) {
	e, ok := c.lookup[eventType]
	if !ok {
		return nil, false
	}
	return e.def, true
}

// ParentType returns the main event type that nests the given updating
// event type, or "" when eventType is itself a main type or unknown.
func (c *Catalog) ParentType(eventType string) string {
	return c.lookup[eventType].parentType
}

// ParamDef resolves the parameter definition for (eventType, paramType).
// The type's own parameter list is searched first; on a miss the search
// falls through to every definition's nested updating-event parameter
// lists, since updating-event parameter schemas are not duplicated per
// parent.
func (c *Catalog) ParamDef(eventType, paramType string) (*ParamDef, bool) {
	if e, ok := c.lookup[eventType]; ok {
		for i := range e.def.Parameters {
			if e.def.Parameters[i].Type == paramType {
				return &e.def.Parameters[i], true
			}
		}
	}
	for _, def := range c.Events {
		for _, ue := range def.UpdatingEvents {
			if ue == nil {
				continue
			}
			for i := range ue.Parameters {
				if ue.Parameters[i].Type == paramType {
					return &ue.Parameters[i], true
				}
			}
		}
	}
	return nil, false
}

// DisplayName returns the display name for a parameter, falling back to
// the raw parameter key when the catalog has no entry.
func (c *Catalog) DisplayName(eventType, paramType string) string {
	if d, ok := c.ParamDef(eventType, paramType); ok && d.DisplayName != "" {
		return d.DisplayName
	}
	return paramType
}

// Units returns the unit kind for a parameter, or UnitNone when the
// catalog has no entry.
func (c *Catalog) Units(eventType, paramType string) domain.UnitKind {
	if d, ok := c.ParamDef(eventType, paramType); ok {
		return d.ParameterUnits
	}
	return domain.UnitNone
}

// ParamDescription returns the description for a parameter, or "".
func (c *Catalog) ParamDescription(eventType, paramType string) string {
	if d, ok := c.ParamDef(eventType, paramType); ok {
		return d.Description
	}
	return ""
}

// Default returns the declared default value for a parameter. The
// second result is false when the catalog has no entry.
func (c *Catalog) Default(eventType, paramType string) (domain.ParamValue, bool) {
	if d, ok := c.ParamDef(eventType, paramType); ok {
		return d.Default, true
	}
	return domain.ParamValue{}, false
}

// Options returns the enum options for a parameter, or an empty list.
func (c *Catalog) Options(eventType, paramType string) []string {
	if d, ok := c.ParamDef(eventType, paramType); ok {
		return d.Options
	}
	return nil
}

// Editable reports whether a parameter is user-editable. Parameters
// default to editable when the catalog does not say otherwise.
func (c *Catalog) Editable(eventType, paramType string) bool {
	if d, ok := c.ParamDef(eventType, paramType); ok && d.Editable != nil {
		return *d.Editable
	}
	return true
}

// Weight returns the declared weight for an event type, or
// DefaultWeight when absent.
func (c *Catalog) Weight(eventType string) float64 {
	if e, ok := c.lookup[eventType]; ok && e.def.Weight != nil {
		return *e.def.Weight
	}
	return DefaultWeight
}

// CanRecur reports whether the event type is eligible for recurrence.
func (c *Catalog) CanRecur(eventType string) bool {
	e, ok := c.lookup[eventType]
	return ok && e.def.CanBeReocurring
}

// InitialRecurring returns the catalog's initial is_recurring default
// for the event type.
func (c *Catalog) InitialRecurring(eventType string) bool {
	e, ok := c.lookup[eventType]
	return ok && e.def.IsRecurring
}

// DisplayType returns the human-readable name of the event type,
// falling back to the raw type key.
func (c *Catalog) DisplayType(eventType string) string {
	if e, ok := c.lookup[eventType]; ok && e.def.DisplayType != "" {
		return e.def.DisplayType
	}
	return eventType
}

// Category returns the event type's category, or "".
func (c *Catalog) Category(eventType string) string {
	if e, ok := c.lookup[eventType]; ok {
		return e.def.Category
	}
	return ""
}

// Disclaimer returns the event type's disclaimer text, or "".
func (c *Catalog) Disclaimer(eventType string) string {
	if e, ok := c.lookup[eventType]; ok {
		return e.def.Disclaimer
	}
	return ""
}

// DisplayEvent reports whether the type should be surfaced on the
// timeline at all.
func (c *Catalog) DisplayEvent(eventType string) bool {
	e, ok := c.lookup[eventType]
	return ok && e.def.DisplayEvent
}

// OnboardingStage returns the event type's onboarding stage, or "".
func (c *Catalog) OnboardingStage(eventType string) string {
	if e, ok := c.lookup[eventType]; ok {
		return e.def.OnboardingStage
	}
	return ""
}

// FunctionParts returns the toggleable function parts declared for the
// event type, or an empty list.
func (c *Catalog) FunctionParts(eventType string) []FunctionPart {
	if e, ok := c.lookup[eventType]; ok {
		return e.def.EventFunctionParts
	}
	return nil
}

// EnvelopeTemplate returns the default-envelope template with the given
// name from the catalog's default_envelopes list.
func (c *Catalog) EnvelopeTemplate(name string) (EnvelopeTemplate, bool) {
	for _, t := range c.DefaultEnvelopes {
		if t.Name == name {
			return t, true
		}
	}
	return EnvelopeTemplate{}, false
}

// Types returns all known event types, main types first. Order within
// each group is unspecified.
func (c *Catalog) Types() []string {
	var mains, nested []string
	for t, e := range c.lookup {
		if e.parentType == "" {
			mains = append(mains, t)
		} else {
			nested = append(nested, t)
		}
	}
	return append(mains, nested...)
}
