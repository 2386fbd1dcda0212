package planner

import "errors"

var (
	// ErrUnknownEventType means the schema catalog has no entry for a
	// requested event type. The operation fails; the plan is untouched.
	ErrUnknownEventType = errors.New("unknown event type")

	// ErrEventNotFound means no main or updating event carries the
	// requested id.
	ErrEventNotFound = errors.New("event not found")

	// ErrInvalidValue means a parameter update carried a NaN or
	// infinite number. Callers must resolve to a defined value or omit
	// the update.
	ErrInvalidValue = errors.New("parameter value must be finite")

	// ErrNotRecurringCapable means the schema declares the event type
	// ineligible for recurrence.
	ErrNotRecurringCapable = errors.New("event type cannot be recurring")

	// ErrEnvelopeReadOnly means the target is a system-generated
	// "Other (<category>)" envelope, which cannot be renamed or deleted.
	ErrEnvelopeReadOnly = errors.New("envelope is read-only")

	// ErrEnvelopeNotFound means no envelope carries the requested name.
	ErrEnvelopeNotFound = errors.New("envelope not found")

	// ErrDuplicateEnvelope means an envelope with that name already
	// exists; envelope names are unique within a plan.
	ErrDuplicateEnvelope = errors.New("envelope already exists")
)
