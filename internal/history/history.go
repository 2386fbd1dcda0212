// Package history keeps a bounded linear sequence of whole-plan
// snapshots with a current pointer, backing undo and redo.
package history

import "lifearc/internal/domain"

// DefaultCap is the maximum number of snapshots retained. Once the cap
// is exceeded the oldest entries are silently dropped; this is the only
// place plan data is permanently lost.
const DefaultCap = 100

// Stack is a linear undo/redo history over Plan snapshots. Entries are
// immutable: Push stores a deep clone and Undo/Redo hand back clones,
// so no caller mutation can reach back into the history.
type Stack struct {
	entries []*domain.Plan
	index   int
	cap     int
}

// New returns an empty history bounded to max snapshots. A max of zero
// or less means DefaultCap.
func New(max int) *Stack {
	if max <= 0 {
		max = DefaultCap
	}
	return &Stack{index: -1, cap: max}
}

// Push records plan as the new current snapshot. Any redo entries past
// the current pointer are discarded first.
func (s *Stack) Push(plan *domain.Plan) {
	s.entries = s.entries[:s.index+1]
	s.entries = append(s.entries, plan.Clone())
	if len(s.entries) > s.cap {
		drop := len(s.entries) - s.cap
		s.entries = append([]*domain.Plan(nil), s.entries[drop:]...)
	}
	s.index = len(s.entries) - 1
}

// Undo moves the pointer back one snapshot and returns a clone of it.
// At the start of history it returns (nil, false) and changes nothing.
func (s *Stack) Undo() (*domain.Plan, bool) {
	if s.index <= 0 {
		return nil, false
	}
	s.index--
	return s.entries[s.index].Clone(), true
}

// Redo moves the pointer forward one snapshot and returns a clone of
// it. At the end of history it returns (nil, false) and changes nothing.
func (s *Stack) Redo() (*domain.Plan, bool) {
	if s.index >= len(s.entries)-1 {
		return nil, false
	}
	s.index++
	return s.entries[s.index].Clone(), true
}

// Current returns a clone of the snapshot at the pointer, or nil for an
// empty history.
func (s *Stack) Current() *domain.Plan {
	if s.index < 0 {
		return nil
	}
	return s.entries[s.index].Clone()
}

// Len returns the number of retained snapshots.
func (s *Stack) Len() int { return len(s.entries) }

// CanUndo reports whether Undo would move the pointer.
func (s *Stack) CanUndo() bool { return s.index > 0 }

// CanRedo reports whether Redo would move the pointer.
func (s *Stack) CanRedo() bool { return s.index < len(s.entries)-1 }
