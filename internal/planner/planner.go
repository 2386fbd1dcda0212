// Package planner owns the editable plan and its locked comparison
// snapshot, applies every mutation, and versions the editable plan
// through a bounded undo/redo history. All operations are synchronous
// and atomic: the full next state is computed on a clone before it
// replaces the current plan and lands in history, so a failed mutation
// leaves both untouched.
package planner

import (
	"time"

	"lifearc/internal/domain"
	"lifearc/internal/expand"
	"lifearc/internal/history"
	"lifearc/internal/schema"
)

// Planner coordinates the current plan, the locked comparison plan and
// the undo history. "Today" is supplied at construction so nothing in
// the engine reads the wall clock.
type Planner struct {
	current   *domain.Plan
	locked    *domain.Plan
	catalog   *schema.Catalog
	hist      *history.Stack
	today     time.Time
	compare   bool
	baselined bool
	observer  MutationObserver
}

// Option configures a Planner.
type Option func(*Planner)

// WithHistoryCap bounds the undo history to max snapshots.
func WithHistoryCap(max int) Option {
	return func(p *Planner) { p.hist = history.New(max) }
}

// WithObserver installs a mutation observer.
func WithObserver(obs MutationObserver) Option {
	return func(p *Planner) {
		if obs != nil {
			p.observer = obs
		}
	}
}

// WithLockedPlan seeds the comparison snapshot, e.g. from a loaded
// document.
func WithLockedPlan(locked *domain.Plan) Option {
	return func(p *Planner) {
		if locked != nil {
			p.locked = locked.Clone()
			p.baselined = true
		}
	}
}

// New creates a planner over plan. The initial plan is recorded as the
// first history snapshot, so a single undo after one mutation restores
// it.
func New(catalog *schema.Catalog, plan *domain.Plan, today time.Time, opts ...Option) *Planner {
	p := &Planner{
		current:  plan.Clone(),
		catalog:  catalog,
		today:    today,
		observer: NoopObserver{},
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.hist == nil {
		p.hist = history.New(history.DefaultCap)
	}
	p.hist.Push(p.current)
	return p
}

// Current returns the editable plan. Callers must treat it as
// read-only; every edit goes through a planner operation.
func (p *Planner) Current() *domain.Plan { return p.current }

// Locked returns the comparison snapshot, or nil when none was taken.
func (p *Planner) Locked() *domain.Plan { return p.locked }

// Catalog returns the schema catalog the planner consults.
func (p *Planner) Catalog() *schema.Catalog { return p.catalog }

// CompareMode reports whether comparison against the locked plan is on.
func (p *Planner) CompareMode() bool { return p.compare }

// commit replaces the current plan with next and records it in history.
func (p *Planner) commit(next *domain.Plan) {
	p.current = next
	p.hist.Push(next)
}

func (p *Planner) observe(name string, start time.Time, err error, fields map[string]any) {
	p.observer.ObserveMutation(MutationEvent{
		Name:      name,
		Duration:  time.Since(start),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
		StartedAt: start,
	})
}

// Undo steps the current plan back one snapshot. Past the start of
// history it is a no-op and reports false.
func (p *Planner) Undo() bool {
	plan, ok := p.hist.Undo()
	if !ok {
		return false
	}
	p.current = plan
	return true
}

// Redo steps the current plan forward one snapshot. Past the end of
// history it is a no-op and reports false.
func (p *Planner) Redo() bool {
	plan, ok := p.hist.Redo()
	if !ok {
		return false
	}
	p.current = plan
	return true
}

// CanUndo reports whether Undo would change the current plan.
func (p *Planner) CanUndo() bool { return p.hist.CanUndo() }

// CanRedo reports whether Redo would change the current plan.
func (p *Planner) CanRedo() bool { return p.hist.CanRedo() }

// LockPlan swaps the current and locked plans. Both sides are deep
// copies, so edits to the new current plan can never leak into the
// snapshot it replaced. With no locked plan yet it degenerates to
// CopyPlanToLock. The swap changes the current document and is
// therefore recorded in history.
func (p *Planner) LockPlan() {
	start := time.Now()
	if p.locked == nil {
		p.locked = p.current.Clone()
		p.baselined = true
		p.observe("lock_plan", start, nil, nil)
		return
	}
	next := p.locked.Clone()
	p.locked = p.current.Clone()
	p.commit(next)
	p.baselined = true
	p.observe("lock_plan", start, nil, nil)
}

// CopyPlanToLock deep-copies the current plan into the locked slot
// without swapping, baselining a comparison snapshot. The current plan
// is unchanged, so history does not advance.
func (p *Planner) CopyPlanToLock() {
	start := time.Now()
	p.locked = p.current.Clone()
	p.baselined = true
	p.observe("copy_plan_to_lock", start, nil, nil)
}

// SetCompareMode toggles comparison. Entering compare mode without a
// prior lock or copy baselines one automatically so comparison is never
// against a stale snapshot.
func (p *Planner) SetCompareMode(enabled bool) {
	if enabled && !p.baselined {
		p.CopyPlanToLock()
	}
	p.compare = enabled
}

// SetViewWindow records the last-used visualization window on the
// current plan. View state is ephemeral and does not advance history.
func (p *Planner) SetViewWindow(startDate, endDate string) {
	p.current.ViewStartDate = startDate
	p.current.ViewEndDate = endDate
}

// Occurrences expands the current plan (and the locked plan when
// compare mode is on) into date-indexed timeline occurrences. A nil
// zoom disables the visibility cutoff.
func (p *Planner) Occurrences(zoom *float64) map[int][]expand.Occurrence {
	var locked *domain.Plan
	if p.compare {
		locked = p.locked
	}
	return expand.Expand(p.current, locked, p.catalog, expand.Options{ZoomLevel: zoom})
}
