// Package expand turns a plan's events into discrete, date-indexed
// timeline occurrences: canonical start/end markers plus synthetic
// instances for recurring events, with a zoom-driven visibility cutoff.
// Expansion is pure: it never mutates the plan and recomputes from
// scratch on every call.
package expand

import (
	"fmt"
	"math"

	"lifearc/internal/dates"
	"lifearc/internal/domain"
	"lifearc/internal/schema"
)

// Synthetic recurring instances carry fixed weights rather than the
// schema weight of their type. The 10/30 split between main and
// updating instances is a preserved product decision.
const (
	recurringMainWeight     = 10.0
	recurringUpdatingWeight = 30.0
)

// Zoom visibility tuning. An occurrence's weight is its minimum icon
// scale in percent; the effective scale grows from that minimum to full
// size along an exponential ease-in as the zoom level moves from
// MinZoom to FullGrowthZoom, and the occurrence renders only once the
// effective scale clears VisibleScaleRatio.
const (
	MinZoom           = 1.0
	FullGrowthZoom    = 8.0
	VisibleScaleRatio = 0.5
)

// Occurrence is one discrete timeline entry produced by expansion.
type Occurrence struct {
	Key       string                `json:"key"`
	EventID   int                   `json:"event_id"`
	ParentID  *int                  `json:"parent_id,omitempty"`
	Kind      domain.OccurrenceKind `json:"kind"`
	Day       int                   `json:"day"`
	Date      string                `json:"date"`
	Title     string                `json:"title"`
	EventType string                `json:"event_type"`
	Weight    float64               `json:"weight"`
	IsShadow  bool                  `json:"is_shadow,omitempty"`
}

// Options controls one expansion call.
type Options struct {
	// ZoomLevel enables the visibility cutoff. Nil means every
	// occurrence is included, which is the default for
	// non-interactive and export contexts.
	ZoomLevel *float64
}

// Expand produces the date-indexed occurrence map for a plan and, when
// lockedPlan is non-nil, its comparison snapshot. Locked-plan
// occurrences are tagged as shadow entries and get distinct display
// keys so the two plans never collide even on the same day.
//
// A malformed event (bad date string, missing start) is skipped for
// that event only; expansion of the rest of the plan always proceeds.
func Expand(plan *domain.Plan, lockedPlan *domain.Plan, catalog *schema.Catalog, opts Options) map[int][]Occurrence {
	out := make(map[int][]Occurrence)
	expandPlan(out, plan, catalog, opts, false)
	if lockedPlan != nil {
		expandPlan(out, lockedPlan, catalog, opts, true)
	}
	return out
}

func expandPlan(out map[int][]Occurrence, plan *domain.Plan, catalog *schema.Catalog, opts Options, shadow bool) {
	if plan == nil {
		return
	}
	for i := range plan.Events {
		ev := &plan.Events[i]
		expandCore(out, &ev.EventCore, nil, plan.BirthDate, catalog, opts, shadow)
		for j := range ev.UpdatingEvents {
			expandCore(out, &ev.UpdatingEvents[j].EventCore, &ev.ID, plan.BirthDate, catalog, opts, shadow)
		}
	}
}

func expandCore(out map[int][]Occurrence, core *domain.EventCore, parentID *int, birthDate string, catalog *schema.Catalog, opts Options, shadow bool) {
	if def, known := catalog.Definition(core.Type); known && !def.DisplayEvent {
		return
	}

	startDay, startOK := resolveDay(core, "start_time", birthDate)
	endDay, endOK := resolveDay(core, "end_time", birthDate)
	weight := catalog.Weight(core.Type)

	emit := func(o Occurrence) {
		if !visibleAtZoom(o.Weight, opts.ZoomLevel) {
			return
		}
		if shadow {
			o.Key += "-shadow"
			o.IsShadow = true
		}
		if date, err := dates.DateFromDays(o.Day, birthDate); err == nil {
			o.Date = date
		}
		out[o.Day] = append(out[o.Day], o)
	}

	if startOK {
		emit(Occurrence{
			Key:       fmt.Sprintf("start-%d", core.ID),
			EventID:   core.ID,
			ParentID:  parentID,
			Kind:      domain.OccurrenceStart,
			Day:       startDay,
			Title:     core.Title,
			EventType: core.Type,
			Weight:    weight,
		})
	}

	// Non-recurring-capable events always surface their end date;
	// recurring-capable events only do while actually recurring, so a
	// toggled-off event never shows a dangling end marker.
	showEnd := core.IsRecurring || !catalog.CanRecur(core.Type)
	if endOK && showEnd {
		emit(Occurrence{
			Key:       fmt.Sprintf("end-%d", core.ID),
			EventID:   core.ID,
			ParentID:  parentID,
			Kind:      domain.OccurrenceEnd,
			Day:       endDay,
			Title:     core.Title,
			EventType: core.Type,
			Weight:    weight,
		})
	}

	if !core.IsRecurring || !startOK || !endOK {
		return
	}
	freqVal, ok := core.Parameter("frequency_days")
	if !ok {
		return
	}
	freq, ok := freqVal.Float()
	if !ok || freq <= 0 {
		return
	}

	recurWeight := recurringMainWeight
	if parentID != nil {
		recurWeight = recurringUpdatingWeight
	}

	// Additive walk, not a count-based loop: fractional frequencies
	// such as the 30.44-day month accumulate without drift beyond the
	// final partial period. The end day itself is included.
	const eps = 1e-9
	k := 0
	for pos := float64(startDay) + freq; pos <= float64(endDay)+eps; pos += freq {
		k++
		emit(Occurrence{
			Key:       fmt.Sprintf("start-%d-r%d", core.ID, k),
			EventID:   core.ID,
			ParentID:  parentID,
			Kind:      domain.OccurrenceRecurring,
			Day:       int(math.Round(pos)),
			Title:     core.Title,
			EventType: core.Type,
			Weight:    recurWeight,
		})
	}
}

// resolveDay reads a date parameter and converts it to a day offset
// from birth. Absolute date strings are the stored form; a numeric
// value is accepted as an already-resolved day offset.
func resolveDay(core *domain.EventCore, paramType, birthDate string) (int, bool) {
	v, ok := core.Parameter(paramType)
	if !ok || !v.Valid() {
		return 0, false
	}
	if !v.IsStr {
		return int(math.Round(v.Num)), true
	}
	day, err := dates.DaysSinceBirth(v.Str, birthDate)
	if err != nil {
		return 0, false
	}
	return day, true
}

func visibleAtZoom(weight float64, zoom *float64) bool {
	if zoom == nil {
		return true
	}
	z := math.Min(math.Max(*zoom, MinZoom), FullGrowthZoom)
	t := (z - MinZoom) / (FullGrowthZoom - MinZoom)
	ease := 1 - math.Exp(-4*t)
	minScale := weight / 100
	scale := minScale + (1-minScale)*ease
	return scale >= VisibleScaleRatio
}
