package expand

import "sort"

// Projection maps a day offset to a horizontal pixel position. It is
// supplied by the visualization layer and treated as an opaque
// monotonic mapping.
type Projection func(day int) float64

// GroupPixelWidth is the horizontal distance within which two projected
// occurrences are considered overlapping.
const GroupPixelWidth = 24.0

// Group buckets occurrences by horizontal proximity on the projected
// axis. It is a greedy single left-to-right sweep over position-sorted
// occurrences: each occurrence joins the first existing group it
// overlaps, or starts a new group. Two occurrences overlap when their
// projected positions are within width pixels; since the sweep is
// position-sorted, the member an incoming occurrence can overlap is the
// group's most recently added one. Ties keep the incoming sort order.
// This is deliberately not optimal interval clustering; the sweep order
// and the chain-growth it allows are part of the rendering contract.
func Group(occurrences []Occurrence, project Projection, width float64) [][]Occurrence {
	if width <= 0 {
		width = GroupPixelWidth
	}
	sorted := make([]Occurrence, len(occurrences))
	copy(sorted, occurrences)
	sort.SliceStable(sorted, func(i, j int) bool {
		return project(sorted[i].Day) < project(sorted[j].Day)
	})

	var groups [][]Occurrence
	for _, occ := range sorted {
		pos := project(occ.Day)
		placed := false
		for g := range groups {
			last := groups[g][len(groups[g])-1]
			if abs(pos-project(last.Day)) <= width {
				groups[g] = append(groups[g], occ)
				placed = true
				break
			}
		}
		if !placed {
			groups = append(groups, []Occurrence{occ})
		}
	}
	return groups
}

// Flatten returns the map's occurrences as a single slice ordered by
// day, with same-day entries ordered by key for determinism.
func Flatten(byDay map[int][]Occurrence) []Occurrence {
	days := make([]int, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sort.Ints(days)

	var out []Occurrence
	for _, day := range days {
		same := append([]Occurrence(nil), byDay[day]...)
		sort.Slice(same, func(i, j int) bool { return same[i].Key < same[j].Key })
		out = append(out, same...)
	}
	return out
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
