package formatter

import (
	"fmt"
	"strings"

	"lifearc/internal/dates"
	"lifearc/internal/domain"
	"lifearc/internal/expand"
)

// KindIndicator returns a colored marker for one occurrence kind.
func KindIndicator(kind domain.OccurrenceKind, colored bool) string {
	switch kind {
	case domain.OccurrenceStart:
		return Plain(StyleGreen, "▶", colored)
	case domain.OccurrenceEnd:
		return Plain(StyleRed, "■", colored)
	case domain.OccurrenceRecurring:
		return Plain(StyleBlue, "·", colored)
	default:
		return Plain(StyleDim, "?", colored)
	}
}

// Timeline renders a date-indexed occurrence map as an aligned listing,
// one line per occurrence, ordered by day.
func Timeline(byDay map[int][]expand.Occurrence, birthDate string, colored bool) string {
	flat := expand.Flatten(byDay)
	if len(flat) == 0 {
		return Plain(StyleDim, "(no occurrences)", colored) + "\n"
	}

	var b strings.Builder
	header := fmt.Sprintf("%-12s %-5s %-3s %-28s %s", "DATE", "AGE", "", "EVENT", "KEY")
	b.WriteString(Plain(StyleHeader, header, colored))
	b.WriteByte('\n')

	for _, occ := range flat {
		age := ""
		if a, err := dates.AgeFromDays(occ.Day, birthDate); err == nil {
			age = fmt.Sprintf("%d", a)
		}
		title := occ.Title
		if title == "" {
			title = occ.EventType
		}
		if occ.IsShadow {
			title += " (locked)"
		}
		line := fmt.Sprintf("%-12s %-5s %-3s %-28s %s",
			occ.Date, age, KindIndicator(occ.Kind, colored), truncate(title, 28), occ.Key)
		if occ.IsShadow {
			line = Plain(StyleDim, line, colored)
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
