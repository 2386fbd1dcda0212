package formatter

import (
	"fmt"
	"strings"

	"lifearc/internal/domain"
	"lifearc/internal/money"
	"lifearc/internal/repository"
	"lifearc/internal/schema"
)

// PlanSummary renders a plan's header fields and event tree.
func PlanSummary(plan *domain.Plan, catalog *schema.Catalog, colored bool) string {
	var b strings.Builder
	b.WriteString(Plain(StyleHeader, plan.Title, colored))
	b.WriteByte('\n')
	b.WriteString(fmt.Sprintf("Born %s · inflation %s · retirement goal %s\n",
		plan.BirthDate,
		money.FormatPercent(plan.InflationRate),
		money.FormatCurrency(plan.RetirementGoal)))

	if len(plan.Envelopes) > 0 {
		b.WriteString(Plain(StyleBold, "Envelopes:", colored))
		b.WriteByte('\n')
		for _, env := range plan.Envelopes {
			marker := ""
			if env.IsSystem() {
				marker = Plain(StyleDim, " (system)", colored)
			}
			b.WriteString(fmt.Sprintf("  %s [%s, %s]%s\n", env.Name, env.Category, env.Growth, marker))
		}
	}

	b.WriteString(Plain(StyleBold, "Events:", colored))
	b.WriteByte('\n')
	if len(plan.Events) == 0 {
		b.WriteString(Plain(StyleDim, "  (none)", colored))
		b.WriteByte('\n')
		return b.String()
	}
	for i := range plan.Events {
		ev := &plan.Events[i]
		b.WriteString(fmt.Sprintf("  #%d %s %s\n", ev.ID,
			Plain(StyleFg, ev.Title, colored),
			Plain(StyleDim, eventDetail(&ev.EventCore, catalog), colored)))
		for j := range ev.UpdatingEvents {
			ue := &ev.UpdatingEvents[j]
			b.WriteString(fmt.Sprintf("    └ #%d %s %s\n", ue.ID,
				ue.Title,
				Plain(StyleDim, eventDetail(&ue.EventCore, catalog), colored)))
		}
	}
	return b.String()
}

func eventDetail(core *domain.EventCore, catalog *schema.Catalog) string {
	parts := []string{core.Type}
	if core.IsRecurring {
		parts = append(parts, "recurring")
	}
	for _, param := range core.Parameters {
		switch catalog.Units(core.Type, param.Type) {
		case domain.UnitCurrency:
			if f, ok := param.Value.Float(); ok {
				parts = append(parts, fmt.Sprintf("%s=%s", param.Type, money.FormatCurrency(f)))
			}
		case domain.UnitDate:
			parts = append(parts, fmt.Sprintf("%s=%s", param.Type, param.Value.Text()))
		}
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// PlanList renders saved-plan listing rows.
func PlanList(infos []repository.PlanInfo, colored bool) string {
	if len(infos) == 0 {
		return Plain(StyleDim, "(no saved plans)", colored) + "\n"
	}
	var b strings.Builder
	b.WriteString(Plain(StyleHeader, fmt.Sprintf("%-20s %-28s %-8s %s", "NAME", "TITLE", "LOCKED", "UPDATED"), colored))
	b.WriteByte('\n')
	for _, info := range infos {
		locked := ""
		if info.HasLocked {
			locked = "yes"
		}
		b.WriteString(fmt.Sprintf("%-20s %-28s %-8s %s\n",
			info.Name, truncate(info.Title, 28), locked, info.UpdatedAt.Format("2006-01-02 15:04")))
	}
	return b.String()
}
