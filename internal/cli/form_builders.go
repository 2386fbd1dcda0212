package cli

import (
	"fmt"
	"strconv"

	"lifearc/internal/cli/formatter"
	"lifearc/internal/dates"
	"lifearc/internal/domain"
	"lifearc/internal/money"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// lifearcHuhTheme styles huh forms with the formatter palette.
func lifearcHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// runAddEventForm collects parameter values for an event type in a huh
// form, seeded with any overrides already given on the command line.
// Non-editable parameters are skipped; enum parameters become selects.
func (a *App) runAddEventForm(eventType string, seed map[string]domain.ParamValue) (map[string]domain.ParamValue, error) {
	def, ok := a.Catalog.Definition(eventType)
	if !ok {
		return nil, fmt.Errorf("unknown event type %q", eventType)
	}

	overrides := make(map[string]domain.ParamValue, len(def.Parameters))
	for k, v := range seed {
		overrides[k] = v
	}

	var fields []huh.Field
	inputs := make(map[string]*string, len(def.Parameters))
	for _, pd := range def.Parameters {
		if pd.Editable != nil && !*pd.Editable {
			continue
		}
		initial := pd.Default.Text()
		if v, ok := overrides[pd.Type]; ok {
			initial = v.Text()
		}
		value := new(string)
		*value = initial
		inputs[pd.Type] = value

		if pd.ParameterUnits == domain.UnitEnum && len(pd.Options) > 0 {
			opts := make([]huh.Option[string], len(pd.Options))
			for i, o := range pd.Options {
				opts[i] = huh.NewOption(o, o)
			}
			fields = append(fields, huh.NewSelect[string]().
				Title(pd.DisplayName).
				Description(pd.Description).
				Options(opts...).
				Value(value))
			continue
		}

		fields = append(fields, huh.NewInput().
			Title(pd.DisplayName).
			Description(pd.Description).
			Placeholder(initial).
			Value(value).
			Validate(validatorFor(pd.ParameterUnits)))
	}
	if len(fields) == 0 {
		return overrides, nil
	}

	form := huh.NewForm(huh.NewGroup(fields...)).
		WithTheme(lifearcHuhTheme()).WithShowHelp(false)
	if err := form.Run(); err != nil {
		return nil, err
	}

	for _, pd := range def.Parameters {
		value, ok := inputs[pd.Type]
		if !ok || *value == "" {
			continue
		}
		coerced, err := a.coerceValue(eventType, pd.Type, *value)
		if err != nil {
			return nil, err
		}
		overrides[pd.Type] = coerced
	}
	return overrides, nil
}

func validatorFor(unit domain.UnitKind) func(string) error {
	switch unit {
	case domain.UnitDate:
		return func(s string) error {
			if s == "" {
				return nil
			}
			if _, err := dates.Parse(s); err == nil {
				return nil
			}
			if _, err := strconv.ParseFloat(s, 64); err == nil {
				return nil
			}
			return fmt.Errorf("want YYYY-MM-DD or a day offset")
		}
	case domain.UnitCurrency:
		return func(s string) error {
			if s == "" {
				return nil
			}
			_, err := money.ParseCurrency(s)
			return err
		}
	case domain.UnitPercentage, domain.UnitDays:
		return func(s string) error {
			if s == "" {
				return nil
			}
			if _, err := strconv.ParseFloat(s, 64); err == nil {
				return nil
			}
			return fmt.Errorf("want a number")
		}
	default:
		return func(string) error { return nil }
	}
}
