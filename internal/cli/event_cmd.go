package cli

import (
	"fmt"
	"strconv"
	"strings"

	"lifearc/internal/dates"
	"lifearc/internal/domain"
	"lifearc/internal/money"

	"github.com/spf13/cobra"
)

func newEventCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "event",
		Short: "Add, edit and remove plan events",
	}

	cmd.AddCommand(
		newEventAddCmd(app),
		newEventRemoveCmd(app),
		newEventSetCmd(app),
		newEventRecurringCmd(app),
		newEventFunctionCmd(app),
	)

	return cmd
}

// coerceValue turns CLI text into the stored parameter value using the
// unit the catalog declares for (eventType, paramType). The engine
// itself never coerces; this is the caller-side step.
func (a *App) coerceValue(eventType, paramType, raw string) (domain.ParamValue, error) {
	switch a.Catalog.Units(eventType, paramType) {
	case domain.UnitCurrency:
		f, err := money.ParseCurrency(raw)
		if err != nil {
			return domain.ParamValue{}, err
		}
		return domain.Number(f), nil
	case domain.UnitPercentage:
		f, err := money.ParsePercent(raw)
		if err != nil {
			return domain.ParamValue{}, err
		}
		return domain.Number(f), nil
	case domain.UnitDays:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return domain.ParamValue{}, fmt.Errorf("invalid day count %q: %w", raw, err)
		}
		return domain.Number(f), nil
	case domain.UnitDate:
		// Either an absolute date or a numeric day offset the factory
		// resolves against today.
		if _, err := dates.Parse(raw); err == nil {
			return domain.String(raw), nil
		}
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			return domain.Number(f), nil
		}
		return domain.ParamValue{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD or a day offset)", raw)
	case domain.UnitEnum:
		options := a.Catalog.Options(eventType, paramType)
		for _, opt := range options {
			if opt == raw {
				return domain.String(raw), nil
			}
		}
		return domain.ParamValue{}, fmt.Errorf("invalid option %q (want one of %s)", raw, strings.Join(options, ", "))
	case domain.UnitEnvelope:
		return domain.String(raw), nil
	default:
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			return domain.Number(f), nil
		}
		return domain.String(raw), nil
	}
}

func parseOverrides(app *App, eventType string, pairs []string) (map[string]domain.ParamValue, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	overrides := make(map[string]domain.ParamValue, len(pairs))
	for _, pair := range pairs {
		key, raw, found := strings.Cut(pair, "=")
		if !found {
			return nil, fmt.Errorf("--set wants key=value, got %q", pair)
		}
		value, err := app.coerceValue(eventType, key, raw)
		if err != nil {
			return nil, err
		}
		overrides[key] = value
	}
	return overrides, nil
}

func newEventAddCmd(app *App) *cobra.Command {
	var sets []string
	var parent int
	var replace, interactive bool
	cmd := &cobra.Command{
		Use:   "add <plan> <type>",
		Short: "Add an event from its schema type",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			planName, eventType := args[0], args[1]
			p, err := app.loadPlanner(cmd.Context(), planName)
			if err != nil {
				return err
			}

			overrides, err := parseOverrides(app, eventType, sets)
			if err != nil {
				return err
			}
			if interactive {
				overrides, err = app.runAddEventForm(eventType, overrides)
				if err != nil {
					return err
				}
			}

			var id int
			if parent != 0 {
				id, err = p.AddUpdatingEvent(parent, eventType, overrides)
			} else {
				id, err = p.AddEvent(eventType, overrides, replace)
			}
			if err != nil {
				return err
			}
			if err := app.savePlanner(cmd.Context(), planName, p); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s as event #%d\n", app.Catalog.DisplayType(eventType), id)
			if disclaimer := app.Catalog.Disclaimer(eventType); disclaimer != "" {
				fmt.Fprintln(cmd.OutOrStdout(), disclaimer)
			}
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&sets, "set", nil, "Parameter override as key=value (repeatable)")
	cmd.Flags().IntVar(&parent, "under", 0, "Add as an updating event of this parent id")
	cmd.Flags().BoolVar(&replace, "replace", false, "Remove existing events of this type first")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Fill parameters in a form")
	return cmd
}

func newEventRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <plan> <id>",
		Short: "Remove an event (cascades to its updating events)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid event id %q", args[1])
			}
			p, err := app.loadPlanner(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			p.DeleteEvent(id)
			if err := app.savePlanner(cmd.Context(), args[0], p); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed event #%d\n", id)
			return nil
		},
	}
}

func newEventSetCmd(app *App) *cobra.Command {
	var title, description string
	cmd := &cobra.Command{
		Use:   "set <plan> <id> [param value]",
		Short: "Update an event's parameter, title or description",
		Args:  cobra.RangeArgs(2, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid event id %q", args[1])
			}
			p, err := app.loadPlanner(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			changed := false
			if cmd.Flags().Changed("title") {
				if err := p.SetTitle(id, title); err != nil {
					return err
				}
				changed = true
			}
			if cmd.Flags().Changed("description") {
				if err := p.SetDescription(id, description); err != nil {
					return err
				}
				changed = true
			}
			if len(args) == 4 {
				core, _ := p.Current().FindByID(id)
				if core == nil {
					return fmt.Errorf("event %d not found", id)
				}
				value, err := app.coerceValue(core.Type, args[2], args[3])
				if err != nil {
					return err
				}
				if err := p.UpdateParameter(id, args[2], value); err != nil {
					return err
				}
				changed = true
			}
			if !changed {
				return fmt.Errorf("nothing to update: pass a param/value pair, --title or --description")
			}
			return app.savePlanner(cmd.Context(), args[0], p)
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "New event title")
	cmd.Flags().StringVar(&description, "description", "", "New event description")
	return cmd
}

func newEventFunctionCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "function <plan> <id> <title> <on|off>",
		Short: "Toggle a named event function, e.g. Loan or Depreciation",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid event id %q", args[1])
			}
			var enabled bool
			switch args[3] {
			case "on":
				enabled = true
			case "off":
				enabled = false
			default:
				return fmt.Errorf("want on or off, got %q", args[3])
			}
			p, err := app.loadPlanner(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if err := p.SetEventFunction(id, args[2], enabled); err != nil {
				return err
			}
			return app.savePlanner(cmd.Context(), args[0], p)
		},
	}
}

func newEventRecurringCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "recurring <plan> <id> <on|off>",
		Short: "Toggle an event's recurrence",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid event id %q", args[1])
			}
			var recurring bool
			switch args[2] {
			case "on":
				recurring = true
			case "off":
				recurring = false
			default:
				return fmt.Errorf("want on or off, got %q", args[2])
			}
			p, err := app.loadPlanner(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if err := p.SetRecurring(id, recurring); err != nil {
				return err
			}
			return app.savePlanner(cmd.Context(), args[0], p)
		},
	}
}
