package cli

import (
	"fmt"

	"lifearc/internal/domain"
	"lifearc/internal/money"

	"github.com/spf13/cobra"
)

func newEnvelopeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "envelope",
		Short: "Manage a plan's money envelopes",
	}

	cmd.AddCommand(
		newEnvelopeAddCmd(app),
		newEnvelopeSetCmd(app),
		newEnvelopeRemoveCmd(app),
	)

	return cmd
}

func newEnvelopeAddCmd(app *App) *cobra.Command {
	var category, growth, rate string
	cmd := &cobra.Command{
		Use:   "add <plan> <name>",
		Short: "Add an envelope",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := buildEnvelope(args[1], category, growth, rate)
			if err != nil {
				return err
			}
			p, err := app.loadPlanner(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if err := p.AddEnvelope(env); err != nil {
				return err
			}
			return app.savePlanner(cmd.Context(), args[0], p)
		},
	}
	cmd.Flags().StringVar(&category, "category", "cash", "Envelope category")
	cmd.Flags().StringVar(&growth, "growth", string(domain.GrowthNone), "Growth model")
	cmd.Flags().StringVar(&rate, "rate", "0", "Yearly growth rate, e.g. 4.5")
	return cmd
}

func newEnvelopeSetCmd(app *App) *cobra.Command {
	var name, category, growth, rate string
	cmd := &cobra.Command{
		Use:   "set <plan> <name>",
		Short: "Update an envelope",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.loadPlanner(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			current := p.Current().FindEnvelope(args[1])
			if current == nil {
				return fmt.Errorf("envelope %q not found", args[1])
			}
			next := *current
			if cmd.Flags().Changed("name") {
				next.Name = name
			}
			if cmd.Flags().Changed("category") {
				next.Category = category
			}
			if cmd.Flags().Changed("growth") {
				if !domain.ValidGrowthKinds[growth] {
					return fmt.Errorf("invalid growth kind %q", growth)
				}
				next.Growth = domain.GrowthKind(growth)
			}
			if cmd.Flags().Changed("rate") {
				f, err := money.ParsePercent(rate)
				if err != nil {
					return err
				}
				next.Rate = f
			}
			if err := p.UpdateEnvelope(args[1], next); err != nil {
				return err
			}
			return app.savePlanner(cmd.Context(), args[0], p)
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "Rename the envelope")
	cmd.Flags().StringVar(&category, "category", "", "New category")
	cmd.Flags().StringVar(&growth, "growth", "", "New growth model")
	cmd.Flags().StringVar(&rate, "rate", "", "New yearly growth rate")
	return cmd
}

func newEnvelopeRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <plan> <name>",
		Short: "Remove an envelope",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.loadPlanner(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if err := p.DeleteEnvelope(args[1]); err != nil {
				return err
			}
			return app.savePlanner(cmd.Context(), args[0], p)
		},
	}
}

func buildEnvelope(name, category, growth, rate string) (domain.Envelope, error) {
	if !domain.ValidGrowthKinds[growth] {
		return domain.Envelope{}, fmt.Errorf("invalid growth kind %q", growth)
	}
	f, err := money.ParsePercent(rate)
	if err != nil {
		return domain.Envelope{}, err
	}
	return domain.Envelope{
		Name:        name,
		Category:    category,
		Growth:      domain.GrowthKind(growth),
		Rate:        f,
		AccountType: domain.AccountRegular,
	}, nil
}
