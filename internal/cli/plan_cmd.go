package cli

import (
	"fmt"

	"lifearc/internal/cli/formatter"
	"lifearc/internal/dates"
	"lifearc/internal/domain"

	"github.com/spf13/cobra"
)

func newPlanCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Manage saved plans",
	}

	cmd.AddCommand(
		newPlanNewCmd(app),
		newPlanListCmd(app),
		newPlanShowCmd(app),
		newPlanRemoveCmd(app),
	)

	return cmd
}

func newPlanNewCmd(app *App) *cobra.Command {
	var title, birthDate string
	cmd := &cobra.Command{
		Use:   "new <name>",
		Short: "Create and save an empty plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := dates.Parse(birthDate); err != nil {
				return fmt.Errorf("--birth-date must be YYYY-MM-DD: %w", err)
			}
			if title == "" {
				title = args[0]
			}
			plan := &domain.Plan{Title: title, BirthDate: birthDate}
			if err := app.Repo.Save(cmd.Context(), args[0], plan, nil); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created plan %q\n", args[0])
			return nil
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "Plan title (defaults to the name)")
	cmd.Flags().StringVar(&birthDate, "birth-date", "", "Birth date anchoring all day math (YYYY-MM-DD)")
	cmd.MarkFlagRequired("birth-date")
	return cmd
}

func newPlanListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved plans",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			infos, err := app.Repo.List(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.PlanList(infos, app.Colored))
			return nil
		},
	}
}

func newPlanShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Show a plan's envelopes and event tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, _, err := app.Repo.Load(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.PlanSummary(plan, app.Catalog, app.Colored))
			return nil
		},
	}
}

func newPlanRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <name>",
		Short: "Delete a saved plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Repo.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted plan %q\n", args[0])
			return nil
		},
	}
}
