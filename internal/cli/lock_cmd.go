package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLockCmd(app *App) *cobra.Command {
	var copyOnly bool
	cmd := &cobra.Command{
		Use:   "lock <plan>",
		Short: "Swap the working plan with its locked snapshot",
		Long: `Locks the working plan. The first lock snapshots the working plan;
later locks swap the working plan and the snapshot, so the previously
locked scenario becomes editable again. With --copy the working plan
only overwrites the snapshot, without swapping.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.loadPlanner(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if copyOnly {
				p.CopyPlanToLock()
			} else {
				p.LockPlan()
			}
			if err := app.savePlanner(cmd.Context(), args[0], p); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Locked plan %q\n", args[0])
			return nil
		},
	}
	cmd.Flags().BoolVar(&copyOnly, "copy", false, "Copy the working plan into the snapshot without swapping")
	return cmd
}
