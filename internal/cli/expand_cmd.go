package cli

import (
	"encoding/json"
	"fmt"

	"lifearc/internal/cli/formatter"
	"lifearc/internal/dates"
	"lifearc/internal/expand"

	"github.com/spf13/cobra"
)

func newExpandCmd(app *App) *cobra.Command {
	var zoom float64
	var from, to string
	var compare, asJSON bool
	cmd := &cobra.Command{
		Use:   "expand <plan>",
		Short: "Expand a plan into its timeline occurrences",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.loadPlanner(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if compare {
				if p.Locked() == nil {
					return fmt.Errorf("plan %q has no locked snapshot to compare against", args[0])
				}
				p.SetCompareMode(true)
			}

			var zoomArg *float64
			if cmd.Flags().Changed("zoom") {
				zoomArg = &zoom
			}
			byDay := p.Occurrences(zoomArg)

			// The view window is remembered on the document so the
			// next session opens where this one left off.
			if from != "" || to != "" {
				for _, d := range []string{from, to} {
					if d == "" {
						continue
					}
					if _, err := dates.Parse(d); err != nil {
						return fmt.Errorf("view window dates must be YYYY-MM-DD: %w", err)
					}
				}
				p.SetViewWindow(from, to)
				if err := app.savePlanner(cmd.Context(), args[0], p); err != nil {
					return err
				}
			}

			if asJSON {
				occs := expand.Flatten(byDay)
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(occs)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.Timeline(byDay, p.Current().BirthDate, app.Colored))
			return nil
		},
	}
	cmd.Flags().Float64Var(&zoom, "zoom", 0, "Zoom level; low zoom hides low-weight occurrences")
	cmd.Flags().StringVar(&from, "from", "", "Remember this view window start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "Remember this view window end (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&compare, "compare", false, "Overlay the locked snapshot as shadow occurrences")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit occurrences as JSON")
	return cmd
}
