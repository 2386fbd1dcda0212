// Package cli wires the planning engine to a cobra command tree. Each
// one-shot command loads a named plan document, applies the requested
// operation and saves the result; the timeline command opens an
// interactive session where undo/redo and zoom live.
package cli

import (
	"context"
	"time"

	"lifearc/internal/planner"
	"lifearc/internal/repository"
	"lifearc/internal/schema"

	"github.com/spf13/cobra"
)

// App holds everything CLI commands need.
type App struct {
	Repo        repository.PlanRepo
	Catalog     *schema.Catalog
	Today       time.Time
	HistoryCap  int
	DefaultZoom float64
	Colored     bool
	Observer    planner.MutationObserver
}

// NewRootCmd creates the top-level "lifearc" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "lifearc",
		Short: "Long-horizon financial plan editor",
	}

	root.AddCommand(
		newPlanCmd(app),
		newEventCmd(app),
		newEnvelopeCmd(app),
		newExpandCmd(app),
		newLockCmd(app),
		newTimelineCmd(app),
	)

	return root
}

// loadPlanner opens the named plan document as an editing session.
func (a *App) loadPlanner(ctx context.Context, name string) (*planner.Planner, error) {
	plan, locked, err := a.Repo.Load(ctx, name)
	if err != nil {
		return nil, err
	}
	opts := []planner.Option{
		planner.WithHistoryCap(a.HistoryCap),
		planner.WithObserver(a.Observer),
	}
	if locked != nil {
		opts = append(opts, planner.WithLockedPlan(locked))
	}
	return planner.New(a.Catalog, plan, a.Today, opts...), nil
}

// savePlanner writes the session's current and locked plans back.
func (a *App) savePlanner(ctx context.Context, name string, p *planner.Planner) error {
	return a.Repo.Save(ctx, name, p.Current(), p.Locked())
}
