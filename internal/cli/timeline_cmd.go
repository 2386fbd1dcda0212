package cli

import (
	"fmt"
	"strings"

	"lifearc/internal/cli/formatter"
	"lifearc/internal/expand"
	"lifearc/internal/planner"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newTimelineCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "timeline <plan>",
		Short: "Browse a plan's timeline interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.loadPlanner(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			m := newTimelineModel(app, args[0], p)
			final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
			if err != nil {
				return err
			}
			tm := final.(timelineModel)
			if !tm.save {
				return nil
			}
			return app.savePlanner(cmd.Context(), args[0], p)
		},
	}
}

// timelineKeyMap holds the interactive timeline's key bindings.
type timelineKeyMap struct {
	ZoomIn  key.Binding
	ZoomOut key.Binding
	Undo    key.Binding
	Redo    key.Binding
	Lock    key.Binding
	Compare key.Binding
	Quit    key.Binding
	Discard key.Binding
}

func defaultTimelineKeyMap() timelineKeyMap {
	return timelineKeyMap{
		ZoomIn:  key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "zoom in")),
		ZoomOut: key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "zoom out")),
		Undo:    key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "undo")),
		Redo:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "redo")),
		Lock:    key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "lock")),
		Compare: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "compare")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "save & quit")),
		Discard: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "quit without saving")),
	}
}

// timelineModel is the bubbletea model behind "lifearc timeline". It
// re-expands the plan after every mutation and scrolls the result in a
// viewport.
type timelineModel struct {
	app      *App
	planName string
	planner  *planner.Planner
	keys     timelineKeyMap

	zoom   float64
	vp     viewport.Model
	ready  bool
	status string
	save   bool
}

func newTimelineModel(app *App, planName string, p *planner.Planner) timelineModel {
	zoom := app.DefaultZoom
	if zoom < expand.MinZoom {
		zoom = expand.MinZoom
	}
	return timelineModel{
		app:      app,
		planName: planName,
		planner:  p,
		keys:     defaultTimelineKeyMap(),
		zoom:     zoom,
	}
}

func (m timelineModel) Init() tea.Cmd { return nil }

func (m timelineModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		headerHeight := 2
		footerHeight := 2
		if !m.ready {
			m.vp = viewport.New(msg.Width, msg.Height-headerHeight-footerHeight)
			m.ready = true
		} else {
			m.vp.Width = msg.Width
			m.vp.Height = msg.Height - headerHeight - footerHeight
		}
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.save = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Discard):
			return m, tea.Quit

		case key.Matches(msg, m.keys.ZoomIn):
			if m.zoom < expand.FullGrowthZoom {
				m.zoom++
				m.refresh()
			}
			return m, nil

		case key.Matches(msg, m.keys.ZoomOut):
			if m.zoom > expand.MinZoom {
				m.zoom--
				m.refresh()
			}
			return m, nil

		case key.Matches(msg, m.keys.Undo):
			if m.planner.Undo() {
				m.status = "undid last change"
			} else {
				m.status = "nothing to undo"
			}
			m.refresh()
			return m, nil

		case key.Matches(msg, m.keys.Redo):
			if m.planner.Redo() {
				m.status = "redid change"
			} else {
				m.status = "nothing to redo"
			}
			m.refresh()
			return m, nil

		case key.Matches(msg, m.keys.Lock):
			m.planner.LockPlan()
			m.status = "locked the working plan"
			m.refresh()
			return m, nil

		case key.Matches(msg, m.keys.Compare):
			if m.planner.Locked() == nil && !m.planner.CompareMode() {
				m.status = "no locked snapshot yet (press l first)"
				return m, nil
			}
			m.planner.SetCompareMode(!m.planner.CompareMode())
			if m.planner.CompareMode() {
				m.status = "compare on"
			} else {
				m.status = "compare off"
			}
			m.refresh()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

// refresh re-expands the plan at the current zoom and rewrites the
// viewport content.
func (m *timelineModel) refresh() {
	if !m.ready {
		return
	}
	zoom := m.zoom
	byDay := m.planner.Occurrences(&zoom)
	m.vp.SetContent(formatter.Timeline(byDay, m.planner.Current().BirthDate, m.app.Colored))
}

func (m timelineModel) View() string {
	if !m.ready {
		return "loading..."
	}

	title := m.planner.Current().Title
	if title == "" {
		title = m.planName
	}
	mode := ""
	if m.planner.CompareMode() {
		mode = "  [compare]"
	}
	header := formatter.Plain(formatter.StyleHeader,
		fmt.Sprintf("%s  zoom %.0f%s", title, m.zoom, mode), m.app.Colored)

	help := []string{}
	for _, b := range []key.Binding{
		m.keys.ZoomIn, m.keys.ZoomOut, m.keys.Undo, m.keys.Redo,
		m.keys.Lock, m.keys.Compare, m.keys.Quit, m.keys.Discard,
	} {
		help = append(help, b.Help().Key+" "+b.Help().Desc)
	}
	footer := formatter.Plain(formatter.StyleDim, strings.Join(help, " · "), m.app.Colored)
	if m.status != "" {
		footer = formatter.Plain(formatter.StyleYellow, m.status, m.app.Colored) + "\n" + footer
	} else {
		footer = "\n" + footer
	}

	return header + "\n\n" + m.vp.View() + "\n" + footer
}
