package tui

import (
	"fmt"
	"io"
	"log"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/holdmenu/internal/anim"
	"github.com/jask/holdmenu/internal/config"
	"github.com/jask/holdmenu/internal/gesture"
	"github.com/jask/holdmenu/internal/layout"
)

// CommitMsg is emitted once per gesture that ends on an item.
type CommitMsg struct {
	Item layout.ItemID
}

// App is the bubbletea model hosting the thumbnail and its popup card.
type App struct {
	cfg      config.Config
	theme    theme
	keys     keyMap
	help     help.Model
	logger   *log.Logger
	onCommit func(layout.ItemID)

	width  int
	height int
	geo    geometry

	registry *layout.Registry
	measure  map[layout.ItemID]func(layout.BoundingBox)
	machine  *gesture.Machine
	vis      *anim.Visibility

	highlighted layout.ItemID
	redraws     int
	status      string
	cmds        []tea.Cmd
}

type Option func(*App)

// WithLogger routes app and gesture logs to l.
func WithLogger(l *log.Logger) Option {
	return func(a *App) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithCommitHandler installs the downstream action dispatcher.
func WithCommitHandler(fn func(layout.ItemID)) Option {
	return func(a *App) { a.onCommit = fn }
}

func New(cfg config.Config, opts ...Option) *App {
	a := &App{
		cfg:      cfg,
		theme:    newTheme(cfg.Theme),
		keys:     newKeyMap(),
		help:     help.New(),
		logger:   log.New(io.Discard, "", 0),
		registry: layout.NewRegistry(),
		vis:      anim.NewVisibility(cfg.Animation.FPS),
		status:   "Hold the picture, drag onto an action, let go.",
	}
	for _, opt := range opts {
		opt(a)
	}

	a.measure = make(map[layout.ItemID]func(layout.BoundingBox), len(layout.Items()))
	for _, id := range layout.Items() {
		a.measure[id] = a.registry.Measure(id)
	}

	a.machine = gesture.New(a.registry, a,
		gesture.WithOpenTransition(anim.SpringTransition(cfg.Animation.SpringFrequency, cfg.Animation.SpringDamping)),
		gesture.WithCloseTransition(anim.TimedTransition(cfg.Animation.CloseDuration())),
		gesture.WithLogger(a.logger),
	)
	return a
}

func (a *App) Init() tea.Cmd {
	return nil
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(m, a.keys.Quit) {
			return a, tea.Quit
		}
	case tea.WindowSizeMsg:
		a.relayout(m.Width, m.Height)
	case tea.MouseMsg:
		a.handleMouse(m)
	case anim.FrameMsg:
		a.queue(a.vis.Update(m))
	case anim.DoneMsg:
		a.machine.VisibilityDone(m.Ticket)
	case CommitMsg:
		if a.onCommit != nil {
			a.onCommit(m.Item)
		}
	}
	return a, a.flush()
}

func (a *App) handleMouse(m tea.MouseMsg) {
	p := layout.Point{PageX: m.X, PageY: m.Y}
	switch m.Action {
	case tea.MouseActionPress:
		if m.Button != tea.MouseButtonLeft || !a.claims(p) {
			return
		}
		a.machine.PressStart(p)
	case tea.MouseActionMotion:
		a.machine.Move(p)
	case tea.MouseActionRelease:
		a.machine.Release(p)
	}
}

// claims decides whether a press starts a gesture. The machine itself accepts
// every press it is given.
func (a *App) claims(p layout.Point) bool {
	if a.cfg.Gesture.Claim == config.ClaimAnywhere {
		return true
	}
	return a.geo.Thumb.Contains(p)
}

// relayout recomputes geometry and reports every footer item's box through
// its measure callback. Items that no longer fit are forgotten.
func (a *App) relayout(width, height int) {
	a.width, a.height = width, height
	a.geo = computeGeometry(width, height, a.cfg.Panel.WidthPct, a.cfg.Panel.HeightPct)

	placed := make(map[layout.ItemID]bool, len(a.geo.Items))
	for _, cell := range a.geo.Items {
		a.measure[cell.ID](cell.Box)
		placed[cell.ID] = true
	}
	for _, id := range layout.Items() {
		if !placed[id] {
			a.registry.Forget(id)
		}
	}
	a.logger.Printf("layout %dx%d: %d items measured", width, height, len(a.geo.Items))
}

func (a *App) queue(cmd tea.Cmd) {
	if cmd != nil {
		a.cmds = append(a.cmds, cmd)
	}
}

func (a *App) flush() tea.Cmd {
	cmds := a.cmds
	a.cmds = nil
	switch len(cmds) {
	case 0:
		return nil
	case 1:
		return cmds[0]
	}
	return tea.Batch(cmds...)
}

// gesture.Presenter

func (a *App) RequestVisibility(t anim.Ticket, level float64, tr anim.Transition) {
	a.queue(a.vis.Animate(t, level, tr))
}

func (a *App) Highlight(prev, next layout.ItemID) {
	a.highlighted = next
	a.redraws++
	a.logger.Printf("highlight %s -> %s", prev, next)
}

func (a *App) Commit(id layout.ItemID) {
	a.status = fmt.Sprintf("You released on %s!", id)
	a.logger.Printf("commit %s", id)
	a.queue(func() tea.Msg { return CommitMsg{Item: id} })
}

// Registry exposes the measured layout, mainly for tests and diagnostics.
func (a *App) Registry() *layout.Registry {
	return a.registry
}

func (a *App) Gesture() gesture.State {
	return a.machine.State()
}

func (a *App) Status() string {
	return a.status
}
