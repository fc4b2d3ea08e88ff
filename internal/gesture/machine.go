// Package gesture turns a press / move / release pointer stream into a
// debounced hovered item and a single commit per gesture.
//
// A Machine is not safe for concurrent use; every call is expected to come
// from the same event loop (the bubbletea Update goroutine).
package gesture

import (
	"io"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/jask/holdmenu/internal/anim"
	"github.com/jask/holdmenu/internal/layout"
)

type Phase int

const (
	Idle Phase = iota
	Tracking
)

func (p Phase) String() string {
	if p == Tracking {
		return "tracking"
	}
	return "idle"
}

type State struct {
	Phase    Phase
	Selected layout.ItemID
}

// Snapshotter is the read side of the layout registry.
type Snapshotter interface {
	Snapshot() []layout.Entry
	Lookup(id layout.ItemID) (layout.BoundingBox, bool)
}

// Presenter receives the machine's side effects. RequestVisibility must be
// answered by a later call to Machine.VisibilityDone with the same ticket.
type Presenter interface {
	RequestVisibility(t anim.Ticket, level float64, tr anim.Transition)
	Highlight(prev, next layout.ItemID)
	Commit(id layout.ItemID)
}

var (
	DefaultOpen  = anim.SpringTransition(7, 0.4)
	DefaultClose = anim.TimedTransition(200 * time.Millisecond)
)

type Option func(*Machine)

func WithOpenTransition(tr anim.Transition) Option {
	return func(m *Machine) { m.openTr = tr }
}

func WithCloseTransition(tr anim.Transition) Option {
	return func(m *Machine) { m.closeTr = tr }
}

func WithLogger(l *log.Logger) Option {
	return func(m *Machine) {
		if l != nil {
			m.log = l
		}
	}
}

type Machine struct {
	reg     Snapshotter
	out     Presenter
	log     *log.Logger
	openTr  anim.Transition
	closeTr anim.Transition

	state   State
	gesture uuid.UUID
	seq     uint64
	pending anim.Ticket
}

func New(reg Snapshotter, out Presenter, opts ...Option) *Machine {
	m := &Machine{
		reg:     reg,
		out:     out,
		log:     log.New(io.Discard, "", 0),
		openTr:  DefaultOpen,
		closeTr: DefaultClose,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Machine) State() State {
	return m.state
}

// Pending reports whether a close animation is waiting for completion.
func (m *Machine) Pending() bool {
	return !m.pending.IsZero()
}

func (m *Machine) nextTicket() anim.Ticket {
	m.seq++
	return anim.Ticket{Gesture: m.gesture, Seq: m.seq}
}

// PressStart always claims the gesture. A press that arrives while a
// previous gesture is still tracking restarts tracking; one that arrives
// while a close is pending settles that gesture first.
func (m *Machine) PressStart(p layout.Point) {
	if m.Pending() {
		m.log.Printf("gesture %s: press before close finished, settling", m.gesture)
		m.settle()
	}
	if m.state.Phase == Tracking {
		m.log.Printf("gesture %s: press while tracking, restarting", m.gesture)
		m.setSelected(layout.None)
	}

	m.gesture = uuid.New()
	m.seq = 0
	m.state = State{Phase: Tracking, Selected: layout.None}
	m.log.Printf("gesture %s: press at %d,%d", m.gesture, p.PageX, p.PageY)
	m.out.RequestVisibility(m.nextTicket(), 1, m.openTr)
}

// Move re-runs the hit test and signals only when the hovered item changes.
// Moves outside a gesture are dropped.
func (m *Machine) Move(p layout.Point) {
	if m.state.Phase != Tracking {
		return
	}
	m.setSelected(layout.HitTest(m.reg.Snapshot(), p))
}

// Release starts closing the panel. The commit is deferred until the close
// animation reports completion.
func (m *Machine) Release(p layout.Point) {
	if m.state.Phase != Tracking {
		return
	}
	m.state.Phase = Idle
	m.pending = m.nextTicket()
	m.log.Printf("gesture %s: release at %d,%d on %s", m.gesture, p.PageX, p.PageY, m.state.Selected)
	m.out.RequestVisibility(m.pending, 0, m.closeTr)
}

// VisibilityDone is the completion notification for RequestVisibility. Only
// the pending close ticket has an effect.
func (m *Machine) VisibilityDone(t anim.Ticket) {
	if t.IsZero() || t != m.pending {
		return
	}
	m.settle()
}

func (m *Machine) settle() {
	selected := m.state.Selected
	m.pending = anim.Ticket{}
	if selected != layout.None {
		if _, ok := m.reg.Lookup(selected); ok {
			m.log.Printf("gesture %s: commit %s", m.gesture, selected)
			m.out.Commit(selected)
		} else {
			m.log.Printf("gesture %s: %s no longer laid out, cancelled", m.gesture, selected)
		}
	} else {
		m.log.Printf("gesture %s: cancelled", m.gesture)
	}
	m.setSelected(layout.None)
}

func (m *Machine) setSelected(next layout.ItemID) {
	prev := m.state.Selected
	if prev == next {
		return
	}
	m.state.Selected = next
	m.out.Highlight(prev, next)
}
