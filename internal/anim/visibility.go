// Package anim drives the popup's visibility level between hidden (0) and
// shown (1). Animations advance on tea.Tick frames and report completion with
// a DoneMsg carrying the ticket they were started with.
package anim

import (
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"github.com/google/uuid"
)

type Kind int

const (
	Spring Kind = iota
	Timed
)

func (k Kind) String() string {
	if k == Timed {
		return "timed"
	}
	return "spring"
}

// Transition describes how the level moves toward its target.
type Transition struct {
	Kind      Kind
	Duration  time.Duration
	Frequency float64
	Damping   float64
}

func SpringTransition(frequency, damping float64) Transition {
	return Transition{Kind: Spring, Frequency: frequency, Damping: damping}
}

func TimedTransition(d time.Duration) Transition {
	return Transition{Kind: Timed, Duration: d}
}

// Ticket identifies one visibility request.
type Ticket struct {
	Gesture uuid.UUID
	Seq     uint64
}

func (t Ticket) IsZero() bool {
	return t == Ticket{}
}

type FrameMsg struct {
	Ticket Ticket
}

type DoneMsg struct {
	Ticket Ticket
}

const (
	settleEpsilon = 0.001
	maxSpringTime = 5 * time.Second
)

// Visibility owns the current level. It is driven from the bubbletea update
// loop only.
type Visibility struct {
	fps      int
	level    float64
	velocity float64

	active  bool
	ticket  Ticket
	target  float64
	from    float64
	tr      Transition
	spring  harmonica.Spring
	elapsed time.Duration
}

func NewVisibility(fps int) *Visibility {
	if fps <= 0 {
		fps = 60
	}
	return &Visibility{fps: fps}
}

func (v *Visibility) Level() float64 {
	return v.level
}

// Opacity is the level clamped to [0,1]; springs may overshoot.
func (v *Visibility) Opacity() float64 {
	return math.Max(0, math.Min(1, v.level))
}

func (v *Visibility) Animating() bool {
	return v.active
}

func (v *Visibility) Ticket() Ticket {
	return v.ticket
}

func (v *Visibility) frame() time.Duration {
	return time.Second / time.Duration(v.fps)
}

// Animate starts moving toward level, replacing any running animation. The
// replaced animation never reports completion.
func (v *Visibility) Animate(t Ticket, level float64, tr Transition) tea.Cmd {
	v.active = true
	v.ticket = t
	v.target = level
	v.from = v.level
	v.tr = tr
	v.elapsed = 0
	if tr.Kind == Spring {
		v.spring = harmonica.NewSpring(harmonica.FPS(v.fps), tr.Frequency, tr.Damping)
	} else {
		v.velocity = 0
	}
	return v.tick()
}

func (v *Visibility) tick() tea.Cmd {
	t := v.ticket
	return tea.Tick(v.frame(), func(time.Time) tea.Msg {
		return FrameMsg{Ticket: t}
	})
}

// Update advances the animation by one frame.
func (v *Visibility) Update(msg tea.Msg) tea.Cmd {
	frame, ok := msg.(FrameMsg)
	if !ok || !v.active || frame.Ticket != v.ticket {
		return nil
	}
	v.elapsed += v.frame()

	var settled bool
	switch v.tr.Kind {
	case Timed:
		settled = v.stepTimed()
	default:
		settled = v.stepSpring()
	}
	if !settled {
		return v.tick()
	}

	v.level = v.target
	v.velocity = 0
	v.active = false
	t := v.ticket
	return func() tea.Msg { return DoneMsg{Ticket: t} }
}

func (v *Visibility) stepTimed() bool {
	if v.tr.Duration <= 0 || v.elapsed >= v.tr.Duration {
		return true
	}
	progress := float64(v.elapsed) / float64(v.tr.Duration)
	v.level = v.from + (v.target-v.from)*progress
	return false
}

func (v *Visibility) stepSpring() bool {
	v.level, v.velocity = v.spring.Update(v.level, v.velocity, v.target)
	if math.Abs(v.level-v.target) < settleEpsilon && math.Abs(v.velocity) < settleEpsilon {
		return true
	}
	return v.elapsed >= maxSpringTime
}
