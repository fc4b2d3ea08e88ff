package anim

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func newTicket(seq uint64) Ticket {
	return Ticket{Gesture: uuid.New(), Seq: seq}
}

// run feeds frames until the animation settles and returns the frame count
// and the message produced by the final command.
func run(t *testing.T, v *Visibility, ticket Ticket, limit int) (int, any) {
	t.Helper()
	for i := 1; i <= limit; i++ {
		cmd := v.Update(FrameMsg{Ticket: ticket})
		if cmd == nil {
			t.Fatalf("frame %d returned nil command", i)
		}
		if !v.Animating() {
			return i, cmd()
		}
	}
	t.Fatalf("animation did not settle within %d frames", limit)
	return 0, nil
}

func TestTimedCloseIsLinear(t *testing.T) {
	v := NewVisibility(50)
	v.level = 1
	ticket := newTicket(1)
	if cmd := v.Animate(ticket, 0, TimedTransition(200*time.Millisecond)); cmd == nil {
		t.Fatal("Animate returned nil command")
	}

	v.Update(FrameMsg{Ticket: ticket})
	if got := v.Level(); got < 0.89 || got > 0.91 {
		t.Fatalf("level after 1 frame = %v, want 0.9", got)
	}
	v.Update(FrameMsg{Ticket: ticket})
	if got := v.Level(); got < 0.79 || got > 0.81 {
		t.Fatalf("level after 2 frames = %v, want 0.8", got)
	}

	frames, msg := run(t, v, ticket, 100)
	if frames != 8 {
		t.Fatalf("remaining frames = %d, want 8 (10 total at 50fps)", frames)
	}
	done, ok := msg.(DoneMsg)
	if !ok || done.Ticket != ticket {
		t.Fatalf("final msg = %#v, want DoneMsg for ticket", msg)
	}
	if v.Level() != 0 {
		t.Fatalf("level = %v, want 0", v.Level())
	}
}

func TestSpringOpenSettlesAtOne(t *testing.T) {
	v := NewVisibility(60)
	ticket := newTicket(1)
	v.Animate(ticket, 1, SpringTransition(7, 0.4))

	overshoot := false
	for i := 0; i < 1000 && v.Animating(); i++ {
		cmd := v.Update(FrameMsg{Ticket: ticket})
		if v.Level() > 1 {
			overshoot = true
		}
		if !v.Animating() {
			if _, ok := cmd().(DoneMsg); !ok {
				t.Fatal("settled spring did not emit DoneMsg")
			}
		}
	}
	if v.Animating() {
		t.Fatal("spring never settled")
	}
	if !overshoot {
		t.Fatal("under-damped spring should overshoot")
	}
	if v.Level() != 1 || v.Opacity() != 1 {
		t.Fatalf("level = %v opacity = %v, want 1", v.Level(), v.Opacity())
	}
}

func TestOpacityClamps(t *testing.T) {
	v := NewVisibility(60)
	v.level = 1.2
	if v.Opacity() != 1 {
		t.Fatalf("opacity = %v, want 1", v.Opacity())
	}
	v.level = -0.1
	if v.Opacity() != 0 {
		t.Fatalf("opacity = %v, want 0", v.Opacity())
	}
}

func TestStaleFramesIgnored(t *testing.T) {
	v := NewVisibility(60)
	first := newTicket(1)
	second := newTicket(2)
	v.Animate(first, 1, SpringTransition(7, 0.4))
	v.Animate(second, 0, TimedTransition(100*time.Millisecond))

	if cmd := v.Update(FrameMsg{Ticket: first}); cmd != nil {
		t.Fatal("frame for replaced animation should be ignored")
	}
	if v.Ticket() != second {
		t.Fatal("ticket should be the latest request")
	}
	if cmd := v.Update("not a frame"); cmd != nil {
		t.Fatal("unrelated msg should be ignored")
	}
}

func TestZeroDurationCompletesOnFirstFrame(t *testing.T) {
	v := NewVisibility(60)
	v.level = 1
	ticket := newTicket(1)
	v.Animate(ticket, 0, TimedTransition(0))
	frames, msg := run(t, v, ticket, 5)
	if frames != 1 {
		t.Fatalf("frames = %d, want 1", frames)
	}
	if _, ok := msg.(DoneMsg); !ok {
		t.Fatalf("msg = %#v, want DoneMsg", msg)
	}
}

func TestIdleVisibilityIgnoresFrames(t *testing.T) {
	v := NewVisibility(0)
	if cmd := v.Update(FrameMsg{}); cmd != nil {
		t.Fatal("idle visibility should ignore frames")
	}
	if v.fps != 60 {
		t.Fatalf("fps default = %d, want 60", v.fps)
	}
}
