package navigation

import (
	"fmt"

	"zoomshell/internal/domain"
)

// WindowCounter reports how many windows an app currently has open.
// The navigator only cares whether the count is greater than one.
type WindowCounter interface {
	WindowCount(appIndex int) int
}

// Publisher receives one domain event per navigation attempt. The event
// bus satisfies this; tests use a recorder.
type Publisher interface {
	Publish(event domain.DomainEvent)
}

// WindowCounterFunc adapts a function to the WindowCounter interface
type WindowCounterFunc func(appIndex int) int

func (f WindowCounterFunc) WindowCount(appIndex int) int { return f(appIndex) }

// Navigator is the zoom-level state machine. It owns its level value
// exclusively and is not safe for concurrent use; callers on multiple
// goroutines must serialize access themselves.
type Navigator struct {
	level   Level
	windows WindowCounter
	pub     Publisher
}

// New creates a navigator at the root overview. windows supplies the
// window count for the zoom-out branch; pub receives a notification for
// every attempt, including no-ops. Either may be nil.
func New(windows WindowCounter, pub Publisher) *Navigator {
	return &Navigator{
		level:   Root{},
		windows: windows,
		pub:     pub,
	}
}

// Level returns the current zoom level
func (n *Navigator) Level() Level {
	return n.level
}

// ZoomIn descends one level toward the given target. Target indices are
// stored as-is; validating them against the workspace is the caller's
// responsibility. At the deepest level the call is a reported no-op.
func (n *Navigator) ZoomIn(target int) {
	switch lvl := n.level.(type) {
	case Root:
		n.level = Sector{Sector: target}
		n.notify(domain.SectorEnteredEvent{Sector: target})
	case Sector:
		n.level = Focus{Sector: lvl.Sector, App: target}
		n.notify(domain.AppFocusedEvent{Sector: lvl.Sector, App: target})
	case Picker:
		n.level = Focus{Sector: lvl.Sector, App: lvl.App, Window: target, HasWindow: true}
		n.notify(domain.WindowSelectedEvent{App: lvl.App, Window: target})
	case Focus:
		n.notify(domain.NavigationBlockedEvent{Reason: "Already at deepest level (Focus)"})
	}
}

// ZoomOut ascends one level. Zooming out of a focused app with multiple
// windows detours through the picker; at the root the call is a
// reported no-op.
func (n *Navigator) ZoomOut() {
	switch lvl := n.level.(type) {
	case Focus:
		count := 0
		if n.windows != nil {
			count = n.windows.WindowCount(lvl.App)
		}
		if count > 1 {
			n.level = Picker{Sector: lvl.Sector, App: lvl.App}
			n.notify(domain.PickerEnteredEvent{App: lvl.App, WindowCount: count})
		} else {
			n.level = Sector{Sector: lvl.Sector}
			n.notify(domain.ReturnedToSectorEvent{Sector: lvl.Sector})
		}
	case Picker:
		n.level = Sector{Sector: lvl.Sector}
		n.notify(domain.ReturnedToSectorEvent{Sector: lvl.Sector, FromPicker: true})
	case Sector:
		n.level = Root{}
		n.notify(domain.ReturnedToRootEvent{})
	case Root:
		n.notify(domain.NavigationBlockedEvent{Reason: "Already at top level (Root)"})
	}
}

// SplitView requests a two-pane split: one pane retains the focused app,
// the other reverts to the sector view. The navigator's own level never
// changes; the viewport manager realizes the second pane. Outside of
// Focus the request is rejected.
func (n *Navigator) SplitView() {
	if lvl, ok := n.level.(Focus); ok {
		n.notify(domain.SplitRequestedEvent{Sector: lvl.Sector, App: lvl.App})
		return
	}
	n.notify(domain.SplitRejectedEvent{Level: n.level.Kind().Tag()})
}

// Status returns the human-readable current-state line
func (n *Navigator) Status() string {
	s := fmt.Sprintf("Current State: %s", n.level)
	if sector, ok := SectorIndex(n.level); ok {
		s += fmt.Sprintf(" | sector %d", sector)
	}
	if app, ok := AppIndex(n.level); ok {
		s += fmt.Sprintf(" | app %d", app)
	}
	if win, ok := WindowIndex(n.level); ok {
		s += fmt.Sprintf(" | window %d", win)
	}
	return s
}

func (n *Navigator) notify(event domain.DomainEvent) {
	if n.pub != nil {
		n.pub.Publish(event)
	}
}
