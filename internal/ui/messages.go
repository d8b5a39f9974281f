package ui

import (
	"time"

	"zoomshell/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// tickMsg is sent once a second to advance the status bar clock
type tickMsg time.Time

// pagerDoneMsg reports that an external pager session finished
type pagerDoneMsg struct {
	err error
}
