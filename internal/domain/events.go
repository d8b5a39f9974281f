package domain

import "fmt"

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSectorEntered     EventType = "SectorEntered"
	EventAppFocused        EventType = "AppFocused"
	EventWindowSelected    EventType = "WindowSelected"
	EventPickerEntered     EventType = "PickerEntered"
	EventReturnedToSector  EventType = "ReturnedToSector"
	EventReturnedToRoot    EventType = "ReturnedToRoot"
	EventNavigationBlocked EventType = "NavigationBlocked"
	EventSplitRequested    EventType = "SplitRequested"
	EventSplitRejected     EventType = "SplitRejected"
	EventSplitCollapsed    EventType = "SplitCollapsed"
	EventWorkspaceLoaded   EventType = "WorkspaceLoaded"
	EventConfigLoaded      EventType = "ConfigLoaded"
	EventConfigSaved       EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// TransitionEvent is a domain event produced by a navigation attempt.
// Every attempt, including blocked no-ops, yields exactly one.
type TransitionEvent interface {
	DomainEvent
	// Message returns the human-readable status line for the attempt
	Message() string
}

// SectorEnteredEvent is emitted when zooming from the root overview into a sector
type SectorEnteredEvent struct {
	Sector int
}

func (e SectorEnteredEvent) Type() EventType { return EventSectorEntered }
func (e SectorEnteredEvent) Message() string {
	return fmt.Sprintf("[Zoom In] Entering Sector %d", e.Sector)
}

// AppFocusedEvent is emitted when zooming from a sector onto an app
type AppFocusedEvent struct {
	Sector int
	App    int
}

func (e AppFocusedEvent) Type() EventType { return EventAppFocused }
func (e AppFocusedEvent) Message() string {
	return fmt.Sprintf("[Zoom In] Focusing on App %d", e.App)
}

// WindowSelectedEvent is emitted when a window is chosen from the picker
type WindowSelectedEvent struct {
	App    int
	Window int
}

func (e WindowSelectedEvent) Type() EventType { return EventWindowSelected }
func (e WindowSelectedEvent) Message() string {
	return fmt.Sprintf("[Zoom In] Selected Window %d from Picker", e.Window)
}

// PickerEnteredEvent is emitted when zooming out of an app that has
// multiple open windows
type PickerEnteredEvent struct {
	App         int
	WindowCount int
}

func (e PickerEnteredEvent) Type() EventType { return EventPickerEntered }
func (e PickerEnteredEvent) Message() string {
	return fmt.Sprintf("[Zoom Out] %d windows open, entering Window Picker", e.WindowCount)
}

// ReturnedToSectorEvent is emitted when zooming out lands back on the sector view
type ReturnedToSectorEvent struct {
	Sector     int
	FromPicker bool
}

func (e ReturnedToSectorEvent) Type() EventType { return EventReturnedToSector }
func (e ReturnedToSectorEvent) Message() string {
	if e.FromPicker {
		return "[Zoom Out] Returning to Sector View from Picker"
	}
	return "[Zoom Out] Returning to Sector View"
}

// ReturnedToRootEvent is emitted when zooming out to the root overview
type ReturnedToRootEvent struct{}

func (e ReturnedToRootEvent) Type() EventType { return EventReturnedToRoot }
func (e ReturnedToRootEvent) Message() string {
	return "[Zoom Out] Returning to Root Overview"
}

// NavigationBlockedEvent is emitted when a zoom attempt hits a boundary
// and degrades to a no-op
type NavigationBlockedEvent struct {
	Reason string
}

func (e NavigationBlockedEvent) Type() EventType { return EventNavigationBlocked }
func (e NavigationBlockedEvent) Message() string {
	return "[Navigate] " + e.Reason
}

// SplitRequestedEvent is emitted when a split is requested from a focused app.
// The navigator itself does not change; the viewport manager realizes the split.
type SplitRequestedEvent struct {
	Sector int
	App    int
}

func (e SplitRequestedEvent) Type() EventType { return EventSplitRequested }
func (e SplitRequestedEvent) Message() string {
	return "[Split] Left pane retains Focus, right pane reverts to Sector"
}

// SplitRejectedEvent is emitted when a split is requested outside of Focus
type SplitRejectedEvent struct {
	Level string
}

func (e SplitRejectedEvent) Type() EventType { return EventSplitRejected }
func (e SplitRejectedEvent) Message() string {
	return "[Split] Can only split from a focused app"
}

// SplitCollapsedEvent is emitted by the viewport manager when a zoom-out
// collapses an active split back to a single pane
type SplitCollapsedEvent struct{}

func (e SplitCollapsedEvent) Type() EventType { return EventSplitCollapsed }

// WorkspaceLoadedEvent is emitted once the workspace store has been populated
type WorkspaceLoadedEvent struct {
	Sectors int
	Apps    int
}

func (e WorkspaceLoadedEvent) Type() EventType { return EventWorkspaceLoaded }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct{}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
