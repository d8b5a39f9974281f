package types

import tea "github.com/charmbracelet/bubbletea"

// Mode represents an input mode
type Mode int

const (
	ModeNormal Mode = iota
	ModeJump
)

// Action represents a command the model should execute
type Action interface {
	Type() string
}

// Context provides read-only access to model state needed for input handling
type Context interface {
	// LevelTag is the short tag of the current zoom level (ROOT, SECTOR, ...)
	LevelTag() string
	// CursorIndex is the highlighted item within the current level's list
	CursorIndex() int
	// ItemCount is the number of selectable items at the current level
	ItemCount() int
	// CanSplit reports whether a split is valid right now
	CanSplit() bool
	// IsSplit reports whether a secondary pane is showing
	IsSplit() bool
}

// ModeHandler handles input for a specific mode
type ModeHandler interface {
	// HandleKey processes a key message and returns actions and whether to consume the event
	HandleKey(msg tea.KeyMsg, ctx Context) ([]Action, bool)

	// Enter is called when entering this mode
	Enter(ctx Context) []Action

	// Exit is called when leaving this mode
	Exit(ctx Context) []Action

	// Name returns the mode name for display
	Name() string
}
