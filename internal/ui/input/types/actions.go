package types

// Zoom actions
type ZoomInAction struct {
	Target    int
	UseCursor bool // zoom into the highlighted item instead of Target
}

func (a ZoomInAction) Type() string { return "zoom_in" }

type ZoomOutAction struct{}

func (a ZoomOutAction) Type() string { return "zoom_out" }

type SplitAction struct{}

func (a SplitAction) Type() string { return "split" }

// JumpAction requests navigation to a slash path such as "0/2"
type JumpAction struct {
	Path string
}

func (a JumpAction) Type() string { return "jump" }

// Cursor movement within the current level's list
type NavigateAction struct {
	Direction string // "up", "down", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// TogglePaneAction moves input focus between split panes
type TogglePaneAction struct{}

func (a TogglePaneAction) Type() string { return "toggle_pane" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

// Pager actions
type ShowHelpAction struct{}

func (a ShowHelpAction) Type() string { return "show_help" }

type ShowLogAction struct{}

func (a ShowLogAction) Type() string { return "show_log" }

// Application control
type QuitAction struct {
	Force bool
}

func (a QuitAction) Type() string { return "quit" }
