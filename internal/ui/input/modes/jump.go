package modes

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"zoomshell/internal/ui/input/types"
)

// JumpMode reads a slash path (e.g. "0/2") and requests a jump to it
type JumpMode struct {
	textInput *textinput.Model
}

func NewJumpMode(ti *textinput.Model) *JumpMode {
	return &JumpMode{textInput: ti}
}

func (m *JumpMode) Name() string {
	return "jump"
}

func (m *JumpMode) Enter(ctx types.Context) []types.Action {
	m.textInput.Placeholder = "sector/app (e.g. 0/1)"
	return nil
}

func (m *JumpMode) Exit(ctx types.Context) []types.Action {
	m.textInput.Placeholder = ""
	return nil
}

func (m *JumpMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyEsc, tea.KeyCtrlC:
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true

	case tea.KeyEnter:
		path := m.textInput.Value()
		return []types.Action{
			types.JumpAction{Path: path},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	}

	// Everything else goes to the text input
	return nil, false
}
