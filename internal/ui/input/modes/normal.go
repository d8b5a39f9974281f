package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"zoomshell/internal/ui/input/types"
)

type NormalMode struct{}

func NewNormalMode() *NormalMode {
	return &NormalMode{}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil // No special actions on enter
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil // No special actions on exit
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true

	case tea.KeyUp:
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case tea.KeyDown:
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case tea.KeyHome:
		return []types.Action{types.NavigateAction{Direction: "home"}}, true

	case tea.KeyEnd:
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case tea.KeyEnter, tea.KeyRight:
		// Zoom into the highlighted item
		return []types.Action{types.ZoomInAction{UseCursor: true}}, true

	case tea.KeyLeft, tea.KeyEsc, tea.KeyBackspace:
		return []types.Action{types.ZoomOutAction{}}, true

	case tea.KeyTab:
		if ctx.IsSplit() {
			return []types.Action{types.TogglePaneAction{}}, true
		}
		return nil, false
	}

	switch msg.String() {
	case "j":
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case "k":
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case "l", "+":
		return []types.Action{types.ZoomInAction{UseCursor: true}}, true

	case "h", "-":
		return []types.Action{types.ZoomOutAction{}}, true

	case "0", "1", "2", "3", "4", "5", "6", "7", "8", "9":
		// Direct zoom into an item by index
		target := int(msg.String()[0] - '0')
		return []types.Action{types.ZoomInAction{Target: target}}, true

	case "s":
		return []types.Action{types.SplitAction{}}, true

	case "g":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeJump}}, true

	case "?":
		return []types.Action{types.ShowHelpAction{}}, true

	case "L":
		return []types.Action{types.ShowLogAction{}}, true

	case "q":
		return []types.Action{types.QuitAction{}}, true
	}

	return nil, false
}
