package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// StatusBarState holds the data shown in the bottom status bar
type StatusBarState struct {
	User   string
	Host   string
	Level  string // short level tag (ROOT, SECTOR, FOCUS, PICKER)
	Sector string // active sector name or "---"
	Uptime time.Duration
	Width  int
}

// RenderStatusBar renders the single-line status bar: user@host,
// current location, and uptime
func (r *Renderer) RenderStatusBar(state StatusBarState) string {
	uptime := state.Uptime
	hours := int(uptime.Hours())
	minutes := int(uptime.Minutes()) % 60
	seconds := int(uptime.Seconds()) % 60

	left := fmt.Sprintf("%s@%s", state.User, state.Host)
	middle := fmt.Sprintf("LOC: %s / SEC: %s", state.Level, state.Sector)
	right := fmt.Sprintf("UPTIME: %02d:%02d:%02d", hours, minutes, seconds)

	line := left + "  |  " + middle + "  |  " + right

	width := state.Width
	if width <= 0 {
		width = 80
	}
	if pad := width - lipgloss.Width(line) - 2; pad > 0 {
		line += strings.Repeat(" ", pad)
	}
	return r.styles.StatusBar.Render(line)
}
