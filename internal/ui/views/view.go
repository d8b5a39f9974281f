package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"zoomshell/internal/domain"
	"zoomshell/internal/navigation"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width            int
	Height           int
	Level            navigation.Level
	Workspace        domain.WorkspaceSnapshot
	Cursor           int
	StatusMessage    string
	NavStatus        string
	InputMode        string // "" outside text modes
	TextInput        string
	Split            bool
	SecondarySector  int
	SecondaryFocused bool
	ShowStatusBar    bool
	StatusBar        StatusBarState
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{styles: NewStyles()}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	title := r.styles.Title.Render("zoomshell")
	levelLabel := r.styles.Dim.Render(state.Level.String())
	content.WriteString(title + "  " + levelLabel)
	content.WriteString("\n")

	if state.InputMode != "" {
		content.WriteString(r.styles.Input.Render("go to: ") + state.TextInput)
		content.WriteString("\n\n")
	}

	var main string
	if state.Split {
		main = r.renderSplit(state)
	} else {
		main = r.renderLevel(state.Level, state)
	}
	content.WriteString(main)
	content.WriteString("\n")

	if state.StatusMessage != "" {
		content.WriteString(r.styles.Status.Render(state.StatusMessage))
		content.WriteString("\n")
	}
	if state.NavStatus != "" {
		content.WriteString(r.styles.Dim.Render(state.NavStatus))
		content.WriteString("\n")
	}

	content.WriteString(r.styles.Help.Render("j/k move · enter/l zoom in · esc/h zoom out · s split · g go to · L log · ? help · q quit"))

	body := r.styles.Main.Render(content.String())

	if state.ShowStatusBar {
		bar := r.RenderStatusBar(state.StatusBar)
		return body + "\n" + bar
	}
	return body
}

// renderLevel dispatches to the view for a zoom level
func (r *Renderer) renderLevel(level navigation.Level, state ViewState) string {
	switch lvl := level.(type) {
	case navigation.Root:
		return r.renderRoot(state)
	case navigation.Sector:
		return r.renderSectorIn(state, lvl.Sector, state.Cursor, true)
	case navigation.Focus:
		return r.renderFocus(lvl, state)
	case navigation.Picker:
		return r.renderPicker(lvl, state)
	default:
		return ""
	}
}

// renderRoot shows the overview of all sectors
func (r *Renderer) renderRoot(state ViewState) string {
	sectors := state.Workspace.Sectors
	if len(sectors) == 0 {
		return r.styles.Dim.Render("No sectors configured.")
	}

	boxes := make([]string, len(sectors))
	for i, sec := range sectors {
		name := r.styles.SectorStyle(sec.Color).Render(sec.Name)
		label := fmt.Sprintf("%d %s\n%s", i, name, r.styles.Dim.Render(fmt.Sprintf("%d apps", len(sec.Apps))))
		box := r.styles.SectorBox
		if i == state.Cursor {
			box = box.BorderForeground(lipgloss.Color("226"))
		}
		boxes[i] = box.Render(label)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, boxes...)
}

// renderSectorIn shows the app list of one sector
func (r *Renderer) renderSectorIn(state ViewState, sectorIdx, cursor int, showCursor bool) string {
	return r.renderSectorFrom(sectorIdx, cursor, showCursor, state.Workspace)
}

func (r *Renderer) renderSectorFrom(sectorIdx, cursor int, showCursor bool, ws domain.WorkspaceSnapshot) string {
	sec, ok := sectorAt(ws, sectorIdx)
	if !ok {
		return r.styles.Blocked.Render(fmt.Sprintf("Sector %d is not part of the workspace.", sectorIdx))
	}

	b := &strings.Builder{}
	b.WriteString(r.styles.SectorStyle(sec.Color).Render(sec.Name))
	b.WriteString("\n")
	if len(sec.Apps) == 0 {
		b.WriteString(r.styles.Dim.Render("  (no apps)"))
		return b.String()
	}
	for i, app := range sec.Apps {
		marker := "  "
		line := fmt.Sprintf("%d %s %s", i, app.Name, r.styles.Dim.Render(windowCountLabel(len(app.Windows))))
		if showCursor && i == cursor {
			marker = r.styles.Highlight.Render("> ")
			line = r.styles.HighlightBg.Render(line)
		}
		b.WriteString(marker + line + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// renderFocus shows the focused app
func (r *Renderer) renderFocus(lvl navigation.Focus, state ViewState) string {
	sec, okSec := sectorAt(state.Workspace, lvl.Sector)
	var appName, windowTitle string
	if okSec && lvl.App >= 0 && lvl.App < len(sec.Apps) {
		app := sec.Apps[lvl.App]
		appName = app.Name
		if lvl.HasWindow && lvl.Window >= 0 && lvl.Window < len(app.Windows) {
			windowTitle = app.Windows[lvl.Window].Title
		}
	} else {
		appName = fmt.Sprintf("App %d (unknown)", lvl.App)
	}

	b := &strings.Builder{}
	b.WriteString(r.styles.Title.Render(appName))
	if windowTitle != "" {
		b.WriteString("\n" + r.styles.Dim.Render("window: "+windowTitle))
	}
	if okSec {
		b.WriteString("\n" + r.styles.SectorStyle(sec.Color).Render(sec.Name))
	}
	return r.styles.FocusBox.Render(b.String())
}

// renderPicker shows the window list of the active app
func (r *Renderer) renderPicker(lvl navigation.Picker, state ViewState) string {
	sec, okSec := sectorAt(state.Workspace, lvl.Sector)
	if !okSec || lvl.App < 0 || lvl.App >= len(sec.Apps) {
		return r.styles.Blocked.Render("Window picker: app not in workspace.")
	}
	app := sec.Apps[lvl.App]

	b := &strings.Builder{}
	b.WriteString(r.styles.Title.Render(app.Name + ": pick a window"))
	b.WriteString("\n")
	for i, win := range app.Windows {
		marker := "  "
		line := fmt.Sprintf("%d %s", i, win.Title)
		if i == state.Cursor {
			marker = r.styles.Highlight.Render("> ")
			line = r.styles.HighlightBg.Render(line)
		}
		b.WriteString(marker + line + "\n")
	}
	return r.styles.PickerBox.Render(strings.TrimRight(b.String(), "\n"))
}

// renderSplit shows the focused app on the left and the secondary
// sector selection pane on the right
func (r *Renderer) renderSplit(state ViewState) string {
	left := r.renderLevel(state.Level, state)
	right := r.renderSectorIn(state, state.SecondarySector, 0, false)

	paneWidth := state.Width/2 - 4
	if paneWidth < 20 {
		paneWidth = 20
	}

	leftStyle, rightStyle := r.styles.PaneActive, r.styles.PaneIdle
	if state.SecondaryFocused {
		leftStyle, rightStyle = r.styles.PaneIdle, r.styles.PaneActive
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		leftStyle.Width(paneWidth).Render(left),
		rightStyle.Width(paneWidth).Render(right),
	)
}

func sectorAt(ws domain.WorkspaceSnapshot, index int) (domain.Sector, bool) {
	if index < 0 || index >= len(ws.Sectors) {
		return domain.Sector{}, false
	}
	return ws.Sectors[index], true
}

func windowCountLabel(n int) string {
	if n == 1 {
		return "(1 window)"
	}
	return fmt.Sprintf("(%d windows)", n)
}
