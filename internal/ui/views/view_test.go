package views

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"zoomshell/internal/domain"
	"zoomshell/internal/navigation"
)

func sampleWorkspace() domain.WorkspaceSnapshot {
	return domain.WorkspaceSnapshot{
		Sectors: []domain.Sector{
			{
				Name:  "WORK",
				Color: "33",
				Apps: []domain.App{
					{Name: "Editor", Windows: []domain.Window{{Title: "main.go"}}},
					{Name: "Terminal", Windows: []domain.Window{
						{Title: "shell 1"}, {Title: "shell 2"}, {Title: "shell 3"},
					}},
				},
			},
			{
				Name:  "MEDIA",
				Color: "214",
				Apps: []domain.App{
					{Name: "Player", Windows: []domain.Window{{Title: "playlist"}}},
				},
			},
		},
	}
}

func baseState(level navigation.Level) ViewState {
	return ViewState{
		Width:     100,
		Height:    30,
		Level:     level,
		Workspace: sampleWorkspace(),
		NavStatus: "Current State: " + level.String(),
	}
}

func TestRenderRootShowsAllSectors(t *testing.T) {
	r := NewRenderer()
	out := r.Render(baseState(navigation.Root{}))

	require.Contains(t, out, "WORK")
	require.Contains(t, out, "MEDIA")
	require.Contains(t, out, "2 apps")
	require.Contains(t, out, "Level 1: Root (Overview)")
}

func TestRenderSectorListsApps(t *testing.T) {
	r := NewRenderer()
	out := r.Render(baseState(navigation.Sector{Sector: 0}))

	require.Contains(t, out, "Editor")
	require.Contains(t, out, "(1 window)")
	require.Contains(t, out, "Terminal")
	require.Contains(t, out, "(3 windows)")
}

func TestRenderUnknownSectorShowsBlockedMessage(t *testing.T) {
	r := NewRenderer()
	out := r.Render(baseState(navigation.Sector{Sector: 42}))

	require.Contains(t, out, "Sector 42 is not part of the workspace.")
}

func TestRenderFocusShowsAppAndWindow(t *testing.T) {
	r := NewRenderer()
	level := navigation.Focus{Sector: 0, App: 1, Window: 2, HasWindow: true}
	out := r.Render(baseState(level))

	require.Contains(t, out, "Terminal")
	require.Contains(t, out, "shell 3")
	require.Contains(t, out, "WORK")
}

func TestRenderPickerListsWindows(t *testing.T) {
	r := NewRenderer()
	state := baseState(navigation.Picker{Sector: 0, App: 1})
	state.Cursor = 1
	out := r.Render(state)

	require.Contains(t, out, "pick a window")
	require.Contains(t, out, "shell 1")
	require.Contains(t, out, "shell 2")
	require.Contains(t, out, "shell 3")
}

func TestRenderSplitShowsBothPanes(t *testing.T) {
	r := NewRenderer()
	state := baseState(navigation.Focus{Sector: 0, App: 0})
	state.Split = true
	state.SecondarySector = 1
	out := r.Render(state)

	require.Contains(t, out, "Editor")
	require.Contains(t, out, "MEDIA")
	require.Contains(t, out, "Player")
}

func TestRenderShowsStatusAndNavLine(t *testing.T) {
	r := NewRenderer()
	state := baseState(navigation.Root{})
	state.StatusMessage = "[Zoom In] Entering Sector 0"
	out := r.Render(state)

	require.Contains(t, out, "[Zoom In] Entering Sector 0")
	require.Contains(t, out, "Current State:")
}

func TestStatusBarFormat(t *testing.T) {
	r := NewRenderer()
	bar := r.RenderStatusBar(StatusBarState{
		User:   "operator",
		Host:   "zoomshell",
		Level:  "FOCUS",
		Sector: "WORK",
		Uptime: 5 * time.Second,
		Width:  80,
	})

	require.Contains(t, bar, "operator@zoomshell")
	require.Contains(t, bar, "LOC: FOCUS / SEC: WORK")
	require.Contains(t, bar, "UPTIME: 00:00:05")
}

func TestStatusBarRollsUptimeUnits(t *testing.T) {
	r := NewRenderer()
	bar := r.RenderStatusBar(StatusBarState{
		User:   "operator",
		Host:   "zoomshell",
		Level:  "ROOT",
		Sector: "---",
		Uptime: time.Hour + 2*time.Minute + 3*time.Second,
		Width:  80,
	})

	require.Contains(t, bar, "UPTIME: 01:02:03")
}
