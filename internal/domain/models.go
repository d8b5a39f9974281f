package domain

// Sector is a named grouping of related applications at level 2
// (e.g. WORK, MEDIA, CORE, DATA)
type Sector struct {
	Name  string
	Color string // terminal color code for the sector accent
	Apps  []App
}

// App represents an application that can be focused at level 3
type App struct {
	Name    string
	Windows []Window
}

// Window is a single open window belonging to an app
type Window struct {
	Title string
}

// WorkspaceSnapshot is a read-only view of the loaded workspace
type WorkspaceSnapshot struct {
	Sectors []Sector
}
