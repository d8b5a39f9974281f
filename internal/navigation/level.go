package navigation

// Kind identifies one of the four zoom levels
type Kind int

const (
	KindRoot Kind = iota
	KindSector
	KindFocus
	KindPicker
)

// Tag returns the short level tag used in the status bar
func (k Kind) Tag() string {
	switch k {
	case KindRoot:
		return "ROOT"
	case KindSector:
		return "SECTOR"
	case KindFocus:
		return "FOCUS"
	case KindPicker:
		return "PICKER"
	default:
		return "UNKNOWN"
	}
}

// Level is the current position in the zoom hierarchy. Each variant
// carries exactly the selection data that is valid at that level, so an
// unset index is unrepresentable.
type Level interface {
	Kind() Kind
	String() string
}

// Root is the top-level overview of all sectors. No selection.
type Root struct{}

func (Root) Kind() Kind     { return KindRoot }
func (Root) String() string { return "Level 1: Root (Overview)" }

// Sector is the view of a selected sector's contents
type Sector struct {
	Sector int
}

func (Sector) Kind() Kind     { return KindSector }
func (Sector) String() string { return "Level 2: Sector (Group)" }

// Focus is the view of a selected application. A specific window is
// selected only after coming back through the picker.
type Focus struct {
	Sector    int
	App       int
	Window    int
	HasWindow bool
}

func (Focus) Kind() Kind     { return KindFocus }
func (Focus) String() string { return "Level 3: Focus (App)" }

// Picker is the intermediate window-selection state, entered only from
// Focus when the active app has multiple windows
type Picker struct {
	Sector int
	App    int
}

func (Picker) Kind() Kind     { return KindPicker }
func (Picker) String() string { return "Level 3a: Picker (Windows)" }

// SectorIndex returns the active sector index. It is set exactly when
// the level is Sector, Focus or Picker.
func SectorIndex(l Level) (int, bool) {
	switch lvl := l.(type) {
	case Sector:
		return lvl.Sector, true
	case Focus:
		return lvl.Sector, true
	case Picker:
		return lvl.Sector, true
	}
	return 0, false
}

// AppIndex returns the active app index. It is set exactly when the
// level is Focus or Picker.
func AppIndex(l Level) (int, bool) {
	switch lvl := l.(type) {
	case Focus:
		return lvl.App, true
	case Picker:
		return lvl.App, true
	}
	return 0, false
}

// WindowIndex returns the active window index, set only at Focus after
// a window was chosen from the picker
func WindowIndex(l Level) (int, bool) {
	if lvl, ok := l.(Focus); ok && lvl.HasWindow {
		return lvl.Window, true
	}
	return 0, false
}
