package workspace

import (
	"sync"

	"zoomshell/internal/domain"
	"zoomshell/internal/eventbus"
)

// Store is an in-memory store of the workspace hierarchy: sectors, the
// apps inside them, and each app's open windows. It backs the
// navigator's window-count lookup with real data instead of the
// placeholder rule the concept demo used.
type Store struct {
	mu      sync.RWMutex
	sectors []domain.Sector
	bus     eventbus.EventBus
}

// NewStore creates an empty workspace store
func NewStore(bus eventbus.EventBus) *Store {
	return &Store{bus: bus}
}

// Load replaces the workspace contents and announces the new totals
func (s *Store) Load(sectors []domain.Sector) {
	s.mu.Lock()
	s.sectors = cloneSectors(sectors)
	apps := 0
	for _, sec := range s.sectors {
		apps += len(sec.Apps)
	}
	s.mu.Unlock()

	if s.bus != nil {
		s.bus.Publish(eventbus.WorkspaceLoadedEvent{
			Sectors: len(sectors),
			Apps:    apps,
		})
	}
}

// Sectors returns a copy of all sectors, detached from the store down
// to the window level
func (s *Store) Sectors() []domain.Sector {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return cloneSectors(s.sectors)
}

// Sector returns the sector at the given index
func (s *Store) Sector(index int) (domain.Sector, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if index < 0 || index >= len(s.sectors) {
		return domain.Sector{}, false
	}
	return cloneSector(s.sectors[index]), true
}

// App returns the app at the given sector/app indices
func (s *Store) App(sector, app int) (domain.App, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if sector < 0 || sector >= len(s.sectors) {
		return domain.App{}, false
	}
	apps := s.sectors[sector].Apps
	if app < 0 || app >= len(apps) {
		return domain.App{}, false
	}
	return cloneApp(apps[app]), true
}

// SectorCount returns the number of sectors
func (s *Store) SectorCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sectors)
}

// AppCount returns the number of apps in a sector, 0 if out of range
func (s *Store) AppCount(sector int) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if sector < 0 || sector >= len(s.sectors) {
		return 0
	}
	return len(s.sectors[sector].Apps)
}

// WindowCount returns the number of open windows for an app, 0 if the
// indices do not resolve to a known app
func (s *Store) WindowCount(sector, app int) int {
	if a, ok := s.App(sector, app); ok {
		return len(a.Windows)
	}
	return 0
}

// Snapshot returns a read-only view of the workspace
func (s *Store) Snapshot() domain.WorkspaceSnapshot {
	return domain.WorkspaceSnapshot{Sectors: s.Sectors()}
}

func cloneSectors(sectors []domain.Sector) []domain.Sector {
	result := make([]domain.Sector, len(sectors))
	for i, sec := range sectors {
		result[i] = cloneSector(sec)
	}
	return result
}

func cloneSector(sec domain.Sector) domain.Sector {
	apps := make([]domain.App, len(sec.Apps))
	for i, app := range sec.Apps {
		apps[i] = cloneApp(app)
	}
	sec.Apps = apps
	return sec
}

func cloneApp(app domain.App) domain.App {
	windows := make([]domain.Window, len(app.Windows))
	copy(windows, app.Windows)
	app.Windows = windows
	return app
}
