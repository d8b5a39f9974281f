package viewport

import (
	"log"

	"zoomshell/internal/eventbus"
)

// Manager owns the viewports of a single output. The primary viewport
// mirrors the navigator's position; a split adds one secondary viewport
// reverted to the sector view for content selection. Zooming out
// collapses an active split, as the original shell did.
type Manager struct {
	primary   Viewport
	secondary *Viewport
	nextID    ID
	bus       eventbus.EventBus
}

// NewManager creates a manager with a single full-size primary viewport
func NewManager(bus eventbus.EventBus) *Manager {
	return &Manager{
		primary: Viewport{
			ID:       1,
			Label:    "Primary",
			Path:     NewPath(),
			Geometry: FullGeometry(),
			HasFocus: true,
		},
		nextID: 2,
		bus:    bus,
	}
}

// Primary returns the primary viewport
func (m *Manager) Primary() Viewport {
	return m.primary
}

// Secondary returns the secondary viewport when a split is active
func (m *Manager) Secondary() (Viewport, bool) {
	if m.secondary == nil {
		return Viewport{}, false
	}
	return *m.secondary, true
}

// IsSplit reports whether a split is currently active
func (m *Manager) IsSplit() bool {
	return m.secondary != nil
}

// SetPrimaryPath updates the primary viewport's position to mirror the
// navigator
func (m *Manager) SetPrimaryPath(p Path) {
	m.primary.Path = p
}

// Split realizes a split request: the primary pane shrinks to the left
// half and keeps its position, the new right pane reverts to the given
// sector for selection. A second split replaces the existing secondary.
func (m *Manager) Split(sector int) ID {
	m.primary.Geometry = LeftHalf()
	vp := Viewport{
		ID:       m.nextID,
		Label:    "Split-Right",
		Path:     PathOf(sector),
		Geometry: RightHalf(),
	}
	m.nextID++
	m.secondary = &vp
	log.Printf("Viewport %d split off (right pane at sector %d)", vp.ID, sector)
	return vp.ID
}

// Unsplit removes the secondary viewport and restores the primary to
// full size. Returns false if no split was active.
func (m *Manager) Unsplit() bool {
	if m.secondary == nil {
		return false
	}
	log.Printf("Viewport %d removed, primary restored to full size", m.secondary.ID)
	m.secondary = nil
	m.primary.Geometry = FullGeometry()
	m.primary.HasFocus = true
	if m.bus != nil {
		m.bus.Publish(eventbus.SplitCollapsedEvent{})
	}
	return true
}

// FocusSecondary moves input focus to the secondary pane if present
func (m *Manager) FocusSecondary() bool {
	if m.secondary == nil {
		return false
	}
	m.primary.HasFocus = false
	m.secondary.HasFocus = true
	return true
}

// FocusPrimary moves input focus back to the primary pane
func (m *Manager) FocusPrimary() {
	m.primary.HasFocus = true
	if m.secondary != nil {
		m.secondary.HasFocus = false
	}
}
