package main

import (
	"fmt"

	"zoomshell/internal/config"
	"zoomshell/internal/domain"
	"zoomshell/internal/navigation"
	"zoomshell/internal/workspace"
)

// echoPublisher prints each transition message as it happens
type echoPublisher struct{}

func (echoPublisher) Publish(event domain.DomainEvent) {
	if tr, ok := event.(domain.TransitionEvent); ok {
		fmt.Println(tr.Message())
	}
}

// A scripted tour of the zoom hierarchy, useful for demos and for
// eyeballing the transition messages without starting the TUI.
func main() {
	cfg := config.DefaultConfig()

	store := workspace.NewStore(nil)
	store.Load(cfg.WorkspaceSectors())

	var nav *navigation.Navigator
	counter := navigation.WindowCounterFunc(func(app int) int {
		if sector, ok := navigation.SectorIndex(nav.Level()); ok {
			return store.WindowCount(sector, app)
		}
		return 0
	})
	nav = navigation.New(counter, echoPublisher{})

	fmt.Println(nav.Status())

	nav.ZoomIn(0) // WORK sector
	fmt.Println(nav.Status())

	nav.ZoomIn(1) // Terminal, three windows
	fmt.Println(nav.Status())

	nav.SplitView()
	fmt.Println(nav.Status())

	nav.ZoomOut() // multi-window app, lands on the picker
	fmt.Println(nav.Status())

	nav.ZoomIn(2) // pick the third window
	fmt.Println(nav.Status())

	nav.ZoomOut()
	nav.ZoomOut()
	nav.ZoomOut()
	fmt.Println(nav.Status())
}
