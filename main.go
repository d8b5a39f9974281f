package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"zoomshell/internal/config"
	"zoomshell/internal/eventbus"
	"zoomshell/internal/navigation"
	"zoomshell/internal/ui"
	"zoomshell/internal/viewport"
	"zoomshell/internal/workspace"
)

// transitionEventTypes lists every event the UI wants forwarded
var transitionEventTypes = []eventbus.EventType{
	eventbus.EventSectorEntered,
	eventbus.EventAppFocused,
	eventbus.EventWindowSelected,
	eventbus.EventPickerEntered,
	eventbus.EventReturnedToSector,
	eventbus.EventReturnedToRoot,
	eventbus.EventNavigationBlocked,
	eventbus.EventSplitRequested,
	eventbus.EventSplitRejected,
	eventbus.EventSplitCollapsed,
}

func main() {
	// Parse command line arguments
	var configPath string
	flag.StringVar(&configPath, "config", "", "Path to the workspace config file")
	flag.StringVar(&configPath, "c", "", "Path to the workspace config file (shorthand)")
	flag.Parse()

	if configPath == "" && flag.NArg() > 0 {
		configPath = flag.Arg(0)
	}
	if configPath == "" {
		wd, err := os.Getwd()
		if err != nil {
			wd = "."
		}
		configPath = filepath.Join(wd, ".zoomshell.toml")
	}

	// Set up logging
	logFile, err := os.OpenFile("zoomshell.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	// Create event bus
	bus := eventbus.New()

	// Load configuration with event bus support
	configSvc := config.NewConfigServiceWithBus(bus)
	cfg := loadOrCreateConfig(configSvc, configPath)

	// Build the workspace store from the configured sectors
	store := workspace.NewStore(bus)
	store.Load(cfg.WorkspaceSectors())

	// The window count collaborator resolves the active sector late, at
	// the moment the navigator asks, so it always reflects the level the
	// navigator is leaving
	var nav *navigation.Navigator
	counter := navigation.WindowCounterFunc(func(app int) int {
		if sector, ok := navigation.SectorIndex(nav.Level()); ok {
			return store.WindowCount(sector, app)
		}
		return 0
	})
	nav = navigation.New(counter, bus)

	panes := viewport.NewManager(bus)

	// Create event channel for UI
	eventChan := make(chan eventbus.DomainEvent, 100)
	forwardEvent := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			log.Println("Event channel full, dropping event")
		}
	}
	for _, et := range transitionEventTypes {
		bus.Subscribe(et, forwardEvent)
	}

	// Create UI model
	log.Printf("Creating UI model...")
	uiModel := ui.NewModel(cfg, store, nav, panes, bus)

	// Create Bubble Tea program
	p := tea.NewProgram(uiModel, tea.WithAltScreen())
	uiModel.SetProgram(p)

	// Forward events to the UI in the background
	go func() {
		for event := range eventChan {
			p.Send(ui.EventMsg{Event: event})
		}
	}()

	// Run the UI
	log.Printf("Starting UI...")
	if _, err := p.Run(); err != nil {
		log.Printf("Error running program: %v", err)
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
	log.Printf("UI exited normally")

	// Persist the config on exit
	if err := configSvc.SaveToPath(cfg, configPath); err != nil {
		log.Printf("Failed to save config: %v", err)
	}

	close(eventChan)
}

// loadOrCreateConfig loads the workspace config or writes a default one
func loadOrCreateConfig(configSvc config.ConfigService, configPath string) *config.Config {
	if _, err := os.Stat(configPath); err == nil {
		if cfg, err := configSvc.LoadFromPath(configPath); err == nil {
			log.Printf("Loaded config from %s", configPath)
			return cfg
		}
	}

	log.Printf("Creating new config at %s", configPath)
	cfg := config.DefaultConfig()
	if err := configSvc.SaveToPath(cfg, configPath); err != nil {
		log.Printf("Failed to save config: %v", err)
	}
	return cfg
}
