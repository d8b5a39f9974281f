package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"zoomshell/internal/domain"
	"zoomshell/internal/eventbus"
)

// Config represents the application configuration. It defines the
// workspace the shell navigates: sectors, their apps, and each app's
// open windows. Navigation state itself is never persisted.
type Config struct {
	Version int            `toml:"version"`
	UI      UISettings     `toml:"ui"`
	Sectors []SectorConfig `toml:"sector"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ShowStatusBar bool   `toml:"show_status_bar"`
	User          string `toml:"user"`
	Host          string `toml:"host"`
}

// SectorConfig defines one sector and its apps
type SectorConfig struct {
	Name  string      `toml:"name"`
	Color string      `toml:"color"`
	Apps  []AppConfig `toml:"app"`
}

// AppConfig defines one app and its open window titles
type AppConfig struct {
	Name    string   `toml:"name"`
	Windows []string `toml:"windows"`
}

// WorkspaceSectors converts the configured sectors into domain models
func (c *Config) WorkspaceSectors() []domain.Sector {
	sectors := make([]domain.Sector, len(c.Sectors))
	for i, sc := range c.Sectors {
		apps := make([]domain.App, len(sc.Apps))
		for j, ac := range sc.Apps {
			windows := make([]domain.Window, len(ac.Windows))
			for k, title := range ac.Windows {
				windows[k] = domain.Window{Title: title}
			}
			apps[j] = domain.App{Name: ac.Name, Windows: windows}
		}
		sectors[i] = domain.Sector{Name: sc.Name, Color: sc.Color, Apps: apps}
	}
	return sectors
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// NewConfigService creates a new config service rooted at the user
// config directory
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	shellDir := filepath.Join(configDir, "zoomshell")
	os.MkdirAll(shellDir, 0755)

	return &configService{
		filePath: filepath.Join(shellDir, "config.toml"),
	}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(bus eventbus.EventBus) ConfigService {
	cs := NewConfigService().(*configService)
	cs.bus = bus
	return cs
}

// Load loads the configuration from the default location
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		cfg := DefaultConfig()
		cs.announceLoaded(cs.filePath)
		return cfg, nil
	}
	return cs.LoadFromPath(cs.filePath)
}

// Save saves the configuration to the default location
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cs.announceLoaded(path)
	return &cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{})
	}
	return nil
}

func (cs *configService) announceLoaded(path string) {
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: path})
	}
}

// DefaultConfig returns the default configuration: the stock four
// sectors of the original shell with a small demo workspace
func DefaultConfig() *Config {
	user := os.Getenv("USER")
	if user == "" {
		user = "operator"
	}
	host, err := os.Hostname()
	if err != nil || host == "" {
		host = "zoomshell"
	}

	return &Config{
		Version: 1,
		UI: UISettings{
			ShowStatusBar: true,
			User:          user,
			Host:          host,
		},
		Sectors: []SectorConfig{
			{
				Name:  "WORK",
				Color: "33",
				Apps: []AppConfig{
					{Name: "Editor", Windows: []string{"main.go"}},
					{Name: "Terminal", Windows: []string{"~", "build", "logs"}},
				},
			},
			{
				Name:  "MEDIA",
				Color: "214",
				Apps: []AppConfig{
					{Name: "Player", Windows: []string{"queue"}},
				},
			},
			{
				Name:  "CORE",
				Color: "203",
				Apps: []AppConfig{
					{Name: "Monitor", Windows: []string{"cpu", "memory"}},
					{Name: "Settings", Windows: []string{"general"}},
				},
			},
			{
				Name:  "DATA",
				Color: "39",
				Apps: []AppConfig{
					{Name: "Files", Windows: []string{"home"}},
					{Name: "Search", Windows: []string{}},
				},
			},
		},
	}
}
