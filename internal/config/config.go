package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"multiselect/internal/domain"
	"multiselect/internal/eventbus"
	"multiselect/internal/storage"
)

// ErrOptionsRequired is returned when search is disabled but no default
// options are configured, leaving the widget with nothing to pick from
var ErrOptionsRequired = errors.New("default options are required when searchable is false")

// EnvPrefix is the prefix for environment overrides, e.g. MULTISELECT_DROPDOWN_SEARCHABLE
const EnvPrefix = "MULTISELECT"

// Config represents the application configuration
type Config struct {
	Version  int            `toml:"version" mapstructure:"version"`
	LogFile  string         `toml:"log_file,omitempty" mapstructure:"log_file"`
	Dropdown DropdownConfig `toml:"dropdown" mapstructure:"dropdown"`
	Storage  StorageConfig  `toml:"storage" mapstructure:"storage"`
}

// DropdownConfig holds the widget instantiation parameters.
// Options (full records) take precedence over DefaultOptions (plain labels).
type DropdownConfig struct {
	DefaultOptions     []string        `toml:"default_options,omitempty" mapstructure:"default_options"`
	Options            []domain.Option `toml:"options,omitempty" mapstructure:"options"`
	InitialSelectedIDs []string        `toml:"initial_selected_ids" mapstructure:"initial_selected_ids"`
	Placeholder        string          `toml:"placeholder" mapstructure:"placeholder"`
	SearchPlaceholder  string          `toml:"search_placeholder" mapstructure:"search_placeholder"`
	Searchable         bool            `toml:"searchable" mapstructure:"searchable"`
	EnableAdd          bool            `toml:"enable_add" mapstructure:"enable_add"`
	SingleSelection    bool            `toml:"single_selection" mapstructure:"single_selection"`
	EnableSelectAll    bool            `toml:"enable_select_all" mapstructure:"enable_select_all"`
	ShowCheckbox       bool            `toml:"show_checkbox" mapstructure:"show_checkbox"`
	MaxVisible         int             `toml:"max_visible" mapstructure:"max_visible"`
}

// StorageConfig selects where selection state is persisted
type StorageConfig struct {
	Backend string `toml:"backend" mapstructure:"backend"`
	Path    string `toml:"path,omitempty" mapstructure:"path"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// DefaultDir returns the per-user directory for config, state and logs
func DefaultDir() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "multiselect")
}

// NewConfigService creates a config service reading from path, or from
// config.toml in DefaultDir when path is empty
func NewConfigService(path string) ConfigService {
	if path == "" {
		path = filepath.Join(DefaultDir(), "config.toml")
	}
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(path string, bus eventbus.EventBus) ConfigService {
	cs := NewConfigService(path).(*configService)
	cs.bus = bus
	return cs
}

// Path returns the file the service loads from and saves to
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file. A missing file yields the defaults.
func (cs *configService) Load() (*Config, error) {
	var (
		cfg *Config
		err error
	)
	if _, statErr := os.Stat(cs.filePath); errors.Is(statErr, os.ErrNotExist) {
		cfg, err = decode(newViper())
	} else {
		cfg, err = cs.LoadFromPath(cs.filePath)
	}
	if err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{
			Path:    cs.filePath,
			Backend: cfg.Storage.Backend,
		})
	}
	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}
	return nil
}

// LoadFromPath loads configuration from a specific path.
// Environment variables override file values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	v := newViper()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return decode(v)
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func newViper() *viper.Viper {
	v := viper.New()
	d := DefaultConfig()

	v.SetDefault("version", d.Version)
	v.SetDefault("log_file", d.LogFile)
	v.SetDefault("dropdown.default_options", d.Dropdown.DefaultOptions)
	v.SetDefault("dropdown.options", d.Dropdown.Options)
	v.SetDefault("dropdown.initial_selected_ids", d.Dropdown.InitialSelectedIDs)
	v.SetDefault("dropdown.placeholder", d.Dropdown.Placeholder)
	v.SetDefault("dropdown.search_placeholder", d.Dropdown.SearchPlaceholder)
	v.SetDefault("dropdown.searchable", d.Dropdown.Searchable)
	v.SetDefault("dropdown.enable_add", d.Dropdown.EnableAdd)
	v.SetDefault("dropdown.single_selection", d.Dropdown.SingleSelection)
	v.SetDefault("dropdown.enable_select_all", d.Dropdown.EnableSelectAll)
	v.SetDefault("dropdown.show_checkbox", d.Dropdown.ShowCheckbox)
	v.SetDefault("dropdown.max_visible", d.Dropdown.MaxVisible)
	v.SetDefault("storage.backend", d.Storage.Backend)
	v.SetDefault("storage.path", d.Storage.Path)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	// Initialize slices if nil
	if cfg.Dropdown.DefaultOptions == nil {
		cfg.Dropdown.DefaultOptions = []string{}
	}
	if cfg.Dropdown.Options == nil {
		cfg.Dropdown.Options = []domain.Option{}
	}
	if cfg.Dropdown.InitialSelectedIDs == nil {
		cfg.Dropdown.InitialSelectedIDs = []string{}
	}
	return &cfg, nil
}

// Validate checks settings that would leave the widget unusable
func (c *Config) Validate() error {
	if !c.Dropdown.Searchable && len(c.Dropdown.DefaultOptions) == 0 && len(c.Dropdown.Options) == 0 {
		return ErrOptionsRequired
	}
	switch storage.NormalizeBackend(c.Storage.Backend) {
	case storage.BackendFile, storage.BackendSQLite, storage.BackendMemory:
	default:
		return fmt.Errorf("%w: %q", storage.ErrUnknownBackend, c.Storage.Backend)
	}
	for i, opt := range c.Dropdown.Options {
		if opt.ID == "" {
			return fmt.Errorf("option %d (%q) has no id", i, opt.Label)
		}
	}
	return nil
}

// StoragePath resolves the backend location, defaulting under baseDir
func (c *Config) StoragePath(baseDir string) string {
	if c.Storage.Path != "" {
		return c.Storage.Path
	}
	switch storage.NormalizeBackend(c.Storage.Backend) {
	case storage.BackendSQLite:
		return filepath.Join(baseDir, "state.db")
	default:
		return filepath.Join(baseDir, "state")
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Dropdown: DropdownConfig{
			DefaultOptions:     []string{},
			Options:            []domain.Option{},
			InitialSelectedIDs: []string{},
			Placeholder:        "Select items...",
			SearchPlaceholder:  "Search or type to add...",
			Searchable:         true,
			EnableAdd:          true,
			SingleSelection:    false,
			EnableSelectAll:    true,
			ShowCheckbox:       false,
			MaxVisible:         8,
		},
		Storage: StorageConfig{
			Backend: storage.BackendFile,
		},
	}
}
