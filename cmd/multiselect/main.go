package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"multiselect/internal/config"
	"multiselect/internal/eventbus"
	"multiselect/internal/state"
	"multiselect/internal/storage"
	"multiselect/internal/ui"
)

func main() {
	// Parse command line arguments
	var (
		configPath     string
		backend        string
		dataPath       string
		printSelection bool
		reset          bool
	)
	flag.StringVar(&configPath, "config", "", "Path to the config file")
	flag.StringVar(&configPath, "c", "", "Path to the config file (shorthand)")
	flag.StringVar(&backend, "backend", "", "Storage backend: file, sqlite or memory")
	flag.StringVar(&dataPath, "data", "", "Storage location (directory for file, database for sqlite)")
	flag.BoolVar(&printSelection, "print", false, "Print the selected labels on exit")
	flag.BoolVar(&reset, "reset", false, "Clear stored options, selection and history before starting")
	flag.Parse()

	if err := run(configPath, backend, dataPath, printSelection, reset); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, backend, dataPath string, printSelection, reset bool) error {
	baseDir := config.DefaultDir()
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	// Create event bus
	bus := eventbus.New()

	configSvc := config.NewConfigServiceWithBus(configPath, bus)
	cfg, err := loadOrCreateConfig(configSvc)
	if err != nil {
		return err
	}
	if backend != "" {
		cfg.Storage.Backend = backend
	}
	if dataPath != "" {
		cfg.Storage.Path = dataPath
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration in %s: %w", configSvc.Path(), err)
	}

	// Set up logging
	logPath := cfg.LogFile
	if logPath == "" {
		logPath = filepath.Join(baseDir, "multiselect.log")
	}
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	store, err := storage.Open(cfg.Storage.Backend, cfg.StoragePath(baseDir))
	if err != nil {
		return fmt.Errorf("failed to open %s storage: %w", cfg.Storage.Backend, err)
	}
	defer store.Close()
	log.Printf("Using %s storage at %s", cfg.Storage.Backend, cfg.StoragePath(baseDir))

	if reset {
		if err := state.ClearPersisted(store); err != nil {
			return err
		}
		log.Printf("Cleared persisted state")
	}

	// Create event channel for UI
	eventChan := make(chan eventbus.DomainEvent, 100)
	forwardEvent := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			log.Println("Event channel full, dropping event")
		}
	}
	bus.Subscribe(eventbus.EventStorageFallback, forwardEvent)
	bus.Subscribe(eventbus.EventError, forwardEvent)

	options := state.NormalizeOptions(cfg.Dropdown.DefaultOptions, cfg.Dropdown.Options)
	manager, err := state.NewManager(store, bus, options, cfg.Dropdown.InitialSelectedIDs, cfg.Dropdown.SingleSelection)
	if err != nil {
		return err
	}

	// Create UI model
	uiModel := ui.NewModel(bus, cfg, manager)

	// Create Bubble Tea program
	p := tea.NewProgram(uiModel, tea.WithAltScreen(), tea.WithMouseCellMotion())
	uiModel.SetProgram(p)

	// Start forwarding events to UI in background
	go func() {
		for event := range eventChan {
			p.Send(ui.EventMsg{Event: event})
		}
	}()

	_, runErr := p.Run()
	close(eventChan)
	if runErr != nil {
		return fmt.Errorf("failed to run program: %w", runErr)
	}
	if err := uiModel.Err(); err != nil {
		return err
	}
	log.Printf("Exiting with %d selected", len(manager.SelectedIDs()))

	if printSelection {
		for _, opt := range manager.SelectedOptions() {
			fmt.Println(opt.Label)
		}
	}
	return nil
}

// loadOrCreateConfig loads the config file, writing a starter file on first run
func loadOrCreateConfig(configSvc config.ConfigService) (*config.Config, error) {
	path := configSvc.Path()
	if _, err := os.Stat(path); err == nil {
		cfg, err := configSvc.Load()
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		log.Printf("Loaded config from %s", path)
		return cfg, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to stat config: %w", err)
	}

	// Environment overrides still apply to a fresh config
	cfg, err := configSvc.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	cfg.Dropdown.Placeholder = "Select Categories..."
	if err := configSvc.Save(cfg); err != nil {
		log.Printf("Failed to save config: %v", err)
	} else {
		log.Printf("Created config at %s", path)
	}
	return cfg, nil
}
