package state

import (
	"encoding/json"
	"fmt"
	"log"

	"multiselect/internal/domain"
	"multiselect/internal/eventbus"
	"multiselect/internal/storage"
)

// Storage keys for the three persisted collections
const (
	KeyOptions  = "multi-select-dropdown-options"
	KeySelected = "multi-select-dropdown-selected"
	KeyHistory  = "multi-select-dropdown-history"
)

// Manager owns the canonical options, the selected ids and the selection
// history, and writes each collection through to the store when it changes.
type Manager struct {
	store           storage.Store
	bus             eventbus.EventBus
	singleSelection bool

	options  []domain.Option
	selected []string
	history  []string
}

// NewManager hydrates state from store, falling back to defaultOptions and
// initialSelected for entries that are missing or unparsable, then writes
// the hydrated state back so every entry exists.
func NewManager(store storage.Store, bus eventbus.EventBus, defaultOptions []domain.Option, initialSelected []string, singleSelection bool) (*Manager, error) {
	if bus == nil {
		bus = eventbus.NullBus{}
	}
	m := &Manager{
		store:           store,
		bus:             bus,
		singleSelection: singleSelection,
	}

	m.options = cloneOptions(defaultOptions)
	// An empty stored list does not override the defaults
	if opts, ok := loadEntry[[]domain.Option](m, KeyOptions); ok && len(opts) > 0 {
		m.options = opts
	}

	m.selected = cloneIDs(initialSelected)
	if ids, ok := loadEntry[[]string](m, KeySelected); ok {
		m.selected = cloneIDs(ids)
	}

	m.history = cloneIDs(initialSelected)
	if ids, ok := loadEntry[[]string](m, KeyHistory); ok {
		m.history = cloneIDs(ids)
	}

	log.Printf("State hydrated: %d options, %d selected, %d history entries", len(m.options), len(m.selected), len(m.history))
	m.bus.Publish(domain.StateLoadedEvent{
		Options:  len(m.options),
		Selected: len(m.selected),
		History:  len(m.history),
	})

	if err := m.persist(KeyOptions, m.options); err != nil {
		return nil, err
	}
	if err := m.persist(KeySelected, m.selected); err != nil {
		return nil, err
	}
	if err := m.persist(KeyHistory, m.history); err != nil {
		return nil, err
	}
	return m, nil
}

// loadEntry decodes the entry for key. It reports false when the entry is
// absent or cannot be read or decoded; those cases are never errors.
func loadEntry[T any](m *Manager, key string) (T, bool) {
	var value T
	raw, ok, err := m.store.GetItem(key)
	if err != nil {
		log.Printf("Failed to read %s, using default: %v", key, err)
		m.bus.Publish(domain.StorageFallbackEvent{Key: key, Err: err})
		return value, false
	}
	if !ok {
		m.bus.Publish(domain.StorageFallbackEvent{Key: key})
		return value, false
	}
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		log.Printf("Failed to parse %s, using default: %v", key, err)
		m.bus.Publish(domain.StorageFallbackEvent{Key: key, Err: err})
		return value, false
	}
	return value, true
}

func (m *Manager) persist(key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := m.store.SetItem(key, string(data)); err != nil {
		return fmt.Errorf("failed to persist %s: %w", key, err)
	}
	return nil
}

// HandleSelectionChange replaces the selection with newIDs. Only a single
// added or removed id is diffed into the history: the first id of newIDs not
// previously selected, otherwise the first previous id no longer selected.
func (m *Manager) HandleSelectionChange(newIDs []string) error {
	prev := m.selected
	m.selected = cloneIDs(newIDs)

	var added, removed string
	addedFound, removedFound := false, false
	for _, id := range m.selected {
		if !domain.ContainsID(prev, id) {
			added, addedFound = id, true
			break
		}
	}
	if !addedFound {
		for _, id := range prev {
			if !domain.ContainsID(m.selected, id) {
				removed, removedFound = id, true
				break
			}
		}
	}

	if err := m.persist(KeySelected, m.selected); err != nil {
		return err
	}

	switch {
	case addedFound:
		m.history = append(m.history, added)
	case removedFound:
		m.history = removeAll(m.history, removed)
	}
	if addedFound || removedFound {
		if err := m.persist(KeyHistory, m.history); err != nil {
			return err
		}
	}

	m.bus.Publish(domain.SelectionChangedEvent{
		Selected: m.SelectedIDs(),
		Added:    added,
		Removed:  removed,
	})
	return nil
}

// HandleAddOption appends option and selects it. In single-selection mode
// it replaces the current selection.
func (m *Manager) HandleAddOption(option domain.Option) error {
	m.options = append(m.options, option)
	if err := m.persist(KeyOptions, m.options); err != nil {
		return err
	}

	if m.singleSelection {
		m.selected = []string{option.ID}
	} else {
		m.selected = append(m.selected, option.ID)
	}
	if err := m.persist(KeySelected, m.selected); err != nil {
		return err
	}

	m.history = append(m.history, option.ID)
	if err := m.persist(KeyHistory, m.history); err != nil {
		return err
	}

	log.Printf("Option added: %q (%s)", option.Label, option.ID)
	m.bus.Publish(domain.OptionAddedEvent{
		Option:   option,
		Selected: m.SelectedIDs(),
	})
	return nil
}

// Options returns a copy of the option list
func (m *Manager) Options() []domain.Option {
	return cloneOptions(m.options)
}

// SelectedIDs returns a copy of the selection
func (m *Manager) SelectedIDs() []string {
	return cloneIDs(m.selected)
}

// History returns a copy of the selection history
func (m *Manager) History() []string {
	return cloneIDs(m.history)
}

// IsSelected reports whether id is in the selection
func (m *Manager) IsSelected(id string) bool {
	return domain.ContainsID(m.selected, id)
}

// SingleSelection reports whether the manager replaces rather than appends on add
func (m *Manager) SingleSelection() bool {
	return m.singleSelection
}

// SelectedOptions resolves the selection to options, in option order.
// Ids without a matching option are skipped.
func (m *Manager) SelectedOptions() []domain.Option {
	var out []domain.Option
	for _, opt := range m.options {
		if domain.ContainsID(m.selected, opt.ID) {
			out = append(out, opt)
		}
	}
	return out
}

// ClearPersisted removes all persisted entries from store
func ClearPersisted(store storage.Store) error {
	for _, key := range []string{KeyOptions, KeySelected, KeyHistory} {
		if err := store.RemoveItem(key); err != nil {
			return fmt.Errorf("failed to clear %s: %w", key, err)
		}
	}
	return nil
}

func removeAll(ids []string, target string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id != target {
			out = append(out, id)
		}
	}
	return out
}

func cloneIDs(ids []string) []string {
	out := make([]string, len(ids))
	copy(out, ids)
	return out
}

func cloneOptions(options []domain.Option) []domain.Option {
	out := make([]domain.Option, len(options))
	copy(out, options)
	return out
}
