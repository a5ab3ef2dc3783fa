package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventStateLoaded      EventType = "StateLoaded"
	EventOptionAdded      EventType = "OptionAdded"
	EventSelectionChanged EventType = "SelectionChanged"
	EventStorageFallback  EventType = "StorageFallback"
	EventError            EventType = "Error"
	EventConfigLoaded     EventType = "ConfigLoaded"
	EventConfigSaved      EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// StateLoadedEvent is emitted once the state manager has hydrated from storage
type StateLoadedEvent struct {
	Options  int
	Selected int
	History  int
}

func (e StateLoadedEvent) Type() EventType { return EventStateLoaded }

// OptionAddedEvent is emitted when an ad-hoc option is created
type OptionAddedEvent struct {
	Option   Option
	Selected []string
}

func (e OptionAddedEvent) Type() EventType { return EventOptionAdded }

// SelectionChangedEvent is emitted whenever the selection set is replaced.
// Added and Removed hold the single id the history diff detected, if any.
type SelectionChangedEvent struct {
	Selected []string
	Added    string
	Removed  string
}

func (e SelectionChangedEvent) Type() EventType { return EventSelectionChanged }

// StorageFallbackEvent is emitted when a persisted entry is missing or unreadable
// and the default value was used instead
type StorageFallbackEvent struct {
	Key string
	Err error // nil when the entry was simply absent
}

func (e StorageFallbackEvent) Type() EventType { return EventStorageFallback }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path    string
	Backend string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
