package dropdown

// Config holds the widget's instantiation parameters
type Config struct {
	Placeholder       string
	SearchPlaceholder string
	Searchable        bool
	EnableAdd         bool // ignored unless Searchable
	SingleSelection   bool
	EnableSelectAll   bool // ignored in single-selection mode
	ShowCheckbox      bool
	MaxVisible        int // option rows shown at once
	Width             int
}

// DefaultConfig returns the widget defaults
func DefaultConfig() Config {
	return Config{
		Placeholder:       "Select items...",
		SearchPlaceholder: "Search or type to add...",
		Searchable:        true,
		EnableAdd:         true,
		EnableSelectAll:   true,
		MaxVisible:        8,
		Width:             60,
	}
}

func (c Config) normalized() Config {
	d := DefaultConfig()
	if c.Placeholder == "" {
		c.Placeholder = d.Placeholder
	}
	if c.SearchPlaceholder == "" {
		c.SearchPlaceholder = d.SearchPlaceholder
	}
	if c.MaxVisible <= 0 {
		c.MaxVisible = d.MaxVisible
	}
	if c.Width < 20 {
		c.Width = d.Width
	}
	// Adding is only reachable through the search field
	c.EnableAdd = c.Searchable && c.EnableAdd
	return c
}
