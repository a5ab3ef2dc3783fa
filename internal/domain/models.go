package domain

// Option represents a selectable item in the dropdown
type Option struct {
	ID    string `json:"id" toml:"id" mapstructure:"id"`
	Label string `json:"label" toml:"label" mapstructure:"label"`
	Emoji string `json:"emoji,omitempty" toml:"emoji,omitempty" mapstructure:"emoji"`
}

// DisplayLabel returns the label followed by the emoji, if any
func (o Option) DisplayLabel() string {
	if o.Emoji == "" {
		return o.Label
	}
	return o.Label + " " + o.Emoji
}

// FindOption returns the option with the given id and whether it exists
func FindOption(options []Option, id string) (Option, bool) {
	for _, opt := range options {
		if opt.ID == id {
			return opt, true
		}
	}
	return Option{}, false
}

// ContainsID reports whether ids contains id
func ContainsID(ids []string, id string) bool {
	for _, existing := range ids {
		if existing == id {
			return true
		}
	}
	return false
}

// OptionIDs returns the ids of the given options in order
func OptionIDs(options []Option) []string {
	ids := make([]string, 0, len(options))
	for _, opt := range options {
		ids = append(ids, opt.ID)
	}
	return ids
}
