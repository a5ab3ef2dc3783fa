package dropdown

// StorageErrorMsg reports a failed write-through. The widget's in-memory
// state has already changed; the host decides whether to carry on.
type StorageErrorMsg struct {
	Err error
}

// OptionAddedMsg is sent after an ad-hoc option has been created
type OptionAddedMsg struct {
	ID    string
	Label string
}

// MenuToggledMsg is sent whenever the menu opens or closes
type MenuToggledMsg struct {
	Open bool
}
