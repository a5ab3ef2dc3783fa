package logic

import "multiselect/internal/domain"

// SelectionOutcome describes what picking an item should do
type SelectionOutcome struct {
	Selected  []string
	Changed   bool // false when the selection must not be touched
	CloseMenu bool
}

// PickItem computes the selection after the user picks id. In single mode
// an already-selected id is a no-op, and a new id replaces the selection
// and closes the menu. In multi mode the id's membership is toggled.
func PickItem(selected []string, id string, single bool) SelectionOutcome {
	if single {
		if domain.ContainsID(selected, id) {
			return SelectionOutcome{Selected: selected}
		}
		return SelectionOutcome{Selected: []string{id}, Changed: true, CloseMenu: true}
	}
	if domain.ContainsID(selected, id) {
		return SelectionOutcome{Selected: Without(selected, id), Changed: true}
	}
	return SelectionOutcome{Selected: append(clone(selected), id), Changed: true}
}

// ToggleAll deselects exactly the relevant ids when all of them are
// selected, otherwise unions them into the selection without duplicates.
// Ids outside the relevant set are preserved either way.
func ToggleAll(selected []string, relevant []domain.Option, allSelected bool) []string {
	if allSelected {
		out := make([]string, 0, len(selected))
		for _, id := range selected {
			if _, ok := domain.FindOption(relevant, id); !ok {
				out = append(out, id)
			}
		}
		return out
	}

	seen := make(map[string]bool, len(selected)+len(relevant))
	out := make([]string, 0, len(selected)+len(relevant))
	for _, id := range append(clone(selected), domain.OptionIDs(relevant)...) {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

// Without returns ids with every occurrence of id removed
func Without(ids []string, id string) []string {
	out := make([]string, 0, len(ids))
	for _, existing := range ids {
		if existing != id {
			out = append(out, existing)
		}
	}
	return out
}

func clone(ids []string) []string {
	out := make([]string, len(ids))
	copy(out, ids)
	return out
}
