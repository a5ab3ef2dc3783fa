package logic

import (
	"strings"

	"multiselect/internal/domain"
)

// SearchFilter derives the filtered view of the options from the search text
type SearchFilter struct {
	searchable bool
	enableAdd  bool
}

// NewSearchFilter creates a new search filter
func NewSearchFilter(searchable, enableAdd bool) *SearchFilter {
	return &SearchFilter{
		searchable: searchable,
		enableAdd:  enableAdd,
	}
}

// IsSearching reports whether query narrows the options
func (sf *SearchFilter) IsSearching(query string) bool {
	return sf.searchable && strings.TrimSpace(query) != ""
}

// FilterOptions returns the options whose label contains query,
// case-insensitively. Without an active search all options are returned.
func (sf *SearchFilter) FilterOptions(options []domain.Option, query string) []domain.Option {
	if !sf.IsSearching(query) {
		return options
	}
	lower := strings.ToLower(query)
	var out []domain.Option
	for _, opt := range options {
		if strings.Contains(strings.ToLower(opt.Label), lower) {
			out = append(out, opt)
		}
	}
	return out
}

// CanAdd reports whether query may become a new option: adding is enabled,
// the query is non-blank and no existing label matches it.
func (sf *SearchFilter) CanAdd(options []domain.Option, query string) bool {
	return sf.searchable && sf.enableAdd &&
		strings.TrimSpace(query) != "" &&
		len(sf.FilterOptions(options, query)) == 0
}

// RelevantOptions is the set select-all operates on: the filtered options
// while searching, otherwise every option
func (sf *SearchFilter) RelevantOptions(options []domain.Option, query string) []domain.Option {
	if sf.IsSearching(query) {
		return sf.FilterOptions(options, query)
	}
	return options
}

// AllSelected reports whether the relevant set is non-empty and fully selected
func (sf *SearchFilter) AllSelected(options []domain.Option, selected []string, query string) bool {
	relevant := sf.RelevantOptions(options, query)
	if len(relevant) == 0 {
		return false
	}
	for _, opt := range relevant {
		if !domain.ContainsID(selected, opt.ID) {
			return false
		}
	}
	return true
}
