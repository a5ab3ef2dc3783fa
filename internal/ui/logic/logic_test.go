package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"multiselect/internal/domain"
)

var options = []domain.Option{
	{ID: "1", Label: "Apple"},
	{ID: "2", Label: "Banana"},
	{ID: "3", Label: "Pineapple"},
	{ID: "4", Label: "Cherry"},
}

func TestFilterOptions(t *testing.T) {
	sf := NewSearchFilter(true, true)

	tests := []struct {
		query string
		want  []string
	}{
		{"", []string{"1", "2", "3", "4"}},
		{"   ", []string{"1", "2", "3", "4"}},
		{"APPLE", []string{"1", "3"}},
		{"an", []string{"2"}},
		{"fruit", nil},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got := sf.FilterOptions(options, tt.query)
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, domain.OptionIDs(got))
		})
	}
}

func TestFilterOptionsIgnoresQueryWhenNotSearchable(t *testing.T) {
	sf := NewSearchFilter(false, true)
	assert.Len(t, sf.FilterOptions(options, "zzz"), len(options))
	assert.False(t, sf.CanAdd(options, "zzz"))
}

func TestCanAdd(t *testing.T) {
	tests := []struct {
		name       string
		searchable bool
		enableAdd  bool
		query      string
		want       bool
	}{
		{"novel label", true, true, "Fruit", true},
		{"existing substring", true, true, "app", false},
		{"blank", true, true, "  ", false},
		{"add disabled", true, false, "Fruit", false},
		{"not searchable", false, true, "Fruit", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sf := NewSearchFilter(tt.searchable, tt.enableAdd)
			assert.Equal(t, tt.want, sf.CanAdd(options, tt.query))
		})
	}
}

func TestAllSelected(t *testing.T) {
	sf := NewSearchFilter(true, true)

	assert.False(t, sf.AllSelected(nil, nil, ""), "empty relevant set is never all selected")
	assert.False(t, sf.AllSelected(options, []string{"1", "2"}, ""))
	assert.True(t, sf.AllSelected(options, []string{"4", "3", "2", "1"}, ""))
	assert.True(t, sf.AllSelected(options, []string{"1", "3"}, "apple"), "only the filtered set matters while searching")
	assert.False(t, sf.AllSelected(options, []string{"1", "2", "3", "4"}, "fruit"))
}

func TestPickItemSingle(t *testing.T) {
	out := PickItem([]string{"1"}, "1", true)
	assert.False(t, out.Changed)
	assert.False(t, out.CloseMenu)
	assert.Equal(t, []string{"1"}, out.Selected)

	out = PickItem([]string{"1"}, "2", true)
	assert.True(t, out.Changed)
	assert.True(t, out.CloseMenu)
	assert.Equal(t, []string{"2"}, out.Selected)
}

func TestPickItemMulti(t *testing.T) {
	out := PickItem([]string{"1"}, "2", false)
	assert.Equal(t, []string{"1", "2"}, out.Selected)
	assert.False(t, out.CloseMenu)

	out = PickItem(out.Selected, "1", false)
	assert.Equal(t, []string{"2"}, out.Selected)
	assert.True(t, out.Changed)
}

func TestPickItemDoesNotAliasInput(t *testing.T) {
	selected := make([]string, 1, 4)
	selected[0] = "1"
	a := PickItem(selected, "2", false)
	b := PickItem(selected, "3", false)
	assert.Equal(t, []string{"1", "2"}, a.Selected)
	assert.Equal(t, []string{"1", "3"}, b.Selected)
}

func TestToggleAllTwiceRestoresSelection(t *testing.T) {
	sf := NewSearchFilter(true, true)
	start := []string{"4", "1"}

	relevant := sf.RelevantOptions(options, "")
	first := ToggleAll(start, relevant, sf.AllSelected(options, start, ""))
	assert.Equal(t, []string{"4", "1", "2", "3"}, first)

	second := ToggleAll(first, relevant, sf.AllSelected(options, first, ""))
	assert.Empty(t, second)

	third := ToggleAll(second, relevant, sf.AllSelected(options, second, ""))
	assert.ElementsMatch(t, domain.OptionIDs(options), third)
}

func TestToggleAllFromFullSelectionRestores(t *testing.T) {
	sf := NewSearchFilter(true, true)
	start := []string{"1", "2", "3", "4"}

	off := ToggleAll(start, options, sf.AllSelected(options, start, ""))
	on := ToggleAll(off, options, sf.AllSelected(options, off, ""))
	assert.Equal(t, start, on)
}

func TestToggleAllPreservesIDsOutsideFilter(t *testing.T) {
	sf := NewSearchFilter(true, true)
	selected := []string{"2", "1", "3"}

	relevant := sf.RelevantOptions(options, "apple")
	require.True(t, sf.AllSelected(options, selected, "apple"))

	got := ToggleAll(selected, relevant, true)
	assert.Equal(t, []string{"2"}, got)
}

func TestSuggest(t *testing.T) {
	got, ok := Suggest(options, "Banan")
	require.True(t, ok)
	assert.Equal(t, "Banana", got)

	got, ok = Suggest(options, "chery")
	require.True(t, ok)
	assert.Equal(t, "Cherry", got)

	_, ok = Suggest(options, "Zucchini")
	assert.False(t, ok)

	_, ok = Suggest(options, " ")
	assert.False(t, ok)
}

func TestNavigator(t *testing.T) {
	n := NewNavigator(3)
	assert.Equal(t, -1, n.Cursor(), "no rows")

	n.SetTotal(10)
	assert.Equal(t, 0, n.Cursor())

	n.Move(4)
	assert.Equal(t, 4, n.Cursor())
	start, end := n.VisibleRange()
	assert.Equal(t, 2, start)
	assert.Equal(t, 5, end)

	n.End()
	assert.Equal(t, 9, n.Cursor())
	assert.Equal(t, 7, n.ViewportOffset())

	n.PageUp()
	assert.Equal(t, 6, n.Cursor())

	n.SetTotal(2)
	assert.Equal(t, 1, n.Cursor(), "cursor clamps to the shrunken list")
	assert.Equal(t, 0, n.ViewportOffset())

	n.Move(-5)
	assert.Equal(t, 0, n.Cursor())
}
