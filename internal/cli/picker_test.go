package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/edgeviz/edgeviz/pkg/style"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestNewPickListModelOpensOnCurrent(t *testing.T) {
	items := lineStyleItems()
	m := NewPickListModel("Select Line Style", items, string(style.Dotted))

	if m.Items[m.Cursor].Value != string(style.Dotted) {
		t.Errorf("cursor on %q, want %q", m.Items[m.Cursor].Value, style.Dotted)
	}
}

func TestNewPickListModelUnknownCurrent(t *testing.T) {
	m := NewPickListModel("Select Line Style", lineStyleItems(), "")
	if m.Cursor != 0 {
		t.Errorf("cursor = %d, want 0 for unknown current value", m.Cursor)
	}
}

func TestPickListModelNavigation(t *testing.T) {
	tests := []struct {
		name string
		keys []string
		want int
	}{
		{"down moves cursor", []string{"down"}, 1},
		{"vim down", []string{"j", "j"}, 2},
		{"up at top stays", []string{"up"}, 0},
		{"down then up", []string{"down", "k"}, 0},
		{"down past end stays", []string{"j", "j", "j", "j", "j"}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m tea.Model = NewPickListModel("Select Line Style", lineStyleItems(), "")
			for _, k := range tt.keys {
				m, _ = m.Update(keyMsg(k))
			}
			got := m.(PickListModel)
			if got.Cursor != tt.want {
				t.Errorf("cursor = %d, want %d", got.Cursor, tt.want)
			}
		})
	}
}

func TestPickListModelSelect(t *testing.T) {
	var m tea.Model = NewPickListModel("Select Line Style", lineStyleItems(), "")
	m, _ = m.Update(keyMsg("down"))
	m, cmd := m.Update(keyMsg("enter"))

	got := m.(PickListModel)
	if got.Selected == nil {
		t.Fatal("enter should set Selected")
	}
	if got.Selected.Value != string(style.Dashed) {
		t.Errorf("Selected = %q, want %q", got.Selected.Value, style.Dashed)
	}
	if cmd == nil {
		t.Error("enter should quit the program")
	}
}

func TestPickListModelQuitWithoutSelection(t *testing.T) {
	for _, key := range []string{"q", "esc"} {
		var m tea.Model = NewPickListModel("Select Line Style", lineStyleItems(), "")
		m, cmd := m.Update(keyMsg(key))

		got := m.(PickListModel)
		if got.Selected != nil {
			t.Errorf("%q should not select, got %v", key, got.Selected)
		}
		if cmd == nil {
			t.Errorf("%q should quit the program", key)
		}
	}
}

func TestPickListModelView(t *testing.T) {
	m := NewPickListModel("Select Line Style", lineStyleItems(), "")
	view := m.View()
	if view == "" {
		t.Fatal("View() returned empty string")
	}
	for _, it := range lineStyleItems() {
		if !strings.Contains(view, it.Value) {
			t.Errorf("view missing item %q", it.Value)
		}
	}
}

func TestLineStyleItemsParse(t *testing.T) {
	for _, it := range lineStyleItems() {
		if _, err := style.ParseLineStyle(it.Value); err != nil {
			t.Errorf("item %q is not a valid line style: %v", it.Value, err)
		}
	}
}

func TestColormapItemsValid(t *testing.T) {
	items := colormapItems()
	if len(items) != len(style.Colormaps()) {
		t.Fatalf("%d items, want %d", len(items), len(style.Colormaps()))
	}
	for _, it := range items {
		if !style.Colormap(it.Value).Valid() {
			t.Errorf("item %q is not a valid colormap", it.Value)
		}
		if it.Preview == "" {
			t.Errorf("item %q has no preview", it.Value)
		}
	}
}
