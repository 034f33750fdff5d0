package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/edgeviz/edgeviz/pkg/style"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// PickListModel - Interactive single-choice selection
// =============================================================================

// pickItem is one selectable row: the value the selection resolves to
// plus a pre-rendered preview shown next to it.
type pickItem struct {
	Value   string
	Preview string
}

// PickListModel is the bubbletea model for a single-choice list.
type PickListModel struct {
	Title    string
	Items    []pickItem
	Cursor   int
	Selected *pickItem
}

// NewPickListModel creates a pick list opened on the current value.
func NewPickListModel(title string, items []pickItem, current string) PickListModel {
	m := PickListModel{Title: title, Items: items}
	for i, it := range items {
		if it.Value == current {
			m.Cursor = i
			break
		}
	}
	return m
}

func (m PickListModel) Init() tea.Cmd {
	return nil
}

func (m PickListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(m.Items)-1 {
				m.Cursor++
			}
		case "enter":
			m.Selected = &m.Items[m.Cursor]
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m PickListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.Title))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("arrows: navigate  enter: select  q: keep current"))
	b.WriteString("\n\n")

	for i, it := range m.Items {
		cursor := "  "
		if i == m.Cursor {
			cursor = "> "
		}

		line := fmt.Sprintf("%s%-10s  %s", cursor, it.Value, it.Preview)

		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// =============================================================================
// Style Picker
// =============================================================================

// pickStyle runs the interactive line-style and colormap pickers and
// returns the chosen pair. Quitting a picker keeps the current value.
func pickStyle(ls style.LineStyle, cm style.Colormap) (style.LineStyle, style.Colormap, error) {
	m := NewPickListModel("Select Line Style", lineStyleItems(), string(ls))
	final, err := tea.NewProgram(m).Run()
	if err != nil {
		return ls, cm, err
	}
	if fm, ok := final.(PickListModel); ok && fm.Selected != nil {
		ls = style.LineStyle(fm.Selected.Value)
	}

	cmModel := NewPickListModel("Select Colormap", colormapItems(), string(cm))
	final, err = tea.NewProgram(cmModel).Run()
	if err != nil {
		return ls, cm, err
	}
	if fm, ok := final.(PickListModel); ok && fm.Selected != nil {
		cm = style.Colormap(fm.Selected.Value)
	}
	return ls, cm, nil
}

// lineStyleItems lists the supported dash patterns with a glyph preview.
func lineStyleItems() []pickItem {
	return []pickItem{
		{Value: string(style.Solid), Preview: listDimStyle.Render("──────────")},
		{Value: string(style.Dashed), Preview: listDimStyle.Render("── ── ──")},
		{Value: string(style.DashDot), Preview: listDimStyle.Render("── · ── ·")},
		{Value: string(style.Dotted), Preview: listDimStyle.Render("· · · · ·")},
	}
}

// colormapItems lists the supported colormaps with a swatch preview
// sampled across the gradient.
func colormapItems() []pickItem {
	maps := style.Colormaps()
	items := make([]pickItem, len(maps))
	for i, cm := range maps {
		var b strings.Builder
		for j := 0; j <= 4; j++ {
			hex := cm.At(float64(j) / 4).Hex()
			b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render("█"))
		}
		items[i] = pickItem{Value: string(cm), Preview: b.String()}
	}
	return items
}
