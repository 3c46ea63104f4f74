// Package tui is the interactive theme picker behind `tmt pick`.
package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"tmt/internal/palette"
	"tmt/internal/ui"
)

const (
	defaultWidth  = 80
	defaultHeight = 20
)

// ThemeItem is one theme in the picker list.
type ThemeItem struct {
	Index int // 1-based
	Theme palette.Theme
}

// FilterValue returns the value to use for filtering
func (i ThemeItem) FilterValue() string { return i.Theme.Name }

// ThemeDelegate renders every theme row in the theme's own colors.
type ThemeDelegate struct{}

// Height returns the number of lines each item occupies
func (d ThemeDelegate) Height() int { return 1 }

// Spacing returns the spacing between items
func (d ThemeDelegate) Spacing() int { return 0 }

// Update handles messages for the delegate
func (d ThemeDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

// Render renders a single theme item
func (d ThemeDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	ti, ok := item.(ThemeItem)
	if !ok {
		return
	}
	cursor := "  "
	if index == m.Index() {
		cursor = ui.HeaderStyle.Render("▶ ")
	}
	fmt.Fprint(w, cursor+ui.ThemeStyle(ti.Theme.Background, ti.Theme.Foreground).Render(ui.ThemeRow(ti.Index, ti.Theme)))
}

// Model is the bubbletea model of the picker. Enter chooses the highlighted
// theme; Esc, q and Ctrl+C leave without a choice.
type Model struct {
	list     list.Model
	keys     KeyMap
	chosen   *ThemeItem
	quitting bool
}

// New creates a picker over themes.
func New(themes []palette.Theme) Model {
	items := make([]list.Item, 0, len(themes))
	for i, t := range themes {
		items = append(items, ThemeItem{Index: i + 1, Theme: t})
	}

	l := list.New(items, ThemeDelegate{}, defaultWidth, defaultHeight)
	l.Title = "Pick a theme"
	l.Styles.Title = ui.HeaderStyle.PaddingLeft(1).PaddingRight(1)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(true)

	// quitting is handled by the picker keys
	l.KeyMap.Quit.SetEnabled(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = keys.ShortHelp
	l.AdditionalFullHelpKeys = keys.FullHelp

	return Model{list: l, keys: keys}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		// while typing a filter every key belongs to the list
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Back) && m.list.FilterState() == list.FilterApplied:
			// let the list clear the filter
		case key.Matches(msg, m.keys.Quit, m.keys.Back):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Choose):
			if item, ok := m.list.SelectedItem().(ThemeItem); ok {
				m.chosen = &item
				return m, tea.Quit
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if m.chosen != nil || m.quitting {
		return ""
	}
	return m.list.View()
}

// Selected returns the chosen theme, if any.
func (m Model) Selected() (ThemeItem, bool) {
	if m.chosen == nil {
		return ThemeItem{}, false
	}
	return *m.chosen, true
}

// Run shows the picker and returns the chosen theme. ok is false when the user
// left without choosing.
func Run(themes []palette.Theme, opts ...tea.ProgramOption) (item ThemeItem, ok bool, err error) {
	final, err := tea.NewProgram(New(themes), opts...).Run()
	if err != nil {
		return ThemeItem{}, false, err
	}
	m, isModel := final.(Model)
	if !isModel {
		return ThemeItem{}, false, fmt.Errorf("unexpected model %T", final)
	}
	item, ok = m.Selected()
	return item, ok, nil
}
