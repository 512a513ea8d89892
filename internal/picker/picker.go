// Package picker is the terminal checklist behind `worbots-setup pick`.
package picker

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Item is one selectable package.
type Item struct {
	ID          string
	Label       string
	Description string
	// Note is shown dimmed after the label, e.g. "installed v1.2".
	Note     string
	Selected bool
}

// Model is the Bubble Tea model for the multi-select checklist.
type Model struct {
	title    string
	items    []Item
	cursor   int
	selected map[string]bool
	done     bool
	quitting bool
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("69"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	dimStyle      = lipgloss.NewStyle().Faint(true)
)

// New creates a checklist with the items' Selected flags pre-applied.
func New(title string, items []Item) Model {
	selected := make(map[string]bool)
	for _, item := range items {
		if item.Selected {
			selected[item.ID] = true
		}
	}
	return Model{title: title, items: items, selected: selected}
}

// Selected returns the chosen ids in list order.
func (m Model) Selected() []string {
	var ids []string
	for _, item := range m.items {
		if m.selected[item.ID] {
			ids = append(ids, item.ID)
		}
	}
	return ids
}

// Quitting reports whether the user left without confirming.
func (m Model) Quitting() bool {
	return m.quitting
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(keyMsg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(keyMsg, keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case key.Matches(keyMsg, keys.Toggle):
		if len(m.items) > 0 {
			id := m.items[m.cursor].ID
			m.selected[id] = !m.selected[id]
		}

	case key.Matches(keyMsg, keys.All):
		all := true
		for _, item := range m.items {
			if !m.selected[item.ID] {
				all = false
				break
			}
		}
		for _, item := range m.items {
			m.selected[item.ID] = !all
		}

	case key.Matches(keyMsg, keys.Confirm):
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) View() string {
	if m.done || m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = cursorStyle.Render("> ")
		}
		checked := "[ ]"
		if m.selected[item.ID] {
			checked = selectedStyle.Render("[x]")
		}
		line := fmt.Sprintf("%s%s %s", cursor, checked, item.Label)
		if item.Note != "" {
			line += " " + dimStyle.Render("("+item.Note+")")
		}
		b.WriteString(line + "\n")
	}

	if len(m.items) > 0 {
		if desc := m.items[m.cursor].Description; desc != "" {
			b.WriteString("\n" + dimStyle.Render(desc) + "\n")
		}
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("space: toggle • a: all/none • enter: install • q: quit"))
	return b.String()
}

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Toggle  key.Binding
	All     key.Binding
	Confirm key.Binding
	Quit    key.Binding
}

var keys = keyMap{
	Up:      key.NewBinding(key.WithKeys("up", "k")),
	Down:    key.NewBinding(key.WithKeys("down", "j")),
	Toggle:  key.NewBinding(key.WithKeys(" ")),
	All:     key.NewBinding(key.WithKeys("a")),
	Confirm: key.NewBinding(key.WithKeys("enter")),
	Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c", "esc")),
}

// Run shows the checklist and returns the chosen ids, or nil when the user quit.
func Run(title string, items []Item) ([]string, error) {
	final, err := tea.NewProgram(New(title, items)).Run()
	if err != nil {
		return nil, err
	}
	m := final.(Model)
	if m.Quitting() {
		return nil, nil
	}
	return m.Selected(), nil
}
