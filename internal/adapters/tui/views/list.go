package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"naskah/internal/adapters/tui/styles"
	"naskah/internal/application/commands"
	"naskah/internal/domain"
	"naskah/internal/ports"
)

// ListKeyMap defines key bindings for the chapter list view
type ListKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	MoveUp   key.Binding
	MoveDown key.Binding
	New      key.Binding
	Delete   key.Binding
	Copy     key.Binding
	Help     key.Binding
	Quit     key.Binding
}

var ListKeys = ListKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	MoveUp: key.NewBinding(
		key.WithKeys("K", "shift+up"),
		key.WithHelp("K", "move chapter up"),
	),
	MoveDown: key.NewBinding(
		key.WithKeys("J", "shift+down"),
		key.WithHelp("J", "move chapter down"),
	),
	New: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "new chapter"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "delete"),
	),
	Copy: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "copy id"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// ListModel is the model for the chapter list view
type ListModel struct {
	ViewState
	store      ports.ManuscriptStore
	rows       []commands.ChapterRow
	cursor     int
	confirming bool // pending delete confirmation for the selected row
}

// NewListModel creates a new chapter list model
func NewListModel(store ports.ManuscriptStore) *ListModel {
	return &ListModel{store: store}
}

// Init initializes the list view
func (m *ListModel) Init() tea.Cmd {
	return m.loadRows
}

type rowsLoadedMsg struct {
	rows []commands.ChapterRow
}

type errMsg struct {
	err error
}

type successMsg struct {
	message string
}

func (m *ListModel) loadRows() tea.Msg {
	rows, err := commands.NewListCommand(m.store).Execute(context.Background())
	if err != nil {
		return errMsg{err}
	}
	return rowsLoadedMsg{rows}
}

// Update handles messages for the list view
func (m *ListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case rowsLoadedMsg:
		m.rows = msg.rows
		if m.cursor >= len(m.rows) {
			m.cursor = len(m.rows) - 1
		}
		if m.cursor < 0 {
			m.cursor = 0
		}
		return m, nil

	case errMsg:
		m.SetMessage(msg.err.Error(), true)
		return m, nil

	case successMsg:
		m.SetMessage(msg.message, false)
		return m, m.loadRows

	case tea.KeyMsg:
		if m.confirming {
			return m.updateConfirm(msg)
		}
		m.ClearMessage()

		switch {
		case key.Matches(msg, ListKeys.Quit):
			return m, tea.Quit

		case key.Matches(msg, ListKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, ListKeys.Down):
			if m.cursor < len(m.rows)-1 {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, ListKeys.MoveUp):
			return m, m.moveSelected(-1)

		case key.Matches(msg, ListKeys.MoveDown):
			return m, m.moveSelected(+1)

		case key.Matches(msg, ListKeys.New):
			return m, func() tea.Msg {
				return SwitchToCreateMsg{}
			}

		case key.Matches(msg, ListKeys.Delete):
			if len(m.rows) > 0 {
				m.confirming = true
			}
			return m, nil

		case key.Matches(msg, ListKeys.Copy):
			if row := m.selectedRow(); row != nil {
				if err := clipboard.WriteAll(row.Chapter.ID); err != nil {
					m.SetMessage(err.Error(), true)
				} else {
					m.SetMessage("Copied id to clipboard", false)
				}
			}
			return m, nil

		case key.Matches(msg, ListKeys.Help):
			return m, func() tea.Msg {
				return SwitchToHelpMsg{}
			}
		}
	}

	return m, nil
}

func (m *ListModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.confirming = false
		if row := m.selectedRow(); row != nil {
			return m, m.removeChapter(row.Chapter.ID)
		}
		return m, nil
	default:
		m.confirming = false
		return m, nil
	}
}

// moveSelected swaps the selected chapter with its neighbor in the same
// segment. The list view only exposes within-segment drag targets; the
// reorder itself accepts any permutation.
func (m *ListModel) moveSelected(dir int) tea.Cmd {
	row := m.selectedRow()
	if row == nil {
		return nil
	}

	target := -1
	for i := m.cursor + dir; i >= 0 && i < len(m.rows); i += dir {
		if m.rows[i].Chapter.Type == row.Chapter.Type {
			target = i
			break
		}
	}
	if target < 0 {
		return nil
	}

	order := make([]string, len(m.rows))
	for i, r := range m.rows {
		order[i] = r.Chapter.ID
	}
	order[m.cursor], order[target] = order[target], order[m.cursor]
	m.cursor = target

	return func() tea.Msg {
		result, err := commands.NewReorderCommand(m.store, order).Execute(context.Background())
		if err != nil {
			return errMsg{err}
		}
		return successMsg{result.Message}
	}
}

func (m *ListModel) removeChapter(id string) tea.Cmd {
	return func() tea.Msg {
		result, err := commands.NewRemoveChapterCommand(m.store, id).Execute(context.Background())
		if err != nil {
			return errMsg{err}
		}
		return successMsg{result.Message}
	}
}

func (m *ListModel) selectedRow() *commands.ChapterRow {
	if m.cursor >= 0 && m.cursor < len(m.rows) {
		return &m.rows[m.cursor]
	}
	return nil
}

// Reload reloads the chapter list from the store
func (m *ListModel) Reload() tea.Cmd {
	return m.loadRows
}

// View renders the list view
func (m *ListModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Naskah"))
	b.WriteString("\n")
	b.WriteString(styles.Subtitle.Render("Manuscript chapters"))
	b.WriteString("\n\n")

	if len(m.rows) == 0 {
		b.WriteString(styles.Subtitle.Render("No chapters yet. Press n to add one or import from the CLI."))
		b.WriteString("\n")
	}

	for i, row := range m.rows {
		b.WriteString(m.renderRow(row, i == m.cursor))
		b.WriteString("\n")
	}

	if m.confirming {
		if row := m.selectedRow(); row != nil {
			b.WriteString("\n")
			b.WriteString(styles.Confirm.Render(
				fmt.Sprintf("Delete %q? (y/n)", row.Chapter.Title)))
		}
	}

	if m.Message != "" {
		b.WriteString("\n")
		if m.MessageErr {
			b.WriteString(styles.ErrorMsg.Render(m.Message))
		} else {
			b.WriteString(styles.Success.Render(m.Message))
		}
	}

	b.WriteString("\n")
	b.WriteString(m.renderHelpLine())

	return styles.App.Render(b.String())
}

func (m *ListModel) renderRow(row commands.ChapterRow, selected bool) string {
	ch := row.Chapter

	number := "    "
	if ch.Type == domain.TypeChapter {
		number = styles.PageNumber.Render(fmt.Sprintf("%3d.", row.PageNumber))
	}

	text := ch.Title
	if n := len(ch.SubChapters); n > 0 {
		text += styles.SubCount.Render(fmt.Sprintf("  (%d)", n))
	}

	var style lipgloss.Style
	switch ch.Type {
	case domain.TypeFrontMatter:
		style = styles.RowFront
	case domain.TypeBackMatter:
		style = styles.RowBack
	default:
		style = styles.RowBody
	}

	label := fmt.Sprintf("[%s]", ch.Type.Label())
	line := fmt.Sprintf("%s %-14s %s", number, style.Render(label), text)
	if selected {
		return styles.RowSelected.Render(line)
	}
	return line
}

func (m *ListModel) renderHelpLine() string {
	keys := []struct {
		key  string
		desc string
	}{
		{"j/k", "navigate"},
		{"J/K", "move"},
		{"n", "new"},
		{"d", "delete"},
		{"c", "copy id"},
		{"?", "help"},
		{"q", "quit"},
	}

	var parts []string
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s %s",
			styles.HelpKey.Render(k.key),
			styles.HelpDesc.Render(k.desc),
		))
	}
	return strings.Join(parts, styles.HelpSeparator.String())
}
