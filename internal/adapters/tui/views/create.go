package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"naskah/internal/adapters/tui/styles"
	"naskah/internal/application/commands"
	"naskah/internal/domain"
	"naskah/internal/ports"
)

// CreateKeyMap defines key bindings for the create view
type CreateKeyMap struct {
	Submit key.Binding
	Cancel key.Binding
	Cycle  key.Binding
}

var CreateKeys = CreateKeyMap{
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "create"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
	Cycle: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "cycle type"),
	),
}

var createTypes = []domain.ChapterType{
	domain.TypeChapter,
	domain.TypeFrontMatter,
	domain.TypeBackMatter,
}

// CreateModel is the model for the add-chapter view
type CreateModel struct {
	ViewState
	store      ports.ManuscriptStore
	ids        ports.IDGenerator
	titleInput textinput.Model
	typeIndex  int
}

// NewCreateModel creates a new add-chapter view model
func NewCreateModel(store ports.ManuscriptStore, ids ports.IDGenerator) *CreateModel {
	titleInput := textinput.New()
	titleInput.Placeholder = "Chapter title"
	titleInput.CharLimit = 120

	return &CreateModel{
		store:      store,
		ids:        ids,
		titleInput: titleInput,
	}
}

// Reset clears the form for a fresh chapter
func (m *CreateModel) Reset() {
	m.titleInput.SetValue("")
	m.typeIndex = 0
	m.ClearMessage()
	m.titleInput.Focus()
}

// Init initializes the create view
func (m *CreateModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the create view
func (m *CreateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, CreateKeys.Cancel):
			return m, func() tea.Msg {
				return SwitchToListMsg{}
			}

		case key.Matches(msg, CreateKeys.Cycle):
			m.typeIndex = (m.typeIndex + 1) % len(createTypes)
			return m, nil

		case key.Matches(msg, CreateKeys.Submit):
			return m, m.create()
		}
	}

	var cmd tea.Cmd
	m.titleInput, cmd = m.titleInput.Update(msg)
	return m, cmd
}

func (m *CreateModel) create() tea.Cmd {
	return func() tea.Msg {
		title := strings.TrimSpace(m.titleInput.Value())
		chapterType := createTypes[m.typeIndex]

		cmd := commands.NewAddChapterCommand(m.store, m.ids, title, chapterType)
		result, err := cmd.Execute(context.Background())
		if err != nil {
			return CreateErrMsg{Err: err}
		}
		return CreateSuccessMsg{Message: result.Message}
	}
}

// View renders the create view
func (m *CreateModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("New Chapter"))
	b.WriteString("\n\n")
	b.WriteString(styles.Subtitle.Render("The chapter is inserted at the end of its segment."))
	b.WriteString("\n\n")

	b.WriteString(styles.InputLabel.Render("Title:"))
	b.WriteString("\n")
	b.WriteString(styles.InputFocused.Render(m.titleInput.View()))
	b.WriteString("\n\n")

	b.WriteString(styles.InputLabel.Render("Type:"))
	b.WriteString("\n")
	b.WriteString(createTypes[m.typeIndex].Label())
	b.WriteString("\n\n")

	if m.Message != "" {
		if m.MessageErr {
			b.WriteString(styles.ErrorMsg.Render(m.Message))
		} else {
			b.WriteString(styles.Success.Render(m.Message))
		}
		b.WriteString("\n\n")
	}

	b.WriteString(fmt.Sprintf("%s %s  %s %s  %s %s",
		styles.HelpKey.Render("tab"),
		styles.HelpDesc.Render("cycle type"),
		styles.HelpKey.Render("enter"),
		styles.HelpDesc.Render("create"),
		styles.HelpKey.Render("esc"),
		styles.HelpDesc.Render("cancel"),
	))

	return styles.App.Render(b.String())
}
