package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"naskah/internal/adapters/tui/views"
	"naskah/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewList ViewState = iota
	ViewCreate
	ViewHelp
)

// App is the main TUI application model
type App struct {
	store ports.ManuscriptStore
	ids   ports.IDGenerator

	state  ViewState
	list   *views.ListModel
	create *views.CreateModel
	help   *views.HelpModel

	width  int
	height int
}

// NewApp creates a new TUI application
func NewApp(store ports.ManuscriptStore, ids ports.IDGenerator) *App {
	return &App{
		store:  store,
		ids:    ids,
		state:  ViewList,
		list:   views.NewListModel(store),
		create: views.NewCreateModel(store, ids),
		help:   views.NewHelpModel(),
	}
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.list.Init()
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.list.SetSize(msg.Width, msg.Height)
		a.create.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil

	// View switching messages
	case views.SwitchToCreateMsg:
		a.state = ViewCreate
		a.create.Reset()
		return a, a.create.Init()

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	case views.SwitchToListMsg:
		a.state = ViewList
		return a, a.list.Reload()

	// Create view messages
	case views.CreateSuccessMsg:
		a.state = ViewList
		return a, a.list.Reload()

	case views.CreateErrMsg:
		a.create.SetMessage(msg.Err.Error(), true)
		return a, nil
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewList:
		_, cmd = a.list.Update(msg)
	case ViewCreate:
		_, cmd = a.create.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	}

	return a, cmd
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewCreate:
		return a.create.View()
	case ViewHelp:
		return a.help.View()
	default:
		return a.list.View()
	}
}
