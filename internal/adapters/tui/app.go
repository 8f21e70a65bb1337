package tui

import (
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"exomind/internal/adapters/editor"
	"exomind/internal/adapters/obsidian"
	"exomind/internal/adapters/tui/views"
	"exomind/internal/domain"
)

// ViewState represents the current view
type ViewState int

const (
	ViewRecall ViewState = iota
	ViewLinks
)

// Options configures the recall view
type Options struct {
	NotesRoot string
	TopK      int
	Weights   domain.Weights
}

// App is the main TUI application model
type App struct {
	editor    *editor.Opener
	obsidian  *obsidian.Opener
	notesRoot string

	state  ViewState
	recall *views.RecallModel
	links  *views.LinksModel

	width  int
	height int
}

// NewApp creates a new TUI application. Nil openers disable the matching keys.
func NewApp(ranker views.Ranker, lookup views.LinksFunc, ed *editor.Opener, obs *obsidian.Opener, opts Options) *App {
	return &App{
		editor:    ed,
		obsidian:  obs,
		notesRoot: opts.NotesRoot,
		state:     ViewRecall,
		recall:    views.NewRecallModel(ranker, opts.TopK, opts.Weights),
		links:     views.NewLinksModel(lookup),
	}
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.recall.Init()
}

// State returns the active view
func (a *App) State() ViewState {
	return a.state
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.recall.SetSize(msg.Width, msg.Height)
		a.links.SetSize(msg.Width, msg.Height)
		return a, nil

	// View switching messages
	case views.ShowLinksMsg:
		a.state = ViewLinks
		return a, a.links.Load(msg.NodeID)

	case views.SwitchToRecallMsg:
		a.state = ViewRecall
		return a, nil

	case views.OpenNoteMsg:
		return a, a.openEditor(msg.Row)

	case views.OpenInObsidianMsg:
		return a, a.openObsidian(msg.NodeID)

	case editorFinishedMsg:
		if msg.err != nil {
			a.recall.SetMessage(msg.err.Error(), true)
		}
		return a, nil
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewRecall:
		_, cmd = a.recall.Update(msg)
	case ViewLinks:
		_, cmd = a.links.Update(msg)
	}

	return a, cmd
}

type editorFinishedMsg struct{ err error }

func (a *App) openEditor(row domain.RecallRow) tea.Cmd {
	if a.editor == nil {
		return nil
	}
	if row.Path == nil {
		return func() tea.Msg {
			return editorFinishedMsg{err: fmt.Errorf("%q is an unresolved link with no file", row.Title)}
		}
	}

	cmd, err := a.editor.Command(filepath.Join(a.notesRoot, filepath.FromSlash(*row.Path)))
	if err != nil {
		return func() tea.Msg {
			return editorFinishedMsg{err: err}
		}
	}

	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{err: err}
	})
}

func (a *App) openObsidian(nodeID string) tea.Cmd {
	if a.obsidian == nil {
		return nil
	}
	return func() tea.Msg {
		cmd, err := a.obsidian.Command(nodeID)
		if err != nil {
			return editorFinishedMsg{err: err}
		}
		return editorFinishedMsg{err: cmd.Run()}
	}
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewLinks:
		return a.links.View()
	default:
		return a.recall.View()
	}
}
