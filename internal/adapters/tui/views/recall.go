package views

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"exomind/internal/adapters/tui/styles"
	"exomind/internal/domain"
)

// Ranker scores graph nodes against a query
type Ranker interface {
	Recall(query string, topk int, w domain.Weights) []domain.RecallRow
}

// RecallKeyMap defines key bindings for the recall view
type RecallKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Copy     key.Binding
	Open     key.Binding
	Obsidian key.Binding
	Links    key.Binding
	Clear    key.Binding
	Quit     key.Binding
}

var RecallKeys = RecallKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "ctrl+p"),
		key.WithHelp("↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "ctrl+n"),
		key.WithHelp("↓", "down"),
	),
	Copy: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "copy path"),
	),
	Open: key.NewBinding(
		key.WithKeys("ctrl+o"),
		key.WithHelp("ctrl+o", "open"),
	),
	Obsidian: key.NewBinding(
		key.WithKeys("ctrl+b"),
		key.WithHelp("ctrl+b", "obsidian"),
	),
	Links: key.NewBinding(
		key.WithKeys("ctrl+l"),
		key.WithHelp("ctrl+l", "links"),
	),
	Clear: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "clear"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
}

// RecallModel is the model for the interactive recall view
type RecallModel struct {
	ViewState
	ranker  Ranker
	topk    int
	weights domain.Weights
	input   textinput.Model
	results []domain.RecallRow
	cursor  int
}

// NewRecallModel creates a new recall view model
func NewRecallModel(ranker Ranker, topk int, weights domain.Weights) *RecallModel {
	input := textinput.New()
	input.Placeholder = "Recall..."
	input.Focus()

	return &RecallModel{
		ranker:  ranker,
		topk:    topk,
		weights: weights,
		input:   input,
	}
}

// Init initializes the recall view
func (m *RecallModel) Init() tea.Cmd {
	return textinput.Blink
}

// Reset clears the query and results
func (m *RecallModel) Reset() {
	m.input.SetValue("")
	m.results = nil
	m.cursor = 0
	m.ClearMessage()
	m.input.Focus()
}

// Results returns the rows currently shown
func (m *RecallModel) Results() []domain.RecallRow {
	return m.results
}

// Selected returns the row under the cursor
func (m *RecallModel) Selected() (domain.RecallRow, bool) {
	if m.cursor < 0 || m.cursor >= len(m.results) {
		return domain.RecallRow{}, false
	}
	return m.results[m.cursor], true
}

// Update handles messages for the recall view
func (m *RecallModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, RecallKeys.Quit):
			return m, tea.Quit

		case key.Matches(msg, RecallKeys.Clear):
			if m.input.Value() == "" {
				return m, tea.Quit
			}
			m.Reset()
			return m, nil

		case key.Matches(msg, RecallKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, RecallKeys.Down):
			if m.cursor < len(m.results)-1 {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, RecallKeys.Copy):
			row, ok := m.Selected()
			if !ok {
				return m, nil
			}
			target := row.Title
			if row.Path != nil {
				target = *row.Path
			}
			if err := clipboard.WriteAll(target); err != nil {
				m.SetMessage(fmt.Sprintf("Copy failed: %v", err), true)
			} else {
				m.SetMessage("Copied "+target, false)
			}
			return m, nil

		case key.Matches(msg, RecallKeys.Open):
			if row, ok := m.Selected(); ok {
				return m, func() tea.Msg { return OpenNoteMsg{Row: row} }
			}
			return m, nil

		case key.Matches(msg, RecallKeys.Obsidian):
			if row, ok := m.Selected(); ok {
				return m, func() tea.Msg { return OpenInObsidianMsg{NodeID: row.NodeID()} }
			}
			return m, nil

		case key.Matches(msg, RecallKeys.Links):
			if row, ok := m.Selected(); ok {
				return m, func() tea.Msg { return ShowLinksMsg{NodeID: row.NodeID()} }
			}
			return m, nil
		}
	}

	previous := m.input.Value()

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	// Ranking is in memory, so rerun on every edit
	if query := m.input.Value(); query != previous {
		m.runQuery(query)
	}

	return m, cmd
}

func (m *RecallModel) runQuery(query string) {
	m.cursor = 0
	m.ClearMessage()
	if strings.TrimSpace(query) == "" {
		m.results = nil
		return
	}
	m.results = m.ranker.Recall(query, m.topk, m.weights)
}

// View renders the recall view
func (m *RecallModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Recall"))
	b.WriteString("\n\n")

	b.WriteString(styles.InputFocused.Render(m.input.View()))
	b.WriteString("\n\n")

	if len(m.results) == 0 {
		if strings.TrimSpace(m.input.Value()) != "" {
			b.WriteString(styles.MutedText.Render("No results found"))
		} else {
			b.WriteString(styles.MutedText.Render("Type a query to rank notes"))
		}
	} else {
		b.WriteString(styles.Subtitle.Render(fmt.Sprintf("%d results", len(m.results))))
		b.WriteString("\n\n")

		for i, row := range m.results {
			b.WriteString(m.renderRow(row, i == m.cursor))
			b.WriteString("\n")
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

	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("%s %s  %s %s  %s %s  %s %s  %s %s  %s %s",
		styles.HelpKey.Render("↑/↓"),
		styles.HelpDesc.Render("navigate"),
		styles.HelpKey.Render("enter"),
		styles.HelpDesc.Render("copy path"),
		styles.HelpKey.Render("ctrl+o"),
		styles.HelpDesc.Render("open"),
		styles.HelpKey.Render("ctrl+b"),
		styles.HelpDesc.Render("obsidian"),
		styles.HelpKey.Render("ctrl+l"),
		styles.HelpDesc.Render("links"),
		styles.HelpKey.Render("esc"),
		styles.HelpDesc.Render("clear/quit"),
	))

	return styles.App.Render(b.String())
}

// FormatRow renders a row the way `exom recall` prints it
func FormatRow(row domain.RecallRow) string {
	path := "None"
	if row.Path != nil {
		path = *row.Path
	}
	return fmt.Sprintf("%02d. score=%.2f | %s | %s", row.Rank, row.Score, row.Title, path)
}

func (m *RecallModel) renderRow(row domain.RecallRow, selected bool) string {
	text := FormatRow(row)
	if selected {
		return styles.NodeSelected.Render(text)
	}
	if row.Path == nil {
		return styles.NodeGhost.Render(text)
	}
	return text
}
