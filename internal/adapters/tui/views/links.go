package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"exomind/internal/adapters/tui/styles"
	"exomind/internal/application/commands"
	"exomind/internal/domain"
)

// LinksFunc looks up the links of a node
type LinksFunc func(nodeID string) (*commands.LinksReport, error)

// LinksKeyMap defines key bindings for the links view
type LinksKeyMap struct {
	Back key.Binding
}

var LinksKeys = LinksKeyMap{
	Back: key.NewBinding(
		key.WithKeys("esc", "q"),
		key.WithHelp("esc/q", "back"),
	),
}

// LinksModel shows the backlinks and outlinks of one node
type LinksModel struct {
	ViewState
	lookup LinksFunc
	nodeID string
	report *commands.LinksReport
	err    error
}

// NewLinksModel creates a new links view model
func NewLinksModel(lookup LinksFunc) *LinksModel {
	return &LinksModel{lookup: lookup}
}

// Load fetches the links of nodeID in the background
func (m *LinksModel) Load(nodeID string) tea.Cmd {
	m.nodeID = nodeID
	m.report = nil
	m.err = nil
	lookup := m.lookup
	return func() tea.Msg {
		report, err := lookup(nodeID)
		return linksLoadedMsg{report: report, err: err}
	}
}

type linksLoadedMsg struct {
	report *commands.LinksReport
	err    error
}

// Init initializes the links view
func (m *LinksModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the links view
func (m *LinksModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case linksLoadedMsg:
		m.report = msg.report
		m.err = msg.err
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, LinksKeys.Back) {
			return m, func() tea.Msg { return SwitchToRecallMsg{} }
		}
	}

	return m, nil
}

// View renders the links view
func (m *LinksModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Links"))
	b.WriteString("\n\n")
	b.WriteString(styles.Subtitle.Render(m.nodeID))
	b.WriteString("\n\n")

	switch {
	case m.err != nil:
		b.WriteString(styles.ErrorMsg.Render(m.err.Error()))
	case m.report == nil:
		b.WriteString(styles.MutedText.Render("Loading..."))
	default:
		writeEdges(&b, "Backlinks", m.report.Backlinks, func(e domain.Edge) string { return "← " + e.Src })
		b.WriteString("\n")
		writeEdges(&b, "Outlinks", m.report.Outlinks, func(e domain.Edge) string { return "→ " + e.Dst })
	}

	b.WriteString("\n\n")
	b.WriteString(styles.HelpKey.Render("esc"))
	b.WriteString(" ")
	b.WriteString(styles.HelpDesc.Render("back"))

	return styles.App.Render(b.String())
}

func writeEdges(b *strings.Builder, label string, edges []domain.Edge, format func(domain.Edge) string) {
	b.WriteString(styles.InputLabel.Render(fmt.Sprintf("%s (%d)", label, len(edges))))
	b.WriteString("\n")
	if len(edges) == 0 {
		b.WriteString(styles.MutedText.Render("  none"))
		b.WriteString("\n")
		return
	}
	for _, e := range edges {
		line := "  " + format(e)
		if e.Kind == domain.EdgeUnresolved {
			line = styles.NodeGhost.Render(line + " (unresolved)")
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
}
