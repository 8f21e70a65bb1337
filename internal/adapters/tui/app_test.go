package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"exomind/internal/adapters/tui/views"
	"exomind/internal/application/commands"
	"exomind/internal/domain"
)

type staticRanker []domain.RecallRow

func (r staticRanker) Recall(string, int, domain.Weights) []domain.RecallRow {
	return r
}

func newTestApp(lookups *[]string) *App {
	path := "10_Projects/alpha.md"
	ranker := staticRanker{{Rank: 1, Score: 2, Title: "Alpha", Path: &path}}
	lookup := func(id string) (*commands.LinksReport, error) {
		*lookups = append(*lookups, id)
		return &commands.LinksReport{Node: domain.Node{ID: id}}, nil
	}
	return NewApp(ranker, lookup, nil, nil, Options{NotesRoot: "/vault", TopK: 10, Weights: domain.DefaultWeights()})
}

func TestApp_SwitchesToLinksAndBack(t *testing.T) {
	var lookups []string
	app := newTestApp(&lookups)

	_, cmd := app.Update(views.ShowLinksMsg{NodeID: "10_Projects/alpha.md"})
	if app.State() != ViewLinks {
		t.Fatalf("expected links view, got %v", app.State())
	}
	if cmd == nil {
		t.Fatal("expected a load command")
	}
	app.Update(cmd())
	if len(lookups) != 1 || lookups[0] != "10_Projects/alpha.md" {
		t.Errorf("unexpected lookups: %v", lookups)
	}

	_, cmd = app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("expected a switch command")
	}
	app.Update(cmd())
	if app.State() != ViewRecall {
		t.Errorf("expected recall view, got %v", app.State())
	}
}

func TestApp_OpenersDisabled(t *testing.T) {
	var lookups []string
	app := newTestApp(&lookups)
	path := "10_Projects/alpha.md"

	if _, cmd := app.Update(views.OpenNoteMsg{Row: domain.RecallRow{Title: "Alpha", Path: &path}}); cmd != nil {
		t.Error("expected no command without an editor")
	}
	if _, cmd := app.Update(views.OpenInObsidianMsg{NodeID: path}); cmd != nil {
		t.Error("expected no command without an Obsidian opener")
	}
}
