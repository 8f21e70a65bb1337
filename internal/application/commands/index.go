package commands

import (
	"context"
	"fmt"
	"log/slog"

	"exomind/internal/application"
	"exomind/internal/domain"
	"exomind/internal/ports"
)

// IndexCommand rebuilds the knowledge graph from the notes on disk
type IndexCommand struct {
	corpus    ports.Corpus
	store     ports.GraphStore
	mirror    ports.GraphMirror
	builder   *domain.GraphBuilder
	NotesRoot string
	OutRoot   string
}

// NewIndexCommand creates a new IndexCommand. A nil mirror skips the SQLite mirror.
func NewIndexCommand(
	corpus ports.Corpus,
	store ports.GraphStore,
	mirror ports.GraphMirror,
	builder *domain.GraphBuilder,
	notesRoot, outRoot string,
) *IndexCommand {
	return &IndexCommand{
		corpus:    corpus,
		store:     store,
		mirror:    mirror,
		builder:   builder,
		NotesRoot: notesRoot,
		OutRoot:   outRoot,
	}
}

// Execute collects every note, builds the graph and overwrites the graph document
func (c *IndexCommand) Execute(ctx context.Context) (*domain.IndexResult, error) {
	if err := application.ValidateRequired("notes root", c.NotesRoot); err != nil {
		return nil, err
	}
	if err := application.ValidateRequired("out root", c.OutRoot); err != nil {
		return nil, err
	}

	paths, err := c.corpus.Collect(c.NotesRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to collect notes: %w", err)
	}
	if len(paths) == 0 {
		slog.Warn("no notes found", "notes_root", c.NotesRoot)
	}

	notes := make([]domain.NoteInput, 0, len(paths))
	seen := make(map[string]bool, len(paths))
	for _, path := range paths {
		id, err := domain.NoteID(c.NotesRoot, path)
		if err != nil {
			return nil, fmt.Errorf("failed to derive note id for %s: %w", path, err)
		}
		// Overlapping category roots can report the same file twice
		if seen[id] {
			continue
		}
		seen[id] = true

		content, err := c.corpus.ReadNote(path)
		if err != nil {
			slog.Debug("unreadable note indexed as empty", "path", path, "error", err)
			content = ""
		}

		stem := domain.NoteStem(path)
		notes = append(notes, domain.NoteInput{
			ID:      id,
			Stem:    stem,
			Title:   domain.TitleFromContent(content, stem),
			Content: content,
		})
	}

	graph := c.builder.Build(c.NotesRoot, notes)

	graphPath := application.GraphPath(c.OutRoot)
	if err := c.store.Save(graphPath, graph); err != nil {
		return nil, err
	}
	slog.Debug("graph written", "path", graphPath, "nodes", graph.Stats.Nodes, "edges", graph.Stats.Edges)

	if c.mirror != nil {
		if err := c.writeMirror(graph); err != nil {
			// The JSON document is the source of truth; the mirror only serves link queries
			slog.Warn("failed to update graph mirror", "error", err)
		}
	}

	return &domain.IndexResult{
		Notes:     graph.Stats.Notes,
		Nodes:     graph.Stats.Nodes,
		Edges:     graph.Stats.Edges,
		GraphPath: graphPath,
	}, nil
}

func (c *IndexCommand) writeMirror(graph *domain.GraphData) error {
	if err := c.mirror.Open(application.MirrorPath(c.OutRoot)); err != nil {
		return err
	}
	defer c.mirror.Close()

	return c.mirror.Replace(graph)
}
