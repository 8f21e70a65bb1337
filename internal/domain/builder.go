package domain

import (
	"sort"
)

// GraphBuilder assembles a GraphData from collected notes
type GraphBuilder struct {
	parser *LinkParser
	stats  *TermStats
}

// NewGraphBuilder creates a builder sharing the given compiled patterns
func NewGraphBuilder(tokenizer *Tokenizer, parser *LinkParser) *GraphBuilder {
	return &GraphBuilder{
		parser: parser,
		stats:  NewTermStats(tokenizer),
	}
}

// Build resolves links, computes term weights and assembles the graph.
// Notes must have unique IDs; they are processed in ID order so the result
// does not depend on collection order.
func (b *GraphBuilder) Build(notesRoot string, notes []NoteInput) *GraphData {
	sorted := make([]NoteInput, len(notes))
	copy(sorted, notes)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].ID < sorted[j].ID
	})

	resolver := NewLinkResolver(b.parser, NewStemIndex(sorted))
	ghosts := make(map[string]Node)
	var edges []Edge
	for _, n := range sorted {
		edges = append(edges, resolver.Resolve(n, ghosts)...)
	}

	weights := b.stats.Weights(sorted)

	registry := make(map[string]Node, len(sorted)+len(ghosts))
	for _, n := range sorted {
		registry[n.ID] = Node{
			ID:       n.ID,
			Path:     stringPtr(n.ID),
			Title:    n.Title,
			Stem:     n.Stem,
			Semantic: weights[n.ID],
		}
	}
	for id, g := range ghosts {
		// A real note always wins over a ghost with the same ID
		if _, exists := registry[id]; !exists {
			registry[id] = g
		}
	}

	return Assemble(notesRoot, len(sorted), registry, edges)
}

// Assemble merges a node registry and edge list into a GraphData with nodes sorted by ID
func Assemble(notesRoot string, noteCount int, registry map[string]Node, edges []Edge) *GraphData {
	nodes := make([]Node, 0, len(registry))
	for _, n := range registry {
		if n.Semantic == nil {
			n.Semantic = map[string]float64{}
		}
		nodes = append(nodes, n)
	}
	sort.Slice(nodes, func(i, j int) bool {
		return nodes[i].ID < nodes[j].ID
	})

	if edges == nil {
		edges = []Edge{}
	}

	return &GraphData{
		NotesRoot: notesRoot,
		Nodes:     nodes,
		Edges:     edges,
		Stats: Stats{
			Notes: noteCount,
			Nodes: len(nodes),
			Edges: len(edges),
		},
	}
}
