package domain

import "strings"

// StemIndex maps a lowercase filename stem to the IDs of every note sharing it.
// Same-named notes in different categories all stay reachable.
type StemIndex map[string][]string

// NewStemIndex indexes notes by stem, keeping IDs in input order
func NewStemIndex(notes []NoteInput) StemIndex {
	idx := make(StemIndex, len(notes))
	for _, n := range notes {
		key := strings.ToLower(n.Stem)
		idx[key] = append(idx[key], n.ID)
	}
	return idx
}

// LinkResolver turns wiki links into edges, creating ghost nodes for unresolved targets
type LinkResolver struct {
	parser *LinkParser
	stems  StemIndex
}

// NewLinkResolver creates a resolver over the given stem index
func NewLinkResolver(parser *LinkParser, stems StemIndex) *LinkResolver {
	return &LinkResolver{parser: parser, stems: stems}
}

// Resolve extracts the links of one note and returns its outgoing edges.
// Ghost nodes for unresolved targets are added to ghosts unless already present.
func (r *LinkResolver) Resolve(note NoteInput, ghosts map[string]Node) []Edge {
	var edges []Edge
	for _, raw := range r.parser.Targets(note.Content) {
		if candidates, ok := r.stems[ResolutionKey(raw)]; ok {
			// Ambiguous stems fan out to every candidate
			for _, dst := range candidates {
				edges = append(edges, Edge{Src: note.ID, Dst: dst, Kind: EdgeWikilink})
			}
			continue
		}

		ghostID := GhostPrefix + raw
		if _, exists := ghosts[ghostID]; !exists {
			ghosts[ghostID] = Node{
				ID:       ghostID,
				Title:    raw,
				Stem:     raw,
				Semantic: map[string]float64{},
			}
		}
		edges = append(edges, Edge{Src: note.ID, Dst: ghostID, Kind: EdgeUnresolved})
	}
	return edges
}
