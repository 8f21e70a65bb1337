package domain

// EdgeKind classifies a link between two graph nodes
type EdgeKind string

const (
	EdgeWikilink   EdgeKind = "WIKILINK"
	EdgeUnresolved EdgeKind = "UNRESOLVED_LINK"
)

// GhostPrefix is prepended to the raw link text to form a ghost node ID
const GhostPrefix = "ghost/"

// Node is a note in the graph, or a ghost standing in for an unresolved link target
type Node struct {
	ID       string             `json:"id"`
	Path     *string            `json:"path"` // nil for ghosts
	Title    string             `json:"title"`
	Stem     string             `json:"stem"`
	Semantic map[string]float64 `json:"semantic"`
}

// IsGhost reports whether the node has no backing note file
func (n Node) IsGhost() bool {
	return n.Path == nil
}

// PathOrEmpty returns the note path, or "" for ghosts
func (n Node) PathOrEmpty() string {
	if n.Path == nil {
		return ""
	}
	return *n.Path
}

// Edge is a directed link from one node to another
type Edge struct {
	Src  string   `json:"src"`
	Dst  string   `json:"dst"`
	Kind EdgeKind `json:"type"`
}

// Stats holds the counts recorded alongside a graph
type Stats struct {
	Notes int `json:"notes"` // real note files only
	Nodes int `json:"nodes"` // includes ghosts
	Edges int `json:"edges"`
}

// GraphData is the persisted knowledge graph
type GraphData struct {
	NotesRoot string `json:"notes_root"`
	Nodes     []Node `json:"nodes"`
	Edges     []Edge `json:"edges"`
	Stats     Stats  `json:"stats"`
}

// IndexResult summarizes a completed index run
type IndexResult struct {
	Notes     int    `json:"notes"`
	Nodes     int    `json:"nodes"`
	Edges     int    `json:"edges"`
	GraphPath string `json:"graph_path"`
}

// RecallRow is one ranked recall result
type RecallRow struct {
	Rank  int     `json:"rank"`
	Score float64 `json:"score"`
	Title string  `json:"title"`
	Path  *string `json:"path"`
}

// NodeID recovers the id of the ranked node. Ghost titles are the raw link text.
func (r RecallRow) NodeID() string {
	if r.Path != nil {
		return *r.Path
	}
	return GhostPrefix + r.Title
}

// NoteInput is a collected note ready to be turned into a graph node
type NoteInput struct {
	ID      string // root-relative, "/"-joined
	Stem    string
	Title   string
	Content string
}

func stringPtr(s string) *string {
	return &s
}
