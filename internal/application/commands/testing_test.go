package commands

import (
	"errors"
	"strconv"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"exomind/internal/adapters/filesystem"
	"exomind/internal/domain"
	"exomind/internal/ports"
)

const (
	testRoot  = "/vault"
	testOut   = "/vault/.neural"
	testGraph = "/vault/.neural/graph.json"
)

func newVault(t *testing.T) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	files := map[string]string{
		"/vault/10_Projects/alpha.md":    "# Alpha Project\nLinks to [[beta]] and [[Missing Note]].",
		"/vault/20_Areas/beta.md":        "# Beta Area\nBack to [[alpha|the alpha]].",
		"/vault/30_Resources/beta.md":    "",
		"/vault/99_Archives/gamma.md":    "gamma without heading",
		"/vault/Elsewhere/ignored.md":    "[[alpha]]",
		"/vault/00_Inbox/not-a-note.txt": "[[alpha]]",
	}
	for path, content := range files {
		require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0644))
	}
	return fs
}

// flakyCorpus fails to read the listed paths
type flakyCorpus struct {
	ports.Corpus
	unreadable map[string]bool
}

func (c flakyCorpus) ReadNote(path string) (string, error) {
	if c.unreadable[path] {
		return "", errors.New("permission denied")
	}
	return c.Corpus.ReadNote(path)
}

// memMirror is an in-memory ports.GraphMirror
type memMirror struct {
	openErr  error
	opened   string
	closed   bool
	nodes    map[string]domain.Node
	edges    []domain.Edge
	meta     map[string]string
	replaced int
}

var _ ports.GraphMirror = (*memMirror)(nil)

func (m *memMirror) Open(dbPath string) error {
	if m.openErr != nil {
		return m.openErr
	}
	m.opened = dbPath
	return nil
}

func (m *memMirror) Close() error {
	m.closed = true
	return nil
}

func (m *memMirror) Replace(graph *domain.GraphData) error {
	m.nodes = make(map[string]domain.Node)
	for _, n := range graph.Nodes {
		m.nodes[n.ID] = n
	}
	m.edges = append([]domain.Edge(nil), graph.Edges...)
	m.meta = map[string]string{
		"notes": strconv.Itoa(graph.Stats.Notes),
		"nodes": strconv.Itoa(graph.Stats.Nodes),
		"edges": strconv.Itoa(graph.Stats.Edges),
	}
	m.replaced++
	return nil
}

func (m *memMirror) Meta(key string) (string, error) {
	return m.meta[key], nil
}

func (m *memMirror) GetNode(id string) (*domain.Node, error) {
	n, ok := m.nodes[id]
	if !ok {
		return nil, nil
	}
	return &n, nil
}

func (m *memMirror) FindLinksTo(id string) ([]domain.Edge, error) {
	out := []domain.Edge{}
	for _, e := range m.edges {
		if e.Dst == id {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *memMirror) FindLinksFrom(id string) ([]domain.Edge, error) {
	out := []domain.Edge{}
	for _, e := range m.edges {
		if e.Src == id {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *memMirror) BeginTx() (ports.MirrorTx, error) {
	return nil, errors.New("not supported")
}

func indexVault(t *testing.T, fs afero.Fs, mirror ports.GraphMirror) *domain.IndexResult {
	t.Helper()
	store := filesystem.NewGraphStore(fs)
	builder := domain.NewGraphBuilder(domain.NewTokenizer(), domain.NewLinkParser())
	cmd := NewIndexCommand(filesystem.NewCollector(fs, nil), store, mirror, builder, testRoot, testOut)
	result, err := cmd.Execute(t.Context())
	require.NoError(t, err)
	return result
}
