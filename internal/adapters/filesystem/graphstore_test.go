package filesystem

import (
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"exomind/internal/domain"
)

func strPtr(s string) *string { return &s }

func sampleGraph() *domain.GraphData {
	return &domain.GraphData{
		NotesRoot: "/vault",
		Nodes: []domain.Node{
			{
				ID:       "10_Projects/alpha.md",
				Path:     strPtr("10_Projects/alpha.md"),
				Title:    "Alpha",
				Stem:     "alpha",
				Semantic: map[string]float64{"zeta": 1.5, "alpha": 2.0},
			},
			{ID: "ghost/Missing", Title: "Missing", Stem: "Missing", Semantic: map[string]float64{}},
		},
		Edges: []domain.Edge{
			{Src: "10_Projects/alpha.md", Dst: "ghost/Missing", Kind: domain.EdgeUnresolved},
		},
		Stats: domain.Stats{Notes: 1, Nodes: 2, Edges: 1},
	}
}

func TestGraphStore_SaveLoad(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := NewGraphStore(fs)

	require.NoError(t, s.Save("/out/.neural/graph.json", sampleGraph()))
	assert.True(t, s.Exists("/out/.neural/graph.json"))

	loaded, err := s.Load("/out/.neural/graph.json")
	require.NoError(t, err)
	assert.Equal(t, sampleGraph(), loaded)
	assert.Nil(t, loaded.Nodes[1].Path)
}

func TestGraphStore_DocumentShape(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := NewGraphStore(fs)
	require.NoError(t, s.Save("/g.json", sampleGraph()))

	data, err := afero.ReadFile(fs, "/g.json")
	require.NoError(t, err)
	doc := string(data)

	assert.Contains(t, doc, `"notes_root": "/vault"`)
	assert.Contains(t, doc, `"path": null`)
	assert.Contains(t, doc, `"type": "UNRESOLVED_LINK"`)
	assert.Contains(t, doc, `"stats": {`)
	// Map keys are sorted
	assert.Less(t, strings.Index(doc, `"alpha": 2`), strings.Index(doc, `"zeta": 1.5`))
}

func TestGraphStore_SaveIsByteStable(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := NewGraphStore(fs)

	require.NoError(t, s.Save("/a.json", sampleGraph()))
	require.NoError(t, s.Save("/b.json", sampleGraph()))

	a, err := afero.ReadFile(fs, "/a.json")
	require.NoError(t, err)
	b, err := afero.ReadFile(fs, "/b.json")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestGraphStore_LoadErrors(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := NewGraphStore(fs)

	_, err := s.Load("/missing.json")
	assert.Error(t, err)
	assert.False(t, s.Exists("/missing.json"))

	require.NoError(t, afero.WriteFile(fs, "/bad.json", []byte("{not json"), 0644))
	_, err = s.Load("/bad.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse graph")
}

func TestGraphStore_LoadDataset(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := NewGraphStore(fs)
	want := []domain.BenchmarkQuery{
		{Query: "alpha", Expected: []string{"10_Projects/alpha.md"}},
		{Query: "missing", Expected: []string{"Missing", "ghost"}},
	}

	require.NoError(t, afero.WriteFile(fs, "/ds.json", []byte(`[
  {"query": "alpha", "expected": ["10_Projects/alpha.md"]},
  {"query": "missing", "expected": ["Missing", "ghost"]}
]`), 0644))
	require.NoError(t, afero.WriteFile(fs, "/ds.yml", []byte(`
- query: alpha
  expected:
    - 10_Projects/alpha.md
- query: missing
  expected: [Missing, ghost]
`), 0644))

	fromJSON, err := s.LoadDataset("/ds.json")
	require.NoError(t, err)
	assert.Equal(t, want, fromJSON)

	fromYAML, err := s.LoadDataset("/ds.yml")
	require.NoError(t, err)
	assert.Equal(t, want, fromYAML)
}

func TestGraphStore_LoadDatasetErrors(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := NewGraphStore(fs)

	_, err := s.LoadDataset("/none.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read dataset")

	require.NoError(t, afero.WriteFile(fs, "/bad.json", []byte(`{"query": 1}`), 0644))
	_, err = s.LoadDataset("/bad.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse dataset")
}
