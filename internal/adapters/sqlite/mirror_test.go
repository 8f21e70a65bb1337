package sqlite

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"exomind/internal/domain"
)

func strPtr(s string) *string { return &s }

func sampleGraph() *domain.GraphData {
	return &domain.GraphData{
		NotesRoot: "/vault",
		Nodes: []domain.Node{
			{ID: "10_Projects/alpha.md", Path: strPtr("10_Projects/alpha.md"), Title: "Alpha", Stem: "alpha"},
			{ID: "20_Areas/beta.md", Path: strPtr("20_Areas/beta.md"), Title: "Beta", Stem: "beta"},
			{ID: "ghost/Missing", Title: "Missing", Stem: "Missing"},
		},
		Edges: []domain.Edge{
			{Src: "10_Projects/alpha.md", Dst: "20_Areas/beta.md", Kind: domain.EdgeWikilink},
			{Src: "10_Projects/alpha.md", Dst: "ghost/Missing", Kind: domain.EdgeUnresolved},
			{Src: "20_Areas/beta.md", Dst: "10_Projects/alpha.md", Kind: domain.EdgeWikilink},
			{Src: "20_Areas/beta.md", Dst: "ghost/Missing", Kind: domain.EdgeUnresolved},
		},
		Stats: domain.Stats{Notes: 2, Nodes: 3, Edges: 4},
	}
}

func openMirror(t *testing.T) *Mirror {
	t.Helper()
	m := NewMirror()
	require.NoError(t, m.Open(filepath.Join(t.TempDir(), ".neural", "graph.db")))
	t.Cleanup(func() { m.Close() })
	return m
}

func TestMirror_ReplaceAndQuery(t *testing.T) {
	m := openMirror(t)
	require.NoError(t, m.Replace(sampleGraph()))

	node, err := m.GetNode("20_Areas/beta.md")
	require.NoError(t, err)
	require.NotNil(t, node)
	assert.Equal(t, "Beta", node.Title)
	require.NotNil(t, node.Path)
	assert.Equal(t, "20_Areas/beta.md", *node.Path)

	ghost, err := m.GetNode("ghost/Missing")
	require.NoError(t, err)
	require.NotNil(t, ghost)
	assert.True(t, ghost.IsGhost())

	back, err := m.FindLinksTo("ghost/Missing")
	require.NoError(t, err)
	require.Len(t, back, 2)
	assert.Equal(t, "10_Projects/alpha.md", back[0].Src)
	assert.Equal(t, "20_Areas/beta.md", back[1].Src)
	assert.Equal(t, domain.EdgeUnresolved, back[0].Kind)

	out, err := m.FindLinksFrom("10_Projects/alpha.md")
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "20_Areas/beta.md", out[0].Dst)
	assert.Equal(t, "ghost/Missing", out[1].Dst)

	edges, err := m.Meta("edges")
	require.NoError(t, err)
	assert.Equal(t, "4", edges)
}

func TestMirror_GetNodeMissing(t *testing.T) {
	m := openMirror(t)

	node, err := m.GetNode("nope.md")

	require.NoError(t, err)
	assert.Nil(t, node)
}

func TestMirror_ReplaceDropsStaleRows(t *testing.T) {
	m := openMirror(t)
	require.NoError(t, m.Replace(sampleGraph()))

	smaller := &domain.GraphData{
		NotesRoot: "/vault",
		Nodes: []domain.Node{
			{ID: "10_Projects/alpha.md", Path: strPtr("10_Projects/alpha.md"), Title: "Alpha", Stem: "alpha"},
		},
		Edges: []domain.Edge{},
		Stats: domain.Stats{Notes: 1, Nodes: 1},
	}
	require.NoError(t, m.Replace(smaller))

	node, err := m.GetNode("ghost/Missing")
	require.NoError(t, err)
	assert.Nil(t, node)

	out, err := m.FindLinksFrom("10_Projects/alpha.md")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestMirror_RollbackKeepsPreviousState(t *testing.T) {
	m := openMirror(t)
	require.NoError(t, m.Replace(sampleGraph()))

	tx, err := m.BeginTx()
	require.NoError(t, err)
	require.NoError(t, tx.Clear())
	require.NoError(t, tx.Rollback())

	node, err := m.GetNode("10_Projects/alpha.md")
	require.NoError(t, err)
	assert.NotNil(t, node)
}

func TestMirror_CloseIdempotent(t *testing.T) {
	m := NewMirror()
	assert.NoError(t, m.Close())
}
