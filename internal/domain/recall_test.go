package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func realNode(id, title string, semantic map[string]float64) Node {
	if semantic == nil {
		semantic = map[string]float64{}
	}
	return Node{ID: id, Path: stringPtr(id), Title: title, Stem: title, Semantic: semantic}
}

func ghostNode(raw string) Node {
	return Node{ID: GhostPrefix + raw, Title: raw, Stem: raw, Semantic: map[string]float64{}}
}

func TestLexicalScore_Disjoint(t *testing.T) {
	tok := NewTokenizer()

	got := LexicalScore(tok.Tokens("alpha beta"), tok.Tokens("gamma delta"))

	assert.Equal(t, 0.0, got)
}

func TestLexicalScore_CountsDistinctOverlap(t *testing.T) {
	tok := NewTokenizer()

	got := LexicalScore(tok.Tokens("alpha alpha beta"), tok.Tokens("Alpha and Beta and more"))

	assert.Equal(t, 4.0, got)
}

func TestGraphSignal(t *testing.T) {
	assert.Equal(t, 0.0, GraphSignal(0))
	assert.InDelta(t, 0.5, GraphSignal(5), 1e-12)
	assert.InDelta(t, 1.0, GraphSignal(10), 1e-12)
	assert.InDelta(t, 1.0, GraphSignal(20), 1e-12)
}

func TestSemanticScore(t *testing.T) {
	vector := map[string]float64{"foo": 2.5, "bar": 1.0}
	query := map[string]int{"foo": 2, "baz": 1}

	assert.Equal(t, 5.0, SemanticScore(query, vector))
}

func TestSemanticScore_EmptyVector(t *testing.T) {
	assert.Equal(t, 0.0, SemanticScore(map[string]int{"foo": 3}, nil))
}

func TestRecall_CombinesSignals(t *testing.T) {
	g := &GraphData{
		Nodes: []Node{
			realNode("10_Projects/foo.md", "Foo", map[string]float64{"foo": 2.5, "bar": 1.0}),
			realNode("20_Areas/other.md", "Other", nil),
		},
		Edges: []Edge{
			{Src: "20_Areas/other.md", Dst: "10_Projects/foo.md", Kind: EdgeWikilink},
		},
	}
	r := NewRanker(g, NewTokenizer())

	rows := r.Recall("foo foo baz", 10, Weights{Lexical: 1, Graph: 2, Semantic: 0.5})

	require.Len(t, rows, 1)
	// lexical 2 (foo), graph 0.1*2, semantic 5.0*0.5
	assert.InDelta(t, 2+0.2+2.5, rows[0].Score, 1e-12)
	assert.Equal(t, 1, rows[0].Rank)
	assert.Equal(t, "Foo", rows[0].Title)
	require.NotNil(t, rows[0].Path)
	assert.Equal(t, "10_Projects/foo.md", *rows[0].Path)
}

func TestRecall_ExcludesNonPositive(t *testing.T) {
	g := &GraphData{
		Nodes: []Node{
			realNode("a.md", "apple", nil),
			realNode("b.md", "banana", nil),
		},
	}
	r := NewRanker(g, NewTokenizer())

	assert.Empty(t, r.Recall("cherry", 10, DefaultWeights()))
	assert.Empty(t, r.Recall("apple", 10, Weights{}))
}

func TestRecall_TieBreakByID(t *testing.T) {
	g := &GraphData{
		Nodes: []Node{
			realNode("c.md", "Same", nil),
			realNode("a.md", "Same", nil),
			realNode("b.md", "Same", nil),
		},
	}
	r := NewRanker(g, NewTokenizer())

	rows := r.Recall("same", 2, DefaultWeights())

	require.Len(t, rows, 2)
	assert.Equal(t, rows[0].Score, rows[1].Score)
	assert.Equal(t, "a.md", *rows[0].Path)
	assert.Equal(t, "b.md", *rows[1].Path)
}

func TestRecall_GhostsRankByIndegree(t *testing.T) {
	g := &GraphData{
		Nodes: []Node{
			realNode("a.md", "a", nil),
			realNode("b.md", "b", nil),
			ghostNode("Wanted"),
		},
		Edges: []Edge{
			{Src: "a.md", Dst: "ghost/Wanted", Kind: EdgeUnresolved},
			{Src: "b.md", Dst: "ghost/Wanted", Kind: EdgeUnresolved},
		},
	}
	r := NewRanker(g, NewTokenizer())

	rows := r.Recall("anything", 10, DefaultWeights())

	require.Len(t, rows, 1)
	assert.Equal(t, "Wanted", rows[0].Title)
	assert.Nil(t, rows[0].Path)
	assert.InDelta(t, 0.2, rows[0].Score, 1e-12)
}

func TestRecall_TopKZero(t *testing.T) {
	g := &GraphData{Nodes: []Node{realNode("a.md", "apple", nil)}}
	r := NewRanker(g, NewTokenizer())

	rows := r.Recall("apple", 0, DefaultWeights())

	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestRecall_Invariants(t *testing.T) {
	g := NewGraphBuilder(NewTokenizer(), NewLinkParser()).Build("/vault", testNotes())
	r := NewRanker(g, NewTokenizer())

	queries := []string{"", "alpha", "beta area", "missing note", "zzz", "alpha beta missing project"}
	weightSets := []Weights{
		DefaultWeights(),
		{Lexical: 1},
		{Graph: 1},
		{Semantic: 1},
		{Lexical: 0.3, Graph: 5, Semantic: 0.01},
	}

	for _, q := range queries {
		for _, w := range weightSets {
			for _, topk := range []int{1, 2, 3, 10} {
				t.Run(fmt.Sprintf("%q/%v/%d", q, w, topk), func(t *testing.T) {
					rows := r.Recall(q, topk, w)
					all := r.Recall(q, len(g.Nodes), w)

					assert.LessOrEqual(t, len(rows), min(topk, len(all)))
					for i, row := range rows {
						assert.Greater(t, row.Score, 0.0)
						assert.Equal(t, i+1, row.Rank)
						if i > 0 {
							assert.GreaterOrEqual(t, rows[i-1].Score, row.Score)
						}
					}
					// Truncation keeps the head of the full ranking
					assert.Equal(t, all[:len(rows)], rows)
				})
			}
		}
	}
}

func TestRecall_Reproducible(t *testing.T) {
	g := NewGraphBuilder(NewTokenizer(), NewLinkParser()).Build("/vault", testNotes())

	first := NewRanker(g, NewTokenizer()).Recall("alpha beta note", 10, DefaultWeights())
	for range 20 {
		again := NewRanker(g, NewTokenizer()).Recall("alpha beta note", 10, DefaultWeights())
		assert.Equal(t, first, again)
	}
}

func TestRecallRow_NodeID(t *testing.T) {
	note := RecallRow{Title: "Alpha", Path: stringPtr("10_Projects/alpha.md")}
	ghost := RecallRow{Title: "Missing Note"}

	assert.Equal(t, "10_Projects/alpha.md", note.NodeID())
	assert.Equal(t, "ghost/Missing Note", ghost.NodeID())
}
