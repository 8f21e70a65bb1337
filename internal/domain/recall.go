package domain

import (
	"slices"
	"sort"
	"strings"
)

const (
	lexicalMatchPoints = 2.0
	indegreeCap        = 10
	indegreeStep       = 0.1
)

// Weights scales each ranking signal. All weights must be non-negative.
type Weights struct {
	Lexical  float64 `json:"lexical"`
	Graph    float64 `json:"graph"`
	Semantic float64 `json:"semantic"`
}

// DefaultWeights weighs every signal equally
func DefaultWeights() Weights {
	return Weights{Lexical: 1, Graph: 1, Semantic: 1}
}

// Ranker scores graph nodes against free-text queries.
// Per-node data that does not depend on the query is computed once.
type Ranker struct {
	tokenizer  *Tokenizer
	nodes      []Node
	indegree   []int
	nodeTokens []map[string]struct{}
}

// NewRanker prepares a ranker over a loaded graph. The graph must not be mutated afterwards.
func NewRanker(graph *GraphData, tokenizer *Tokenizer) *Ranker {
	indegree := make(map[string]int)
	for _, e := range graph.Edges {
		indegree[e.Dst]++
	}

	r := &Ranker{
		tokenizer:  tokenizer,
		nodes:      graph.Nodes,
		indegree:   make([]int, len(graph.Nodes)),
		nodeTokens: make([]map[string]struct{}, len(graph.Nodes)),
	}
	for i, n := range graph.Nodes {
		r.indegree[i] = indegree[n.ID]
		r.nodeTokens[i] = tokenizer.Tokens(n.Title + " " + n.PathOrEmpty())
	}
	return r
}

type scoredNode struct {
	id  string
	row RecallRow
}

// Recall returns at most topk nodes with a positive score, best first.
// Equal scores are ordered by ascending node ID so output is reproducible.
func (r *Ranker) Recall(query string, topk int, w Weights) []RecallRow {
	if topk <= 0 {
		return []RecallRow{}
	}

	queryTokens := r.tokenizer.Tokens(query)
	queryTerms := sortedTermCounts(r.tokenizer.Counts(query))

	var scored []scoredNode
	for i, n := range r.nodes {
		score := w.Lexical*LexicalScore(queryTokens, r.nodeTokens[i]) +
			w.Graph*GraphSignal(r.indegree[i]) +
			w.Semantic*dot(queryTerms, n.Semantic)
		if score <= 0 {
			continue
		}
		scored = append(scored, scoredNode{
			id: n.ID,
			row: RecallRow{
				Score: score,
				Title: n.Title,
				Path:  n.Path,
			},
		})
	}

	sort.Slice(scored, func(i, j int) bool {
		if scored[i].row.Score != scored[j].row.Score {
			return scored[i].row.Score > scored[j].row.Score
		}
		return scored[i].id < scored[j].id
	})

	if len(scored) > topk {
		scored = scored[:topk]
	}
	rows := make([]RecallRow, len(scored))
	for i, s := range scored {
		rows[i] = s.row
		rows[i].Rank = i + 1
	}
	return rows
}

// LexicalScore awards two points per query token present in the node text tokens
func LexicalScore(queryTokens, textTokens map[string]struct{}) float64 {
	overlap := 0
	for tok := range queryTokens {
		if _, ok := textTokens[tok]; ok {
			overlap++
		}
	}
	return float64(overlap) * lexicalMatchPoints
}

// GraphSignal maps indegree to [0, 1], saturating at ten incoming links
func GraphSignal(indegree int) float64 {
	return float64(min(indegree, indegreeCap)) * indegreeStep
}

// SemanticScore is the unnormalized dot product of query term counts and a node's
// term weights. It is not a cosine: longer queries and documents score higher.
func SemanticScore(queryCounts map[string]int, vector map[string]float64) float64 {
	return dot(sortedTermCounts(queryCounts), vector)
}

type termCount struct {
	term  string
	count int
}

// sortedTermCounts fixes the summation order so scores are bit-for-bit stable
func sortedTermCounts(counts map[string]int) []termCount {
	terms := make([]termCount, 0, len(counts))
	for term, c := range counts {
		terms = append(terms, termCount{term: term, count: c})
	}
	slices.SortFunc(terms, func(a, b termCount) int {
		return strings.Compare(a.term, b.term)
	})
	return terms
}

func dot(terms []termCount, vector map[string]float64) float64 {
	sum := 0.0
	for _, t := range terms {
		sum += float64(t.count) * vector[t.term]
	}
	return sum
}
