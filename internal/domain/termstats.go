package domain

import "math"

// TermStats computes corpus-wide TF-IDF term weights
type TermStats struct {
	tokenizer *Tokenizer
}

// NewTermStats creates a term statistics engine using the shared tokenizer
func NewTermStats(tokenizer *Tokenizer) *TermStats {
	return &TermStats{tokenizer: tokenizer}
}

// IDF returns the smoothed inverse document frequency ln((N+1)/(df+1)) + 1.
// N is clamped to at least 1.
func IDF(totalDocs, docFreq int) float64 {
	n := max(totalDocs, 1)
	return math.Log(float64(n+1)/float64(docFreq+1)) + 1
}

// Weights returns a term → tf*idf vector per note ID.
//
// The first pass counts terms in every note (title + body). Document frequencies
// are only known once that pass has seen the whole corpus, so weights are
// computed in a second pass.
func (s *TermStats) Weights(notes []NoteInput) map[string]map[string]float64 {
	counts := make([]map[string]int, len(notes))
	for i, n := range notes {
		counts[i] = s.tokenizer.Counts(n.Title + " " + n.Content)
	}

	docFreq := make(map[string]int)
	for _, c := range counts {
		for term := range c {
			docFreq[term]++
		}
	}

	weights := make(map[string]map[string]float64, len(notes))
	for i, n := range notes {
		vec := make(map[string]float64, len(counts[i]))
		for term, tf := range counts[i] {
			vec[term] = float64(tf) * IDF(len(notes), docFreq[term])
		}
		weights[n.ID] = vec
	}
	return weights
}
