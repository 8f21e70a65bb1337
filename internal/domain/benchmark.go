package domain

import "time"

// BenchmarkQuery is one labeled query: any of Expected (a path or title) counts as a hit
type BenchmarkQuery struct {
	Query    string   `json:"query" yaml:"query"`
	Expected []string `json:"expected" yaml:"expected"`
}

// QuerySummary records the outcome of one benchmark query
type QuerySummary struct {
	Query     string  `json:"query"`
	HitRank   *int    `json:"hit_rank"` // nil on a miss
	HitPath   *string `json:"hit_path"`
	LatencyMs float64 `json:"latency_ms"`
}

// BenchmarkReport aggregates accuracy and latency over a dataset
type BenchmarkReport struct {
	HitAt1       float64        `json:"hit_at_1"`
	HitAt3       float64        `json:"hit_at_3"`
	HitAt5       float64        `json:"hit_at_5"`
	MRR          float64        `json:"mrr"`
	AvgLatencyMs float64        `json:"avg_latency_ms"`
	Queries      []QuerySummary `json:"queries"`
}

// BenchmarkOptions configures a benchmark run
type BenchmarkOptions struct {
	TopK    int
	Weights Weights
	Now     func() time.Time // defaults to time.Now
}

// RunBenchmark ranks every dataset query and measures hit@1/3/5, MRR and latency
func RunBenchmark(ranker *Ranker, dataset []BenchmarkQuery, opts BenchmarkOptions) *BenchmarkReport {
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	report := &BenchmarkReport{Queries: make([]QuerySummary, 0, len(dataset))}
	var hit1, hit3, hit5 int
	var totalLatency, reciprocal float64

	for _, q := range dataset {
		expected := make(map[string]struct{}, len(q.Expected))
		for _, e := range q.Expected {
			expected[e] = struct{}{}
		}

		start := now()
		rows := ranker.Recall(q.Query, opts.TopK, opts.Weights)
		latency := float64(now().Sub(start).Nanoseconds()) / 1e6
		totalLatency += latency

		summary := QuerySummary{Query: q.Query, LatencyMs: latency}
		if rank, ident, ok := firstHit(rows, expected); ok {
			summary.HitRank = &rank
			summary.HitPath = &ident
			if rank <= 1 {
				hit1++
			}
			if rank <= 3 {
				hit3++
			}
			if rank <= 5 {
				hit5++
			}
			reciprocal += 1 / float64(rank)
		}
		report.Queries = append(report.Queries, summary)
	}

	if total := float64(len(dataset)); total > 0 {
		report.HitAt1 = float64(hit1) / total
		report.HitAt3 = float64(hit3) / total
		report.HitAt5 = float64(hit5) / total
		report.MRR = reciprocal / total
		report.AvgLatencyMs = totalLatency / total
	}
	return report
}

// firstHit returns the rank of the first row whose path or title is expected,
// and the identifier to report for it: the path, or the title for ghost rows
func firstHit(rows []RecallRow, expected map[string]struct{}) (int, string, bool) {
	for _, row := range rows {
		matched := false
		if row.Path != nil {
			_, matched = expected[*row.Path]
		}
		if !matched {
			_, matched = expected[row.Title]
		}
		if matched {
			if row.Path != nil {
				return row.Rank, *row.Path, true
			}
			return row.Rank, row.Title, true
		}
	}
	return 0, "", false
}
