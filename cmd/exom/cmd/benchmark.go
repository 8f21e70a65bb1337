package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var benchmarkCmd = &cobra.Command{
	Use:   "benchmark",
	Short: "Measure recall accuracy against a labeled dataset",
	Long: `Run every query of a dataset through recall and report hit@1, hit@3,
hit@5, mean reciprocal rank and average latency.

The dataset is a JSON (or YAML, for .yaml/.yml files) list of
{"query": "...", "expected": ["path or title", ...]} entries.

Examples:
  exom benchmark --dataset queries.json --topk 5
  exom benchmark --dataset queries.yaml --topk 10 --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		datasetPath := stringFlag(cmd, "dataset", "")
		topk, _ := cmd.Flags().GetInt("topk")

		report, err := service.Benchmark(ctx, stringFlag(cmd, "graph", cfg.GraphPath()), datasetPath, topk, recallWeights(cmd))
		if err != nil {
			return err
		}

		if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
			return printJSON(report)
		}

		fmt.Printf("hit@1: %.3f\n", report.HitAt1)
		fmt.Printf("hit@3: %.3f\n", report.HitAt3)
		fmt.Printf("hit@5: %.3f\n", report.HitAt5)
		fmt.Printf("mrr: %.3f\n", report.MRR)
		fmt.Printf("avg latency ms: %.3f\n", report.AvgLatencyMs)
		fmt.Println("per-query summary:")
		for i, q := range report.Queries {
			hit := "MISS"
			if q.HitRank != nil {
				hit = fmt.Sprintf("rank %d", *q.HitRank)
			}
			target := "no hit within topk"
			if q.HitPath != nil {
				target = *q.HitPath
			}
			fmt.Printf("%02d. %s | %s | latency=%.2fms | %s\n", i+1, q.Query, hit, q.LatencyMs, target)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(benchmarkCmd)
	benchmarkCmd.Flags().String("dataset", "", "benchmark dataset (JSON or YAML)")
	benchmarkCmd.Flags().Int("topk", 10, "recall depth per query")
	benchmarkCmd.Flags().String("graph", "", "graph document (default <out_root>/graph.json)")
	benchmarkCmd.Flags().Bool("json", false, "output JSON")
	addWeightFlags(benchmarkCmd)
	_ = benchmarkCmd.MarkFlagRequired("dataset")
	_ = benchmarkCmd.MarkFlagRequired("topk")
}
