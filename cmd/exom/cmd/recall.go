package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"exomind/internal/domain"
)

var recallCmd = &cobra.Command{
	Use:   "recall",
	Short: "Rank graph nodes against a query",
	Long: `Score every node of the graph by title/path overlap, incoming links and
term weights, and print the best matches.

Examples:
  exom recall --query "graph database"
  exom recall --query rust --topk 3 --semantic-weight 0 --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		query, _ := cmd.Flags().GetString("query")
		topk := intFlag(cmd, "topk", cfg.Recall.TopK)
		weights := recallWeights(cmd)

		rows, err := service.Recall(ctx, stringFlag(cmd, "graph", cfg.GraphPath()), query, topk, weights)
		if err != nil {
			return err
		}

		if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
			return printJSON(map[string]any{"query": query, "top_k": topk, "results": rows})
		}
		for _, r := range rows {
			fmt.Printf("%02d. score=%.2f | %s | %s\n", r.Rank, r.Score, r.Title, orNone(r.Path))
		}
		return nil
	},
}

func recallWeights(cmd *cobra.Command) domain.Weights {
	return domain.Weights{
		Lexical:  floatFlag(cmd, "lexical-weight", cfg.Recall.LexicalWeight),
		Graph:    floatFlag(cmd, "graph-weight", cfg.Recall.GraphWeight),
		Semantic: floatFlag(cmd, "semantic-weight", cfg.Recall.SemanticWeight),
	}
}

func addWeightFlags(cmd *cobra.Command) {
	cmd.Flags().Float64("lexical-weight", 1.0, "multiplier for the title/path overlap score")
	cmd.Flags().Float64("graph-weight", 1.0, "multiplier for the in-degree score")
	cmd.Flags().Float64("semantic-weight", 1.0, "multiplier for the term-weight score")
}

func init() {
	rootCmd.AddCommand(recallCmd)
	recallCmd.Flags().String("query", "", "free-text query")
	recallCmd.Flags().Int("topk", 10, "maximum number of results")
	recallCmd.Flags().String("graph", "", "graph document (default <out_root>/graph.json)")
	recallCmd.Flags().Bool("json", false, "output JSON")
	addWeightFlags(recallCmd)
	_ = recallCmd.MarkFlagRequired("query")
}
