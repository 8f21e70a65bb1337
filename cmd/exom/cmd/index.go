package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Index notes into the knowledge graph",
	Long: `Walk the category folders under the notes root, resolve every wikilink
and write the graph document to <out-root>/graph.json.

Examples:
  exom index --notes-root ~/notes
  exom index --notes-root ~/notes --out-root /tmp/neural --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		notesRoot := stringFlag(cmd, "notes-root", cfg.NotesRoot)
		outRoot := stringFlag(cmd, "out-root", cfg.OutRoot)

		result, err := service.Index(ctx, notesRoot, outRoot)
		if err != nil {
			return err
		}

		if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
			return printJSON(map[string]any{"ok": true, "result": result})
		}
		fmt.Printf("INDEX_OK notes=%d nodes=%d edges=%d -> %s\n",
			result.Notes, result.Nodes, result.Edges, result.GraphPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(indexCmd)
	indexCmd.Flags().String("notes-root", "", "root folder containing the category folders (default from config)")
	indexCmd.Flags().String("out-root", "", "output folder for graph.json (default from config)")
	indexCmd.Flags().Bool("json", false, "output JSON")
}
