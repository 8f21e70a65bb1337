package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"exomind/internal/application"
)

var linksCmd = &cobra.Command{
	Use:   "links <node-id>",
	Short: "Show backlinks and outlinks of a node",
	Long: `Query the SQLite mirror written by 'exom index' for the edges into and
out of one node.

Examples:
  exom links 10_Projects/alpha.md
  exom links "ghost/Missing Note" --json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		outRoot := stringFlag(cmd, "out-root", cfg.OutRoot)

		report, err := service.Links(ctx, application.MirrorPath(outRoot), args[0])
		if err != nil {
			return err
		}

		if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
			return printJSON(report)
		}

		fmt.Printf("%s | %s | %s\n", report.Node.ID, report.Node.Title, orNone(report.Node.Path))
		fmt.Printf("backlinks (%d):\n", len(report.Backlinks))
		for _, e := range report.Backlinks {
			fmt.Printf("  <- %s [%s]\n", e.Src, e.Kind)
		}
		fmt.Printf("outlinks (%d):\n", len(report.Outlinks))
		for _, e := range report.Outlinks {
			fmt.Printf("  -> %s [%s]\n", e.Dst, e.Kind)
		}
		fmt.Printf("mirror: notes=%d nodes=%d edges=%d\n",
			report.Mirror.Notes, report.Mirror.Nodes, report.Mirror.Edges)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(linksCmd)
	linksCmd.Flags().String("out-root", "", "folder holding graph.db (default from config)")
	linksCmd.Flags().Bool("json", false, "output JSON")
}
