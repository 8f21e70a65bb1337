package cmd

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"exomind/internal/adapters/editor"
	"exomind/internal/adapters/obsidian"
	"exomind/internal/adapters/tui"
	"exomind/internal/application"
	"exomind/internal/application/commands"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Interactive recall",
	Long: `Rank notes as you type. Enter copies the selected path, ctrl+o opens the
note in $EDITOR, ctrl+b opens it in Obsidian and ctrl+l shows its backlinks
and outlinks.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		topk := intFlag(cmd, "topk", cfg.Recall.TopK)
		weights := recallWeights(cmd)
		if err := application.ValidateRecall(topk, weights); err != nil {
			return err
		}

		ranker, err := service.Ranker(stringFlag(cmd, "graph", cfg.GraphPath()))
		if err != nil {
			return err
		}

		mirrorPath := application.MirrorPath(stringFlag(cmd, "out-root", cfg.OutRoot))
		lookup := func(nodeID string) (*commands.LinksReport, error) {
			return service.Links(context.Background(), mirrorPath, nodeID)
		}

		notesRoot := stringFlag(cmd, "notes-root", cfg.NotesRoot)
		app := tui.NewApp(ranker, lookup, editor.NewOpener(), obsidian.NewOpener(notesRoot), tui.Options{
			NotesRoot: notesRoot,
			TopK:      topk,
			Weights:   weights,
		})

		_, err = tea.NewProgram(app, tea.WithAltScreen()).Run()
		return err
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
	tuiCmd.Flags().String("graph", "", "graph document (default <out_root>/graph.json)")
	tuiCmd.Flags().String("out-root", "", "folder holding graph.db (default from config)")
	tuiCmd.Flags().String("notes-root", "", "notes root used to open files (default from config)")
	tuiCmd.Flags().Int("topk", 10, "maximum number of results")
	addWeightFlags(tuiCmd)
}
