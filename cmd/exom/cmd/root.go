package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"exomind/internal/adapters/filesystem"
	"exomind/internal/adapters/sqlite"
	"exomind/internal/application/commands"
	"exomind/internal/config"
	"exomind/internal/logging"
	"exomind/internal/ports"
)

var (
	cfg     *config.Config
	service *commands.Service
)

var rootCmd = &cobra.Command{
	Use:   "exom",
	Short: "Index notes into a knowledge graph and recall from it",
	Long: `exom indexes a folder of markdown notes into a knowledge graph of notes,
wikilinks and unresolved links, then ranks the graph against free-text queries.

Settings come from .exomind.yaml, EXOM_* environment variables and flags,
in increasing order of precedence.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		logging.Setup(cfg.LogLevel, os.Stderr)

		fs := afero.NewOsFs()
		store := filesystem.NewGraphStore(fs)
		newMirror := func() ports.GraphMirror { return sqlite.NewMirror() }
		service = commands.NewService(filesystem.NewCollector(fs, cfg.NoteDirs), store, store, newMirror)
		service.MirrorOnIndex = cfg.Index.SQLiteMirror
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// stringFlag returns the flag value when set on the command line, the config value otherwise
func stringFlag(cmd *cobra.Command, name, fromConfig string) string {
	if cmd.Flags().Changed(name) {
		v, _ := cmd.Flags().GetString(name)
		return config.ExpandPath(v)
	}
	return config.ExpandPath(fromConfig)
}

func intFlag(cmd *cobra.Command, name string, fromConfig int) int {
	if cmd.Flags().Changed(name) {
		v, _ := cmd.Flags().GetInt(name)
		return v
	}
	return fromConfig
}

func floatFlag(cmd *cobra.Command, name string, fromConfig float64) float64 {
	if cmd.Flags().Changed(name) {
		v, _ := cmd.Flags().GetFloat64(name)
		return v
	}
	return fromConfig
}
