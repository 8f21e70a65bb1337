package cmd

import (
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"exomind/internal/adapters/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Long: `Serve index, recall and doctor over HTTP.

Endpoints:
  GET  /health
  GET  /doctor
  POST /index   {"notes_root": "...", "out_root": "..."}
  POST /recall  {"query": "...", "topk": 10, "graph": "..."}

Examples:
  exom serve
  exom serve --addr 127.0.0.1:9000`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.LogLevel != "debug" {
			gin.SetMode(gin.ReleaseMode)
		}

		server := web.NewServer(service, web.Defaults{
			NotesRoot: stringFlag(cmd, "notes-root", cfg.NotesRoot),
			OutRoot:   stringFlag(cmd, "out-root", cfg.OutRoot),
			GraphPath: stringFlag(cmd, "graph", cfg.GraphPath()),
			TopK:      cfg.Recall.TopK,
			Weights:   recallWeights(cmd),
		})
		addr, _ := cmd.Flags().GetString("addr")
		if !cmd.Flags().Changed("addr") {
			addr = cfg.Serve.Addr
		}
		return server.Run(addr)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("addr", ":8765", "listen address")
	serveCmd.Flags().String("notes-root", "", "default notes root for /index and /doctor")
	serveCmd.Flags().String("out-root", "", "default output folder for /index")
	serveCmd.Flags().String("graph", "", "default graph document for /recall")
	addWeightFlags(serveCmd)
}
