package main

import (
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/afero"

	"exomind/internal/adapters/filesystem"
	mcpadapter "exomind/internal/adapters/mcp"
	"exomind/internal/adapters/sqlite"
	"exomind/internal/application/commands"
	"exomind/internal/config"
	"exomind/internal/domain"
	"exomind/internal/logging"
	"exomind/internal/ports"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("exom-mcp: %v", err)
	}

	notesRoot := flag.String("notes-root", cfg.NotesRoot, "default notes root")
	outRoot := flag.String("out-root", cfg.OutRoot, "default output folder")
	graph := flag.String("graph", cfg.GraphPath(), "default graph document")
	flag.Parse()

	// stdout carries the protocol
	logging.Setup(cfg.LogLevel, os.Stderr)

	fs := afero.NewOsFs()
	store := filesystem.NewGraphStore(fs)
	service := commands.NewService(
		filesystem.NewCollector(fs, cfg.NoteDirs),
		store,
		store,
		func() ports.GraphMirror { return sqlite.NewMirror() },
	)
	service.MirrorOnIndex = cfg.Index.SQLiteMirror

	mcpServer := server.NewMCPServer(
		"exom-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpadapter.RegisterTools(mcpServer, service, mcpadapter.Defaults{
		NotesRoot: config.ExpandPath(*notesRoot),
		OutRoot:   config.ExpandPath(*outRoot),
		GraphPath: config.ExpandPath(*graph),
		TopK:      cfg.Recall.TopK,
		Weights: domain.Weights{
			Lexical:  cfg.Recall.LexicalWeight,
			Graph:    cfg.Recall.GraphWeight,
			Semantic: cfg.Recall.SemanticWeight,
		},
	})

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("exom-mcp: %v", err)
	}
}
