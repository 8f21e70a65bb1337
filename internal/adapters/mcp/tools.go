package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"exomind/internal/application/commands"
	"exomind/internal/config"
	"exomind/internal/domain"
)

// Engine is the subset of commands.Service the tools call
type Engine interface {
	Index(ctx context.Context, notesRoot, outRoot string) (*domain.IndexResult, error)
	Recall(ctx context.Context, graphPath, query string, topk int, weights domain.Weights) ([]domain.RecallRow, error)
	Benchmark(ctx context.Context, graphPath, datasetPath string, topk int, weights domain.Weights) (*domain.BenchmarkReport, error)
	Doctor(ctx context.Context, notesRoot, graphPath string) (*commands.DoctorReport, error)
}

// Defaults fill arguments the caller leaves out
type Defaults struct {
	NotesRoot string
	OutRoot   string
	GraphPath string
	TopK      int
	Weights   domain.Weights
}

// RegisterTools adds every exomind tool to the MCP server.
func RegisterTools(s *server.MCPServer, engine Engine, defaults Defaults) {
	s.AddTool(pingTool(), pingHandler)
	s.AddTool(indexTool(defaults), indexHandler(engine, defaults))
	s.AddTool(recallTool(defaults), recallHandler(engine, defaults))
	s.AddTool(benchmarkTool(defaults), benchmarkHandler(engine, defaults))
	s.AddTool(doctorTool(defaults), doctorHandler(engine, defaults))
}

// --- ping ---

func pingTool() mcp.Tool {
	return mcp.NewTool("ping",
		mcp.WithDescription("Health check, returns pong"),
	)
}

func pingHandler(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText("pong"), nil
}

// --- exom_index ---

func indexTool(d Defaults) mcp.Tool {
	return mcp.NewTool("exom_index",
		mcp.WithDescription("Index notes into the ExoMind graph. Returns note, node and edge counts and the graph path."),
		mcp.WithString("notes_root",
			mcp.Description("Folder containing 00_Inbox, 10_Projects, 20_Areas, 30_Resources and 99_Archives"),
			mcp.Required(),
		),
		mcp.WithString("out_root",
			mcp.Description("Output folder for graph.json"),
			mcp.DefaultString(d.OutRoot),
		),
	)
}

func indexHandler(engine Engine, d Defaults) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		notesRoot := req.GetString("notes_root", "")
		if notesRoot == "" {
			return toolError(fmt.Errorf("notes_root is required"))
		}
		outRoot := req.GetString("out_root", d.OutRoot)

		result, err := engine.Index(ctx, config.ExpandPath(notesRoot), config.ExpandPath(outRoot))
		if err != nil {
			return toolError(err)
		}
		return toolJSON(result)
	}
}

// --- exom_recall ---

func recallTool(d Defaults) mcp.Tool {
	return mcp.NewTool("exom_recall",
		mcp.WithDescription("Recall the notes most related to a query from the graph, best first."),
		mcp.WithString("query",
			mcp.Description("Free-text query"),
			mcp.Required(),
		),
		mcp.WithNumber("topk",
			mcp.Description("Maximum number of results"),
			mcp.DefaultNumber(float64(d.TopK)),
		),
		mcp.WithString("graph",
			mcp.Description("Graph document written by exom_index"),
			mcp.DefaultString(d.GraphPath),
		),
		mcp.WithNumber("lexical_weight", mcp.Description("Multiplier for title/path overlap")),
		mcp.WithNumber("graph_weight", mcp.Description("Multiplier for incoming link count")),
		mcp.WithNumber("semantic_weight", mcp.Description("Multiplier for term weights")),
	)
}

func recallHandler(engine Engine, d Defaults) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query, err := req.RequireString("query")
		if err != nil {
			return toolError(err)
		}
		topk := req.GetInt("topk", d.TopK)
		graphPath := config.ExpandPath(req.GetString("graph", d.GraphPath))

		rows, err := engine.Recall(ctx, graphPath, query, topk, weightsFrom(req, d.Weights))
		if err != nil {
			return toolError(err)
		}
		if rows == nil {
			rows = []domain.RecallRow{}
		}
		return toolJSON(map[string]any{"query": query, "topk": topk, "results": rows})
	}
}

// --- exom_benchmark ---

func benchmarkTool(d Defaults) mcp.Tool {
	return mcp.NewTool("exom_benchmark",
		mcp.WithDescription("Score recall against a labeled dataset: hit@1/3/5, MRR and latency."),
		mcp.WithString("dataset",
			mcp.Description("JSON or YAML list of {query, expected}"),
			mcp.Required(),
		),
		mcp.WithNumber("topk",
			mcp.Description("Recall depth per query"),
			mcp.DefaultNumber(float64(d.TopK)),
		),
		mcp.WithString("graph",
			mcp.Description("Graph document written by exom_index"),
			mcp.DefaultString(d.GraphPath),
		),
	)
}

func benchmarkHandler(engine Engine, d Defaults) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		dataset := req.GetString("dataset", "")
		if dataset == "" {
			return toolError(fmt.Errorf("dataset is required"))
		}
		graphPath := config.ExpandPath(req.GetString("graph", d.GraphPath))

		report, err := engine.Benchmark(ctx, graphPath, config.ExpandPath(dataset), req.GetInt("topk", d.TopK), d.Weights)
		if err != nil {
			return toolError(err)
		}
		return toolJSON(report)
	}
}

// --- exom_doctor ---

func doctorTool(d Defaults) mcp.Tool {
	return mcp.NewTool("exom_doctor",
		mcp.WithDescription("Check that the notes root exists, holds notes, and that a graph has been written."),
		mcp.WithString("notes_root",
			mcp.Description("Notes root to check"),
			mcp.DefaultString(d.NotesRoot),
		),
		mcp.WithString("graph",
			mcp.Description("Graph document to check"),
			mcp.DefaultString(d.GraphPath),
		),
	)
}

func doctorHandler(engine Engine, d Defaults) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		notesRoot := config.ExpandPath(req.GetString("notes_root", d.NotesRoot))
		graphPath := config.ExpandPath(req.GetString("graph", d.GraphPath))

		report, err := engine.Doctor(ctx, notesRoot, graphPath)
		if err != nil {
			return toolError(err)
		}
		return toolJSON(report)
	}
}

// --- helpers ---

func weightsFrom(req mcp.CallToolRequest, base domain.Weights) domain.Weights {
	return domain.Weights{
		Lexical:  req.GetFloat("lexical_weight", base.Lexical),
		Graph:    req.GetFloat("graph_weight", base.Graph),
		Semantic: req.GetFloat("semantic_weight", base.Semantic),
	}
}

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func toolJSON(v any) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return toolError(fmt.Errorf("failed to encode result: %w", err))
	}
	return mcp.NewToolResultText(string(data)), nil
}
