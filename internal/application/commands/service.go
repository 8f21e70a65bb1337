package commands

import (
	"context"

	"exomind/internal/application"
	"exomind/internal/domain"
	"exomind/internal/ports"
)

// Service wires the adapters once and runs commands on behalf of the CLI, MCP and HTTP entry points
type Service struct {
	corpus    ports.Corpus
	store     ports.GraphStore
	datasets  ports.DatasetSource
	newMirror func() ports.GraphMirror
	tokenizer *domain.Tokenizer
	parser    *domain.LinkParser

	// MirrorOnIndex refreshes the SQLite mirror after every index run
	MirrorOnIndex bool
}

// NewService creates a Service. newMirror may be nil when no SQLite mirror is available.
func NewService(
	corpus ports.Corpus,
	store ports.GraphStore,
	datasets ports.DatasetSource,
	newMirror func() ports.GraphMirror,
) *Service {
	return &Service{
		corpus:    corpus,
		store:     store,
		datasets:  datasets,
		newMirror: newMirror,
		tokenizer: domain.NewTokenizer(),
		parser:    domain.NewLinkParser(),

		MirrorOnIndex: newMirror != nil,
	}
}

// Index rebuilds the graph under outRoot
func (s *Service) Index(ctx context.Context, notesRoot, outRoot string) (*domain.IndexResult, error) {
	var mirror ports.GraphMirror
	if s.MirrorOnIndex && s.newMirror != nil {
		mirror = s.newMirror()
	}
	builder := domain.NewGraphBuilder(s.tokenizer, s.parser)
	return NewIndexCommand(s.corpus, s.store, mirror, builder, notesRoot, outRoot).Execute(ctx)
}

// Recall ranks the graph at graphPath against query
func (s *Service) Recall(ctx context.Context, graphPath, query string, topk int, weights domain.Weights) ([]domain.RecallRow, error) {
	return NewRecallCommand(s.store, s.tokenizer, graphPath, query, topk, weights).Execute(ctx)
}

// Benchmark scores the dataset at datasetPath against the graph
func (s *Service) Benchmark(ctx context.Context, graphPath, datasetPath string, topk int, weights domain.Weights) (*domain.BenchmarkReport, error) {
	cmd := NewBenchmarkCommand(s.store, s.datasets, s.tokenizer, graphPath, datasetPath, topk)
	cmd.Weights = weights
	return cmd.Execute(ctx)
}

// Doctor checks the notes root and graph document
func (s *Service) Doctor(ctx context.Context, notesRoot, graphPath string) (*DoctorReport, error) {
	return NewDoctorCommand(s.corpus, s.store, notesRoot, graphPath).Execute(ctx)
}

// Links lists a node's backlinks and outlinks from the mirror at mirrorPath
func (s *Service) Links(ctx context.Context, mirrorPath, nodeID string) (*LinksReport, error) {
	if s.newMirror == nil {
		return nil, &application.MirrorNotFoundError{Path: mirrorPath}
	}
	return NewLinksCommand(s.newMirror(), s.store, mirrorPath, nodeID).Execute(ctx)
}

// Ranker loads the graph once for repeated in-memory queries
func (s *Service) Ranker(graphPath string) (*domain.Ranker, error) {
	graph, err := loadGraph(s.store, graphPath)
	if err != nil {
		return nil, err
	}
	return domain.NewRanker(graph, s.tokenizer), nil
}
