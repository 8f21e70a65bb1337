package commands

import (
	"context"
	"time"

	"exomind/internal/application"
	"exomind/internal/domain"
	"exomind/internal/ports"
)

// BenchmarkCommand measures recall accuracy and latency against a labeled dataset
type BenchmarkCommand struct {
	store       ports.GraphStore
	datasets    ports.DatasetSource
	tokenizer   *domain.Tokenizer
	GraphPath   string
	DatasetPath string
	TopK        int
	Weights     domain.Weights
	Now         func() time.Time
}

// NewBenchmarkCommand creates a new BenchmarkCommand with equal signal weights
func NewBenchmarkCommand(
	store ports.GraphStore,
	datasets ports.DatasetSource,
	tokenizer *domain.Tokenizer,
	graphPath, datasetPath string,
	topk int,
) *BenchmarkCommand {
	return &BenchmarkCommand{
		store:       store,
		datasets:    datasets,
		tokenizer:   tokenizer,
		GraphPath:   graphPath,
		DatasetPath: datasetPath,
		TopK:        topk,
		Weights:     domain.DefaultWeights(),
	}
}

// Execute loads the graph and dataset, then runs every query through the ranker
func (c *BenchmarkCommand) Execute(ctx context.Context) (*domain.BenchmarkReport, error) {
	if err := application.ValidateTopK(c.TopK); err != nil {
		return nil, err
	}
	if err := application.ValidateWeights(c.Weights); err != nil {
		return nil, err
	}
	if err := application.ValidateRequired("dataset", c.DatasetPath); err != nil {
		return nil, err
	}

	graph, err := loadGraph(c.store, c.GraphPath)
	if err != nil {
		return nil, err
	}

	dataset, err := c.datasets.LoadDataset(c.DatasetPath)
	if err != nil {
		return nil, err
	}

	ranker := domain.NewRanker(graph, c.tokenizer)
	return domain.RunBenchmark(ranker, dataset, domain.BenchmarkOptions{
		TopK:    c.TopK,
		Weights: c.Weights,
		Now:     c.Now,
	}), nil
}
