package commands

import (
	"context"

	"exomind/internal/application"
	"exomind/internal/domain"
	"exomind/internal/ports"
)

// RecallCommand ranks graph nodes against a free-text query
type RecallCommand struct {
	store     ports.GraphStore
	tokenizer *domain.Tokenizer
	GraphPath string
	Query     string
	TopK      int
	Weights   domain.Weights
}

// NewRecallCommand creates a new RecallCommand
func NewRecallCommand(
	store ports.GraphStore,
	tokenizer *domain.Tokenizer,
	graphPath, query string,
	topk int,
	weights domain.Weights,
) *RecallCommand {
	return &RecallCommand{
		store:     store,
		tokenizer: tokenizer,
		GraphPath: graphPath,
		Query:     query,
		TopK:      topk,
		Weights:   weights,
	}
}

// Execute loads the graph and returns the ranked rows
func (c *RecallCommand) Execute(ctx context.Context) ([]domain.RecallRow, error) {
	if err := application.ValidateRecall(c.TopK, c.Weights); err != nil {
		return nil, err
	}

	graph, err := loadGraph(c.store, c.GraphPath)
	if err != nil {
		return nil, err
	}

	ranker := domain.NewRanker(graph, c.tokenizer)
	return ranker.Recall(c.Query, c.TopK, c.Weights), nil
}
