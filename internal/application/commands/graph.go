package commands

import (
	"fmt"

	"exomind/internal/application"
	"exomind/internal/domain"
	"exomind/internal/ports"
)

// loadGraph reads the graph document, failing with GraphNotFoundError when it is absent
func loadGraph(store ports.GraphStore, path string) (*domain.GraphData, error) {
	if !store.Exists(path) {
		return nil, &application.GraphNotFoundError{Path: path}
	}
	graph, err := store.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load graph: %w", err)
	}
	return graph, nil
}
