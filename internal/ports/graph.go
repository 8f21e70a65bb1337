package ports

import "exomind/internal/domain"

// GraphStore persists the knowledge graph document
type GraphStore interface {
	Save(path string, graph *domain.GraphData) error
	Load(path string) (*domain.GraphData, error)
	Exists(path string) bool
}

// DatasetSource reads labeled benchmark queries
type DatasetSource interface {
	LoadDataset(path string) ([]domain.BenchmarkQuery, error)
}
