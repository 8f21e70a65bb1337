package filesystem

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"exomind/internal/domain"
	"exomind/internal/ports"
)

// GraphStore implements ports.GraphStore and ports.DatasetSource as JSON/YAML files
type GraphStore struct {
	fs afero.Fs
}

// Ensure GraphStore implements the storage ports
var (
	_ ports.GraphStore    = (*GraphStore)(nil)
	_ ports.DatasetSource = (*GraphStore)(nil)
)

// NewGraphStore creates a graph store on the given filesystem
func NewGraphStore(fs afero.Fs) *GraphStore {
	return &GraphStore{fs: fs}
}

// Save writes the graph as indented JSON, creating parent directories.
// Map keys are emitted sorted, so equal graphs produce equal bytes.
func (s *GraphStore) Save(path string, graph *domain.GraphData) error {
	if err := s.fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create graph directory: %w", err)
	}

	data, err := json.MarshalIndent(graph, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode graph: %w", err)
	}
	data = append(data, '\n')

	if err := afero.WriteFile(s.fs, path, data, 0644); err != nil {
		return fmt.Errorf("failed to write graph: %w", err)
	}
	return nil
}

// Load reads and decodes a graph document
func (s *GraphStore) Load(path string) (*domain.GraphData, error) {
	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return nil, err
	}

	var graph domain.GraphData
	if err := json.Unmarshal(data, &graph); err != nil {
		return nil, fmt.Errorf("failed to parse graph %s: %w", path, err)
	}
	return &graph, nil
}

// Exists reports whether a graph document is present at path
func (s *GraphStore) Exists(path string) bool {
	ok, err := afero.Exists(s.fs, path)
	return err == nil && ok
}

// LoadDataset reads a benchmark dataset. Files ending in .yaml or .yml are decoded
// as YAML, anything else as JSON.
func (s *GraphStore) LoadDataset(path string) ([]domain.BenchmarkQuery, error) {
	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset %s: %w", path, err)
	}

	var queries []domain.BenchmarkQuery
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &queries)
	default:
		err = json.Unmarshal(data, &queries)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse dataset %s: %w", path, err)
	}
	return queries, nil
}
