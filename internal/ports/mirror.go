package ports

import "exomind/internal/domain"

// GraphMirror keeps a queryable copy of the graph's nodes and edges.
// It is rebuilt from the graph document on every index run.
type GraphMirror interface {
	// Lifecycle
	Open(dbPath string) error
	Close() error

	// Replace swaps the mirrored contents for graph in a single transaction
	Replace(graph *domain.GraphData) error

	// Meta returns a value recorded by Replace, or "" when unset
	Meta(key string) (string, error)

	// Node queries
	GetNode(id string) (*domain.Node, error)

	// Edge queries
	FindLinksTo(id string) ([]domain.Edge, error)
	FindLinksFrom(id string) ([]domain.Edge, error)

	BeginTx() (MirrorTx, error)
}

// MirrorTx represents a transaction for atomic mirror updates
type MirrorTx interface {
	Clear() error
	UpsertNode(node *domain.Node) error
	InsertEdge(seq int, edge *domain.Edge) error
	SetMeta(key, value string) error

	// Transaction control
	Commit() error
	Rollback() error
}
