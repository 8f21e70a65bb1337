package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"exomind/internal/domain"
	"exomind/internal/ports"

	_ "modernc.org/sqlite"
)

const schemaVersion = "1"

// Mirror implements ports.GraphMirror using SQLite
type Mirror struct {
	db     *sql.DB
	dbPath string
}

// Ensure Mirror implements GraphMirror
var _ ports.GraphMirror = (*Mirror)(nil)

// NewMirror creates a new SQLite graph mirror
func NewMirror() *Mirror {
	return &Mirror{}
}

// Open opens (or creates) the mirror database at dbPath
func (m *Mirror) Open(dbPath string) error {
	m.dbPath = dbPath

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return fmt.Errorf("failed to create mirror directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	m.db = db

	// Pragmas + schema in single batch
	_, err = db.Exec(`
		PRAGMA journal_mode = WAL;
		PRAGMA synchronous = NORMAL;
		PRAGMA busy_timeout = 5000;

		CREATE TABLE IF NOT EXISTS nodes (
			id TEXT PRIMARY KEY,
			path TEXT,
			title TEXT NOT NULL,
			stem TEXT NOT NULL
		);
		CREATE TABLE IF NOT EXISTS edges (
			seq INTEGER PRIMARY KEY,
			src TEXT NOT NULL,
			dst TEXT NOT NULL,
			type TEXT NOT NULL
		);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_edges_dst ON edges(dst);
		CREATE INDEX IF NOT EXISTS idx_edges_src ON edges(src);
	`)
	if err != nil {
		db.Close()
		m.db = nil
		return fmt.Errorf("failed to setup database: %w", err)
	}

	return nil
}

// Close closes the database connection
func (m *Mirror) Close() error {
	if m.db == nil {
		return nil
	}
	err := m.db.Close()
	m.db = nil
	return err
}

// Replace swaps the mirrored nodes and edges for those of graph
func (m *Mirror) Replace(graph *domain.GraphData) (err error) {
	tx, err := m.BeginTx()
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	if err = tx.Clear(); err != nil {
		return fmt.Errorf("failed to clear mirror: %w", err)
	}
	for i := range graph.Nodes {
		if err = tx.UpsertNode(&graph.Nodes[i]); err != nil {
			return fmt.Errorf("failed to mirror node %s: %w", graph.Nodes[i].ID, err)
		}
	}
	for i := range graph.Edges {
		if err = tx.InsertEdge(i, &graph.Edges[i]); err != nil {
			return fmt.Errorf("failed to mirror edge: %w", err)
		}
	}

	meta := map[string]string{
		"schema_version": schemaVersion,
		"notes_root":     graph.NotesRoot,
		"notes":          strconv.Itoa(graph.Stats.Notes),
		"nodes":          strconv.Itoa(graph.Stats.Nodes),
		"edges":          strconv.Itoa(graph.Stats.Edges),
	}
	for key, value := range meta {
		if err = tx.SetMeta(key, value); err != nil {
			return fmt.Errorf("failed to update metadata: %w", err)
		}
	}

	return tx.Commit()
}

// GetNode retrieves a node by ID, or nil when absent. Term weights are not mirrored.
func (m *Mirror) GetNode(id string) (*domain.Node, error) {
	var node domain.Node
	var path sql.NullString

	err := m.db.QueryRow(`
		SELECT id, path, title, stem
		FROM nodes WHERE id = ?
	`, id).Scan(&node.ID, &path, &node.Title, &node.Stem)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if path.Valid {
		node.Path = &path.String
	}

	return &node, nil
}

// Meta returns a metadata value, or "" when unset
func (m *Mirror) Meta(key string) (string, error) {
	var value string
	err := m.db.QueryRow(`SELECT value FROM meta WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	return value, err
}

// FindLinksTo returns all edges pointing to a node, in graph order
func (m *Mirror) FindLinksTo(id string) ([]domain.Edge, error) {
	return m.queryEdges(`
		SELECT src, dst, type
		FROM edges WHERE dst = ? ORDER BY seq
	`, id)
}

// FindLinksFrom returns all edges leaving a node, in graph order
func (m *Mirror) FindLinksFrom(id string) ([]domain.Edge, error) {
	return m.queryEdges(`
		SELECT src, dst, type
		FROM edges WHERE src = ? ORDER BY seq
	`, id)
}

func (m *Mirror) queryEdges(query string, args ...any) ([]domain.Edge, error) {
	rows, err := m.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	edges := []domain.Edge{}
	for rows.Next() {
		var e domain.Edge
		var kind string
		if err := rows.Scan(&e.Src, &e.Dst, &kind); err != nil {
			return nil, err
		}
		e.Kind = domain.EdgeKind(kind)
		edges = append(edges, e)
	}

	return edges, rows.Err()
}

// BeginTx starts a new transaction
func (m *Mirror) BeginTx() (ports.MirrorTx, error) {
	tx, err := m.db.Begin()
	if err != nil {
		return nil, err
	}
	return &mirrorTx{tx: tx}, nil
}
