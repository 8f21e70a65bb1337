package sqlite

import (
	"database/sql"

	"exomind/internal/domain"
	"exomind/internal/ports"
)

// mirrorTx implements ports.MirrorTx
type mirrorTx struct {
	tx *sql.Tx
}

// Ensure mirrorTx implements MirrorTx
var _ ports.MirrorTx = (*mirrorTx)(nil)

// Clear removes every node and edge
func (t *mirrorTx) Clear() error {
	if _, err := t.tx.Exec(`DELETE FROM nodes`); err != nil {
		return err
	}
	_, err := t.tx.Exec(`DELETE FROM edges`)
	return err
}

// UpsertNode inserts or updates a node
func (t *mirrorTx) UpsertNode(node *domain.Node) error {
	_, err := t.tx.Exec(`
		INSERT OR REPLACE INTO nodes (id, path, title, stem)
		VALUES (?, ?, ?, ?)
	`, node.ID, nullString(node.Path), node.Title, node.Stem)
	return err
}

// InsertEdge adds an edge at position seq of the graph's edge list
func (t *mirrorTx) InsertEdge(seq int, edge *domain.Edge) error {
	_, err := t.tx.Exec(`
		INSERT INTO edges (seq, src, dst, type)
		VALUES (?, ?, ?, ?)
	`, seq, edge.Src, edge.Dst, string(edge.Kind))
	return err
}

// SetMeta stores a metadata value
func (t *mirrorTx) SetMeta(key, value string) error {
	_, err := t.tx.Exec(`INSERT OR REPLACE INTO meta (key, value) VALUES (?, ?)`, key, value)
	return err
}

// Commit commits the transaction
func (t *mirrorTx) Commit() error {
	return t.tx.Commit()
}

// Rollback aborts the transaction
func (t *mirrorTx) Rollback() error {
	return t.tx.Rollback()
}

// nullString returns nil for ghost paths (for nullable columns)
func nullString(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}
