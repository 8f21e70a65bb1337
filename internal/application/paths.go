package application

import "path/filepath"

const (
	// GraphFileName is the graph document written under the output root
	GraphFileName = "graph.json"
	// MirrorFileName is the SQLite graph mirror written next to the graph document
	MirrorFileName = "graph.db"
)

// GraphPath returns the graph document path under an output root
func GraphPath(outRoot string) string {
	return filepath.Join(outRoot, GraphFileName)
}

// MirrorPath returns the SQLite mirror path under an output root
func MirrorPath(outRoot string) string {
	return filepath.Join(outRoot, MirrorFileName)
}
