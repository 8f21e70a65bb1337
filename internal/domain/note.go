package domain

import (
	"path/filepath"
	"strings"
)

// NoteID returns the root-relative, "/"-joined identifier of a note path
func NoteID(notesRoot, path string) (string, error) {
	rel, err := filepath.Rel(notesRoot, path)
	if err != nil {
		return "", err
	}
	return filepath.ToSlash(rel), nil
}

// NoteStem returns the filename without its extension
func NoteStem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
