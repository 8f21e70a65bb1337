package filesystem

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"exomind/internal/ports"
)

// DefaultNoteDirs are the category roots searched for notes
var DefaultNoteDirs = []string{
	"00_Inbox",
	"10_Projects",
	"20_Areas",
	"30_Resources",
	"99_Archives",
}

// Collector implements ports.Corpus on an afero filesystem
type Collector struct {
	fs   afero.Fs
	dirs []string
}

// Ensure Collector implements Corpus
var _ ports.Corpus = (*Collector)(nil)

// NewCollector creates a collector over the given category roots.
// An empty dirs list falls back to DefaultNoteDirs.
func NewCollector(fs afero.Fs, dirs []string) *Collector {
	if len(dirs) == 0 {
		dirs = DefaultNoteDirs
	}
	return &Collector{fs: fs, dirs: dirs}
}

// Collect walks every category root recursively and returns the markdown files found.
// Missing roots and unreadable entries are skipped.
func (c *Collector) Collect(notesRoot string) ([]string, error) {
	var notes []string
	for _, dir := range c.dirs {
		target := filepath.Join(notesRoot, dir)
		if !c.DirExists(target) {
			continue
		}

		err := afero.Walk(c.fs, target, func(path string, info os.FileInfo, err error) error {
			if err != nil || info == nil {
				return nil // Skip errors
			}
			if info.Mode().IsRegular() && isMarkdown(info.Name()) {
				notes = append(notes, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return notes, nil
}

// ReadNote returns the note content
func (c *Collector) ReadNote(path string) (string, error) {
	data, err := afero.ReadFile(c.fs, path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// DirExists reports whether path is an existing directory
func (c *Collector) DirExists(path string) bool {
	ok, err := afero.DirExists(c.fs, path)
	return err == nil && ok
}

func isMarkdown(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".md")
}
