package commands

import (
	"context"
	"fmt"

	"exomind/internal/ports"
)

// CheckResult is the outcome of one environment check
type CheckResult struct {
	Name string `json:"name"`
	OK   bool   `json:"ok"`
	Info string `json:"info"`
}

// DoctorReport collects every check; OK is true only when all pass
type DoctorReport struct {
	OK     bool          `json:"ok"`
	Checks []CheckResult `json:"checks"`
}

// DoctorCommand validates that notes and the graph are where the tools expect them
type DoctorCommand struct {
	corpus    ports.Corpus
	store     ports.GraphStore
	NotesRoot string
	GraphPath string
}

// NewDoctorCommand creates a new DoctorCommand
func NewDoctorCommand(corpus ports.Corpus, store ports.GraphStore, notesRoot, graphPath string) *DoctorCommand {
	return &DoctorCommand{
		corpus:    corpus,
		store:     store,
		NotesRoot: notesRoot,
		GraphPath: graphPath,
	}
}

// Execute runs the checks. Failed checks are reported, not returned as errors.
func (c *DoctorCommand) Execute(ctx context.Context) (*DoctorReport, error) {
	var checks []CheckResult

	rootExists := c.corpus.DirExists(c.NotesRoot)
	checks = append(checks, CheckResult{
		Name: "notes_root_exists",
		OK:   rootExists,
		Info: c.NotesRoot,
	})

	count := 0
	if rootExists {
		notes, err := c.corpus.Collect(c.NotesRoot)
		if err != nil {
			return nil, fmt.Errorf("failed to collect notes: %w", err)
		}
		count = len(notes)
	}
	checks = append(checks, CheckResult{
		Name: "markdown_notes_detected",
		OK:   count > 0,
		Info: fmt.Sprintf("count=%d", count),
	})

	checks = append(checks, CheckResult{
		Name: "graph_exists",
		OK:   c.store.Exists(c.GraphPath),
		Info: c.GraphPath,
	})

	report := &DoctorReport{OK: true, Checks: checks}
	for _, check := range checks {
		if !check.OK {
			report.OK = false
		}
	}
	return report, nil
}
