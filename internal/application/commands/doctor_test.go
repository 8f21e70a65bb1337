package commands

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"exomind/internal/adapters/filesystem"
)

func runDoctor(t *testing.T, fs afero.Fs, notesRoot string) *DoctorReport {
	t.Helper()
	cmd := NewDoctorCommand(filesystem.NewCollector(fs, nil), filesystem.NewGraphStore(fs), notesRoot, testGraph)
	report, err := cmd.Execute(t.Context())
	require.NoError(t, err)
	return report
}

func TestDoctorCommand_AllGood(t *testing.T) {
	fs := newVault(t)
	indexVault(t, fs, nil)

	report := runDoctor(t, fs, testRoot)

	assert.True(t, report.OK)
	require.Len(t, report.Checks, 3)
	assert.Equal(t, CheckResult{Name: "notes_root_exists", OK: true, Info: testRoot}, report.Checks[0])
	assert.Equal(t, CheckResult{Name: "markdown_notes_detected", OK: true, Info: "count=4"}, report.Checks[1])
	assert.Equal(t, CheckResult{Name: "graph_exists", OK: true, Info: testGraph}, report.Checks[2])
}

func TestDoctorCommand_NoGraph(t *testing.T) {
	fs := newVault(t)

	report := runDoctor(t, fs, testRoot)

	assert.False(t, report.OK)
	assert.False(t, report.Checks[2].OK)
}

func TestDoctorCommand_MissingRoot(t *testing.T) {
	fs := afero.NewMemMapFs()

	report := runDoctor(t, fs, "/nowhere")

	assert.False(t, report.OK)
	assert.False(t, report.Checks[0].OK)
	assert.Equal(t, "count=0", report.Checks[1].Info)
	assert.False(t, report.Checks[1].OK)
}
