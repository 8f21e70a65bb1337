package commands

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"exomind/internal/adapters/filesystem"
	"exomind/internal/application"
	"exomind/internal/domain"
)

func indexedMirror(t *testing.T) (afero.Fs, *memMirror) {
	t.Helper()
	fs := newVault(t)
	mirror := &memMirror{}
	indexVault(t, fs, mirror)
	// The mirror lives in memory; mark its file present for the existence check
	require.NoError(t, afero.WriteFile(fs, application.MirrorPath(testOut), nil, 0644))
	return fs, mirror
}

func TestLinksCommand_Execute(t *testing.T) {
	fs, mirror := indexedMirror(t)
	cmd := NewLinksCommand(mirror, filesystem.NewGraphStore(fs), application.MirrorPath(testOut), "10_Projects/alpha.md")

	report, err := cmd.Execute(t.Context())
	require.NoError(t, err)

	assert.Equal(t, "Alpha Project", report.Node.Title)
	assert.Equal(t, []domain.Edge{
		{Src: "20_Areas/beta.md", Dst: "10_Projects/alpha.md", Kind: domain.EdgeWikilink},
	}, report.Backlinks)
	require.Len(t, report.Outlinks, 3)
	assert.Equal(t, domain.EdgeUnresolved, report.Outlinks[2].Kind)
	assert.Equal(t, domain.Stats{Notes: 4, Nodes: 5, Edges: 4}, report.Mirror)
	assert.True(t, mirror.closed)
}

func TestLinksCommand_GhostBacklinks(t *testing.T) {
	fs, mirror := indexedMirror(t)
	cmd := NewLinksCommand(mirror, filesystem.NewGraphStore(fs), application.MirrorPath(testOut), "ghost/Missing Note")

	report, err := cmd.Execute(t.Context())
	require.NoError(t, err)

	assert.True(t, report.Node.IsGhost())
	require.Len(t, report.Backlinks, 1)
	assert.Empty(t, report.Outlinks)
}

func TestLinksCommand_UnknownNode(t *testing.T) {
	fs, mirror := indexedMirror(t)
	cmd := NewLinksCommand(mirror, filesystem.NewGraphStore(fs), application.MirrorPath(testOut), "nope.md")

	_, err := cmd.Execute(t.Context())

	assert.ErrorIs(t, err, application.ErrNodeNotFound)
}

func TestLinksCommand_MirrorMissing(t *testing.T) {
	fs := afero.NewMemMapFs()
	mirror := &memMirror{}
	cmd := NewLinksCommand(mirror, filesystem.NewGraphStore(fs), application.MirrorPath(testOut), "a.md")

	_, err := cmd.Execute(t.Context())

	assert.ErrorIs(t, err, application.ErrMirrorNotFound)
	assert.Empty(t, mirror.opened)
}

func TestLinksCommand_RequiresID(t *testing.T) {
	fs, mirror := indexedMirror(t)
	cmd := NewLinksCommand(mirror, filesystem.NewGraphStore(fs), application.MirrorPath(testOut), "")

	_, err := cmd.Execute(t.Context())

	var validationErr *application.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestLinksCommand_InvalidMirrorStats(t *testing.T) {
	fs, mirror := indexedMirror(t)
	mirror.meta["nodes"] = "many"
	cmd := NewLinksCommand(mirror, filesystem.NewGraphStore(fs), application.MirrorPath(testOut), "10_Projects/alpha.md")

	_, err := cmd.Execute(t.Context())

	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid mirror metadata nodes="many"`)
}
