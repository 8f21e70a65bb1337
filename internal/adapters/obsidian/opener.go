package obsidian

import (
	"fmt"
	"net/url"
	"os/exec"
	"path"
	"path/filepath"
	"runtime"
	"strings"
)

// Opener opens graph nodes in Obsidian through the obsidian:// URI scheme
type Opener struct {
	vaultName string
	goos      string
}

// NewOpener creates an opener for the vault rooted at notesRoot.
// Obsidian names a vault after its folder.
func NewOpener(notesRoot string) *Opener {
	abs, err := filepath.Abs(notesRoot)
	if err != nil {
		abs = notesRoot
	}
	return &Opener{
		vaultName: filepath.Base(abs),
		goos:      runtime.GOOS,
	}
}

// BuildURI constructs the obsidian:// URI for a node id relative to the vault.
// Ghost ids open their raw link text, which Obsidian creates on first open.
func (o *Opener) BuildURI(nodeID string) (string, error) {
	target := strings.TrimPrefix(nodeID, "ghost/")
	if target == "" {
		return "", fmt.Errorf("empty node id")
	}

	clean := path.Clean(target)
	if clean == ".." || strings.HasPrefix(clean, "../") || path.IsAbs(clean) {
		return "", fmt.Errorf("note is outside the vault: %s", nodeID)
	}

	uri := fmt.Sprintf("obsidian://open?vault=%s&file=%s",
		url.QueryEscape(o.vaultName),
		url.QueryEscape(clean),
	)

	return uri, nil
}

// Command returns the platform command that opens nodeID in Obsidian
func (o *Opener) Command(nodeID string) (*exec.Cmd, error) {
	uri, err := o.BuildURI(nodeID)
	if err != nil {
		return nil, err
	}

	switch o.goos {
	case "darwin":
		return exec.Command("open", uri), nil
	case "linux":
		return exec.Command("xdg-open", uri), nil
	case "windows":
		return exec.Command("cmd", "/c", "start", "", uri), nil
	default:
		return nil, fmt.Errorf("unsupported operating system: %s", o.goos)
	}
}
