package editor

import (
	"fmt"
	"os"
	"os/exec"
)

// fallbackEditors are tried in order when neither $EDITOR nor $VISUAL is set
var fallbackEditors = []string{"nvim", "vim", "vi", "nano", "code"}

// Opener launches notes in the user's editor
type Opener struct {
	getenv   func(string) string
	lookPath func(string) (string, error)
}

// NewOpener creates an opener that reads the process environment
func NewOpener() *Opener {
	return &Opener{getenv: os.Getenv, lookPath: exec.LookPath}
}

// Command returns an exec.Cmd opening path, for use with bubbletea's ExecProcess
func (o *Opener) Command(path string) (*exec.Cmd, error) {
	editor := o.Editor()
	if editor == "" {
		return nil, fmt.Errorf("no editor found: set $EDITOR environment variable")
	}

	cmd := exec.Command(editor, path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return cmd, nil
}

// Editor returns the editor to use, or "" when none is available
func (o *Opener) Editor() string {
	if editor := o.getenv("EDITOR"); editor != "" {
		return editor
	}
	if visual := o.getenv("VISUAL"); visual != "" {
		return visual
	}

	for _, editor := range fallbackEditors {
		if path, err := o.lookPath(editor); err == nil {
			return path
		}
	}

	return ""
}
