package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	ErrGraphNotFound  = errors.New("graph not found")
	ErrMirrorNotFound = errors.New("graph mirror not found")
	ErrNodeNotFound   = errors.New("node not found")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// GraphNotFoundError reports a missing graph document and how to create it
type GraphNotFoundError struct {
	Path string
}

func (e *GraphNotFoundError) Error() string {
	return fmt.Sprintf("Graph not found: %s. Run `exom index` first.", e.Path)
}

func (e *GraphNotFoundError) Is(target error) bool {
	return target == ErrGraphNotFound
}

// MirrorNotFoundError reports a missing SQLite graph mirror
type MirrorNotFoundError struct {
	Path string
}

func (e *MirrorNotFoundError) Error() string {
	return fmt.Sprintf("Graph mirror not found: %s. Run `exom index` first.", e.Path)
}

func (e *MirrorNotFoundError) Is(target error) bool {
	return target == ErrMirrorNotFound
}
