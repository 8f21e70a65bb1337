package ports

// Corpus discovers and reads note files
type Corpus interface {
	// Collect returns the paths of every markdown note under the category roots of notesRoot
	Collect(notesRoot string) ([]string, error)

	// ReadNote returns the content of a note file
	ReadNote(path string) (string, error)

	// DirExists reports whether path is an existing directory
	DirExists(path string) bool
}
