package files

// Provider is the read-only view of the inputs a run needs.
type Provider interface {
	// ReadFile reads the whole file at path.
	// Missing files return an error satisfying errors.Is(err, fs.ErrNotExist).
	ReadFile(path string) ([]byte, error)

	// Glob returns the sorted paths matching pattern (path.Match syntax).
	// A pattern without meta characters matches itself if the file exists.
	Glob(pattern string) ([]string, error)
}
