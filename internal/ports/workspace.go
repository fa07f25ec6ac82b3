package ports

// ConfigLocator finds the directory holding onlawthink.yaml, starting from an
// arbitrary directory.
type ConfigLocator interface {
	FindRoot(startDir string) (string, error)
}

// Initializer writes a default configuration into root.
type Initializer interface {
	Init(root string, force bool) error
}
