package ports

import "github.com/ShubhamAnand123/onlawthink/internal/domain"

// SnapshotLoader loads a static directory dataset (e.g., fixture files).
type SnapshotLoader interface {
	LoadSnapshot(path string) (domain.DirectorySnapshot, error)
}
