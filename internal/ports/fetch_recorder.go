package ports

import "github.com/ShubhamAnand123/onlawthink/internal/domain"

// FetchRecorder observes applied and discarded fetch results.
type FetchRecorder interface {
	RecordFetch(kind domain.FetchKind, outcome domain.Outcome)
	RecordStale(kind domain.FetchKind)
}
