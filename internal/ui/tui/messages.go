package tui

import "github.com/ShubhamAnand123/onlawthink/internal/usecase"

// fetchDoneMsg returns a fetch result to the view that issued it, which may have
// been torn down in the meantime.
type fetchDoneMsg struct {
	view   *usecase.DirectoryView
	result usecase.FetchResult
}
