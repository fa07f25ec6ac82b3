package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ShubhamAnand123/onlawthink/internal/usecase"
)

func cmdFetch(f *usecase.Fetcher, view *usecase.DirectoryView, fx usecase.Fetch) tea.Cmd {
	return func() tea.Msg {
		return fetchDoneMsg{view: view, result: f.Do(view.Context(), fx)}
	}
}

func cmdFetches(f *usecase.Fetcher, view *usecase.DirectoryView, fetches []usecase.Fetch) tea.Cmd {
	if len(fetches) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(fetches))
	for _, fx := range fetches {
		cmds = append(cmds, cmdFetch(f, view, fx))
	}
	return tea.Batch(cmds...)
}
