package usecase

import (
	"context"

	"github.com/ShubhamAnand123/onlawthink/internal/domain"
	"github.com/ShubhamAnand123/onlawthink/internal/ports"
)

// QueryRequest describes a one-shot directory query.
type QueryRequest struct {
	Mode       domain.ViewMode
	CaseDomain string
	Submit     bool // ModeByCaseDomain: run the filtered query after the catalog
}

// DirectoryReport is what a one-shot query left in its view.
type DirectoryReport struct {
	Decision domain.AccessDecision
	Mode     domain.ViewMode
	State    domain.DirectoryState
	Catalog  domain.CaseDomainCatalog
}

// QueryDirectory mounts a view, runs its fetches to completion and tears it down.
// It backs the non-interactive commands.
type QueryDirectory struct {
	fetcher *Fetcher
	session ports.SessionSource
	opts    []ViewOption
}

func NewQueryDirectory(svc ports.DirectoryService, session ports.SessionSource, opts ...ViewOption) *QueryDirectory {
	return &QueryDirectory{
		fetcher: NewFetcher(svc),
		session: session,
		opts:    opts,
	}
}

// Execute returns domain.ErrUnauthenticated, with the gate's decision in the
// report, when the session is not valid; no fetch is made in that case.
func (uc *QueryDirectory) Execute(ctx context.Context, req QueryRequest) (DirectoryReport, error) {
	opts := append([]ViewOption{WithParent(ctx)}, uc.opts...)
	view := NewDirectoryView(req.Mode, opts...)
	defer view.Teardown()

	dec, fetches := view.Open(uc.session.IsAuthenticated())
	report := DirectoryReport{Decision: dec, Mode: req.Mode}
	if !dec.Allowed {
		return report, domain.ErrUnauthenticated
	}

	for _, fx := range fetches {
		view.Apply(uc.fetcher.Do(view.Context(), fx))
	}

	if req.Mode == domain.ModeByCaseDomain && req.Submit {
		view.SetFilter(req.CaseDomain)
		if fx, ok := view.Submit(); ok {
			view.Apply(uc.fetcher.Do(view.Context(), fx))
		}
	}

	report.State = view.State()
	report.Catalog = view.Catalog()
	return report, nil
}
