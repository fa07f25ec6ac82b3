package usecase

import (
	"context"
	"fmt"

	"github.com/ShubhamAnand123/onlawthink/internal/domain"
	"github.com/ShubhamAnand123/onlawthink/internal/ports"
)

// Fetch is one request a view wants issued.
type Fetch struct {
	Token      domain.RequestToken
	CaseDomain string // FetchFiltered only
}

// FetchResult carries an answer back to the view that asked for it.
type FetchResult struct {
	Token   domain.RequestToken
	Page    domain.ProviderPage
	Catalog domain.CaseDomainCatalog
	Err     error
}

// Fetcher executes fetches against the directory service.
// It is safe to call from concurrent goroutines if the service is.
type Fetcher struct {
	svc ports.DirectoryService
}

func NewFetcher(svc ports.DirectoryService) *Fetcher {
	return &Fetcher{svc: svc}
}

func (f *Fetcher) Do(ctx context.Context, fx Fetch) FetchResult {
	res := FetchResult{Token: fx.Token}
	switch fx.Token.Kind {
	case domain.FetchAll:
		res.Page, res.Err = f.svc.ListProviders(ctx)
	case domain.FetchCatalog:
		res.Catalog, res.Err = f.svc.ListCaseDomains(ctx)
	case domain.FetchFiltered:
		res.Page, res.Err = f.svc.QueryByCaseDomain(ctx, fx.CaseDomain)
	default:
		res.Err = &domain.OpError{
			Op:   "usecase.fetch",
			Kind: domain.KindExecution,
			Err:  fmt.Errorf("unknown fetch kind %q", fx.Token.Kind),
		}
	}
	return res
}
