package usecase

import (
	"context"
	"errors"
	"sync"

	"github.com/ShubhamAnand123/onlawthink/internal/domain"
)

type fakeService struct {
	mu sync.Mutex

	listPage    domain.ProviderPage
	listErr     error
	catalog     domain.CaseDomainCatalog
	catalogErr  error
	byDomain    map[string]domain.ProviderPage
	queryErr    error
	listCalls   int
	catCalls    int
	queryCalls  []string
	lastContext context.Context
}

func (f *fakeService) ListProviders(ctx context.Context) (domain.ProviderPage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	f.lastContext = ctx
	return f.listPage, f.listErr
}

func (f *fakeService) ListCaseDomains(ctx context.Context) (domain.CaseDomainCatalog, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.catCalls++
	return f.catalog, f.catalogErr
}

func (f *fakeService) QueryByCaseDomain(ctx context.Context, caseDomain string) (domain.ProviderPage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queryCalls = append(f.queryCalls, caseDomain)
	if f.queryErr != nil {
		return domain.ProviderPage{}, f.queryErr
	}
	page, ok := f.byDomain[caseDomain]
	if !ok {
		return domain.ProviderPage{}, &domain.ServiceError{Status: 404, Message: "No lawyers found for " + caseDomain}
	}
	return page, nil
}

type countingRecorder struct {
	fetches map[string]int
	stale   map[domain.FetchKind]int
}

func newCountingRecorder() *countingRecorder {
	return &countingRecorder{fetches: map[string]int{}, stale: map[domain.FetchKind]int{}}
}

func (r *countingRecorder) RecordFetch(kind domain.FetchKind, outcome domain.Outcome) {
	r.fetches[string(kind)+"/"+string(outcome)]++
}

func (r *countingRecorder) RecordStale(kind domain.FetchKind) { r.stale[kind]++ }

type staticSession bool

func (s staticSession) IsAuthenticated() bool { return bool(s) }

func transportFailure() error {
	return &domain.OpError{Op: "fake", Kind: domain.KindTransport, Err: errors.New("connection refused")}
}

var (
	asha = domain.Provider{ID: "a1", FirstName: "Asha", LastName: "Rao", CaseDomain: "Criminal"}
	ben  = domain.Provider{ID: "b2", FirstName: "Ben", LastName: "Okafor", CaseDomain: "Family"}
)
