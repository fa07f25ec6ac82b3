package fixtureserver_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ShubhamAnand123/onlawthink/internal/domain"
	"github.com/ShubhamAnand123/onlawthink/internal/infra/fixtureserver"
	"github.com/ShubhamAnand123/onlawthink/internal/infra/lawyerapi"
)

func snapshot() domain.DirectorySnapshot {
	return domain.DirectorySnapshot{
		CaseDomains: domain.CaseDomainCatalog{"Criminal", "Family", "Tax"},
		Providers: []domain.Provider{
			{ID: "l-1", FirstName: "Asha", LastName: "Rao", CaseDomain: "Criminal", Achievements: []string{}, Qualifications: []string{}},
			{ID: "l-2", FirstName: "Ben", LastName: "Okafor", CaseDomain: "Family", Achievements: []string{}, Qualifications: []string{}},
		},
	}
}

func newClient(t *testing.T, snap domain.DirectorySnapshot) (*lawyerapi.Client, *httptest.Server) {
	t.Helper()
	cfg := domain.DefaultConfig().Service
	srv := httptest.NewServer(fixtureserver.New(snap, cfg.Paths, nil).Router())
	t.Cleanup(srv.Close)

	cfg.BaseURL = srv.URL
	c, err := lawyerapi.New(cfg, lawyerapi.WithHTTPClient(srv.Client()))
	require.NoError(t, err)
	return c, srv
}

func TestRoundTripThroughClient(t *testing.T) {
	c, _ := newClient(t, snapshot())
	ctx := context.Background()

	page, err := c.ListProviders(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.FoundMessage, page.Message)
	assert.Equal(t, snapshot().Providers, page.Providers)

	cat, err := c.ListCaseDomains(ctx)
	require.NoError(t, err)
	assert.Equal(t, snapshot().CaseDomains, cat)

	page, err = c.QueryByCaseDomain(ctx, "Family")
	require.NoError(t, err)
	require.Len(t, page.Providers, 1)
	assert.Equal(t, "l-2", page.Providers[0].ID)
}

func TestQueryWithoutMatchIsServiceError(t *testing.T) {
	c, _ := newClient(t, snapshot())

	_, err := c.QueryByCaseDomain(context.Background(), "Tax")
	se, ok := domain.AsServiceError(err)
	require.True(t, ok, "expected service error, got %v", err)
	assert.Equal(t, http.StatusNotFound, se.Status)
	assert.Equal(t, "No lawyers found for case domain Tax", se.Message)

	_, err = c.QueryByCaseDomain(context.Background(), "")
	se, ok = domain.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, "Case domain is required", se.Message)
}

func TestEmptySnapshot(t *testing.T) {
	c, _ := newClient(t, domain.DirectorySnapshot{})

	page, err := c.ListProviders(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "No lawyers found", page.Message)
	assert.Empty(t, page.Providers)

	cat, err := c.ListCaseDomains(context.Background())
	require.NoError(t, err)
	assert.True(t, cat.Empty())
}

func TestInvalidBody(t *testing.T) {
	_, srv := newClient(t, snapshot())

	resp, err := srv.Client().Post(srv.URL+"/api/user/getLawyerByCaseDomain", "application/json", bytes.NewBufferString("{"))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
