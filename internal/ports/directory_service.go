package ports

import (
	"context"

	"github.com/ShubhamAnand123/onlawthink/internal/domain"
)

// DirectoryService is the remote lawyer directory.
//
// Implementations return *domain.ServiceError when the service answered with a
// non-success status and a transport-kind *domain.OpError when no usable answer
// arrived. They never retry.
type DirectoryService interface {
	ListProviders(ctx context.Context) (domain.ProviderPage, error)
	ListCaseDomains(ctx context.Context) (domain.CaseDomainCatalog, error)
	QueryByCaseDomain(ctx context.Context, caseDomain string) (domain.ProviderPage, error)
}
