package domain

// DirectorySnapshot is a static directory dataset, used to serve fixtures.
type DirectorySnapshot struct {
	CaseDomains CaseDomainCatalog
	Providers   []Provider
}

// ProvidersIn returns the providers whose case domain equals caseDomain, in order.
func (s DirectorySnapshot) ProvidersIn(caseDomain string) []Provider {
	out := []Provider{}
	for _, p := range s.Providers {
		if p.CaseDomain == caseDomain {
			out = append(out, p)
		}
	}
	return out
}
