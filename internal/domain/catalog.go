package domain

import "strings"

// CaseDomainCatalog is the ordered list of case domains offered by the service.
// It is never cross-checked against the case domains of provider records.
type CaseDomainCatalog []string

// NewCaseDomainCatalog trims entries, drops blanks and keeps the first occurrence of
// each value, preserving service order.
func NewCaseDomainCatalog(in []string) CaseDomainCatalog {
	out := make(CaseDomainCatalog, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, d := range in {
		d = strings.TrimSpace(d)
		if d == "" {
			continue
		}
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		out = append(out, d)
	}
	return out
}

func (c CaseDomainCatalog) Contains(d string) bool {
	for _, v := range c {
		if v == d {
			return true
		}
	}
	return false
}

func (c CaseDomainCatalog) Empty() bool { return len(c) == 0 }
