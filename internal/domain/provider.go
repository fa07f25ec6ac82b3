package domain

import "strings"

// Provider is one lawyer listed by the directory service.
// The client stores and displays providers but never mutates them.
type Provider struct {
	ID             string   `json:"id"`
	FirstName      string   `json:"firstName"`
	LastName       string   `json:"lastName"`
	Location       string   `json:"location"`
	CaseDomain     string   `json:"caseDomain"`
	YearOfJoining  int      `json:"yearOfJoining"`
	Achievements   []string `json:"achievements"`
	Qualifications []string `json:"qualifications"`
	Bio            string   `json:"bio"`
	Image          string   `json:"image"`
	PhoneNo        string   `json:"phoneNo"`
	EmailAddress   string   `json:"emailAddress"`
}

func (p Provider) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// ProviderPage is one answer of a provider listing: the service's message and the
// records in the order the service returned them.
type ProviderPage struct {
	Message   string
	Providers []Provider
}

func cloneProviders(in []Provider) []Provider {
	out := make([]Provider, len(in))
	copy(out, in)
	return out
}

// FindProvider returns the record with the given id.
func FindProvider(records []Provider, id string) (Provider, bool) {
	for _, p := range records {
		if p.ID == id {
			return p, true
		}
	}
	return Provider{}, false
}
