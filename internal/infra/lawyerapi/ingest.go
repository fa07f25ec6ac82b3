package lawyerapi

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/ShubhamAnand123/onlawthink/internal/domain"
	"github.com/ShubhamAnand123/onlawthink/internal/infra/providerrules"
)

// wireProvider is a provider as the service sends it. Both "_id" and "id" are
// accepted as the identifier.
type wireProvider struct {
	MongoID        string   `json:"_id"`
	ID             string   `json:"id"`
	FirstName      string   `json:"firstName"`
	LastName       string   `json:"lastName"`
	Location       string   `json:"location"`
	CaseDomain     string   `json:"caseDomain"`
	YearOfJoining  flexInt  `json:"yearOfJoining"`
	Achievements   []string `json:"achievements"`
	Qualifications []string `json:"qualifications"`
	Bio            string   `json:"bio"`
	Image          string   `json:"image"`
	PhoneNo        flexText `json:"phoneNo"`
	EmailAddress   string   `json:"emailAddress"`
}

// flexInt accepts a JSON number, a numeric string or null.
type flexInt int

func (f *flexInt) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" || s == `""` {
		*f = 0
		return nil
	}
	s = strings.Trim(s, `"`)
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fmt.Errorf("yearOfJoining: %w", err)
	}
	*f = flexInt(n)
	return nil
}

// flexText accepts a JSON string or number; phone numbers arrive as either.
type flexText string

func (f *flexText) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*f = flexText(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("phoneNo: %w", err)
	}
	*f = flexText(n.String())
	return nil
}

// Rejection explains why one record of a listing was dropped.
type Rejection struct {
	Index  int
	ID     string
	Reason string
}

// Ingestor validates and normalizes provider records on their way in.
type Ingestor struct {
	rules *providerrules.Checker
}

func NewIngestor() *Ingestor {
	return &Ingestor{rules: providerrules.New()}
}

// Providers converts raw listing items into providers, keeping service order.
// Invalid items and repeated ids are dropped and reported.
func (in *Ingestor) Providers(items []any) ([]domain.Provider, []Rejection) {
	out := make([]domain.Provider, 0, len(items))
	var rejected []Rejection
	seen := make(map[string]struct{}, len(items))

	for i, item := range items {
		p, err := in.provider(item)
		if err != nil {
			rejected = append(rejected, Rejection{Index: i, ID: p.ID, Reason: err.Error()})
			continue
		}
		if _, dup := seen[p.ID]; dup {
			rejected = append(rejected, Rejection{Index: i, ID: p.ID, Reason: "duplicate id"})
			continue
		}
		seen[p.ID] = struct{}{}
		out = append(out, p)
	}
	return out, rejected
}

func (in *Ingestor) provider(item any) (domain.Provider, error) {
	b, err := json.Marshal(item)
	if err != nil {
		return domain.Provider{}, err
	}
	var w wireProvider
	if err := json.Unmarshal(b, &w); err != nil {
		return domain.Provider{}, err
	}

	id := strings.TrimSpace(w.MongoID)
	if id == "" {
		id = strings.TrimSpace(w.ID)
	}
	p := domain.Provider{
		ID:             id,
		FirstName:      strings.TrimSpace(w.FirstName),
		LastName:       strings.TrimSpace(w.LastName),
		Location:       strings.TrimSpace(w.Location),
		CaseDomain:     strings.TrimSpace(w.CaseDomain),
		YearOfJoining:  int(w.YearOfJoining),
		Achievements:   cleanList(w.Achievements),
		Qualifications: cleanList(w.Qualifications),
		Bio:            strings.TrimSpace(w.Bio),
		Image:          strings.TrimSpace(w.Image),
		PhoneNo:        strings.TrimSpace(string(w.PhoneNo)),
		EmailAddress:   strings.TrimSpace(w.EmailAddress),
	}

	if vs := in.rules.Check(p); len(vs) > 0 {
		return p, violationError(vs)
	}
	return p, nil
}

func cleanList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func violationError(vs []providerrules.Violation) error {
	msgs := make([]string, 0, len(vs))
	for _, v := range vs {
		msgs = append(msgs, v.Describe(strings.ToLower(v.Field)))
	}
	return fmt.Errorf("%w: %s", domain.ErrInvalidRecord, strings.Join(msgs, "; "))
}
