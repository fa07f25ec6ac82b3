package yamlfixtures

import (
	"fmt"
	"os"
	"strings"

	"github.com/ShubhamAnand123/onlawthink/internal/domain"
	"github.com/ShubhamAnand123/onlawthink/internal/infra/providerrules"
	"github.com/ShubhamAnand123/onlawthink/internal/ports"
	"gopkg.in/yaml.v3"
)

// Loader reads directory fixtures from YAML files.
type Loader struct {
	rules *providerrules.Checker
}

func NewLoader() *Loader {
	return &Loader{rules: providerrules.New()}
}

var _ ports.SnapshotLoader = (*Loader)(nil)

func (l *Loader) LoadSnapshot(path string) (domain.DirectorySnapshot, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.DirectorySnapshot{}, &domain.OpError{
			Op:   "yamlfixtures.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var yf yamlFixtures
	if err := yaml.Unmarshal(b, &yf); err != nil {
		return domain.DirectorySnapshot{}, &domain.OpError{
			Op:   "yamlfixtures.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return mapAndValidate(path, yf, l.rules)
}

type yamlFixtures struct {
	CaseDomains []string     `yaml:"case_domains"`
	Lawyers     []yamlLawyer `yaml:"lawyers"`
}

type yamlLawyer struct {
	ID             string   `yaml:"id"`
	FirstName      string   `yaml:"first_name"`
	LastName       string   `yaml:"last_name"`
	Location       string   `yaml:"location"`
	CaseDomain     string   `yaml:"case_domain"`
	YearOfJoining  int      `yaml:"year_of_joining"`
	Achievements   []string `yaml:"achievements"`
	Qualifications []string `yaml:"qualifications"`
	Bio            string   `yaml:"bio"`
	Image          string   `yaml:"image"`
	PhoneNo        string   `yaml:"phone_no"`
	EmailAddress   string   `yaml:"email_address"`
}

func mapAndValidate(path string, yf yamlFixtures, rules *providerrules.Checker) (domain.DirectorySnapshot, error) {
	snap := domain.DirectorySnapshot{
		CaseDomains: domain.NewCaseDomainCatalog(yf.CaseDomains),
		Providers:   make([]domain.Provider, 0, len(yf.Lawyers)),
	}

	seen := map[string]bool{}
	for i, y := range yf.Lawyers {
		fieldPrefix := fmt.Sprintf("lawyers[%d]", i)

		p := domain.Provider{
			ID:             strings.TrimSpace(y.ID),
			FirstName:      strings.TrimSpace(y.FirstName),
			LastName:       strings.TrimSpace(y.LastName),
			Location:       y.Location,
			CaseDomain:     strings.TrimSpace(y.CaseDomain),
			YearOfJoining:  y.YearOfJoining,
			Achievements:   y.Achievements,
			Qualifications: y.Qualifications,
			Bio:            strings.TrimSpace(y.Bio),
			Image:          y.Image,
			PhoneNo:        y.PhoneNo,
			EmailAddress:   y.EmailAddress,
		}
		if vs := rules.Check(p); len(vs) > 0 {
			name := yamlField(vs[0].Field)
			return domain.DirectorySnapshot{}, invalidField(path, fieldPrefix+"."+name, vs[0].Describe(name))
		}
		if seen[p.ID] {
			return domain.DirectorySnapshot{}, invalidField(path, fieldPrefix+".id", fmt.Sprintf("duplicate id %q", p.ID))
		}
		seen[p.ID] = true

		if p.Achievements == nil {
			p.Achievements = []string{}
		}
		if p.Qualifications == nil {
			p.Qualifications = []string{}
		}

		snap.Providers = append(snap.Providers, p)
	}

	return snap, nil
}

// yamlField names a domain.Provider field the way fixture files spell it.
func yamlField(field string) string {
	switch field {
	case "ID":
		return "id"
	case "FirstName":
		return "first_name"
	case "YearOfJoining":
		return "year_of_joining"
	default:
		return strings.ToLower(field)
	}
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "yamlfixtures.map",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}
