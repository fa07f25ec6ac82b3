package yamlfixtures

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/ShubhamAnand123/onlawthink/internal/domain"
)

func TestLoadSnapshot(t *testing.T) {
	snap, err := NewLoader().LoadSnapshot(filepath.Join("testdata", "lawyers.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(snap.CaseDomains) != 3 || snap.CaseDomains[0] != "Criminal" {
		t.Fatalf("unexpected catalog: %v", snap.CaseDomains)
	}
	if len(snap.Providers) != 2 {
		t.Fatalf("expected two providers, got %d", len(snap.Providers))
	}
	asha := snap.Providers[0]
	if asha.FullName() != "Asha Rao" || asha.PhoneNo != "+91 98200 00001" || asha.YearOfJoining != 2012 {
		t.Fatalf("unexpected provider: %#v", asha)
	}
	if snap.Providers[1].Achievements == nil {
		t.Fatalf("expected achievements initialized")
	}
}

func TestLoadSnapshotDuplicateID(t *testing.T) {
	path := filepath.Join("testdata", "duplicate.yaml")
	_, err := NewLoader().LoadSnapshot(path)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "lawyers[1].id") {
		t.Fatalf("expected field in error, got %v", err)
	}
	if !strings.Contains(err.Error(), path) {
		t.Fatalf("expected path in error, got %v", err)
	}
}

func TestLoadSnapshotMissingFile(t *testing.T) {
	_, err := NewLoader().LoadSnapshot(filepath.Join("testdata", "nope.yaml"))
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected KindNotFound, got %v", err)
	}
}

func TestLoadSnapshotInvalidRecord(t *testing.T) {
	cases := []struct {
		file  string
		field string
		msg   string
	}{
		{"missing_name.yaml", "lawyers[0].first_name", "first_name is required"},
		{"negative_year.yaml", "lawyers[0].year_of_joining", "year_of_joining must be at least 0"},
	}
	for _, tc := range cases {
		t.Run(tc.file, func(t *testing.T) {
			_, err := NewLoader().LoadSnapshot(filepath.Join("testdata", tc.file))
			if !domain.IsKind(err, domain.KindInvalidConfig) {
				t.Fatalf("expected KindInvalidConfig, got %v", err)
			}
			if !strings.Contains(err.Error(), tc.field) || !strings.Contains(err.Error(), tc.msg) {
				t.Fatalf("expected %s: %s in error, got %v", tc.field, tc.msg, err)
			}
		})
	}
}
