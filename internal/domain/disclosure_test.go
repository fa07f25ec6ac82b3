package domain

import (
	"reflect"
	"testing"
)

func TestDisclosureLastCallWins(t *testing.T) {
	a := Provider{ID: "a"}
	b := Provider{ID: "b"}

	var d Disclosure
	if d.Open() {
		t.Fatalf("zero value must be closed")
	}

	d = d.ShowProfile(a).ShowContact(b)
	if _, ok := d.Profile(); ok {
		t.Fatalf("profile must be closed after contact opens")
	}
	got, ok := d.Contact()
	if !ok || got.ID != "b" {
		t.Fatalf("expected contact for b, got %#v ok=%v", got, ok)
	}

	d = d.ShowProfile(a)
	if _, ok := d.Contact(); ok {
		t.Fatalf("contact must be closed after profile opens")
	}
	panel, rec := d.Current()
	if panel != PanelProfile || rec.ID != "a" {
		t.Fatalf("expected profile for a, got %s %#v", panel, rec)
	}
}

func TestDisclosureCloseIsIdempotent(t *testing.T) {
	d := Disclosure{}.ShowContact(Provider{ID: "x"}).Close()
	if d.Open() {
		t.Fatalf("expected closed")
	}
	d = d.Close()
	panel, rec := d.Current()
	if panel != PanelNone || rec.ID != "" {
		t.Fatalf("expected none, got %s %#v", panel, rec)
	}
}

func TestDisclosureRepeatedShowIsIdempotent(t *testing.T) {
	p := Provider{ID: "p"}
	once := Disclosure{}.ShowProfile(p)
	twice := once.ShowProfile(p)
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("expected repeated show to be a no-op")
	}
}
