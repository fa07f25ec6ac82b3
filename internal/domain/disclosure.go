package domain

// Panel is which detail panel is open.
type Panel int

const (
	PanelNone Panel = iota
	PanelProfile
	PanelContact
)

func (p Panel) String() string {
	switch p {
	case PanelProfile:
		return "profile"
	case PanelContact:
		return "contact"
	default:
		return "none"
	}
}

// Disclosure holds at most one open panel and the record it shows.
// The zero value is closed. Every transition returns a new value; the last one wins.
type Disclosure struct {
	panel  Panel
	record Provider
}

func (Disclosure) ShowProfile(p Provider) Disclosure {
	return Disclosure{panel: PanelProfile, record: p}
}

func (Disclosure) ShowContact(p Provider) Disclosure {
	return Disclosure{panel: PanelContact, record: p}
}

func (Disclosure) Close() Disclosure { return Disclosure{} }

// Current returns the open panel and its record. The record is the zero value when no
// panel is open.
func (d Disclosure) Current() (Panel, Provider) {
	return d.panel, d.record
}

func (d Disclosure) Open() bool { return d.panel != PanelNone }

func (d Disclosure) Profile() (Provider, bool) {
	if d.panel != PanelProfile {
		return Provider{}, false
	}
	return d.record, true
}

func (d Disclosure) Contact() (Provider, bool) {
	if d.panel != PanelContact {
		return Provider{}, false
	}
	return d.record, true
}
