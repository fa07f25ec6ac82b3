package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/ShubhamAnand123/onlawthink/internal/domain"
	"github.com/ShubhamAnand123/onlawthink/internal/usecase"
)

type reportJSON struct {
	Mode    domain.ViewMode   `json:"mode"`
	Filter  string            `json:"filter,omitempty"`
	Message string            `json:"message"`
	Lawyers []domain.Provider `json:"lawyers"`
}

func printReport(w io.Writer, report usecase.DirectoryReport, format string) error {
	st := report.State
	visible := st.RecordsVisible(report.Mode)

	switch format {
	case "json":
		out := reportJSON{
			Mode:    report.Mode,
			Filter:  st.Filter,
			Message: st.Message,
			Lawyers: []domain.Provider{},
		}
		if visible {
			out.Lawyers = st.Records
		}
		return encodeJSON(w, out)
	case "pretty", "":
		printPrettyReport(w, report)
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}

func printPrettyReport(w io.Writer, report usecase.DirectoryReport) {
	st := report.State
	if report.Mode == domain.ModeByCaseDomain {
		fmt.Fprintf(w, "Case domain: %s\n", orDash(st.Filter))
	}
	if st.Message != "" {
		fmt.Fprintf(w, "%s\n", st.Message)
	}
	if !st.RecordsVisible(report.Mode) {
		if st.Message == "" {
			// No answer reached the view; details are in the log.
			fmt.Fprintln(w, "(no results)")
		}
		return
	}

	fmt.Fprintln(w)
	for _, p := range st.Records {
		fmt.Fprintf(w, "- %s  [%s]\n", orDash(p.FullName()), p.ID)
		fmt.Fprintf(w, "  %s | %s", orDash(p.Location), orDash(p.CaseDomain))
		if p.YearOfJoining > 0 {
			fmt.Fprintf(w, " | since %d", p.YearOfJoining)
		}
		fmt.Fprintln(w)
	}
}

func printCatalog(w io.Writer, catalog domain.CaseDomainCatalog, format string) error {
	switch format {
	case "json":
		out := struct {
			CaseDomains []string `json:"caseDomains"`
		}{CaseDomains: []string(catalog)}
		if out.CaseDomains == nil {
			out.CaseDomains = []string{}
		}
		return encodeJSON(w, out)
	case "pretty", "":
		if catalog.Empty() {
			fmt.Fprintln(w, "(no case domains available)")
			return nil
		}
		for _, d := range catalog {
			fmt.Fprintf(w, "- %s\n", d)
		}
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}

func printProvider(w io.Writer, p domain.Provider, format string) error {
	switch format {
	case "json":
		return encodeJSON(w, p)
	case "pretty", "":
		fmt.Fprintf(w, "%s\n", orDash(p.FullName()))
		if p.Image != "" {
			fmt.Fprintf(w, "Image:           %s\n", p.Image)
		}
		fmt.Fprintf(w, "Location:        %s\n", orDash(p.Location))
		fmt.Fprintf(w, "Cases Handled:   %s\n", orDash(p.CaseDomain))
		if p.YearOfJoining > 0 {
			fmt.Fprintf(w, "Year of joining: %d\n", p.YearOfJoining)
		}
		printList(w, "Achievements", p.Achievements)
		printList(w, "Qualifications", p.Qualifications)
		fmt.Fprintf(w, "\nBio:\n  %s\n", orDash(p.Bio))

		fmt.Fprintf(w, "\nContact Us\n")
		fmt.Fprintf(w, "  Location: %s\n", orDash(p.Location))
		fmt.Fprintf(w, "  Phone:    %s\n", orDash(p.PhoneNo))
		fmt.Fprintf(w, "  Email:    %s\n", orDash(p.EmailAddress))
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}

func printList(w io.Writer, title string, items []string) {
	fmt.Fprintf(w, "\n%s:\n", title)
	if len(items) == 0 {
		fmt.Fprintln(w, "  -")
		return
	}
	for _, it := range items {
		fmt.Fprintf(w, "  • %s\n", it)
	}
}

func encodeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
