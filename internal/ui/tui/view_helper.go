package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"

	"github.com/ShubhamAnand123/onlawthink/internal/domain"
)

func clampString(s string, max int) string {
	if max <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 1 {
		return string(r[:max])
	}
	return string(r[:max-1]) + "…"
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

func providerColumns(width int) []table.Column {
	if width <= 0 {
		width = 100
	}
	// name, location, case domain, joined
	rest := width - 10 - 8
	if rest < 40 {
		rest = 40
	}
	return []table.Column{
		{Title: "Name", Width: rest * 4 / 10},
		{Title: "Location", Width: rest * 3 / 10},
		{Title: "Case domain", Width: rest * 3 / 10},
		{Title: "Joined", Width: 10},
	}
}

func providerRows(records []domain.Provider) []table.Row {
	rows := make([]table.Row, 0, len(records))
	for _, p := range records {
		joined := "-"
		if p.YearOfJoining > 0 {
			joined = fmt.Sprintf("%d", p.YearOfJoining)
		}
		rows = append(rows, table.Row{
			orDash(p.FullName()),
			orDash(p.Location),
			orDash(p.CaseDomain),
			joined,
		})
	}
	return rows
}

func renderBullets(b *strings.Builder, items []string) {
	if len(items) == 0 {
		b.WriteString("  -\n")
		return
	}
	for _, it := range items {
		b.WriteString("  • " + it + "\n")
	}
}

func renderProfile(th Theme, p domain.Provider, width int) string {
	var b strings.Builder
	b.WriteString(th.Title.Render(orDash(p.FullName())) + "\n")
	if p.Image != "" {
		b.WriteString(th.Subtitle.Render(p.Image) + "\n")
	}
	b.WriteString("\n")
	b.WriteString(th.Label.Render("Location: ") + orDash(p.Location) + "\n")
	b.WriteString(th.Label.Render("Cases Handled: ") + orDash(p.CaseDomain) + "\n")
	if p.YearOfJoining > 0 {
		b.WriteString(th.Label.Render("Year of joining: ") + fmt.Sprintf("%d", p.YearOfJoining) + "\n")
	}
	b.WriteString("\n" + th.Label.Render("Achievements") + "\n")
	renderBullets(&b, p.Achievements)
	b.WriteString("\n" + th.Label.Render("Qualifications") + "\n")
	renderBullets(&b, p.Qualifications)
	b.WriteString("\n" + th.Label.Render("Bio") + "\n")
	b.WriteString(orDash(p.Bio) + "\n")
	b.WriteString("\n" + th.Help.Render("c contact • esc close"))

	return th.Card.Width(cardWidth(width)).Render(b.String())
}

func renderContact(th Theme, p domain.Provider, width int) string {
	var b strings.Builder
	b.WriteString(th.Title.Render("Contact Us") + "\n")
	b.WriteString(th.Subtitle.Render(orDash(p.FullName())) + "\n\n")
	b.WriteString(th.Label.Render("Location: ") + orDash(p.Location) + "\n")
	b.WriteString(th.Label.Render("Phone: ") + orDash(p.PhoneNo) + "\n")
	b.WriteString(th.Label.Render("Email: ") + orDash(p.EmailAddress) + "\n")
	b.WriteString("\n" + th.Help.Render("i profile • esc close"))

	return th.Card.Width(cardWidth(width)).Render(b.String())
}

func cardWidth(width int) int {
	if width <= 0 {
		return 72
	}
	w := width - 6
	if w > 96 {
		w = 96
	}
	if w < 30 {
		w = 30
	}
	return w
}
