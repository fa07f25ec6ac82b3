package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/ShubhamAnand123/onlawthink/internal/domain"
)

const selectorPlaceholder = "Select a case domain"

type domainItem struct {
	value string
}

func (d domainItem) Title() string {
	if d.value == "" {
		return selectorPlaceholder
	}
	return d.value
}
func (d domainItem) Description() string { return "" }
func (d domainItem) FilterValue() string { return d.value }

// applyResult hands a fetch result to the view that issued it. Results for a view
// that has since been torn down are still applied to it, which discards and counts
// them as stale.
func (m model) applyResult(msg fetchDoneMsg) model {
	if msg.view == nil {
		return m
	}
	applied := msg.view.Apply(msg.result)
	if !applied || msg.view != m.view {
		return m
	}

	switch msg.result.Token.Kind {
	case domain.FetchCatalog:
		items := []list.Item{domainItem{}}
		for _, d := range m.view.Catalog() {
			items = append(items, domainItem{value: d})
		}
		m.selector.SetItems(items)
	default:
		m.table.SetRows(providerRows(m.view.State().Records))
		m.table.SetCursor(0)
	}
	return m
}

func (m model) selected() (domain.Provider, bool) {
	st := m.view.State()
	if !st.RecordsVisible(m.view.Mode()) {
		return domain.Provider{}, false
	}
	i := m.table.Cursor()
	if i < 0 || i >= len(st.Records) {
		return domain.Provider{}, false
	}
	return st.Records[i], true
}

// navVisible reports whether the links between the two views are offered. The
// unfiltered view only shows them next to a found listing.
func (m model) navVisible() bool {
	if m.view.Mode() == domain.ModeAll {
		return m.view.State().Message == domain.FoundMessage
	}
	return true
}

func (m model) updateDirectory(msg tea.KeyMsg) (model, tea.Cmd) {
	if m.view == nil {
		return m, nil
	}
	if m.selecting {
		return m.updateSelector(msg)
	}

	key := msg.String()
	m.toast = ""

	if disc := m.view.Disclosure(); disc.Open() {
		_, rec := disc.Current()
		switch key {
		case "esc", "enter", "backspace":
			m.view.CloseDisclosure()
		case "i":
			m.view.ShowProfile(rec)
		case "c":
			m.view.ShowContact(rec)
		case "q":
			m = m.leaveDirectory()
		}
		return m, nil
	}

	switch key {
	case "esc", "q":
		return m.leaveDirectory(), nil

	case "enter", "i":
		if rec, ok := m.selected(); ok {
			m.view.ShowProfile(rec)
		}
		return m, nil

	case "c":
		if rec, ok := m.selected(); ok {
			m.view.ShowContact(rec)
		}
		return m, nil

	case "t", "x":
		if rec, ok := m.selected(); ok {
			action, note := "chat_room", "Chat rooms are not available yet"
			if key == "x" {
				action, note = "request_lawyer", "Lawyer requests are not available yet"
			}
			m.log.Debug("directory.action.stub",
				zap.String("view_id", m.view.ID()),
				zap.String("action", action),
				zap.String("provider_id", rec.ID),
			)
			m.toast = note
		}
		return m, nil

	case "a":
		if m.view.Mode() != domain.ModeAll && m.navVisible() {
			return m.openDirectory(domain.ModeAll), nil
		}
		return m, nil

	case "d":
		if m.view.Mode() != domain.ModeByCaseDomain && m.navVisible() {
			return m.openDirectory(domain.ModeByCaseDomain), nil
		}
		return m, nil

	case "/":
		if m.view.Mode() == domain.ModeByCaseDomain && !m.view.Catalog().Empty() {
			m.selecting = true
			m.selector.Select(m.selectorIndex())
		}
		return m, nil

	case "s":
		if m.view.Mode() != domain.ModeByCaseDomain {
			return m, nil
		}
		fx, ok := m.view.Submit()
		if !ok {
			return m, nil
		}
		return m, cmdFetch(m.fetcher, m.view, fx)
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// selectorIndex positions the selector on the current filter, or on the
// placeholder when the filter is not one of the catalog's case domains.
func (m model) selectorIndex() int {
	f := m.view.State().Filter
	if !m.view.Catalog().Contains(f) {
		return 0
	}
	for i, it := range m.selector.Items() {
		if d, ok := it.(domainItem); ok && d.value == f {
			return i
		}
	}
	return 0
}

func (m model) updateSelector(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		m.selecting = false
		return m, nil
	case "enter":
		if it, ok := m.selector.SelectedItem().(domainItem); ok {
			m.view.SetFilter(it.value)
		}
		m.selecting = false
		return m, nil
	}

	var cmd tea.Cmd
	m.selector, cmd = m.selector.Update(msg)
	return m, cmd
}

func (m model) viewDirectory() string {
	if m.view == nil {
		return ""
	}
	th := m.theme
	st := m.view.State()
	mode := m.view.Mode()

	var b strings.Builder
	if mode == domain.ModeAll {
		b.WriteString(th.Title.Render("All lawyers") + "\n\n")
	} else {
		b.WriteString(th.Title.Render("Search lawyers by case domain") + "\n\n")
	}

	if m.selecting {
		b.WriteString(m.selector.View() + "\n")
		b.WriteString(th.Help.Render("↑/↓ move • enter choose • esc cancel"))
		return b.String()
	}

	if mode == domain.ModeByCaseDomain {
		filter := st.Filter
		if filter == "" {
			filter = selectorPlaceholder
		}
		b.WriteString(th.Label.Render("Case domain: ") + filter + "\n")
		if m.view.Catalog().Empty() {
			b.WriteString(th.Subtitle.Render("(no case domains available)") + "\n")
		}
		b.WriteString("\n")
	}

	if panel, rec := m.view.Disclosure().Current(); panel != domain.PanelNone {
		if panel == domain.PanelProfile {
			b.WriteString(renderProfile(th, rec, m.width))
		} else {
			b.WriteString(renderContact(th, rec, m.width))
		}
		return b.String()
	}

	switch mode {
	case domain.ModeAll:
		if st.RecordsVisible(mode) {
			b.WriteString(m.table.View() + "\n")
		} else if st.Message != "" {
			b.WriteString(th.Error.Render(st.Message) + "\n")
		}
	default:
		if st.Message != "" {
			b.WriteString(th.Subtitle.Render(st.Message) + "\n")
		}
		if st.RecordsVisible(mode) {
			b.WriteString(m.table.View() + "\n")
		}
	}

	if m.toast != "" {
		b.WriteString("\n" + th.Notice.Render(m.toast) + "\n")
	}

	b.WriteString("\n" + th.Help.Render(m.directoryHelp()))
	return b.String()
}

func (m model) directoryHelp() string {
	var parts []string
	if m.view.State().RecordsVisible(m.view.Mode()) {
		parts = append(parts, "enter more info", "c contact", "t chat", "x request")
	}
	if m.view.Mode() == domain.ModeByCaseDomain {
		if !m.view.Catalog().Empty() {
			parts = append(parts, "/ case domain")
		}
		parts = append(parts, "s search")
	}
	if m.navVisible() {
		if m.view.Mode() == domain.ModeAll {
			parts = append(parts, "d by case domain")
		} else {
			parts = append(parts, "a all lawyers")
		}
	}
	parts = append(parts, "esc back")
	return clampString(strings.Join(parts, " • "), max(m.width-4, 20))
}
