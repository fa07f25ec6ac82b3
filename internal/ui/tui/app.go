package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/ShubhamAnand123/onlawthink/internal/domain"
	"github.com/ShubhamAnand123/onlawthink/internal/usecase"
)

type screen int

const (
	screenRoot screen = iota
	screenHome
	screenDirectory
)

const (
	defaultWidth  = 100
	defaultHeight = 30
)

type menuItem struct {
	title string
	desc  string
	mode  domain.ViewMode
}

func (m menuItem) Title() string       { return m.title }
func (m menuItem) Description() string { return m.desc }
func (m menuItem) FilterValue() string { return m.title }

type model struct {
	theme   Theme
	deps    Deps
	log     *zap.Logger
	gate    domain.AccessGate
	fetcher *usecase.Fetcher

	scr      screen
	menu     list.Model
	redirect string

	view      *usecase.DirectoryView
	table     table.Model
	selector  list.Model
	selecting bool
	toast     string

	width  int
	height int
}

func Run(deps Deps) error {
	m := newModel(deps)
	p := tea.NewProgram(wrapSafe(m, m.log), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}

	items := []list.Item{
		menuItem{"All lawyers", "Browse every lawyer in the directory", domain.ModeAll},
		menuItem{"Search by case domain", "Pick a case domain and query matching lawyers", domain.ModeByCaseDomain},
		menuItem{"Quit", "Exit onlawthink", ""},
	}

	menu := list.New(items, list.NewDefaultDelegate(), defaultWidth-4, defaultHeight-10)
	menu.Title = "onlawthink"
	menu.SetShowStatusBar(false)
	menu.SetFilteringEnabled(false)
	menu.SetShowHelp(false)
	menu.KeyMap.Quit.SetEnabled(false)

	sel := list.New(nil, list.NewDefaultDelegate(), defaultWidth-4, defaultHeight-10)
	sel.Title = "Case domains"
	sel.SetShowStatusBar(false)
	sel.SetFilteringEnabled(false)
	sel.SetShowHelp(false)
	sel.KeyMap.Quit.SetEnabled(false)

	tbl := table.New(
		table.WithColumns(providerColumns(defaultWidth)),
		table.WithFocused(true),
		table.WithHeight(defaultHeight-14),
	)

	m := model{
		theme:    DefaultTheme(),
		deps:     deps,
		log:      log,
		gate:     domain.NewAccessGate(),
		fetcher:  usecase.NewFetcher(deps.Service),
		scr:      screenHome,
		menu:     menu,
		table:    tbl,
		selector: sel,
		width:    defaultWidth,
		height:   defaultHeight,
	}

	// The first frame is drawn before any Update, so the gate is applied here too.
	if dec := m.gate.Evaluate(m.authenticated()); !dec.Allowed {
		m.scr = screenRoot
		m.redirect = dec.Redirect
	}
	return m
}

func (m model) authenticated() bool {
	return m.deps.Session != nil && m.deps.Session.IsAuthenticated()
}

func (m model) Init() tea.Cmd { return nil }

// Update applies msg and then re-evaluates the access gate, which may redirect
// to the root screen or start the fetches a freshly mounted view needs.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m, cmd := m.update(msg)
	m, gateCmd := m.enforceGate()
	return m, tea.Batch(cmd, gateCmd)
}

func (m model) enforceGate() (model, tea.Cmd) {
	switch m.scr {
	case screenHome:
		if dec := m.gate.Evaluate(m.authenticated()); !dec.Allowed {
			return m.toRoot(dec.Redirect), nil
		}
	case screenDirectory:
		if m.view == nil {
			m.scr = screenHome
			return m, nil
		}
		dec, fetches := m.view.Open(m.authenticated())
		if !dec.Allowed {
			return m.toRoot(dec.Redirect), nil
		}
		return m, cmdFetches(m.fetcher, m.view, fetches)
	}
	return m, nil
}

func (m model) update(msg tea.Msg) (model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.menu.SetSize(msg.Width-4, msg.Height-10)
		m.selector.SetSize(msg.Width-4, msg.Height-10)
		m.table.SetColumns(providerColumns(msg.Width - 4))
		m.table.SetHeight(max(msg.Height-14, 3))
		return m, nil

	case fetchDoneMsg:
		return m.applyResult(msg), nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m = m.leaveDirectory()
			return m, tea.Quit
		}
		switch m.scr {
		case screenRoot:
			return m.updateRoot(msg)
		case screenHome:
			return m.updateHome(msg)
		case screenDirectory:
			return m.updateDirectory(msg)
		}
	}
	return m, nil
}

func (m model) updateRoot(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "r", "enter":
		if m.authenticated() {
			m.scr = screenHome
			m.redirect = ""
		}
	}
	return m, nil
}

func (m model) updateHome(msg tea.KeyMsg) (model, tea.Cmd) {
	m.toast = ""
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "enter":
		it, ok := m.menu.SelectedItem().(menuItem)
		if !ok {
			return m, nil
		}
		if it.mode == "" {
			return m, tea.Quit
		}
		return m.openDirectory(it.mode), nil
	}

	var cmd tea.Cmd
	m.menu, cmd = m.menu.Update(msg)
	return m, cmd
}

// openDirectory replaces the current view with a fresh, unmounted one. The gate
// pass at the end of Update mounts it.
func (m model) openDirectory(mode domain.ViewMode) model {
	m = m.leaveDirectory()
	m.view = usecase.NewDirectoryView(mode,
		usecase.WithViewLogger(m.log),
		usecase.WithRecorder(m.deps.Recorder),
	)
	m.scr = screenDirectory
	m.selecting = false
	m.toast = ""
	m.table.SetRows(nil)
	m.table.SetCursor(0)
	m.selector.SetItems(nil)
	return m
}

func (m model) leaveDirectory() model {
	if m.view != nil {
		m.view.Teardown()
		m.view = nil
	}
	if m.scr == screenDirectory {
		m.scr = screenHome
	}
	m.selecting = false
	return m
}

func (m model) toRoot(redirect string) model {
	m = m.leaveDirectory()
	m.scr = screenRoot
	m.redirect = redirect
	m.toast = ""
	m.log.Info("tui.redirect", zap.String("to", redirect))
	return m
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)

	switch m.scr {
	case screenRoot:
		return wrap.Render(m.viewRoot())
	case screenDirectory:
		return wrap.Render(m.viewDirectory())
	}

	header := m.theme.Title.Render("onlawthink") + "\n" +
		m.theme.Subtitle.Render("Lawyer directory") + "\n"
	if m.deps.Root != "" {
		header += m.theme.Subtitle.Render("Workspace: "+clampString(m.deps.Root, max(m.width-16, 20))) + "\n"
	}
	if m.deps.LogPath != "" {
		header += m.theme.Subtitle.Render("Log: "+clampString(m.deps.LogPath, max(m.width-10, 20))) + "\n"
	}
	help := m.theme.Help.Render("↑/↓ move • enter select • q quit")
	if m.toast != "" {
		help = m.theme.Notice.Render(m.toast) + "\n" + help
	}
	return wrap.Render(header + "\n" + m.menu.View() + "\n" + help)
}

func (m model) viewRoot() string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render("Not Authorized") + "\n\n")
	b.WriteString("Sign in before browsing the directory:\n")
	b.WriteString("  onlawthink login --token <token>\n")
	if m.redirect != "" {
		b.WriteString("\n" + m.theme.Subtitle.Render("route "+m.redirect) + "\n")
	}
	card := m.theme.Card.Width(cardWidth(m.width)).Render(b.String())
	return card + "\n" + m.theme.Help.Render("r retry • q quit")
}
