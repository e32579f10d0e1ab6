package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Page identifies one of the shell's views.
type Page int

const (
	PageSearch Page = iota
	PageResults
	PageReport
	PageHistory
	PageAssistant
)

var pageNames = map[Page]string{
	PageSearch:    "Search",
	PageResults:   "Results",
	PageReport:    "Report",
	PageHistory:   "History",
	PageAssistant: "Assistant",
}

var pageOrder = []Page{PageSearch, PageResults, PageReport, PageHistory, PageAssistant}

// Model is the application shell. It owns the navbar and current page,
// intercepts navigation messages and fans data messages out to every
// page so background replies land wherever they were requested from.
type Model struct {
	styles  Styles
	backend Backend

	page      Page
	search    searchModel
	results   resultsModel
	report    reportModel
	history   historyModel
	assistant assistantModel

	backendUp bool
	width     int
	height    int
}

// NewModel wires the shell with all pages over the given backend.
func NewModel(backend Backend) Model {
	styles := DefaultStyles()
	return Model{
		styles:    styles,
		backend:   backend,
		page:      PageSearch,
		search:    newSearchModel(styles, backend),
		results:   newResultsModel(styles, backend),
		report:    newReportModel(styles, backend),
		history:   newHistoryModel(styles, backend),
		assistant: newAssistantModel(styles, backend),
		backendUp: true,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(healthCmd(m.backend), m.search.Init())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		contentHeight := msg.Height - 4 // navbar + footer
		if contentHeight < 5 {
			contentHeight = 5
		}
		m.history = m.history.setSize(msg.Width-4, contentHeight)
		m.assistant = m.assistant.setSize(msg.Width-4, contentHeight)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "tab":
			return m.switchPage(m.nextPage(1))
		case "shift+tab":
			return m.switchPage(m.nextPage(-1))
		}
		// Keys go to the active page only.
		return m.updateActive(msg)

	case showResultsMsg:
		m.results = m.results.withResult(msg.result)
		m.page = PageResults
		return m, nil

	case showReportMsg:
		m.report = m.report.prefill(msg.number)
		m.page = PageReport
		return m, nil

	case backendHealthMsg:
		m.backendUp = msg.up
		return m, nil
	}

	// Data messages fan out to every page: only the page that marked
	// itself loading picks them up.
	return m.updateAll(msg)
}

func (m Model) nextPage(step int) Page {
	n := len(pageOrder)
	cur := 0
	for i, p := range pageOrder {
		if p == m.page {
			cur = i
			break
		}
	}
	return pageOrder[(cur+step+n)%n]
}

func (m Model) switchPage(page Page) (Model, tea.Cmd) {
	m.page = page
	switch page {
	case PageHistory:
		var cmd tea.Cmd
		m.history, cmd = m.history.enter()
		return m, cmd
	case PageAssistant:
		var cmd tea.Cmd
		m.assistant, cmd = m.assistant.enter()
		return m, cmd
	}
	return m, nil
}

func (m Model) updateActive(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.page {
	case PageSearch:
		m.search, cmd = m.search.Update(msg)
	case PageResults:
		m.results, cmd = m.results.Update(msg)
	case PageReport:
		m.report, cmd = m.report.Update(msg)
	case PageHistory:
		m.history, cmd = m.history.Update(msg)
	case PageAssistant:
		m.assistant, cmd = m.assistant.Update(msg)
	}
	return m, cmd
}

func (m Model) updateAll(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	m.search, cmd = m.search.Update(msg)
	cmds = append(cmds, cmd)
	m.results, cmd = m.results.Update(msg)
	cmds = append(cmds, cmd)
	m.report, cmd = m.report.Update(msg)
	cmds = append(cmds, cmd)
	m.history, cmd = m.history.Update(msg)
	cmds = append(cmds, cmd)
	m.assistant, cmd = m.assistant.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m Model) navbar() string {
	s := m.styles
	items := make([]string, 0, len(pageOrder))
	for _, p := range pageOrder {
		name := pageNames[p]
		if p == m.page {
			items = append(items, s.NavSel.Render(" "+name+" "))
		} else {
			items = append(items, s.NavItem.Render(" "+name+" "))
		}
	}
	bar := s.Bold.Render("📞 PhoneTracer") + "  " + strings.Join(items, " ")
	if !m.backendUp {
		bar += "  " + s.Error.Render("● backend offline")
	}
	return s.Header.Render(bar)
}

func (m Model) View() string {
	var content string
	switch m.page {
	case PageSearch:
		content = m.search.View()
	case PageResults:
		content = m.results.View()
	case PageReport:
		content = m.report.View()
	case PageHistory:
		content = m.history.View()
	case PageAssistant:
		content = m.assistant.View()
	}

	footer := m.styles.Footer.Render("tab: next page  shift+tab: previous  ctrl+c: quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		m.navbar(),
		m.styles.Content.Render(content),
		footer,
	)
}
