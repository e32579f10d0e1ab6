package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgdevment/phone-tracer/internal/domain"
)

const historyErrFallback = "Could not load the lookup history."

// historyItem adapts a HistoryEntry to the bubbles list.
type historyItem struct {
	entry domain.HistoryEntry
}

func (i historyItem) Title() string {
	return fmt.Sprintf("%s %s", i.entry.Flag, i.entry.Formatted)
}

func (i historyItem) Description() string {
	desc := i.entry.Carrier
	if desc == "" {
		desc = i.entry.LineType
	}
	if i.entry.Location != "" {
		desc += " · " + i.entry.Location
	}
	if !i.entry.Valid {
		desc += " · invalid"
	}
	return desc
}

func (i historyItem) FilterValue() string {
	return i.entry.Number + " " + i.entry.Country
}

// historyModel shows the recent server-side lookups. The list is
// fetched when the page is first shown and fully replaced on refresh.
type historyModel struct {
	styles  Styles
	backend Backend

	list      list.Model
	spinner   spinner.Model
	loading   bool
	retracing bool
	errMsg    string

	width  int
	height int
}

func newHistoryModel(styles Styles, backend Backend) historyModel {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = styles.NavSel
	delegate.Styles.SelectedDesc = styles.Muted

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Recent Lookups"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Spinner

	return historyModel{
		styles:  styles,
		backend: backend,
		list:    l,
		spinner: sp,
	}
}

// refresh fetches the history, replacing whatever is shown.
func (m historyModel) refresh() (historyModel, tea.Cmd) {
	if m.loading {
		return m, nil
	}
	m.loading = true
	m.errMsg = ""
	return m, tea.Batch(recentCmd(m.backend), m.spinner.Tick)
}

// enter runs whenever the page is shown; the server history can have
// grown since the last visit, so always re-fetch.
func (m historyModel) enter() (historyModel, tea.Cmd) {
	return m.refresh()
}

func (m historyModel) setSize(width, height int) historyModel {
	m.width = width
	m.height = height
	m.list.SetSize(width, height)
	return m
}

func (m historyModel) Update(msg tea.Msg) (historyModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			return m.refresh()
		case "enter":
			if item, ok := m.list.SelectedItem().(historyItem); ok && !m.retracing {
				m.retracing = true
				m.errMsg = ""
				return m, tea.Batch(traceCmd(m.backend, PageHistory, item.entry.Number), m.spinner.Tick)
			}
			return m, nil
		}

	case traceDoneMsg:
		if msg.origin == PageHistory && m.retracing {
			m.retracing = false
			return m, navigateCmd(showResultsMsg{result: msg.result})
		}
		return m, nil

	case traceFailedMsg:
		if msg.origin == PageHistory && m.retracing {
			m.retracing = false
			m.errMsg = userMessage(msg.err, historyErrFallback)
		}
		return m, nil

	case recentDoneMsg:
		m.loading = false
		items := make([]list.Item, len(msg.entries))
		for i, e := range msg.entries {
			items[i] = historyItem{entry: e}
		}
		return m, m.list.SetItems(items)

	case recentFailedMsg:
		m.loading = false
		m.errMsg = userMessage(msg.err, historyErrFallback)
		return m, nil

	case spinner.TickMsg:
		if m.loading || m.retracing {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m historyModel) View() string {
	s := m.styles

	if m.loading {
		return m.spinner.View() + " " + s.Muted.Render("Loading history...")
	}
	if m.retracing {
		return m.spinner.View() + " " + s.Muted.Render("Tracing...")
	}
	if m.errMsg != "" {
		return s.Error.Render("✗ "+m.errMsg) + "\n" + s.Muted.Render("Press 'r' to retry.")
	}
	if len(m.list.Items()) == 0 {
		return s.Title.Render("Recent Lookups") + "\n" +
			s.Muted.Render("No lookups yet. Trace a number from the Search page.")
	}

	return m.list.View() + "\n" + s.Muted.Render("enter: trace again  r: refresh")
}
