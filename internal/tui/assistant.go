package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/rgdevment/phone-tracer/internal/domain"
)

const assistantGreeting = "Hi! I'm your phone safety assistant. Ask me about " +
	"spam calls, scam tactics, or what to do about a suspicious number."

// chatApology is shown as a regular assistant turn when the backend
// call fails; it is never sent back as context.
const chatApology = "Sorry, I couldn't reach the assistant service. Please try again in a moment."

// Quick-start chips, shown only while the conversation holds nothing
// but the greeting.
var assistantChips = []string{
	"How do I recognize a phone scam?",
	"What should I do about spam calls?",
	"Is it safe to call back a missed number?",
}

// assistantModel is the safety-chat page. The transcript lives client
// side; every send replays the turns so far as context.
type assistantModel struct {
	styles  Styles
	backend Backend

	messages []domain.ChatMessage
	input    textinput.Model
	viewport viewport.Model
	spinner  spinner.Model
	waiting  bool

	status        domain.AIStatus
	statusFetched bool

	width  int
	height int
	ready  bool
}

func newAssistantModel(styles Styles, backend Backend) assistantModel {
	in := textinput.New()
	in.Placeholder = "Ask about phone safety..."
	in.CharLimit = 300
	in.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Spinner

	return assistantModel{
		styles:  styles,
		backend: backend,
		messages: []domain.ChatMessage{
			{Role: domain.RoleAI, Text: assistantGreeting},
		},
		input:   in,
		spinner: sp,
	}
}

// enter runs once the page is first shown; it probes engine status
// without blocking the chat if the probe fails.
func (m assistantModel) enter() (assistantModel, tea.Cmd) {
	if m.statusFetched {
		return m, nil
	}
	m.statusFetched = true
	return m, aiStatusCmd(m.backend)
}

func (m assistantModel) setSize(width, height int) assistantModel {
	m.width = width
	m.height = height

	vpHeight := height - 5 // input box, status line, help line
	if vpHeight < 3 {
		vpHeight = 3
	}
	if !m.ready {
		m.viewport = viewport.New(width, vpHeight)
		m.ready = true
	} else {
		m.viewport.Width = width
		m.viewport.Height = vpHeight
	}
	m.viewport.SetContent(m.renderTranscript())
	m.viewport.GotoBottom()
	return m
}

func (m assistantModel) Update(msg tea.Msg) (assistantModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			return m.send(strings.TrimSpace(m.input.Value()))
		case "alt+1", "alt+2", "alt+3":
			if m.chipsVisible() {
				idx := int(msg.String()[4] - '1')
				return m.send(assistantChips[idx])
			}
		}

	case chatDoneMsg:
		if m.waiting {
			m.waiting = false
			m.messages = append(m.messages, domain.ChatMessage{
				Role: domain.RoleAI,
				Text: msg.reply.Response,
			})
			m.syncViewport()
		}
		return m, nil

	case chatFailedMsg:
		if m.waiting {
			m.waiting = false
			m.messages = append(m.messages, domain.ChatMessage{
				Role: domain.RoleAI,
				Text: chatApology,
			})
			m.syncViewport()
		}
		return m, nil

	case aiStatusMsg:
		m.status = msg.status
		return m, nil

	case spinner.TickMsg:
		if m.waiting {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// send dispatches one chat turn. The context handed to the backend is
// the transcript as it stood before this message was appended.
func (m assistantModel) send(text string) (assistantModel, tea.Cmd) {
	if text == "" || m.waiting {
		return m, nil
	}

	history := make([]domain.ChatMessage, len(m.messages))
	copy(history, m.messages)

	m.messages = append(m.messages, domain.ChatMessage{Role: domain.RoleUser, Text: text})
	m.input.Reset()
	m.waiting = true
	m.syncViewport()

	return m, tea.Batch(chatCmd(m.backend, text, history), m.spinner.Tick)
}

func (m *assistantModel) syncViewport() {
	if m.ready {
		m.viewport.SetContent(m.renderTranscript())
		m.viewport.GotoBottom()
	}
}

func (m assistantModel) chipsVisible() bool {
	return len(m.messages) == 1 && !m.waiting
}

func (m assistantModel) renderTranscript() string {
	s := m.styles
	var b strings.Builder

	for _, msg := range m.messages {
		if msg.Role == domain.RoleUser {
			b.WriteString(s.Bold.Render("You: ") + msg.Text + "\n\n")
			continue
		}
		b.WriteString(s.Info.Render("Assistant:") + "\n")
		b.WriteString(m.renderMarkdown(msg.Text) + "\n")
	}
	return b.String()
}

// renderMarkdown pretty-prints an assistant turn, falling back to the
// raw text if glamour chokes on it.
func (m assistantModel) renderMarkdown(text string) (out string) {
	defer func() {
		if recover() != nil {
			out = text
		}
	}()

	width := m.width - 2
	if width < 20 {
		width = 20
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return text
	}
	rendered, err := r.Render(text)
	if err != nil {
		return text
	}
	return strings.TrimRight(rendered, "\n") + "\n"
}

func (m assistantModel) statusLine() string {
	s := m.styles
	switch m.status.State {
	case "ready":
		label := "AI engine ready"
		if m.status.ModelName != "" {
			label += " (" + m.status.ModelName + ")"
		}
		return s.Success.Render("● " + label)
	case "loading":
		return s.Warning.Render("● AI engine loading...")
	case "error":
		return s.Error.Render("● AI engine error")
	case "not_loaded":
		return s.Muted.Render("● rule-based answers")
	default:
		// Status probe failed or has not answered yet.
		return ""
	}
}

func (m assistantModel) View() string {
	s := m.styles
	var b strings.Builder

	b.WriteString(s.Title.Render("Safety Assistant") + "  " + m.statusLine() + "\n")

	if m.ready {
		b.WriteString(m.viewport.View() + "\n")
	} else {
		b.WriteString(m.renderTranscript())
	}

	if m.waiting {
		b.WriteString(m.spinner.View() + " " + s.Muted.Render("typing...") + "\n")
	}

	if m.chipsVisible() {
		for i, chip := range assistantChips {
			b.WriteString(s.Badge.Render("alt+"+string(rune('1'+i))) + " " + s.Muted.Render(chip) + "\n")
		}
	}

	b.WriteString(s.InputBox.Render(m.input.View()))

	return b.String()
}
