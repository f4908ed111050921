// Package tui provides the interactive chat surface for building lesson
// plans through conversation.
package tui

import (
	"context"
	"fmt"
	"os"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/google/uuid"

	"github.com/lessonforge/lessonforge/internal/orchestrator"
)

var (
	userStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	assistantStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	bodyStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	busyStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true)
	downloadStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
)

// line is one rendered transcript entry.
type line struct {
	role string // "you" or "assistant"
	text string
}

// responseMsg delivers the orchestrator's reply for one utterance.
type responseMsg struct {
	resp orchestrator.Response
}

// ChatModel is the root Bubble Tea model for the conversation.
type ChatModel struct {
	orch      *orchestrator.Orchestrator
	sessionID string

	input      textinput.Model
	transcript []line
	busy       bool
	width      int
	height     int
}

// NewChat creates a ChatModel bound to a fresh session.
func NewChat(orch *orchestrator.Orchestrator) ChatModel {
	ti := textinput.New()
	ti.Placeholder = "Type your answer..."
	ti.Focus()

	m := ChatModel{
		orch:      orch,
		sessionID: uuid.New().String(),
		input:     ti,
	}

	opening := orch.Connect(m.sessionID)
	m.transcript = append(m.transcript, line{role: "assistant", text: opening.Text})

	return m
}

func (m ChatModel) Init() tea.Cmd {
	return m.input.Focus()
}

func (m ChatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case responseMsg:
		m.busy = false
		text := msg.resp.Text
		if msg.resp.DownloadID != "" {
			text += "\n\n" + downloadStyle.Render(
				fmt.Sprintf("View it anytime: lessonforge plans show %s", msg.resp.DownloadID))
		}
		m.transcript = append(m.transcript, line{role: "assistant", text: text})
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.orch.Disconnect(m.sessionID)
			return m, tea.Quit
		case "enter":
			if m.busy {
				return m, nil
			}
			utterance := strings.TrimSpace(m.input.Value())
			if utterance == "" {
				return m, nil
			}
			m.input.Reset()
			m.transcript = append(m.transcript, line{role: "you", text: utterance})
			m.busy = true
			return m, m.send(utterance)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// send runs one dialogue turn off the UI goroutine. Generation can take
// minutes; the input stays locked until the response lands.
func (m ChatModel) send(utterance string) tea.Cmd {
	orch, sessionID := m.orch, m.sessionID
	return func() tea.Msg {
		resp := orch.HandleUtterance(context.Background(), sessionID, utterance)
		return responseMsg{resp: resp}
	}
}

func (m ChatModel) View() tea.View {
	var b strings.Builder

	for _, l := range m.transcript {
		if l.role == "you" {
			b.WriteString(userStyle.Render("You: "))
		} else {
			b.WriteString(assistantStyle.Render("Assistant: "))
		}
		b.WriteString(bodyStyle.Render(l.text))
		b.WriteString("\n\n")
	}

	if m.busy {
		b.WriteString(busyStyle.Render("Working on it..."))
		b.WriteString("\n\n")
	} else {
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}

	b.WriteString(busyStyle.Render("Enter to send · Esc to quit"))

	v := tea.NewView(b.String())
	return v
}

// Run starts the chat program and blocks until it exits.
func Run(orch *orchestrator.Orchestrator) error {
	p := tea.NewProgram(NewChat(orch))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
