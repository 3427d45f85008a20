package prompts

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/areuok/areuok/internal/models"
)

// ReviewAction is the decision taken on one request during review.
type ReviewAction int

const (
	ReviewSkip ReviewAction = iota
	ReviewAccept
	ReviewReject
)

// ReviewDecision pairs a request id with the chosen action.
type ReviewDecision struct {
	RequestID string
	Action    ReviewAction
}

// reviewModel is a Bubble Tea model that walks through pending supervision
// requests one decision at a time.
type reviewModel struct {
	requests  []models.SupervisionRequest
	decisions map[string]ReviewAction

	cursor    int
	cancelled bool
	confirmed bool
}

func newReviewModel(requests []models.SupervisionRequest) reviewModel {
	return reviewModel{
		requests:  requests,
		decisions: make(map[string]ReviewAction),
	}
}

func (m reviewModel) Init() tea.Cmd {
	return nil
}

func (m reviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.requests)-1 {
				m.cursor++
			}
		case "a":
			m.decisions[m.requests[m.cursor].RequestID] = ReviewAccept
			m.advance()
		case "r":
			m.decisions[m.requests[m.cursor].RequestID] = ReviewReject
			m.advance()
		case "s":
			delete(m.decisions, m.requests[m.cursor].RequestID)
			m.advance()
		case "enter":
			m.confirmed = true
			return m, tea.Quit
		case "ctrl+c", "q":
			m.cancelled = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *reviewModel) advance() {
	if m.cursor < len(m.requests)-1 {
		m.cursor++
	}
}

var (
	rvTitle       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00d4aa"))
	rvDescription = lipgloss.NewStyle().Foreground(lipgloss.Color("#888"))
	rvCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00d4aa"))
	rvAccept      = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	rvReject      = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	rvNormal      = lipgloss.NewStyle()
)

func (m reviewModel) View() string {
	var b strings.Builder

	b.WriteString(rvTitle.Render("Review supervision requests"))
	b.WriteString("\n")
	b.WriteString(rvDescription.Render("a: accept • r: reject • s: skip • Enter to apply"))
	b.WriteString("\n\n")

	for i, req := range m.requests {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		marker := "•"
		style := rvNormal
		switch m.decisions[req.RequestID] {
		case ReviewAccept:
			marker = "✓"
			style = rvAccept
		case ReviewReject:
			marker = "✗"
			style = rvReject
		}

		line := fmt.Sprintf("%s%s %s (%s)", cursor, marker, req.SupervisorDeviceName, req.SupervisorDeviceID)
		if i == m.cursor {
			b.WriteString(rvCursorStyle.Render(line))
		} else {
			b.WriteString(style.Render(line))
		}
		b.WriteString("\n")
		b.WriteString(rvDescription.Render("      sent " + req.CreatedAt.Format("2006-01-02 15:04")))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(rvDescription.Render("q: cancel without applying"))
	return b.String()
}

// RunRequestReview shows the interactive request reviewer and returns the
// decisions to apply. A nil slice with a nil error means the user cancelled.
func RunRequestReview(requests []models.SupervisionRequest) ([]ReviewDecision, error) {
	if len(requests) == 0 {
		return nil, nil
	}

	p := tea.NewProgram(newReviewModel(requests))
	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(reviewModel)
	if !ok || m.cancelled || !m.confirmed {
		return nil, nil
	}

	var decisions []ReviewDecision
	for _, req := range requests {
		action, ok := m.decisions[req.RequestID]
		if !ok || action == ReviewSkip {
			continue
		}
		decisions = append(decisions, ReviewDecision{RequestID: req.RequestID, Action: action})
	}
	return decisions, nil
}
