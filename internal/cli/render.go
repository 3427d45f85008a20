package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	streakStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208"))
)

// streakLabel renders a streak count with a day suffix.
func streakLabel(streak int) string {
	if streak == 1 {
		return streakStyle.Render("1 day")
	}
	return streakStyle.Render(fmt.Sprintf("%d days", streak))
}

// checkMark renders a yes/no marker.
func checkMark(ok bool) string {
	if ok {
		return successStyle.Render("✓")
	}
	return warnStyle.Render("✗")
}
