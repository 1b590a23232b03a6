package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/csheth/homescout/internal/form"
	"github.com/csheth/homescout/internal/history"
	"github.com/csheth/homescout/internal/predictor"
)

var (
	titleStyle        = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	taglineStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("147"))
	sectionHeadStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81"))
	labelStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("110"))
	focusedLabelStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	errorStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	helperStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	resultStyle       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	resultBoxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("42")).Padding(0, 2)
	bannerStyle       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("214")).Padding(0, 1)
	statusBarStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

func (m *model) View() string {
	parts := []string{m.headerView()}
	if banner := m.healthLine(); banner != "" {
		parts = append(parts, banner)
	}
	parts = append(parts, m.formView())
	if outcome := m.outcomeView(); outcome != "" {
		parts = append(parts, outcome)
	}
	if m.historyVisible {
		parts = append(parts, m.historyPanel())
	}
	parts = append(parts, m.footerView())
	return joinNonEmpty(parts)
}

func (m *model) headerView() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Render("homescout"),
		taglineStyle.Render(heroTagline),
	)
}

func (m *model) healthLine() string {
	switch m.health {
	case healthUnhealthy:
		return bannerStyle.Render("Prediction service is unreachable. Estimates will fail until it recovers.")
	case healthUnknown:
		return helperStyle.Render("Checking the prediction service…")
	default:
		return ""
	}
}

func (m *model) formView() string {
	rows := make([]string, 0, len(form.Fields)*2)
	for i, field := range form.Fields {
		spec := form.SpecFor(field)
		label := labelStyle.Render(spec.Label)
		if i == m.focusIdx {
			label = focusedLabelStyle.Render(spec.Label)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, padLabel(label), m.inputs[i].View()))
		if msg, ok := m.fieldErrors[field]; ok {
			rows = append(rows, errorStyle.Render("  "+msg))
		}
	}
	return strings.Join(rows, "\n")
}

func (m *model) outcomeView() string {
	switch {
	case m.loading:
		return fmt.Sprintf("%s Contacting the prediction service…", m.spinner.View())
	case m.apiError != "":
		return errorStyle.Render(wordwrap.String(m.apiError, m.panelWidth()))
	case m.result != nil:
		return resultBoxStyle.Render(resultStyle.Render("Estimated price: " + predictor.FormatPrice(*m.result)))
	default:
		return ""
	}
}

func (m *model) historyPanel() string {
	m.refreshHistoryIfDirty()
	body := strings.TrimSpace(m.historyView.View())
	if body == "" {
		body = helperStyle.Render("No estimates recorded yet.")
	}
	return joinNonEmpty([]string{sectionHeadStyle.Render("Recent Estimates"), body})
}

func (m *model) refreshHistoryIfDirty() {
	if !m.historyDirty {
		return
	}
	lines := make([]string, 0, recentHistoryLimit)
	for _, entry := range history.Recent(m.entries, recentHistoryLimit) {
		lines = append(lines, formatHistoryLine(entry))
	}
	m.historyView.SetContent(strings.Join(lines, "\n"))
	m.historyView.GotoTop()
	m.historyDirty = false
}

func formatHistoryLine(entry history.Entry) string {
	stamp := entry.CreatedAt.Format("Jan 2 15:04")
	price := predictor.FormatPrice(predictor.Prediction{Price: entry.Price, Currency: entry.Currency})
	features := fmt.Sprintf("%dbd/%dba %ssqft cond %d schools %d",
		entry.Features.Bedrooms,
		entry.Features.Bathrooms,
		trimTrailingZeros(entry.Features.LivingArea),
		entry.Features.Condition,
		entry.Features.Schools,
	)
	return fmt.Sprintf("%s  %s  %s", helperStyle.Render(stamp), price, features)
}

func (m *model) footerView() string {
	hints := "Tab: next field • Enter: estimate • Ctrl+S: sample • Ctrl+R: history • Ctrl+C: quit"
	parts := []string{statusBarStyle.Render(hints)}
	if badges := m.jobStatusBadges(); len(badges) > 0 {
		parts = append(parts, statusBarStyle.Render(strings.Join(badges, "  •  ")))
	}
	if m.infoMessage != "" {
		parts = append(parts, helperStyle.Render(wordwrap.String(m.infoMessage, m.panelWidth())))
	}
	return strings.Join(parts, "\n")
}

func (m *model) jobStatusBadges() []string {
	badges := make([]string, 0, len(m.jobLog))
	for _, record := range m.jobLog {
		switch record.Status {
		case jobStatusRunning:
			badges = append(badges, fmt.Sprintf("%s…", record.Kind))
		case jobStatusFailed:
			badges = append(badges, fmt.Sprintf("%s ✗", record.Kind))
		default:
			badges = append(badges, fmt.Sprintf("%s ✓", record.Kind))
		}
	}
	return badges
}

func padLabel(label string) string {
	const column = 22
	if width := lipgloss.Width(label); width < column {
		return label + strings.Repeat(" ", column-width)
	}
	return label + " "
}

func trimTrailingZeros(value float64) string {
	s := fmt.Sprintf("%.2f", value)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}

func joinNonEmpty(parts []string) string {
	filtered := make([]string, 0, len(parts))
	for _, part := range parts {
		if strings.TrimSpace(part) == "" {
			continue
		}
		filtered = append(filtered, part)
	}
	return strings.Join(filtered, "\n\n")
}
