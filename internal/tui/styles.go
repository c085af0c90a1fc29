package tui

import "github.com/charmbracelet/lipgloss"

var (
	ColorPrimary = lipgloss.Color("#7D56F4")
	ColorSuccess = lipgloss.Color("#04B575")
	ColorDanger  = lipgloss.Color("#FF5F87")
	ColorMuted   = lipgloss.Color("241")
	ColorBorder  = lipgloss.Color("238")

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(ColorPrimary).
			Padding(0, 1)

	SubtitleStyle = lipgloss.NewStyle().Foreground(ColorMuted)

	ActiveTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(ColorPrimary).
			Padding(0, 2)

	InactiveTabStyle = lipgloss.NewStyle().
				Foreground(ColorMuted).
				Border(lipgloss.NormalBorder(), false, false, true, false).
				BorderForeground(ColorBorder).
				Padding(0, 2)

	SectionStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)

	RefStyle    = lipgloss.NewStyle().Width(7).Foreground(ColorMuted)
	LabelStyle  = lipgloss.NewStyle().Width(38)
	AmountStyle = lipgloss.NewStyle().Width(14).Align(lipgloss.Right)
	TotalStyle  = AmountStyle.Bold(true)

	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 2)

	MetricLabelStyle = lipgloss.NewStyle().Foreground(ColorMuted)
	MetricValueStyle = lipgloss.NewStyle().Bold(true)
	OwedStyle        = lipgloss.NewStyle().Bold(true).Foreground(ColorDanger)
	RefundStyle      = lipgloss.NewStyle().Bold(true).Foreground(ColorSuccess)

	WarningStyle   = lipgloss.NewStyle().Foreground(ColorDanger)
	ErrorStyle     = lipgloss.NewStyle().Foreground(ColorDanger).Bold(true)
	StatusBarStyle = lipgloss.NewStyle().Foreground(ColorMuted).Padding(0, 1)
)
