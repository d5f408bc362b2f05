package theme

import (
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"
)

// Colors
var (
	Primary = lipgloss.Color("#33A8FF")
	Muted   = lipgloss.Color("#6B7280")
	Success = lipgloss.Color("#10B981")
	Warning = lipgloss.Color("#F59E0B")
	Error   = lipgloss.Color("#EF4444")
)

// Shared styles
var (
	SectionStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	HeaderStyle = lipgloss.NewStyle().
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(Muted)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(Success).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

// StatusColor maps IAM access key statuses to theme colors.
func StatusColor(status string) color.Color {
	switch strings.ToLower(status) {
	case "active", "true":
		return Success
	case "inactive", "false":
		return Warning
	default:
		return Muted
	}
}

// RenderStatus renders a status string with a colored bullet.
func RenderStatus(status string) string {
	c := StatusColor(status)
	bullet := lipgloss.NewStyle().Foreground(c).Render("●")
	return bullet + " " + status
}

// AgeColor is Warning for keys past maxAgeDays and Error once they are
// twice as old. Keys within the limit are Success.
func AgeColor(ageDays, maxAgeDays int) color.Color {
	switch {
	case ageDays <= maxAgeDays:
		return Success
	case ageDays >= 2*maxAgeDays:
		return Error
	default:
		return Warning
	}
}
