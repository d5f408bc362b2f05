package utils

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
)

// ReportBuilder builds the plain-text sections of terminal reports.
type ReportBuilder struct {
	b            strings.Builder
	labelStyle   lipgloss.Style
	sectionStyle lipgloss.Style
}

// NewReportBuilder creates a builder with a fixed-width label column.
// sectionStyle controls the rendering of section headings.
func NewReportBuilder(labelWidth int, sectionStyle lipgloss.Style) *ReportBuilder {
	return &ReportBuilder{
		labelStyle:   lipgloss.NewStyle().Bold(true).Width(labelWidth),
		sectionStyle: sectionStyle,
	}
}

// Row writes a labeled key-value row.
func (r *ReportBuilder) Row(label, value string) {
	fmt.Fprintf(&r.b, "  %s %s\n", r.labelStyle.Render(label), value)
}

// Section writes a section heading like "── title ──────...".
func (r *ReportBuilder) Section(title string) {
	pad := max(40-len(title), 4)
	heading := fmt.Sprintf("  ── %s %s", title, strings.Repeat("─", pad))
	r.b.WriteString(r.sectionStyle.Render(heading) + "\n")
}

// Columns writes one table line. Each cell except the last is padded to the
// matching width, measured without ANSI styling.
func (r *ReportBuilder) Columns(widths []int, cells ...string) {
	r.b.WriteString("  ")
	for i, cell := range cells {
		r.b.WriteString(cell)
		if i < len(cells)-1 && i < len(widths) {
			r.b.WriteString(strings.Repeat(" ", max(widths[i]-lipgloss.Width(cell), 0)+1))
		}
	}
	r.b.WriteString("\n")
}

// Blank writes an empty line.
func (r *ReportBuilder) Blank() {
	r.b.WriteString("\n")
}

// WriteString appends arbitrary text (for custom formatting not covered by Row/Section).
func (r *ReportBuilder) WriteString(s string) {
	r.b.WriteString(s)
}

// String returns the accumulated content.
func (r *ReportBuilder) String() string {
	return r.b.String()
}
