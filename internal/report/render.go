package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"drivecheck/internal/health"
)

var (
	colorRed    = lipgloss.Color("#FF5555")
	colorYellow = lipgloss.Color("#F1FA8C")
	colorGreen  = lipgloss.Color("#50FA7B")
	colorGray   = lipgloss.Color("#6272A4")
	colorWhite  = lipgloss.Color("#F8F8F2")

	goodStyle    = lipgloss.NewStyle().Foreground(colorGreen)
	cautionStyle = lipgloss.NewStyle().Foreground(colorYellow).Bold(true)
	badStyle     = lipgloss.NewStyle().Foreground(colorRed).Bold(true)
	unknownStyle = lipgloss.NewStyle().Foreground(colorGray)
	modelStyle   = lipgloss.NewStyle().Foreground(colorWhite).Bold(true)
	dimStyle     = lipgloss.NewStyle().Foreground(colorGray)
)

func severityStyle(s health.Severity) lipgloss.Style {
	switch s {
	case health.SeverityGood:
		return goodStyle
	case health.SeverityCaution:
		return cautionStyle
	case health.SeverityBad:
		return badStyle
	default:
		return unknownStyle
	}
}

// Render writes the styled per-device summary to w, ringing the terminal
// bell once unless muted. The caller mutes repeat renders so the bell only
// sounds on the first summary of a session.
func Render(w io.Writer, reports []health.Report, mute bool) {
	for _, r := range reports {
		fmt.Fprintln(w, renderLine(r))
	}
	fmt.Fprintln(w, dimStyle.Render(summaryLine(reports)))
	if !mute {
		fmt.Fprint(w, "\a")
	}
}

func renderLine(r health.Report) string {
	st := severityStyle(r.Verdict.Severity)

	model := r.Device.Model
	if model == "" {
		model = "(unknown model)"
	}

	parts := []string{
		st.Render("●"),
		st.Render(fmt.Sprintf("%-7s", r.Verdict.Severity)),
		modelStyle.Render(model),
	}
	if len(r.Device.Mounts) > 0 {
		parts = append(parts, dimStyle.Render(strings.Join(r.Device.Mounts, " ")))
	}
	parts = append(parts,
		dimStyle.Render("["+r.Device.ID+", "+r.Class.String()+"]"),
		r.Verdict.Detail,
	)
	if r.Verdict.TemperatureC != nil {
		parts = append(parts, dimStyle.Render(fmt.Sprintf("%d°C", *r.Verdict.TemperatureC)))
	}
	return strings.Join(parts, "  ")
}

func summaryLine(reports []health.Report) string {
	counts := map[health.Severity]int{}
	for _, r := range reports {
		counts[r.Verdict.Severity]++
	}
	return fmt.Sprintf("%d devices: %d good, %d caution, %d bad, %d unknown",
		len(reports),
		counts[health.SeverityGood],
		counts[health.SeverityCaution],
		counts[health.SeverityBad],
		counts[health.SeverityUnknown])
}
