// Package diagram renders velocity pressure profiles as terminal charts and
// image files.
package diagram

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"
)

// ProfileData holds a velocity pressure profile for charting.
type ProfileData struct {
	Heights []float64 // evaluation heights (m), ascending
	Kz      []float64 // exposure coefficient per height
	Values  []float64 // velocity pressure qz per height (N/m²)
}

// DrawASCIIProfile renders the qz profile as a terminal chart, pressure on
// the vertical axis over the height sequence.
func DrawASCIIProfile(data ProfileData) string {
	var sb strings.Builder

	sb.WriteString("\n")
	sb.WriteString("  VELOCITY PRESSURE PROFILE qz\n")
	sb.WriteString("  ────────────────────────────\n\n")
	sb.WriteString(asciigraph.Plot(
		data.Values,
		asciigraph.Height(15),
		asciigraph.Width(60),
		asciigraph.Caption("height steps (m), left to right"),
	))
	sb.WriteString("\n\n")
	sb.WriteString(fmt.Sprintf(
		"  z = %.2f m .. %.2f m, qz = %.1f N/m² .. %.1f N/m²\n",
		data.Heights[0], data.Heights[len(data.Heights)-1],
		data.Values[0], data.Values[len(data.Values)-1],
	))

	return sb.String()
}

// DrawASCIIExposure renders the Kz profile as a terminal chart.
func DrawASCIIExposure(data ProfileData) string {
	var sb strings.Builder

	sb.WriteString("\n")
	sb.WriteString("  EXPOSURE COEFFICIENT PROFILE Kz\n")
	sb.WriteString("  ───────────────────────────────\n\n")
	sb.WriteString(asciigraph.Plot(
		data.Kz,
		asciigraph.Height(15),
		asciigraph.Width(60),
		asciigraph.Caption("height steps (m), left to right"),
	))
	sb.WriteString("\n")

	return sb.String()
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len(title)
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-2, title))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-2, line))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}
