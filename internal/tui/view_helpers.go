package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/movisimple/models"
)

const uiDivider = "──────────────────────────────────────────────────────"

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		for _, line := range strings.Split(data, "\n") {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString("  ")
	b.WriteString(helpStyle.Render("ctrl+c: quit"))

	return b.String()
}

func formatPath(path []int) string {
	parts := make([]string, len(path))
	for i, station := range path {
		parts[i] = strconv.Itoa(station)
	}
	return strings.Join(parts, " → ")
}

func formatSeconds(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + " s"
}

func formatCost(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// routeSummary is the text copied to the clipboard.
func routeSummary(r models.Route) string {
	return fmt.Sprintf("MoviSimple route %s, time %s, cost %s",
		formatPath(r.Path), formatSeconds(r.TotalTime), formatCost(r.Cost))
}
