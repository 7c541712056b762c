package cli

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/loicseguin/velolog/internal/domain"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	sepStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	urlStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// commentWidth caps the comment column; longer comments are elided.
const commentWidth = 30

// formatSpeed renders a speed value, using "nan" for the zero-duration
// sentinel like every other surface of the tool.
func formatSpeed(speed float64) string {
	if math.IsNaN(speed) {
		return "nan"
	}
	return fmt.Sprintf("%.1f", speed)
}

// renderRidesTable lays the rides out in the fixed-width table of the
// original tool, with a styled header.
func renderRidesTable(rides []domain.Ride) string {
	var b strings.Builder

	rowFormat := "%4s  %-16s  %9s  %9s  %7s  %-*s  %s\n"
	b.WriteString(headerStyle.Render(fmt.Sprintf(rowFormat,
		"id", tr("Date"), tr("Distance"), tr("Duration"), tr("Speed"),
		commentWidth, tr("Comment"), tr("URL"))))
	b.WriteString(headerStyle.Render(fmt.Sprintf(rowFormat,
		"", "yyyy-mm-dd hh:mm", "(km)", "(h)", "(km/h)", commentWidth, "", "")))
	b.WriteString(sepStyle.Render(strings.Repeat("=", 4+2+16+2+9+2+9+2+7+2+commentWidth+2+3)))
	b.WriteString("\n")

	for _, ride := range rides {
		comment := ride.Comment
		if len(comment) > commentWidth {
			comment = comment[:commentWidth-3] + "..."
		}
		hasURL := " "
		if ride.URL != "" {
			hasURL = urlStyle.Render("*")
		}
		b.WriteString(fmt.Sprintf(rowFormat,
			fmt.Sprintf("%d", ride.ID),
			ride.Timestamp.Format("2006-01-02 15:04"),
			fmt.Sprintf("%.1f", ride.Distance),
			fmt.Sprintf("%.1f", ride.Duration),
			formatSpeed(ride.Speed()),
			commentWidth, comment,
			hasURL))
	}
	return b.String()
}

// noRidesMessage renders the localized empty-scope message, naming the
// requested years.
func noRidesMessage(filter domain.YearFilter) string {
	scope := "all"
	if years := filter.List(); years != nil {
		parts := make([]string, len(years))
		for i, y := range years {
			parts[i] = fmt.Sprintf("%d", y)
		}
		scope = strings.Join(parts, ", ")
	}
	return tr("No rides for year(s): ") + scope
}
