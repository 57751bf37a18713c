package handlers

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/imamik/cfdistro/internal/reconcile"
)

// Colors matching the palette of the other command outputs.
var (
	planColorGreen  = lipgloss.Color("#22c55e")
	planColorRed    = lipgloss.Color("#ef4444")
	planColorBlue   = lipgloss.Color("#3b82f6")
	planColorYellow = lipgloss.Color("#eab308")
	planColorDim    = lipgloss.Color("#6b7280")
	planColorWhite  = lipgloss.Color("#f9fafb")
)

var (
	planTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(planColorWhite)

	planSectionStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(planColorBlue)

	planDimStyle = lipgloss.NewStyle().
			Foreground(planColorDim)

	planAddStyle = lipgloss.NewStyle().
			Foreground(planColorGreen)

	planRemoveStyle = lipgloss.NewStyle().
			Foreground(planColorRed)

	planChangeStyle = lipgloss.NewStyle().
			Foreground(planColorYellow)
)

// renderPlan produces a lipgloss-styled plan summary.
func renderPlan(p *reconcile.Plan) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(planTitleStyle.Render(fmt.Sprintf("  cfdistro plan: %s", p.Name)))
	b.WriteString("\n")
	b.WriteString(planDimStyle.Render("  " + strings.Repeat("═", 30)))
	b.WriteString("\n\n")

	b.WriteString("  Action:        ")
	b.WriteString(renderAction(p.Outcome))
	b.WriteString("\n")
	if p.Existing != nil {
		b.WriteString(fmt.Sprintf("  Distribution:  %s", p.Existing.ID))
		if p.Existing.DomainName != "" {
			b.WriteString(planDimStyle.Render(fmt.Sprintf(" (%s)", p.Existing.DomainName)))
		}
		b.WriteString("\n")
	}

	if p.Outcome == reconcile.Unchanged || p.Diff == "" {
		return b.String()
	}

	b.WriteString("\n")
	b.WriteString(planSectionStyle.Render("  Changes"))
	b.WriteString(planDimStyle.Render("  (- live, + desired)"))
	b.WriteString("\n")
	b.WriteString(planDimStyle.Render("  " + strings.Repeat("─", 35)))
	b.WriteString("\n")
	for _, line := range strings.Split(strings.TrimRight(p.Diff, "\n"), "\n") {
		b.WriteString("  ")
		b.WriteString(renderDiffLine(line))
		b.WriteString("\n")
	}

	return b.String()
}

func renderAction(o reconcile.Outcome) string {
	switch o {
	case reconcile.Created:
		return planAddStyle.Render("create")
	case reconcile.Updated:
		return planChangeStyle.Render("update")
	default:
		return planDimStyle.Render("no changes")
	}
}

// renderDiffLine colors a go-cmp diff line by its leading marker.
func renderDiffLine(line string) string {
	trimmed := strings.TrimLeft(line, " \t")
	switch {
	case strings.HasPrefix(trimmed, "+"):
		return planAddStyle.Render(line)
	case strings.HasPrefix(trimmed, "-"):
		return planRemoveStyle.Render(line)
	default:
		return planDimStyle.Render(line)
	}
}
