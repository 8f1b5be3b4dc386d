package viz

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/dynarray/internal/script"
)

const spareSlot = "·"

// Slots renders the backing store as a strip of cells. Occupied slots show
// their element, spare slots a dot; the slot at highlight (if any) uses the
// accent color.
func Slots(snap script.Snapshot, highlight int, theme Theme) string {
	occupied := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	spare := lipgloss.NewStyle().Foreground(theme.Muted)
	accent := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	sep := spare.Render("│")

	cells := make([]string, 0, snap.Cap)
	for i := 0; i < snap.Cap; i++ {
		switch {
		case i < len(snap.Items) && i == highlight:
			cells = append(cells, accent.Render(snap.Items[i]))
		case i < len(snap.Items):
			cells = append(cells, occupied.Render(snap.Items[i]))
		default:
			cells = append(cells, spare.Render(spareSlot))
		}
	}

	strip := spare.Render("[") + " " + strings.Join(cells, " "+sep+" ") + " " + spare.Render("]")
	if snap.Cap == 0 {
		strip = spare.Render("[ ]")
	}
	label := lipgloss.NewStyle().Foreground(theme.Muted).
		Render(fmt.Sprintf("count %d / cap %d", snap.Count, snap.Cap))
	return strip + "  " + label
}

// StepLine summarizes one step: the op, its outcome and the resulting shape.
func StepLine(step script.Step, theme Theme) string {
	seq := lipgloss.NewStyle().Foreground(theme.Muted).Render(fmt.Sprintf("#%-3d", step.Seq))
	op := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(step.Line)

	if !step.OK() {
		msg := lipgloss.NewStyle().Foreground(theme.Error).Render("✗ " + step.Err.Error())
		return fmt.Sprintf("%s %s  %s", seq, op, msg)
	}

	outcome := lipgloss.NewStyle().Foreground(theme.Success).Render("ok")
	if step.Result != "" {
		outcome += " " + lipgloss.NewStyle().Foreground(theme.Accent).Render("→ "+step.Result)
	}
	shape := fmt.Sprintf("count=%d cap=%d", step.After.Count, step.After.Cap)
	if step.Reallocated() {
		shape += lipgloss.NewStyle().Foreground(theme.Warning).
			Render(fmt.Sprintf(" (realloc %d→%d)", step.Before.Cap, step.After.Cap))
	}
	return fmt.Sprintf("%s %s  %s  %s", seq, op, outcome, lipgloss.NewStyle().Foreground(theme.Muted).Render(shape))
}

// Metrics renders metric values sorted by name.
func Metrics(values map[string]float64, theme Theme) string {
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	label := lipgloss.NewStyle().Foreground(theme.Muted)
	value := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)

	lines := make([]string, 0, len(names))
	for _, name := range names {
		lines = append(lines, fmt.Sprintf("%s %s", label.Render(fmt.Sprintf("%-18s", name)), value.Render(formatValue(values[name]))))
	}
	return strings.Join(lines, "\n")
}

// Header renders a section title.
func Header(title string, theme Theme) string {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.Secondary).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(theme.Muted).
		Render(title)
}

func formatValue(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.3f", v)
}
