package tui

import (
	"strings"

	"fishing-finder/internal/domain/fish"

	"github.com/charmbracelet/lipgloss"
)

var tableHeaders = []string{"Name", "Lure", "Spot", "Circle", "Event"}

// RenderTable dibuja la vista de tabla (catálogo completo o resultados).
// Sin filas devuelve "".
func RenderTable(items []fish.Fish, styles Styles) string {
	if len(items) == 0 {
		return ""
	}

	rows := make([][]string, 0, len(items))
	for _, f := range items {
		rows = append(rows, []string{f.Name, f.LureLabel(), f.SpotsLabel(), f.Circle, f.EventLabel()})
	}

	widths := make([]int, len(tableHeaders))
	for i, h := range tableHeaders {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := lipgloss.Width(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	// padding 0,1 de Header/Cell
	for i := range widths {
		widths[i] += 2
	}

	sep := styles.Separator.Render("|")

	var sb strings.Builder
	for i, h := range tableHeaders {
		sb.WriteString(styles.Header.Width(widths[i]).Render(h))
		if i < len(tableHeaders)-1 {
			sb.WriteString(sep)
		}
	}
	sb.WriteString("\n")

	total := len(widths) - 1
	for _, w := range widths {
		total += w
	}
	sb.WriteString(styles.Separator.Render(strings.Repeat("-", total)))
	sb.WriteString("\n")

	for _, row := range rows {
		for i, cell := range row {
			sb.WriteString(styles.Cell.Width(widths[i]).Render(cell))
			if i < len(row)-1 {
				sb.WriteString(sep)
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// RenderCard dibuja un resultado como tarjeta.
func RenderCard(f fish.Fish, styles Styles) string {
	lines := []string{
		styles.CardTitle.Render(f.Name),
		styles.Label.Render("Lure:") + " " + f.LureLabel(),
		styles.Label.Render("Spot:") + " " + f.SpotsLabel(),
	}
	if f.Circle != "" {
		lines = append(lines, styles.Label.Render("Circle:")+" "+f.Circle)
	}
	if f.EventOnly {
		lines = append(lines, styles.EventOnly.Render("Event Only"))
	}
	lines = append(lines, styles.Muted.Render(f.ImagePath()))
	return styles.Card.Render(strings.Join(lines, "\n"))
}
