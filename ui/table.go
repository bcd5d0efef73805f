// Package ui renders hardware reports as colored terminal tables and
// provides an optional interactive browser.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hwfetch/hwfetch/model"
)

const (
	keyColWidth   = 28
	valueColWidth = 48
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	failStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	naStyle     = lipgloss.NewStyle().Faint(true)
)

// RenderReport renders the banner and every category table.
func RenderReport(rep *model.Report) string {
	var sb strings.Builder

	rule := strings.Repeat("=", 80)
	sb.WriteString(headerStyle.Render(rule) + "\n")
	sb.WriteString(headerStyle.Render(center("HARDWARE COMPONENTS REPORT", 80)) + "\n")
	sb.WriteString(headerStyle.Render(center(
		fmt.Sprintf("%s | %s | %s", rep.Meta.Hostname, rep.Meta.Platform, rep.Meta.KernelVersion), 80)) + "\n")
	sb.WriteString(headerStyle.Render(rule) + "\n\n")

	for _, cat := range rep.Categories {
		sb.WriteString(RenderCategory(cat))
	}
	sb.WriteString(headerStyle.Render(rule) + "\n")
	return sb.String()
}

// RenderCategory renders one section header plus its field table.
func RenderCategory(cat *model.Category) string {
	var sb strings.Builder
	sb.WriteString(renderSectionHeader(cat.Name))
	if len(cat.Fields) == 0 {
		sb.WriteString(warnStyle.Render("No data available") + "\n\n")
		return sb.String()
	}
	sb.WriteString(renderTable(cat.Fields))
	return sb.String()
}

func renderSectionHeader(title string) string {
	border := strings.Repeat("#", 80)
	return borderStyle.Render(border) + "\n" +
		borderStyle.Render(center("### "+title+" ###", 80)) + "\n" +
		borderStyle.Render(border) + "\n\n"
}

// renderTable draws a two-column bordered table with fixed widths and
// truncated overlong cells.
func renderTable(fields []model.Field) string {
	heavy := "+" + strings.Repeat("=", keyColWidth) + "+" + strings.Repeat("=", valueColWidth) + "+"
	light := "+" + strings.Repeat("-", keyColWidth) + "+" + strings.Repeat("-", valueColWidth) + "+"

	var sb strings.Builder
	sb.WriteString(borderStyle.Render(heavy) + "\n")
	for i, f := range fields {
		sb.WriteString(renderRow(f))
		if i < len(fields)-1 {
			sb.WriteString(borderStyle.Render(light) + "\n")
		}
	}
	sb.WriteString(borderStyle.Render(heavy) + "\n\n")
	return sb.String()
}

func renderRow(f model.Field) string {
	key := pad(f.Name, keyColWidth-2)
	value := pad(f.Value, valueColWidth-2)
	if f.Value == model.NotAvailable {
		value = naStyle.Render(value)
	}
	return fmt.Sprintf("%s %s %s %s %s\n",
		borderStyle.Render("|"), key, borderStyle.Render("|"), value, borderStyle.Render("|"))
}

func pad(s string, width int) string {
	r := []rune(s)
	if len(r) > width {
		return string(r[:width-3]) + "..."
	}
	return s + strings.Repeat(" ", width-len(r))
}

func center(s string, width int) string {
	if len(s) >= width {
		return s
	}
	left := (width - len(s)) / 2
	return strings.Repeat(" ", left) + s
}
