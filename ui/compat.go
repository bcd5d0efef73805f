package ui

import (
	"fmt"
	"strings"

	"github.com/hwfetch/hwfetch/model"
)

// RenderCompat renders the dry-run compatibility summary.
func RenderCompat(status model.CompatStatus) string {
	var sb strings.Builder
	sb.WriteString(renderSectionHeader("SYSTEM COMPATIBILITY CHECK"))

	for _, probe := range status.Probes {
		verdict := failStyle.Render("✗ MISSING")
		if probe.Available {
			verdict = okStyle.Render("✓ OK")
		}
		fmt.Fprintf(&sb, "%-20s : %s\n", probe.Name, verdict)
	}
	sb.WriteString("\n")

	if !status.Supported() {
		sb.WriteString(failStyle.Render("ERROR: /proc/cpuinfo not found. System not compatible!") + "\n")
		return sb.String()
	}
	sb.WriteString(okStyle.Render("[+] System is ABLE TO RUN - Required components detected!") + "\n")
	return sb.String()
}
