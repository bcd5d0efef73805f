package collector

import "strings"

// dmiSection is one decoded SMBIOS structure from dmidecode output:
// the title line that follows a "Handle ..." header plus its indented
// "Key: Value" properties.
type dmiSection struct {
	Title string
	Props map[string]string
}

// parseDMI parses dmidecode text output. The format varies slightly
// across distributions, so any line that does not fit is skipped
// rather than treated as an error.
func parseDMI(text string) []dmiSection {
	var sections []dmiSection
	var cur *dmiSection
	pendingTitle := false

	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(line, "Handle ") {
			sections = append(sections, dmiSection{Props: make(map[string]string)})
			cur = &sections[len(sections)-1]
			pendingTitle = true
			continue
		}
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			cur = nil
			continue
		}

		indented := strings.HasPrefix(line, "\t") || strings.HasPrefix(line, " ")
		if !indented {
			if cur != nil && pendingTitle {
				cur.Title = trimmed
				pendingTitle = false
			}
			// comment/preamble lines (# dmidecode 3.x, SMBIOS ...) fall here
			continue
		}
		if cur == nil {
			continue
		}
		// Only single-tab properties; deeper indents are flag lists.
		if strings.HasPrefix(line, "\t\t") {
			continue
		}
		idx := strings.Index(trimmed, ":")
		if idx <= 0 {
			continue
		}
		key := strings.TrimSpace(trimmed[:idx])
		if _, seen := cur.Props[key]; !seen {
			cur.Props[key] = strings.TrimSpace(trimmed[idx+1:])
		}
	}
	return sections
}

// firstDMIProp returns the first occurrence of key across all sections,
// mirroring a `grep -m 1` over the raw output.
func firstDMIProp(sections []dmiSection, key string) (string, bool) {
	for _, s := range sections {
		if v, ok := s.Props[key]; ok {
			return v, true
		}
	}
	return "", false
}

// countDMISections counts sections with the given title, e.g. the
// number of "Memory Device" structures.
func countDMISections(sections []dmiSection, title string) int {
	n := 0
	for _, s := range sections {
		if s.Title == title {
			n++
		}
	}
	return n
}
