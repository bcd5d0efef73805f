// Package export serializes a hardware report to JSON, CSV, or TXT
// files with timestamped names.
package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hwfetch/hwfetch/model"
)

// Formats supported by Write.
const (
	FormatJSON = "json"
	FormatCSV  = "csv"
	FormatTXT  = "txt"
)

// ValidFormat reports whether the format name is supported.
func ValidFormat(format string) bool {
	switch format {
	case FormatJSON, FormatCSV, FormatTXT:
		return true
	}
	return false
}

// Filename builds the timestamped export file name, e.g.
// "hardware_info_20260829_153045.json".
func Filename(format string, now time.Time) string {
	return fmt.Sprintf("hardware_info_%s.%s", now.Format("20060102_150405"), format)
}

// ValidateDir checks the export directory before any collection work
// starts. An invalid directory is a fatal configuration error.
func ValidateDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("export directory %q: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("export directory %q is not a directory", dir)
	}
	return nil
}

// Write serializes the report into dir and returns the written path.
func Write(rep *model.Report, format, dir string, now time.Time) (string, error) {
	var (
		data []byte
		err  error
	)
	switch format {
	case FormatJSON:
		data, err = marshalJSON(rep)
	case FormatCSV:
		data, err = marshalCSV(rep)
	case FormatTXT:
		data, err = marshalTXT(rep)
	default:
		return "", fmt.Errorf("unknown export format %q", format)
	}
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, Filename(format, now))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write export: %w", err)
	}
	return path, nil
}

// orderedCategories marshals category objects in report order; a plain
// map would shuffle them.
type orderedCategories []*model.Category

func (o orderedCategories) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, cat := range o {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(cat.Name)
		if err != nil {
			return nil, err
		}
		fields, err := cat.MarshalJSON()
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(fields)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func marshalJSON(rep *model.Report) ([]byte, error) {
	doc := struct {
		Meta       model.Meta        `json:"meta"`
		Categories orderedCategories `json:"categories"`
	}{
		Meta:       rep.Meta,
		Categories: orderedCategories(rep.Categories),
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// marshalCSV writes one header row per category followed by its
// field,value rows. Categories are separated by exactly one blank line
// and empty categories are skipped entirely.
func marshalCSV(rep *model.Report) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	first := true
	for _, cat := range rep.Categories {
		if len(cat.Fields) == 0 {
			continue
		}
		if !first {
			if err := w.Write([]string{}); err != nil {
				return nil, err
			}
		}
		first = false

		if err := w.Write([]string{cat.Name}); err != nil {
			return nil, err
		}
		for _, f := range cat.Fields {
			if err := w.Write([]string{f.Name, f.Value}); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func marshalTXT(rep *model.Report) ([]byte, error) {
	rule := strings.Repeat("=", 80)

	var sb strings.Builder
	fmt.Fprintf(&sb, "HARDWARE REPORT - %s\n", rep.Meta.CollectedAt)
	fmt.Fprintf(&sb, "Host: %s | OS: %s | Kernel: %s | Arch: %s\n",
		rep.Meta.Hostname, rep.Meta.Platform, rep.Meta.KernelVersion, rep.Meta.Architecture)
	sb.WriteString(rule + "\n")

	for _, cat := range rep.Categories {
		sb.WriteString("\n" + rule + "\n")
		sb.WriteString(cat.Name + "\n")
		sb.WriteString(rule + "\n\n")
		for _, f := range cat.Fields {
			fmt.Fprintf(&sb, "%s: %s\n", f.Name, f.Value)
		}
	}
	return []byte(sb.String()), nil
}
