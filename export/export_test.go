package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/hwfetch/hwfetch/model"
)

func sampleReport() *model.Report {
	rep := &model.Report{
		Meta: model.Meta{
			Hostname:      "testhost",
			Platform:      "debian 12",
			KernelVersion: "6.1.0",
			Architecture:  "x86_64",
			CollectedAt:   "2026-08-29T10:00:00Z",
		},
	}
	cpu := rep.Category(model.CategoryCPU)
	cpu.Add("Physical CPU Count", "2")
	cpu.Add("CPU Model", "Intel(R) Core(TM) i7-7500U")
	cpu.Add("CPU Vendor", "GenuineIntel")

	ram := rep.Category(model.CategoryRAM)
	ram.Add("Total RAM", "15 GB")
	ram.Add("Available RAM", "N/A")

	// deliberately empty category: must be skipped by CSV
	rep.Category(model.CategoryGPU)
	return rep
}

func TestFilename(t *testing.T) {
	now := time.Date(2026, 8, 29, 15, 30, 45, 0, time.UTC)
	if got := Filename(FormatJSON, now); got != "hardware_info_20260829_153045.json" {
		t.Errorf("Filename() = %q", got)
	}
}

func TestValidFormat(t *testing.T) {
	for _, format := range []string{FormatJSON, FormatCSV, FormatTXT} {
		if !ValidFormat(format) {
			t.Errorf("ValidFormat(%q) = false", format)
		}
	}
	for _, format := range []string{"", "xml", "JSON"} {
		if ValidFormat(format) {
			t.Errorf("ValidFormat(%q) = true", format)
		}
	}
}

func TestValidateDir(t *testing.T) {
	if err := ValidateDir(t.TempDir()); err != nil {
		t.Errorf("ValidateDir(tempdir) error = %v", err)
	}
	if err := ValidateDir("/no/such/directory"); err == nil {
		t.Error("ValidateDir(missing) error = nil")
	}
	file := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := ValidateDir(file); err == nil {
		t.Error("ValidateDir(regular file) error = nil")
	}
}

// A JSON export parsed back must yield the same category→field→value
// mapping that went in.
func TestJSONRoundTrip(t *testing.T) {
	rep := sampleReport()
	dir := t.TempDir()

	path, err := Write(rep, FormatJSON, dir, time.Now())
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	var doc struct {
		Meta       model.Meta                   `json:"meta"`
		Categories map[string]map[string]string `json:"categories"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if doc.Meta.Hostname != "testhost" {
		t.Errorf("meta.hostname = %q", doc.Meta.Hostname)
	}
	for _, cat := range rep.Categories {
		parsed, ok := doc.Categories[cat.Name]
		if !ok {
			t.Errorf("category %q missing from JSON", cat.Name)
			continue
		}
		if len(parsed) != len(cat.Fields) {
			t.Errorf("category %q: %d fields in JSON, want %d", cat.Name, len(parsed), len(cat.Fields))
		}
		for _, f := range cat.Fields {
			if parsed[f.Name] != f.Value {
				t.Errorf("category %q field %q = %q, want %q", cat.Name, f.Name, parsed[f.Name], f.Value)
			}
		}
	}
}

func TestJSONCategoryOrder(t *testing.T) {
	data, err := marshalJSON(sampleReport())
	if err != nil {
		t.Fatalf("marshalJSON() error = %v", err)
	}
	cpuIdx := strings.Index(string(data), model.CategoryCPU)
	ramIdx := strings.Index(string(data), model.CategoryRAM)
	if cpuIdx < 0 || ramIdx < 0 || cpuIdx > ramIdx {
		t.Errorf("category order lost: cpu at %d, ram at %d", cpuIdx, ramIdx)
	}
}

func TestCSVLayout(t *testing.T) {
	data, err := marshalCSV(sampleReport())
	if err != nil {
		t.Fatalf("marshalCSV() error = %v", err)
	}
	text := strings.TrimRight(string(data), "\n")
	lines := strings.Split(text, "\n")

	want := []string{
		model.CategoryCPU,
		"Physical CPU Count,2",
		"CPU Model,Intel(R) Core(TM) i7-7500U",
		"CPU Vendor,GenuineIntel",
		"",
		model.CategoryRAM,
		"Total RAM,15 GB",
		"Available RAM,N/A",
	}
	if len(lines) != len(want) {
		t.Fatalf("CSV has %d lines, want %d:\n%s", len(lines), len(want), text)
	}
	for i, line := range want {
		if lines[i] != line {
			t.Errorf("line %d = %q, want %q", i, lines[i], line)
		}
	}
}

func TestCSVSkipsEmptyCategories(t *testing.T) {
	data, err := marshalCSV(sampleReport())
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), model.CategoryGPU) {
		t.Error("CSV contains a header for an empty category")
	}
}

func TestCSVBlankLineSeparation(t *testing.T) {
	data, err := marshalCSV(sampleReport())
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "\n\n\n") {
		t.Error("CSV contains more than one consecutive blank line")
	}
	if !strings.Contains(string(data), "\n\n") {
		t.Error("CSV categories not separated by a blank line")
	}
}

func TestTXTLayout(t *testing.T) {
	data, err := marshalTXT(sampleReport())
	if err != nil {
		t.Fatalf("marshalTXT() error = %v", err)
	}
	text := string(data)

	if !strings.HasPrefix(text, "HARDWARE REPORT - 2026-08-29T10:00:00Z") {
		t.Errorf("TXT banner missing: %q", strings.SplitN(text, "\n", 2)[0])
	}
	for _, want := range []string{"Host: testhost", model.CategoryCPU, "CPU Vendor: GenuineIntel", "Total RAM: 15 GB"} {
		if !strings.Contains(text, want) {
			t.Errorf("TXT missing %q", want)
		}
	}
}

func TestWriteUnknownFormat(t *testing.T) {
	if _, err := Write(sampleReport(), "xml", t.TempDir(), time.Now()); err == nil {
		t.Error("Write(xml) error = nil")
	}
}
