package collector

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/hwfetch/hwfetch/model"
)

const dmiBaseboardFixture = `# dmidecode 3.3
Getting SMBIOS data from sysfs.
SMBIOS 3.2.0 present.

Handle 0x0002, DMI type 2, 15 bytes
Base Board Information
	Manufacturer: ASUSTeK COMPUTER INC.
	Product Name: PRIME B450M-A
	Serial Number: BSN456
`

const dmiSystemFixture = `Handle 0x0001, DMI type 1, 27 bytes
System Information
	Manufacturer: ASUS
	Product Name: System Product Name
	Serial Number: SN123
	SKU Number: SKU-1
`

const dmiBIOSFixture = `Handle 0x0000, DMI type 0, 26 bytes
BIOS Information
	Vendor: American Megatrends Inc.
	Version: 2006
	Release Date: 11/13/2019
	ROM Size: 16 MB
	Characteristics:
		PCI is supported
`

const dmiChassisFixture = `Handle 0x0003, DMI type 3, 22 bytes
Chassis Information
	Type: Desktop
	Serial Number: CSN789
`

// fakeDMIDecode builds a stand-in dmidecode binary that prints a canned
// fixture per -t kind, resolved through the runner's injected lookup.
func fakeDMIDecode(t *testing.T, fixtures map[string]string) *Runner {
	t.Helper()
	dir := t.TempDir()
	for kind, text := range fixtures {
		if err := os.WriteFile(filepath.Join(dir, kind+".txt"), []byte(text), 0644); err != nil {
			t.Fatal(err)
		}
	}
	script := filepath.Join(dir, "dmidecode")
	body := "#!/bin/sh\ncat \"" + dir + "/$2.txt\"\n"
	if err := os.WriteFile(script, []byte(body), 0755); err != nil {
		t.Fatal(err)
	}

	r := NewRunner(0)
	r.lookPath = func(name string) (string, error) {
		if name == "dmidecode" {
			return script, nil
		}
		return "", exec.ErrNotFound
	}
	return r
}

// fakeDMIDir builds a /sys/devices/virtual/dmi/id tree matching the
// dmidecode fixtures above.
func fakeDMIDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"board_vendor":   "ASUSTeK COMPUTER INC.",
		"board_name":     "PRIME B450M-A",
		"board_serial":   "BSN456",
		"sys_vendor":     "ASUS",
		"product_name":   "System Product Name",
		"product_serial": "SN123",
		"product_sku":    "SKU-1",
		"bios_vendor":    "American Megatrends Inc.",
		"bios_version":   "2006",
		"bios_date":      "11/13/2019",
		"chassis_type":   "3",
		"chassis_serial": "CSN789",
	}
	for name, val := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(val+"\n"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func boardFixtures() map[string]string {
	return map[string]string{
		"baseboard": dmiBaseboardFixture,
		"system":    dmiSystemFixture,
		"bios":      dmiBIOSFixture,
		"chassis":   dmiChassisFixture,
	}
}

func collectBoard(t *testing.T, r *Runner, dmiDir string, v model.Verbosity) *model.Category {
	t.Helper()
	b := NewBoardCollector(r)
	b.DMIPath = dmiDir
	rep := &model.Report{}
	if err := b.Collect(context.Background(), rep, v); err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	cat, ok := rep.Lookup(model.CategoryMotherboard)
	if !ok {
		t.Fatal("motherboard category missing from report")
	}
	return cat
}

func TestBoardSysfsBasic(t *testing.T) {
	cat := collectBoard(t, missingToolRunner(), fakeDMIDir(t), model.VerbosityBasic)

	want := map[string]string{
		"Motherboard Manufacturer": "ASUSTeK COMPUTER INC.",
		"Motherboard Model":        "PRIME B450M-A",
		"System Manufacturer":      "ASUS",
	}
	for name, value := range want {
		if got, _ := cat.Get(name); got != value {
			t.Errorf("%s = %q, want %q", name, got, value)
		}
	}
	if len(cat.Fields) != len(want) {
		t.Errorf("basic verbosity has %d fields, want %d", len(cat.Fields), len(want))
	}
}

func TestBoardSysfsDeep(t *testing.T) {
	cat := collectBoard(t, missingToolRunner(), fakeDMIDir(t), model.VerbosityDeep)

	want := map[string]string{
		"BIOS Vendor":        "American Megatrends Inc.",
		"BIOS Version":       "2006",
		"BIOS Release Date":  "11/13/2019",
		"Chassis Type":       "Desktop",
		"System Product":     "System Product Name",
		"System Serial":      "SN123",
		"Motherboard Serial": "BSN456",
		"Chassis Serial":     "CSN789",
		"System SKU":         "SKU-1",
	}
	for name, value := range want {
		if got, _ := cat.Get(name); got != value {
			t.Errorf("%s = %q, want %q", name, got, value)
		}
	}
	// ROM size has no sysfs counterpart
	if got, _ := cat.Get("BIOS ROM Size"); got != model.NotAvailable {
		t.Errorf("BIOS ROM Size = %q, want %q", got, model.NotAvailable)
	}
}

func TestBoardSysfsMissingFiles(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "board_vendor"), []byte("ASUS\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cat := collectBoard(t, missingToolRunner(), dir, model.VerbosityBasic)

	if got, _ := cat.Get("Motherboard Manufacturer"); got != "ASUS" {
		t.Errorf("Motherboard Manufacturer = %q", got)
	}
	if got, _ := cat.Get("Motherboard Model"); got != model.NotAvailable {
		t.Errorf("Motherboard Model = %q, want %q", got, model.NotAvailable)
	}
}

func TestBoardSysfsVerbositySuperset(t *testing.T) {
	dmiDir := fakeDMIDir(t)
	levels := []model.Verbosity{model.VerbosityBasic, model.VerbosityExtended, model.VerbosityDeep}

	var prev []string
	for _, v := range levels {
		names := collectBoard(t, missingToolRunner(), dmiDir, v).FieldNames()
		set := make(map[string]bool, len(names))
		for _, n := range names {
			set[n] = true
		}
		for _, n := range prev {
			if !set[n] {
				t.Errorf("field %q present at verbosity %d but missing at %d", n, v-1, v)
			}
		}
		if len(names) < len(prev) {
			t.Errorf("verbosity %d has fewer fields (%d) than %d (%d)", v, len(names), v-1, len(prev))
		}
		prev = names
	}
}

func TestBoardFallbackEquivalence(t *testing.T) {
	fromDMIDecode := collectBoard(t, fakeDMIDecode(t, boardFixtures()), t.TempDir(), model.VerbosityDeep)
	fromSysfs := collectBoard(t, missingToolRunner(), fakeDMIDir(t), model.VerbosityDeep)

	if !reflect.DeepEqual(fromDMIDecode.FieldNames(), fromSysfs.FieldNames()) {
		t.Errorf("field sets differ:\ndmidecode: %v\nsysfs:     %v",
			fromDMIDecode.FieldNames(), fromSysfs.FieldNames())
	}

	for _, f := range fromDMIDecode.Fields {
		if f.Name == "BIOS ROM Size" {
			continue
		}
		if got, _ := fromSysfs.Get(f.Name); got != f.Value {
			t.Errorf("%s: dmidecode %q, sysfs %q", f.Name, f.Value, got)
		}
	}
}

func TestChassisTypeName(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"3", "Desktop"},
		{"9", "Laptop"},
		{"10", "Notebook"},
		{"99", "99"},
		{"N/A", "N/A"},
	}
	for _, tt := range tests {
		if got := chassisTypeName(tt.code); got != tt.want {
			t.Errorf("chassisTypeName(%q) = %q, want %q", tt.code, got, tt.want)
		}
	}
}
