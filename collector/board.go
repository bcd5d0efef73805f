package collector

import (
	"context"
	"path/filepath"

	"github.com/hwfetch/hwfetch/model"
	"github.com/hwfetch/hwfetch/util"
)

// chassisTypeNames maps SMBIOS chassis type codes (as found in
// /sys/devices/virtual/dmi/id/chassis_type) to the names dmidecode
// would print.
var chassisTypeNames = map[string]string{
	"1":  "Other",
	"2":  "Unknown",
	"3":  "Desktop",
	"6":  "Mini Tower",
	"7":  "Tower",
	"8":  "Portable",
	"9":  "Laptop",
	"10": "Notebook",
	"13": "All In One",
	"17": "Main Server Chassis",
	"23": "Rack Mount Chassis",
	"31": "Convertible",
	"32": "Detachable",
}

// BoardCollector gathers motherboard, system, BIOS and chassis data
// from dmidecode, falling back to the DMI id files under sysfs.
type BoardCollector struct {
	DMIPath string
	runner  *Runner
}

// NewBoardCollector returns a collector with the standard sysfs path.
func NewBoardCollector(runner *Runner) *BoardCollector {
	return &BoardCollector{DMIPath: "/sys/devices/virtual/dmi/id", runner: runner}
}

func (b *BoardCollector) Name() string { return model.CategoryMotherboard }

func (b *BoardCollector) Collect(ctx context.Context, rep *model.Report, v model.Verbosity) error {
	cat := rep.Category(model.CategoryMotherboard)

	if b.runner.Available("dmidecode") {
		b.collectDMIDecode(ctx, cat, v)
		return nil
	}
	b.collectSysfs(cat, v)
	return nil
}

func (b *BoardCollector) collectDMIDecode(ctx context.Context, cat *model.Category, v model.Verbosity) {
	decode := func(kind string) []dmiSection {
		text, _, ok := fetchFirst(ctx, CommandSource{Runner: b.runner, Bin: "dmidecode", Args: []string{"-t", kind}})
		if !ok {
			return nil
		}
		return parseDMI(text)
	}

	baseboard := decode("baseboard")
	system := decode("system")

	cat.Add("Motherboard Manufacturer", dmiProp(baseboard, "Manufacturer"))
	cat.Add("Motherboard Model", dmiProp(baseboard, "Product Name"))
	cat.Add("System Manufacturer", dmiProp(system, "Manufacturer"))

	if v >= model.VerbosityExtended {
		bios := decode("bios")
		chassis := decode("chassis")
		cat.Add("BIOS Vendor", dmiProp(bios, "Vendor"))
		cat.Add("BIOS Version", dmiProp(bios, "Version"))
		cat.Add("BIOS Release Date", dmiProp(bios, "Release Date"))
		cat.Add("Chassis Type", dmiProp(chassis, "Type"))
		cat.Add("System Product", dmiProp(system, "Product Name"))

		if v >= model.VerbosityDeep {
			cat.Add("System Serial", dmiProp(system, "Serial Number"))
			cat.Add("Motherboard Serial", dmiProp(baseboard, "Serial Number"))
			cat.Add("Chassis Serial", dmiProp(chassis, "Serial Number"))
			cat.Add("System SKU", dmiProp(system, "SKU Number"))
			cat.Add("BIOS ROM Size", dmiProp(bios, "ROM Size"))
		}
	}
}

// collectSysfs reads the DMI id files directly. Serial files are
// root-only on most systems; unreadable ones come back as "N/A".
func (b *BoardCollector) collectSysfs(cat *model.Category, v model.Verbosity) {
	read := func(name string) string {
		val, err := util.ReadString(filepath.Join(b.DMIPath, name))
		if err != nil || val == "" {
			return model.NotAvailable
		}
		return val
	}

	cat.Add("Motherboard Manufacturer", read("board_vendor"))
	cat.Add("Motherboard Model", read("board_name"))
	cat.Add("System Manufacturer", read("sys_vendor"))

	if v >= model.VerbosityExtended {
		cat.Add("BIOS Vendor", read("bios_vendor"))
		cat.Add("BIOS Version", read("bios_version"))
		cat.Add("BIOS Release Date", read("bios_date"))
		cat.Add("Chassis Type", chassisTypeName(read("chassis_type")))
		cat.Add("System Product", read("product_name"))

		if v >= model.VerbosityDeep {
			cat.Add("System Serial", read("product_serial"))
			cat.Add("Motherboard Serial", read("board_serial"))
			cat.Add("Chassis Serial", read("chassis_serial"))
			cat.Add("System SKU", read("product_sku"))
			// ROM size has no sysfs counterpart
			cat.Add("BIOS ROM Size", model.NotAvailable)
		}
	}
}

func chassisTypeName(code string) string {
	if name, ok := chassisTypeNames[code]; ok {
		return name
	}
	return code
}
