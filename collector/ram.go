package collector

import (
	"context"
	"strconv"
	"strings"

	"github.com/hwfetch/hwfetch/model"
	"github.com/hwfetch/hwfetch/util"
)

// RAMCollector reads /proc/meminfo and, when dmidecode is available,
// the SMBIOS memory-device structures for module-level detail.
type RAMCollector struct {
	MemInfoPath string
	runner      *Runner
}

// NewRAMCollector returns a collector with the standard kernel path.
func NewRAMCollector(runner *Runner) *RAMCollector {
	return &RAMCollector{MemInfoPath: "/proc/meminfo", runner: runner}
}

func (r *RAMCollector) Name() string { return model.CategoryRAM }

func (r *RAMCollector) Collect(ctx context.Context, rep *model.Report, v model.Verbosity) error {
	cat := rep.Category(model.CategoryRAM)

	var meminfo map[string]string
	if text, _, ok := fetchFirst(ctx, KernelFileSource{Path: r.MemInfoPath}); ok {
		meminfo = util.ParseColonPairs(strings.Split(text, "\n"))
	}

	cat.Add("Total RAM", memValue(meminfo, "MemTotal", util.KBToGB))

	// Module-level detail only exists in SMBIOS; there is no kernel
	// fallback, so these fields are simply absent without dmidecode.
	text, _, ok := fetchFirst(ctx, CommandSource{Runner: r.runner, Bin: "dmidecode", Args: []string{"-t", "memory"}})
	if ok {
		sections := parseDMI(text)
		cat.Add("Physical RAM Modules", strconv.Itoa(countDMISections(sections, "Memory Device")))

		if v >= model.VerbosityExtended {
			cat.Add("RAM Speed", dmiProp(sections, "Speed"))
			cat.Add("RAM Type", dmiProp(sections, "Type"))
			cat.Add("Form Factor", dmiProp(sections, "Form Factor"))
			cat.Add("Data Width", dmiProp(sections, "Data Width"))
			cat.Add("Voltage", dmiProp(sections, "Configured Voltage", "Voltage"))
			cat.Add("Error Correction", dmiProp(sections, "Error Correction Type"))
		}
		if v >= model.VerbosityDeep {
			cat.Add("Manufacturer", dmiProp(sections, "Manufacturer"))
			cat.Add("Module Serial", dmiProp(sections, "Serial Number"))
			cat.Add("Part Number", dmiProp(sections, "Part Number"))
			cat.Add("Configured Speed", dmiProp(sections, "Configured Memory Speed", "Configured Clock Speed"))
		}
	}

	cat.Add("Available RAM", memValue(meminfo, "MemAvailable", util.KBToGB))
	cat.Add("Cached Memory", memValue(meminfo, "Cached", util.KBToMB))
	return nil
}

func memValue(meminfo map[string]string, key string, format func(uint64) string) string {
	if meminfo == nil {
		return model.NotAvailable
	}
	raw, ok := meminfo[key]
	if !ok {
		return model.NotAvailable
	}
	return format(util.ParseUint64(raw))
}

// dmiProp tries the given keys in order and returns the first present
// value; key spellings drift between dmidecode versions.
func dmiProp(sections []dmiSection, keys ...string) string {
	for _, key := range keys {
		if v, ok := firstDMIProp(sections, key); ok {
			return v
		}
	}
	return model.NotAvailable
}
