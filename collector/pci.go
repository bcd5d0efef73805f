package collector

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/hwfetch/hwfetch/model"
	"github.com/hwfetch/hwfetch/util"
)

// lspciLine matches "00:02.0 VGA compatible controller: ..." including
// the domain-prefixed form some systems print.
var lspciLine = regexp.MustCompile(`^([0-9a-f:.]+)\s+(.*)`)

// PCICollector lists every PCI device. The category only exists at
// extended verbosity and above.
type PCICollector struct {
	SysPCIPath string
	runner     *Runner
	names      *pciNameDB
}

// NewPCICollector returns a collector with the standard sysfs path.
func NewPCICollector(runner *Runner, names *pciNameDB) *PCICollector {
	return &PCICollector{SysPCIPath: "/sys/bus/pci/devices", runner: runner, names: names}
}

func (p *PCICollector) Name() string { return model.CategoryPCI }

func (p *PCICollector) Collect(ctx context.Context, rep *model.Report, v model.Verbosity) error {
	if v < model.VerbosityExtended {
		return nil
	}
	cat := rep.Category(model.CategoryPCI)

	text, _, ok := fetchFirst(ctx, CommandSource{Runner: p.runner, Bin: "lspci"})
	if ok {
		for _, entry := range parseLspci(text) {
			cat.Add(entry[0], entry[1])
		}
		return nil
	}

	for _, dev := range readSysPCI(p.SysPCIPath) {
		cat.Add(dev.Slot, p.names.describe(dev.VendorID, dev.DeviceID))
	}
	return nil
}

// parseLspci splits lspci output into [slot, description] pairs,
// skipping anything that does not look like a device line.
func parseLspci(text string) [][2]string {
	var entries [][2]string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		m := lspciLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		entries = append(entries, [2]string{m[1], m[2]})
	}
	return entries
}

// pciEntry is one device from a /sys/bus/pci/devices walk.
type pciEntry struct {
	Slot      string
	VendorID  string
	DeviceID  string
	ClassCode string // e.g. "0x030000"
}

func readSysPCI(root string) []pciEntry {
	dirs, err := os.ReadDir(root)
	if err != nil {
		return nil
	}

	names := make([]string, 0, len(dirs))
	for _, d := range dirs {
		names = append(names, d.Name())
	}
	sort.Strings(names)

	var entries []pciEntry
	for _, name := range names {
		devDir := filepath.Join(root, name)
		vendor, err := util.ReadString(filepath.Join(devDir, "vendor"))
		if err != nil {
			continue
		}
		device, err := util.ReadString(filepath.Join(devDir, "device"))
		if err != nil {
			continue
		}
		class, _ := util.ReadString(filepath.Join(devDir, "class"))
		entries = append(entries, pciEntry{
			Slot:      name,
			VendorID:  vendor,
			DeviceID:  device,
			ClassCode: class,
		})
	}
	return entries
}
