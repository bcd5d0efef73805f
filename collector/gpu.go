package collector

import (
	"context"
	"strings"

	"github.com/hwfetch/hwfetch/model"
)

// gpuClassPrefix is the PCI display controller base class (0x03) as it
// appears in sysfs class files.
const gpuClassPrefix = "0x03"

// GPUCollector identifies VGA/3D/display controllers from lspci, with
// a sysfs PCI-class fallback resolved through the pci.ids database.
type GPUCollector struct {
	SysPCIPath string
	runner     *Runner
	names      *pciNameDB
}

// NewGPUCollector returns a collector with the standard sysfs path.
func NewGPUCollector(runner *Runner, names *pciNameDB) *GPUCollector {
	return &GPUCollector{SysPCIPath: "/sys/bus/pci/devices", runner: runner, names: names}
}

func (g *GPUCollector) Name() string { return model.CategoryGPU }

func (g *GPUCollector) Collect(ctx context.Context, rep *model.Report, v model.Verbosity) error {
	cat := rep.Category(model.CategoryGPU)

	text, _, ok := fetchFirst(ctx, CommandSource{Runner: g.runner, Bin: "lspci"})
	if ok {
		for _, entry := range parseLspci(text) {
			if isGPUDescription(entry[1]) {
				cat.Add(entry[0], entry[1])
			}
		}
		return nil
	}

	for _, dev := range readSysPCI(g.SysPCIPath) {
		if !strings.HasPrefix(dev.ClassCode, gpuClassPrefix) {
			continue
		}
		cat.Add(dev.Slot, g.names.describe(dev.VendorID, dev.DeviceID))
	}
	return nil
}

func isGPUDescription(desc string) bool {
	lower := strings.ToLower(desc)
	for _, marker := range []string{"vga", "3d", "display", "graphics"} {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}
