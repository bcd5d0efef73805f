package collector

import (
	"os"

	"github.com/hwfetch/hwfetch/model"
)

// CompatChecker probes which data sources this system offers without
// collecting anything. Binaries are only resolved on PATH and kernel
// paths only stat'ed; no probing command is ever executed.
type CompatChecker struct {
	runner *Runner

	// overridable for tests
	procCPUInfo string
	sysCPUDir   string
}

// NewCompatChecker returns a checker using the given runner for PATH
// lookups.
func NewCompatChecker(runner *Runner) *CompatChecker {
	return &CompatChecker{
		runner:      runner,
		procCPUInfo: "/proc/cpuinfo",
		sysCPUDir:   "/sys/devices/system/cpu",
	}
}

// Check probes every dependency in display order.
func (c *CompatChecker) Check() model.CompatStatus {
	var status model.CompatStatus
	status.Probes = append(status.Probes,
		c.probePath("procfs", c.procCPUInfo),
		c.probePath("sysfs", c.sysCPUDir),
		c.probeTool("dmidecode"),
		c.probeTool("lsblk"),
		c.probeTool("lspci"),
		c.probeTool("smartctl"),
	)
	return status
}

func (c *CompatChecker) probePath(name, path string) model.CompatProbe {
	if _, err := os.Stat(path); err != nil {
		return model.CompatProbe{Name: name, Detail: err.Error()}
	}
	return model.CompatProbe{Name: name, Available: true, Detail: path}
}

func (c *CompatChecker) probeTool(name string) model.CompatProbe {
	path, err := c.runner.Path(name)
	if err != nil {
		return model.CompatProbe{Name: name, Detail: "not in PATH"}
	}
	return model.CompatProbe{Name: name, Available: true, Detail: path}
}
