package collector

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/hwfetch/hwfetch/model"
	"github.com/hwfetch/hwfetch/util"
)

// importantFlags are the instruction-set extensions worth calling out
// at deep verbosity.
var importantFlags = []string{"vmx", "svm", "avx", "avx2", "sse4_2", "aes", "rdrand", "tsx"}

// CPUCollector reads /proc/cpuinfo and the cpufreq sysfs tree.
type CPUCollector struct {
	CPUInfoPath string
	CPUFreqDir  string // .../cpu0/cpufreq
}

// NewCPUCollector returns a collector with the standard kernel paths.
func NewCPUCollector() *CPUCollector {
	return &CPUCollector{
		CPUInfoPath: "/proc/cpuinfo",
		CPUFreqDir:  "/sys/devices/system/cpu/cpu0/cpufreq",
	}
}

func (c *CPUCollector) Name() string { return model.CategoryCPU }

func (c *CPUCollector) Collect(ctx context.Context, rep *model.Report, v model.Verbosity) error {
	cat := rep.Category(model.CategoryCPU)

	text, _, ok := fetchFirst(ctx, KernelFileSource{Path: c.CPUInfoPath})
	if !ok {
		cat.Add("Physical CPU Count", model.NotAvailable)
		cat.Add("CPU Model", model.NotAvailable)
		cat.Add("CPU Vendor", model.NotAvailable)
		cat.Add("Total CPU Cores", strconv.Itoa(runtime.NumCPU()))
		return fmt.Errorf("read %s: not available", c.CPUInfoPath)
	}

	lines := strings.Split(text, "\n")
	info := util.ParseColonPairs(util.FirstBlock(lines))

	cat.Add("Physical CPU Count", strconv.Itoa(util.CountPrefix(lines, "processor")))
	cat.Add("CPU Model", info["model name"])
	cat.Add("CPU Vendor", info["vendor_id"])
	cat.Add("Total CPU Cores", strconv.Itoa(runtime.NumCPU()))

	if v >= model.VerbosityExtended {
		cat.Add("CPU Stepping", info["stepping"])
		cat.Add("CPU Family", info["cpu family"])
		cat.Add("CPU Model Number", info["model"])
		cat.Add("L3 Cache Size", info["cache size"])
		cat.Add("Cores Per Socket", info["cpu cores"])
		cat.Add("Threads (Siblings)", info["siblings"])
		cat.Add("Current Frequency (MHz)", info["cpu MHz"])
		cat.Add("Max Frequency (MHz)", c.freqMHz("cpuinfo_max_freq"))
		cat.Add("Min Frequency (MHz)", c.freqMHz("cpuinfo_min_freq"))
		cat.Add("VMX Support (Intel)", yesNo(hasFlag(info["flags"], "vmx")))
		cat.Add("SVM Support (AMD)", yesNo(hasFlag(info["flags"], "svm")))
	}

	if v >= model.VerbosityDeep {
		if flags := info["flags"]; flags != "" {
			list := strings.Fields(flags)
			cat.Add("CPU Extensions (Count)", strconv.Itoa(len(list)))
			cat.Add("All CPU Flags", util.Truncate(flags, 100))
			var found []string
			for _, f := range importantFlags {
				if hasFlag(flags, f) {
					found = append(found, f)
				}
			}
			if len(found) == 0 {
				cat.Add("Important Extensions", "None")
			} else {
				cat.Add("Important Extensions", strings.Join(found, ", "))
			}
		}
		cat.Add("Microcode", info["microcode"])
		cat.Add("APIC ID", info["apicid"])
		cat.Add("Physical ID", info["physical id"])
		cat.Add("Core ID", info["core id"])
		cat.Add("FPU Present", info["fpu"])
		if bugs := info["bugs"]; bugs != "" {
			cat.Add("Known CPU Bugs", util.Truncate(bugs, 80))
		}
	}
	return nil
}

// freqMHz reads a cpufreq file (values in kHz) and formats it as MHz.
func (c *CPUCollector) freqMHz(file string) string {
	raw, err := util.ReadString(filepath.Join(c.CPUFreqDir, file))
	if err != nil {
		return model.NotAvailable
	}
	khz := util.ParseUint64(raw)
	if khz == 0 {
		return model.NotAvailable
	}
	return strconv.FormatUint(khz/1000, 10)
}

func hasFlag(flags, name string) bool {
	for _, f := range strings.Fields(flags) {
		if f == name {
			return true
		}
	}
	return false
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
