package collector

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

func TestCompatCheckerProbeOrder(t *testing.T) {
	c := NewCompatChecker(NewRunner(0))
	status := c.Check()

	want := []string{"procfs", "sysfs", "dmidecode", "lsblk", "lspci", "smartctl"}
	if len(status.Probes) != len(want) {
		t.Fatalf("got %d probes, want %d", len(status.Probes), len(want))
	}
	for i, name := range want {
		if status.Probes[i].Name != name {
			t.Errorf("probe %d = %q, want %q", i, status.Probes[i].Name, name)
		}
	}
}

func TestCompatCheckerMissingEverything(t *testing.T) {
	r := NewRunner(0)
	r.lookPath = func(string) (string, error) { return "", exec.ErrNotFound }

	c := NewCompatChecker(r)
	c.procCPUInfo = filepath.Join(t.TempDir(), "absent")
	c.sysCPUDir = filepath.Join(t.TempDir(), "absent")

	status := c.Check()
	for _, probe := range status.Probes {
		if probe.Available {
			t.Errorf("probe %q available on an empty system", probe.Name)
		}
	}
	if status.Supported() {
		t.Error("Supported() = true without procfs")
	}
}

func TestCompatCheckerDetectsProcfs(t *testing.T) {
	dir := t.TempDir()
	cpuinfo := filepath.Join(dir, "cpuinfo")
	if err := os.WriteFile(cpuinfo, []byte("processor\t: 0\n"), 0644); err != nil {
		t.Fatal(err)
	}

	r := NewRunner(0)
	r.lookPath = func(string) (string, error) { return "", exec.ErrNotFound }
	c := NewCompatChecker(r)
	c.procCPUInfo = cpuinfo
	c.sysCPUDir = dir

	status := c.Check()
	if !status.Supported() {
		t.Error("Supported() = false with readable procfs")
	}
	sysfs, _ := status.Get("sysfs")
	if !sysfs.Available {
		t.Error("sysfs probe not available with existing directory")
	}
	tool, _ := status.Get("dmidecode")
	if tool.Available {
		t.Error("dmidecode probe available with failing PATH lookup")
	}
}
