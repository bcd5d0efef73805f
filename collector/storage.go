package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hwfetch/hwfetch/model"
	"github.com/hwfetch/hwfetch/util"
)

// StorageCollector enumerates block devices via lsblk, falling back to
// a /sys/block walk, and appends SMART health rows at deep verbosity.
type StorageCollector struct {
	SysBlockPath string
	runner       *Runner
	smart        *smartProbe
}

// NewStorageCollector returns a collector with the standard sysfs path.
func NewStorageCollector(runner *Runner) *StorageCollector {
	return &StorageCollector{
		SysBlockPath: "/sys/block",
		runner:       runner,
		smart:        &smartProbe{runner: runner},
	}
}

func (s *StorageCollector) Name() string { return model.CategoryStorage }

// lsblkBool tolerates the three encodings lsblk has used for ROTA over
// the years: bool, "0"/"1" strings, and bare numbers.
type lsblkBool struct {
	set bool
	val bool
}

func (b *lsblkBool) UnmarshalJSON(data []byte) error {
	s := strings.Trim(strings.TrimSpace(string(data)), `"`)
	switch s {
	case "true", "1":
		b.set, b.val = true, true
	case "false", "0":
		b.set, b.val = true, false
	}
	return nil
}

type lsblkDevice struct {
	Name     string        `json:"name"`
	Size     string        `json:"size"`
	Type     string        `json:"type"`
	Rota     lsblkBool     `json:"rota"`
	Model    string        `json:"model"`
	Children []lsblkDevice `json:"children"`
}

type lsblkOutput struct {
	BlockDevices []lsblkDevice `json:"blockdevices"`
}

func (s *StorageCollector) Collect(ctx context.Context, rep *model.Report, v model.Verbosity) error {
	cat := rep.Category(model.CategoryStorage)

	text, _, ok := fetchFirst(ctx, CommandSource{
		Runner: s.runner,
		Bin:    "lsblk",
		Args:   []string{"-J", "-o", "NAME,SIZE,TYPE,ROTA,MODEL"},
	})
	if ok {
		s.collectLsblk(cat, text, v)
	} else {
		s.collectSysBlock(cat)
	}

	if v >= model.VerbosityDeep {
		s.smart.appendHealth(ctx, cat)
	}
	return nil
}

func (s *StorageCollector) collectLsblk(cat *model.Category, text string, v model.Verbosity) {
	var out lsblkOutput
	if err := json.Unmarshal([]byte(text), &out); err != nil {
		s.collectSysBlock(cat)
		return
	}

	for _, dev := range out.BlockDevices {
		if dev.Type != "disk" {
			continue
		}
		cat.Add("/dev/"+dev.Name, formatDisk(dev.Size, diskKind(dev.Rota), dev.Model))
	}

	if v >= model.VerbosityExtended {
		for _, dev := range out.BlockDevices {
			for _, child := range dev.Children {
				if child.Type != "part" {
					continue
				}
				detail := fmt.Sprintf("%s %s", child.Name, child.Size)
				cat.Add("   └─ PARTITION", util.Truncate(detail, 42))
			}
		}
	}
}

// collectSysBlock walks /sys/block directly. Size files count 512-byte
// sectors.
func (s *StorageCollector) collectSysBlock(cat *model.Category) {
	entries, err := os.ReadDir(s.SysBlockPath)
	if err != nil {
		return
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if strings.HasPrefix(name, "loop") || strings.HasPrefix(name, "ram") {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		devDir := filepath.Join(s.SysBlockPath, name)
		raw, err := util.ReadString(filepath.Join(devDir, "size"))
		if err != nil {
			continue
		}
		sizeKB := util.ParseUint64(raw) / 2

		kind := "UNKNOWN"
		if rota, err := util.ReadString(filepath.Join(devDir, "queue", "rotational")); err == nil {
			switch rota {
			case "0":
				kind = "SSD"
			case "1":
				kind = "HDD"
			}
		}
		mdl, err := util.ReadString(filepath.Join(devDir, "device", "model"))
		if err != nil || mdl == "" {
			mdl = "Virtual"
		}
		cat.Add("/dev/"+name, formatDisk(blockSize(sizeKB), kind, mdl))
	}
}

func formatDisk(size, kind, mdl string) string {
	mdl = strings.TrimSpace(mdl)
	if mdl == "" {
		mdl = "Virtual"
	}
	return fmt.Sprintf("%s [%s] %s", size, kind, mdl)
}

func diskKind(rota lsblkBool) string {
	if !rota.set {
		return "UNKNOWN"
	}
	if rota.val {
		return "HDD"
	}
	return "SSD"
}

func blockSize(sizeKB uint64) string {
	if sizeKB > 1024*1024 {
		return fmt.Sprintf("%dG", sizeKB/(1024*1024))
	}
	if sizeKB > 1024 {
		return fmt.Sprintf("%dM", sizeKB/1024)
	}
	return fmt.Sprintf("%dK", sizeKB)
}
