package collector

import (
	"context"
	"fmt"
	"time"

	"github.com/shirou/gopsutil/v3/host"

	"github.com/hwfetch/hwfetch/model"
)

// Collector fills one hardware category of the report. Verbosity only
// gates how many fields are emitted, never their values.
type Collector interface {
	Name() string
	Collect(ctx context.Context, rep *model.Report, v model.Verbosity) error
}

// Registry runs all category collectors sequentially in fixed order.
type Registry struct {
	runner     *Runner
	collectors []Collector
}

// NewRegistry creates a registry with the default category collectors.
func NewRegistry(runner *Runner) *Registry {
	names := newPCINameDB()
	return &Registry{
		runner: runner,
		collectors: []Collector{
			NewCPUCollector(),
			NewRAMCollector(runner),
			NewBoardCollector(runner),
			NewStorageCollector(runner),
			NewGPUCollector(runner, names),
			NewPCICollector(runner, names),
		},
	}
}

// Add registers an additional collector.
func (r *Registry) Add(c Collector) {
	r.collectors = append(r.collectors, c)
}

// CollectAll builds the full report for the requested verbosity. A
// collector error never aborts the run; errors are returned for debug
// logging only and the affected fields stay at "N/A".
func (r *Registry) CollectAll(ctx context.Context, v model.Verbosity) (*model.Report, []error) {
	rep := &model.Report{Meta: collectMeta(time.Now())}

	var errs []error
	for _, c := range r.collectors {
		if err := c.Collect(ctx, rep, v); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", c.Name(), err))
		}
	}
	return rep, errs
}

// collectMeta fills host metadata for banners and export headers.
func collectMeta(now time.Time) model.Meta {
	meta := model.Meta{
		Hostname:      model.NotAvailable,
		OS:            model.NotAvailable,
		Platform:      model.NotAvailable,
		KernelVersion: model.NotAvailable,
		Architecture:  model.NotAvailable,
		Uptime:        model.NotAvailable,
		CollectedAt:   now.Format(time.RFC3339),
	}

	info, err := host.Info()
	if err != nil {
		return meta
	}
	meta.Hostname = info.Hostname
	meta.OS = info.OS
	meta.Platform = fmt.Sprintf("%s %s", info.Platform, info.PlatformVersion)
	meta.KernelVersion = info.KernelVersion
	meta.Architecture = info.KernelArch
	meta.Uptime = (time.Duration(info.Uptime) * time.Second).String()
	return meta
}
