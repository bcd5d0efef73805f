package collector

import (
	"context"
	"os"

	"github.com/hwfetch/hwfetch/util"
)

// DataSource yields the raw text a category collector parses. Each
// category tries its sources in fixed priority order: the external
// command first, then the kernel interface.
type DataSource interface {
	Name() string
	Available() bool
	Fetch(ctx context.Context) (string, error)
}

// CommandSource runs an external binary through a Runner.
type CommandSource struct {
	Runner *Runner
	Bin    string
	Args   []string
}

func (s CommandSource) Name() string { return s.Bin }

func (s CommandSource) Available() bool { return s.Runner.Available(s.Bin) }

func (s CommandSource) Fetch(ctx context.Context) (string, error) {
	return s.Runner.Run(ctx, s.Bin, s.Args...)
}

// KernelFileSource reads a fixed path under /proc or /sys.
type KernelFileSource struct {
	Path string
}

func (s KernelFileSource) Name() string { return s.Path }

func (s KernelFileSource) Available() bool {
	_, err := os.Stat(s.Path)
	return err == nil
}

func (s KernelFileSource) Fetch(ctx context.Context) (string, error) {
	return util.ReadString(s.Path)
}

// fetchFirst tries sources in order and returns the text of the first
// one that is available and fetches without error. The second return is
// the winning source name; ok is false when every source failed.
func fetchFirst(ctx context.Context, sources ...DataSource) (text, source string, ok bool) {
	for _, s := range sources {
		if !s.Available() {
			continue
		}
		out, err := s.Fetch(ctx)
		if err != nil || out == "" {
			continue
		}
		return out, s.Name(), true
	}
	return "", "", false
}
