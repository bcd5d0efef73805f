package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/hwfetch/hwfetch/collector"
	"github.com/hwfetch/hwfetch/config"
	"github.com/hwfetch/hwfetch/export"
	"github.com/hwfetch/hwfetch/ui"
)

// run dispatches to the selected mode with a fully validated config.
func run(cmd *cobra.Command, cfg config.Config) error {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	})))

	runner := collector.NewRunner(cfg.Timeout)

	if cfg.DryRun {
		status := collector.NewCompatChecker(runner).Check()
		fmt.Fprint(cmd.OutOrStdout(), ui.RenderCompat(status))
		if !status.Supported() {
			return errors.New("system not compatible: /proc/cpuinfo not found")
		}
		return nil
	}

	// Fail on a bad export directory before doing any probing work.
	if cfg.ExportFormat != "" {
		if err := export.ValidateDir(cfg.ExportDir); err != nil {
			return err
		}
	}

	rep, errs := collector.NewRegistry(runner).CollectAll(cmd.Context(), cfg.Verbosity)
	for _, err := range errs {
		slog.Debug("collector degraded", "error", err)
	}

	switch {
	case cfg.Interactive:
		return ui.Browse(rep)
	case cfg.ExportFormat != "":
		path, err := export.Write(rep, cfg.ExportFormat, cfg.ExportDir, time.Now())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "[+] Data exported to: %s\n", path)
		return nil
	default:
		fmt.Fprint(cmd.OutOrStdout(), ui.RenderReport(rep))
		return nil
	}
}
