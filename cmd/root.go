// Package cmd wires the CLI: flag parsing, config resolution, and
// run-mode dispatch.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hwfetch/hwfetch/config"
	"github.com/hwfetch/hwfetch/model"
)

const longHelp = `hwfetch gathers CPU, RAM, motherboard, storage, GPU and PCI information
on Linux. It prefers the richer output of dmidecode, lsblk, lspci and
smartctl, and falls back to /proc and /sys kernel interfaces when a
tool is unavailable, so it keeps working on minimal systems.

Verbosity levels:
  --v     basic hardware overview (default)
  --vv    extended details, adds the PCI device listing
  --vvv   deep analysis including SMART health

Dry-run mode (--dry-run=true) only checks which tools and kernel
interfaces are available; it collects nothing and writes no files.

Examples:
  hwfetch --dry-run=true
  hwfetch --vvv --dry-run=false
  hwfetch --vv --dry-run=false --export-format=json --export-directory=/tmp
  hwfetch --dry-run=false --interactive`

// Execute builds and runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:           "hwfetch",
		Short:         "Linux hardware inventory with command/kernel hybrid probing",
		Long:          longHelp,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, v)
			if err != nil {
				return err
			}
			// Past this point errors are runtime, not usage.
			cmd.SilenceUsage = true
			return run(cmd, cfg)
		},
	}

	fl := cmd.Flags()
	fl.String("dry-run", "", "true = compatibility check only, false = full run (required)")
	fl.Bool("v", false, "verbosity level 1: basic overview")
	fl.Bool("vv", false, "verbosity level 2: extended details")
	fl.Bool("vvv", false, "verbosity level 3: deep analysis")
	fl.String("export-format", "", "export format: json, csv, or txt")
	fl.String("export-directory", ".", "directory for export files")
	fl.Bool("interactive", false, "browse the report in a full-screen UI")
	fl.Duration("timeout", config.Default().Timeout, "per-command timeout")
	fl.String("log-level", config.Default().LogLevel, "log level: debug, info, warn, error")
	cmd.MarkFlagRequired("dry-run")

	v.BindPFlag("export_format", fl.Lookup("export-format"))
	v.BindPFlag("export_directory", fl.Lookup("export-directory"))
	v.BindPFlag("timeout", fl.Lookup("timeout"))
	v.BindPFlag("log_level", fl.Lookup("log-level"))

	return cmd
}

// resolveConfig merges flags over the optional config file and
// validates the result. Every error here is a usage error.
func resolveConfig(cmd *cobra.Command, v *viper.Viper) (config.Config, error) {
	loadConfigFile(v)
	cfg := config.FromViper(v)

	dryRun, _ := cmd.Flags().GetString("dry-run")
	switch dryRun {
	case "true":
		cfg.DryRun = true
	case "false":
		cfg.DryRun = false
	default:
		return cfg, fmt.Errorf("--dry-run must be \"true\" or \"false\", got %q", dryRun)
	}

	verbosity, err := resolveVerbosity(cmd)
	if err != nil {
		return cfg, err
	}
	cfg.Verbosity = verbosity

	cfg.Interactive, _ = cmd.Flags().GetBool("interactive")

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func resolveVerbosity(cmd *cobra.Command) (model.Verbosity, error) {
	levels := []struct {
		flag  string
		level model.Verbosity
	}{
		{"v", model.VerbosityBasic},
		{"vv", model.VerbosityExtended},
		{"vvv", model.VerbosityDeep},
	}

	result := model.VerbosityBasic
	count := 0
	for _, l := range levels {
		if set, _ := cmd.Flags().GetBool(l.flag); set {
			result = l.level
			count++
		}
	}
	if count > 1 {
		return 0, fmt.Errorf("--v, --vv and --vvv are mutually exclusive")
	}
	return result, nil
}

// loadConfigFile reads the optional ~/.config/hwfetch/config.yaml.
// A missing file is not an error; a malformed one is surfaced as a
// warning through stderr later via slog, so just ignore it here too.
func loadConfigFile(v *viper.Viper) {
	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(filepath.Join(home, ".config", "hwfetch"))
	_ = v.ReadInConfig()
}
