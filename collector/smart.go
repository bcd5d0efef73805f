package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hwfetch/hwfetch/model"
)

// smartProbe queries disk health through smartctl's JSON interface.
// When smartctl is absent it contributes nothing.
type smartProbe struct {
	runner *Runner
}

// smartScanJSON is the relevant subset of `smartctl --scan --json`.
type smartScanJSON struct {
	Devices []struct {
		Name string `json:"name"`
		Type string `json:"type"`
	} `json:"devices"`
}

// smartHealthJSON is the relevant subset of `smartctl -H --json`.
type smartHealthJSON struct {
	ModelName   string `json:"model_name"`
	SmartStatus struct {
		Passed bool `json:"passed"`
	} `json:"smart_status"`
	Temperature struct {
		Current int `json:"current"`
	} `json:"temperature"`
	Smartctl struct {
		Messages []struct {
			String   string `json:"string"`
			Severity string `json:"severity"`
		} `json:"messages"`
	} `json:"smartctl"`
}

// appendHealth adds one "Status: PASSED/FAILED" row per scanned disk.
func (p *smartProbe) appendHealth(ctx context.Context, cat *model.Category) {
	if !p.runner.Available("smartctl") {
		return
	}

	out, err := p.runner.Run(ctx, "smartctl", "--scan", "--json")
	if err != nil && out == "" {
		return
	}
	devices, err := parseSmartScan([]byte(out))
	if err != nil {
		return
	}

	for _, dev := range devices {
		args := []string{"-H", "--json"}
		if dev.Type != "" {
			args = append(args, "-d", dev.Type)
		}
		args = append(args, dev.Name)

		// smartctl sets exit bits for conditions that still produce
		// valid JSON, so the output matters more than the exit code.
		out, err := p.runner.Run(ctx, "smartctl", args...)
		if out == "" && err != nil {
			continue
		}
		status, ok := parseSmartHealth([]byte(out))
		if !ok {
			continue
		}
		short := dev.Name[strings.LastIndex(dev.Name, "/")+1:]
		cat.Add(fmt.Sprintf("   └─ %s [SMART]", short), "Status: "+status)
	}
}

type smartDevice struct {
	Name string
	Type string
}

func parseSmartScan(data []byte) ([]smartDevice, error) {
	var scan smartScanJSON
	if err := json.Unmarshal(data, &scan); err != nil {
		return nil, err
	}
	devices := make([]smartDevice, 0, len(scan.Devices))
	for _, d := range scan.Devices {
		if d.Name == "" {
			continue
		}
		devices = append(devices, smartDevice{Name: d.Name, Type: d.Type})
	}
	return devices, nil
}

// parseSmartHealth returns "PASSED" or "FAILED", with the current drive
// temperature appended when smartctl reports one; ok is false when the
// output carries no usable health verdict.
func parseSmartHealth(data []byte) (string, bool) {
	var health smartHealthJSON
	if err := json.Unmarshal(data, &health); err != nil {
		return "", false
	}
	for _, msg := range health.Smartctl.Messages {
		if msg.Severity == "error" {
			return "", false
		}
	}
	status := "FAILED"
	if health.SmartStatus.Passed {
		status = "PASSED"
	}
	if health.Temperature.Current > 0 {
		status = fmt.Sprintf("%s, %d°C", status, health.Temperature.Current)
	}
	return status, true
}
