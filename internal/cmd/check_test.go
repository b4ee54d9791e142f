package cmd

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/redjoy12/Work-Logger/internal/output"
	"github.com/redjoy12/Work-Logger/internal/update"
)

func TestCheckReport_ManualHint(t *testing.T) {
	report := checkReport{
		Decision: update.Decision{
			Available:     true,
			LatestVersion: "1.3.0",
		},
		ManualURL: "https://github.com/redjoy12/Work-Logger/releases/latest",
	}

	got := report.String()
	if !strings.Contains(got, "Update available: 1.3.0") {
		t.Errorf("missing decision line: %q", got)
	}
	if !strings.Contains(got, "Download manually: https://github.com/redjoy12/Work-Logger/releases/latest") {
		t.Errorf("missing manual-download hint: %q", got)
	}
}

func TestCheckReport_NoHintWithAsset(t *testing.T) {
	report := checkReport{
		Decision: update.Decision{
			Available:     true,
			LatestVersion: "1.3.0",
			ChosenAsset:   &update.Asset{Name: "app-linux.tar.gz"},
		},
		ManualURL: "https://example.com/releases",
	}

	if strings.Contains(report.String(), "Download manually") {
		t.Error("manual hint rendered despite a chosen asset")
	}
}

func TestCheckReport_TextThroughWriter(t *testing.T) {
	var buf bytes.Buffer
	w := output.NewWriter(&buf, output.FormatText)

	report := checkReport{
		Decision:  update.Decision{Available: true, LatestVersion: "2.0.0"},
		ManualURL: "https://example.com/releases",
	}
	if err := w.Write(report); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	got := buf.String()
	if !strings.Contains(got, "Download manually: https://example.com/releases") {
		t.Errorf("writer output missing hint: %q", got)
	}
}

func TestCheckReport_JSONIncludesManualURL(t *testing.T) {
	var buf bytes.Buffer
	w := output.NewWriter(&buf, output.FormatJSON)

	report := checkReport{
		Decision:  update.Decision{Available: true, LatestVersion: "2.0.0"},
		ManualURL: "https://example.com/releases",
	}
	if err := w.Write(report); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded["manual_url"] != "https://example.com/releases" {
		t.Errorf("manual_url = %v", decoded["manual_url"])
	}
	if decoded["latest_version"] != "2.0.0" {
		t.Errorf("latest_version = %v (embedded decision not inlined)", decoded["latest_version"])
	}
}
