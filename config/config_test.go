package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/andareed/siftly-plot/timewindow"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sfplot.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	return path
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
	if cfg.DelimiterRune() != ';' {
		t.Fatalf("delimiter mismatch: got %q", cfg.DelimiterRune())
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
delimiter: ","
time_column: Stamp
timezone: UTC
refresh_interval: 2500ms
panels: 3
window:
  full: false
  duration: 30
  unit: seconds
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.DelimiterRune() != ',' {
		t.Fatalf("delimiter mismatch: got %q", cfg.DelimiterRune())
	}
	if cfg.TimeColumn != "Stamp" {
		t.Fatalf("time column mismatch: got %q", cfg.TimeColumn)
	}
	if cfg.RefreshInterval != 2500*time.Millisecond {
		t.Fatalf("interval mismatch: got %v", cfg.RefreshInterval)
	}
	if cfg.Panels != 3 {
		t.Fatalf("panels mismatch: got %d", cfg.Panels)
	}
	if cfg.Window.Full || cfg.Window.Duration != 30 || cfg.WindowUnit() != timewindow.Seconds {
		t.Fatalf("window mismatch: got %+v", cfg.Window)
	}
	loc, err := cfg.Location()
	if err != nil || loc != time.UTC {
		t.Fatalf("location mismatch: got %v, %v", loc, err)
	}
}

func TestLoadPartialKeepsRemainingDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(writeConfig(t, "panels: 2\n"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Panels != 2 {
		t.Fatalf("panels mismatch: got %d", cfg.Panels)
	}
	if cfg.RefreshInterval != time.Second || cfg.Delimiter != ";" {
		t.Fatalf("expected remaining defaults, got %+v", cfg)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"delimiter": "delimiter: ';;'\n",
		"panels":    "panels: 6\n",
		"interval":  "refresh_interval: 0s\n",
		"unit":      "window:\n  unit: days\n",
		"duration":  "window:\n  duration: -1\n",
		"timezone":  "timezone: Mars/Olympus\n",
		"yaml":      "panels: [\n",
	}
	for name, content := range cases {
		if _, err := Load(writeConfig(t, content)); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil || !strings.Contains(err.Error(), "read config file") {
		t.Fatalf("expected read error, got %v", err)
	}
}
