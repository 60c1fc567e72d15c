package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/siftly-plot/config"
	"github.com/andareed/siftly-plot/dataset"
	"github.com/andareed/siftly-plot/logging"
)

// Version is set at build time with -ldflags "-X main.Version=...".
var Version = "dev"

var logFile = flag.String("debug", "", "Write Debug Logs to file")

func main() {
	versionFlag := flag.Bool("version", false, "print version and exit")
	configPath := flag.String("config", "", "YAML settings file")
	timeColumn := flag.String("time-column", "", "timestamp column name (default: first name containing \"time\", else the second column)")
	interval := flag.Duration("interval", 0, "auto-update interval (default: refresh_interval from config, 1s)")

	flag.Parse()

	// --- EARLY EXIT ---
	if *versionFlag {
		fmt.Println("Version:", Version)
		os.Exit(0)
	}

	// Anything below here should NOT run if --version was provided.
	cleanup, err := logging.SetupLogging(*logFile)
	if err != nil {
		log.Fatalf("Failed to setup logging %v", err)
	}
	defer cleanup()

	logging.Infof("siftly-plot %s: started", Version)

	args := flag.Args()
	if len(args) > 1 {
		fmt.Println("Usage: sfplot [--debug debug.log] [--config sfplot.yaml] [--time-column name] [--interval 1s] [file.csv]")
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
	if *timeColumn != "" {
		cfg.TimeColumn = *timeColumn
	}
	if *interval > 0 {
		cfg.RefreshInterval = *interval
	}
	loc, err := cfg.Location()
	if err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}

	opts := dataset.Options{
		Delimiter:  cfg.DelimiterRune(),
		TimeColumn: cfg.TimeColumn,
		Location:   loc,
	}

	inputPath := ""
	if len(args) == 1 {
		inputPath = args[0]
	}

	m := newModel(cfg, opts, inputPath)
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		logging.Errorf("Tea program error: %v", err)
		fmt.Println("Error:", err)
	}
}
