package cmd

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ElizabethCF01/system-monitor-cli/config"
	"github.com/ElizabethCF01/system-monitor-cli/engine"
	"github.com/ElizabethCF01/system-monitor-cli/ui"
)

// Version is set at build time via ldflags.
var Version = "0.1.0"

func printUsage() {
	fmt.Fprintf(os.Stderr, `sysmon v%s — live terminal dashboard for CPU, memory, and processes

Usage:
  sysmon [OPTIONS] [INTERVAL]

Modes:
  (default)         Interactive TUI (fullscreen, q to quit)
  -watch            CLI output mode — prints to terminal with auto-refresh
  -json             Single JSON snapshot to stdout, then exit
  -version          Print version and exit

Options:
  -interval N       Refresh interval in seconds (default: 1)
  -limit N          Max processes in the table (default: 12)
  -count N          Number of iterations for -watch mode (0 = infinite)

Positional:
  INTERVAL          First positional arg sets interval: sysmon 5 = sysmon -interval 5
`, Version)
}

// Run parses flags and starts the application.
func Run() error {
	cfg := config.Load()

	var intervalSec int
	var jsonMode, watchMode, showVersion bool
	var watchCount int

	flag.IntVar(&intervalSec, "interval", cfg.IntervalMS/1000, "Refresh interval in seconds")
	flag.IntVar(&cfg.ProcessLimit, "limit", cfg.ProcessLimit, "Max processes in the table")
	flag.BoolVar(&jsonMode, "json", false, "Output a single JSON snapshot and exit")
	flag.BoolVar(&watchMode, "watch", false, "CLI output mode (no TUI, prints to terminal)")
	flag.IntVar(&watchCount, "count", 0, "Number of iterations for -watch (0=infinite)")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")

	flag.Usage = printUsage
	flag.Parse()

	if showVersion {
		fmt.Printf("sysmon v%s\n", Version)
		return nil
	}

	// Support positional arg for interval: `sysmon 5` = `sysmon -interval 5`
	if args := flag.Args(); len(args) > 0 {
		if n, err := strconv.Atoi(args[0]); err == nil && n > 0 {
			intervalSec = n
		}
	}
	if intervalSec > 0 {
		cfg.IntervalMS = intervalSec * 1000
	}
	interval := cfg.Interval()

	eng := engine.NewEngine(cfg.ProcessLimit)

	if jsonMode {
		return runJSON(eng)
	}
	if watchMode {
		return runWatch(eng, interval, watchCount, cfg.BarWidth)
	}

	// Probe the provider once before taking over the terminal, so a
	// completely unavailable provider exits non-zero with its cause.
	if _, err := eng.Build(); err != nil {
		return fmt.Errorf("metrics provider unavailable: %w", err)
	}

	r := engine.NewRefresher(eng, interval)
	r.Start()
	defer r.Stop()

	m := ui.NewModel(r, interval, cfg.BarWidth)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// runJSON outputs a single snapshot as JSON and exits.
func runJSON(eng *engine.Engine) error {
	snap, err := eng.Build()
	if err != nil {
		return err
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(snap)
}

// runWatch prints the rendered dashboard on each interval.
func runWatch(eng *engine.Engine, interval time.Duration, count, barWidth int) error {
	for i := 0; count == 0 || i < count; i++ {
		if i > 0 {
			time.Sleep(interval)
		}
		snap, err := eng.Build()
		if err != nil {
			fmt.Fprintf(os.Stderr, "refresh failed: %v\n", err)
			continue
		}
		fmt.Println(ui.RenderDashboard(snap, 100, barWidth))
		fmt.Println()
	}
	return nil
}
