package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"os/exec"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"drivecheck/internal/config"
	"drivecheck/internal/devices"
	"drivecheck/internal/health"
	"drivecheck/internal/report"
	"drivecheck/internal/smart"
)

const version = "1.0.0"

func main() {
	jsonOut := flag.Bool("json", false, "Print verdict records as JSON instead of the styled summary")
	mute := flag.Bool("mute", false, "Suppress the terminal bell")
	logDir := flag.String("log-dir", "", "Directory for the dated run log (overrides env)")
	notifyURL := flag.String("notify", "", "Shoutrrr notification URL (overrides env)")
	interval := flag.Int("interval", -1, "Re-check interval in seconds, 0 for single run (overrides env)")
	showVersion := flag.Bool("version", false, "Show version")
	flag.Parse()

	if *showVersion {
		fmt.Printf("drivecheck v%s\n", version)
		os.Exit(0)
	}

	log.SetFlags(log.Ltime | log.Ldate)
	log.SetOutput(os.Stderr)
	log.Printf("🚀 drivecheck v%s starting...", version)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Bad configuration: %v", err)
	}
	cfg.Apply(config.Overrides{
		LogDir:    *logDir,
		NotifyURL: *notifyURL,
		Mute:      *mute,
		Interval:  *interval,
	})

	if _, err := exec.LookPath(cfg.SmartctlPath); err != nil {
		log.Fatalf("❌ Error: %q not found. Please install smartmontools.", cfg.SmartctlPath)
	}
	log.Println("✓ smartctl found")

	if os.Geteuid() > 0 {
		log.Println("⚠️  Not running as root; SMART queries may be denied")
	}

	// Graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("⏹️  Shutting down...")
		cancel()
	}()

	runner := smart.ExecRunner{Path: cfg.SmartctlPath}
	fetcher := &smart.Fetcher{Runner: runner, RemapBase: cfg.RemapBase}
	logWriter := report.LogWriter{Dir: cfg.LogDir}
	notifier := report.Notifier{URL: cfg.NotifyURL, IncludeCaution: cfg.NotifyCaution}

	runOnce(ctx, runner, fetcher, logWriter, notifier, cfg.Mute, *jsonOut)

	if cfg.IntervalSec <= 0 {
		log.Println("✅ Single run complete")
		return
	}

	log.Printf("📊 Re-checking every %d seconds", cfg.IntervalSec)
	ticker := time.NewTicker(time.Duration(cfg.IntervalSec) * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("👋 drivecheck stopped")
			return
		case <-ticker.C:
			// Bell only on the first render of the session.
			runOnce(ctx, runner, fetcher, logWriter, notifier, true, *jsonOut)
		}
	}
}

// runOnce walks the whole pipeline: enumerate, acquire, classify once per
// device, then feed the same report records to every output surface.
func runOnce(ctx context.Context, runner smart.Runner, fetcher *smart.Fetcher, lw report.LogWriter, notifier report.Notifier, mute, jsonOut bool) {
	devs, err := devices.Enumerate(ctx, runner)
	if err != nil {
		log.Printf("⚠️  Device scan failed: %v", err)
		return
	}
	if len(devs) == 0 {
		log.Println("⚠️  No drives detected (check permissions)")
	}

	reports := make([]health.Report, 0, len(devs))
	for _, dev := range devs {
		log.Printf("   📀 Querying %s...", dev.ID)

		raw, ok := fetcher.Fetch(ctx, dev.ID, dev.Model)
		if !ok {
			log.Printf("   ⚠️  No SMART data for %s", dev.ID)
		}
		if dev.Model == "" {
			dev.Model = health.ModelFromText(raw)
		}

		class, verdict := health.Evaluate(raw, dev.Model)
		reports = append(reports, health.Report{Device: dev, Class: class, Verdict: verdict})
	}

	health.SortReports(reports)
	runID := uuid.New()
	now := time.Now()

	if jsonOut {
		printJSON(runID, now, reports)
	} else {
		report.Render(os.Stdout, reports, mute)
	}

	if path, err := lw.Write(runID, now, reports); err != nil {
		log.Printf("⚠️  Failed to write run log %s: %v", path, err)
	}
	if err := notifier.Notify(reports); err != nil {
		log.Printf("⚠️  Notification failed: %v", err)
	}
}

func printJSON(runID uuid.UUID, now time.Time, reports []health.Report) {
	out := struct {
		RunID   uuid.UUID       `json:"run_id"`
		Time    time.Time       `json:"time"`
		Reports []health.Report `json:"reports"`
	}{runID, now, reports}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		log.Printf("⚠️  Failed to encode JSON output: %v", err)
	}
}
