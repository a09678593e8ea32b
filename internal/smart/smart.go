package smart

import (
	"context"
	"errors"
	"log"
	"os/exec"
	"regexp"
	"strconv"
	"strings"
)

// Runner executes one diagnostic query and returns its output. The
// exec-backed implementation is ExecRunner; tests substitute fakes.
type Runner interface {
	Run(ctx context.Context, args ...string) ([]byte, error)
}

// ExecRunner shells out to smartctl.
type ExecRunner struct {
	Path string // binary to invoke, "smartctl" when empty
}

func (r ExecRunner) Run(ctx context.Context, args ...string) ([]byte, error) {
	path := r.Path
	if path == "" {
		path = "smartctl"
	}
	return exec.CommandContext(ctx, path, args...).Output()
}

// fallbackTypes are tried in order after the untyped and NVMe attempts.
var fallbackTypes = []string{"ata", "sat", "scsi", "auto"}

var nvmeModelRe = regexp.MustCompile(`(?i)nvme|pcie`)

// failureMarkers invalidate otherwise-successful output. smartctl prints
// these on stdout, sometimes with a clean exit status.
var failureMarkers = []string{
	"smartctl open device",           // device open failure
	"no such device",                 // missing device
	"unknown device type",            // unsupported device
	"unable to detect device type",   // detection failure
	"mandatory smart command failed", // generic query abort
	"permission denied",              // insufficient privileges
}

// Fetcher acquires raw SMART attribute text for a device, trying a
// sequence of device-type hints until one produces usable output.
type Fetcher struct {
	Runner Runner

	// RemapBase is the platform device-name base for the last-resort
	// index remap, "/dev/sd" when empty.
	RemapBase string
}

// Fetch returns the raw attribute listing for the device, or ok=false when
// every fallback attempt failed. A single attempt's transport failure is
// that attempt's failure only; the chain continues.
func (f *Fetcher) Fetch(ctx context.Context, id, model string) (raw string, ok bool) {
	for i, args := range f.buildAttempts(id, model) {
		if i > 0 {
			log.Printf("   🔄 Retrying %s with %s...", id, strings.Join(args[:len(args)-1], " "))
		}

		out, err := f.Runner.Run(ctx, args...)
		if !exitOK(err) || len(out) == 0 {
			continue
		}
		text := string(out)
		if hasFailureMarker(text) {
			continue
		}
		if i > 0 {
			log.Printf("   ✓ Success with %s", strings.Join(args[:len(args)-1], " "))
		}
		return text, true
	}
	return "", false
}

// buildAttempts is the fallback contract: untyped first, NVMe when the
// model suggests it, then the generic type hints, then the index remap.
func (f *Fetcher) buildAttempts(id, model string) [][]string {
	attempts := [][]string{{"-a", id}}
	if nvmeModelRe.MatchString(model) {
		attempts = append(attempts, []string{"-a", "-d", "nvme", id})
	}
	for _, t := range fallbackTypes {
		attempts = append(attempts, []string{"-a", "-d", t, id})
	}
	if name, ok := f.remapName(id); ok {
		attempts = append(attempts, []string{"-a", name})
	}
	return attempts
}

var deviceIndexRe = regexp.MustCompile(`(\d+)$`)

// remapName maps an index-suffixed identifier (PhysicalDrive3, disk2) to
// the platform's alphabetic device naming. Compatibility shim for
// environments where drive numbering and native device names diverge;
// limited to the first 26 devices by construction. Path-style names like
// /dev/nvme0 already are native and never remap: querying another device's
// name would report a foreign drive's health under this identity.
func (f *Fetcher) remapName(id string) (string, bool) {
	if strings.ContainsRune(id, '/') {
		return "", false
	}
	m := deviceIndexRe.FindStringSubmatch(id)
	if m == nil {
		return "", false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n < 0 || n > 25 {
		return "", false
	}
	base := f.RemapBase
	if base == "" {
		base = "/dev/sd"
	}
	return base + string(rune('a'+n)), true
}

func hasFailureMarker(text string) bool {
	lower := strings.ToLower(text)
	for _, marker := range failureMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// exitOK interprets smartctl's exit bitmask: bits 0-2 flag command-line,
// open, or structure failures; higher bits mean the read succeeded but the
// drive reported problems. Only the low bits make an attempt unusable.
func exitOK(err error) bool {
	if err == nil {
		return true
	}
	var ee *exec.ExitError
	if errors.As(err, &ee) {
		return ee.ExitCode()&0x07 == 0
	}
	// Process never launched; treat as this attempt's failure.
	return false
}
