package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"drivecheck/internal/health"
)

// LogWriter persists one dated log artifact per run day. Failures here are
// reported by the caller and never abort a run.
type LogWriter struct {
	Dir string
}

// Write appends the run's verdict blocks to the dated artifact and returns
// the path written.
func (lw LogWriter) Write(runID uuid.UUID, now time.Time, reports []health.Report) (string, error) {
	path := filepath.Join(lw.Dir, "drivecheck-"+now.Format("2006-01-02")+".log")

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return path, err
	}
	defer f.Close()

	var sb strings.Builder
	fmt.Fprintf(&sb, "# run %s at %s\n\n", runID, now.Format(time.RFC3339))
	for _, r := range reports {
		sb.WriteString(Block(r))
		sb.WriteString("\n")
	}

	_, err = f.WriteString(sb.String())
	return path, err
}

// Block renders one device's log entry:
//
//	{model}{ (volume)} [{deviceId}]: {severity}{ ({percent}%)}
//
// The caller adds the blank separator line between blocks.
func Block(r health.Report) string {
	var sb strings.Builder
	sb.WriteString(r.Device.Model)
	if m := smallestMount(r.Device.Mounts); m != "" {
		sb.WriteString(" (" + m + ")")
	}
	sb.WriteString(" [" + r.Device.ID + "]: ")
	sb.WriteString(r.Verdict.Severity.String())
	if r.Verdict.HealthPercent != nil {
		fmt.Fprintf(&sb, " (%d%%)", *r.Verdict.HealthPercent)
	}
	sb.WriteString("\n")
	return sb.String()
}

func smallestMount(mounts []string) string {
	if len(mounts) == 0 {
		return ""
	}
	min := mounts[0]
	for _, m := range mounts[1:] {
		if m < min {
			min = m
		}
	}
	return min
}
