package health

import "strings"

// Defects are the mechanical-drive media counters the verdict policy reads.
type Defects struct {
	Reallocated   int64
	Pending       int64
	Uncorrectable int64
}

// extractDefects scans for the three defect attribute lines. The value is
// the last whitespace token when it parses as a non-negative integer. An
// absent attribute line counts as zero incidents, the conservative default
// for attributes a given controller does not report.
func extractDefects(lines []string) Defects {
	var d Defects
	var haveRealloc, havePending, haveUncorr bool

	for _, line := range lines {
		lower := strings.ToLower(line)
		switch {
		case !haveRealloc && containsAny(lower, "reallocated_sector", "reallocated sector"):
			if n, ok := lastFieldInt(line); ok {
				d.Reallocated = n
			}
			haveRealloc = true
		case !havePending && containsAny(lower, "current_pending_sector", "current pending sector"):
			if n, ok := lastFieldInt(line); ok {
				d.Pending = n
			}
			havePending = true
		case !haveUncorr && containsAny(lower, "offline_uncorrectable", "offline uncorrectable"):
			if n, ok := lastFieldInt(line); ok {
				d.Uncorrectable = n
			}
			haveUncorr = true
		}
	}
	return d
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
