package health

import (
	"regexp"
	"strconv"
	"strings"
)

var intRe = regexp.MustCompile(`\d+`)

// splitLines turns raw diagnostic text into scannable lines. The text is
// treated as opaque: never mutated, only scanned.
func splitLines(raw string) []string {
	lines := strings.Split(raw, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, "\r")
	}
	return lines
}

// firstIntIn returns the first run of digits in s as an integer.
func firstIntIn(s string) (int, bool) {
	m := intRe.FindString(s)
	if m == "" {
		return 0, false
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return 0, false
	}
	return n, true
}

// firstIntToken returns the first whitespace token of s that is a plain
// integer, tolerating the %, colon and comma dressing attribute values
// carry. Hex flag tokens like 0x0032 never match.
func firstIntToken(s string) (int, bool) {
	for _, f := range strings.Fields(s) {
		f = strings.Trim(f, ":%,()")
		n, err := strconv.Atoi(f)
		if err != nil {
			continue
		}
		return n, true
	}
	return 0, false
}

// lastFieldInt parses the last whitespace-delimited token of the line as a
// non-negative integer.
func lastFieldInt(line string) (int64, bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return 0, false
	}
	n, err := strconv.ParseInt(fields[len(fields)-1], 10, 64)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func intPtr(v int) *int { return &v }
