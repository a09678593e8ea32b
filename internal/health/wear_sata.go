package health

import (
	"strconv"
	"strings"
)

// wearLabels match the SATA SSD wear attribute in both the underscore and
// space spellings smartctl versions emit.
var wearLabels = []string{
	"wear_leveling_count",
	"wear leveling count",
	"media_wearout_indicator",
	"media wearout indicator",
}

// wearParser is one named strategy for pulling the normalized wear value
// out of an attribute line. Parsers run in priority order; the first one
// that applies wins. The chain exists because attribute-table column
// widths shift across smartctl versions and platforms.
type wearParser struct {
	name  string
	parse func(line string) (int, bool)
}

var wearParsers = []wearParser{
	{"strict-columns", parseStrictColumns},
	{"fourth-token", parseFourthToken},
	{"bounded-scan", parseBoundedScan},
}

// extractSATAHealth scans for the wear attribute line and runs the parser
// chain against it. The normalized value is the health percent directly.
// No usable line means nil, never zero.
func extractSATAHealth(lines []string) *int {
	for _, line := range lines {
		if !wearLine(line) {
			continue
		}
		for _, p := range wearParsers {
			if v, ok := p.parse(line); ok {
				return intPtr(clampInt(v, 0, 100))
			}
		}
	}
	return nil
}

func wearLine(line string) bool {
	lower := strings.ToLower(line)
	for _, label := range wearLabels {
		if strings.Contains(lower, label) {
			return true
		}
	}
	return false
}

// parseStrictColumns expects the canonical attribute table shape:
// ID, attribute name, hex flag, then the normalized value as a 1-3 digit
// fourth token.
func parseStrictColumns(line string) (int, bool) {
	fields := strings.Fields(line)
	if len(fields) < 4 {
		return 0, false
	}
	if !allDigits(fields[0]) || !strings.HasPrefix(fields[2], "0x") {
		return 0, false
	}
	return parseShortInt(fields[3])
}

// parseFourthToken relaxes the column check: any line whose fourth token
// is a 1-3 digit integer.
func parseFourthToken(line string) (int, bool) {
	fields := strings.Fields(line)
	if len(fields) < 4 {
		return 0, false
	}
	return parseShortInt(fields[3])
}

// parseBoundedScan is the last resort: the first whitespace token that is
// an integer within [0,100].
func parseBoundedScan(line string) (int, bool) {
	for _, f := range strings.Fields(line) {
		n, err := strconv.Atoi(f)
		if err != nil {
			continue
		}
		if n >= 0 && n <= 100 {
			return n, true
		}
	}
	return 0, false
}

func parseShortInt(s string) (int, bool) {
	if len(s) == 0 || len(s) > 3 || !allDigits(s) {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
