package health

import (
	"strconv"
	"strings"
)

// nvmeUsedLabels are the "percentage used" spellings seen across smartctl
// and nvme-cli versions for the NVMe endurance counter.
var nvmeUsedLabels = []string{
	"percentage used",
	"percentage_used",
	"percent used",
	"percent_used",
}

// attrPercentageUsed is the attribute code SAT-translated and vendor tables
// report the endurance counter under.
const attrPercentageUsed = 233

// extractNVMeHealth scans for the NVMe percentage-used metric and converts
// it to remaining health. First matching line wins; scanning stops there.
// No match means nil, never zero.
func extractNVMeHealth(lines []string) *int {
	for _, line := range lines {
		rest, ok := nvmeUsedRest(line)
		if !ok {
			continue
		}
		used, ok := firstIntToken(rest)
		if !ok {
			continue
		}
		h := 100 - used
		if h < 0 {
			h = 0
		}
		return intPtr(h)
	}
	return nil
}

// nvmeUsedRest reports whether the line carries the percentage-used metric
// and returns the portion of the line holding its value.
func nvmeUsedRest(line string) (string, bool) {
	lower := strings.ToLower(line)
	for _, label := range nvmeUsedLabels {
		if i := strings.Index(lower, label); i >= 0 {
			return line[i+len(label):], true
		}
	}
	fields := strings.Fields(line)
	if len(fields) > 1 && fields[0] == strconv.Itoa(attrPercentageUsed) {
		return strings.TrimPrefix(strings.TrimSpace(line), fields[0]), true
	}
	return "", false
}
