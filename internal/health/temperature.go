package health

import (
	"strconv"
	"strings"
)

// extractTemperature pulls an advisory Celsius reading for display. It
// never feeds the severity. ATA tables report it as an attribute raw value
// (tenth column, often followed by min/max junk); NVMe logs as a labeled
// line. No reading means nil.
func extractTemperature(lines []string) *int {
	for _, line := range lines {
		lower := strings.ToLower(line)
		switch {
		case strings.Contains(lower, "temperature_celsius") || strings.Contains(lower, "airflow_temperature"):
			fields := strings.Fields(line)
			if len(fields) >= 10 {
				if n, err := strconv.Atoi(fields[9]); err == nil && n >= 0 && n < 150 {
					return intPtr(n)
				}
			}
		case strings.HasPrefix(lower, "temperature:"):
			if n, ok := firstIntIn(afterColon(line)); ok && n < 150 {
				return intPtr(n)
			}
		}
	}
	return nil
}
