package health

import (
	"sort"

	"drivecheck/internal/devices"
)

// unmountedKey sorts after every real volume identifier, so devices with
// no mounted volume land at the end of the run.
const unmountedKey = "￿"

// SortReports orders reports for display and logging: ascending by the
// smallest associated volume identifier, devices without mounts last in
// their original enumeration order.
func SortReports(reports []Report) {
	sort.SliceStable(reports, func(i, j int) bool {
		return sortKey(reports[i].Device) < sortKey(reports[j].Device)
	})
}

func sortKey(d devices.Device) string {
	if len(d.Mounts) == 0 {
		return unmountedKey
	}
	min := d.Mounts[0]
	for _, m := range d.Mounts[1:] {
		if m < min {
			min = m
		}
	}
	return min
}
