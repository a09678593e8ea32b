package devices

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/shirou/gopsutil/v3/disk"

	"drivecheck/internal/smart"
)

// Device is one physical storage device from the run's inventory.
// Enumerated once per run and immutable for its duration.
type Device struct {
	ID     string   `json:"id"`
	Model  string   `json:"model"`
	Mounts []string `json:"mounts,omitempty"`
}

type scanResult struct {
	Devices []struct {
		Name     string `json:"name"`
		Type     string `json:"type"`
		Protocol string `json:"protocol"`
	} `json:"devices"`
}

// Enumerate builds the device inventory: smartctl --scan for the device
// list, mounted-partition association for volume identifiers, sysfs for
// the model string. A device with no readable model keeps an empty model;
// the classifier backfills it from the diagnostic text.
func Enumerate(ctx context.Context, runner smart.Runner) ([]Device, error) {
	out, err := runner.Run(ctx, "--scan", "--json")
	if err != nil {
		return nil, err
	}

	var scan scanResult
	if err := json.Unmarshal(out, &scan); err != nil {
		return nil, err
	}

	mounts := mountsByDevice()
	devs := make([]Device, 0, len(scan.Devices))
	for _, d := range scan.Devices {
		devs = append(devs, Device{
			ID:     d.Name,
			Model:  readModel(d.Name),
			Mounts: mounts[d.Name],
		})
	}
	return devs, nil
}

// mountsByDevice maps base device names to the sorted mountpoints of their
// partitions. Errors here are not fatal: a device without mount data still
// gets checked, it just sorts last.
func mountsByDevice() map[string][]string {
	parts, err := disk.Partitions(false)
	if err != nil {
		return nil
	}

	m := make(map[string][]string)
	for _, p := range parts {
		base := baseDevice(p.Device)
		if base == "" || p.Mountpoint == "" {
			continue
		}
		m[base] = append(m[base], p.Mountpoint)
	}
	for k := range m {
		sort.Strings(m[k])
	}
	return m
}

var (
	nvmePartRe = regexp.MustCompile(`^(/dev/nvme\d+n\d+)p\d+$`)
	diskPartRe = regexp.MustCompile(`^(/dev/[a-z]+)\d+$`)
)

// baseDevice strips the partition suffix from a partition device name:
// /dev/sda1 -> /dev/sda, /dev/nvme0n1p2 -> /dev/nvme0n1.
func baseDevice(part string) string {
	if m := nvmePartRe.FindStringSubmatch(part); m != nil {
		return m[1]
	}
	if m := diskPartRe.FindStringSubmatch(part); m != nil {
		return m[1]
	}
	if strings.HasPrefix(part, "/dev/") {
		return part
	}
	return ""
}

func readModel(id string) string {
	b, err := os.ReadFile(filepath.Join("/sys/block", filepath.Base(id), "device", "model"))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(b))
}
