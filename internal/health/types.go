package health

import (
	"encoding/json"

	"drivecheck/internal/devices"
)

// Severity classifies a device's overall health.
type Severity int

const (
	SeverityUnknown Severity = iota
	SeverityGood
	SeverityCaution
	SeverityBad
)

func (s Severity) String() string {
	switch s {
	case SeverityGood:
		return "Good"
	case SeverityCaution:
		return "Caution"
	case SeverityBad:
		return "Bad"
	default:
		return "Unknown"
	}
}

func (s Severity) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// DriveClass is the detected device type. It is derived fresh from the raw
// diagnostic text and model string wherever needed, never stored.
type DriveClass int

const (
	ClassUnknown DriveClass = iota
	ClassRotational
	ClassSolidStateSATA
	ClassSolidStateNVMe
)

func (c DriveClass) String() string {
	switch c {
	case ClassRotational:
		return "HDD"
	case ClassSolidStateSATA:
		return "SATA SSD"
	case ClassSolidStateNVMe:
		return "NVMe SSD"
	default:
		return "Unknown"
	}
}

func (c DriveClass) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// SolidState reports whether the class is one of the SSD variants.
func (c DriveClass) SolidState() bool {
	return c == ClassSolidStateSATA || c == ClassSolidStateNVMe
}

// Verdict is the engine's output for one device.
//
// HealthPercent is present only when a reliable wear metric was found; nil
// and zero are distinct states and must never be conflated. TemperatureC is
// advisory display data and never feeds the severity.
type Verdict struct {
	Severity      Severity
	HealthPercent *int
	TemperatureC  *int
	Detail        string
}

// Report is the (device, class, verdict) triple consumed by every reporting
// surface. It is computed exactly once per device per run and reused for
// display, notification, and logging.
type Report struct {
	Device  devices.Device
	Class   DriveClass
	Verdict Verdict
}

// MarshalJSON flattens the triple into a single verdict record.
func (r Report) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		DeviceID      string     `json:"device_id"`
		Model         string     `json:"model"`
		Mounts        []string   `json:"mounts,omitempty"`
		DeviceType    DriveClass `json:"device_type"`
		Severity      Severity   `json:"severity"`
		HealthPercent *int       `json:"health_percent,omitempty"`
		TemperatureC  *int       `json:"temperature_c,omitempty"`
		Detail        string     `json:"detail"`
	}{
		DeviceID:      r.Device.ID,
		Model:         r.Device.Model,
		Mounts:        r.Device.Mounts,
		DeviceType:    r.Class,
		Severity:      r.Verdict.Severity,
		HealthPercent: r.Verdict.HealthPercent,
		TemperatureC:  r.Verdict.TemperatureC,
		Detail:        r.Verdict.Detail,
	})
}
