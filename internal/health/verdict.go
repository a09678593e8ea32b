package health

import (
	"fmt"
	"strings"
)

// Evaluate computes the health verdict for one device from its raw
// diagnostic text and model string. It is deterministic: identical inputs
// always yield an identical class and verdict, so a result may be computed
// once and reused by every reporting surface.
func Evaluate(raw, model string) (DriveClass, Verdict) {
	class := Classify(raw, model)
	if class == ClassUnknown {
		return class, Verdict{
			Severity: SeverityUnknown,
			Detail:   "diagnostic query failed for this device",
		}
	}

	lines := splitLines(raw)
	var v Verdict
	switch class {
	case ClassSolidStateNVMe:
		v = assessSolidState(extractNVMeHealth(lines))
	case ClassSolidStateSATA:
		v = assessSolidState(extractSATAHealth(lines))
	default:
		v = assessRotational(extractDefects(lines))
	}
	v.TemperatureC = extractTemperature(lines)
	return class, v
}

// assessSolidState maps a wear-derived health percent to a severity.
// Boundaries are inclusive lower bounds: 90 is Good, 70 is Caution.
func assessSolidState(pct *int) Verdict {
	if pct == nil {
		return Verdict{
			Severity: SeverityUnknown,
			Detail:   "could not parse reliable wear indicator",
		}
	}
	v := Verdict{
		HealthPercent: pct,
		Detail:        fmt.Sprintf("Health %d%%", *pct),
	}
	switch {
	case *pct >= 90:
		v.Severity = SeverityGood
	case *pct >= 70:
		v.Severity = SeverityCaution
	default:
		v.Severity = SeverityBad
	}
	return v
}

// assessRotational applies the conservative mechanical-drive policy:
// unstable or uncorrectable sectors are Bad outright, any remapped sector
// is Caution.
func assessRotational(d Defects) Verdict {
	if d.Pending > 0 || d.Uncorrectable > 0 {
		var conds []string
		if d.Pending > 0 {
			conds = append(conds, fmt.Sprintf("%d pending sectors", d.Pending))
		}
		if d.Uncorrectable > 0 {
			conds = append(conds, fmt.Sprintf("%d offline uncorrectable sectors", d.Uncorrectable))
		}
		return Verdict{Severity: SeverityBad, Detail: strings.Join(conds, ", ")}
	}
	if d.Reallocated > 0 {
		return Verdict{
			Severity: SeverityCaution,
			Detail:   fmt.Sprintf("%d reallocated sectors", d.Reallocated),
		}
	}
	return Verdict{Severity: SeverityGood, Detail: "no critical indicators present"}
}
