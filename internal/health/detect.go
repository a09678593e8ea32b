package health

import "strings"

// solidStateVocab are the model-string tokens that mark a drive as
// solid-state when the diagnostic text carries no rotation-rate line.
// Fixed vocabulary: generic tokens plus known solid-state product markers.
var solidStateVocab = []string{
	"ssd",
	"nvme",
	"pcie",
	"m.2",
	"solid state",
	"optane",
	"evo",
}

// Classify determines the drive class from raw diagnostic text and the
// model string. It is a pure function of its inputs; display and log paths
// may recompute it and always agree.
func Classify(raw, model string) DriveClass {
	if strings.TrimSpace(raw) == "" {
		return ClassUnknown
	}

	lines := splitLines(raw)

	solid, decided := rotationRateSolidState(lines)
	if !decided {
		solid = modelLooksSolidState(model)
	}
	if !solid {
		return ClassRotational
	}
	if mentionsNVMe(lines, model) {
		return ClassSolidStateNVMe
	}
	return ClassSolidStateSATA
}

// rotationRateSolidState scans for the rotation-rate indicator line.
// "Solid State Device" marks an SSD; a numeric RPM marks a mechanical
// drive. An unparseable line leaves the decision to the model heuristic.
func rotationRateSolidState(lines []string) (solid, decided bool) {
	for _, line := range lines {
		lower := strings.ToLower(line)
		if !strings.Contains(lower, "rotation rate") {
			continue
		}
		if strings.Contains(lower, "solid state") {
			return true, true
		}
		if _, ok := firstIntIn(afterColon(line)); ok {
			return false, true
		}
		return false, false
	}
	return false, false
}

func modelLooksSolidState(model string) bool {
	lower := strings.ToLower(model)
	for _, token := range solidStateVocab {
		if strings.Contains(lower, token) {
			return true
		}
	}
	return false
}

// mentionsNVMe selects the NVMe wear parser for solid-state drives. It
// never overrides the solid-state/rotational decision itself.
func mentionsNVMe(lines []string, model string) bool {
	if strings.Contains(strings.ToLower(model), "nvme") {
		return true
	}
	for _, line := range lines {
		if strings.Contains(strings.ToLower(line), "nvme") {
			return true
		}
	}
	return false
}

// ModelFromText recovers the model string from the identity section of the
// raw text when the device inventory provided none. "Model Family" is only
// used when no per-device model line exists.
func ModelFromText(raw string) string {
	family := ""
	for _, line := range splitLines(raw) {
		lower := strings.ToLower(line)
		switch {
		case strings.HasPrefix(lower, "device model:"), strings.HasPrefix(lower, "model number:"):
			if m := strings.TrimSpace(afterColon(line)); m != "" {
				return m
			}
		case strings.HasPrefix(lower, "model family:"):
			if family == "" {
				family = strings.TrimSpace(afterColon(line))
			}
		}
	}
	return family
}

func afterColon(line string) string {
	if i := strings.Index(line, ":"); i >= 0 {
		return line[i+1:]
	}
	return line
}
