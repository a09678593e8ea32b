package health

import "testing"

// ── NVMe percentage-used extraction ─────────────────────────────────────────

func TestExtractNVMeHealth_LabelVariants(t *testing.T) {
	tests := []struct {
		name string
		line string
		want int
	}{
		{"smartctl label", "Percentage Used:                    5%", 95},
		{"nvme-cli label", "percentage_used                     : 5%", 95},
		{"terse label", "Percent Used: 12", 88},
		{"attribute code", "233 3", 97},
		{"fully worn", "Percentage Used: 100%", 0},
		{"beyond rated life", "Percentage Used: 130%", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractNVMeHealth([]string{"Critical Warning: 0x00", tt.line})
			if got == nil {
				t.Fatal("got nil, want a health percent")
			}
			if *got != tt.want {
				t.Errorf("health = %d, want %d", *got, tt.want)
			}
		})
	}
}

func TestExtractNVMeHealth_FirstMatchWins(t *testing.T) {
	lines := []string{
		"Percentage Used: 5%",
		"Percentage Used: 90%",
	}
	got := extractNVMeHealth(lines)
	if got == nil || *got != 95 {
		t.Errorf("got %v, want 95 (first matching line wins)", got)
	}
}

func TestExtractNVMeHealth_NoMatch(t *testing.T) {
	lines := []string{"Available Spare: 100%", "Media Errors: 0"}
	if got := extractNVMeHealth(lines); got != nil {
		t.Errorf("got %d, want nil", *got)
	}
}

// ── SATA wear-leveling parser chain ─────────────────────────────────────────

func TestExtractSATAHealth_ParserChain(t *testing.T) {
	tests := []struct {
		name string
		line string
		want int
	}{
		{
			"strict columns",
			"177 Wear_Leveling_Count     0x0013   093   093   000    Pre-fail  Always       -       70",
			93,
		},
		{
			"shifted flag column",
			"177  Wear_Leveling_Count  -  080  080  000  Pre-fail  -  45",
			80,
		},
		{
			"space-variant attribute name",
			"177 Wear Leveling Count 0x0013 088 088 000 Pre-fail Always - 12",
			88,
		},
		{
			"media wearout indicator",
			"233 Media_Wearout_Indicator 0x0032 091 091 000 Old_age Always - 0",
			91,
		},
		{
			"degraded single bounded integer",
			"Wear_Leveling_Count : 40",
			40,
		},
		{
			"malformed columns with one usable value",
			"Wear Leveling Count value ninety 93 trailing",
			93,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractSATAHealth([]string{"ID# ATTRIBUTE_NAME FLAG VALUE", tt.line})
			if got == nil {
				t.Fatal("got nil, want a health percent")
			}
			if *got != tt.want {
				t.Errorf("health = %d, want %d", *got, tt.want)
			}
		})
	}
}

func TestExtractSATAHealth_ClampsOversizedValue(t *testing.T) {
	line := "177 Wear_Leveling_Count 0x0013 253 253 000 Pre-fail Always - 0"
	got := extractSATAHealth([]string{line})
	if got == nil || *got != 100 {
		t.Errorf("got %v, want 100 (normalized init values clamp)", got)
	}
}

func TestExtractSATAHealth_NoMatch(t *testing.T) {
	lines := []string{
		"  5 Reallocated_Sector_Ct 0x0033 100 100 010 Pre-fail Always - 0",
		"194 Temperature_Celsius   0x0022 034 052 000 Old_age  Always - 34",
	}
	if got := extractSATAHealth(lines); got != nil {
		t.Errorf("got %d, want nil (zero and unknown are distinct)", *got)
	}
}

// ── Rotational defect extraction ────────────────────────────────────────────

func TestExtractDefects(t *testing.T) {
	lines := []string{
		"  5 Reallocated_Sector_Ct   0x0033   100   100   010    Pre-fail  Always       -       7",
		"197 Current_Pending_Sector  0x0032   100   100   000    Old_age   Always       -       2",
		"198 Offline_Uncorrectable   0x0030   100   100   000    Old_age   Offline      -       1",
	}
	d := extractDefects(lines)

	if d.Reallocated != 7 || d.Pending != 2 || d.Uncorrectable != 1 {
		t.Errorf("got %+v, want {7 2 1}", d)
	}
}

func TestExtractDefects_AbsentLinesDefaultZero(t *testing.T) {
	d := extractDefects([]string{"Rotation Rate: 7200 rpm"})
	if d.Reallocated != 0 || d.Pending != 0 || d.Uncorrectable != 0 {
		t.Errorf("got %+v, want all zero", d)
	}
}

func TestExtractDefects_UnparseableLastTokenDefaultsZero(t *testing.T) {
	lines := []string{
		"  5 Reallocated_Sector_Ct 0x0033 100 100 010 Pre-fail Always - n/a",
	}
	if d := extractDefects(lines); d.Reallocated != 0 {
		t.Errorf("Reallocated = %d, want 0", d.Reallocated)
	}
}

// ── Temperature ─────────────────────────────────────────────────────────────

func TestExtractTemperature(t *testing.T) {
	tests := []struct {
		name string
		line string
		want int
	}{
		{"ata attribute", "194 Temperature_Celsius 0x0022 034 052 000 Old_age Always - 34 (Min/Max 17/45)", 34},
		{"nvme label", "Temperature:                        36 Celsius", 36},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractTemperature([]string{tt.line})
			if got == nil || *got != tt.want {
				t.Errorf("got %v, want %d", got, tt.want)
			}
		})
	}
}

func TestExtractTemperature_Absent(t *testing.T) {
	if got := extractTemperature([]string{"SMART overall-health: PASSED"}); got != nil {
		t.Errorf("got %d, want nil", *got)
	}
}
