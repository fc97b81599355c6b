package layout

import (
	"fmt"
	"sort"
	"strings"
)

// Config holds the zoom parameters used to turn intervals into pixels.
type Config struct {
	// Preset names one of Presets. Explicit PxPerMinute and MinRowHeight
	// values override the preset.
	Preset       string  `json:"preset"`
	PxPerMinute  float64 `json:"px_per_minute"`
	MinRowHeight float64 `json:"min_row_height"`
}

// DefaultPreset is used when no preset is configured.
const DefaultPreset = "normal"

// Presets are the named zoom levels offered by the timeline.
var Presets = map[string]Config{
	"compact":  {Preset: "compact", PxPerMinute: 1, MinRowHeight: 18},
	"normal":   {Preset: "normal", PxPerMinute: 2, MinRowHeight: 24},
	"detailed": {Preset: "detailed", PxPerMinute: 4, MinRowHeight: 32},
}

// PresetNames lists the available presets in a stable order.
func PresetNames() []string {
	names := make([]string, 0, len(Presets))
	for n := range Presets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// SetDefaults fills zero values from the selected preset.
func (c *Config) SetDefaults() {
	c.Preset = strings.ToLower(strings.TrimSpace(c.Preset))
	if c.Preset == "" {
		c.Preset = DefaultPreset
	}
	p, ok := Presets[c.Preset]
	if !ok {
		return
	}
	if c.PxPerMinute == 0 {
		c.PxPerMinute = p.PxPerMinute
	}
	if c.MinRowHeight == 0 {
		c.MinRowHeight = p.MinRowHeight
	}
}

// Validate checks the zoom parameters.
func (c Config) Validate() error {
	if _, ok := Presets[c.Preset]; !ok && c.Preset != "" {
		return fmt.Errorf("unknown layout preset %q (want one of %s)", c.Preset, strings.Join(PresetNames(), ", "))
	}
	if c.PxPerMinute <= 0 {
		return fmt.Errorf("px_per_minute must be positive")
	}
	if c.MinRowHeight < 0 {
		return fmt.Errorf("min_row_height must not be negative")
	}
	return nil
}
