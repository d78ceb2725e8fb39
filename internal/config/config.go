// Package config provides YAML-based viewer configuration loading and named
// color-scheme presets.
package config

import (
	"fmt"

	"github.com/vovakirdan/tui-corrview/internal/colormap"
)

// Config contains all user-tunable settings for the viewer.
type Config struct {
	Colors Colors         `yaml:"colors"`
	Export ExportDefaults `yaml:"export"`
}

// Colors is the endpoint color pair in hex. Session-scoped UI state: edits
// in the viewer are never written back to disk.
type Colors struct {
	High string `yaml:"high"`
	Low  string `yaml:"low"`
}

// Scheme converts the configured pair into a colormap scheme.
func (c Colors) Scheme() colormap.Scheme {
	return colormap.Scheme{High: c.High, Low: c.Low}
}

// ExportDefaults defines default raster export settings.
type ExportDefaults struct {
	Format  string `yaml:"format"`  // "png" or "jpeg"
	Scale   int    `yaml:"scale"`   // pixel multiplier
	Quality int    `yaml:"quality"` // jpeg quality 1-100
	Dir     string `yaml:"dir"`     // output directory
}

// SchemePreset is a named color-scheme preset.
type SchemePreset string

const (
	PresetDefault SchemePreset = "default"
	PresetThermal SchemePreset = "thermal"
	PresetMono    SchemePreset = "mono"
)

// Presets returns all preset names in display order.
func Presets() []SchemePreset {
	return []SchemePreset{PresetDefault, PresetThermal, PresetMono}
}

// SchemeForPreset returns the color pair for a named preset.
func SchemeForPreset(preset SchemePreset) (colormap.Scheme, error) {
	switch preset {
	case PresetDefault, "":
		return colormap.DefaultScheme(), nil
	case PresetThermal:
		return colormap.Scheme{High: "#d43c00", Low: "#f6e3cc"}, nil
	case PresetMono:
		return colormap.Scheme{High: "#1a1a1a", Low: "#e6e6e6"}, nil
	default:
		return colormap.Scheme{}, fmt.Errorf("unknown scheme preset %q", preset)
	}
}
