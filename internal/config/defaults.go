package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-corrview/internal/colormap"
)

//go:embed defaults/config.yaml
var defaultConfigYAML []byte

// DefaultConfig returns the built-in viewer configuration.
func DefaultConfig() Config {
	return Config{
		Colors: Colors{
			High: colormap.DefaultHigh,
			Low:  colormap.DefaultLow,
		},
		Export: ExportDefaults{
			Format:  "png",
			Scale:   2,
			Quality: 90,
			Dir:     ".",
		},
	}
}
