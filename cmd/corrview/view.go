package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-corrview/internal/config"
	"github.com/vovakirdan/tui-corrview/internal/dataset"
	"github.com/vovakirdan/tui-corrview/internal/platform/tui"
)

var flagScheme string

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Open the interactive heatmap viewer",
	Long: `Open the correlation heatmap in the terminal.

Controls:
  Arrows/hjkl  - Move the cell cursor
  c            - Edit endpoint colors
  p            - Cycle scheme preset
  r            - Reset colors to defaults
  t            - Period selector
  e            - Export menu
  Q/Ctrl+C     - Quit

Examples:
  corrview view
  corrview view --dataset ./correlations.yaml
  corrview view --scheme thermal`,
	Args: cobra.NoArgs,
	Run:  runView,
}

func init() {
	viewCmd.Flags().StringVar(&flagScheme, "scheme", "", "Color scheme preset: default, thermal, mono")
}

func runView(cmd *cobra.Command, args []string) {
	ds, err := dataset.Load(flagDataset)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if flagScheme != "" {
		scheme, presetErr := config.SchemeForPreset(config.SchemePreset(flagScheme))
		if presetErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", presetErr)
			os.Exit(1)
		}
		cfg.Colors.High = scheme.High
		cfg.Colors.Low = scheme.Low
	}

	// Small terminals cannot fit the grid plus inspector.
	if w, _, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		if w < ds.Size()*4 {
			fmt.Fprintf(os.Stderr, "Warning: terminal is narrow for %d assets, labels may clip\n", ds.Size())
		}
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "corrview"})

	if runErr := tui.Run(ds, cfg, logger); runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running viewer: %v\n", runErr)
		os.Exit(1)
	}
}
