package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-corrview/internal/config"
	"github.com/vovakirdan/tui-corrview/internal/dataset"
	"github.com/vovakirdan/tui-corrview/internal/export"
)

var (
	flagFormat   string
	flagScale    int
	flagQuality  int
	flagOutDir   string
	flagNoLabels bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Render the heatmap to a PNG or JPEG file",
	Long: `Render the correlation heatmap offscreen and write it to an image
file named by period and date, e.g. correlation_90d_20260829_154210.png.

Examples:
  corrview export
  corrview export --format jpeg --quality 85
  corrview export --scale 4 --out ./renders`,
	Args: cobra.NoArgs,
	Run:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&flagFormat, "format", "", "Output format: png or jpeg")
	exportCmd.Flags().IntVar(&flagScale, "scale", 0, "Resolution multiplier")
	exportCmd.Flags().IntVar(&flagQuality, "quality", 0, "JPEG quality (1-100)")
	exportCmd.Flags().StringVar(&flagOutDir, "out", "", "Output directory")
	exportCmd.Flags().BoolVar(&flagNoLabels, "no-labels", false, "Omit asset labels and legend ticks")
}

func runExport(cmd *cobra.Command, args []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "export"})

	ds, err := dataset.Load(flagDataset)
	if err != nil {
		logger.Fatal("loading dataset", "err", err)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		logger.Fatal("loading config", "err", err)
	}

	opts := export.DefaultOptions()
	opts.Format = cfg.Export.Format
	opts.Scale = cfg.Export.Scale
	opts.Quality = cfg.Export.Quality
	if flagFormat != "" {
		opts.Format = flagFormat
	}
	if flagScale > 0 {
		opts.Scale = flagScale
	}
	if flagQuality > 0 {
		opts.Quality = flagQuality
	}
	opts.ShowLabels = !flagNoLabels

	if opts.Format != export.FormatPNG && opts.Format != export.FormatJPEG {
		logger.Fatal("unsupported format", "format", opts.Format)
	}

	dir := cfg.Export.Dir
	if flagOutDir != "" {
		dir = flagOutDir
	}

	logger.Info("rendering", "period", ds.Period, "assets", ds.Size(),
		"format", opts.Format, "scale", opts.Scale)

	path, err := export.Save(dir, ds, cfg.Colors.Scheme(), opts)
	if err != nil {
		logger.Fatal("export failed", "err", err)
	}
	logger.Info("export complete", "path", path)
	fmt.Println(path)
}
