// Package export rasterizes a correlation heatmap to PNG or JPEG. This is
// the one side-effecting collaborator of the viewer: it renders offscreen,
// encodes, and writes a file named after the dataset period and the current
// date.
package export

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/vovakirdan/tui-corrview/internal/colormap"
	"github.com/vovakirdan/tui-corrview/internal/dataset"
)

// Supported output formats.
const (
	FormatPNG  = "png"
	FormatJPEG = "jpeg"
)

// Options controls rasterization and encoding.
type Options struct {
	Format     string // png or jpeg
	Scale      int    // resolution multiplier, >= 1
	Quality    int    // jpeg quality 1-100
	CellSize   int    // unscaled cell edge in pixels
	ShowLabels bool   // draw asset names and legend tick labels
}

// DefaultOptions returns export settings matching the embedded config.
func DefaultOptions() Options {
	return Options{
		Format:     FormatPNG,
		Scale:      2,
		Quality:    90,
		CellSize:   24,
		ShowLabels: true,
	}
}

func (o Options) normalized() Options {
	if o.Format == "" {
		o.Format = FormatPNG
	}
	if o.Scale < 1 {
		o.Scale = 1
	}
	if o.Quality < 1 || o.Quality > 100 {
		o.Quality = 90
	}
	if o.CellSize < 4 {
		o.CellSize = 24
	}
	return o
}

// gradientSamples is the resolution of the exported legend strip.
const gradientSamples = 100

// geometry is the scaled pixel layout of an export.
type geometry struct {
	cell       int // cell edge
	pad        int // outer padding and label gap
	leftMargin int // room for row labels
	gridTop    int
	gridSize   int // grid is n*cell square
	stripTop   int
	stripH     int
	width      int
	height     int
}

const glyphW, glyphH = 7, 13 // basicfont.Face7x13 metrics

func computeGeometry(ds *dataset.Dataset, opts Options) geometry {
	n := ds.Size()
	var g geometry
	g.cell = opts.CellSize * opts.Scale
	g.pad = 8 * opts.Scale

	if opts.ShowLabels {
		maxName := 0
		for _, a := range ds.Assets {
			if len(a) > maxName {
				maxName = len(a)
			}
		}
		g.leftMargin = g.pad + maxName*glyphW + g.pad
	} else {
		g.leftMargin = g.pad
	}

	g.gridTop = g.pad
	g.gridSize = n * g.cell
	g.stripTop = g.gridTop + g.gridSize + g.pad
	if opts.ShowLabels {
		g.stripTop += glyphH + g.pad // room for column labels under the grid
	}
	g.stripH = 14 * opts.Scale

	g.width = g.leftMargin + g.gridSize + g.pad
	g.height = g.stripTop + g.stripH + g.pad
	if opts.ShowLabels {
		g.height += glyphH + g.pad // legend tick labels
	}
	return g
}

// Render draws the lower triangle of the dataset as filled cells colored by
// the scheme, plus a continuous gradient strip. Absent cells stay the
// background color.
func Render(ds *dataset.Dataset, scheme colormap.Scheme, opts Options) (image.Image, error) {
	opts = opts.normalized()
	if ds.Size() == 0 {
		return nil, fmt.Errorf("render: dataset has no assets")
	}
	if !scheme.Valid() {
		scheme = colormap.DefaultScheme()
	}

	g := computeGeometry(ds, opts)
	img := image.NewRGBA(image.Rect(0, 0, g.width, g.height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	for i := 0; i < ds.Size(); i++ {
		for j := 0; j <= i; j++ {
			v, ok := ds.At(i, j)
			if !ok {
				continue
			}
			fillCell(img, g, i, j, hexToRGBA(scheme.ColorFor(v)))
		}
	}

	if err := drawStrip(img, g, scheme); err != nil {
		return nil, err
	}

	if opts.ShowLabels {
		drawLabels(img, g, ds)
	}
	return img, nil
}

func fillCell(img *image.RGBA, g geometry, row, col int, c color.RGBA) {
	x0 := g.leftMargin + col*g.cell
	y0 := g.gridTop + row*g.cell
	r := image.Rect(x0, y0, x0+g.cell, y0+g.cell)
	draw.Draw(img, r, image.NewUniform(c), image.Point{}, draw.Src)
}

func drawStrip(img *image.RGBA, g geometry, scheme colormap.Scheme) error {
	samples, err := colormap.Swatches(scheme, gradientSamples)
	if err != nil {
		return fmt.Errorf("render legend: %w", err)
	}
	for i, hex := range samples {
		x0 := g.leftMargin + i*g.gridSize/gradientSamples
		x1 := g.leftMargin + (i+1)*g.gridSize/gradientSamples
		r := image.Rect(x0, g.stripTop, x1, g.stripTop+g.stripH)
		draw.Draw(img, r, image.NewUniform(hexToRGBA(hex)), image.Point{}, draw.Src)
	}
	return nil
}

func drawLabels(img *image.RGBA, g geometry, ds *dataset.Dataset) {
	// Row labels, right-aligned against the grid.
	for i, name := range ds.Assets {
		y := g.gridTop + i*g.cell + g.cell/2 + glyphH/2
		x := g.leftMargin - g.pad - len(name)*glyphW
		drawText(img, x, y, name)
	}

	// Column labels under the grid, truncated to the cell width.
	maxChars := g.cell / glyphW
	if maxChars < 1 {
		maxChars = 1
	}
	for j, name := range ds.Assets {
		label := name
		if len(label) > maxChars {
			label = label[:maxChars]
		}
		x := g.leftMargin + j*g.cell + (g.cell-len(label)*glyphW)/2
		drawText(img, x, g.gridTop+g.gridSize+glyphH, label)
	}

	// Legend ticks: -1 at the low end, +1 at the high end.
	tickY := g.stripTop + g.stripH + glyphH
	drawText(img, g.leftMargin, tickY, "-1")
	drawText(img, g.leftMargin+g.gridSize/2-glyphW, tickY, "0")
	drawText(img, g.leftMargin+g.gridSize-2*glyphW, tickY, "+1")
}

func drawText(img *image.RGBA, x, y int, s string) {
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.Black),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

func hexToRGBA(hex string) color.RGBA {
	c, ok := colormap.ParseHex(hex)
	if !ok {
		return color.RGBA{A: 0xff}
	}
	return color.RGBA{R: uint8(c.R), G: uint8(c.G), B: uint8(c.B), A: 0xff}
}

// Encode writes the image in the requested format.
func Encode(w io.Writer, img image.Image, opts Options) error {
	opts = opts.normalized()
	switch opts.Format {
	case FormatPNG:
		return png.Encode(w, img)
	case FormatJPEG:
		return jpeg.Encode(w, img, &jpeg.Options{Quality: opts.Quality})
	default:
		return fmt.Errorf("encode: unsupported format %q", opts.Format)
	}
}

// Filename templates the output name by dataset period and timestamp,
// e.g. "correlation_90d_20260829_154210.png".
func Filename(period string, now time.Time, format string) string {
	ext := "png"
	if format == FormatJPEG {
		ext = "jpg"
	}
	period = sanitizePeriod(period)
	return fmt.Sprintf("correlation_%s_%s.%s", period, now.Format("20060102_150405"), ext)
}

func sanitizePeriod(period string) string {
	period = strings.TrimSpace(period)
	if period == "" {
		return "matrix"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, period)
}

// Save renders and writes the heatmap into dir, returning the written path.
func Save(dir string, ds *dataset.Dataset, scheme colormap.Scheme, opts Options) (string, error) {
	opts = opts.normalized()
	img, err := Render(ds, scheme, opts)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating export directory %s: %w", dir, err)
	}
	path := filepath.Join(dir, Filename(ds.Period, time.Now(), opts.Format))

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := Encode(f, img, opts); err != nil {
		return "", fmt.Errorf("encoding %s: %w", path, err)
	}
	return path, nil
}
