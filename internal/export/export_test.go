package export

import (
	"bytes"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-corrview/internal/colormap"
	"github.com/vovakirdan/tui-corrview/internal/dataset"
)

func testDataset() *dataset.Dataset {
	return &dataset.Dataset{
		Period: "90d",
		Assets: []string{"BTC", "ETH", "SOL"},
		Matrix: [][]float64{
			{1.0},
			{0.0, 1.0},
			{-1.0, 0.5, 1.0},
		},
	}
}

func TestFilename(t *testing.T) {
	now := time.Date(2026, 8, 29, 15, 42, 10, 0, time.UTC)

	tests := []struct {
		name     string
		period   string
		format   string
		expected string
	}{
		{"png", "90d", FormatPNG, "correlation_90d_20260829_154210.png"},
		{"jpeg uses jpg ext", "90d", FormatJPEG, "correlation_90d_20260829_154210.jpg"},
		{"period sanitized", "90 days / spot", FormatPNG, "correlation_90_days___spot_20260829_154210.png"},
		{"empty period", "", FormatPNG, "correlation_matrix_20260829_154210.png"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Filename(tc.period, now, tc.format)
			if got != tc.expected {
				t.Errorf("Filename = %q, expected %q", got, tc.expected)
			}
		})
	}
}

func TestRenderDimensions(t *testing.T) {
	ds := testDataset()
	opts := Options{Format: FormatPNG, Scale: 1, CellSize: 10, ShowLabels: false}

	img, err := Render(ds, colormap.DefaultScheme(), opts)
	if err != nil {
		t.Fatal(err)
	}

	g := computeGeometry(ds, opts.normalized())
	b := img.Bounds()
	if b.Dx() != g.width || b.Dy() != g.height {
		t.Errorf("image is %dx%d, expected %dx%d", b.Dx(), b.Dy(), g.width, g.height)
	}
	// 3 cells of 10px plus 8px padding either side.
	if g.gridSize != 30 {
		t.Errorf("gridSize = %d, expected 30", g.gridSize)
	}
}

func TestRenderScaleMultiplier(t *testing.T) {
	ds := testDataset()
	base := computeGeometry(ds, Options{Scale: 1, CellSize: 10}.normalized())
	scaled := computeGeometry(ds, Options{Scale: 3, CellSize: 10}.normalized())

	if scaled.width != base.width*3 || scaled.height != base.height*3 {
		t.Errorf("scale 3 geometry %dx%d, expected 3x of %dx%d",
			scaled.width, scaled.height, base.width, base.height)
	}
}

func TestRenderCellColors(t *testing.T) {
	ds := testDataset()
	scheme := colormap.Scheme{High: "#0046d4", Low: "#ccdaf6"}
	opts := Options{Format: FormatPNG, Scale: 1, CellSize: 10, ShowLabels: false}

	img, err := Render(ds, scheme, opts)
	if err != nil {
		t.Fatal(err)
	}
	g := computeGeometry(ds, opts.normalized())

	at := func(row, col int) color.RGBA {
		x := g.leftMargin + col*g.cell + g.cell/2
		y := g.gridTop + row*g.cell + g.cell/2
		r, gr, b, _ := img.At(x, y).RGBA()
		return color.RGBA{R: uint8(r >> 8), G: uint8(gr >> 8), B: uint8(b >> 8), A: 0xff}
	}

	// Diagonal (value 1.0) is the high color.
	if c := at(0, 0); c != (color.RGBA{R: 0x00, G: 0x46, B: 0xd4, A: 0xff}) {
		t.Errorf("cell (0,0) = %+v, expected high color", c)
	}
	// Value -1.0 is the low color.
	if c := at(2, 0); c != (color.RGBA{R: 0xcc, G: 0xda, B: 0xf6, A: 0xff}) {
		t.Errorf("cell (2,0) = %+v, expected low color", c)
	}
	// Value 0.0 is the exact midpoint.
	if c := at(1, 0); c != (color.RGBA{R: 0x66, G: 0x90, B: 0xe5, A: 0xff}) {
		t.Errorf("cell (1,0) = %+v, expected #6690e5", c)
	}
	// Above the diagonal stays background white.
	x := g.leftMargin + 2*g.cell + g.cell/2
	y := g.gridTop + g.cell/2
	r, gr, b, _ := img.At(x, y).RGBA()
	if uint8(r>>8) != 0xff || uint8(gr>>8) != 0xff || uint8(b>>8) != 0xff {
		t.Errorf("upper-triangle cell is not background: (%d, %d, %d)", r>>8, gr>>8, b>>8)
	}
}

func TestRenderGradientStripEndpoints(t *testing.T) {
	ds := testDataset()
	scheme := colormap.Scheme{High: "#0046d4", Low: "#ccdaf6"}
	opts := Options{Scale: 2, CellSize: 40, ShowLabels: false}

	img, err := Render(ds, scheme, opts)
	if err != nil {
		t.Fatal(err)
	}
	g := computeGeometry(ds, opts.normalized())

	y := g.stripTop + g.stripH/2
	r, gr, b, _ := img.At(g.leftMargin+1, y).RGBA()
	if uint8(r>>8) != 0xcc || uint8(gr>>8) != 0xda || uint8(b>>8) != 0xf6 {
		t.Errorf("strip left edge = (%d, %d, %d), expected low color", r>>8, gr>>8, b>>8)
	}
	r, gr, b, _ = img.At(g.leftMargin+g.gridSize-1, y).RGBA()
	if uint8(r>>8) != 0x00 || uint8(gr>>8) != 0x46 || uint8(b>>8) != 0xd4 {
		t.Errorf("strip right edge = (%d, %d, %d), expected high color", r>>8, gr>>8, b>>8)
	}
}

func TestRenderInvalidSchemeFallsBack(t *testing.T) {
	ds := testDataset()
	opts := Options{Scale: 1, CellSize: 10, ShowLabels: false}

	img, err := Render(ds, colormap.Scheme{High: "nope", Low: "also nope"}, opts)
	if err != nil {
		t.Fatal(err)
	}
	g := computeGeometry(ds, opts.normalized())
	r, _, b, _ := img.At(g.leftMargin+g.cell/2, g.gridTop+g.cell/2).RGBA()
	// Default high color #0046d4 at the diagonal.
	if uint8(r>>8) != 0x00 || uint8(b>>8) != 0xd4 {
		t.Errorf("expected default-scheme fallback, got r=%d b=%d", r>>8, b>>8)
	}
}

func TestRenderEmptyDataset(t *testing.T) {
	ds := &dataset.Dataset{Period: "90d"}
	if _, err := Render(ds, colormap.DefaultScheme(), DefaultOptions()); err == nil {
		t.Error("expected error for dataset with no assets")
	}
}

func TestEncodeFormats(t *testing.T) {
	img, err := Render(testDataset(), colormap.DefaultScheme(), Options{Scale: 1, CellSize: 8})
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := Encode(&buf, img, Options{Format: FormatPNG}); err != nil {
		t.Fatal(err)
	}
	if _, err := png.Decode(bytes.NewReader(buf.Bytes())); err != nil {
		t.Errorf("png output does not decode: %v", err)
	}

	buf.Reset()
	if err := Encode(&buf, img, Options{Format: FormatJPEG, Quality: 80}); err != nil {
		t.Fatal(err)
	}
	if _, err := jpeg.Decode(bytes.NewReader(buf.Bytes())); err != nil {
		t.Errorf("jpeg output does not decode: %v", err)
	}

	if err := Encode(&bytes.Buffer{}, img, Options{Format: "bmp"}); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	ds := testDataset()

	path, err := Save(dir, ds, colormap.DefaultScheme(), Options{Format: FormatPNG, Scale: 1, CellSize: 8})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(path, dir) {
		t.Errorf("path %q not under %q", path, dir)
	}
	if !strings.Contains(path, "correlation_90d_") || !strings.HasSuffix(path, ".png") {
		t.Errorf("unexpected filename %q", path)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if _, err := png.Decode(f); err != nil {
		t.Errorf("saved file does not decode as png: %v", err)
	}
}
