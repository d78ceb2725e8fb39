// Package colormap maps correlation values in [-1, 1] onto a two-color
// gradient. It owns hex parsing/formatting and the linear interpolation used
// by the grid renderer, the legend, and the raster exporter.
package colormap

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
)

// Default endpoint colors: a saturated blue for correlation +1 and a pale
// blue for correlation -1.
const (
	DefaultHigh = "#0046d4"
	DefaultLow  = "#ccdaf6"
)

// hexPattern accepts exactly six hex digits with an optional leading '#'.
// Three-digit shorthand and named colors are not supported.
var hexPattern = regexp.MustCompile(`^#?([0-9A-Fa-f]{6})$`)

// Color is an RGB triple. Channels are float64 so interpolation results keep
// their fractional part until Hex encodes them.
type Color struct {
	R, G, B float64
}

// ParseHex parses a "#rrggbb" string (case-insensitive, '#' optional).
// Returns ok=false for anything that is not exactly six hex digits.
func ParseHex(s string) (Color, bool) {
	m := hexPattern.FindStringSubmatch(s)
	if m == nil {
		return Color{}, false
	}
	v, err := strconv.ParseUint(m[1], 16, 32)
	if err != nil {
		return Color{}, false
	}
	return Color{
		R: float64(v >> 16 & 0xff),
		G: float64(v >> 8 & 0xff),
		B: float64(v & 0xff),
	}, true
}

// Hex encodes the color as lowercase "#rrggbb". Channels are rounded to the
// nearest integer and clamped to [0, 255] so out-of-range intermediate math
// can never produce malformed hex.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", channelByte(c.R), channelByte(c.G), channelByte(c.B))
}

func channelByte(v float64) uint8 {
	r := math.Round(v)
	if r < 0 {
		return 0
	}
	if r > 255 {
		return 255
	}
	return uint8(r)
}

// Interpolate blends two hex colors channel-wise: A + (B-A)*t. t is not
// clamped here; callers clamp before calling. The result passes through Hex,
// so fractional channels are rounded, not truncated.
//
// Malformed hex input is the one hard failure in this package: a wrong color
// rendered silently would corrupt the whole heatmap without indication.
func Interpolate(a, b string, t float64) (string, error) {
	ca, ok := ParseHex(a)
	if !ok {
		return "", fmt.Errorf("interpolate: invalid hex color %q", a)
	}
	cb, ok := ParseHex(b)
	if !ok {
		return "", fmt.Errorf("interpolate: invalid hex color %q", b)
	}
	return Color{
		R: ca.R + (cb.R-ca.R)*t,
		G: ca.G + (cb.G-ca.G)*t,
		B: ca.B + (cb.B-ca.B)*t,
	}.Hex(), nil
}

// Scheme is the user-configurable pair of endpoint colors. It is passed
// explicitly into every mapping call; there is no ambient color state.
type Scheme struct {
	High string // color at correlation +1
	Low  string // color at correlation -1
}

// DefaultScheme returns the built-in blue gradient.
func DefaultScheme() Scheme {
	return Scheme{High: DefaultHigh, Low: DefaultLow}
}

// Valid reports whether both endpoints parse as six-digit hex.
func (s Scheme) Valid() bool {
	_, okH := ParseHex(s.High)
	_, okL := ParseHex(s.Low)
	return okH && okL
}

// ForValue maps a correlation value onto the scheme's gradient.
// The value is normalized with t = clamp((v+1)/2, 0, 1); out-of-domain
// values clamp silently. The 1-t inversion keeps High at v = +1 so callers
// pass (high, low) in the intuitive order.
func ForValue(v float64, scheme Scheme) (string, error) {
	t := clamp01((v + 1) / 2)
	return Interpolate(scheme.High, scheme.Low, 1-t)
}

// ColorFor is the rendering-layer entry point: on a malformed scheme it
// falls back to the default colors instead of propagating the error, so the
// viewer always has something to draw.
func (s Scheme) ColorFor(v float64) string {
	hex, err := ForValue(v, s)
	if err != nil {
		hex, _ = ForValue(v, DefaultScheme())
	}
	return hex
}

// Swatches returns n evenly spaced colors from Low to High: the first equals
// the low color, the last equals the high color. n=8 produces the discrete
// legend dots, n=100 the continuous gradient strip.
func Swatches(scheme Scheme, n int) ([]string, error) {
	if n < 2 {
		return nil, fmt.Errorf("swatches: need at least 2 steps, got %d", n)
	}
	out := make([]string, n)
	for i := range out {
		t := float64(i) / float64(n-1)
		hex, err := Interpolate(scheme.High, scheme.Low, 1-t)
		if err != nil {
			return nil, err
		}
		out[i] = hex
	}
	return out, nil
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
