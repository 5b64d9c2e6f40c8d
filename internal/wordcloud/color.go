package wordcloud

import (
	"fmt"
	"image/color"
	"math"
	"math/rand"
	"strconv"
	"strings"
)

// darkenFactor scales the user-chosen final color toward black to derive
// the low end of the gradient.
const darkenFactor = 0.57

// RGB is an 8-bit-per-channel color. The gradient math works on plain RGB
// channels rather than a perceptual space so that a given final color always
// produces the same stop values regardless of terminal or display profile.
type RGB struct {
	R, G, B uint8
}

// ParseHex parses a "#rrggbb" or "rrggbb" color string.
func ParseHex(s string) (RGB, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return RGB{}, fmt.Errorf("invalid hex color %q: want 6 hex digits", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return RGB{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}, nil
}

// Hex formats the color as "#rrggbb".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// RGBA implements color.Color.
func (c RGB) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}.RGBA()
}

// DeriveStart returns the dark end of the gradient: each channel of the
// final color scaled by darkenFactor, truncated toward zero.
func DeriveStart(final RGB) RGB {
	return RGB{
		R: uint8(float64(final.R) * darkenFactor),
		G: uint8(float64(final.G) * darkenFactor),
		B: uint8(float64(final.B) * darkenFactor),
	}
}

// Stops returns n colors linearly interpolated, channel-wise, from the
// derived start color to the final color. The first stop is always the
// derived start and the last is always the final color.
func Stops(final RGB, n int) ([]RGB, error) {
	if n < 2 {
		return nil, fmt.Errorf("gradient needs at least 2 stops, got %d", n)
	}

	start := DeriveStart(final)
	stops := make([]RGB, n)
	for i := range n {
		t := float64(i) / float64(n-1)
		stops[i] = RGB{
			R: lerpChannel(start.R, final.R, t),
			G: lerpChannel(start.G, final.G, t),
			B: lerpChannel(start.B, final.B, t),
		}
	}
	return stops, nil
}

func lerpChannel(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}

// Picker selects a gradient stop uniformly at random for each placed word.
type Picker struct {
	stops []RGB
}

func NewPicker(stops []RGB) *Picker {
	return &Picker{stops: stops}
}

// Pick returns a random stop, or black when no stops are configured.
func (p *Picker) Pick(rng *rand.Rand) RGB {
	if len(p.stops) == 0 {
		return RGB{}
	}
	return p.stops[rng.Intn(len(p.stops))]
}
