package wordcloud

import (
	"fmt"
	"image"
	"math"
	"math/rand"
	"sort"
)

// Canvas dimension bounds, shared with the configuration form.
const (
	MinDimension = 200
	MaxDimension = 6000
)

const (
	defaultMargin           = 10
	defaultPreferHorizontal = 0.3
	defaultMinFontSize      = 4.0

	// shrinkStep is applied to the font size each time a word fails to
	// find a free position.
	shrinkStep = 0.9

	// Spiral walk parameters. The radius grows fast enough to sweep the
	// whole canvas from any starting point within maxSpiralSteps.
	spiralDTheta    = 0.5
	spiralGrowth    = 2.0
	maxSpiralSteps  = 2500
	maxStartRetries = 10
)

// Options configures a cloud layout. Zero values for Margin,
// PreferHorizontal, MinFontSize and MaxFontSize pick defaults.
type Options struct {
	Width  int
	Height int

	// Margin is the minimum pixel gap kept around each placed word.
	Margin int

	// PreferHorizontal is the probability that a word is laid out
	// horizontally; the rest are rotated 90 degrees.
	PreferHorizontal float64

	MinFontSize float64
	MaxFontSize float64

	// Stops is the color gradient placed words draw from.
	Stops []RGB
}

func (o Options) withDefaults() Options {
	if o.Margin == 0 {
		o.Margin = defaultMargin
	}
	if o.PreferHorizontal == 0 {
		o.PreferHorizontal = defaultPreferHorizontal
	}
	if o.MinFontSize == 0 {
		o.MinFontSize = defaultMinFontSize
	}
	if o.MaxFontSize == 0 {
		o.MaxFontSize = float64(o.Height) / 4
	}
	return o
}

func (o Options) validate() error {
	if o.Width < MinDimension || o.Width > MaxDimension {
		return fmt.Errorf("width %d out of range [%d, %d]", o.Width, MinDimension, MaxDimension)
	}
	if o.Height < MinDimension || o.Height > MaxDimension {
		return fmt.Errorf("height %d out of range [%d, %d]", o.Height, MinDimension, MaxDimension)
	}
	return nil
}

// Placement records where a single word ended up on the canvas.
type Placement struct {
	Word     string
	Bounds   image.Rectangle
	Size     float64
	Vertical bool
	Color    RGB
}

// byWeight orders words by descending frequency; ties break
// lexicographically so layout order is stable for a fixed seed.
func byWeight(freqs map[string]int) []string {
	words := make([]string, 0, len(freqs))
	for w := range freqs {
		words = append(words, w)
	}
	sort.Slice(words, func(i, j int) bool {
		if freqs[words[i]] != freqs[words[j]] {
			return freqs[words[i]] > freqs[words[j]]
		}
		return words[i] < words[j]
	})
	return words
}

// startSize scales the font size by the square root of the relative
// frequency, which keeps low-weight words legible next to the top word.
func startSize(maxFont float64, freq, maxFreq int) float64 {
	return maxFont * math.Sqrt(float64(freq)/float64(maxFreq))
}

// findPosition walks an archimedean spiral from a random starting point and
// returns the first rectangle of the given size that fits the canvas without
// touching any occupied region. taken holds the ungrown rects of placed
// words; only the candidate is inflated by margin when testing overlap.
func findPosition(w, h, margin int, canvas image.Rectangle, taken []image.Rectangle, rng *rand.Rand) (image.Rectangle, bool) {
	boxW := w + 2*margin
	boxH := h + 2*margin
	if boxW > canvas.Dx() || boxH > canvas.Dy() {
		return image.Rectangle{}, false
	}

	for retry := 0; retry < maxStartRetries; retry++ {
		startX := rng.Intn(canvas.Dx()-boxW+1) + margin
		startY := rng.Intn(canvas.Dy()-boxH+1) + margin

		for step := 0; step < maxSpiralSteps; step++ {
			theta := float64(step) * spiralDTheta
			r := spiralGrowth * theta
			x := startX + int(r*math.Cos(theta))
			y := startY + int(r*math.Sin(theta))

			rect := image.Rect(x, y, x+w, y+h)
			grown := rect.Inset(-margin)
			if !grown.In(canvas) {
				continue
			}
			if overlapsAny(grown, taken) {
				continue
			}
			return rect, true
		}
	}
	return image.Rectangle{}, false
}

func overlapsAny(r image.Rectangle, taken []image.Rectangle) bool {
	for _, t := range taken {
		if r.Overlaps(t) {
			return true
		}
	}
	return false
}
