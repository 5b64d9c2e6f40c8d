package wordcloud

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math/rand"
	"os"
	"path/filepath"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Generator renders word clouds from frequency maps. A Generator is safe
// for concurrent Render calls: font faces are built per call, not shared.
type Generator struct {
	opts Options
	fnt  *opentype.Font
}

// Result is a single rendered cloud.
type Result struct {
	Image      *image.RGBA
	Placements []Placement

	// Skipped lists words that could not be placed even at the minimum
	// font size.
	Skipped []string
}

// NewGenerator validates the options and parses the embedded Go Regular
// face used for all rasterization.
func NewGenerator(opts Options) (*Generator, error) {
	opts = opts.withDefaults()
	if err := opts.validate(); err != nil {
		return nil, err
	}
	fnt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse embedded font: %w", err)
	}
	return &Generator{opts: opts, fnt: fnt}, nil
}

// Render lays out and rasterizes one cloud. onPlaced, if non-nil, is called
// after each word is resolved (placed or skipped) with the running count,
// so callers can surface progress for large word lists.
func (g *Generator) Render(freqs map[string]int, rng *rand.Rand, onPlaced func(done, total int)) (*Result, error) {
	if len(freqs) == 0 {
		return nil, fmt.Errorf("no words to render")
	}

	words := byWeight(freqs)
	maxFreq := freqs[words[0]]
	canvas := image.Rect(0, 0, g.opts.Width, g.opts.Height)
	picker := NewPicker(g.opts.Stops)

	faces := make(map[float64]font.Face)
	defer func() {
		for _, f := range faces {
			_ = f.Close()
		}
	}()

	res := &Result{}
	var taken []image.Rectangle

	for i, word := range words {
		vertical := rng.Float64() >= g.opts.PreferHorizontal

		size := startSize(g.opts.MaxFontSize, freqs[word], maxFreq)
		var placed bool
		for size >= g.opts.MinFontSize {
			face, err := g.face(faces, size)
			if err != nil {
				return nil, err
			}

			w, h := measure(face, word)
			boxW, boxH := w, h
			if vertical {
				boxW, boxH = h, w
			}

			rect, ok := findPosition(boxW, boxH, g.opts.Margin, canvas, taken, rng)
			if ok {
				// taken holds the ungrown rects; the candidate is the one
				// grown by margin, so the gap between words is margin, not
				// twice that.
				taken = append(taken, rect)
				res.Placements = append(res.Placements, Placement{
					Word:     word,
					Bounds:   rect,
					Size:     size,
					Vertical: vertical,
					Color:    picker.Pick(rng),
				})
				placed = true
				break
			}
			size *= shrinkStep
		}
		if !placed {
			res.Skipped = append(res.Skipped, word)
		}
		if onPlaced != nil {
			onPlaced(i+1, len(words))
		}
	}

	img, err := g.rasterize(res.Placements, faces)
	if err != nil {
		return nil, err
	}
	res.Image = img
	return res, nil
}

func (g *Generator) face(cache map[float64]font.Face, size float64) (font.Face, error) {
	if f, ok := cache[size]; ok {
		return f, nil
	}
	f, err := opentype.NewFace(g.fnt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("build %vpx face: %w", size, err)
	}
	cache[size] = f
	return f, nil
}

// measure returns the pixel bounding box of a word drawn horizontally.
func measure(face font.Face, word string) (w, h int) {
	adv := font.MeasureString(face, word)
	m := face.Metrics()
	return adv.Ceil(), (m.Ascent + m.Descent).Ceil()
}

// rasterize draws all placements onto a white canvas.
func (g *Generator) rasterize(placements []Placement, faces map[float64]font.Face) (*image.RGBA, error) {
	img := image.NewRGBA(image.Rect(0, 0, g.opts.Width, g.opts.Height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	for _, p := range placements {
		face, ok := faces[p.Size]
		if !ok {
			return nil, fmt.Errorf("no face cached for size %v", p.Size)
		}
		if p.Vertical {
			drawVertical(img, p, face)
		} else {
			drawHorizontal(img, p, face)
		}
	}
	return img, nil
}

func drawHorizontal(dst *image.RGBA, p Placement, face font.Face) {
	dot := fixed.P(p.Bounds.Min.X, p.Bounds.Min.Y)
	dot.Y += face.Metrics().Ascent
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(color.RGBA{R: p.Color.R, G: p.Color.G, B: p.Color.B, A: 0xff}),
		Face: face,
		Dot:  dot,
	}
	d.DrawString(p.Word)
}

// drawVertical draws the word into a horizontal scratch image, rotates it a
// quarter turn, and composites the result at the placement bounds.
func drawVertical(dst *image.RGBA, p Placement, face font.Face) {
	w, h := measure(face, p.Word)
	scratch := image.NewRGBA(image.Rect(0, 0, w, h))
	d := font.Drawer{
		Dst:  scratch,
		Src:  image.NewUniform(color.RGBA{R: p.Color.R, G: p.Color.G, B: p.Color.B, A: 0xff}),
		Face: face,
		Dot:  fixed.Point26_6{Y: face.Metrics().Ascent},
	}
	d.DrawString(p.Word)

	rotated := rotateCCW(scratch)
	draw.Draw(dst, rotated.Bounds().Add(p.Bounds.Min), rotated, image.Point{}, draw.Over)
}

// rotateCCW rotates a quarter turn counter-clockwise, so vertical words read
// bottom-to-top.
func rotateCCW(src *image.RGBA) *image.RGBA {
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dy(), b.Dx()))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			dst.Set(y-b.Min.Y, b.Max.X-1-x, src.At(x, y))
		}
	}
	return dst
}

// EncodePNG writes the image as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

// WritePNG writes the image as a PNG file, creating parent directories as
// needed.
func WritePNG(path string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
