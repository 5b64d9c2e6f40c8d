package wordcloud

import (
	"bytes"
	"image"
	"image/png"
	"math/rand"
	"os"
	"path/filepath"
	"testing"
)

func testOptions() Options {
	return Options{
		Width:  400,
		Height: 300,
		Stops:  []RGB{{R: 145, B: 120}, {R: 200, B: 165}, {R: 255, B: 211}},
	}
}

func TestNewGeneratorRejectsBadDimensions(t *testing.T) {
	for _, opts := range []Options{
		{Width: 100, Height: 300},
		{Width: 400, Height: 100},
		{Width: 7000, Height: 300},
		{Width: 400, Height: 7000},
	} {
		if _, err := NewGenerator(opts); err == nil {
			t.Errorf("expected error for %dx%d", opts.Width, opts.Height)
		}
	}
}

func TestRenderEmpty(t *testing.T) {
	g, err := NewGenerator(testOptions())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := g.Render(map[string]int{}, rand.New(rand.NewSource(1)), nil); err == nil {
		t.Error("expected error for empty frequency map")
	}
}

func TestRenderBasic(t *testing.T) {
	g, err := NewGenerator(testOptions())
	if err != nil {
		t.Fatal(err)
	}

	freqs := map[string]int{"grande": 10, "medio": 5, "uno": 2, "dos": 1, "tres": 1}
	res, err := g.Render(freqs, rand.New(rand.NewSource(99)), nil)
	if err != nil {
		t.Fatal(err)
	}

	if got := res.Image.Bounds(); got.Dx() != 400 || got.Dy() != 300 {
		t.Errorf("image size %v, want 400x300", got)
	}
	if len(res.Placements) == 0 {
		t.Fatal("no words placed")
	}
	if len(res.Placements)+len(res.Skipped) != len(freqs) {
		t.Errorf("placed %d + skipped %d != %d words",
			len(res.Placements), len(res.Skipped), len(freqs))
	}

	// Top-weight word is laid out first and must always fit.
	if res.Placements[0].Word != "grande" {
		t.Errorf("first placement is %q, want the top-weight word", res.Placements[0].Word)
	}

	// Background stays white where nothing is drawn; something must be drawn.
	if c := res.Image.RGBAAt(0, 0); c.R != 255 || c.G != 255 || c.B != 255 {
		t.Errorf("corner pixel %v, want white background", c)
	}
	if !hasInk(res.Image) {
		t.Error("rendered image has no non-white pixels")
	}
}

func TestRenderPlacementsDisjoint(t *testing.T) {
	g, err := NewGenerator(testOptions())
	if err != nil {
		t.Fatal(err)
	}

	freqs := map[string]int{"alpha": 9, "beta": 6, "gamma": 2, "delta": 2, "eps": 1, "zeta": 1}
	res, err := g.Render(freqs, rand.New(rand.NewSource(5)), nil)
	if err != nil {
		t.Fatal(err)
	}

	canvas := res.Image.Bounds()
	for i, p := range res.Placements {
		if !p.Bounds.In(canvas) {
			t.Errorf("placement %q bounds %v outside canvas", p.Word, p.Bounds)
		}
		for j := i + 1; j < len(res.Placements); j++ {
			if p.Bounds.Overlaps(res.Placements[j].Bounds) {
				t.Errorf("placements %q and %q overlap: %v vs %v",
					p.Word, res.Placements[j].Word, p.Bounds, res.Placements[j].Bounds)
			}
		}
	}
}

func TestRenderKeepsMarginBetweenWords(t *testing.T) {
	g, err := NewGenerator(testOptions())
	if err != nil {
		t.Fatal(err)
	}

	freqs := map[string]int{"alto": 10, "medio": 6, "bajo": 3, "uno": 1, "dos": 1, "tres": 1}
	res, err := g.Render(freqs, rand.New(rand.NewSource(17)), nil)
	if err != nil {
		t.Fatal(err)
	}

	// The margin is a single gap between word boxes, not one per word.
	for i, p := range res.Placements {
		grown := p.Bounds.Inset(-defaultMargin)
		for j := i + 1; j < len(res.Placements); j++ {
			if grown.Overlaps(res.Placements[j].Bounds) {
				t.Errorf("%q and %q closer than %dpx: %v vs %v",
					p.Word, res.Placements[j].Word, defaultMargin,
					p.Bounds, res.Placements[j].Bounds)
			}
		}
	}
}

func TestRenderUsesOnlyGradientColors(t *testing.T) {
	opts := testOptions()
	g, err := NewGenerator(opts)
	if err != nil {
		t.Fatal(err)
	}

	res, err := g.Render(map[string]int{"palabra": 10, "otra": 3}, rand.New(rand.NewSource(2)), nil)
	if err != nil {
		t.Fatal(err)
	}
	members := make(map[RGB]bool, len(opts.Stops))
	for _, s := range opts.Stops {
		members[s] = true
	}
	for _, p := range res.Placements {
		if !members[p.Color] {
			t.Errorf("placement %q colored %v, not a gradient stop", p.Word, p.Color)
		}
	}
}

func TestRenderProgressCallback(t *testing.T) {
	g, err := NewGenerator(testOptions())
	if err != nil {
		t.Fatal(err)
	}

	var calls []int
	freqs := map[string]int{"a": 10, "b": 5, "c": 1}
	if _, err := g.Render(freqs, rand.New(rand.NewSource(1)), func(done, total int) {
		if total != len(freqs) {
			t.Errorf("total = %d, want %d", total, len(freqs))
		}
		calls = append(calls, done)
	}); err != nil {
		t.Fatal(err)
	}

	if len(calls) != len(freqs) {
		t.Fatalf("callback fired %d times, want %d", len(calls), len(freqs))
	}
	for i, done := range calls {
		if done != i+1 {
			t.Errorf("call %d reported done=%d", i, done)
		}
	}
}

func TestRenderDeterministicForSeed(t *testing.T) {
	g, err := NewGenerator(testOptions())
	if err != nil {
		t.Fatal(err)
	}
	freqs := map[string]int{"x": 10, "y": 5, "z": 1}

	a, err := g.Render(freqs, rand.New(rand.NewSource(11)), nil)
	if err != nil {
		t.Fatal(err)
	}
	b, err := g.Render(freqs, rand.New(rand.NewSource(11)), nil)
	if err != nil {
		t.Fatal(err)
	}

	if len(a.Placements) != len(b.Placements) {
		t.Fatalf("placement counts differ: %d vs %d", len(a.Placements), len(b.Placements))
	}
	for i := range a.Placements {
		if a.Placements[i] != b.Placements[i] {
			t.Errorf("placement %d differs: %+v vs %+v", i, a.Placements[i], b.Placements[i])
		}
	}
}

func TestWritePNG(t *testing.T) {
	g, err := NewGenerator(testOptions())
	if err != nil {
		t.Fatal(err)
	}
	res, err := g.Render(map[string]int{"hola": 10}, rand.New(rand.NewSource(1)), nil)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := EncodePNG(&buf, res.Image); err != nil {
		t.Fatal(err)
	}
	if _, err := png.Decode(bytes.NewReader(buf.Bytes())); err != nil {
		t.Fatalf("encoded stream is not a valid PNG: %v", err)
	}

	path := filepath.Join(t.TempDir(), "out", "wordcloud_variation_1.png")
	if err := WritePNG(path, res.Image); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	decoded, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("written file is not a valid PNG: %v", err)
	}
	if b := decoded.Bounds(); b.Dx() != 400 || b.Dy() != 300 {
		t.Errorf("decoded size %v, want full 400x300 resolution", b)
	}
}

func hasInk(img *image.RGBA) bool {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := img.RGBAAt(x, y)
			if c.R != 255 || c.G != 255 || c.B != 255 {
				return true
			}
		}
	}
	return false
}
