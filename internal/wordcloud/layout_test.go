package wordcloud

import (
	"image"
	"math/rand"
	"testing"
)

func TestFindPositionRejectsTooTight(t *testing.T) {
	canvas := image.Rect(0, 0, 200, 200)
	taken := []image.Rectangle{image.Rect(0, 0, 200, 100)}

	// Below a half-full canvas an 85px word cannot keep a 10px gap on both
	// sides: 100 + 10 + 85 + 10 > 200.
	if _, ok := findPosition(180, 85, 10, canvas, taken, rand.New(rand.NewSource(1))); ok {
		t.Error("found a position that cannot honor the margin")
	}
}

func TestFindPositionKeepsMarginGap(t *testing.T) {
	canvas := image.Rect(0, 0, 200, 200)
	taken := []image.Rectangle{image.Rect(0, 0, 50, 50)}

	rect, ok := findPosition(60, 60, 10, canvas, taken, rand.New(rand.NewSource(2)))
	if !ok {
		t.Fatal("no position found on a mostly free canvas")
	}
	grown := rect.Inset(-10)
	if grown.Overlaps(taken[0]) {
		t.Errorf("placement %v closer than the margin to occupied space", rect)
	}
	if !grown.In(canvas) {
		t.Errorf("margin around placement %v crosses the canvas edge", rect)
	}
}

func TestFindPositionRejectsOversized(t *testing.T) {
	canvas := image.Rect(0, 0, 200, 200)
	if _, ok := findPosition(200, 50, 10, canvas, nil, rand.New(rand.NewSource(1))); ok {
		t.Error("word wider than the canvas should not place")
	}
}
