package wordcloud

import (
	"math/rand"
	"testing"
)

func TestParseHex(t *testing.T) {
	cases := []struct {
		in      string
		want    RGB
		wantErr bool
	}{
		{in: "#ff00d3", want: RGB{R: 255, G: 0, B: 211}},
		{in: "ff00d3", want: RGB{R: 255, G: 0, B: 211}},
		{in: "  #FF00D3 ", want: RGB{R: 255, G: 0, B: 211}},
		{in: "#000000", want: RGB{}},
		{in: "#fff", wantErr: true},
		{in: "", wantErr: true},
		{in: "#gg0000", wantErr: true},
		{in: "#ff00d3aa", wantErr: true},
	}

	for _, tc := range cases {
		got, err := ParseHex(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseHex(%q): expected error, got %v", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseHex(%q): unexpected error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseHex(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestHexRoundTrip(t *testing.T) {
	c := RGB{R: 18, G: 52, B: 86}
	got, err := ParseHex(c.Hex())
	if err != nil {
		t.Fatalf("ParseHex(%q): %v", c.Hex(), err)
	}
	if got != c {
		t.Errorf("round trip changed color: %v -> %v", c, got)
	}
}

func TestDeriveStart(t *testing.T) {
	// 0.57 darkening, truncated toward zero, matches the fixed factor.
	got := DeriveStart(RGB{R: 255, G: 0, B: 211})
	want := RGB{R: 145, G: 0, B: 120}
	if got != want {
		t.Errorf("DeriveStart = %v, want %v", got, want)
	}

	if DeriveStart(RGB{}) != (RGB{}) {
		t.Errorf("DeriveStart(black) should stay black")
	}
}

func TestStopsEndpoints(t *testing.T) {
	final := RGB{R: 255, G: 0, B: 211}
	for _, n := range []int{2, 3, 5, 10} {
		stops, err := Stops(final, n)
		if err != nil {
			t.Fatalf("Stops(n=%d): %v", n, err)
		}
		if len(stops) != n {
			t.Fatalf("Stops(n=%d) returned %d stops", n, len(stops))
		}
		if stops[0] != DeriveStart(final) {
			t.Errorf("n=%d: first stop %v != derived start %v", n, stops[0], DeriveStart(final))
		}
		if stops[n-1] != final {
			t.Errorf("n=%d: last stop %v != final %v", n, stops[n-1], final)
		}
	}
}

func TestStopsMonotonic(t *testing.T) {
	stops, err := Stops(RGB{R: 200, G: 100, B: 50}, 8)
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i < len(stops); i++ {
		if stops[i].R < stops[i-1].R || stops[i].G < stops[i-1].G || stops[i].B < stops[i-1].B {
			t.Errorf("stop %d (%v) darker than stop %d (%v)", i, stops[i], i-1, stops[i-1])
		}
	}
}

func TestStopsTooFew(t *testing.T) {
	if _, err := Stops(RGB{R: 10}, 1); err == nil {
		t.Error("expected error for n=1")
	}
	if _, err := Stops(RGB{R: 10}, 0); err == nil {
		t.Error("expected error for n=0")
	}
}

func TestPickerFallsBackToBlack(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	p := NewPicker(nil)
	if got := p.Pick(rng); got != (RGB{}) {
		t.Errorf("empty picker returned %v, want black", got)
	}
}

func TestPickerOnlyReturnsStops(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	stops, err := Stops(RGB{R: 255, G: 128, B: 0}, 4)
	if err != nil {
		t.Fatal(err)
	}
	p := NewPicker(stops)
	members := make(map[RGB]bool, len(stops))
	for _, s := range stops {
		members[s] = true
	}
	for range 100 {
		if c := p.Pick(rng); !members[c] {
			t.Fatalf("Pick returned %v, not a gradient stop", c)
		}
	}
}
