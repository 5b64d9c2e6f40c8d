package internal

import (
	"strings"
	"testing"
)

func TestSplitWords(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{in: "uno,dos,tres", want: []string{"uno", "dos", "tres"}},
		{in: "uno;dos\ntres", want: []string{"uno", "dos", "tres"}},
		{in: "  uno , \n\n dos ;; ", want: []string{"uno", "dos"}},
		{in: "", want: nil},
		{in: " ,;\n ", want: nil},
		{in: "solo", want: []string{"solo"}},
	}

	for _, tc := range cases {
		got := SplitWords(tc.in)
		if len(got) != len(tc.want) {
			t.Errorf("SplitWords(%q) = %v, want %v", tc.in, got, tc.want)
			continue
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Errorf("SplitWords(%q)[%d] = %q, want %q", tc.in, i, got[i], tc.want[i])
			}
		}
	}
}

func TestJoinSplitRoundTrip(t *testing.T) {
	words := []string{"algún", "ningún", "otro"}
	got := SplitWords(JoinWords(words))
	if strings.Join(got, "|") != strings.Join(words, "|") {
		t.Errorf("round trip changed words: %v -> %v", words, got)
	}
}

func TestCloudConfigValidate(t *testing.T) {
	valid := DefaultCloudConfig()
	if err := valid.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*CloudConfig)
	}{
		{"bad color", func(c *CloudConfig) { c.FinalColor = "magenta" }},
		{"stops too low", func(c *CloudConfig) { c.NumStops = 2 }},
		{"stops too high", func(c *CloudConfig) { c.NumStops = 11 }},
		{"width too small", func(c *CloudConfig) { c.Width = 100 }},
		{"height too large", func(c *CloudConfig) { c.Height = 9000 }},
		{"no words", func(c *CloudConfig) { c.Words = nil }},
	}
	for _, tc := range cases {
		cfg := DefaultCloudConfig()
		tc.mutate(&cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: expected validation error", tc.name)
		}
	}
}

func TestCloudConfigStops(t *testing.T) {
	cfg := DefaultCloudConfig()
	stops, err := cfg.Stops()
	if err != nil {
		t.Fatal(err)
	}
	if len(stops) != cfg.NumStops {
		t.Errorf("got %d stops, want %d", len(stops), cfg.NumStops)
	}
	if stops[len(stops)-1].Hex() != cfg.FinalColor {
		t.Errorf("last stop %s != configured final color %s", stops[len(stops)-1].Hex(), cfg.FinalColor)
	}
}
