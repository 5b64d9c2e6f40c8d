package wordcloud

import (
	"math/rand"
	"testing"
)

func TestAssignVariedEmpty(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	freqs := AssignVaried(nil, rng)
	if len(freqs) != 0 {
		t.Errorf("expected empty map for empty input, got %v", freqs)
	}
}

func TestAssignVariedSingleWord(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for range 50 {
		freqs := AssignVaried([]string{"solo"}, rng)
		if len(freqs) != 1 {
			t.Fatalf("expected 1 entry, got %d", len(freqs))
		}
		if f := freqs["solo"]; f < 9 || f > 10 {
			t.Errorf("single word should land in the big tier, got %d", f)
		}
	}
}

func TestAssignVariedTiers(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	words := []string{"uno", "dos", "tres", "cuatro", "cinco", "seis", "siete", "ocho"}

	for range 100 {
		freqs := AssignVaried(words, rng)
		if len(freqs) != len(words) {
			t.Fatalf("expected %d entries, got %d", len(words), len(freqs))
		}

		var big, medium, small int
		for w, f := range freqs {
			switch {
			case f >= 9 && f <= 10:
				big++
			case f >= 5 && f <= 6:
				medium++
			case f >= 1 && f <= 2:
				small++
			default:
				t.Fatalf("word %q got out-of-tier weight %d", w, f)
			}
		}

		if big != 1 && big != 2 {
			t.Errorf("expected 1 or 2 big words, got %d", big)
		}
		if medium != 1 {
			t.Errorf("expected exactly 1 medium word, got %d", medium)
		}
		if small != len(words)-big-medium {
			t.Errorf("tier counts do not add up: big=%d medium=%d small=%d", big, medium, small)
		}
	}
}

func TestAssignVariedTwoWords(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	sawTwoBig := false
	for range 200 {
		freqs := AssignVaried([]string{"a", "b"}, rng)
		if len(freqs) != 2 {
			t.Fatalf("expected 2 entries, got %d", len(freqs))
		}
		big := 0
		for _, f := range freqs {
			if f >= 9 {
				big++
			}
		}
		if big == 2 {
			sawTwoBig = true
		}
	}
	// With num_big random in {1,2} both words should sometimes be big.
	if !sawTwoBig {
		t.Error("never saw both words in the big tier across 200 runs")
	}
}

func TestVariationsCountAndIndependence(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	words := []string{"alpha", "beta", "gamma", "delta", "epsilon"}

	variations := Variations(words, rng)
	if len(variations) != VariationCount {
		t.Fatalf("expected %d variations, got %d", VariationCount, len(variations))
	}

	distinct := false
	for i := 1; i < len(variations); i++ {
		if !equalFreqs(variations[0], variations[i]) {
			distinct = true
		}
		if len(variations[i]) != len(words) {
			t.Errorf("variation %d has %d entries, want %d", i, len(variations[i]), len(words))
		}
	}
	if !distinct {
		t.Error("all five variations identical; randomization looks broken")
	}
}

func equalFreqs(a, b map[string]int) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if b[k] != v {
			return false
		}
	}
	return true
}
