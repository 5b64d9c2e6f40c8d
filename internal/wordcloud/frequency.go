package wordcloud

import "math/rand"

// VariationCount is the number of independently-randomized frequency sets
// generated for a word list.
const VariationCount = 5

// AssignVaried assigns each word a random weight tier: one or two words get
// a large weight (9-10), the next word a medium weight (5-6), and all
// remaining words a small weight (1-2). The tiers are chosen over a shuffled
// copy of the input, so repeated calls emphasize different words.
func AssignVaried(words []string, rng *rand.Rand) map[string]int {
	if len(words) == 0 {
		return map[string]int{}
	}

	shuffled := make([]string, len(words))
	copy(shuffled, words)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	numBig := 1 + rng.Intn(2)
	if numBig > len(shuffled) {
		numBig = len(shuffled)
	}

	freqs := make(map[string]int, len(shuffled))
	for i, w := range shuffled {
		switch {
		case i < numBig:
			freqs[w] = 9 + rng.Intn(2)
		case i == numBig:
			freqs[w] = 5 + rng.Intn(2)
		default:
			freqs[w] = 1 + rng.Intn(2)
		}
	}
	return freqs
}

// Variations returns VariationCount independent frequency assignments for
// the same word list.
func Variations(words []string, rng *rand.Rand) []map[string]int {
	variations := make([]map[string]int, VariationCount)
	for i := range variations {
		variations[i] = AssignVaried(words, rng)
	}
	return variations
}
