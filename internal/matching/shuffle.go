package matching

import (
	"math/rand/v2"
	"slices"
)

// Shuffler permutes n elements through swap. *rand.Rand satisfies it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// NewShuffler returns a PCG-backed shuffler. A zero seed draws a random one.
func NewShuffler(seed uint64) Shuffler {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed))
}

// deal permutes the terms, then independently permutes the descriptions
// of the permuted terms. A nil shuffler keeps the key order.
func deal(key AnswerKey, s Shuffler) ([]Term, []string) {
	terms := slices.Clone(key.terms)
	if s != nil {
		s.Shuffle(len(terms), func(i, j int) {
			terms[i], terms[j] = terms[j], terms[i]
		})
	}

	descriptions := make([]string, len(terms))
	for i, t := range terms {
		descriptions[i] = t.Description
	}
	if s != nil {
		s.Shuffle(len(descriptions), func(i, j int) {
			descriptions[i], descriptions[j] = descriptions[j], descriptions[i]
		})
	}

	return terms, descriptions
}
