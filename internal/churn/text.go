package churn

import "math/rand/v2"

const alphabet = "abcdefghijklmnopqrstuvwxyz"

// LowercaseSource draws letters uniformly from a..z.
type LowercaseSource struct {
	rng *rand.Rand
}

// NewLowercaseSource returns a source seeded from the runtime's random state.
func NewLowercaseSource() *LowercaseSource {
	return &LowercaseSource{rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// NewSeededLowercaseSource returns a source that yields the same text for the same seed.
func NewSeededLowercaseSource(seed uint64) *LowercaseSource {
	return &LowercaseSource{rng: rand.New(rand.NewPCG(seed, seed))}
}

// Text returns n random lowercase letters.
func (s *LowercaseSource) Text(n int) []byte {
	if n <= 0 {
		return []byte{}
	}
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = alphabet[s.rng.IntN(len(alphabet))]
	}
	return buf
}

func isLowercase(data []byte) bool {
	for _, b := range data {
		if b < 'a' || b > 'z' {
			return false
		}
	}
	return true
}
