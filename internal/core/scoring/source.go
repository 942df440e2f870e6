package scoring

import (
	cryptorand "crypto/rand"
	"math/rand/v2"
)

// Source is the random stream trials draw from
// a seeded Source makes scoring reproducible, an entropy Source does not;
// the scorer cannot tell them apart
type Source interface {
	// NormFloat64 returns a standard normal sample
	NormFloat64() float64
	// IntN returns a uniform int in [0, n)
	IntN(n int) int
}

// NewSeededSource returns a PCG stream fully determined by seed
func NewSeededSource(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// NewEntropySource returns a ChaCha8 stream keyed from the OS entropy pool
func NewEntropySource() Source {
	var key [32]byte
	// crypto/rand.Read never returns an error; it crashes the program instead
	cryptorand.Read(key[:])
	return rand.New(rand.NewChaCha8(key))
}

// NewSource picks a seeded stream when seed is set and an entropy stream otherwise
func NewSource(seed *uint64) Source {
	if seed != nil {
		return NewSeededSource(*seed)
	}
	return NewEntropySource()
}

// shuffle permutes idx in place (Fisher-Yates)
func shuffle(src Source, idx []int) {
	for i := len(idx) - 1; i > 0; i-- {
		j := src.IntN(i + 1)
		idx[i], idx[j] = idx[j], idx[i]
	}
}
