package compacthash

import (
	"encoding/binary"

	"go.dw1.io/compacthash/splitmix64"
)

// Sum64 returns the fingerprint of data with seed 0.
func Sum64(data []byte) uint64 { return Sum64WithSeed(data, 0) }

// Sum64WithSeed returns the fingerprint of data with the provided seed.
func Sum64WithSeed(data []byte, seed uint64) uint64 {
	h := NewWithSeed(seed)
	h.Write(data)
	return h.Sum64()
}

// SumWords returns n independent fingerprints of data with seed 0.
func SumWords(data []byte, n int) []uint64 {
	return SumWordsWithSeed(data, n, 0)
}

// SumWordsWithSeed returns n independent fingerprints of data.
//
// Word i is the fingerprint of data followed by the 8 little-endian
// bytes of i, hashed under a per-word seed drawn from a single
// splitmix64 source seeded with seed. The index suffix keeps words at
// different positions distinct even for identical content; the words
// are statistically independent, nothing stronger. n <= 0 yields nil.
func SumWordsWithSeed(data []byte, n int, seed uint64) []uint64 {
	if n <= 0 {
		return nil
	}
	out := make([]uint64, n)
	g := splitmix64.New(seed)
	var idx [8]byte
	for i := range out {
		h := NewWithSeed(g.Uint64())
		h.Write(data)
		binary.LittleEndian.PutUint64(idx[:], uint64(i))
		h.Write(idx[:])
		out[i] = h.Sum64()
	}
	return out
}
