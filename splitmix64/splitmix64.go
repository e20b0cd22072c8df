package splitmix64

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
)

// increment is the odd golden-gamma constant (2^64 / phi). Oddness
// guarantees the additive state walk has full period 2^64.
const increment = 0x9e3779b97f4a7c15

// Source is a SplitMix64 generator. The zero value is a valid source
// seeded with 0. A Source must not be shared between goroutines
// without external synchronization.
type Source struct {
	state uint64
}

// New returns a deterministic Source. Two Sources constructed with the
// same seed produce identical output sequences.
func New(seed uint64) *Source { return &Source{state: seed} }

// NewFromReader returns a Source seeded with 8 bytes drawn from r.
// The read error, if any, is returned as-is wrapped; no fallback seed
// is substituted.
func NewFromReader(r io.Reader) (*Source, error) {
	var buf [8]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return nil, fmt.Errorf("splitmix64: read seed entropy: %w", err)
	}
	return &Source{state: binary.LittleEndian.Uint64(buf[:])}, nil
}

// NewRandom returns a Source seeded from the operating system's
// entropy source. It fails if and only if the entropy read fails.
func NewRandom() (*Source, error) {
	return NewFromReader(rand.Reader)
}

// Uint64 advances the state by the increment and returns the finalized
// value of the advanced state. The raw state is never exposed.
func (s *Source) Uint64() uint64 {
	s.state += increment
	z := s.state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// Discard advances the state as if Uint64 had been called n times,
// in constant time.
func (s *Source) Discard(n uint64) {
	s.state += n * increment
}
