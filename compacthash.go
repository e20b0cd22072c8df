package compacthash

import (
	"encoding/binary"
	"hash"
	"math/bits"

	"go.dw1.io/compacthash/splitmix64"
)

// Compile-time interface assertions.
var _ hash.Hash = (*Hash)(nil)
var _ hash.Hash64 = (*Hash)(nil)

// Fixed constants of the fingerprint format. These are part of the
// compatibility contract: changing any of them changes every output.
//
// increment doubles as the splitmix64 state increment and the length
// key; mulK and xorK drive the compression step (constants from
// wyhash); avK and the 25/47 rotations and 29/32 shifts parameterize
// the final avalanche.
const (
	increment = uint64(0x9e3779b97f4a7c15)
	mulK      = uint64(0x2d358dccaa6c78a5)
	xorK      = uint64(0x8bb84b93962eacc9)
	avK       = uint64(0xc2b2ae3d27d4eb4f)
)

// Hash is a streaming 64-bit hasher. Each instance is independently
// owned; concurrent use requires one instance per goroutine.
//
// Sum64 is a pure projection of the current state: it may be called
// any number of times, does not reset the hasher, and writes may
// resume afterwards to continue the running hash.
type Hash struct {
	lane [2]uint64
	n    uint64
	seed uint64
}

// New returns a hasher with seed 0.
func New() *Hash { return NewWithSeed(0) }

// NewWithSeed returns a hasher whose lanes are derived from seed.
// Distinct seeds yield statistically unrelated initial states.
func NewWithSeed(seed uint64) *Hash {
	h := &Hash{seed: seed}
	h.Reset()
	return h
}

// Reset restores the hasher to its initial seeded state.
func (h *Hash) Reset() {
	g := splitmix64.New(h.seed)
	h.lane[0] = g.Uint64()
	h.lane[1] = g.Uint64()
	h.n = 0
}

// Write folds p into the hash state. It never fails.
//
// p is consumed in 16-byte blocks, one little-endian 8-byte word per
// lane. A trailing 1-15 byte block is zero-padded to 16 bytes and
// folded like a full block, so each Write call is a block boundary;
// sensitivity to appended zero bytes comes from the length counter at
// finalization, not from the padding.
func (h *Hash) Write(p []byte) (int, error) {
	written := len(p)
	h.n += uint64(written)
	for len(p) >= 16 {
		h.lane[0] = compress(h.lane[0], binary.LittleEndian.Uint64(p))
		h.lane[1] = compress(h.lane[1], binary.LittleEndian.Uint64(p[8:]))
		p = p[16:]
	}
	if len(p) > 0 {
		var tail [16]byte
		copy(tail[:], p)
		h.lane[0] = compress(h.lane[0], binary.LittleEndian.Uint64(tail[:]))
		h.lane[1] = compress(h.lane[1], binary.LittleEndian.Uint64(tail[8:]))
	}
	return written, nil
}

// Sum64 returns the fingerprint of everything written so far without
// mutating the hasher.
func (h *Hash) Sum64() uint64 {
	v := compress(h.lane[0], h.lane[1])
	v ^= h.n * increment
	return avalanche(v)
}

// Sum appends the big-endian fingerprint to b.
func (h *Hash) Sum(b []byte) []byte {
	var out [8]byte
	binary.BigEndian.PutUint64(out[:], h.Sum64())
	return append(b, out[:]...)
}

// Size returns the fingerprint size in bytes.
func (h *Hash) Size() int { return 8 }

// BlockSize returns the ingestion block size.
func (h *Hash) BlockSize() int { return 16 }

// compress folds two words into one through a 128-bit-widening
// multiply. bits.Mul64 is the required 64x64->128 platform capability;
// the reduction is deliberately non-invertible.
func compress(x, y uint64) uint64 {
	m := (x + y) * mulK
	hi, lo := bits.Mul64(m, m^xorK)
	return m ^ xorK ^ hi ^ lo
}

// avalanche diffuses every input bit of v across the output.
func avalanche(v uint64) uint64 {
	v ^= bits.RotateLeft64(v, 25) ^ bits.RotateLeft64(v, 47)
	v *= avK
	v ^= v >> 29
	v *= avK
	return v ^ v>>32
}
