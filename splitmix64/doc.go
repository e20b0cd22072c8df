// Package splitmix64 implements the SplitMix64 pseudo-random number
// generator.
//
// SplitMix64 advances its 64-bit state by a fixed odd increment and
// runs the advanced state through a two-round multiply–xorshift
// finalizer, so the state walks all 2^64 residues before repeating
// and skipping ahead is a single multiply-add. It is the conventional
// generator for deriving unrelated 64-bit values from a single seed,
// which is how [go.dw1.io/compacthash] initializes its lanes.
//
// A Source satisfies the Source interface of [math/rand/v2] and can
// seed stdlib generators directly. It is not cryptographically secure.
package splitmix64
