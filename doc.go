// Package compacthash provides a compact, seedable 64-bit
// non-cryptographic hash.
//
// The engine keeps two independent 64-bit lanes derived from the seed
// via [go.dw1.io/compacthash/splitmix64] and consumes input in
// 16-byte blocks, one 8-byte little-endian word per lane, through a
// 128-bit-widening compression step. Finalization merges the lanes,
// keys in the total byte count, and runs an avalanche mix, so the
// fingerprint is sensitive to both content and declared length.
//
// It offers a streaming hasher that satisfies [hash.Hash64], one-shot
// helpers, and a multi-word derivation for callers that need several
// independent fingerprints of the same input. Fingerprints are stable
// across platforms and releases; they are not collision resistant
// against adversarial inputs and must not be used where a keyed or
// cryptographic hash is required.
package compacthash
