//go:build go1.22

package splitmix64

import randv2 "math/rand/v2"

// Compile-time interface assertion. math/rand/v2 only exists from
// Go 1.22, so the assertion is guarded to keep older toolchains
// building.
var _ randv2.Source = (*Source)(nil)
