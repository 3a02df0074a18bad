package similarity

import (
	"hash/fnv"
	"math"
)

// NumPermutations is the number of hash permutations in a signature.
const NumPermutations = 128

// Signature is a MinHash sketch over a shingle set. The fraction of
// agreeing slots between two signatures estimates the Jaccard similarity
// of the underlying sets.
//
// An empty shingle set yields the empty signature (all slots at the
// maximum value); two empty sets therefore estimate as identical.
type Signature [NumPermutations]uint64

// permutationSalts holds one fixed salt per signature slot. The salts are
// generated once from a fixed seed with splitmix64 so signatures are
// reproducible across runs, builds, and platforms.
var permutationSalts = func() [NumPermutations]uint64 {
	var salts [NumPermutations]uint64
	state := uint64(0x9E3779B97F4A7C15)
	for i := range salts {
		state += 0x9E3779B97F4A7C15
		z := state
		z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
		z = (z ^ (z >> 27)) * 0x94D049BB133111EB
		salts[i] = z ^ (z >> 31)
	}
	return salts
}()

// hashToken hashes one shingle token with 64-bit FNV-1a.
func hashToken(token string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(token))
	return h.Sum64()
}

// permute applies the i-th permutation to a token hash. The salt XOR
// followed by a multiply-shift mix approximates an independent hash
// function per slot.
func permute(h, salt uint64) uint64 {
	x := h ^ salt
	x *= 0xFF51AFD7ED558CCD
	x ^= x >> 33
	return x
}

// NewSignature computes the MinHash signature of a shingle set.
func NewSignature(shingles map[string]struct{}) Signature {
	var sig Signature
	for i := range sig {
		sig[i] = math.MaxUint64
	}
	for token := range shingles {
		h := hashToken(token)
		for i, salt := range permutationSalts {
			if p := permute(h, salt); p < sig[i] {
				sig[i] = p
			}
		}
	}
	return sig
}

// Estimate returns the estimated Jaccard similarity between two
// signatures: the fraction of slots on which they agree.
func Estimate(a, b Signature) float64 {
	equal := 0
	for i := range a {
		if a[i] == b[i] {
			equal++
		}
	}
	return float64(equal) / float64(NumPermutations)
}
