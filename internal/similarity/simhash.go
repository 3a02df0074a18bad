package similarity

import "math/bits"

// Fingerprint is a 64-bit SimHash summary of a subtree's ordered tag
// sequence. Hamming distance between fingerprints approximates how much
// the two sequences differ.
type Fingerprint uint64

// NewFingerprint computes the SimHash fingerprint of a tag sequence.
// Each occurrence of a tag votes its hash bits up or down; the sign of
// each bit column becomes one fingerprint bit. Repeated tags weight the
// vote, so the fingerprint reflects composition as well as vocabulary.
func NewFingerprint(tags []string) Fingerprint {
	var votes [64]int
	for _, tag := range tags {
		h := hashToken(tag)
		for bit := 0; bit < 64; bit++ {
			if h&(1<<uint(bit)) != 0 {
				votes[bit]++
			} else {
				votes[bit]--
			}
		}
	}
	var fp uint64
	for bit := 0; bit < 64; bit++ {
		if votes[bit] > 0 {
			fp |= 1 << uint(bit)
		}
	}
	return Fingerprint(fp)
}

// HammingDistance returns the number of bit positions on which two
// fingerprints differ.
func HammingDistance(a, b Fingerprint) int {
	return bits.OnesCount64(uint64(a) ^ uint64(b))
}
