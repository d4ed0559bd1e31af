package pok

import (
	"encoding/binary"

	"github.com/drand/kyber"
	"golang.org/x/exp/slices"
)

// sortedIndices returns a sorted, de-duplicated copy of idx, using
// golang.org/x/exp/slices the way
// github.com/threshold-network/roast-go sorts participant indices before
// folding them into a Fiat-Shamir transcript: the revealed-index set must
// serialize identically regardless of caller-supplied order (spec.md §4.E
// "revealed-index set in sorted order").
func sortedIndices(idx []int) []int {
	out := append([]int{}, idx...)
	slices.Sort(out)
	return slices.Compact(out)
}

// transcriptBytes serializes sigma1Prime, sigma2Prime, J, T, the ordered
// bases and the sorted revealed-index set in canonical form. Used both by
// the prover's ToBytes (to derive a challenge) and by Proof.GetBytesForChallenge
// (for the verifier to recompute the same challenge); spec.md §4.E requires
// these two call sites to agree byte-for-byte.
func transcriptBytes(sigma1Prime, sigma2Prime, j, t kyber.Point, bases []kyber.Point, revealedIdx []int) ([]byte, error) {
	var buf []byte
	for _, p := range []kyber.Point{sigma1Prime, sigma2Prime, j, t} {
		b, err := p.MarshalBinary()
		if err != nil {
			return nil, err
		}
		buf = append(buf, b...)
	}
	for _, b := range bases {
		bb, err := b.MarshalBinary()
		if err != nil {
			return nil, err
		}
		buf = append(buf, bb...)
	}
	for _, idx := range sortedIndices(revealedIdx) {
		var idxBytes [8]byte
		binary.BigEndian.PutUint64(idxBytes[:], uint64(idx))
		buf = append(buf, idxBytes[:]...)
	}
	return buf, nil
}
