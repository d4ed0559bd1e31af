// Package pairing is the Pairing Algebra Facade (spec.md §4.A / component
// A). It is a thin, configurable re-export of the scalar, group and
// pairing operations this module needs, binding the "external
// collaborator" spec.md treats as out of scope to the same concrete stack
// github.com/drand/drand/crypto.Scheme uses: github.com/drand/kyber for
// the group/scalar/pairing interfaces, and github.com/drand/kyber-bls12381
// for the concrete Type-3 BLS12-381 curve.
package pairing

import (
	"github.com/drand/kyber"
	bls "github.com/drand/kyber-bls12381"
	"github.com/drand/kyber/pairing"
)

// Suite is the pairing library's contract: three groups and a pairing
// evaluation between the first two. Re-exported verbatim from
// github.com/drand/kyber/pairing so callers of this package never import
// kyber's pairing package directly.
type Suite = pairing.Suite

// defaultDST mirrors the RFC9380 default domain-separation tags
// drand/drand's crypto.NewPedersenBLSChained uses for hash-to-curve in G1
// and G2 respectively.
const (
	defaultDSTG1 = "BLS_SIG_BLS12381G1_XMD:SHA-256_SSWU_RO_NUL_"
	defaultDSTG2 = "BLS_SIG_BLS12381G2_XMD:SHA-256_SSWU_RO_NUL_"
)

// NewSuite returns the BLS12-381 pairing suite this module signs and
// verifies over.
func NewSuite() Suite {
	return bls.NewBLS12381SuiteWithDST([]byte(defaultDSTG1), []byte(defaultDSTG2))
}

// SigGroup resolves the signature group for the active orientation.
func SigGroup(s Suite) kyber.Group {
	if ActiveOrientation == SigInG1 {
		return s.G1()
	}
	return s.G2()
}

// VerkeyGroup resolves the verification-key group for the active
// orientation. Always the other group from SigGroup: the two must never
// coincide (spec.md §4.C's "Scheme represents ... SigGroup must always be
// different from the KeyGroup" invariant, carried from the teacher's
// crypto.Scheme doc comment).
func VerkeyGroup(s Suite) kyber.Group {
	if ActiveOrientation == SigInG1 {
		return s.G2()
	}
	return s.G1()
}

// Ate2 computes e(sigA, vkA) * e(sigB, vkB) in G_T, where sigA/sigB are
// elements of the signature group and vkA/vkB of the verkey group. It
// normalizes argument order internally so the underlying Suite.Pair call,
// which always expects its first argument in G1, receives it correctly
// regardless of ActiveOrientation — this is the "the facade normalizes
// pairing argument order so callers never think about which group is G1"
// behaviour spec.md §4.A requires.
func Ate2(s Suite, sigA, vkA, sigB, vkB kyber.Point) kyber.Point {
	var left, right kyber.Point
	if ActiveOrientation == SigInG1 {
		left = s.Pair(sigA, vkA)
		right = s.Pair(sigB, vkB)
	} else {
		left = s.Pair(vkA, sigA)
		right = s.Pair(vkB, sigB)
	}
	return left.Add(left, right)
}

// IsIdentity reports whether p is the neutral element of its group.
func IsIdentity(p kyber.Point) bool {
	return p.Equal(p.Clone().Null())
}
