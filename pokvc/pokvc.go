// Package pokvc implements the generic Schnorr proof-of-knowledge of a
// vector commitment's opening (spec.md §4.E "Generic PoK_VC
// sub-protocol"), with one instantiation for the signature group and one
// for the verkey group; package pok uses the verkey-group one. The source this is
// ported from instantiates PoK_VC per group via Rust macro expansion
// (spec.md §9 design note); here a Go type parameter plays the same
// role of generating two distinct, non-interchangeable instantiations
// at compile time, the same style github.com/threshold-network/roast-go
// uses golang.org/x/exp's generic helpers for its own per-curve protocol
// state. Space carries no runtime value: it only prevents a signature-
// group State from being fed to a verkey-group Verify call by mistake.
package pokvc

import (
	"github.com/drand/kyber"
	"github.com/drand/kyber/util/random"

	"github.com/lovesh/ps-sig/pairing"
	"github.com/lovesh/ps-sig/pserr"
)

// SigSpace and VerkeySpace are the two phantom instantiations (package
// pok uses VerkeySpace): bases and commitments in the signature group vs.
// the verkey group can never be mixed up without a compile error.
type SigSpace struct{}
type VerkeySpace struct{}

// State is a prover's retained state between Commit and Respond: the
// bases, the sampled (or caller-supplied) blindings, and the resulting
// commitment T = sum(bases[j]^blindings[j]).
type State[Space any] struct {
	Group     kyber.Group
	Bases     []kyber.Point
	Blindings []kyber.Scalar
	T         kyber.Point
}

// Proof is the completed non-interactive proof: the commitment T and
// the response scalars, one per base, in base order.
type Proof[Space any] struct {
	T         kyber.Point
	Responses []kyber.Scalar
}

// Commit samples fresh blindings (or uses the caller-supplied ones, for
// cross-proof linking where two PoK_VC instances must share a blinding,
// e.g. the hidden-message blindings shared between the signature-group
// and verkey-group legs of a higher proof) and computes T. len(blindings)
// must equal len(bases) when non-nil.
func Commit[Space any](group kyber.Group, bases []kyber.Point, blindings []kyber.Scalar) (*State[Space], error) {
	if len(bases) == 0 {
		return nil, pserr.General("pokvc: bases must be non-empty")
	}
	if blindings == nil {
		blindings = make([]kyber.Scalar, len(bases))
		for i := range blindings {
			blindings[i] = group.Scalar().Pick(random.New())
		}
	} else if len(blindings) != len(bases) {
		return nil, pserr.UnequalNoOfBasesExponents(len(bases), len(blindings))
	}

	t, err := pairing.MultiScalarMul(group, bases, blindings)
	if err != nil {
		return nil, err
	}
	return &State[Space]{Group: group, Bases: bases, Blindings: blindings, T: t}, nil
}

// Respond computes the Schnorr response s[j] = blinding[j] + challenge*x[j]
// for each secret exponent x, completing the proof. len(x) must equal
// len(state.Bases).
func Respond[Space any](state *State[Space], x []kyber.Scalar, challenge kyber.Scalar) (*Proof[Space], error) {
	if len(x) != len(state.Bases) {
		return nil, pserr.UnequalNoOfBasesExponents(len(state.Bases), len(x))
	}
	responses := make([]kyber.Scalar, len(x))
	for i := range x {
		term := challenge.Clone().Mul(challenge, x[i])
		responses[i] = state.Blindings[i].Clone().Add(state.Blindings[i], term)
	}
	return &Proof[Space]{T: state.T, Responses: responses}, nil
}

// Verify checks sum(bases[j]^responses[j]) == T + commitment*challenge.
func Verify[Space any](group kyber.Group, bases []kyber.Point, commitment kyber.Point, challenge kyber.Scalar, proof *Proof[Space]) (bool, error) {
	if len(bases) != len(proof.Responses) {
		return false, pserr.UnequalNoOfBasesExponents(len(bases), len(proof.Responses))
	}
	lhs, err := pairing.MultiScalarMul(group, bases, proof.Responses)
	if err != nil {
		return false, err
	}
	rhs := commitment.Clone().Mul(challenge, commitment)
	rhs.Add(rhs, proof.T)
	return lhs.Equal(rhs), nil
}
