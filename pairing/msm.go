package pairing

import (
	"github.com/drand/kyber"

	"github.com/lovesh/ps-sig/pserr"
)

// MultiScalarMul computes sum(scalars[i] * bases[i]) in g. kyber has no
// dedicated MSM entry point (unlike, say, gnark-crypto's G1.MultiExp); this
// mirrors how github.com/drand/drand/bls and kyber/sign/bls themselves
// build up aggregate points — a running Point accumulator, Add'd to in a
// loop. It is variable-time, which spec.md §4.A explicitly allows for
// verification-side MSM.
func MultiScalarMul(g kyber.Group, bases []kyber.Point, scalars []kyber.Scalar) (kyber.Point, error) {
	if len(bases) != len(scalars) {
		return nil, pserr.UnequalNoOfBasesExponents(len(bases), len(scalars))
	}
	acc := g.Point()
	term := g.Point()
	for i := range bases {
		term.Mul(scalars[i], bases[i])
		acc.Add(acc, term)
	}
	return acc, nil
}
