// Package multisig implements aggregation of independently produced PS
// signatures and verkeys over a shared message vector (spec.md §4.D),
// grounded on _examples/original_source/src/multi_signature.rs. This is
// not a (t,n) threshold scheme: every signer's contribution is required,
// the same distinction github.com/drand/kyber/sign/bls draws between its
// plain AggregatableScheme (all-signers) and sign/tbls's ThresholdScheme
// (any-t-of-n, Lagrange-interpolated) — PS aggregation here follows the
// former shape, not the latter.
package multisig

import (
	"github.com/drand/kyber"

	"github.com/lovesh/ps-sig/keys"
	"github.com/lovesh/ps-sig/params"
	"github.com/lovesh/ps-sig/ps16"
	"github.com/lovesh/ps-sig/ps18"
	"github.com/lovesh/ps-sig/pserr"
)

// AggregateVerkeys combines n independently generated verkeys, all
// supporting the same message-vector length, into a single verkey whose
// X_tilde and Y_tilde are the pointwise sums of the inputs'
// (multi_signature.rs's "aggregate_vk"). The aggregate verkey then
// verifies a signature produced by AggregateSignatures16/18 over
// sigkeys matching vks pairwise.
func AggregateVerkeys(vks []*keys.Verkey) (*keys.Verkey, error) {
	if len(vks) == 0 {
		return nil, pserr.General("multisig: no verkeys to aggregate")
	}
	l := vks[0].Len()
	for _, vk := range vks[1:] {
		if vk.Len() != l {
			return nil, pserr.IncompatibleVerkeysForAggregation()
		}
	}

	xTilde := vks[0].XTilde.Clone().Null()
	yTilde := make([]kyber.Point, l)
	for i := range yTilde {
		yTilde[i] = vks[0].YTilde[i].Clone().Null()
	}
	for _, vk := range vks {
		xTilde.Add(xTilde, vk.XTilde)
		for i := range yTilde {
			yTilde[i].Add(yTilde[i], vk.YTilde[i])
		}
	}
	return &keys.Verkey{XTilde: xTilde, YTilde: yTilde}, nil
}

// AggregateSignatures16 combines n PS'16 signatures produced over the
// same message vector by NewDeterministic (so every sigma_1 is
// identical) into one aggregate signature: sigma_1 passes through
// unchanged and sigma_2 becomes the sum of every signer's sigma_2
// (multi_signature.rs's "aggregate_sigma_2"). Verify against a verkey
// built by AggregateVerkeys over the same signers' verkeys.
func AggregateSignatures16(sigs []*ps16.Signature) (*ps16.Signature, error) {
	if len(sigs) == 0 {
		return nil, pserr.General("multisig: no signatures to aggregate")
	}
	sigma1 := sigs[0].Sigma1
	sigma2 := sigma1.Clone().Null()
	for _, s := range sigs {
		if !s.Sigma1.Equal(sigma1) {
			return nil, pserr.IncompatibleSigsForAggregation()
		}
		sigma2.Add(sigma2, s.Sigma2)
	}
	return &ps16.Signature{Sigma1: sigma1, Sigma2: sigma2}, nil
}

// AggregateSignatures18 is AggregateSignatures16 lifted to the 2018
// scheme: it additionally requires every signer to agree on m' (true
// when every signature was produced by ps18.NewDeterministic over the
// same message vector), and aggregates the embedded 2016 signatures.
func AggregateSignatures18(sigs []*ps18.Signature) (*ps18.Signature, error) {
	if len(sigs) == 0 {
		return nil, pserr.General("multisig: no signatures to aggregate")
	}
	mPrime := sigs[0].MPrime
	inner := make([]*ps16.Signature, len(sigs))
	for i, s := range sigs {
		if !s.MPrime.Equal(mPrime) {
			return nil, pserr.IncompatibleSigsForAggregation()
		}
		inner[i] = &s.Sig
	}
	aggInner, err := AggregateSignatures16(inner)
	if err != nil {
		return nil, err
	}
	return &ps18.Signature{MPrime: mPrime, Sig: *aggInner}, nil
}

// Verify16 builds the aggregate verkey from vks and verifies the
// aggregate PS'16 signature against it (multi_signature.rs's
// "MultiSignatureFast::verify"). Callers verifying many signatures from
// the same signer set should build the aggregate verkey once with
// AggregateVerkeys and call ps16.Verify directly instead.
func Verify16(sig *ps16.Signature, messages []kyber.Scalar, vks []*keys.Verkey, p *params.Params) (bool, error) {
	aggVk, err := AggregateVerkeys(vks)
	if err != nil {
		return false, err
	}
	return ps16.Verify(sig, messages, aggVk, p)
}

// Verify18 is Verify16's 2018-scheme counterpart
// (multi_signature.rs's "MultiSignatureFast::verify_2018").
func Verify18(sig *ps18.Signature, messages []kyber.Scalar, vks []*keys.Verkey, p *params.Params) (bool, error) {
	aggVk, err := AggregateVerkeys(vks)
	if err != nil {
		return false, err
	}
	return ps18.Verify(sig, messages, aggVk, p)
}
