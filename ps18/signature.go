// Package ps18 implements the CT-RSA'18 Pointcheval–Sanders variant
// (spec.md §4.C "2018 scheme"), ported from
// _examples/original_source/src/signature_2018.rs. It wraps ps16 rather
// than duplicating the pairing relation: a 2018 signature is a 2016
// signature over messages with one extra, message-independent scalar
// m' appended, the same "extend then delegate" shape drand's tbls
// package uses to layer threshold recovery on top of plain bls.Sign.
package ps18

import (
	"github.com/drand/kyber"
	"github.com/drand/kyber/util/random"

	"github.com/lovesh/ps-sig/keys"
	"github.com/lovesh/ps-sig/pairing"
	"github.com/lovesh/ps-sig/params"
	"github.com/lovesh/ps-sig/ps16"
	"github.com/lovesh/ps-sig/pserr"
)

// Signature is a 2018-scheme signature: the auxiliary scalar m' plus the
// underlying 2016 signature computed over (messages, m').
type Signature struct {
	MPrime kyber.Scalar
	Sig    ps16.Signature
}

// New signs messages with both m' and sigma_1 freshly randomized, the
// fully randomized variant (signature_2018.rs's "Signature::new"). Two
// calls never agree on anything beyond the verification relation itself,
// which is what non-aggregating, maximum-unlinkability callers want.
func New(messages []kyber.Scalar, sk *keys.Sigkey, p *params.Params) (*Signature, error) {
	sigGroup := pairing.SigGroup(p.Suite)
	mPrime := sigGroup.Scalar().Pick(random.New())
	u := sigGroup.Scalar().Pick(random.New())
	return signWithMPrimeAndExp(messages, mPrime, sk, u, p)
}

// NewWithDeterministicM signs with m' derived by hashing messages but
// sigma_1 still randomized (signature_2018.rs's
// "Signature::new_with_given_pseudorandom_blind_message"-style variant):
// repeated calls over the same messages agree on m' but not on the
// signature bytes, useful when the verifier must recompute m' itself
// without it being transmitted.
func NewWithDeterministicM(messages []kyber.Scalar, sk *keys.Sigkey, p *params.Params) (*Signature, error) {
	mPrime := mPrimeFromMessages(messages, pairing.SigGroup(p.Suite))
	u := pairing.SigGroup(p.Suite).Scalar().Pick(random.New())
	return signWithMPrimeAndExp(messages, mPrime, sk, u, p)
}

// NewDeterministic signs with both m' and sigma_1 derived by hashing,
// making the entire signature a deterministic function of (messages,
// sigkey) (signature_2018.rs's "Signature::new_deterministic"). This is
// the variant multisig aggregation requires: every signer must land on
// the same sigma_1 without a coordination round.
func NewDeterministic(messages []kyber.Scalar, sk *keys.Sigkey, p *params.Params) (*Signature, error) {
	sigGroup := pairing.SigGroup(p.Suite)
	mPrime := mPrimeFromMessages(messages, sigGroup)

	extended := append(append([]kyber.Scalar{}, messages...), mPrime)
	sigma1, err := pairing.HashToPoint(sigGroup, nil, concatScalars(extended))
	if err != nil {
		return nil, err
	}
	sigma2, err := ps16.SignWithGivenSigma1(extended, sk, 0, sigma1)
	if err != nil {
		return nil, err
	}
	return &Signature{MPrime: mPrime, Sig: ps16.Signature{Sigma1: sigma1, Sigma2: sigma2}}, nil
}

// signWithMPrimeAndExp is the shared tail of New and NewWithDeterministicM:
// both pick sigma_1 = g^u for a given u, then delegate to ps16's
// exponent-given-u entry point over (messages, m').
func signWithMPrimeAndExp(messages []kyber.Scalar, mPrime kyber.Scalar, sk *keys.Sigkey, u kyber.Scalar, p *params.Params) (*Signature, error) {
	extended := append(append([]kyber.Scalar{}, messages...), mPrime)
	sig16, err := ps16.SignWithSigma1FromGivenExp(extended, sk, u, 0, p.G)
	if err != nil {
		return nil, err
	}
	return &Signature{MPrime: mPrime, Sig: *sig16}, nil
}

// Verify checks the signature against messages with m' appended, via
// ps16's exported pairing relation. A Verkey of length n+1 is required:
// n user messages plus the auxiliary m' slot (spec.md §4.B
// KeyGen2018/§4.C 2018 verification).
func Verify(sig *Signature, messages []kyber.Scalar, vk *keys.Verkey, p *params.Params) (bool, error) {
	if len(vk.YTilde) != len(messages)+1 {
		return false, pserr.UnsupportedNoOfMessages(len(vk.YTilde), len(messages)+1)
	}
	if pairing.IsIdentity(sig.Sig.Sigma1) || pairing.IsIdentity(sig.Sig.Sigma2) {
		return false, nil
	}
	extended := append(append([]kyber.Scalar{}, messages...), sig.MPrime)
	return ps16.PairingCheck(&sig.Sig, extended, vk, p)
}

func mPrimeFromMessages(messages []kyber.Scalar, sigGroup kyber.Group) kyber.Scalar {
	return pairing.HashToScalar(sigGroup, pairing.Blake2b256, []byte("m-prime"), concatScalars(messages))
}

func concatScalars(values []kyber.Scalar) []byte {
	var buf []byte
	for _, v := range values {
		b, _ := v.MarshalBinary()
		buf = append(buf, b...)
	}
	return buf
}

// ToBytes returns the canonical encoding: m' followed by the underlying
// 2016 signature's encoding.
func (s *Signature) ToBytes() ([]byte, error) {
	return s.MarshalBinary()
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (s *Signature) MarshalBinary() ([]byte, error) {
	mBytes, err := s.MPrime.MarshalBinary()
	if err != nil {
		return nil, err
	}
	sigBytes, err := s.Sig.MarshalBinary()
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, len(mBytes)+len(sigBytes))
	out = append(out, mBytes...)
	out = append(out, sigBytes...)
	return out, nil
}

// FromBytes decodes the encoding produced by MarshalBinary against a
// given suite.
func FromBytes(suite pairing.Suite, data []byte) (*Signature, error) {
	sigGroup := pairing.SigGroup(suite)
	scalarLen := sigGroup.ScalarLen()
	if len(data) < scalarLen {
		return nil, pserr.General("ps18: signature encoding too short for m'")
	}
	mPrime := sigGroup.Scalar()
	if err := mPrime.UnmarshalBinary(data[:scalarLen]); err != nil {
		return nil, err
	}
	sig16, err := ps16.FromBytes(suite, data[scalarLen:])
	if err != nil {
		return nil, err
	}
	return &Signature{MPrime: mPrime, Sig: *sig16}, nil
}
