// Package ps16 implements the CT-RSA'16 Pointcheval–Sanders signature
// scheme (spec.md §4.C "2016 scheme"), ported directly from
// _examples/original_source/src/signature.rs, in the idiom
// github.com/drand/drand/bls uses for its own (deprecated, kept-for-
// reference) pairing signature scheme: a plain struct pair plus free
// functions for sign/verify, not a stateful object.
package ps16

import (
	"github.com/drand/kyber"
	"github.com/drand/kyber/util/random"

	"github.com/lovesh/ps-sig/keys"
	"github.com/lovesh/ps-sig/pairing"
	"github.com/lovesh/ps-sig/params"
	"github.com/lovesh/ps-sig/pserr"
)

// Signature is a PS'16 signature: a pair of signature-group elements. A
// well-formed, valid signature never has either component equal to the
// group identity (spec.md §3).
type Signature struct {
	Sigma1 kyber.Point
	Sigma2 kyber.Point
}

// New signs messages under sigkey with a freshly sampled u, so repeated
// calls with the same (messages, sigkey) produce different, unlinkable
// signatures. Requires len(messages) == len(sigkey.Y).
func New(messages []kyber.Scalar, sk *keys.Sigkey, p *params.Params) (*Signature, error) {
	if err := keys.CheckSigkeyCompat(sk, len(messages)); err != nil {
		return nil, err
	}
	u := pairing.SigGroup(p.Suite).Scalar().Pick(random.New())
	return SignWithSigma1FromGivenExp(messages, sk, u, 0, p.G)
}

// NewDeterministic signs messages under sigkey with sigma_1 derived by
// hashing the message vector, so two calls with identical (messages,
// sigkey) produce byte-equal signatures. This is the entry point multi-
// signature aggregation requires (spec.md §4.D): signers who deterministically
// hash the same agreed-upon message vector land on the same sigma_1
// without any coordination round.
func NewDeterministic(messages []kyber.Scalar, sk *keys.Sigkey, suite pairing.Suite) (*Signature, error) {
	if err := keys.CheckSigkeyCompat(sk, len(messages)); err != nil {
		return nil, err
	}
	sigma1, err := sigma1FromMessages(messages, pairing.SigGroup(suite))
	if err != nil {
		return nil, err
	}
	sigma2, err := SignWithGivenSigma1(messages, sk, 0, sigma1)
	if err != nil {
		return nil, err
	}
	return &Signature{Sigma1: sigma1, Sigma2: sigma2}, nil
}

// SignWithSigma1FromGivenExp builds sigma_1 = g^u and sigma_2 = sigma_1^e
// where e = x + sum(y[offset+i] * messages[i]), doing a single scalar
// multiplication for sigma_1 (spec.md §4.C
// "sign_with_sigma_1_generated_from_given_exp"). offset lets ps18 reuse
// this primitive against a sigkey whose y vector carries an extra
// trailing slot for m'.
func SignWithSigma1FromGivenExp(messages []kyber.Scalar, sk *keys.Sigkey, u kyber.Scalar, offset int, g kyber.Point) (*Signature, error) {
	h := g.Clone().Mul(u, g)
	sigma2, err := SignWithGivenSigma1(messages, sk, offset, h)
	if err != nil {
		return nil, err
	}
	return &Signature{Sigma1: h, Sigma2: sigma2}, nil
}

// SignWithGivenSigma1 computes sigma_2 = h^(x + sum(y[offset+i]*m_i)) for
// a caller-supplied h, the low-level primitive spec.md §4.C calls
// "sign_with_given_sigma_1". It is the shared core both the randomized and
// deterministic 2016 signing paths, and ps18, build on.
func SignWithGivenSigma1(messages []kyber.Scalar, sk *keys.Sigkey, offset int, h kyber.Point) (kyber.Point, error) {
	if len(sk.Y) != offset+len(messages) {
		return nil, pserr.UnsupportedNoOfMessages(len(sk.Y), offset+len(messages))
	}
	if len(messages) == 0 {
		return nil, pserr.General("signature: at least one message is required")
	}
	exp := sk.X.Clone()
	term := sk.X.Clone()
	for i, m := range messages {
		term.Mul(sk.Y[offset+i], m)
		exp.Add(exp, term)
	}
	return h.Clone().Mul(exp, h), nil
}

// Verify checks the 2-pairing relation e(sigma_1, X_tilde * prod(Y_tilde[i]^m_i)) == e(sigma_2, g_tilde)
// (spec.md §3 invariant 3, §4.C "Verification"). It returns an error only
// for the structural precondition |messages| != |Y_tilde|; a
// cryptographically invalid signature, or one with an identity
// component, is reported as (false, nil) per spec.md §7's
// precondition-vs-verification-failure split.
func Verify(sig *Signature, messages []kyber.Scalar, vk *keys.Verkey, p *params.Params) (bool, error) {
	if err := keys.CheckVerkeyCompat(vk, len(messages)); err != nil {
		return false, err
	}
	if pairing.IsIdentity(sig.Sigma1) || pairing.IsIdentity(sig.Sigma2) {
		return false, nil
	}
	return pairingCheck(sig, messages, vk, p)
}

// pairingCheck builds Y_m = X_tilde * MSM(Y_tilde, messages) and returns
// whether e(sigma_1, Y_m) * e(-sigma_2, g_tilde) == 1. Shared with ps18,
// which appends m' to messages and Y_tilde length L+1 before calling this.
func pairingCheck(sig *Signature, messages []kyber.Scalar, vk *keys.Verkey, p *params.Params) (bool, error) {
	ym, err := ComputeYM(messages, vk, p)
	if err != nil {
		return false, err
	}
	negSigma2 := sig.Sigma2.Clone().Neg(sig.Sigma2)
	gt := pairing.Ate2(p.Suite, sig.Sigma1, ym, negSigma2, p.GTilde)
	return pairing.IsIdentity(gt), nil
}

// ComputeYM computes X_tilde * MSM(Y_tilde, messages), the verkey-group
// element the verification pairing checks sigma_1 against. Exported for
// package pok, which needs this same element (there called J, with
// g_tilde^t folded in) to build the PoK_VC commitment (spec.md §4.E).
func ComputeYM(messages []kyber.Scalar, vk *keys.Verkey, p *params.Params) (kyber.Point, error) {
	vkGroup := pairing.VerkeyGroup(p.Suite)
	ym, err := pairing.MultiScalarMul(vkGroup, vk.YTilde, messages)
	if err != nil {
		return nil, err
	}
	ym.Add(ym, vk.XTilde)
	return ym, nil
}

// PairingCheck is the package-exported form of pairingCheck, used by ps18
// to reuse the 2016 pairing relation against an extended message vector.
func PairingCheck(sig *Signature, messages []kyber.Scalar, vk *keys.Verkey, p *params.Params) (bool, error) {
	return pairingCheck(sig, messages, vk, p)
}

// sigma1FromMessages hashes the canonical concatenation of every message's
// fixed-width encoding to a signature-group point. Since every scalar has
// the same canonical byte length, no delimiter is needed between messages
// (spec.md §4.C note, carried from signature.rs's
// generate_sigma_1_from_messages).
func sigma1FromMessages(messages []kyber.Scalar, sigGroup kyber.Group) (kyber.Point, error) {
	return pairing.HashToPoint(sigGroup, nil, concatMessages(messages))
}

func concatMessages(messages []kyber.Scalar) []byte {
	var buf []byte
	for _, m := range messages {
		b, _ := m.MarshalBinary()
		buf = append(buf, b...)
	}
	return buf
}

// ToBytes returns the canonical encoding: sigma_1 followed by sigma_2.
func (s *Signature) ToBytes() ([]byte, error) {
	return s.MarshalBinary()
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (s *Signature) MarshalBinary() ([]byte, error) {
	a, err := s.Sigma1.MarshalBinary()
	if err != nil {
		return nil, err
	}
	b, err := s.Sigma2.MarshalBinary()
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	return out, nil
}

// FromBytes decodes the encoding produced by MarshalBinary against a
// given signature group. Signature carries no group reference of its own
// (kyber.Point/Scalar values are already bound to a concrete group), so
// decoding needs the suite supplied explicitly rather than going through
// a BinaryUnmarshaler method on a zero Signature.
func FromBytes(suite pairing.Suite, data []byte) (*Signature, error) {
	sigGroup := pairing.SigGroup(suite)
	n := sigGroup.PointLen()
	if len(data) != 2*n {
		return nil, pserr.General("signature: unexpected encoding length")
	}
	sigma1 := sigGroup.Point()
	if err := sigma1.UnmarshalBinary(data[:n]); err != nil {
		return nil, err
	}
	sigma2 := sigGroup.Point()
	if err := sigma2.UnmarshalBinary(data[n:]); err != nil {
		return nil, err
	}
	return &Signature{Sigma1: sigma1, Sigma2: sigma2}, nil
}
