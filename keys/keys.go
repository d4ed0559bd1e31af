// Package keys implements Sigkey/Verkey generation (spec.md §3 Sigkey/
// Verkey, §4.B keygen/keygen_2018), following the same "sample a scalar
// with the backend's RNG stream, multiply the fixed generator" pattern
// github.com/drand/drand/common/key.newKeyPair uses for its own
// Pair/Identity construction.
package keys

import (
	"github.com/drand/kyber"
	"github.com/drand/kyber/util/random"

	"github.com/lovesh/ps-sig/pairing"
	"github.com/lovesh/ps-sig/params"
	"github.com/lovesh/ps-sig/pserr"
)

// Sigkey is the secret signing key: x plus an ordered vector y of length
// L, the supported message-vector length (L = n for the 2016 scheme, n+1
// for the 2018 scheme where n is the number of user messages).
type Sigkey struct {
	X kyber.Scalar
	Y []kyber.Scalar
}

// Verkey is the public verification key: X_tilde = g_tilde^x and
// Y_tilde[i] = g_tilde^y[i]. len(Y_tilde) always equals len(Sigkey.Y) for
// any pair produced by the same KeyGen call (spec.md §3 cross-entity
// invariant 2).
type Verkey struct {
	XTilde kyber.Point
	YTilde []kyber.Point
}

// Len returns the supported message-vector length L.
func (v *Verkey) Len() int { return len(v.YTilde) }

// KeyGen samples a fresh (Sigkey, Verkey) pair supporting message vectors
// of length l, under the given Params. l == 0 is accepted (an empty
// message-vector scheme): the signature-core and PoK layers are the ones
// that reject it, since they are the operations spec.md §4.B says require
// L >= 1, not key generation itself.
func KeyGen(l int, p *params.Params) (*Sigkey, *Verkey, error) {
	rng := random.New()
	sigGroup := pairing.SigGroup(p.Suite)
	vkGroup := pairing.VerkeyGroup(p.Suite)

	x := sigGroup.Scalar().Pick(rng)
	y := make([]kyber.Scalar, l)
	for i := range y {
		y[i] = sigGroup.Scalar().Pick(rng)
	}

	xTilde := vkGroup.Point().Mul(x, p.GTilde)
	yTilde := make([]kyber.Point, l)
	for i := range yTilde {
		yTilde[i] = vkGroup.Point().Mul(y[i], p.GTilde)
	}

	return &Sigkey{X: x, Y: y}, &Verkey{XTilde: xTilde, YTilde: yTilde}, nil
}

// KeyGen2018 is KeyGen(n+1, params): callers pass the number of user
// messages, n; the extra slot carries the 2018 scheme's auxiliary
// message-independent scalar m' (spec.md §4.B).
func KeyGen2018(n int, p *params.Params) (*Sigkey, *Verkey, error) {
	return KeyGen(n+1, p)
}

// Zeroize overwrites the secret scalars in place with the additive
// identity and drops the backing slice, best-effort. kyber's Scalar
// interface offers no way to scrub its internal byte representation
// directly, so unlike a language with direct buffer access this cannot
// guarantee the original bytes are gone from memory before the GC
// reclaims them — a limitation noted in spec.md §1 ("does not itself
// provide constant-time [or memory-hygiene] guarantees beyond what the
// pairing backend supplies").
func (sk *Sigkey) Zeroize() {
	if sk.X != nil {
		sk.X.Zero()
	}
	for _, y := range sk.Y {
		y.Zero()
	}
	sk.Y = nil
}

// checkCompat returns pserr.UnsupportedNoOfMessages if messages does not
// have exactly the length a key of this Sigkey's shape requires.
func (sk *Sigkey) checkCompat(nMessages int) error {
	if len(sk.Y) != nMessages {
		return pserr.UnsupportedNoOfMessages(len(sk.Y), nMessages)
	}
	return nil
}

// CheckSigkeyCompat validates a message vector against a Sigkey's
// supported length.
func CheckSigkeyCompat(sk *Sigkey, nMessages int) error {
	return sk.checkCompat(nMessages)
}

// CheckVerkeyCompat validates a message vector against a Verkey's
// supported length.
func CheckVerkeyCompat(vk *Verkey, nMessages int) error {
	if len(vk.YTilde) != nMessages {
		return pserr.UnsupportedNoOfMessages(len(vk.YTilde), nMessages)
	}
	return nil
}

