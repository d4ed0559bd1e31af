package pairing

import (
	"crypto/sha256"

	"github.com/drand/kyber"
	"github.com/zeebo/blake3"
	"golang.org/x/crypto/blake2b"
)

// hashablePoint is the interface kyber-bls12381's G1/G2 points implement
// for hash-to-curve, mirrored from github.com/drand/kyber/sign/bls (the
// teacher's own dependency uses this exact unexported-interface-assertion
// pattern to reach the Hash method without importing the concrete curve
// package).
type hashablePoint interface {
	Hash([]byte) kyber.Point
}

// HashAlgorithm selects the hash used to derive domain-separated bytes
// before they are reduced to a field element or curve point. blake2b is
// the teacher's choice (drand/drand/common/key hashes identities with
// blake2b-256); blake3 is offered as a faster alternative for the
// deterministic message-vector hash in the signing hot path, grounded on
// github.com/luxfi/ringtail's use of github.com/zeebo/blake3.
type HashAlgorithm int

const (
	Blake2b256 HashAlgorithm = iota
	Blake3
	SHA256
)

func digest(algo HashAlgorithm, data []byte) []byte {
	switch algo {
	case Blake3:
		sum := blake3.Sum256(data)
		return sum[:]
	case SHA256:
		sum := sha256.Sum256(data)
		return sum[:]
	default:
		sum := blake2b.Sum256(data)
		return sum[:]
	}
}

// HashToPoint hashes domain||msg to a point of g using the group's own
// hash-to-curve implementation (Params::new's "hash_to_G_s"/"hash_to_G_v").
// The domain separation tag baked into the suite at construction time
// (defaultDSTG1/defaultDSTG2) separates G1 from G2; the caller-supplied
// domain parameter additionally separates call sites within a group (e.g.
// "g" vs "g_tilde" within the same Params::new call).
func HashToPoint(g kyber.Group, domain, msg []byte) (kyber.Point, error) {
	hp, ok := g.Point().(hashablePoint)
	if !ok {
		return nil, errNotHashable
	}
	buf := make([]byte, 0, len(domain)+len(msg))
	buf = append(buf, domain...)
	buf = append(buf, msg...)
	return hp.Hash(buf), nil
}

// HashToScalar reduces domain||msg to a scalar of g using algo, by hashing
// to a wide digest and letting the scalar's own SetBytes reduce it modulo
// the field order (the standard kyber idiom; kyber.Scalar.SetBytes treats
// its input as an arbitrary-width integer and reduces it, it does not
// require canonical-length input).
func HashToScalar(g kyber.Group, algo HashAlgorithm, domain, msg []byte) kyber.Scalar {
	buf := make([]byte, 0, len(domain)+len(msg))
	buf = append(buf, domain...)
	buf = append(buf, msg...)
	return g.Scalar().SetBytes(digest(algo, buf))
}

var errNotHashable = hashError("group's point type does not implement hash-to-curve")

type hashError string

func (e hashError) Error() string { return string(e) }
