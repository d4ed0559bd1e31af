// Package pok implements proof of knowledge of a PS signature with
// selective disclosure (spec.md §4.E), built on the generic PoK_VC
// sub-protocol in package pokvc. Ported from
// _examples/original_source/src/pok_sig_2018.rs, generalized to also
// cover the 2016 scheme (the 2018 source is itself a thin wrapper that
// appends m' to the message vector and forbids revealing it; both paths
// share the same core here, the way package ps18 wraps ps16).
package pok

import (
	"github.com/drand/kyber"
	"github.com/drand/kyber/util/random"

	"github.com/lovesh/ps-sig/keys"
	"github.com/lovesh/ps-sig/pairing"
	"github.com/lovesh/ps-sig/params"
	"github.com/lovesh/ps-sig/pokvc"
	"github.com/lovesh/ps-sig/ps16"
	"github.com/lovesh/ps-sig/ps18"
	"github.com/lovesh/ps-sig/pserr"
)

// noFinalIndex marks schemes (2016) that have no disallowed trailing
// message index; schemes with one (2018's m') pass the real index.
const noFinalIndex = -1

// ProverState is the retained, single-use prover state between Init and
// GenProof (spec.md §5: "single-threaded-owned for its lifetime, which is
// consumed by gen_proof"). It carries the hidden exponents in the clear,
// so it must never be reused after GenProof or leaked.
type ProverState struct {
	sigma1Prime kyber.Point
	sigma2Prime kyber.Point
	j           kyber.Point
	vc          *pokvc.State[pokvc.VerkeySpace]
	bases       []kyber.Point
	hidden      []kyber.Scalar
	revealedIdx []int
}

// Proof is the completed, transferable proof of knowledge.
type Proof struct {
	Sigma1Prime kyber.Point
	Sigma2Prime kyber.Point
	J           kyber.Point
	VC          *pokvc.Proof[pokvc.VerkeySpace]
	RevealedIdx []int
}

// Init16 begins a proof of knowledge of sig over messages under vk,
// revealing the indices in revealedIdx and hiding the rest. blindings, if
// non-nil, supplies the blinding for each hidden *user* message in
// ascending index order (never for the randomization exponent t, which is
// always freshly sampled); its length must equal the hidden-message
// count.
func Init16(sig *ps16.Signature, vk *keys.Verkey, p *params.Params, messages []kyber.Scalar, blindings []kyber.Scalar, revealedIdx []int) (*ProverState, error) {
	return initCore(sig.Sigma1, sig.Sigma2, messages, vk, p, blindings, revealedIdx, noFinalIndex)
}

// Init18 is Init16's 2018-scheme counterpart: messages excludes m' (the
// caller never supplies it), and revealedIdx may never name the final
// index L-1, which m' occupies (spec.md §4.E, §8 scenario 6).
func Init18(sig *ps18.Signature, vk *keys.Verkey, p *params.Params, messages []kyber.Scalar, blindings []kyber.Scalar, revealedIdx []int) (*ProverState, error) {
	extended := append(append([]kyber.Scalar{}, messages...), sig.MPrime)
	finalIdx := len(extended) - 1
	return initCore(sig.Sig.Sigma1, sig.Sig.Sigma2, extended, vk, p, blindings, revealedIdx, finalIdx)
}

// initCore implements spec.md §4.E's init: validate lengths and revealed
// indices, randomize the signature, build the hidden-exponent/base
// vectors, compute J, and run PoK_VC's Commit step over the verkey group.
func initCore(sigma1, sigma2 kyber.Point, messages []kyber.Scalar, vk *keys.Verkey, p *params.Params, blindings []kyber.Scalar, revealedIdx []int, finalIdx int) (*ProverState, error) {
	if err := keys.CheckVerkeyCompat(vk, len(messages)); err != nil {
		return nil, err
	}
	l := len(messages)
	if l == 0 {
		return nil, pserr.General("pok: at least one message is required")
	}
	for _, idx := range revealedIdx {
		if idx < 0 || idx >= l {
			return nil, pserr.RevealedIndexOutOfRange(idx, l)
		}
		if idx == finalIdx {
			return nil, pserr.RevealedIndexOutOfRange(idx, l-1)
		}
	}
	revealed := sortedIndices(revealedIdx)
	revealedSet := make(map[int]bool, len(revealed))
	for _, idx := range revealed {
		revealedSet[idx] = true
	}

	sigGroup := pairing.SigGroup(p.Suite)
	vkGroup := pairing.VerkeyGroup(p.Suite)
	rng := random.New()

	r := sigGroup.Scalar().Pick(rng)
	for r.Equal(sigGroup.Scalar().Zero()) {
		r = sigGroup.Scalar().Pick(rng)
	}
	t := sigGroup.Scalar().Pick(rng)

	sigma1t := sigma1.Clone().Mul(t, sigma1)
	inner := sigma2.Clone().Add(sigma2, sigma1t)
	sigma2Prime := inner.Clone().Mul(r, inner)
	sigma1Prime := sigma1.Clone().Mul(r, sigma1)

	ym, err := ps16.ComputeYM(messages, vk, p)
	if err != nil {
		return nil, err
	}
	gtT := p.GTilde.Clone().Mul(t, p.GTilde)
	j := ym.Clone().Add(ym, gtT)

	bases := []kyber.Point{p.GTilde}
	hidden := []kyber.Scalar{t}
	var hiddenIdxOrder []int
	for i := 0; i < l; i++ {
		if revealedSet[i] {
			continue
		}
		bases = append(bases, vk.YTilde[i])
		hidden = append(hidden, messages[i])
		hiddenIdxOrder = append(hiddenIdxOrder, i)
	}

	fullBlindings, err := assembleBlindings(vkGroup, hiddenIdxOrder, finalIdx, blindings)
	if err != nil {
		return nil, err
	}

	vc, err := pokvc.Commit[pokvc.VerkeySpace](vkGroup, bases, fullBlindings)
	if err != nil {
		return nil, err
	}

	return &ProverState{
		sigma1Prime: sigma1Prime,
		sigma2Prime: sigma2Prime,
		j:           j,
		vc:          vc,
		bases:       bases,
		hidden:      hidden,
		revealedIdx: revealed,
	}, nil
}

// assembleBlindings builds the full blinding vector aligned with bases =
// [g_tilde] ++ hidden Y_tilde: position 0 (for t) is always fresh;
// position for the final/m' index, if present among the hidden indices,
// is always fresh; every other hidden position takes the caller-supplied
// blinding in ascending index order, or a fresh one if the caller passed
// none (spec.md §4.E init).
func assembleBlindings(vkGroup kyber.Group, hiddenIdxOrder []int, finalIdx int, callerBlindings []kyber.Scalar) ([]kyber.Scalar, error) {
	userSlots := 0
	for _, idx := range hiddenIdxOrder {
		if idx != finalIdx {
			userSlots++
		}
	}
	if callerBlindings != nil && len(callerBlindings) != userSlots {
		return nil, pserr.BlindingCountMismatch(userSlots, len(callerBlindings))
	}

	rng := random.New()
	out := make([]kyber.Scalar, len(hiddenIdxOrder)+1)
	out[0] = vkGroup.Scalar().Pick(rng)
	cursor := 0
	for k, idx := range hiddenIdxOrder {
		if idx == finalIdx {
			out[k+1] = vkGroup.Scalar().Pick(rng)
			continue
		}
		if callerBlindings != nil {
			out[k+1] = callerBlindings[cursor]
			cursor++
		} else {
			out[k+1] = vkGroup.Scalar().Pick(rng)
		}
	}
	return out, nil
}

// ToBytes returns the canonical transcript bytes a prover hashes to
// derive its own Fiat-Shamir challenge when not driven by a higher-level
// transcript (spec.md §4.E "to_bytes(state)").
func (s *ProverState) ToBytes() ([]byte, error) {
	return transcriptBytes(s.sigma1Prime, s.sigma2Prime, s.j, s.vc.T, s.bases, s.revealedIdx)
}

// GenProof runs PoK_VC's response step against challenge and returns the
// completed proof. state must not be reused afterward.
func (s *ProverState) GenProof(challenge kyber.Scalar) (*Proof, error) {
	vcProof, err := pokvc.Respond[pokvc.VerkeySpace](s.vc, s.hidden, challenge)
	if err != nil {
		return nil, err
	}
	return &Proof{
		Sigma1Prime: s.sigma1Prime,
		Sigma2Prime: s.sigma2Prime,
		J:           s.j,
		VC:          vcProof,
		RevealedIdx: s.revealedIdx,
	}, nil
}

// GetBytesForChallenge reproduces the same transcript bytes ToBytes
// produced for the prover, so a verifier holding only the finished Proof,
// vk and params can recompute an identical challenge (spec.md §4.E
// "proof.get_bytes_for_challenge").
func (proof *Proof) GetBytesForChallenge(vk *keys.Verkey, p *params.Params) ([]byte, error) {
	bases := hiddenBases(vk, proof.RevealedIdx, p.GTilde)
	return transcriptBytes(proof.Sigma1Prime, proof.Sigma2Prime, proof.J, proof.VC.T, bases, proof.RevealedIdx)
}

// hiddenBases rebuilds [g_tilde] ++ {Y_tilde[i] : i not in revealedIdx},
// the same base ordering initCore used, from public data only (vk and the
// proof's own revealed-index set) — the verifier never needs the prover's
// retained state to recompute it.
func hiddenBases(vk *keys.Verkey, revealedIdx []int, gTilde kyber.Point) []kyber.Point {
	revealedSet := make(map[int]bool, len(revealedIdx))
	for _, idx := range revealedIdx {
		revealedSet[idx] = true
	}
	bases := []kyber.Point{gTilde}
	for i := 0; i < vk.Len(); i++ {
		if revealedSet[i] {
			continue
		}
		bases = append(bases, vk.YTilde[i])
	}
	return bases
}

// Verify checks proof against vk, the revealed message values, and
// challenge (spec.md §4.E "verify").
func Verify(proof *Proof, vk *keys.Verkey, p *params.Params, revealedMsgs map[int]kyber.Scalar, challenge kyber.Scalar) (bool, error) {
	if pairing.IsIdentity(proof.Sigma1Prime) {
		return false, nil
	}
	if err := checkRevealedSetMatches(proof.RevealedIdx, revealedMsgs); err != nil {
		return false, err
	}

	vkGroup := pairing.VerkeyGroup(p.Suite)
	bases := hiddenBases(vk, proof.RevealedIdx, p.GTilde)

	c := proof.J.Clone().Sub(proof.J, vk.XTilde)
	for idx, val := range revealedMsgs {
		term := vk.YTilde[idx].Clone().Mul(val, vk.YTilde[idx])
		c.Sub(c, term)
	}

	vcOK, err := pokvc.Verify[pokvc.VerkeySpace](vkGroup, bases, c, challenge, proof.VC)
	if err != nil {
		return false, err
	}
	if !vcOK {
		return false, nil
	}

	negSigma2Prime := proof.Sigma2Prime.Clone().Neg(proof.Sigma2Prime)
	gt := pairing.Ate2(p.Suite, proof.Sigma1Prime, proof.J, negSigma2Prime, p.GTilde)
	return pairing.IsIdentity(gt), nil
}

func checkRevealedSetMatches(revealedIdx []int, revealedMsgs map[int]kyber.Scalar) error {
	if len(revealedMsgs) != len(revealedIdx) {
		return pserr.RevealedIndicesMismatch()
	}
	for _, idx := range revealedIdx {
		if _, ok := revealedMsgs[idx]; !ok {
			return pserr.RevealedIndicesMismatch()
		}
	}
	return nil
}
