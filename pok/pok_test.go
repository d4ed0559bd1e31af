package pok_test

import (
	"testing"

	"github.com/drand/kyber"
	"github.com/stretchr/testify/require"

	"github.com/lovesh/ps-sig/keys"
	"github.com/lovesh/ps-sig/pairing"
	"github.com/lovesh/ps-sig/params"
	"github.com/lovesh/ps-sig/pok"
	"github.com/lovesh/ps-sig/ps16"
	"github.com/lovesh/ps-sig/ps18"
)

func mustParams(t *testing.T) *params.Params {
	t.Helper()
	p, err := params.New([]byte("test"), nil)
	require.NoError(t, err)
	return p
}

func messagesFromInts(p *params.Params, values ...int64) []kyber.Scalar {
	sigGroup := pairing.SigGroup(p.Suite)
	out := make([]kyber.Scalar, len(values))
	for i, v := range values {
		out[i] = sigGroup.Scalar().SetInt64(v)
	}
	return out
}

func challengeFor(p *params.Params, transcript []byte) kyber.Scalar {
	return pairing.HashToScalar(pairing.VerkeyGroup(p.Suite), pairing.Blake2b256, []byte("pok-challenge"), transcript)
}

// TestSelectiveDisclosureRoundTrip mirrors spec.md §8 scenario 5: L=10,
// revealed indices {2,4,9}, full round trip through to_bytes and
// get_bytes_for_challenge, then a tampered revealed value fails.
func TestSelectiveDisclosureRoundTrip(t *testing.T) {
	p := mustParams(t)
	sk, vk, err := keys.KeyGen(10, p)
	require.NoError(t, err)

	values := make([]int64, 10)
	for i := range values {
		values[i] = int64(i + 1)
	}
	messages := messagesFromInts(p, values...)

	sig, err := ps16.New(messages, sk, p)
	require.NoError(t, err)

	revealedIdx := []int{2, 4, 9}
	state, err := pok.Init16(sig, vk, p, messages, nil, revealedIdx)
	require.NoError(t, err)

	transcript, err := state.ToBytes()
	require.NoError(t, err)
	challenge := challengeFor(p, transcript)

	proof, err := state.GenProof(challenge)
	require.NoError(t, err)

	revealedMsgs := map[int]kyber.Scalar{
		2: messages[2],
		4: messages[4],
		9: messages[9],
	}

	recomputedTranscript, err := proof.GetBytesForChallenge(vk, p)
	require.NoError(t, err)
	require.Equal(t, transcript, recomputedTranscript)
	recomputedChallenge := challengeFor(p, recomputedTranscript)

	ok, err := pok.Verify(proof, vk, p, revealedMsgs, recomputedChallenge)
	require.NoError(t, err)
	require.True(t, ok)

	revealedMsgs[2] = pairing.SigGroup(p.Suite).Scalar().SetInt64(999)
	ok, err = pok.Verify(proof, vk, p, revealedMsgs, recomputedChallenge)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestVerifyRejectsMismatchedRevealedSet(t *testing.T) {
	p := mustParams(t)
	sk, vk, err := keys.KeyGen(4, p)
	require.NoError(t, err)
	messages := messagesFromInts(p, 1, 2, 3, 4)

	sig, err := ps16.New(messages, sk, p)
	require.NoError(t, err)
	state, err := pok.Init16(sig, vk, p, messages, nil, []int{1})
	require.NoError(t, err)

	transcript, err := state.ToBytes()
	require.NoError(t, err)
	challenge := challengeFor(p, transcript)
	proof, err := state.GenProof(challenge)
	require.NoError(t, err)

	_, err = pok.Verify(proof, vk, p, map[int]kyber.Scalar{0: messages[0]}, challenge)
	require.Error(t, err)
}

// TestScheme2018ForbidsRevealingFinalIndex mirrors spec.md §8 scenario 6.
func TestScheme2018ForbidsRevealingFinalIndex(t *testing.T) {
	p := mustParams(t)
	sk, vk, err := keys.KeyGen2018(5, p)
	require.NoError(t, err)
	messages := messagesFromInts(p, 1, 2, 3, 4, 5)

	sig, err := ps18.New(messages, sk, p)
	require.NoError(t, err)

	ok, err := ps18.Verify(sig, messages, vk, p)
	require.NoError(t, err)
	require.True(t, ok)

	_, err = pok.Init18(sig, vk, p, messages, nil, []int{5})
	require.Error(t, err)
}

func TestInit18SelectiveDisclosureRoundTrip(t *testing.T) {
	p := mustParams(t)
	sk, vk, err := keys.KeyGen2018(4, p)
	require.NoError(t, err)
	messages := messagesFromInts(p, 1, 2, 3, 4)

	sig, err := ps18.NewDeterministic(messages, sk, p)
	require.NoError(t, err)

	state, err := pok.Init18(sig, vk, p, messages, nil, []int{1})
	require.NoError(t, err)
	transcript, err := state.ToBytes()
	require.NoError(t, err)
	challenge := challengeFor(p, transcript)
	proof, err := state.GenProof(challenge)
	require.NoError(t, err)

	revealedMsgs := map[int]kyber.Scalar{1: messages[1]}
	ok, err := pok.Verify(proof, vk, p, revealedMsgs, challenge)
	require.NoError(t, err)
	require.True(t, ok)
}
