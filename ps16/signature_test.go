package ps16_test

import (
	"testing"

	"github.com/drand/kyber"
	"github.com/stretchr/testify/require"

	"github.com/lovesh/ps-sig/keys"
	"github.com/lovesh/ps-sig/pairing"
	"github.com/lovesh/ps-sig/params"
	"github.com/lovesh/ps-sig/ps16"
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

func TestSignVerifyRoundTrip(t *testing.T) {
	p := mustParams(t)
	for _, l := range []int{1, 2, 3, 5} {
		sk, vk, err := keys.KeyGen(l, p)
		require.NoError(t, err)

		values := make([]int64, l)
		for i := range values {
			values[i] = int64(i + 1)
		}
		messages := messagesFromInts(p, values...)

		sig, err := ps16.New(messages, sk, p)
		require.NoError(t, err)

		ok, err := ps16.Verify(sig, messages, vk, p)
		require.NoError(t, err)
		require.True(t, ok, "L=%d", l)
	}
}

func TestDeterministicSigningIsByteEqual(t *testing.T) {
	p := mustParams(t)
	sk, vk, err := keys.KeyGen(3, p)
	require.NoError(t, err)
	messages := messagesFromInts(p, 1, 2, 3)

	sig1, err := ps16.NewDeterministic(messages, sk, p.Suite)
	require.NoError(t, err)
	sig2, err := ps16.NewDeterministic(messages, sk, p.Suite)
	require.NoError(t, err)

	b1, err := sig1.ToBytes()
	require.NoError(t, err)
	b2, err := sig2.ToBytes()
	require.NoError(t, err)
	require.Equal(t, b1, b2)

	ok, err := ps16.Verify(sig1, messages, vk, p)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestTamperedMessageFailsVerification(t *testing.T) {
	p := mustParams(t)
	sk, vk, err := keys.KeyGen(3, p)
	require.NoError(t, err)
	messages := messagesFromInts(p, 1, 2, 3)

	sig, err := ps16.NewDeterministic(messages, sk, p.Suite)
	require.NoError(t, err)

	tampered := messagesFromInts(p, 1, 2, 4)
	ok, err := ps16.Verify(sig, tampered, vk, p)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestTamperedSignatureComponentFailsVerification(t *testing.T) {
	p := mustParams(t)
	sk, vk, err := keys.KeyGen(2, p)
	require.NoError(t, err)
	messages := messagesFromInts(p, 7, 11)

	sig, err := ps16.NewDeterministic(messages, sk, p.Suite)
	require.NoError(t, err)

	sig.Sigma2 = sig.Sigma2.Clone().Add(sig.Sigma2, p.G)
	ok, err := ps16.Verify(sig, messages, vk, p)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestVerifyRejectsLengthMismatch(t *testing.T) {
	p := mustParams(t)
	sk, vk, err := keys.KeyGen(3, p)
	require.NoError(t, err)
	messages := messagesFromInts(p, 1, 2, 3)

	sig, err := ps16.NewDeterministic(messages, sk, p.Suite)
	require.NoError(t, err)

	_, err = ps16.Verify(sig, messages[:2], vk, p)
	require.Error(t, err)
}

func TestSignatureRoundTripsThroughBytes(t *testing.T) {
	p := mustParams(t)
	sk, _, err := keys.KeyGen(2, p)
	require.NoError(t, err)
	messages := messagesFromInts(p, 7, 11)

	sig, err := ps16.New(messages, sk, p)
	require.NoError(t, err)

	encoded, err := sig.ToBytes()
	require.NoError(t, err)

	decoded, err := ps16.FromBytes(p.Suite, encoded)
	require.NoError(t, err)
	require.True(t, sig.Sigma1.Equal(decoded.Sigma1))
	require.True(t, sig.Sigma2.Equal(decoded.Sigma2))
}
