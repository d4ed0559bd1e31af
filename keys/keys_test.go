package keys_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lovesh/ps-sig/keys"
	"github.com/lovesh/ps-sig/params"
)

func mustParams(t *testing.T) *params.Params {
	t.Helper()
	p, err := params.New([]byte("test"), nil)
	require.NoError(t, err)
	return p
}

func TestKeyGenProducesMatchingLengths(t *testing.T) {
	p := mustParams(t)
	for _, l := range []int{1, 2, 5, 10} {
		sk, vk, err := keys.KeyGen(l, p)
		require.NoError(t, err)
		require.Len(t, sk.Y, l)
		require.Equal(t, l, vk.Len())
	}
}

func TestKeyGen2018AddsAuxiliarySlot(t *testing.T) {
	p := mustParams(t)
	sk, vk, err := keys.KeyGen2018(4, p)
	require.NoError(t, err)
	require.Len(t, sk.Y, 5)
	require.Equal(t, 5, vk.Len())
}

func TestCheckCompatRejectsMismatch(t *testing.T) {
	p := mustParams(t)
	sk, vk, err := keys.KeyGen(3, p)
	require.NoError(t, err)

	require.NoError(t, keys.CheckSigkeyCompat(sk, 3))
	require.Error(t, keys.CheckSigkeyCompat(sk, 4))
	require.NoError(t, keys.CheckVerkeyCompat(vk, 3))
	require.Error(t, keys.CheckVerkeyCompat(vk, 2))
}

func TestZeroizeClearsSecretScalars(t *testing.T) {
	p := mustParams(t)
	sk, _, err := keys.KeyGen(3, p)
	require.NoError(t, err)

	zero := sk.X.Clone().Zero()
	require.False(t, sk.X.Equal(zero))

	sk.Zeroize()
	require.True(t, sk.X.Equal(zero))
	require.Nil(t, sk.Y)
}
