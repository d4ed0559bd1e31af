package params_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lovesh/ps-sig/params"
)

func TestNewIsDeterministicInLabel(t *testing.T) {
	p1, err := params.New([]byte("test"), nil)
	require.NoError(t, err)
	p2, err := params.New([]byte("test"), nil)
	require.NoError(t, err)

	require.True(t, p1.G.Equal(p2.G))
	require.True(t, p1.GTilde.Equal(p2.GTilde))
}

func TestNewDiffersAcrossLabels(t *testing.T) {
	p1, err := params.New([]byte("test"), nil)
	require.NoError(t, err)
	p2, err := params.New([]byte("other"), nil)
	require.NoError(t, err)

	require.False(t, p1.G.Equal(p2.G))
	require.False(t, p1.GTilde.Equal(p2.GTilde))
}

func TestMarshalRoundTrip(t *testing.T) {
	p, err := params.New([]byte("test"), nil)
	require.NoError(t, err)

	encoded, err := p.MarshalBinary()
	require.NoError(t, err)

	var decoded params.Params
	require.NoError(t, decoded.UnmarshalBinary(encoded))

	require.True(t, p.G.Equal(decoded.G))
	require.True(t, p.GTilde.Equal(decoded.GTilde))
}
