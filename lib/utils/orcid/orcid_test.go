package orcid

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOrcid(t *testing.T) {
	t.Run(`Check valid identifiers`, func(t *testing.T) {
		require.True(t, Check("0000-0002-1825-0097"))
		require.True(t, Check("0000-0001-5109-3700"))
		require.True(t, Check("0000-0002-1694-233X"))
		require.True(t, Check("0000-0002-1694-233x"))
	})

	t.Run(`Check invalid identifiers`, func(t *testing.T) {
		require.False(t, Check("0000-0002-1825-0098"))
		require.False(t, Check("0000-0002-1694-2330"))
		require.False(t, Check("0000-0002-1825-009A"))
		require.False(t, Check(""))
	})

	t.Run(`IsValidFormat check`, func(t *testing.T) {
		require.True(t, IsValidFormat("0000-0002-1825-0097"))
		require.True(t, IsValidFormat("0000-0002-1694-233X"))
		require.False(t, IsValidFormat("0000000218250097"))
		require.False(t, IsValidFormat("0000-0002-1825-009"))
		require.False(t, IsValidFormat("0000-0002-1694-233x"))
		require.False(t, IsValidFormat("https://orcid.org/0000-0002-1825-0097"))
	})

	t.Run(`URL check`, func(t *testing.T) {
		require.Equal(t, "https://orcid.org/0000-0002-1825-0097", URL("", "0000-0002-1825-0097"))
		require.Equal(t, "https://sandbox.orcid.org/0000-0002-1825-0097", URL("https://sandbox.orcid.org", "0000-0002-1825-0097"))
	})
}
