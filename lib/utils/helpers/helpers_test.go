package helpers

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestHelpers(t *testing.T) {
	t.Run("ParseDate", func(t *testing.T) {
		d, err := ParseDate("")
		require.NoError(t, err)
		require.Nil(t, d)
		d, err = ParseDate("2024-03-01")
		require.NoError(t, err)
		require.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), *d)
		require.Equal(t, "2024-03-01", FormatDate(d))
		_, err = ParseDate("01.03.2024")
		require.Error(t, err)
	})
	t.Run("ParseBoolFilter", func(t *testing.T) {
		require.True(t, *ParseBoolFilter("true"))
		require.False(t, *ParseBoolFilter("False"))
		require.Nil(t, ParseBoolFilter(""))
		require.Nil(t, ParseBoolFilter("maybe"))
	})
	t.Run("StrPtr", func(t *testing.T) {
		require.Nil(t, StrPtr("  "))
		require.Equal(t, "x", *StrPtr(" x "))
		require.Equal(t, "", StrValue(nil))
	})
	t.Run("Plural", func(t *testing.T) {
		require.Equal(t, "user", Plural(1, "user", "users"))
		require.Equal(t, "users", Plural(3, "user", "users"))
	})
	t.Run("IsContextDone", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		require.False(t, IsContextDone(ctx))
		cancel()
		require.True(t, IsContextDone(ctx))
	})
}
