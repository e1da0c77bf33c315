package initchecker

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type provider interface{ Name() string }

type impl struct{}

func (impl) Name() string { return "impl" }

func TestCheckInit(t *testing.T) {
	t.Run("initialized", func(t *testing.T) {
		var p provider = impl{}
		require.NotPanics(t, func() { CheckInit("store", p, "other", &impl{}) })
	})
	t.Run("nil interface", func(t *testing.T) {
		var p provider
		require.PanicsWithValue(t, "store dependency not initialized", func() { CheckInit("store", p) })
	})
	t.Run("typed nil pointer", func(t *testing.T) {
		var p *impl
		require.Panics(t, func() { CheckInit("store", p) })
	})
	t.Run("odd arguments", func(t *testing.T) {
		require.Panics(t, func() { CheckInit("store") })
	})
}
