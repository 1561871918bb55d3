package option

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFuncSetValue(t *testing.T) {
	t.Run("fallback parse forwards to the setter", func(t *testing.T) {
		var stored int
		opt := NewFunc("count",
			func(v int) error { stored = v; return nil },
			func() int { return stored },
		)

		require.NoError(t, opt.SetValue("42"))
		assert.Equal(t, 42, stored)
		assert.Equal(t, 42, opt.Get())
	})

	t.Run("fallback parse failure never invokes the setter", func(t *testing.T) {
		calls := 0
		opt := NewFunc("count",
			func(v int) error { calls++; return nil },
			nil,
		)

		err := opt.SetValue("bogus")
		var parseErr *ParseError
		require.True(t, errors.As(err, &parseErr))
		assert.Zero(t, calls, "a failed conversion must not reach the setter")
	})

	t.Run("transform replaces the generic parse", func(t *testing.T) {
		var stored string
		opt := NewFunc("mode",
			func(v string) error { stored = v; return nil },
			func() string { return stored },
		).Transform(func(raw string) (string, error) {
			return strings.ToUpper(strings.TrimSpace(raw)), nil
		})

		require.NoError(t, opt.SetValue(" fast "))
		assert.Equal(t, "FAST", stored)
	})

	t.Run("transform failure is a ParseError", func(t *testing.T) {
		opt := NewFunc("mode",
			func(v string) error { return nil },
			nil,
		).Transform(func(raw string) (string, error) {
			return "", fmt.Errorf("no such mode %q", raw)
		})

		err := opt.SetValue("warp")
		var parseErr *ParseError
		require.True(t, errors.As(err, &parseErr))
		assert.Equal(t, "warp", parseErr.Raw)
	})

	t.Run("setter errors propagate with the option name", func(t *testing.T) {
		opt := NewFunc("count",
			func(v int) error { return fmt.Errorf("rejected") },
			nil,
		)

		err := opt.SetValue("1")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "count")
	})

	t.Run("nil getter yields the zero value", func(t *testing.T) {
		opt := NewFunc[int]("count", func(int) error { return nil }, nil)
		assert.Zero(t, opt.Get())
	})
}

func TestFuncApplyDefault(t *testing.T) {
	var stored int
	opt := NewFunc("count",
		func(v int) error { stored = v; return nil },
		func() int { return stored },
	).Default(8)

	require.NoError(t, opt.ApplyDefault())
	assert.Equal(t, 8, stored)

	noDefault := NewFunc("other", func(v int) error { stored = v; return nil }, nil)
	require.NoError(t, noDefault.ApplyDefault())
	assert.Equal(t, 8, stored, "no configured default must be a no-op")
}
