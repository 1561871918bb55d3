package option

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type color int

const (
	colorRed color = iota
	colorGreen
	colorBlue
)

func TestEnumSetValue(t *testing.T) {
	t.Run("parses the underlying integer", func(t *testing.T) {
		var v color
		opt := NewEnum("color", &v)

		require.NoError(t, opt.SetValue("2"))
		assert.Equal(t, colorBlue, v)
	})

	t.Run("non-integer input fails and leaves value unchanged", func(t *testing.T) {
		v := colorGreen
		opt := NewEnum("color", &v)

		err := opt.SetValue("blue")
		var parseErr *ParseError
		require.True(t, errors.As(err, &parseErr))
		assert.Equal(t, colorGreen, v)
	})

	t.Run("whitespace is tolerated", func(t *testing.T) {
		var v color
		opt := NewEnum("color", &v)

		require.NoError(t, opt.SetValue(" 1 "))
		assert.Equal(t, colorGreen, v)
	})
}

func TestEnumApplyDefault(t *testing.T) {
	t.Run("typed default round-trips through its integer form", func(t *testing.T) {
		var v color
		opt := NewEnum("color", &v).Default(colorBlue)

		require.NoError(t, opt.ApplyDefault())
		assert.Equal(t, colorBlue, opt.Get())
	})

	t.Run("no default configured is a no-op", func(t *testing.T) {
		v := colorRed
		opt := NewEnum("color", &v)

		require.NoError(t, opt.ApplyDefault())
		assert.Equal(t, colorRed, v)
	})
}
