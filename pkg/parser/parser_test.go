package parser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nauticalab/confline/pkg/option"
)

func TestAddOption(t *testing.T) {
	t.Run("registers and returns the concrete handle", func(t *testing.T) {
		p := New()
		var count int

		opt, err := AddOption(p, "count", &count, "worker count")
		require.NoError(t, err)
		require.NotNil(t, opt)
		assert.Equal(t, "worker count", opt.Description())

		// Chaining on the returned handle keeps full type information
		opt.Default(4)
		require.NoError(t, p.ApplyDefaults())
		assert.Equal(t, 4, count)
	})

	t.Run("duplicate name fails loudly", func(t *testing.T) {
		p := New()
		var a, b int

		_, err := AddOption(p, "count", &a)
		require.NoError(t, err)

		_, err = AddOption(p, "count", &b)
		var dupErr *DuplicateNameError
		require.True(t, errors.As(err, &dupErr))
		assert.Equal(t, "count", dupErr.Name)
		assert.Equal(t, "option", dupErr.Kind)

		// The original binding stays in place
		require.NoError(t, p.Parse([]string{"count:7"}))
		assert.Equal(t, 7, a)
		assert.Zero(t, b)
	})

	t.Run("mixed variants share one registry", func(t *testing.T) {
		p := New()
		var name string
		var points []int
		var level int32
		var mode string

		_, err := AddOption(p, "name", &name)
		require.NoError(t, err)
		_, err = AddSliceOption(p, "points", &points)
		require.NoError(t, err)
		_, err = AddEnumOption(p, "level", &level)
		require.NoError(t, err)
		_, err = AddFuncOption(p, "mode",
			func(v string) error { mode = v; return nil },
			func() string { return mode },
		)
		require.NoError(t, err)

		require.NoError(t, p.Parse([]string{
			"name:foo",
			"points:1,2,3",
			"level:2",
			"mode:fast",
		}))

		assert.Equal(t, "foo", name)
		assert.Equal(t, []int{1, 2, 3}, points)
		assert.Equal(t, int32(2), level)
		assert.Equal(t, "fast", mode)
	})
}

func TestParserOptions(t *testing.T) {
	p := New()
	var v int
	_, err := AddOption(p, "count", &v)
	require.NoError(t, err)

	opt, ok := p.Option("count")
	require.True(t, ok)
	assert.Equal(t, "count", opt.Name())

	_, ok = p.Option("missing")
	assert.False(t, ok)

	all := p.Options()
	assert.Len(t, all, 1)

	// The returned map is a copy
	delete(all, "count")
	_, ok = p.Option("count")
	assert.True(t, ok)
}

func TestApplyDefaults(t *testing.T) {
	p := New()
	var count int
	var name string
	var points []int

	cOpt, err := AddOption(p, "count", &count)
	require.NoError(t, err)
	cOpt.Default(42)

	_, err = AddOption(p, "name", &name) // no default
	require.NoError(t, err)

	sOpt, err := AddSliceOption(p, "points", &points)
	require.NoError(t, err)
	sOpt.Default("1,2,3")

	require.NoError(t, p.ApplyDefaults())
	assert.Equal(t, 42, count)
	assert.Equal(t, "", name)
	assert.Equal(t, []int{1, 2, 3}, points)
}

func TestDelimiterConfiguration(t *testing.T) {
	t.Run("default delimiter", func(t *testing.T) {
		p := New()
		assert.Equal(t, ":", p.Delimiter())
	})

	t.Run("custom delimiter", func(t *testing.T) {
		p := New(WithDelimiter("="))
		var v int
		_, err := AddOption(p, "count", &v)
		require.NoError(t, err)

		require.NoError(t, p.Parse([]string{"count=5"}))
		assert.Equal(t, 5, v)
	})

	t.Run("empty delimiter keeps the default", func(t *testing.T) {
		p := New(WithDelimiter(""))
		assert.Equal(t, ":", p.Delimiter())
	})

	t.Run("name and description", func(t *testing.T) {
		p := New(WithName("tuning", "runtime tuning knobs"))
		assert.Equal(t, "tuning", p.Name())
		assert.Equal(t, "runtime tuning knobs", p.Description())
	})
}

func TestOptionInterfaceCompliance(t *testing.T) {
	// Every variant must satisfy the type-erased interface
	var i int
	var s []string
	var c int64
	var _ option.Option = option.NewScalar("a", &i)
	var _ option.Option = option.NewSequence("b", &s)
	var _ option.Option = option.NewEnum("c", &c)
	var _ option.Option = option.NewFunc[int]("d", nil, nil)
}
