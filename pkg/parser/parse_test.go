package parser

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nauticalab/confline/pkg/option"
)

func TestParseEndToEnd(t *testing.T) {
	p := New()
	var name string
	var count int
	var values []int

	_, err := AddOption(p, "name", &name)
	require.NoError(t, err)
	_, err = AddOption(p, "count", &count)
	require.NoError(t, err)
	vOpt, err := AddSliceOption(p, "values", &values)
	require.NoError(t, err)
	vOpt.Expected(3)

	require.NoError(t, p.Parse([]string{
		"# comment",
		"",
		"name:foo",
		"count:3",
		"values:1,2,3",
	}))

	assert.Equal(t, "foo", name)
	assert.Equal(t, 3, count)
	assert.Equal(t, []int{1, 2, 3}, values)
}

func TestParseSkipRules(t *testing.T) {
	newParser := func(t *testing.T) (*Parser, *int) {
		t.Helper()
		p := New()
		v := 99
		_, err := AddOption(p, "count", &v)
		require.NoError(t, err)
		return p, &v
	}

	t.Run("comment lines never affect options", func(t *testing.T) {
		p, v := newParser(t)
		require.NoError(t, p.Parse([]string{"# count:1", "   # count:2"}))
		assert.Equal(t, 99, *v)
	})

	t.Run("blank lines are ignored", func(t *testing.T) {
		p, v := newParser(t)
		require.NoError(t, p.Parse([]string{"", "   ", "\t"}))
		assert.Equal(t, 99, *v)
	})

	t.Run("line without delimiter is skipped without error", func(t *testing.T) {
		p, v := newParser(t)
		require.NoError(t, p.Parse([]string{"count 3"}))
		assert.Equal(t, 99, *v)
	})

	t.Run("unknown keys are silently ignored", func(t *testing.T) {
		p, v := newParser(t)
		require.NoError(t, p.Parse([]string{"other:5", "count:3"}))
		assert.Equal(t, 3, *v)
	})
}

func TestParseOrderingAndOverrides(t *testing.T) {
	p := New()
	var count int
	var points []int

	_, err := AddOption(p, "count", &count)
	require.NoError(t, err)
	_, err = AddSliceOption(p, "points", &points)
	require.NoError(t, err)

	require.NoError(t, p.Parse([]string{
		"count:1",
		"points:1,2,3",
		"count:2",
		"points:4,5",
	}))

	assert.Equal(t, 2, count, "later scalar assignment wins")
	assert.Equal(t, []int{4, 5}, points, "later sequence assignment replaces, not merges")

	// Re-running Parse layers further overrides; no reset is needed
	require.NoError(t, p.Parse([]string{"count:10"}))
	assert.Equal(t, 10, count)
}

func TestParseFailFast(t *testing.T) {
	p := New()
	var a, b int
	_, err := AddOption(p, "a", &a)
	require.NoError(t, err)
	_, err = AddOption(p, "b", &b)
	require.NoError(t, err)

	err = p.Parse([]string{
		"a:1",
		"b:bogus",
		"a:5",
	})
	require.Error(t, err)

	var lineErr *LineError
	require.True(t, errors.As(err, &lineErr))
	assert.Equal(t, 2, lineErr.LineNo)
	assert.Equal(t, "b:bogus", lineErr.Line)
	assert.Equal(t, "b", lineErr.Option)

	var parseErr *option.ParseError
	assert.True(t, errors.As(err, &parseErr), "the option error stays reachable through the wrapper")

	assert.Equal(t, 1, a, "lines before the failure are applied, the rest are not")
	assert.Zero(t, b)
}

func TestParseCountMismatchSurfaces(t *testing.T) {
	p := New()
	var points []int
	opt, err := AddSliceOption(p, "points", &points)
	require.NoError(t, err)
	opt.Expected(3)

	err = p.Parse([]string{"points:1,2"})
	var countErr *option.CountMismatchError
	require.True(t, errors.As(err, &countErr))
	assert.Empty(t, points)
}

func TestParseValueSplitting(t *testing.T) {
	p := New()
	var endpoint string
	_, err := AddOption(p, "endpoint", &endpoint)
	require.NoError(t, err)

	// Only the first delimiter occurrence splits; the rest belongs to
	// the value.
	require.NoError(t, p.Parse([]string{"endpoint:localhost:8080"}))
	assert.Equal(t, "localhost:8080", endpoint)
}

func TestParseReader(t *testing.T) {
	p := New()
	var name string
	var count int
	_, err := AddOption(p, "name", &name)
	require.NoError(t, err)
	_, err = AddOption(p, "count", &count)
	require.NoError(t, err)

	input := "# header\nname:foo\ncount:3\n"
	require.NoError(t, p.ParseReader(strings.NewReader(input)))
	assert.Equal(t, "foo", name)
	assert.Equal(t, 3, count)
}

func TestParseReaderLongLine(t *testing.T) {
	p := New()
	var points []int
	_, err := AddSliceOption(p, "points", &points)
	require.NoError(t, err)

	// A sequence value well past bufio's 64KiB default line cap.
	elements := make([]string, 40000)
	for i := range elements {
		elements[i] = "7"
	}
	input := "points:" + strings.Join(elements, ",") + "\n"
	require.Greater(t, len(input), 64*1024)

	require.NoError(t, p.ParseReader(strings.NewReader(input)))
	assert.Len(t, points, len(elements))
}

func TestObserver(t *testing.T) {
	type event struct{ name, value string }
	var seen []event

	p := New(WithObserver(func(name, value string) {
		seen = append(seen, event{name, value})
	}))
	var count int
	_, err := AddOption(p, "count", &count)
	require.NoError(t, err)

	require.NoError(t, p.Parse([]string{
		"# comment",
		"count:3",
		"unknown:1",
	}))

	// Only dispatched keys reach the observer; comments and unknown
	// keys do not.
	require.Len(t, seen, 1)
	assert.Equal(t, event{"count", "3"}, seen[0])
}
