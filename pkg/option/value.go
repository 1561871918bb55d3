package option

import (
	"strconv"
	"strings"
)

// Value enumerates the scalar types an option can bind to. Numeric and
// boolean values are parsed with strconv, so the whole text must be
// consumed; a partial parse is an error. String values are taken as-is.
type Value interface {
	string | bool | int | int32 | int64 | uint | uint64 | float32 | float64
}

// parseValue converts raw into a value of type T. Numeric and boolean
// parsing tolerates surrounding whitespace; strings keep raw unmodified.
func parseValue[T Value](raw string) (T, error) {
	var v T
	s := strings.TrimSpace(raw)

	var err error
	switch p := any(&v).(type) {
	case *string:
		*p = raw
	case *bool:
		*p, err = strconv.ParseBool(s)
	case *int:
		var n int64
		n, err = strconv.ParseInt(s, 10, 0)
		*p = int(n)
	case *int32:
		var n int64
		n, err = strconv.ParseInt(s, 10, 32)
		*p = int32(n)
	case *int64:
		*p, err = strconv.ParseInt(s, 10, 64)
	case *uint:
		var n uint64
		n, err = strconv.ParseUint(s, 10, 0)
		*p = uint(n)
	case *uint64:
		*p, err = strconv.ParseUint(s, 10, 64)
	case *float32:
		var f float64
		f, err = strconv.ParseFloat(s, 32)
		*p = float32(f)
	case *float64:
		*p, err = strconv.ParseFloat(s, 64)
	}
	if err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}
