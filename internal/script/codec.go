package script

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/san-kum/dynarray"
)

// Codec converts between script text and element values.
type Codec[T comparable] struct {
	Parse  func(string) (T, error)
	Format func(T) string
}

func IntCodec() Codec[int] {
	return Codec[int]{
		Parse: func(s string) (int, error) {
			v, err := strconv.Atoi(s)
			if err != nil {
				return 0, fmt.Errorf("invalid int %q", s)
			}
			return v, nil
		},
		Format: strconv.Itoa,
	}
}

func StringCodec() Codec[string] {
	return Codec[string]{
		Parse: func(s string) (string, error) {
			if unq, err := strconv.Unquote(s); err == nil {
				return unq, nil
			}
			return s, nil
		},
		Format: strconv.Quote,
	}
}

// OptionCodec reads "none" as the absent value and anything else as an int.
func OptionCodec() Codec[dynarray.Option[int]] {
	ints := IntCodec()
	return Codec[dynarray.Option[int]]{
		Parse: func(s string) (dynarray.Option[int], error) {
			if strings.EqualFold(s, "none") {
				return dynarray.None[int](), nil
			}
			v, err := ints.Parse(s)
			if err != nil {
				return dynarray.None[int](), err
			}
			return dynarray.Some(v), nil
		},
		Format: func(o dynarray.Option[int]) string { return o.String() },
	}
}
