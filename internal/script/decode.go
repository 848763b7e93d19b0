package script

import (
	"fmt"
	"strconv"
)

// Decoder converts a step argument into a list element.
type Decoder[T comparable] interface {
	Decode(s string) (T, error)
}

// IntDecoder parses base-10 integers.
type IntDecoder struct{}

// Decode returns ErrBadValue when s is not an integer.
func (IntDecoder) Decode(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrBadValue, s)
	}
	return v, nil
}

// StringDecoder uses arguments verbatim.
type StringDecoder struct{}

func (StringDecoder) Decode(s string) (string, error) {
	return s, nil
}

// parseIndex reads a list index argument.
func parseIndex(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: index %q is not an integer", ErrBadValue, s)
	}
	return v, nil
}
