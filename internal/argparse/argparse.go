// Package argparse validates the command-line values handed to the sorter.
// Every argument may carry several whitespace-separated numbers; anything
// other than digits and whitespace rejects the whole run.
package argparse

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

var (
	ErrNoValues     = errors.New("no values given")
	ErrInvalidValue = errors.New("invalid arg in given values")
	ErrOverflow     = errors.New("value out of range")
)

// ArgError reports the offending argument. Position is 1-based, matching how
// a shell user counts arguments.
type ArgError struct {
	Position int
	Arg      string
	Err      error
}

func (e *ArgError) Error() string {
	return fmt.Sprintf("argument %d (%q): %v", e.Position, e.Arg, e.Err)
}

func (e *ArgError) Unwrap() error { return e.Err }

// Parse returns the values of args in order. Values must fit a 32-bit signed
// integer; no sign is accepted, so every value is non-negative.
func Parse(args []string) ([]int, error) {
	if len(args) == 0 {
		return nil, ErrNoValues
	}
	values := make([]int, 0, len(args))
	for i, arg := range args {
		if !digitsOnly(arg) {
			return nil, &ArgError{Position: i + 1, Arg: arg, Err: ErrInvalidValue}
		}
		for _, tok := range strings.Fields(arg) {
			v, err := strconv.ParseInt(tok, 10, 32)
			if err != nil {
				if errors.Is(err, strconv.ErrRange) {
					return nil, &ArgError{Position: i + 1, Arg: arg,
						Err: fmt.Errorf("%w: %s > %d", ErrOverflow, tok, math.MaxInt32)}
				}
				return nil, &ArgError{Position: i + 1, Arg: arg, Err: ErrInvalidValue}
			}
			values = append(values, int(v))
		}
	}
	if len(values) == 0 {
		return nil, ErrNoValues
	}
	return values, nil
}

func digitsOnly(s string) bool {
	for _, r := range s {
		if (r < '0' || r > '9') && !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}
