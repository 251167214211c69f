package censor

import (
	"errors"
	"fmt"
)

// ErrMissingPattern is returned when a request names the Custom kind but
// carries no pattern to compile.
var ErrMissingPattern = errors.New("custom kind requires a pattern")

var _ error = InvalidPatternError{}

// InvalidPatternError reports a caller-supplied pattern that does not
// compile. It wraps the regexp error.
type InvalidPatternError struct {
	Pattern string
	Err     error
}

func (e InvalidPatternError) Error() string {
	return fmt.Sprintf("invalid custom pattern, pattern=%s, error=%s", e.Pattern, e.Err.Error())
}

func (e InvalidPatternError) Unwrap() error {
	return e.Err
}

var _ error = EmptyWordError{}

// EmptyWordError rejects a word batch holding an empty entry. Index points
// at the offending entry in the submitted slice.
type EmptyWordError struct {
	Index int
}

func (e EmptyWordError) Error() string {
	return fmt.Sprintf("word must not be empty, index=%d", e.Index)
}
