package edgelist

import (
	"errors"
	"fmt"
)

// ErrParse indicates a malformed edge list.
var ErrParse = errors.New("edgelist: parse failure")

// ParseError locates a malformed token. It matches ErrParse under errors.Is
// and unwraps to the underlying strconv error as well.
type ParseError struct {
	Line  int    // 1-based line of the offending token
	Token string // the offending token
	Err   error  // underlying cause
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("edgelist: line %d: bad weight %q: %v", e.Line, e.Token, e.Err)
}

func (e *ParseError) Unwrap() []error {
	return []error{ErrParse, e.Err}
}
