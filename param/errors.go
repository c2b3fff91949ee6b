package param

import (
	"errors"
	"fmt"
)

// Errors returned while parsing or constructing parameterized header values.
var (
	// ErrInvalidGrammar is returned when the primary value or a parameter does
	// not match the expected shape, or when unconsumed text remains after the
	// last parameter.
	ErrInvalidGrammar = errors.New("invalid header grammar")

	// ErrDuplicateParameter is returned when the same parameter name appears
	// twice in a single header value.
	ErrDuplicateParameter = errors.New("duplicate parameter")

	// ErrUnsupportedCharset is returned when an ext-value names a charset
	// other than UTF-8 or ISO-8859-1.
	ErrUnsupportedCharset = errors.New("unsupported charset in extended value")

	// ErrInvalidFallback is returned when an explicit fallback filename
	// contains characters that cannot be represented in ISO-8859-1.
	ErrInvalidFallback = errors.New("fallback must be an ISO-8859-1 string")

	// ErrNonTextParameter is returned when a parameter value supplied during
	// construction is not valid text.
	ErrNonTextParameter = errors.New("parameter value is not text")
)

// ParseError describes where parsing a header value failed. Err holds one of
// the sentinel errors of this package, so errors.Is works on a ParseError.
type ParseError struct {
	Input  string // the complete header value being parsed
	Offset int    // byte offset at which matching stopped
	Err    error
}

// Error returns the error message.
func (err *ParseError) Error() string {
	return fmt.Sprintf("%v at offset %d in %q", err.Err, err.Offset, err.Input)
}

// Unwrap returns the underlying sentinel error.
func (err *ParseError) Unwrap() error {
	return err.Err
}
