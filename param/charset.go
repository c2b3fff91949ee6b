package param

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// charsets holds the character sets permitted in an ext-value, keyed by lower
// case name. RFC 5987 requires recipients to support these two and no others.
var charsets = map[string]encoding.Encoding{
	"utf-8":      unicode.UTF8,
	"iso-8859-1": charmap.ISO8859_1,
}

// legacyC1 is replaced with a question mark after decoding an ext-value, in
// either charset.
const legacyC1 = "\u0082"

// DecodeCharset decodes b from the named charset into a string. The charset
// name is matched without regard to case and must be "utf-8" or
// "iso-8859-1". Otherwise, ErrUnsupportedCharset is returned.
//
// Invalid UTF-8 sequences do not cause an error. They are replaced with
// unicode.ReplacementChar so that a partially garbled value still decodes.
func DecodeCharset(charset string, b []byte) (string, error) {
	e, ok := charsets[strings.ToLower(charset)]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedCharset, charset)
	}

	db, err := e.NewDecoder().Bytes(b)
	if err != nil {
		return "", err
	}

	return strings.ReplaceAll(string(db), legacyC1, "?"), nil
}
