package param

import (
	"fmt"
	"strings"
)

// DecodeExtValue decodes an RFC 5987 ext-value of the form
//
//	charset "'" [ language ] "'" value-chars
//
// and returns the decoded text along with the language tag, which may be
// empty. The charset must be UTF-8 or ISO-8859-1 (in any case). Any other
// charset results in ErrUnsupportedCharset. A value that does not match the
// grammar results in ErrInvalidGrammar.
func DecodeExtValue(v string) (text, lang string, err error) {
	i := scanCharset(v, 0)
	if i == 0 || i >= len(v) || v[i] != '\'' {
		return "", "", fmt.Errorf("%w: bad ext-value charset in %q", ErrInvalidGrammar, v)
	}
	charset := v[:i]

	j := strings.IndexByte(v[i+1:], '\'')
	if j < 0 {
		return "", "", fmt.Errorf("%w: ext-value missing apostrophe in %q", ErrInvalidGrammar, v)
	}
	lang = v[i+1 : i+1+j]
	if !isLanguage(lang) {
		return "", "", fmt.Errorf("%w: bad ext-value language %q", ErrInvalidGrammar, lang)
	}

	raw, ok := pctDecode(v[i+j+2:])
	if !ok {
		return "", "", fmt.Errorf("%w: bad ext-value encoding in %q", ErrInvalidGrammar, v)
	}

	text, err = DecodeCharset(charset, raw)
	if err != nil {
		return "", "", err
	}
	return text, lang, nil
}

// EncodeExtValue encodes text as a UTF-8 ext-value with no language tag. Every
// byte outside of the RFC 3986 unreserved set is percent-encoded.
func EncodeExtValue(text string) string {
	b := &strings.Builder{}
	writeExtValue(b, text)
	return b.String()
}

func writeExtValue(b *strings.Builder, text string) {
	b.Grow(len("UTF-8''") + len(text))
	b.WriteString("UTF-8''")
	for i := 0; i < len(text); i++ {
		b.WriteString(pctEncoding[text[i]])
	}
}

// pctEncoding holds the precomputed encoding of every byte. A byte is left
// alone only if it is an unreserved character, which keeps the output a valid
// token and keeps it compatible with naive percent decoders.
var pctEncoding [256]string

func init() {
	const hex = "0123456789ABCDEF"
	for i := 0; i <= 0xFF; i++ {
		b := byte(i)
		unreserved := (b >= '0' && b <= '9') ||
			(b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') ||
			strings.IndexByte("-._~", b) >= 0
		if unreserved {
			pctEncoding[b] = string([]byte{b})
		} else {
			pctEncoding[b] = string([]byte{'%', hex[b>>4], hex[b&0xF]})
		}
	}
}

// scanCharset returns the offset just past the mime-charset beginning at
// s[i].
func scanCharset(s string, i int) int {
	for i < len(s) {
		c := s[i]
		isMimeCharsetc := (c >= '0' && c <= '9') ||
			(c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') ||
			strings.IndexByte("!#$%&+-^_`{}~", c) >= 0
		if !isMimeCharsetc {
			break
		}
		i++
	}
	return i
}

// isLanguage accepts the empty string, 2*3ALPHA *3("-" 3ALPHA), or 4*8ALPHA.
func isLanguage(s string) bool {
	if s == "" {
		return true
	}

	n := countAlpha(s)
	if n >= 4 && n <= 8 {
		return n == len(s)
	}
	if n < 2 || n > 3 {
		return false
	}

	for ext, rest := 0, s[n:]; rest != ""; ext++ {
		if ext == 3 || rest[0] != '-' || countAlpha(rest[1:]) != 3 {
			return false
		}
		rest = rest[4:]
	}
	return true
}

func countAlpha(s string) int {
	i := 0
	for i < len(s) && (s[i] >= 'A' && s[i] <= 'Z' || s[i] >= 'a' && s[i] <= 'z') {
		i++
	}
	return i
}

// pctDecode decodes a non-empty sequence of pct-encoded octets and attr-chars.
func pctDecode(s string) ([]byte, bool) {
	if s == "" {
		return nil, false
	}

	b := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '%' {
			if i+2 >= len(s) {
				return nil, false
			}
			hi, ok1 := unhex(s[i+1])
			lo, ok2 := unhex(s[i+2])
			if !ok1 || !ok2 {
				return nil, false
			}
			b = append(b, hi<<4|lo)
			i += 2
			continue
		}
		if !isAttrChar[c] {
			return nil, false
		}
		b = append(b, c)
	}
	return b, true
}

func unhex(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
