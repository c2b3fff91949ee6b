package param

import (
	"strings"
	"unicode/utf8"
)

var (
	isTchar    [256]bool
	isAttrChar [256]bool
)

func init() {
	alnum := "0123456789" +
		"abcdefghijklmnopqrstuvwxyz" +
		"ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	for _, c := range alnum + "!#$%&'*+-.^_`|~" {
		isTchar[c] = true
	}
	// attr-char (RFC 5987 Section 3.2.1)
	for _, c := range alnum + "!#$&+-.^_`|~" {
		isAttrChar[c] = true
	}
}

// IsToken reports whether s is a non-empty RFC 7230 token.
func IsToken(s string) bool {
	return s != "" && scanToken(s, 0) == len(s)
}

// Token splits s into its leading token, which may be empty, and the text
// that follows it.
func Token(s string) (tok, rest string) {
	i := scanToken(s, 0)
	return s[:i], s[i:]
}

// scanToken returns the offset of the first byte at or after i that is not a
// tchar.
func scanToken(s string, i int) int {
	for i < len(s) && isTchar[s[i]] {
		i++
	}
	return i
}

// Quote wraps s in double quotes, escaping every '"' and '\' with a preceding
// backslash.
func Quote(s string) string {
	b := &strings.Builder{}
	writeQuoted(b, s)
	return b.String()
}

func writeQuoted(b *strings.Builder, s string) {
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		if s[i] == '"' || s[i] == '\\' {
			b.WriteByte('\\')
		}
		b.WriteByte(s[i])
	}
	b.WriteByte('"')
}

// Unquote takes the interior of a quoted-string, the text between the
// surrounding double quotes, and returns the literal text it represents. Any
// backslash-escaped character is replaced by the character itself.
//
// Bytes that are not part of a valid UTF-8 sequence are obs-text and are read
// as ISO-8859-1.
func Unquote(s string) string {
	if strings.IndexByte(s, '\\') < 0 && utf8.ValidString(s) {
		return s
	}

	b := &strings.Builder{}
	b.Grow(len(s))
	for i := 0; i < len(s); {
		if s[i] == '\\' && i+1 < len(s) {
			i++
		}

		if s[i] < utf8.RuneSelf {
			b.WriteByte(s[i])
			i++
			continue
		}

		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			r = rune(s[i])
		}
		b.WriteRune(r)
		i += size
	}
	return b.String()
}

// Grammar describes the dialect of the header grammar in use by a particular
// header. Content-Disposition and Content-Type agree on tokens, but differ
// slightly in what whitespace and quoted characters they admit.
type Grammar struct {
	// Name is used in error messages.
	Name string

	ows        string
	qdtext     [utf8.RuneSelf]bool
	quotedPair [utf8.RuneSelf]bool

	// quotedPairObs allows obs-text (U+0080 to U+00FF) to be escaped.
	quotedPairObs bool
}

// Disposition is the grammar of Content-Disposition (RFC 6266). Optional
// whitespace is SP or HTAB and quoted-pair admits visible ASCII only.
var Disposition = newGrammar("content-disposition", " \t", "", "\x20-\x7e", false)

// MediaType is the grammar of Content-Type (RFC 7231 Section 3.1.1.1).
// Optional whitespace is SP only and quoted-pair admits VT and all of
// "\x20".."\xff".
var MediaType = newGrammar("content-type", " ", "\x0b", "\x0b\x20-\x7e", true)

func newGrammar(name, ows, qdtext, pair string, pairObs bool) *Grammar {
	g := &Grammar{Name: name, ows: ows, quotedPairObs: pairObs}
	for c := 0x20; c <= 0x7e; c++ {
		if c != '"' && c != '\\' {
			g.qdtext[c] = true
		}
	}
	for i := 0; i < len(qdtext); i++ {
		g.qdtext[qdtext[i]] = true
	}
	for i := 0; i < len(pair); i++ {
		if i+2 < len(pair) && pair[i+1] == '-' {
			for c := pair[i]; c <= pair[i+2]; c++ {
				g.quotedPair[c] = true
			}
			i += 2
			continue
		}
		g.quotedPair[pair[i]] = true
	}
	return g
}

// SkipOWS returns the offset of the first byte at or after i that is not
// optional whitespace in this grammar.
func (g *Grammar) SkipOWS(s string, i int) int {
	for i < len(s) && strings.IndexByte(g.ows, s[i]) >= 0 {
		i++
	}
	return i
}

// obsText returns the width of the obs-text character starting at s[i] or 0
// if there is none. A valid UTF-8 sequence counts when it encodes U+0080 to
// U+00FF; any other non-ASCII byte that does not start a valid sequence is
// taken as a single ISO-8859-1 octet.
func obsText(s string, i int) int {
	if s[i] < utf8.RuneSelf {
		return 0
	}
	r, size := utf8.DecodeRuneInString(s[i:])
	switch {
	case r == utf8.RuneError && size == 1:
		return 1
	case r <= 0xff:
		return size
	default:
		return 0
	}
}

// scanQuoted expects a quoted-string to start at s[i] and returns the offset
// just past the closing quote.
func (g *Grammar) scanQuoted(s string, i int) (int, bool) {
	if i >= len(s) || s[i] != '"' {
		return i, false
	}
	i++
	for i < len(s) {
		c := s[i]
		switch {
		case c == '"':
			return i + 1, true
		case c == '\\':
			if i+1 >= len(s) {
				return i, false
			}
			if s[i+1] < utf8.RuneSelf {
				if !g.quotedPair[s[i+1]] {
					return i, false
				}
				i += 2
				continue
			}
			n := 0
			if g.quotedPairObs {
				n = obsText(s, i+1)
			}
			if n == 0 {
				return i, false
			}
			i += 1 + n
		case c < utf8.RuneSelf:
			if !g.qdtext[c] {
				return i, false
			}
			i++
		default:
			n := obsText(s, i)
			if n == 0 {
				return i, false
			}
			i += n
		}
	}
	return i, false
}
