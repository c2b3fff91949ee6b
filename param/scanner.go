package param

import "strings"

// Param is a single parameter matched by a Scanner.
type Param struct {
	// Name is the parameter name as written in the header.
	Name string

	// Raw is the value as written in the header: either a token or a
	// quoted-string, including its surrounding quotes.
	Raw string

	// Offset is the byte offset of the semi-colon that introduced the
	// parameter.
	Offset int
}

// Key returns the parameter name in lower case.
func (p Param) Key() string {
	return strings.ToLower(p.Name)
}

// Quoted returns true if the value was written as a quoted-string.
func (p Param) Quoted() bool {
	return len(p.Raw) > 0 && p.Raw[0] == '"'
}

// Text returns the literal text of the value, with the quoted-string
// surroundings and escapes removed.
func (p Param) Text() string {
	if p.Quoted() {
		return Unquote(p.Raw[1 : len(p.Raw)-1])
	}
	return p.Raw
}

// Extended returns true if the parameter name marks an RFC 5987 ext-value.
// This is only the case when the first asterisk in the name is also its last
// character, so "filename*" is extended while "filename*0*" is not.
func (p Param) Extended() bool {
	return strings.IndexByte(p.Name, '*') == len(p.Name)-1
}

// Scanner walks the "; name=value" parameters of a header value. Each
// parameter must begin exactly where the previous one ended. Scanning stops at
// the first position that does not hold a parameter, and Err reports whether
// that position is the end of input.
//
//	sc := param.NewScanner(param.Disposition, v, off)
//	for sc.Scan() {
//		p := sc.Param()
//		...
//	}
//	if err := sc.Err(); err != nil {
//		...
//	}
type Scanner struct {
	g   *Grammar
	s   string
	pos int
	p   Param
}

// NewScanner returns a Scanner reading parameters from s using the grammar g,
// starting at byte offset off.
func NewScanner(g *Grammar, s string, off int) *Scanner {
	return &Scanner{g: g, s: s, pos: off}
}

// Scan matches the next parameter at the current offset. It returns false
// when no parameter starts there.
func (sc *Scanner) Scan() bool {
	p, next, ok := sc.g.matchParam(sc.s, sc.pos)
	if !ok {
		return false
	}
	sc.p = p
	sc.pos = next
	return true
}

// Param returns the parameter matched by the most recent call to Scan.
func (sc *Scanner) Param() Param {
	return sc.p
}

// Offset returns the offset at which the next match will be attempted.
func (sc *Scanner) Offset() int {
	return sc.pos
}

// Err returns a *ParseError wrapping ErrInvalidGrammar if scanning stopped
// before the end of input. It returns nil otherwise.
func (sc *Scanner) Err() error {
	if sc.pos == len(sc.s) {
		return nil
	}
	return &ParseError{Input: sc.s, Offset: sc.pos, Err: ErrInvalidGrammar}
}

// matchParam matches
//
//	";" OWS token OWS "=" OWS ( token / quoted-string ) OWS
//
// beginning exactly at s[i]. It returns the parameter and the offset just past
// the match.
func (g *Grammar) matchParam(s string, i int) (Param, int, bool) {
	p := Param{Offset: i}
	if i >= len(s) || s[i] != ';' {
		return p, i, false
	}

	j := g.SkipOWS(s, i+1)
	end := scanToken(s, j)
	if end == j {
		return p, i, false
	}
	p.Name = s[j:end]

	j = g.SkipOWS(s, end)
	if j >= len(s) || s[j] != '=' {
		return p, i, false
	}
	j = g.SkipOWS(s, j+1)

	var ok bool
	if j < len(s) && s[j] == '"' {
		end, ok = g.scanQuoted(s, j)
	} else {
		end = scanToken(s, j)
		ok = end > j
	}
	if !ok {
		return p, i, false
	}
	p.Raw = s[j:end]

	return p, g.SkipOWS(s, end), true
}
