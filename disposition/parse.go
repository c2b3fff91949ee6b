package disposition

import (
	"fmt"
	"strings"

	"github.com/fduseless/fast-header/param"
)

// Parse reads a Content-Disposition header value. The disposition type and
// parameter names are lower-cased. Quoted values are unescaped and extended
// values, those with names such as "filename*", are decoded and stored under
// the name without the asterisk. An extended value takes precedence over the
// plain value of the same name no matter which comes first.
//
// Parse returns a *param.ParseError when the value is malformed. It wraps
// param.ErrInvalidGrammar when the type or a parameter does not match the
// grammar or text remains after the last parameter. It wraps
// param.ErrDuplicateParameter when a parameter name is repeated and
// param.ErrUnsupportedCharset when an extended value uses a charset other than
// UTF-8 or ISO-8859-1.
func Parse(s string) (*Value, error) {
	dtype, _ := param.Token(s)
	if dtype == "" {
		return nil, &param.ParseError{Input: s, Offset: 0, Err: param.ErrInvalidGrammar}
	}
	i := param.Disposition.SkipOWS(s, len(dtype))
	if i < len(s) && s[i] != ';' {
		return nil, &param.ParseError{Input: s, Offset: i, Err: param.ErrInvalidGrammar}
	}

	var ps param.Params
	seen := make(map[string]bool)
	extended := make(map[string]bool)

	sc := param.NewScanner(param.Disposition, s, i)
	for sc.Scan() {
		p := sc.Param()
		key := p.Key()
		if seen[key] {
			err := fmt.Errorf("%w: %q", param.ErrDuplicateParameter, key)
			return nil, &param.ParseError{Input: s, Offset: p.Offset, Err: err}
		}
		seen[key] = true

		if p.Extended() {
			text, _, err := param.DecodeExtValue(p.Raw)
			if err != nil {
				return nil, &param.ParseError{Input: s, Offset: p.Offset, Err: err}
			}
			key = key[:len(key)-1]
			ps.Set(key, text)
			extended[key] = true
			continue
		}

		if !extended[key] {
			ps.Set(key, p.Text())
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	v := &Value{dtype: strings.ToLower(dtype)}
	for _, n := range ps.Names() {
		pv, _ := ps.Get(n)
		if n == Filename {
			v.filename = basename(pv)
			continue
		}
		v.params.Set(n, pv)
	}
	return v, nil
}
