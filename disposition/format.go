package disposition

import (
	"strings"

	"github.com/fduseless/fast-header/param"
)

// String returns the header value. The disposition type comes first, then the
// filename parameters, then any other parameters in ascending order by name.
//
// The filename is always quoted. Whether it is written as filename,
// filename*, or both is governed by the fallback policy. Other parameters are
// written bare when the value is a token, quoted when it is ISO-8859-1 text,
// and in extended form otherwise.
func (v *Value) String() string {
	b := &strings.Builder{}
	b.WriteString(v.dtype)

	if v.filename != "" {
		plain, hasPlain, hasExt := filenameForms(v.filename, v.fallback)
		if hasPlain {
			b.WriteString("; filename=")
			b.WriteString(param.Quote(plain))
		}
		if hasExt {
			b.WriteString("; filename*=")
			b.WriteString(param.EncodeExtValue(v.filename))
		}
	}

	for _, n := range v.params.SortedNames() {
		pv, _ := v.params.Get(n)
		b.WriteString("; ")
		b.WriteString(n)
		switch {
		case param.IsToken(pv):
			b.WriteByte('=')
			b.WriteString(pv)
		case isQuotable(pv):
			b.WriteByte('=')
			b.WriteString(param.Quote(pv))
		default:
			b.WriteString("*=")
			b.WriteString(param.EncodeExtValue(pv))
		}
	}

	return b.String()
}

// Bytes returns the header value as bytes.
func (v *Value) Bytes() []byte {
	return []byte(v.String())
}
