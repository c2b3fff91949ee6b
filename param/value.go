package param

import (
	"sort"
	"strings"
)

const (
	// Charset is the name of the charset parameter that may be present in the
	// Content-Type header.
	Charset = "charset"

	// Boundary is the name of the boundary parameter that may be present in
	// the Content-Type header.
	Boundary = "boundary"

	// MultipartByteranges is the media type of a multiple range response.
	MultipartByteranges = "multipart/byteranges"
)

// Value represents a parsed Content-Type header. A Value object is immutable:
// You cannot change it in place. However, a Modify() function is provided to
// perform transformation of a Value into a new Value.
type Value struct {
	v  string
	ps Params
}

// Parse takes a Content-Type field body, parses it as a Value and returns it.
// The media type is lower-cased, as are parameter names. Quoted parameter
// values are unescaped.
//
// If the media type is not a type/subtype pair of tokens, if a parameter is
// malformed, or if anything other than whitespace follows the last parameter,
// a *ParseError wrapping ErrInvalidGrammar is returned. A repeated parameter
// name results in ErrDuplicateParameter.
func Parse(v string) (*Value, error) {
	ix := strings.IndexByte(v, ';')
	mt := v
	if ix >= 0 {
		mt = v[:ix]
	}
	mt = strings.TrimSpace(mt)
	if !isMediaType(mt) {
		return nil, &ParseError{Input: v, Offset: 0, Err: ErrInvalidGrammar}
	}

	pv := &Value{v: strings.ToLower(mt)}
	if ix < 0 {
		return pv, nil
	}

	sc := NewScanner(MediaType, v, ix)
	for sc.Scan() {
		p := sc.Param()
		if err := pv.ps.Add(p.Name, p.Text()); err != nil {
			return nil, &ParseError{Input: v, Offset: p.Offset, Err: err}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return pv, nil
}

func isMediaType(mt string) bool {
	ix := strings.IndexByte(mt, '/')
	return ix >= 0 && IsToken(mt[:ix]) && IsToken(mt[ix+1:])
}

// New creates a new Content-Type value with the given media type and with the
// parameters of every map given, if any. Parameter names are lower-cased.
func New(v string, ps ...map[string]string) *Value {
	pv := &Value{v: v}
	for _, m := range ps {
		ks := make([]string, 0, len(m))
		for k := range m {
			ks = append(ks, k)
		}
		sort.Strings(ks)
		for _, k := range ks {
			pv.ps.Set(k, m[k])
		}
	}
	return pv
}

// Multipart returns the Content-Type for a multiple range response with the
// given boundary.
func Multipart(boundary string) *Value {
	return New(MultipartByteranges, map[string]string{Boundary: boundary})
}

// Modifier is a modification to apply to a Value when calling the Modify()
// function.
type Modifier func(*Value)

// Change is a Modifier that replaces the media type of the Value.
func Change(value string) Modifier {
	return func(pv *Value) {
		pv.v = value
	}
}

// Set is a Modifier that sets a parameter with the given name on the Value.
func Set(name, value string) Modifier {
	return func(pv *Value) {
		pv.ps.Set(name, value)
	}
}

// Delete is a Modifier that removes the parameter with the given name from the
// Value.
func Delete(name string) Modifier {
	return func(pv *Value) {
		pv.ps.Delete(name)
	}
}

// Modify clones a Value, applies the given modifications (if any) and returns
// the new Value. You can pass multiple changes to this function:
//
//	v, _ := param.Parse("multipart/mixed; boundary=abc123; charset=latin1")
//	nv := param.Modify(v, param.Change("multipart/alternative"), param.Set("charset", "utf-8"))
func Modify(pv *Value, changes ...Modifier) *Value {
	c := pv.Clone()
	for _, change := range changes {
		change(c)
	}
	return c
}

// MediaType returns the media type, e.g., "text/html", "image/jpeg", etc.
func (pv *Value) MediaType() string {
	return pv.v
}

// Type returns the part of the media type before the slash. For example, if
// MediaType() returns "image/jpeg", this method will return "image".
func (pv *Value) Type() string {
	if ix := strings.IndexByte(pv.v, '/'); ix >= 0 {
		return pv.v[:ix]
	}
	return ""
}

// Subtype returns the part of the media type after the slash. For example, if
// MediaType() returns "text/html", this method will return "html".
func (pv *Value) Subtype() string {
	if ix := strings.IndexByte(pv.v, '/'); ix >= 0 {
		return pv.v[ix+1:]
	}
	return ""
}

// Parameters returns a copy of the parameters of this Value.
func (pv *Value) Parameters() map[string]string {
	return pv.ps.Map()
}

// Parameter returns the value of the parameter with the given name.
func (pv *Value) Parameter(k string) string {
	v, _ := pv.ps.Get(k)
	return v
}

// Charset returns the value of the "charset" parameter.
func (pv *Value) Charset() string {
	return pv.Parameter(Charset)
}

// Boundary returns the value of the "boundary" parameter.
func (pv *Value) Boundary() string {
	return pv.Parameter(Boundary)
}

// String returns the serialized value of the Value including the media type
// and all parameters, which are sorted by name.
func (pv *Value) String() string {
	b := &strings.Builder{}
	b.WriteString(pv.v)
	pv.ps.writeSorted(b)
	return b.String()
}

// Bytes returns the serialized value of the Value including the media type and
// all parameters.
func (pv *Value) Bytes() []byte {
	return []byte(pv.String())
}

// Clone returns a deep copy of the Value.
func (pv *Value) Clone() *Value {
	return &Value{v: pv.v, ps: pv.ps.Clone()}
}
