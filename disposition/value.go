package disposition

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/fduseless/fast-header/param"
)

// Common disposition types.
const (
	Attachment = "attachment"
	Inline     = "inline"
	FormData   = "form-data"
)

// Well-known parameter names.
const (
	Filename         = "filename"
	Name             = "name"
	CreationDate     = "creation-date"
	ModificationDate = "modification-date"
	ReadDate         = "read-date"
	Size             = "size"
)

// ErrNoSuchParameter is returned when reading a parameter that is not set.
var ErrNoSuchParameter = errors.New("no such parameter")

// FallbackMode selects how the plain filename parameter is produced for
// clients that do not understand filename*.
type FallbackMode int

const (
	// FallbackAuto replaces every character of the filename that cannot be
	// represented in ISO-8859-1 with a question mark.
	FallbackAuto FallbackMode = iota

	// FallbackDisabled never produces a fallback. A filename that is not
	// ISO-8859-1 text is then written as filename* only.
	FallbackDisabled

	// FallbackExplicit uses the text supplied with WithFallback.
	FallbackExplicit
)

// Fallback is the fallback policy of a Value. The zero value is FallbackAuto.
type Fallback struct {
	Mode FallbackMode
	Text string // only used with FallbackExplicit
}

// Value is a Content-Disposition header value. A Value object is immutable:
// You cannot change it in place. Use Modify to derive a new Value from an
// existing one.
type Value struct {
	dtype    string
	filename string
	fallback Fallback
	params   param.Params
}

// Option configures a Value during New or Modify.
type Option func(*Value) error

// New builds a Value from the given options. The disposition type defaults to
// "attachment" and the fallback policy to FallbackAuto.
func New(opts ...Option) (*Value, error) {
	v := &Value{dtype: Attachment}
	if err := v.apply(opts); err != nil {
		return nil, err
	}
	return v, nil
}

// Modify clones v, applies the given options and returns the new Value. The
// original is never changed.
//
//	nv, err := disposition.Modify(v, disposition.WithType(disposition.Inline))
func Modify(v *Value, opts ...Option) (*Value, error) {
	c := v.Clone()
	if err := c.apply(opts); err != nil {
		return nil, err
	}
	return c, nil
}

func (v *Value) apply(opts []Option) error {
	for _, opt := range opts {
		if err := opt(v); err != nil {
			return err
		}
	}
	return nil
}

// WithType sets the disposition type. It must be a token and is stored in
// lower case.
func WithType(dtype string) Option {
	return func(v *Value) error {
		if !param.IsToken(dtype) {
			return fmt.Errorf("%w: disposition type %q is not a token", param.ErrInvalidGrammar, dtype)
		}
		v.dtype = strings.ToLower(dtype)
		return nil
	}
}

// WithFilename sets the filename. Only the final path component is kept, so
// "/path/to/plans.pdf" becomes "plans.pdf". An empty filename removes it.
func WithFilename(name string) Option {
	return func(v *Value) error {
		if !utf8.ValidString(name) {
			return fmt.Errorf("%w: filename %q", param.ErrNonTextParameter, name)
		}
		v.filename = basename(name)
		return nil
	}
}

// WithFallback sets an explicit fallback filename, which is written in the
// plain filename parameter. It must consist of ISO-8859-1 printable text or
// ErrInvalidFallback is returned. Only its final path component is used.
func WithFallback(text string) Option {
	return func(v *Value) error {
		if !isLatin1(text) {
			return fmt.Errorf("%w: %q", param.ErrInvalidFallback, text)
		}
		v.fallback = Fallback{Mode: FallbackExplicit, Text: basename(text)}
		return nil
	}
}

// WithoutFallback disables the fallback filename.
func WithoutFallback() Option {
	return func(v *Value) error {
		v.fallback = Fallback{Mode: FallbackDisabled}
		return nil
	}
}

// WithAutoFallback restores the default fallback policy.
func WithAutoFallback() Option {
	return func(v *Value) error {
		v.fallback = Fallback{}
		return nil
	}
}

// WithParam sets an extra parameter, replacing any earlier value. The name
// must be a token and is stored in lower case. A trailing asterisk marking an
// extended parameter is dropped, because the form a parameter is written in
// is chosen from its value. The names "filename" and "filename*" set the
// filename.
//
// The value must be valid UTF-8, or ErrNonTextParameter is returned. When the
// name contains an asterisk other than a trailing marker, the value must also
// be representable in a quoted-string.
func WithParam(name, value string) Option {
	return func(v *Value) error {
		n := strings.ToLower(name)
		if n != "" && strings.IndexByte(n, '*') == len(n)-1 {
			n = n[:len(n)-1]
		}
		if !param.IsToken(n) {
			return fmt.Errorf("%w: parameter name %q is not a token", param.ErrInvalidGrammar, name)
		}
		if n == Filename {
			return WithFilename(value)(v)
		}
		if !utf8.ValidString(value) {
			return fmt.Errorf("%w: value of %q", param.ErrNonTextParameter, n)
		}
		if strings.IndexByte(n, '*') >= 0 && !isQuotable(value) {
			return fmt.Errorf("%w: value of %q cannot be quoted", param.ErrNonTextParameter, n)
		}
		v.params.Set(n, value)
		return nil
	}
}

// WithDate sets a date-valued parameter such as "creation-date". The date is
// written in the RFC 1123 format with a numeric zone.
func WithDate(name string, t time.Time) Option {
	return WithParam(name, t.Format(time.RFC1123Z))
}

// WithoutParam removes an extra parameter, if present.
func WithoutParam(name string) Option {
	return func(v *Value) error {
		v.params.Delete(name)
		return nil
	}
}

// Type returns the disposition type, such as "attachment".
func (v *Value) Type() string {
	return v.dtype
}

// Filename returns the filename or an empty string if there is none.
func (v *Value) Filename() string {
	return v.filename
}

// Fallback returns the fallback policy.
func (v *Value) Fallback() Fallback {
	return v.fallback
}

// Param returns the value of an extra parameter and whether it is set.
func (v *Value) Param(name string) (string, bool) {
	return v.params.Get(name)
}

// Params returns a copy of the extra parameters, those other than filename.
func (v *Value) Params() map[string]string {
	return v.params.Map()
}

// Parameters returns all parameters as a map, including the filename when one
// is set.
func (v *Value) Parameters() map[string]string {
	m := v.params.Map()
	if v.filename != "" {
		m[Filename] = v.filename
	}
	return m
}

// Date parses the named parameter as a date. It returns ErrNoSuchParameter if
// the parameter is not set.
func (v *Value) Date(name string) (time.Time, error) {
	body, ok := v.params.Get(name)
	if !ok {
		return time.Time{}, fmt.Errorf("%w: %q", ErrNoSuchParameter, name)
	}
	return ParseTime(body)
}

// Clone returns a deep copy of the Value.
func (v *Value) Clone() *Value {
	return &Value{
		dtype:    v.dtype,
		filename: v.filename,
		fallback: v.fallback,
		params:   v.params.Clone(),
	}
}

// basename returns the text after the final slash.
func basename(name string) string {
	return name[strings.LastIndexByte(name, '/')+1:]
}
