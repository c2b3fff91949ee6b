// Package header provides typed access to the fields of a net/http Header.
// Each getter parses the field into the value type of its package and keeps
// the result, so a field is only parsed again after its text changes.
package header

import (
	"errors"
	"net/http"
	"strings"
	"sync"

	"github.com/fduseless/fast-header/byterange"
	"github.com/fduseless/fast-header/cachecontrol"
	"github.com/fduseless/fast-header/disposition"
	"github.com/fduseless/fast-header/etag"
	"github.com/fduseless/fast-header/param"
)

// Errors returned by various header methods.
var (
	// ErrNoSuchField is returned by Header methods when the operation
	// being performed failed because the header named does not exist.
	ErrNoSuchField = errors.New("no such header field")

	// ErrManyFields is returned by Header methods when the operation
	// being performed failed because there are multiple fields with the
	// given name and the field does not permit that.
	ErrManyFields = errors.New("many header fields found")
)

// Header field names, in canonical form.
const (
	CacheControl       = "Cache-Control"
	ContentDisposition = "Content-Disposition"
	ContentRange       = "Content-Range"
	ContentType        = "Content-Type"
	ETag               = "Etag"
	IfMatch            = "If-Match"
	IfNoneMatch        = "If-None-Match"
	Range              = "Range"
)

// Header wraps an http.Header with typed getters and setters.
//
// The getter methods of this object will return ErrNoSuchField if the field
// being fetched has not been set. Fields that may only appear once return
// ErrManyFields when repeated. List fields, such as Cache-Control, are joined
// with commas instead.
//
// Getters may be called from several goroutines at once, since access to the
// parsed values kept by the Header is guarded. Setters and direct changes to
// the underlying http.Header are not safe for concurrent use and must not run
// alongside any other method.
type Header struct {
	h http.Header

	mu sync.Mutex

	// valueCache holds the parsed value of a field along with the text it
	// was parsed from. Only immutable values may be stored here.
	valueCache map[string]cached
}

type cached struct {
	body  string
	value any
}

// New returns a Header that reads and writes h. If h is nil, a new empty
// http.Header is used.
func New(h http.Header) *Header {
	if h == nil {
		h = make(http.Header)
	}
	return &Header{h: h}
}

// HTTP returns the underlying http.Header.
func (h *Header) HTTP() http.Header {
	return h.h
}

// Clone returns a deep copy of the header.
func (h *Header) Clone() *Header {
	// the cached values are immutable, so they may be copied as-is
	h.mu.Lock()
	vc := make(map[string]cached, len(h.valueCache))
	for k, v := range h.valueCache {
		vc[k] = v
	}
	h.mu.Unlock()

	return &Header{
		h:          h.h.Clone(),
		valueCache: vc,
	}
}

// Get retrieves the value of the named field.
//
// If the named field is not set, it will return an empty string with
// ErrNoSuchField. If the field is set more than once, it will return the first
// value found and ErrManyFields.
func (h *Header) Get(name string) (string, error) {
	vs := h.h.Values(name)
	switch len(vs) {
	case 0:
		return "", ErrNoSuchField
	case 1:
		return vs[0], nil
	default:
		return vs[0], ErrManyFields
	}
}

// GetList retrieves every value of the named field joined with ", ". It
// returns ErrNoSuchField if the field is not set.
func (h *Header) GetList(name string) (string, error) {
	vs := h.h.Values(name)
	if len(vs) == 0 {
		return "", ErrNoSuchField
	}
	return strings.Join(vs, ", "), nil
}

// Set replaces all fields with the given name with a single field.
func (h *Header) Set(name, body string) {
	h.h.Set(name, body)
	h.forget(name)
}

// Del removes all fields with the given name.
func (h *Header) Del(name string) {
	h.h.Del(name)
	h.forget(name)
}

func (h *Header) forget(name string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.valueCache, http.CanonicalHeaderKey(name))
}

func (h *Header) setValue(name, body string, value any) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.valueCache == nil {
		h.valueCache = make(map[string]cached)
	}
	h.valueCache[http.CanonicalHeaderKey(name)] = cached{body: body, value: value}
}

// lookup returns the parsed value of a field, using the cached value when the
// field text has not changed since it was parsed.
func lookup[T any](h *Header, name string, list bool, parse func(string) (T, error)) (T, error) {
	var (
		body string
		err  error
		zero T
	)
	if list {
		body, err = h.GetList(name)
	} else {
		body, err = h.Get(name)
	}
	if err != nil {
		return zero, err
	}

	if v, ok := cachedValue[T](h, name, body); ok {
		return v, nil
	}

	v, err := parse(body)
	if err != nil {
		return zero, err
	}

	h.setValue(name, body, v)
	return v, nil
}

// cachedValue returns the cached value of a field if it was parsed from body.
func cachedValue[T any](h *Header, name, body string) (T, bool) {
	h.mu.Lock()
	c, found := h.valueCache[http.CanonicalHeaderKey(name)]
	h.mu.Unlock()

	var zero T
	if !found || c.body != body {
		return zero, false
	}
	v, ok := c.value.(T)
	return v, ok
}

// set formats value into the named field and caches it.
func (h *Header) set(name, body string, value any) {
	h.h.Set(name, body)
	h.setValue(name, body, value)
}

// GetContentDisposition returns the Content-Disposition field.
//
// It returns nil and ErrNoSuchField if the field is not set. It returns nil
// and ErrManyFields if the field is set more than once. It will return nil and
// the parse error if the field is malformed.
func (h *Header) GetContentDisposition() (*disposition.Value, error) {
	return lookup(h, ContentDisposition, false, disposition.Parse)
}

// SetContentDisposition replaces the Content-Disposition field.
func (h *Header) SetContentDisposition(v *disposition.Value) {
	h.set(ContentDisposition, v.String(), v)
}

// GetFilename returns the filename of the Content-Disposition field. It
// returns an empty string if the field carries no filename.
func (h *Header) GetFilename() (string, error) {
	v, err := h.GetContentDisposition()
	if err != nil {
		return "", err
	}
	return v.Filename(), nil
}

// GetContentType returns the Content-Type field.
//
// It returns nil and ErrNoSuchField if the field is not set. It returns nil
// and ErrManyFields if the field is set more than once. It will return nil and
// the parse error if the field is malformed.
func (h *Header) GetContentType() (*param.Value, error) {
	return lookup(h, ContentType, false, param.Parse)
}

// SetContentType replaces the Content-Type field.
func (h *Header) SetContentType(v *param.Value) {
	h.set(ContentType, v.String(), v)
}

// GetMediaType returns the media type of the Content-Type field without its
// parameters.
func (h *Header) GetMediaType() (string, error) {
	v, err := h.GetContentType()
	if err != nil {
		return "", err
	}
	return v.MediaType(), nil
}

// GetCharset returns the charset parameter of the Content-Type field, or an
// empty string if it has none.
func (h *Header) GetCharset() (string, error) {
	v, err := h.GetContentType()
	if err != nil {
		return "", err
	}
	return v.Charset(), nil
}

// GetCacheControl returns the directives of every Cache-Control field. It
// returns ErrNoSuchField if the field is not set.
func (h *Header) GetCacheControl() (cachecontrol.CacheControl, error) {
	return lookup(h, CacheControl, true, func(s string) (cachecontrol.CacheControl, error) {
		return cachecontrol.Parse(s), nil
	})
}

// SetCacheControl replaces the Cache-Control field. If no directive is set,
// the field is removed.
func (h *Header) SetCacheControl(cc cachecontrol.CacheControl) {
	if cc.IsZero() {
		h.Del(CacheControl)
		return
	}
	h.set(CacheControl, cc.String(), cc)
}

// GetContentRange returns the Content-Range field.
//
// It returns ErrNoSuchField if the field is not set, ErrManyFields if the
// field is set more than once and byterange.ErrMalformedRange if it cannot be
// parsed.
func (h *Header) GetContentRange() (byterange.ContentRange, error) {
	return lookup(h, ContentRange, false, byterange.ParseContentRange)
}

// SetContentRange replaces the Content-Range field.
func (h *Header) SetContentRange(cr byterange.ContentRange) {
	h.set(ContentRange, cr.String(), cr)
}

// GetRanges returns the ranges of the Range field for a representation of
// size bytes. See byterange.ParseRange for the errors returned on top of
// ErrNoSuchField and ErrManyFields. The result is not cached because it
// depends on size.
func (h *Header) GetRanges(size int64) ([]byterange.Range, error) {
	body, err := h.Get(Range)
	if err != nil {
		return nil, err
	}
	return byterange.ParseRange(body, size)
}

// GetETag returns the ETag field.
//
// It returns ErrNoSuchField if the field is not set and ErrManyFields if the
// field is set more than once.
func (h *Header) GetETag() (etag.Tag, error) {
	return lookup(h, ETag, false, func(s string) (etag.Tag, error) {
		return etag.Parse(s), nil
	})
}

// SetETag replaces the ETag field.
func (h *Header) SetETag(t etag.Tag) {
	h.set(ETag, t.String(), t)
}

// GetIfMatch returns the tags of every If-Match field. A wildcard is returned
// as etag.Any. Use etag.Match to compare them with the current tag.
func (h *Header) GetIfMatch() ([]etag.Tag, error) {
	return h.getTags(IfMatch)
}

// GetIfNoneMatch returns the tags of every If-None-Match field. A wildcard is
// returned as etag.Any. Use etag.MatchWeak to compare them with the current
// tag.
func (h *Header) GetIfNoneMatch() ([]etag.Tag, error) {
	return h.getTags(IfNoneMatch)
}

func (h *Header) getTags(name string) ([]etag.Tag, error) {
	tags, err := lookup(h, name, true, func(s string) ([]etag.Tag, error) {
		return etag.ParseList(s), nil
	})
	if err != nil {
		return nil, err
	}
	// the cached slice must not be changed by the caller
	return append([]etag.Tag(nil), tags...), nil
}

// SetIfMatch replaces the If-Match field.
func (h *Header) SetIfMatch(tags ...etag.Tag) {
	h.Set(IfMatch, etag.FormatList(tags))
}

// SetIfNoneMatch replaces the If-None-Match field.
func (h *Header) SetIfNoneMatch(tags ...etag.Tag) {
	h.Set(IfNoneMatch, etag.FormatList(tags))
}
