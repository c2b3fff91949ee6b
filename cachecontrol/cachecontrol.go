// Package cachecontrol reads and writes the Cache-Control header (RFC 9111
// Section 5.2).
//
// Parsing is tolerant: directives that are unknown or carry a value that does
// not make sense for them are ignored, so Parse never fails.
package cachecontrol

import (
	"regexp"
	"strconv"
	"strings"
)

// Seconds is an optional delta-seconds value. The zero value is unset.
type Seconds struct {
	N     int64
	Valid bool
}

// MarshalJSON writes the number of seconds, or null when unset.
func (s Seconds) MarshalJSON() ([]byte, error) {
	if !s.Valid {
		return []byte("null"), nil
	}
	return strconv.AppendInt(nil, s.N, 10), nil
}

// Secs returns a set Seconds value of n.
func Secs(n int64) Seconds {
	return Seconds{N: n, Valid: true}
}

// CacheControl holds the directives of a Cache-Control header. The zero
// value has no directives set.
type CacheControl struct {
	MaxAge  Seconds `json:"max-age"`
	SMaxAge Seconds `json:"s-maxage"`

	// MaxStale holds the limit given with max-stale. MaxStaleAny is set when
	// max-stale was given without a limit, meaning any staleness is accepted.
	MaxStale    Seconds `json:"max-stale"`
	MaxStaleAny bool    `json:"max-stale-any"`

	MinFresh             Seconds `json:"min-fresh"`
	StaleWhileRevalidate Seconds `json:"stale-while-revalidate"`
	StaleIfError         Seconds `json:"stale-if-error"`

	NoCache         bool `json:"no-cache"`
	NoStore         bool `json:"no-store"`
	NoTransform     bool `json:"no-transform"`
	OnlyIfCached    bool `json:"only-if-cached"`
	MustRevalidate  bool `json:"must-revalidate"`
	ProxyRevalidate bool `json:"proxy-revalidate"`
	MustUnderstand  bool `json:"must-understand"`
	Private         bool `json:"private"`
	Public          bool `json:"public"`
	Immutable       bool `json:"immutable"`
}

// Directive names.
const (
	MaxAge               = "max-age"
	MaxStale             = "max-stale"
	MinFresh             = "min-fresh"
	SMaxAge              = "s-maxage"
	NoCache              = "no-cache"
	NoStore              = "no-store"
	NoTransform          = "no-transform"
	OnlyIfCached         = "only-if-cached"
	MustRevalidate       = "must-revalidate"
	ProxyRevalidate      = "proxy-revalidate"
	MustUnderstand       = "must-understand"
	Private              = "private"
	Public               = "public"
	Immutable            = "immutable"
	StaleWhileRevalidate = "stale-while-revalidate"
	StaleIfError         = "stale-if-error"
)

type directive struct {
	name string
	flag func(*CacheControl) *bool
	secs func(*CacheControl) *Seconds
}

// directives lists every known directive in output order.
var directives = []directive{
	{name: MaxAge, secs: func(cc *CacheControl) *Seconds { return &cc.MaxAge }},
	{name: MaxStale, flag: func(cc *CacheControl) *bool { return &cc.MaxStaleAny }, secs: func(cc *CacheControl) *Seconds { return &cc.MaxStale }},
	{name: MinFresh, secs: func(cc *CacheControl) *Seconds { return &cc.MinFresh }},
	{name: SMaxAge, secs: func(cc *CacheControl) *Seconds { return &cc.SMaxAge }},
	{name: NoCache, flag: func(cc *CacheControl) *bool { return &cc.NoCache }},
	{name: NoStore, flag: func(cc *CacheControl) *bool { return &cc.NoStore }},
	{name: NoTransform, flag: func(cc *CacheControl) *bool { return &cc.NoTransform }},
	{name: OnlyIfCached, flag: func(cc *CacheControl) *bool { return &cc.OnlyIfCached }},
	{name: MustRevalidate, flag: func(cc *CacheControl) *bool { return &cc.MustRevalidate }},
	{name: ProxyRevalidate, flag: func(cc *CacheControl) *bool { return &cc.ProxyRevalidate }},
	{name: MustUnderstand, flag: func(cc *CacheControl) *bool { return &cc.MustUnderstand }},
	{name: Private, flag: func(cc *CacheControl) *bool { return &cc.Private }},
	{name: Public, flag: func(cc *CacheControl) *bool { return &cc.Public }},
	{name: Immutable, flag: func(cc *CacheControl) *bool { return &cc.Immutable }},
	{name: StaleWhileRevalidate, secs: func(cc *CacheControl) *Seconds { return &cc.StaleWhileRevalidate }},
	{name: StaleIfError, secs: func(cc *CacheControl) *Seconds { return &cc.StaleIfError }},
}

var byName = make(map[string]*directive, len(directives))

func init() {
	for i := range directives {
		byName[directives[i].name] = &directives[i]
	}
}

var directiveRegexp = regexp.MustCompile(`([a-zA-Z][a-zA-Z_-]*)\s*(?:=(?:"([^"]*)"|([^ \t",;]*)))?`)

// Parse reads the directives of a Cache-Control header value. Directive names
// are matched without regard to case. A later occurrence of a directive
// replaces an earlier one.
//
// A flag directive is set when it is bare or when its value is a boolean true
// as understood by strconv.ParseBool. A delta-seconds directive is set when
// its value is a non-negative integer. The max-stale directive may be given
// either way.
func Parse(s string) CacheControl {
	var cc CacheControl
	for _, m := range directiveRegexp.FindAllStringSubmatchIndex(s, -1) {
		d, known := byName[strings.ToLower(s[m[2]:m[3]])]
		if !known {
			continue
		}

		hasValue := m[4] >= 0 || m[6] >= 0
		var value string
		switch {
		case m[4] >= 0:
			value = s[m[4]:m[5]]
		case m[6] >= 0:
			value = s[m[6]:m[7]]
		}

		d.set(&cc, value, hasValue)
	}
	return cc
}

func (d *directive) set(cc *CacheControl, value string, hasValue bool) {
	if d.secs != nil {
		if n, ok := parseSeconds(value); ok {
			*d.secs(cc) = Secs(n)
			if d.flag != nil {
				*d.flag(cc) = false
			}
			return
		}
		if d.flag == nil {
			return
		}
	}

	on := !hasValue
	if hasValue {
		b, err := strconv.ParseBool(value)
		if err != nil {
			return
		}
		on = b
	}
	*d.flag(cc) = on
	if on && d.secs != nil {
		*d.secs(cc) = Seconds{}
	}
}

func parseSeconds(v string) (int64, bool) {
	if v == "" {
		return 0, false
	}
	for i := 0; i < len(v); i++ {
		if v[i] < '0' || v[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.ParseInt(v, 10, 64)
	return n, err == nil
}

// String returns the header value. Directives are written in a fixed order
// and separated by ", ". A CacheControl with no directives set results in an
// empty string.
func (cc CacheControl) String() string {
	b := &strings.Builder{}
	for i := range directives {
		d := &directives[i]
		if d.secs != nil {
			if s := d.secs(&cc); s.Valid {
				writeSep(b)
				b.WriteString(d.name)
				b.WriteByte('=')
				b.WriteString(strconv.FormatInt(s.N, 10))
				continue
			}
		}
		if d.flag != nil && *d.flag(&cc) {
			writeSep(b)
			b.WriteString(d.name)
		}
	}
	return b.String()
}

func writeSep(b *strings.Builder) {
	if b.Len() > 0 {
		b.WriteString(", ")
	}
}

// IsZero returns true if no directive is set.
func (cc CacheControl) IsZero() bool {
	return cc == CacheControl{}
}
