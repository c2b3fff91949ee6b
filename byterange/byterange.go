// Package byterange reads the Range request header and reads and writes the
// Content-Range response header (RFC 9110 Section 14).
//
// Every Range in this package is half-open: Start is the offset of the first
// byte and Stop is the offset just past the last one. The inclusive form used
// on the wire is converted on the way in and out.
package byterange

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

// Errors returned when parsing range headers.
var (
	// ErrMalformedRange is returned when a Range or Content-Range value does
	// not match the expected grammar.
	ErrMalformedRange = errors.New("malformed range")

	// ErrUnsatisfiableRange is returned by ParseRange when no range can be
	// served for the given size, or when the ranges add up to more than the
	// size.
	ErrUnsatisfiableRange = errors.New("range not satisfiable")
)

// Bytes is the only range unit defined by HTTP.
const Bytes = "bytes"

// Range is the half-open byte range [Start, Stop).
type Range struct {
	Start int64 `json:"start"`
	Stop  int64 `json:"stop"`
}

// Len returns the number of bytes in the range.
func (r Range) Len() int64 {
	return r.Stop - r.Start
}

// String returns the range in the inclusive first-last form used on the
// wire, e.g., "0-99" for Range{0, 100}.
func (r Range) String() string {
	return strconv.FormatInt(r.Start, 10) + "-" + strconv.FormatInt(r.Stop-1, 10)
}

// ParseRange parses a Range header value against a representation of size
// bytes.
//
// An empty value returns no ranges and no error. A value that is not a
// "bytes=" range set returns ErrMalformedRange. Each spec may be first-last,
// first- (to the end) or -suffix (the final bytes). The last position is
// clamped to the end of the representation and specs that start past the end
// are dropped. If nothing remains, or if the ranges add up to more than size,
// an empty slice is returned with ErrUnsatisfiableRange.
func ParseRange(s string, size int64) ([]Range, error) {
	if s == "" {
		return nil, nil
	}

	if !strings.HasPrefix(s, Bytes+"=") {
		return nil, ErrMalformedRange
	}
	set := s[len(Bytes)+1:]
	if ix := strings.IndexByte(set, ';'); ix >= 0 {
		set = set[:ix]
	}

	var (
		rs    []Range
		total int64
	)
	for _, spec := range strings.Split(set, ",") {
		first, last, ok := strings.Cut(strings.TrimSpace(spec), "-")
		if !ok {
			return nil, ErrMalformedRange
		}

		var start, end int64
		switch {
		case first == "":
			n, ok := parsePos(last)
			if !ok {
				return nil, ErrMalformedRange
			}
			start = size - n
			if start < 0 {
				start = 0
			}
			end = size - 1

		default:
			var ok bool
			start, ok = parsePos(first)
			if !ok {
				return nil, ErrMalformedRange
			}
			end = size - 1
			if last != "" {
				l, ok := parsePos(last)
				if !ok || l < start {
					return nil, ErrMalformedRange
				}
				if l < end {
					end = l
				}
			}
		}

		if start <= end {
			r := Range{Start: start, Stop: end + 1}
			rs = append(rs, r)
			total += r.Len()
		}
	}

	if len(rs) == 0 || total > size {
		return []Range{}, ErrUnsatisfiableRange
	}
	return rs, nil
}

func parsePos(s string) (int64, bool) {
	if s == "" {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.ParseInt(s, 10, 64)
	return n, err == nil
}

// UnknownSize is the Size of a ContentRange whose complete length is not
// known, written as "*".
const UnknownSize int64 = -1

// ContentRange is the value of a Content-Range header.
type ContentRange struct {
	// Unit is the range unit. An empty Unit is written as "bytes".
	Unit string `json:"unit"`

	// Range is the range enclosed, or nil for an unsatisfied range, which is
	// written as "*".
	Range *Range `json:"range"`

	// Size is the complete length of the representation or UnknownSize.
	Size int64 `json:"size"`
}

var contentRangeRegexp = regexp.MustCompile(`^(\w+) (?:(\d+)-(\d+)|\*)/(\d+|\*)$`)

// ParseContentRange parses a Content-Range header value such as
// "bytes 0-99/1000", "bytes */1000" or "bytes 0-99/*". It returns
// ErrMalformedRange if the value does not match, if the last position comes
// before the first, or if a number overflows.
func ParseContentRange(s string) (ContentRange, error) {
	m := contentRangeRegexp.FindStringSubmatch(s)
	if m == nil {
		return ContentRange{}, ErrMalformedRange
	}

	cr := ContentRange{Unit: m[1], Size: UnknownSize}
	if m[2] != "" {
		first, ok1 := parsePos(m[2])
		last, ok2 := parsePos(m[3])
		if !ok1 || !ok2 || last < first {
			return ContentRange{}, ErrMalformedRange
		}
		cr.Range = &Range{Start: first, Stop: last + 1}
	}
	if m[4] != "*" {
		n, ok := parsePos(m[4])
		if !ok {
			return ContentRange{}, ErrMalformedRange
		}
		cr.Size = n
	}

	return cr, nil
}

// String returns the header value.
func (cr ContentRange) String() string {
	b := &strings.Builder{}
	if cr.Unit == "" {
		b.WriteString(Bytes)
	} else {
		b.WriteString(cr.Unit)
	}
	b.WriteByte(' ')
	if cr.Range == nil {
		b.WriteByte('*')
	} else {
		b.WriteString(cr.Range.String())
	}
	b.WriteByte('/')
	if cr.Size < 0 {
		b.WriteByte('*')
	} else {
		b.WriteString(strconv.FormatInt(cr.Size, 10))
	}
	return b.String()
}
