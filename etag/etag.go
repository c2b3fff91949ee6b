// Package etag reads and writes entity tags (RFC 9110 Section 8.8.3) as found
// in the ETag, If-Match and If-None-Match headers.
package etag

import "strings"

// Tag is an entity tag.
type Tag struct {
	wildcard bool

	Weak   bool   `json:"weak"`
	Opaque string `json:"opaque"` // not including double quotes
}

// Any is the wildcard "*" of If-Match and If-None-Match.
var Any = Tag{wildcard: true}

// Strong returns a strong tag with the given opaque value.
func Strong(opaque string) Tag {
	return Tag{Opaque: opaque}
}

// Weak returns a weak tag with the given opaque value.
func Weak(opaque string) Tag {
	return Tag{Weak: true, Opaque: opaque}
}

// IsAny returns true for the wildcard tag.
func (t Tag) IsAny() bool {
	return t.wildcard
}

// Parse reads an ETag header value. A leading "W/" marks the tag as weak and
// any surrounding double quotes are removed. Parse never fails; servers in
// the wild often send tags without quotes, and those are taken as they are.
func Parse(s string) Tag {
	s = strings.Trim(s, " \t")
	var t Tag
	if strings.HasPrefix(s, "W/") {
		t.Weak = true
		s = s[2:]
	}
	t.Opaque = strings.Trim(s, `"`)
	return t
}

// String returns the header value: the opaque value in double quotes, with a
// "W/" prefix for a weak tag, or "*" for Any.
func (t Tag) String() string {
	if t.wildcard {
		return "*"
	}
	b := &strings.Builder{}
	t.write(b)
	return b.String()
}

func (t Tag) write(b *strings.Builder) {
	if t.wildcard {
		b.WriteByte('*')
		return
	}
	b.Grow(len(t.Opaque) + 4)
	if t.Weak {
		b.WriteString("W/")
	}
	b.WriteByte('"')
	b.WriteString(t.Opaque)
	b.WriteByte('"')
}

// ParseList reads the comma-separated list of an If-Match or If-None-Match
// header value. A wildcard is returned as Any. Commas inside a quoted tag do
// not split it.
func ParseList(s string) []Tag {
	var tags []Tag
	for i := 0; i < len(s); {
		switch s[i] {
		case ' ', '\t', ',':
			i++
			continue
		case '*':
			tags = append(tags, Any)
			i = skipElem(s, i+1)
			continue
		}

		var t Tag
		if strings.HasPrefix(s[i:], "W/") {
			t.Weak = true
			i += 2
		}
		if i < len(s) && s[i] == '"' {
			end := strings.IndexByte(s[i+1:], '"')
			if end < 0 {
				t.Opaque = s[i+1:]
				i = len(s)
			} else {
				t.Opaque = s[i+1 : i+1+end]
				i = skipElem(s, i+end+2)
			}
		} else {
			end := skipElem(s, i)
			t.Opaque = strings.TrimRight(s[i:end], " \t")
			i = end
		}
		tags = append(tags, t)
	}
	return tags
}

// skipElem returns the offset of the next comma at or after i, or the end of
// s.
func skipElem(s string, i int) int {
	if ix := strings.IndexByte(s[i:], ','); ix >= 0 {
		return i + ix
	}
	return len(s)
}

// FormatList returns the tags as a comma-separated list.
func FormatList(tags []Tag) string {
	b := &strings.Builder{}
	for i, t := range tags {
		if i > 0 {
			b.WriteString(", ")
		}
		t.write(b)
	}
	return b.String()
}

// Match returns true if tag is equivalent to any of tags by strong
// comparison, as used for If-Match. Weak tags never match.
func Match(tags []Tag, tag Tag) bool {
	return matchTags(tags, tag, false)
}

// MatchWeak returns true if tag is equivalent to any of tags by weak
// comparison, as used for If-None-Match. Only the opaque values are compared.
func MatchWeak(tags []Tag, tag Tag) bool {
	return matchTags(tags, tag, true)
}

func matchTags(tags []Tag, tag Tag, weak bool) bool {
	for _, t := range tags {
		if t.wildcard {
			return true
		}
		if !weak && (t.Weak || tag.Weak) {
			continue
		}
		if t.Opaque == tag.Opaque {
			return true
		}
	}
	return false
}
