package disposition

import "strings"

// isLatin1 reports whether every character of s is printable ISO-8859-1:
// U+0020 to U+007E or U+00A0 to U+00FF.
func isLatin1(s string) bool {
	for _, r := range s {
		if !isLatin1Rune(r) {
			return false
		}
	}
	return true
}

func isLatin1Rune(r rune) bool {
	return (r >= 0x20 && r <= 0x7e) || (r >= 0xa0 && r <= 0xff)
}

// isQuotable reports whether s can be written inside a quoted-string: every
// character must be U+0020 to U+007E or U+0080 to U+00FF.
func isQuotable(s string) bool {
	for _, r := range s {
		if r < 0x20 || r == 0x7f || r > 0xff {
			return false
		}
	}
	return true
}

// latin1Fallback replaces every character that is not printable ISO-8859-1
// with a question mark.
func latin1Fallback(s string) string {
	return strings.Map(func(r rune) rune {
		if isLatin1Rune(r) {
			return r
		}
		return '?'
	}, s)
}

// hasHexEscape reports whether s contains anything that looks like a percent
// escape, such as "%20".
func hasHexEscape(s string) bool {
	for i := 0; i+2 < len(s); i++ {
		if s[i] == '%' && isHex(s[i+1]) && isHex(s[i+2]) {
			return true
		}
	}
	return false
}

func isHex(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// filenameForms decides how filename is written under the fallback policy fb.
// It returns the text for the plain filename parameter, if any, and whether a
// filename* parameter carrying the full filename must also be written.
func filenameForms(filename string, fb Fallback) (plain string, hasPlain, hasExt bool) {
	quotable := filename != "" && isQuotable(filename)

	var fallback string
	hasFallback := false
	switch fb.Mode {
	case FallbackAuto:
		fallback, hasFallback = latin1Fallback(filename), true
	case FallbackExplicit:
		fallback, hasFallback = basename(fb.Text), true
	}
	if fallback == filename {
		hasFallback = false
	}

	hasExt = hasFallback || !quotable || hasHexEscape(filename)
	switch {
	case hasFallback:
		return fallback, true, hasExt
	case quotable:
		return filename, true, hasExt
	default:
		return "", false, hasExt
	}
}
