// Package param provides the tools shared by every parameterized HTTP header
// in this module. These headers include Content-Type and Content-Disposition,
// which both carry a primary value followed by a list of "; name=value"
// parameters.
//
// The package holds the token and quoted-string grammar, a Scanner that walks
// parameter lists one match at a time, the RFC 5987 ext-value codec and the
// error values reported when a header does not conform. It also provides
// Value, an immutable representation of a Content-Type header.
package param
