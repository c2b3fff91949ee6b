// Package fastheader is the root of a set of packages for reading and writing
// the HTTP header values that control how a client treats a response body.
//
// The heart of it is package disposition, which implements Content-Disposition
// (RFC 6266) including RFC 5987 extended parameters and the ISO-8859-1
// fallback filename offered to clients that cannot read them. The grammar
// shared by the parameterized headers lives in package param, which also
// implements Content-Type. Packages cachecontrol, byterange and etag cover
// Cache-Control, Range and Content-Range, and the entity tag headers.
// Package header ties them together as typed accessors on an http.Header.
//
// The fasthdr command in cmd/fasthdr exposes the codecs on the command line.
package fastheader
