// Package etag models HTTP entity tags (RFC 7232 section 2.3).
//
// An entity tag identifies one version of a resource representation and comes
// in two variants: strong (byte-for-byte match semantics) and weak
// (semantic-equivalence match semantics, carrying the W/ prefix). The package
// provides the EntityTag value type with parsing, formatting, and the HTTP
// strong/weak comparison functions, plus default tag derivation from raw
// bytes, arbitrary serializable values, and file metadata.
//
// The package never touches the network or the filesystem: callers extract
// header values and stat files themselves and feed the results in.
package etag
