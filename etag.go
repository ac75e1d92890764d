package etag

// EntityTag is an HTTP entity tag: an opaque identifier for a specific
// version of a resource representation.
//
// An EntityTag is a small immutable value and is safe to copy and share
// freely. The == operator gives exact structural equality (same weakness,
// same content) — useful for tests and deduplication. StrongEq and WeakEq
// implement the HTTP comparison functions, which are different notions:
// two weak tags with identical content are == and WeakEq but never StrongEq.
type EntityTag struct {
	weak bool
	tag  string
}

// Strong returns a strong entity tag with the given opaque content.
//
// The content is stored verbatim; no validation is performed. Content that
// contains a double quote or other non-etagc byte will not round-trip
// through String and Parse — call ValidateTag first when that matters.
func Strong(tag string) EntityTag {
	return EntityTag{tag: tag}
}

// Weak returns a weak entity tag with the given opaque content. The same
// verbatim-storage caveat as Strong applies.
func Weak(tag string) EntityTag {
	return EntityTag{weak: true, tag: tag}
}

// IsWeak reports whether the tag is weak, i.e. carries the W/ prefix in
// its wire form.
func (e EntityTag) IsWeak() bool {
	return e.weak
}

// Tag returns the opaque content between the quotes, without the
// surrounding quotes or the W/ prefix.
func (e EntityTag) Tag() string {
	return e.tag
}

// String formats the tag in its wire form: `"content"` for strong tags,
// `W/"content"` for weak tags. No escaping is applied; for any tag built
// from etagc-valid content this is the exact inverse of Parse.
func (e EntityTag) String() string {
	if e.weak {
		return `W/"` + e.tag + `"`
	}
	return `"` + e.tag + `"`
}

// StrongEq reports whether e and other match under the HTTP strong
// comparison function: both tags must be strong and their content
// identical. A weak tag is never StrongEq to anything, including itself.
// This is the comparison required for range preconditions.
func (e EntityTag) StrongEq(other EntityTag) bool {
	return !e.weak && !other.weak && e.tag == other.tag
}

// WeakEq reports whether e and other match under the HTTP weak comparison
// function: content identical, weakness ignored on both sides. This is the
// comparison used for cache validation.
func (e EntityTag) WeakEq(other EntityTag) bool {
	return e.tag == other.tag
}
