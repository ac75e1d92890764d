package etag

import (
	"fmt"
	"strings"
)

// Parse parses the wire form of a single entity tag.
//
// Grammar (RFC 7232 section 2.3, case-sensitive W/ marker):
//
//	entity-tag = [ weak ] opaque-tag
//	weak       = %x57.2F ; "W/"
//	opaque-tag = DQUOTE *etagc DQUOTE
//	etagc      = %x21 / %x23-7E / obs-text
//
// Parsing is strict: a missing or unmatched quote, a bare double quote
// inside the content, a non-etagc byte, a lowercase w/ prefix, or any byte
// after the closing quote fails with ErrInvalidFormat. The empty opaque-tag
// `""` is valid and yields a tag with empty content.
func Parse(s string) (EntityTag, error) {
	t, end, err := scanTag(s, 0)
	if err != nil {
		return EntityTag{}, err
	}
	if end != len(s) {
		return EntityTag{}, fmt.Errorf("%w: trailing bytes after closing quote", ErrInvalidFormat)
	}
	return t, nil
}

// ParseList parses a comma-separated list of entity tags, the form carried
// by the If-Match and If-None-Match header fields (1#entity-tag). Elements
// may be surrounded by optional spaces or tabs. An empty list, a dangling
// comma, or any element that fails the entity-tag grammar fails with
// ErrInvalidFormat.
//
// A literal "*" is not an entity-tag; callers that accept it check for it
// before parsing.
func ParseList(s string) ([]EntityTag, error) {
	var tags []EntityTag
	i := skipOWS(s, 0)
	for {
		t, next, err := scanTag(s, i)
		if err != nil {
			return nil, err
		}
		tags = append(tags, t)
		i = skipOWS(s, next)
		if i == len(s) {
			return tags, nil
		}
		if s[i] != ',' {
			return nil, fmt.Errorf("%w: expected comma between entity tags", ErrInvalidFormat)
		}
		i = skipOWS(s, i+1)
	}
}

// ValidateTag checks that tag is valid opaque-tag content: every byte must
// be an etagc octet. Content that fails validation cannot round-trip
// through String and Parse. Returns nil for the empty string, which is a
// valid (empty) opaque-tag.
func ValidateTag(tag string) error {
	for i := 0; i < len(tag); i++ {
		if !isETagc(tag[i]) {
			return fmt.Errorf("%w: byte %#x at offset %d not allowed in opaque-tag", ErrInvalidFormat, tag[i], i)
		}
	}
	return nil
}

// scanTag parses one entity-tag starting at offset i and returns the tag
// and the offset of the first byte past its closing quote.
func scanTag(s string, i int) (EntityTag, int, error) {
	weak := false
	if strings.HasPrefix(s[i:], "W/") {
		weak = true
		i += 2
	}
	if i >= len(s) || s[i] != '"' {
		return EntityTag{}, 0, fmt.Errorf("%w: missing opening quote", ErrInvalidFormat)
	}
	i++
	start := i
	for i < len(s) && s[i] != '"' {
		if !isETagc(s[i]) {
			return EntityTag{}, 0, fmt.Errorf("%w: byte %#x at offset %d not allowed in opaque-tag", ErrInvalidFormat, s[i], i)
		}
		i++
	}
	if i >= len(s) {
		return EntityTag{}, 0, fmt.Errorf("%w: missing closing quote", ErrInvalidFormat)
	}
	return EntityTag{weak: weak, tag: s[start:i]}, i + 1, nil
}

// isETagc reports whether b is an etagc octet: any visible ASCII byte
// except DQUOTE (0x22), plus obs-text (0x80-0xFF). Control bytes, space,
// and DEL are excluded.
func isETagc(b byte) bool {
	return b == 0x21 || (b >= 0x23 && b <= 0x7e) || b >= 0x80
}

// skipOWS advances i past optional whitespace (space or horizontal tab).
func skipOWS(s string, i int) int {
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	return i
}
