package etag

// StrongMatch reports whether any tag in list matches t under the HTTP
// strong comparison function. This is the evaluation an origin server
// applies to an If-Match list before a state-changing request.
func StrongMatch(list []EntityTag, t EntityTag) bool {
	for _, candidate := range list {
		if candidate.StrongEq(t) {
			return true
		}
	}
	return false
}

// WeakMatch reports whether any tag in list matches t under the HTTP weak
// comparison function. This is the evaluation applied to an If-None-Match
// list during cache validation.
func WeakMatch(list []EntityTag, t EntityTag) bool {
	for _, candidate := range list {
		if candidate.WeakEq(t) {
			return true
		}
	}
	return false
}
