package etag

import "testing"

// TestStrongMatch verifies If-Match style evaluation over a tag list.
func TestStrongMatch(t *testing.T) {
	list := []EntityTag{Strong("a"), Weak("b"), Strong("c")}

	tests := []struct {
		name   string
		target EntityTag
		want   bool
	}{
		{"strong member", Strong("a"), true},
		{"other strong member", Strong("c"), true},
		{"weak member never strong-matches", Weak("b"), false},
		{"strong target against weak member", Strong("b"), false},
		{"absent content", Strong("d"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StrongMatch(list, tt.target); got != tt.want {
				t.Errorf("StrongMatch(list, %s) = %v, want %v", tt.target, got, tt.want)
			}
		})
	}

	if StrongMatch(nil, Strong("a")) {
		t.Error("StrongMatch(nil, ...) = true, want false")
	}
}

// TestWeakMatch verifies If-None-Match style evaluation over a tag list.
func TestWeakMatch(t *testing.T) {
	list := []EntityTag{Strong("a"), Weak("b")}

	tests := []struct {
		name   string
		target EntityTag
		want   bool
	}{
		{"strong member, strong target", Strong("a"), true},
		{"strong member, weak target", Weak("a"), true},
		{"weak member, strong target", Strong("b"), true},
		{"weak member, weak target", Weak("b"), true},
		{"absent content", Strong("c"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WeakMatch(list, tt.target); got != tt.want {
				t.Errorf("WeakMatch(list, %s) = %v, want %v", tt.target, got, tt.want)
			}
		})
	}

	if WeakMatch(nil, Weak("a")) {
		t.Error("WeakMatch(nil, ...) = true, want false")
	}
}
