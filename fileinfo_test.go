package etag

import (
	"io/fs"
	"testing"
	"time"
)

// fakeFileInfo is a test double for fs.FileInfo; no file I/O involved.
type fakeFileInfo struct {
	size    int64
	modTime time.Time
}

func (f fakeFileInfo) Name() string       { return "fake" }
func (f fakeFileInfo) Size() int64        { return f.size }
func (f fakeFileInfo) Mode() fs.FileMode  { return 0o644 }
func (f fakeFileInfo) ModTime() time.Time { return f.modTime }
func (f fakeFileInfo) IsDir() bool        { return false }
func (f fakeFileInfo) Sys() any           { return nil }

// TestFromFileInfo checks the <modified>-<size> tag shape.
func TestFromFileInfo(t *testing.T) {
	tests := []struct {
		name    string
		modTime time.Time
		size    int64
		want    string
	}{
		{"typical file", time.Unix(1700000000, 0), 4096, "1700000000-4096"},
		{"empty file", time.Unix(1700000000, 0), 0, "1700000000-0"},
		{"subsecond precision dropped", time.Unix(1700000000, 999999999), 512, "1700000000-512"},
		{"epoch", time.Unix(0, 0), 1, "0-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tag := FromFileInfo(fakeFileInfo{size: tt.size, modTime: tt.modTime})
			if tag.IsWeak() {
				t.Error("FromFileInfo produced a weak tag")
			}
			if tag.Tag() != tt.want {
				t.Errorf("FromFileInfo tag = %q, want %q", tag.Tag(), tt.want)
			}
		})
	}
}

// TestFromFileInfo_RoundTrip verifies the derived tag is wire-valid.
func TestFromFileInfo_RoundTrip(t *testing.T) {
	want := FromFileInfo(fakeFileInfo{size: 1234, modTime: time.Unix(1700000000, 0)})
	got, err := Parse(want.String())
	if err != nil {
		t.Fatalf("Parse(%q) error = %v", want.String(), err)
	}
	if got != want {
		t.Errorf("Parse(%q) = %#v, want %#v", want.String(), got, want)
	}
}

// TestFromFileInfo_Aliasing documents that writes within one timestamp
// second alias onto the same tag when the size also matches.
func TestFromFileInfo_Aliasing(t *testing.T) {
	a := FromFileInfo(fakeFileInfo{size: 100, modTime: time.Unix(1700000000, 100)})
	b := FromFileInfo(fakeFileInfo{size: 100, modTime: time.Unix(1700000000, 900)})
	if a != b {
		t.Errorf("tags differ within same timestamp second: %s vs %s", a, b)
	}

	c := FromFileInfo(fakeFileInfo{size: 101, modTime: time.Unix(1700000000, 0)})
	if a == c {
		t.Error("tags identical for different sizes")
	}
}
