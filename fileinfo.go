package etag

import (
	"io/fs"
	"strconv"
)

// FromFileInfo derives a strong entity tag from file metadata, formatted as
// "<modified>-<size>": the modification time as decimal Unix seconds, a
// hyphen, and the file size in decimal bytes.
//
// This favors cheap stat-level metadata over reading file content, the
// scheme conventional HTTP file servers use. It is correct as long as the
// filesystem bumps the modification time on every content change; writes
// that land within the same one-second timestamp can alias onto the same
// tag. The caller performs the stat; this package does no file I/O.
func FromFileInfo(fi fs.FileInfo) EntityTag {
	return Strong(strconv.FormatInt(fi.ModTime().Unix(), 10) + "-" + strconv.FormatInt(fi.Size(), 10))
}
