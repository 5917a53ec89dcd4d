package files

import (
	"io/fs"
	"time"

	"github.com/filetug/fileexp/pkg/fsutils"
)

// FileInfo describes one filesystem entry. Exactly one of Regular, Dir and
// Symlink is set, matching Kind; for every other kind all three are nil.
type FileInfo struct {
	Name     string
	Path     string
	Kind     Kind
	Perm     fs.FileMode
	ModTime  time.Time
	TypeDesc string

	Regular *RegularInfo
	Dir     *DirInfo
	Symlink *SymlinkInfo
}

type RegularInfo struct {
	Size int64
	// SizeOK is false when the size could not be read, e.g. the file vanished.
	SizeOK bool
	MIME   string
}

type DirInfo struct {
	// HasAccess is false when the children could not be listed.
	HasAccess   bool
	SubdirCount int
	FileCount   int
}

type SymlinkInfo struct {
	Target string
}

func (fi FileInfo) PermString() string {
	return fsutils.PermString(fi.Perm)
}

// SizeText returns a short size like "12KB", or "N/A".
func (fi FileInfo) SizeText() string {
	if fi.Regular == nil {
		return fsutils.NotAvailable
	}
	return fsutils.ShortSize(fi.Regular.Size, fi.Regular.SizeOK)
}
