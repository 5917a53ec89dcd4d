package files

import (
	"io/fs"
	"os"
	"path/filepath"
)

// NewDirEntry creates an in-memory os.DirEntry, mostly for stores that do
// not read from a local disk and for tests.
func NewDirEntry(name string, mode fs.FileMode, o ...EntryInfoOption) DirEntry {
	if parent, _ := filepath.Split(name); parent != "" {
		// It's OK to have panic here.
		panic("dir entry name can not have path: " + name)
	}
	dirEntry := DirEntry{
		name: name,
		mode: mode,
	}
	dirEntry.info = NewEntryInfo(dirEntry, o...)
	return dirEntry
}

var _ os.DirEntry = (*DirEntry)(nil)

type DirEntry struct {
	name string
	mode fs.FileMode
	info *EntryInfo
}

func (d DirEntry) Name() string { return d.name }
func (d DirEntry) IsDir() bool  { return d.mode.IsDir() }
func (d DirEntry) Type() os.FileMode {
	return d.mode.Type()
}
func (d DirEntry) Info() (os.FileInfo, error) {
	return d.info, nil
}
