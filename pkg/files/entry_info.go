package files

import (
	"os"
	"time"
)

type EntryInfoOption func(*EntryInfo)

var _ os.FileInfo = (*EntryInfo)(nil)

// EntryInfo is an in-memory os.FileInfo.
type EntryInfo struct {
	DirEntry
	size    int64
	modTime time.Time
	sys     any
}

func NewEntryInfo(dirEntry DirEntry, o ...EntryInfoOption) (info *EntryInfo) {
	info = &EntryInfo{
		DirEntry: dirEntry,
	}
	for _, opt := range o {
		opt(info)
	}
	return
}

func Size(v int64) EntryInfoOption {
	return func(info *EntryInfo) {
		info.size = v
	}
}

func ModTime(v time.Time) EntryInfoOption {
	return func(info *EntryInfo) {
		info.modTime = v
	}
}

func (f *EntryInfo) Name() string {
	if f == nil {
		return ""
	}
	return f.name
}
func (f *EntryInfo) Size() int64 {
	if f == nil {
		return 0
	}
	return f.size
}
func (f *EntryInfo) Mode() os.FileMode {
	if f == nil {
		return 0
	}
	return f.mode
}
func (f *EntryInfo) ModTime() time.Time {
	if f == nil {
		return time.Time{}
	}
	return f.modTime
}
func (f *EntryInfo) IsDir() bool {
	if f == nil {
		return false
	}
	return f.mode.IsDir()
}
func (f *EntryInfo) Sys() any {
	if f == nil {
		return nil
	}
	return f.sys
}
