package files

import (
	"context"
	"path/filepath"
	"sort"
	"strings"

	log "github.com/sirupsen/logrus"
)

const (
	// ParentEntryName is the synthetic entry that leads to the parent dir.
	ParentEntryName = ".."
	// DirSuffix marks directory names in a listing.
	DirSuffix = "/"
)

// Entry is one row of a listing.
type Entry struct {
	Name       string
	Selectable bool
}

// IsParent reports whether e is the synthetic ".." entry.
func (e Entry) IsParent() bool {
	return e.Name == ParentEntryName
}

// IsDir reports whether e denotes a directory.
func (e Entry) IsDir() bool {
	return e.IsParent() || strings.HasSuffix(e.Name, DirSuffix)
}

// BaseName is the name without the directory suffix.
func (e Entry) BaseName() string {
	return strings.TrimSuffix(e.Name, DirSuffix)
}

// Listing is the ordered content of one directory.
type Listing struct {
	Dir     string
	Entries []Entry
}

func (l Listing) Len() int {
	return len(l.Entries)
}

func (l Listing) Names() []string {
	names := make([]string, len(l.Entries))
	for i, e := range l.Entries {
		names[i] = e.Name
	}
	return names
}

// IndexOf returns the position of the entry called name, or -1.
func (l Listing) IndexOf(name string) int {
	for i, e := range l.Entries {
		if e.Name == name {
			return i
		}
	}
	return -1
}

// IsHidden reports whether name is hidden by default.
func IsHidden(name string) bool {
	return strings.HasPrefix(name, ".") && name != ParentEntryName
}

// List reads dir and returns its entries sorted by name, directories
// suffixed with DirSuffix. A ".." entry comes first unless dir is root.
// Read errors yield whatever was collected so far.
func List(ctx context.Context, store Store, dir, root string, showHidden bool) Listing {
	listing := Listing{Dir: dir}
	if dir != root {
		listing.Entries = append(listing.Entries, Entry{Name: ParentEntryName, Selectable: true})
	}
	children, err := store.ReadDir(ctx, dir)
	if err != nil {
		log.WithField("path", dir).Debugf("list failed: %v", err)
	}
	entries := make([]Entry, 0, len(children))
	for _, child := range children {
		name := child.Name()
		if !showHidden && IsHidden(name) {
			continue
		}
		fullPath := filepath.Join(dir, name)
		isDir := isDirEntry(ctx, store, dir, child)
		if isDir {
			name += DirSuffix
		}
		entries = append(entries, Entry{
			Name:       name,
			Selectable: CanAccess(ctx, store, fullPath, isDir),
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})
	listing.Entries = append(listing.Entries, entries...)
	return listing
}
