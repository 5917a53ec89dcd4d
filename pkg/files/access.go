package files

import (
	"context"
	"os"
	"path/filepath"
)

// CanAccess reports whether an entry can be focused in the listing.
// A directory must be listable, anything else must answer a size probe.
// The classifier and the lister share this predicate.
func CanAccess(ctx context.Context, store Store, path string, isDir bool) bool {
	if isDir {
		_, ok := readChildren(ctx, store, path)
		return ok
	}
	_, err := store.Stat(ctx, path)
	return err == nil
}

func readChildren(ctx context.Context, store Store, dir string) ([]os.DirEntry, bool) {
	children, err := store.ReadDir(ctx, dir)
	if err != nil {
		return nil, false
	}
	return children, true
}

// isDirEntry follows symlinks, so a link to a directory counts as a directory.
func isDirEntry(ctx context.Context, store Store, dir string, entry os.DirEntry) bool {
	if entry.IsDir() {
		return true
	}
	if entry.Type()&os.ModeSymlink == 0 {
		return false
	}
	info, err := store.Stat(ctx, filepath.Join(dir, entry.Name()))
	if err != nil {
		return false
	}
	return info.IsDir()
}
