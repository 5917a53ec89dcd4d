package files

import (
	"context"
	"io"
	"os"
)

//go:generate mockgen -source=store.go -destination=mock_store.go -package=files

// Store is the filesystem the classifier and the lister work against.
type Store interface {
	RootTitle() string
	ReadDir(ctx context.Context, name string) ([]os.DirEntry, error)
	// Lstat does not follow symlinks.
	Lstat(ctx context.Context, name string) (os.FileInfo, error)
	Stat(ctx context.Context, name string) (os.FileInfo, error)
	Readlink(ctx context.Context, name string) (string, error)
	// Open returns the content of a regular file.
	Open(ctx context.Context, name string) (io.ReadCloser, error)
}
