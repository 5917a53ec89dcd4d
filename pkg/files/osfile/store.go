package osfile

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/filetug/fileexp/pkg/files"
)

var osReadDir = os.ReadDir
var osLstat = os.Lstat
var osStat = os.Stat
var osReadlink = os.Readlink
var osOpen = os.Open
var osHostname = os.Hostname

var _ files.Store = (*Store)(nil)

// Store reads the local filesystem.
type Store struct {
	title string
}

func NewStore() *Store {
	var store Store
	var err error
	if store.title, err = osHostname(); err != nil {
		store.title = "localhost"
	}
	return &store
}

func (s Store) RootTitle() string {
	return strings.TrimSuffix(s.title, ".local")
}

func (s Store) ReadDir(ctx context.Context, name string) ([]os.DirEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return osReadDir(name)
}

func (s Store) Lstat(ctx context.Context, name string) (os.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return osLstat(name)
}

func (s Store) Stat(ctx context.Context, name string) (os.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return osStat(name)
}

func (s Store) Readlink(ctx context.Context, name string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return osReadlink(name)
}

func (s Store) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := osOpen(name)
	if err != nil {
		return nil, err
	}
	return f, nil
}
