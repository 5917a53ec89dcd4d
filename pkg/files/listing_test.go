package files

import (
	"context"
	"io/fs"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestIsHidden(t *testing.T) {
	assert.True(t, IsHidden(".bashrc"))
	assert.True(t, IsHidden("."))
	assert.False(t, IsHidden(".."))
	assert.False(t, IsHidden("readme"))
	assert.False(t, IsHidden(""))
}

func TestEntry(t *testing.T) {
	parent := Entry{Name: ParentEntryName}
	assert.True(t, parent.IsParent())
	assert.True(t, parent.IsDir())

	dir := Entry{Name: "docs/"}
	assert.False(t, dir.IsParent())
	assert.True(t, dir.IsDir())
	assert.Equal(t, "docs", dir.BaseName())

	file := Entry{Name: "a.txt"}
	assert.False(t, file.IsDir())
	assert.Equal(t, "a.txt", file.BaseName())
}

func listingStore(t *testing.T) *MockStore {
	store := newMockStore(t)
	store.EXPECT().ReadDir(gomock.Any(), "/home/u").Return([]os.DirEntry{
		NewDirEntry("zeta.txt", 0o644),
		NewDirEntry("Alpha", fs.ModeDir|0o755),
		NewDirEntry(".hidden", 0o644),
		NewDirEntry("locked", fs.ModeDir|0o700),
		NewDirEntry("to-alpha", fs.ModeSymlink|0o777),
		NewDirEntry("gone.txt", 0o644),
	}, nil).AnyTimes()
	store.EXPECT().ReadDir(gomock.Any(), "/home/u/Alpha").Return(nil, nil).AnyTimes()
	store.EXPECT().ReadDir(gomock.Any(), "/home/u/locked").Return(nil, os.ErrPermission).AnyTimes()
	store.EXPECT().ReadDir(gomock.Any(), "/home/u/to-alpha").Return(nil, nil).AnyTimes()
	store.EXPECT().Stat(gomock.Any(), "/home/u/to-alpha").Return(newEntryInfo("to-alpha", fs.ModeDir|0o755), nil).AnyTimes()
	store.EXPECT().Stat(gomock.Any(), "/home/u/zeta.txt").Return(newEntryInfo("zeta.txt", 0o644), nil).AnyTimes()
	store.EXPECT().Stat(gomock.Any(), "/home/u/.hidden").Return(newEntryInfo(".hidden", 0o644), nil).AnyTimes()
	store.EXPECT().Stat(gomock.Any(), "/home/u/gone.txt").Return(nil, os.ErrNotExist).AnyTimes()
	return store
}

func TestList(t *testing.T) {
	ctx := context.Background()

	t.Run("sorted_with_parent", func(t *testing.T) {
		listing := List(ctx, listingStore(t), "/home/u", "/", false)
		assert.Equal(t, "/home/u", listing.Dir)
		assert.Equal(t, []Entry{
			{Name: "..", Selectable: true},
			{Name: "Alpha/", Selectable: true},
			{Name: "gone.txt", Selectable: false},
			{Name: "locked/", Selectable: false},
			{Name: "to-alpha/", Selectable: true},
			{Name: "zeta.txt", Selectable: true},
		}, listing.Entries)
	})

	t.Run("show_hidden", func(t *testing.T) {
		listing := List(ctx, listingStore(t), "/home/u", "/", true)
		assert.Equal(t, []string{"..", ".hidden", "Alpha/", "gone.txt", "locked/", "to-alpha/", "zeta.txt"}, listing.Names())
		assert.Equal(t, 1, listing.IndexOf(".hidden"))
		assert.Equal(t, -1, listing.IndexOf("missing"))
	})

	t.Run("root_has_no_parent", func(t *testing.T) {
		store := newMockStore(t)
		store.EXPECT().ReadDir(gomock.Any(), "/").Return([]os.DirEntry{
			NewDirEntry("etc", fs.ModeDir|0o755),
		}, nil)
		store.EXPECT().ReadDir(gomock.Any(), "/etc").Return(nil, nil)
		listing := List(ctx, store, "/", "/", false)
		assert.Equal(t, []string{"etc/"}, listing.Names())
	})

	t.Run("read_error_is_soft", func(t *testing.T) {
		store := newMockStore(t)
		store.EXPECT().ReadDir(gomock.Any(), "/tmp/x").Return(nil, os.ErrPermission)
		listing := List(ctx, store, "/tmp/x", "/", false)
		assert.Equal(t, []string{".."}, listing.Names())
		assert.Equal(t, 1, listing.Len())
	})

	t.Run("empty_root", func(t *testing.T) {
		store := newMockStore(t)
		store.EXPECT().ReadDir(gomock.Any(), "/").Return(nil, nil)
		listing := List(ctx, store, "/", "/", false)
		assert.Equal(t, 0, listing.Len())
	})
}

func TestCanAccess(t *testing.T) {
	ctx := context.Background()
	store := listingStore(t)
	assert.True(t, CanAccess(ctx, store, "/home/u/Alpha", true))
	assert.False(t, CanAccess(ctx, store, "/home/u/locked", true))
	assert.True(t, CanAccess(ctx, store, "/home/u/zeta.txt", false))
	assert.False(t, CanAccess(ctx, store, "/home/u/gone.txt", false))
}
