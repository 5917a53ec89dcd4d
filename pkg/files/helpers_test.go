package files

import (
	"io/fs"
	"os"
	"testing"

	"go.uber.org/mock/gomock"
)

func newEntryInfo(name string, mode fs.FileMode, o ...EntryInfoOption) os.FileInfo {
	info, _ := NewDirEntry(name, mode, o...).Info()
	return info
}

func newMockStore(t *testing.T) *MockStore {
	ctrl := gomock.NewController(t)
	return NewMockStore(ctrl)
}
