package navigator

import "github.com/filetug/fileexp/pkg/files"

//go:generate mockgen -source=screen.go -destination=../tviewmocks/mock_screen.go -package=tviewmocks

// Screen renders navigation state. The navigator pushes a full listing after
// every directory change and the file info after every selection change.
type Screen interface {
	ShowListing(dir string, entries []files.Entry, selected int)
	// ShowFileInfo receives nil when there is no current entry.
	ShowFileInfo(info *files.FileInfo)
}

type nopScreen struct{}

func (nopScreen) ShowListing(string, []files.Entry, int) {}
func (nopScreen) ShowFileInfo(*files.FileInfo)           {}
