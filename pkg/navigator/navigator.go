package navigator

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/filetug/fileexp/pkg/catalog"
	"github.com/filetug/fileexp/pkg/files"
	"github.com/filetug/fileexp/pkg/fspath"
	log "github.com/sirupsen/logrus"
)

// NoSelection is the selection index of an empty listing.
const NoSelection = -1

// Navigator is the browsing state machine: the current directory, its
// listing and the highlighted entry. It is not safe for concurrent use,
// all events are expected to come from the UI event loop.
type Navigator struct {
	ctx        context.Context
	env        fspath.Env
	store      files.Store
	classifier files.Classifier
	screen     Screen
	root       string
	showHidden bool

	listing  files.Listing
	selected int
	info     *files.FileInfo
	done     bool
}

// New enters the start directory (home by default). When it can not be
// entered the navigator falls back to the filesystem root.
func New(env fspath.Env, store files.Store, cat catalog.Catalog, opts ...Option) *Navigator {
	o := options{
		ctx:    context.Background(),
		screen: nopScreen{},
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.screen == nil {
		o.screen = nopScreen{}
	}
	nav := &Navigator{
		ctx:   o.ctx,
		env:   env,
		store: store,
		classifier: files.Classifier{
			Store:     store,
			Catalog:   cat,
			SniffMIME: o.sniffMIME,
		},
		screen:     o.screen,
		root:       fspath.RootPath(env),
		showHidden: o.showHidden,
		selected:   NoSelection,
	}
	startDir := o.startDir
	if startDir == "" {
		startDir = fspath.HomeDir(env)
	}
	if nav.ChangeDir(startDir) {
		return nav
	}
	log.WithField("path", startDir).Warn("can not enter start directory, falling back to root")
	if nav.ChangeDir(nav.root) {
		return nav
	}
	// Even the root is not listable: show whatever can be read.
	nav.setListing(files.List(nav.ctx, nav.store, nav.root, nav.root, nav.showHidden), 0)
	return nav
}

func (nav *Navigator) Dir() string {
	return nav.listing.Dir
}

func (nav *Navigator) Root() string {
	return nav.root
}

func (nav *Navigator) Listing() files.Listing {
	return nav.listing
}

// Selected returns the index of the current entry or NoSelection.
func (nav *Navigator) Selected() int {
	return nav.selected
}

func (nav *Navigator) SelectedEntry() (files.Entry, bool) {
	if nav.selected < 0 || nav.selected >= nav.listing.Len() {
		return files.Entry{}, false
	}
	return nav.listing.Entries[nav.selected], true
}

// FileInfo describes the current entry, nil if there is none.
func (nav *Navigator) FileInfo() *files.FileInfo {
	return nav.info
}

func (nav *Navigator) ShowHidden() bool {
	return nav.showHidden
}

// Done reports whether Quit was called.
func (nav *Navigator) Done() bool {
	return nav.done
}

// Select moves the current entry. Out of range indexes are clamped.
func (nav *Navigator) Select(index int) {
	if nav.done || nav.listing.Len() == 0 {
		return
	}
	nav.selected = clamp(index, nav.listing.Len())
	nav.classifySelected()
	nav.screen.ShowFileInfo(nav.info)
}

// Enter activates the current entry: ".." goes to the parent and a
// directory entry is entered. Anything else is ignored.
func (nav *Navigator) Enter() bool {
	if nav.done {
		return false
	}
	entry, ok := nav.SelectedEntry()
	if !ok || !entry.Selectable {
		return false
	}
	switch {
	case entry.IsParent():
		return nav.Up()
	case entry.IsDir():
		target := fspath.Resolve(nav.env, filepath.Join(nav.Dir(), entry.BaseName()))
		if target == nav.Dir() {
			return false
		}
		return nav.ChangeDir(target)
	default:
		return false
	}
}

// Up goes to the parent directory. It is a no-op at the root.
func (nav *Navigator) Up() bool {
	if nav.done || fspath.IsRoot(nav.Dir()) {
		return false
	}
	return nav.ChangeDir(fspath.Parent(nav.Dir()))
}

func (nav *Navigator) GoHome() bool {
	if nav.done {
		return false
	}
	return nav.ChangeDir(fspath.HomeDir(nav.env))
}

func (nav *Navigator) GoRoot() bool {
	if nav.done {
		return false
	}
	return nav.ChangeDir(nav.root)
}

// ChangeDir switches to target if it is an accessible directory.
// A rejected change leaves the state untouched.
func (nav *Navigator) ChangeDir(target string) bool {
	if nav.done {
		return false
	}
	dir := fspath.Resolve(nav.env, target)
	logger := log.WithField("path", dir)
	if !strings.HasPrefix(dir, nav.root) {
		logger.Debug("change dir rejected: outside of root")
		return false
	}
	stat, err := nav.store.Stat(nav.ctx, dir)
	if err != nil {
		logger.Debugf("change dir rejected: %v", err)
		return false
	}
	if !stat.IsDir() {
		logger.Debug("change dir rejected: not a directory")
		return false
	}
	if !files.CanAccess(nav.ctx, nav.store, dir, true) {
		logger.Debug("change dir rejected: no access")
		return false
	}
	listing := files.List(nav.ctx, nav.store, dir, nav.root, nav.showHidden)
	if err = nav.env.Chdir(dir); err != nil {
		logger.Warnf("failed to change working directory: %v", err)
	}
	nav.setListing(listing, 0)
	return true
}

// ToggleHidden flips hidden entries display and keeps the current entry
// selected when it is still listed.
func (nav *Navigator) ToggleHidden() {
	if nav.done {
		return
	}
	var current string
	if entry, ok := nav.SelectedEntry(); ok {
		current = entry.Name
	}
	nav.showHidden = !nav.showHidden
	listing := files.List(nav.ctx, nav.store, nav.Dir(), nav.root, nav.showHidden)
	selected := 0
	if current != "" {
		if i := listing.IndexOf(current); i >= 0 {
			selected = i
		}
	}
	nav.setListing(listing, selected)
}

// Quit ends navigation. Every later event is ignored.
func (nav *Navigator) Quit() {
	nav.done = true
}

func (nav *Navigator) setListing(listing files.Listing, selected int) {
	nav.listing = listing
	if listing.Len() == 0 {
		nav.selected = NoSelection
	} else {
		nav.selected = clamp(selected, listing.Len())
	}
	nav.classifySelected()
	nav.screen.ShowListing(listing.Dir, listing.Entries, nav.selected)
	nav.screen.ShowFileInfo(nav.info)
}

func (nav *Navigator) classifySelected() {
	entry, ok := nav.SelectedEntry()
	if !ok {
		nav.info = nil
		return
	}
	path := filepath.Join(nav.Dir(), entry.BaseName())
	info := nav.classifier.Classify(nav.ctx, path)
	if entry.IsParent() {
		info.Name = files.ParentEntryName
	}
	nav.info = &info
}

func clamp(index, n int) int {
	if index < 0 {
		return 0
	}
	if index >= n {
		return n - 1
	}
	return index
}
