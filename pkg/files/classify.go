package files

import (
	"context"
	"errors"
	"io/fs"
	"path/filepath"

	"github.com/filetug/fileexp/pkg/catalog"
	"github.com/filetug/fileexp/pkg/fsutils"
	"github.com/gabriel-vasile/mimetype"
	log "github.com/sirupsen/logrus"
)

const (
	executableSuffix   = " (Executable)"
	executableTypeDesc = "Executable"
	unknownRegularDesc = "Unknown Regular File"
)

// Classifier builds FileInfo values for paths of a Store.
type Classifier struct {
	Store   Store
	Catalog catalog.Catalog
	// SniffMIME enables content based MIME detection for regular files.
	SniffMIME bool
}

// Classify never fails: filesystem errors are reported through Kind and the
// extra data placeholders.
func (c Classifier) Classify(ctx context.Context, path string) FileInfo {
	info := FileInfo{
		Name: filepath.Base(path),
		Path: path,
	}
	stat, err := c.Store.Lstat(ctx, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			info.Kind = KindNotFound
		} else {
			info.Kind = KindUnknown
		}
		info.TypeDesc = info.Kind.String()
		log.WithField("path", path).Debugf("lstat failed: %v", err)
		return info
	}
	mode := stat.Mode()
	info.Kind = KindOf(mode)
	info.Perm = mode.Perm()
	info.ModTime = stat.ModTime()

	switch info.Kind {
	case KindSymlink:
		info.TypeDesc = info.Kind.String()
		info.Symlink = &SymlinkInfo{}
		if target, err := c.Store.Readlink(ctx, path); err == nil {
			info.Symlink.Target = target
		} else {
			log.WithField("path", path).Debugf("readlink failed: %v", err)
		}
	case KindDirectory:
		info.TypeDesc = info.Kind.String()
		info.Dir = c.dirInfo(ctx, path)
	case KindRegular:
		info.TypeDesc = c.regularTypeDesc(info.Name, mode)
		info.Regular = c.regularInfo(ctx, path)
	default:
		info.TypeDesc = info.Kind.String()
	}
	return info
}

func (c Classifier) dirInfo(ctx context.Context, path string) *DirInfo {
	children, ok := readChildren(ctx, c.Store, path)
	if !ok {
		return &DirInfo{HasAccess: false}
	}
	dirInfo := &DirInfo{HasAccess: true}
	for _, child := range children {
		if isDirEntry(ctx, c.Store, path, child) {
			dirInfo.SubdirCount++
		} else {
			dirInfo.FileCount++
		}
	}
	return dirInfo
}

func (c Classifier) regularInfo(ctx context.Context, path string) *RegularInfo {
	regular := &RegularInfo{}
	stat, err := c.Store.Stat(ctx, path)
	if err != nil {
		log.WithField("path", path).Debugf("size probe failed: %v", err)
		return regular
	}
	regular.Size = stat.Size()
	regular.SizeOK = true
	if c.SniffMIME {
		regular.MIME = c.detectMIME(ctx, path)
	}
	return regular
}

func (c Classifier) detectMIME(ctx context.Context, path string) string {
	r, err := c.Store.Open(ctx, path)
	if err != nil {
		log.WithField("path", path).Debugf("mime probe failed: %v", err)
		return ""
	}
	defer func() {
		_ = r.Close()
	}()
	m, err := mimetype.DetectReader(r)
	if err != nil {
		log.WithField("path", path).Debugf("mime probe failed: %v", err)
		return ""
	}
	return m.String()
}

func (c Classifier) regularTypeDesc(name string, mode fs.FileMode) string {
	executable := fsutils.IsExecutable(mode)
	if label, ok := c.Catalog.Describe(name); ok {
		if executable {
			return label + executableSuffix
		}
		return label
	}
	if executable {
		return executableTypeDesc
	}
	return unknownRegularDesc
}
