package fspath

import (
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Resolve makes p absolute against the working directory of env and
// collapses "." and ".." segments. The result never has a trailing
// separator unless it is the root itself.
func Resolve(env Env, p string) string {
	if p == "" {
		p = "."
	}
	if !filepath.IsAbs(p) {
		wd, err := env.Getwd()
		if err != nil {
			log.WithField("path", p).Debugf("getwd failed, resolving against root: %v", err)
			wd = string(filepath.Separator)
		}
		p = filepath.Join(wd, p)
	}
	// filepath.Clean drops ".." segments that would climb above the root.
	return filepath.Clean(p)
}

// RootPath returns the filesystem root of the absolute working directory.
func RootPath(env Env) string {
	wd, err := env.Getwd()
	if err != nil || !filepath.IsAbs(wd) {
		return string(filepath.Separator)
	}
	return rootOf(wd)
}

func rootOf(p string) string {
	vol := filepath.VolumeName(p)
	return vol + string(filepath.Separator)
}

// IsRoot reports whether the resolved path p is a filesystem root.
func IsRoot(p string) bool {
	return p == rootOf(p)
}

// Parent returns the parent directory of the resolved path p.
// The parent of a root is the root.
func Parent(p string) string {
	if IsRoot(p) {
		return p
	}
	return filepath.Dir(strings.TrimSuffix(p, string(filepath.Separator)))
}

// HomeDir returns $HOME when set, then the OS user record home, then the
// working directory. It never fails: the root is the last resort.
func HomeDir(env Env) string {
	if home := env.Getenv("HOME"); home != "" {
		return Resolve(env, home)
	}
	if home, err := env.UserHomeDir(); err == nil && home != "" {
		return Resolve(env, home)
	}
	if wd, err := env.Getwd(); err == nil && wd != "" {
		return Resolve(env, wd)
	}
	return string(filepath.Separator)
}
