package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
)

var (
	osStat      = os.Stat
	osMkdirAll  = os.MkdirAll
	osWriteFile = os.WriteFile
)

// Reconcile loads the packaged default catalog and the user catalog, fills
// the user catalog with missing defaults and writes it back when it is new
// or was changed by the merge. Write failures are logged and ignored. A user
// catalog that exists but cannot be read in full is never written; the
// merged result then serves the current session only.
func Reconcile(defaultPath, userPath string) Catalog {
	def := Load(defaultPath)

	userExists := false
	writable := userPath != ""
	user := New(nil)
	if userPath != "" {
		info, err := osStat(userPath)
		switch {
		case err == nil && info.Mode().IsRegular():
			userExists = true
			var loadErr error
			if user, loadErr = LoadFile(userPath); loadErr != nil {
				writable = false
				log.WithField("path", userPath).Warnf("user type catalog not fully read, leaving it untouched: %v", loadErr)
			}
		case err == nil:
			writable = false
			log.WithField("path", userPath).Warnf("user type catalog is not a regular file: %v", info.Mode().Type())
		case !errors.Is(err, fs.ErrNotExist):
			writable = false
			log.WithField("path", userPath).Warnf("user type catalog unavailable, leaving it untouched: %v", err)
		}
	}

	merged, changed := Merge(user, def)
	if !writable || (userExists && !changed) {
		return merged
	}
	if err := Save(userPath, merged); err != nil {
		log.WithField("path", userPath).Warnf("failed to save user type catalog: %v", err)
	}
	return merged
}

// Save writes c to path, creating missing parent directories.
func Save(path string, c Catalog) error {
	if err := osMkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create catalog dir: %w", err)
	}
	var buf bytes.Buffer
	if _, err := c.WriteTo(&buf); err != nil {
		return err
	}
	if err := osWriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write catalog: %w", err)
	}
	return nil
}
