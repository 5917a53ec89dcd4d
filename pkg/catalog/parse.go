package catalog

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
)

const commentChars = "#;/"

// Parse reads a catalog from r. Each non-blank line has the form
// "key [key2 ...] = label"; anything from the first '#', ';' or '/' on is a
// comment. Malformed lines are skipped. A read error is logged and the
// entries read so far are returned.
func Parse(r io.Reader) Catalog {
	c, err := ReadCatalog(r)
	if err != nil {
		log.Debugf("type catalog read stopped early: %v", err)
	}
	return c
}

// ReadCatalog is Parse that reports a read error. On error the returned
// catalog holds only the entries before the failure.
func ReadCatalog(r io.Reader) (Catalog, error) {
	types := make(map[string]string)
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		parseLine(types, line)
		if errors.Is(err, io.EOF) {
			return New(types), nil
		}
		if err != nil {
			return New(types), fmt.Errorf("read catalog: %w", err)
		}
	}
}

func parseLine(types map[string]string, line string) {
	if i := strings.IndexAny(line, commentChars); i >= 0 {
		line = line[:i]
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}
	keys, label, found := strings.Cut(line, "=")
	if !found {
		return
	}
	label = strings.TrimSpace(label)
	for _, key := range strings.Fields(keys) {
		types[key] = label
	}
}

var osOpen = os.Open

// Load reads a catalog file. It never fails: an unreadable file yields an
// empty catalog.
func Load(path string) Catalog {
	c, err := LoadFile(path)
	if err != nil {
		log.WithField("path", path).Debugf("type catalog not loaded: %v", err)
	}
	return c
}

// LoadFile reads a catalog file and reports open and read errors.
func LoadFile(path string) (Catalog, error) {
	f, err := osOpen(path)
	if err != nil {
		return New(nil), err
	}
	defer func() {
		_ = f.Close()
	}()
	return ReadCatalog(f)
}
