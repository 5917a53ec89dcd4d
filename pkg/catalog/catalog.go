// Package catalog maps file names and extensions to human readable type labels.
package catalog

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/gobwas/glob"
	log "github.com/sirupsen/logrus"
)

// Catalog is an immutable key → label mapping. Keys are bare file names,
// extensions (with or without the leading dot) or glob patterns.
type Catalog struct {
	types    map[string]string
	patterns []pattern
}

type pattern struct {
	key string
	g   glob.Glob
}

// New builds a catalog from a key → label map. The map is copied.
func New(types map[string]string) Catalog {
	c := Catalog{types: make(map[string]string, len(types))}
	for k, v := range types {
		c.types[k] = v
	}
	c.compilePatterns()
	return c
}

func isPattern(key string) bool {
	return strings.ContainsAny(key, "*?[{")
}

func (c *Catalog) compilePatterns() {
	c.patterns = nil
	for _, key := range c.Keys() {
		if !isPattern(key) {
			continue
		}
		g, err := glob.Compile(key)
		if err != nil {
			log.WithField("key", key).Debugf("skipping invalid type pattern: %v", err)
			continue
		}
		c.patterns = append(c.patterns, pattern{key: key, g: g})
	}
}

func (c Catalog) Len() int {
	return len(c.types)
}

func (c Catalog) Get(key string) (label string, ok bool) {
	label, ok = c.types[key]
	return
}

// Keys returns all keys in ascending order.
func (c Catalog) Keys() []string {
	keys := make([]string, 0, len(c.types))
	for k := range c.types {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Types returns a copy of the underlying mapping.
func (c Catalog) Types() map[string]string {
	types := make(map[string]string, len(c.types))
	for k, v := range c.types {
		types[k] = v
	}
	return types
}

func (c Catalog) Equal(other Catalog) bool {
	if len(c.types) != len(other.types) {
		return false
	}
	for k, v := range c.types {
		if ov, ok := other.types[k]; !ok || ov != v {
			return false
		}
	}
	return true
}

// Describe returns the label for a file name. An exact name match wins over
// an extension match, which wins over a glob pattern match.
func (c Catalog) Describe(name string) (label string, ok bool) {
	if label, ok = c.types[name]; ok {
		return
	}
	if ext := filepath.Ext(name); ext != "" && ext != name {
		if label, ok = c.types[strings.TrimPrefix(ext, ".")]; ok {
			return
		}
		if label, ok = c.types[ext]; ok {
			return
		}
	}
	for _, p := range c.patterns {
		if p.g.Match(name) {
			return c.types[p.key], true
		}
	}
	return "", false
}

// Merge fills keys missing from user with the ones from def.
// Existing user keys are never overwritten.
func Merge(user, def Catalog) (merged Catalog, changed bool) {
	types := user.Types()
	for k, v := range def.types {
		if _, ok := types[k]; ok {
			continue
		}
		types[k] = v
		changed = true
	}
	if !changed {
		return user, false
	}
	return New(types), true
}
