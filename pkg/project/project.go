// Package project locates and loads package.json manifests.
package project

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/dennyabrain/npm-run-all/internal/schema"
	"github.com/dennyabrain/npm-run-all/pkg/runall"
)

// Package is the subset of a package.json manifest this library needs.
type Package struct {
	Name    string            `json:"name"`
	Scripts map[string]string `json:"scripts"`
	Config  map[string]string `json:"config"`

	// Dir is the absolute directory the manifest was loaded from.
	Dir string `json:"-"`
}

// ScriptNames returns the package's script names in sorted order.
func (p *Package) ScriptNames() []string {
	names := make([]string, 0, len(p.Scripts))
	for name := range p.Scripts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// cache provides thread-safe caching of loaded manifests keyed by
// absolute directory. The cache has no size limit, which is safe for
// short-lived CLI processes that exit after command completion.
var cache = struct {
	sync.RWMutex
	data map[string]*Package
}{
	data: make(map[string]*Package),
}

// Load reads, validates and decodes <dir>/package.json.
func Load(dir string) (*Package, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, runall.ManifestError("resolve package directory", err)
	}

	cache.RLock()
	if pkg, ok := cache.data[absDir]; ok {
		cache.RUnlock()
		return pkg, nil
	}
	cache.RUnlock()

	// Load from disk outside the lock.
	pkg, err := loadFromDisk(absDir)
	if err != nil {
		return nil, err
	}

	// Another goroutine may have populated the cache while we were
	// loading. If so, discard our copy and return the cached version.
	cache.Lock()
	defer cache.Unlock()
	if cached, ok := cache.data[absDir]; ok {
		return cached, nil
	}
	cache.data[absDir] = pkg
	return pkg, nil
}

// loadFromDisk reads and decodes package.json from absDir. Unlike the
// usual skip-detection readers, errors are surfaced: a caller asking
// for a manifest needs to know why it is unusable.
func loadFromDisk(absDir string) (*Package, error) {
	manifestPath := filepath.Join(absDir, "package.json")
	data, err := os.ReadFile(manifestPath)
	if err != nil {
		return nil, runall.ManifestError("read "+manifestPath, err)
	}

	if err := schema.ValidatePackage(data); err != nil {
		return nil, runall.ManifestError("invalid manifest "+manifestPath, err)
	}

	var pkg Package
	if err := json.Unmarshal(data, &pkg); err != nil {
		return nil, runall.ManifestError("parse "+manifestPath, err)
	}
	pkg.Dir = absDir
	return &pkg, nil
}

// Find walks up from startDir to the nearest directory containing a
// package.json and loads it.
func Find(startDir string) (*Package, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, runall.ManifestError("resolve start directory", err)
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "package.json")); err == nil {
			return Load(dir)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, runall.ManifestError("no package.json found in "+startDir+" or any parent directory", nil)
		}
		dir = parent
	}
}
