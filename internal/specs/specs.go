// Package specs reads the specification file: a TOML document whose
// top-level tables name drivers and point at their DSL source files.
// All file I/O of a compilation happens here, up front; the resulting
// FileSet owns every source buffer for the compilation's lifetime.
package specs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"golang.org/x/sync/errgroup"

	"drivec/internal/source"
)

// Driver is one entry of the specification file.
type Driver struct {
	Name    string
	Path    string            // resolved path of the DSL source file
	FileID  source.FileID     // source buffer inside FileSet
	Config  map[string]string // placeholder environment for lexing
	Depends []string          // drivers to compile before this one
}

// File is a validated specification with all driver sources loaded.
type File struct {
	Path    string
	FileSet *source.FileSet

	drivers map[string]*Driver
	order   []string // document order of the driver tables
}

type driverTable struct {
	Path    string            `toml:"path"`
	Config  map[string]string `toml:"config"`
	Depends []string          `toml:"depends"`
}

// Load parses the specification at path, validates it, and reads every
// driver source file (in parallel; the rest of the pipeline never
// touches the disk again).
func Load(path string) (*File, error) {
	var raw map[string]driverTable
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return nil, fmt.Errorf("%s: malformed specification: %w", path, err)
	}

	sf := &File{
		Path:    path,
		FileSet: source.NewFileSet(),
		drivers: make(map[string]*Driver, len(raw)),
		order:   make([]string, 0, len(raw)),
	}

	baseDir := filepath.Dir(path)
	for _, key := range meta.Keys() {
		if len(key) != 1 {
			continue
		}
		name := key[0]
		table := raw[name]

		if table.Path == "" {
			return nil, fmt.Errorf("%s: driver %q: missing required key \"path\"", path, name)
		}

		srcPath := table.Path
		if !filepath.IsAbs(srcPath) {
			srcPath = filepath.Join(baseDir, srcPath)
		}

		sf.drivers[name] = &Driver{
			Name:    name,
			Path:    srcPath,
			Config:  table.Config,
			Depends: table.Depends,
		}
		sf.order = append(sf.order, name)
	}

	if err := sf.loadSources(); err != nil {
		return nil, err
	}
	return sf, nil
}

// loadSources reads every driver source concurrently and registers the
// buffers in document order so FileIDs stay deterministic.
func (sf *File) loadSources() error {
	contents := make([][]byte, len(sf.order))

	var g errgroup.Group
	for i, name := range sf.order {
		d := sf.drivers[name]
		g.Go(func() error {
			// #nosec G304 -- paths come from the user's specification
			data, err := os.ReadFile(d.Path)
			if err != nil {
				return fmt.Errorf("%s: driver %q: cannot read source: %w", sf.Path, d.Name, err)
			}
			contents[i] = data
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, name := range sf.order {
		d := sf.drivers[name]
		d.FileID = sf.FileSet.AddNormalized(d.Path, contents[i])
	}
	return nil
}

// Order returns the driver names in document order.
func (sf *File) Order() []string {
	return sf.order
}

// Get returns the entry for a driver name.
func (sf *File) Get(name string) (*Driver, bool) {
	d, ok := sf.drivers[name]
	return d, ok
}

// Source returns the loaded source file of a driver entry.
func (sf *File) Source(d *Driver) *source.File {
	return sf.FileSet.Get(d.FileID)
}
