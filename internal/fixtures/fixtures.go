// Package fixtures loads the dataset collections the queries run against.
//
// Each collection is a JSONL file, one record per line, named after the
// collection (kitties.jsonl, movies.jsonl, ...). Every record is checked
// against the collection's JSON schema before it is decoded. The default
// collections are embedded in the binary; a data directory can override any
// of them.
package fixtures

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/mesh-intelligence/prototypes/pkg/types"
)

//go:embed data/*.jsonl
var dataFS embed.FS

// FileName returns the JSONL file name of a collection.
func FileName(collection string) string {
	return collection + ".jsonl"
}

// Load reads every collection found in fsys. Collections without a file stay
// nil in the result, so the queries that need them fail with
// types.ErrFixtureMissing. A malformed or schema-violating record fails the
// whole load.
func Load(fsys fs.FS) (*types.Fixtures, error) {
	fx := &types.Fixtures{}
	if err := loadInto(fx, fsys); err != nil {
		return nil, err
	}
	return fx, nil
}

// Default returns a fresh copy of the embedded collections. Each call decodes
// the files again, so mutating queries run against one result never affect
// another.
func Default() (*types.Fixtures, error) {
	sub, err := fs.Sub(dataFS, "data")
	if err != nil {
		return nil, fmt.Errorf("opening embedded fixtures: %w", err)
	}
	return Load(sub)
}

// LoadDir loads the embedded collections and replaces each one that has a
// file in dir. An empty dir returns the embedded collections unchanged.
func LoadDir(dir string) (*types.Fixtures, error) {
	fx, err := Default()
	if err != nil {
		return nil, err
	}
	if dir == "" {
		return fx, nil
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("opening data dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("data dir %s is not a directory", dir)
	}
	if err := loadInto(fx, os.DirFS(dir)); err != nil {
		return nil, fmt.Errorf("loading %s: %w", dir, err)
	}
	return fx, nil
}

func loadInto(fx *types.Fixtures, fsys fs.FS) error {
	for _, c := range collections {
		records, err := readJSONL(fsys, FileName(c.name))
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return err
		}
		if err := validateRecords(c.name, records); err != nil {
			return err
		}
		if err := c.decode(fx, records); err != nil {
			return err
		}
	}
	return nil
}

// Export writes every loaded collection of fx to dir as JSONL, creating dir
// if needed. Each file is replaced atomically. Collections that were never
// loaded are skipped.
func Export(fx *types.Fixtures, dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating %s: %w", dir, err)
	}
	var written []string
	for _, c := range collections {
		if !fx.Has(c.name) {
			continue
		}
		records, err := c.encode(fx)
		if err != nil {
			return written, err
		}
		path := filepath.Join(dir, FileName(c.name))
		if err := writeJSONL(path, records); err != nil {
			return written, fmt.Errorf("writing %s: %w", path, err)
		}
		written = append(written, path)
	}
	return written, nil
}

// Counts returns the record count of every loaded collection.
func Counts(fx *types.Fixtures) map[string]int {
	out := make(map[string]int, len(collections))
	for _, c := range collections {
		if fx.Has(c.name) {
			out[c.name] = c.count(fx)
		}
	}
	return out
}
