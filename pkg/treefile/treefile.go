// Package treefile loads named string group trees from HCL and YAML files.
package treefile

import (
	"context"
	"path"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"gitlab.com/tozd/go/errors"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"

	"github.com/walteh/gotsg/pkg/tsg"
)

// DefaultPattern matches every tree file below the loader's root.
const DefaultPattern = "**/*.{hcl,yaml,yml}"

const maxParallelLoads = 8

var (
	ErrNoMatch       = errors.Base("no tree files match")
	ErrDuplicateTree = errors.Base("duplicate tree name")
	ErrElement       = errors.Base("unsupported element")
	ErrTreeName      = errors.Base("tree needs a name")
)

// Tree is a named root read from Source.
type Tree struct {
	Name   string
	Source string
	Root   *tsg.Node
}

type Loader struct {
	fs afero.Fs
}

func NewLoader(fs afero.Fs) *Loader {
	return &Loader{fs: fs}
}

// NewDirLoader reads from the operating system below dir.
func NewDirLoader(dir string) *Loader {
	return NewLoader(afero.NewBasePathFs(afero.NewOsFs(), dir))
}

// LoadFile parses one file. Files ending in .yaml or .yml are YAML, anything
// else is HCL.
func (me *Loader) LoadFile(ctx context.Context, name string) ([]*Tree, error) {
	data, err := afero.ReadFile(me.fs, name)
	if err != nil {
		return nil, errors.Errorf("reading tree file: %w", err)
	}

	var trees []*Tree
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		trees, err = decodeYAML(data)
	default:
		trees, err = decodeHCL(data, name)
	}
	if err != nil {
		return nil, errors.Errorf("loading %s: %w", name, err)
	}

	seen := make(map[string]bool, len(trees))
	for _, t := range trees {
		if seen[t.Name] {
			return nil, errors.Errorf("loading %s: %q: %w", name, t.Name, ErrDuplicateTree)
		}
		seen[t.Name] = true
		t.Source = name
	}

	zerolog.Ctx(ctx).Debug().Str("file", name).Int("trees", len(trees)).Msg("loaded tree file")

	return trees, nil
}

// LoadGlob loads every file matched by patterns. Trees come back in match
// order. A file matched by several patterns is loaded once. Every failing
// pattern or file is reported in the returned error.
func (me *Loader) LoadGlob(ctx context.Context, patterns ...string) ([]*Tree, error) {
	files, errs := me.expand(patterns)

	results := make([][]*Tree, len(files))
	failures := make([]error, len(files))

	// every goroutine returns nil; failures are kept per file
	var g errgroup.Group
	g.SetLimit(maxParallelLoads)
	for i, name := range files {
		g.Go(func() error {
			results[i], failures[i] = me.LoadFile(ctx, name)
			return nil
		})
	}
	_ = g.Wait()

	var all []*Tree
	for i := range files {
		errs = multierr.Append(errs, failures[i])
		all = append(all, results[i]...)
	}

	if errs != nil {
		return nil, errs
	}

	return all, nil
}

func (me *Loader) expand(patterns []string) ([]string, error) {
	if len(patterns) == 0 {
		patterns = []string{DefaultPattern}
	}

	fsys := afero.NewIOFS(me.fs)
	seen := map[string]bool{}

	var (
		files []string
		errs  error
	)
	for _, pattern := range patterns {
		pattern = path.Clean(filepath.ToSlash(pattern))

		matches, err := doublestar.Glob(fsys, pattern)
		if err != nil {
			errs = multierr.Append(errs, errors.Errorf("expanding %q: %w", pattern, err))
			continue
		}
		if len(matches) == 0 {
			errs = multierr.Append(errs, errors.Errorf("%q: %w", pattern, ErrNoMatch))
			continue
		}

		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				files = append(files, m)
			}
		}
	}

	return files, errs
}
