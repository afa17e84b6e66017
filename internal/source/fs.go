package source

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"

	"lazytree/internal/errors"
	"lazytree/pkg/types"
)

// DirSource serves nodes from a local directory tree. Node identifiers
// are absolute paths, so a parent identifier is all a fetch needs.
// Entries are returned in the order the directory listing produced them.
type DirSource struct {
	root       string
	showHidden bool
	ignore     []glob.Glob
}

// DirOption configures a DirSource.
type DirOption func(*DirSource)

// WithHidden includes dotfiles in listings.
func WithHidden(show bool) DirOption {
	return func(d *DirSource) {
		d.showHidden = show
	}
}

// WithIgnoreGlobs hides entries whose name matches any of the patterns.
// Invalid patterns are reported, not silently dropped.
func WithIgnoreGlobs(patterns []string) (DirOption, error) {
	compiled := make([]glob.Glob, 0, len(patterns))
	for _, p := range patterns {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, errors.NewConfigError("invalid ignore pattern", p, errors.InvalidConfig, err)
		}
		compiled = append(compiled, g)
	}
	return func(d *DirSource) {
		d.ignore = compiled
	}, nil
}

// NewDirSource creates a source rooted at the given directory.
func NewDirSource(root string, opts ...DirOption) (*DirSource, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, errors.NewSourceError("cannot access root", abs, errors.SourceNotFound, err)
	}
	if !info.IsDir() {
		return nil, errors.NewSourceError("root is not a directory", abs, errors.SourceNotFound, nil)
	}

	d := &DirSource{root: abs}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// Root returns the absolute root path the source serves from.
func (d *DirSource) Root() string {
	return d.root
}

// Tree returns the root node for the source, named after the directory.
func (d *DirSource) Tree() types.Node {
	return Lazy(d, d.root, filepath.Base(d.root))
}

// LoadChildren implements Source.
func (d *DirSource) LoadChildren(ctx context.Context, parentID string) ([]types.Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(parentID)
	if err != nil {
		return nil, errors.NewSourceError("cannot read directory", parentID, errors.SourceReadFailed, err)
	}

	var children []types.Node
	for _, entry := range entries {
		name := entry.Name()
		if !d.showHidden && strings.HasPrefix(name, ".") {
			continue
		}
		if d.ignored(name) {
			continue
		}

		path := filepath.Join(parentID, name)
		if entry.IsDir() {
			children = append(children, types.NewFolder(path, name))
			continue
		}

		var sizeKB int64
		if info, err := entry.Info(); err == nil {
			sizeKB = info.Size() / 1024
		}
		children = append(children, types.NewFile(path, name, sizeKB))
	}

	return children, nil
}

func (d *DirSource) ignored(name string) bool {
	for _, g := range d.ignore {
		if g.Match(name) {
			return true
		}
	}
	return false
}
