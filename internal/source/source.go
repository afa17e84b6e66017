// Package source provides the data source collaborators that supply
// children for tree nodes: a fixed-delay fake source for demos and tests,
// and a local filesystem source. Sources are reached only through the
// LoadChildren contract; the tree controller sees loader functions bound
// to node identifiers.
package source

import (
	"context"

	"lazytree/pkg/types"
)

// Source supplies the children of a node identifier. Calls may settle
// after an arbitrary delay or fail with an arbitrary error; callers must
// not assume ordering, timing, or success beyond "eventually settles".
type Source interface {
	LoadChildren(ctx context.Context, parentID string) ([]types.Node, error)
}

// Lazy builds the root folder node for a source: a lazy folder whose
// loader fetches through the source, with child folders bound the same way.
func Lazy(s Source, id, name string) types.Node {
	return types.NewLazyFolder(id, name, loaderFor(s, id))
}

// loaderFor wraps a source call for one identifier and attaches loaders
// to any folder children the source returns, so the whole tree stays
// lazily loadable.
func loaderFor(s Source, id string) types.LoadFunc {
	return func(ctx context.Context) ([]types.Node, error) {
		children, err := s.LoadChildren(ctx, id)
		if err != nil {
			return nil, err
		}
		for i, child := range children {
			if child.Kind == types.KindFolder && child.Loader == nil {
				children[i].Loader = loaderFor(s, child.ID)
			}
		}
		return children, nil
	}
}
