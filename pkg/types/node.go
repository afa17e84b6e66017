package types

import (
	"context"
	"fmt"
)

// Kind distinguishes the two node variants in the browser tree.
type Kind string

const (
	KindFile   Kind = "file"
	KindFolder Kind = "folder"
)

// LoadFunc supplies the children of a folder asynchronously. It may settle
// after an arbitrary delay and may fail with an arbitrary error; callers
// must not assume anything beyond "eventually settles".
type LoadFunc func(ctx context.Context) ([]Node, error)

// Node is one entry in the browser tree, uniquely identified by ID.
// A folder may carry static children, a loader, both, or neither (a
// leaf-like folder). A file never carries a loader and ignores children.
type Node struct {
	ID       string
	Name     string
	Kind     Kind
	SizeKB   int64  // files only
	Children []Node // folders only, static child list
	Loader   LoadFunc
}

// NewFile creates a file node. Files never expose children or a loader.
func NewFile(id, name string, sizeKB int64) Node {
	return Node{ID: id, Name: name, Kind: KindFile, SizeKB: sizeKB}
}

// NewFolder creates a folder node with a static child list.
func NewFolder(id, name string, children ...Node) Node {
	return Node{ID: id, Name: name, Kind: KindFolder, Children: children}
}

// NewLazyFolder creates a folder node whose children are fetched on first
// expansion through the given loader.
func NewLazyFolder(id, name string, loader LoadFunc) Node {
	return Node{ID: id, Name: name, Kind: KindFolder, Loader: loader}
}

// IsFolder reports whether the node is a folder.
func (n Node) IsFolder() bool {
	return n.Kind == KindFolder
}

// HasLoader reports whether the node can fetch children on demand.
// Only folders ever have a loader.
func (n Node) HasLoader() bool {
	return n.Kind == KindFolder && n.Loader != nil
}

// StaticChildren returns the static child list for folders and nil for
// files, regardless of what the Children field holds.
func (n Node) StaticChildren() []Node {
	if n.Kind != KindFolder {
		return nil
	}
	return n.Children
}

// SizeLabel returns a human-readable size for file nodes and an empty
// string for folders.
func (n Node) SizeLabel() string {
	if n.Kind != KindFile {
		return ""
	}
	if n.SizeKB >= 1024 {
		return fmt.Sprintf("%.1f MB", float64(n.SizeKB)/1024)
	}
	return fmt.Sprintf("%d KB", n.SizeKB)
}

// String returns a short human-readable representation, mainly for logs.
func (n Node) String() string {
	if n.Kind == KindFolder {
		return fmt.Sprintf("folder %s (%s)", n.Name, n.ID)
	}
	return fmt.Sprintf("file %s (%s, %s)", n.Name, n.ID, n.SizeLabel())
}
