package types

// RowKind tells a renderer what a flattened row stands for.
type RowKind int

const (
	// RowNode is a regular file or folder row.
	RowNode RowKind = iota
	// RowPlaceholder is a filler row shown under a folder while its
	// children are being fetched.
	RowPlaceholder
)

// Row is one line of the flattened tree as produced by the controller.
// It carries everything a renderer needs; renderers hold no state of
// their own.
type Row struct {
	Node     Node
	Depth    int
	Kind     RowKind
	Expanded bool
	Loading  bool
	Errored  bool
	Selected bool
}

// IsPlaceholder reports whether the row is a loading filler.
func (r Row) IsPlaceholder() bool {
	return r.Kind == RowPlaceholder
}
