// Package tree implements the lazy-loading tree state machine behind the
// file browser: expansion, fetch-on-expand, per-node loading and error
// tracking, and a cache of loaded children. It knows nothing about
// rendering; front ends consume the flattened Rows snapshot.
package tree

import (
	"context"
	"sync"

	"lazytree/internal/errors"
	"lazytree/internal/log"
	"lazytree/pkg/types"
)

// DefaultPlaceholderRows is the number of filler rows shown under a
// folder while its children are being fetched.
const DefaultPlaceholderRows = 3

// nodeState holds the ephemeral UI state of a single node. Entries are
// created lazily on first toggle or load and never evicted for the
// lifetime of the mount.
type nodeState struct {
	expanded bool
	loading  bool
	errored  bool
	loaded   bool
	children []types.Node
	token    uint64
}

// Snapshot is a read-only copy of a node's state for tests and renderers.
type Snapshot struct {
	Expanded bool
	Loading  bool
	Errored  bool
	Loaded   bool
	Children []types.Node
}

// Controller owns all per-node tree state, keyed by node identifier.
// All methods are safe for concurrent use; loader completions are
// serialized through the controller's lock.
type Controller struct {
	mu       sync.Mutex
	root     types.Node
	nodes    map[string]types.Node
	states   map[string]*nodeState
	selected string

	placeholderRows int
	onChange        func()

	// nextToken never resets, so a result from before a Reset can never
	// collide with a token issued after it.
	nextToken uint64
}

// Option configures a Controller.
type Option func(*Controller)

// WithPlaceholderRows sets how many filler rows a loading folder shows.
func WithPlaceholderRows(n int) Option {
	return func(c *Controller) {
		if n >= 0 {
			c.placeholderRows = n
		}
	}
}

// WithOnChange registers a callback invoked after every state change.
// It may be called from a loader goroutine; hosts must hop to their own
// event loop (fyne.Do, a tea message) before touching UI state.
func WithOnChange(fn func()) Option {
	return func(c *Controller) {
		c.onChange = fn
	}
}

// New creates a controller for the given root node. Call Mount before
// rendering to trigger the root auto-fetch.
func New(root types.Node, opts ...Option) *Controller {
	c := &Controller{
		root:            root,
		nodes:           make(map[string]types.Node),
		states:          make(map[string]*nodeState),
		placeholderRows: DefaultPlaceholderRows,
	}
	c.registerLocked(root)
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// registerLocked records a node and its static descendants so they can be
// addressed by identifier. Caller holds the lock (or, during New, has
// exclusive access).
func (c *Controller) registerLocked(n types.Node) {
	c.nodes[n.ID] = n
	for _, child := range n.StaticChildren() {
		c.registerLocked(child)
	}
}

// stateLocked returns the state entry for id, creating it on first use.
func (c *Controller) stateLocked(id string) *nodeState {
	st, ok := c.states[id]
	if !ok {
		st = &nodeState{}
		c.states[id] = st
	}
	return st
}

// Mount performs the initial root fetch. A root that owns a loader is
// displayed expanded from the start and fetched exactly once; its fetch
// drives the whole-tree initial loading indicator.
func (c *Controller) Mount() {
	c.mu.Lock()
	if c.root.HasLoader() {
		st := c.stateLocked(c.root.ID)
		st.expanded = true
		c.startFetchLocked(c.root, st)
	}
	c.mu.Unlock()
	c.notify()
}

// Toggle flips the expansion of a folder. Expanding a folder whose cache
// is empty and which owns a loader triggers exactly one fetch; re-toggling
// never refetches. Toggling a file is a no-op.
func (c *Controller) Toggle(id string) {
	c.mu.Lock()
	n, ok := c.nodes[id]
	if !ok || !n.IsFolder() {
		c.mu.Unlock()
		return
	}
	st := c.stateLocked(id)
	st.expanded = !st.expanded
	if st.expanded {
		c.startFetchLocked(n, st)
	}
	c.mu.Unlock()
	c.notify()
}

// Select marks the node as the single selected node. Selecting a folder
// also toggles it; selecting a file never touches expansion.
func (c *Controller) Select(id string) {
	c.mu.Lock()
	n, ok := c.nodes[id]
	if !ok {
		c.mu.Unlock()
		return
	}
	c.selected = id
	if n.IsFolder() {
		st := c.stateLocked(id)
		st.expanded = !st.expanded
		if st.expanded {
			c.startFetchLocked(n, st)
		}
	}
	c.mu.Unlock()
	c.notify()
}

// startFetchLocked launches a children fetch if the gating condition
// holds: loader present, cache absent, and no fetch already in flight.
// The gate makes rapid double-toggles single-flight. Caller holds the lock.
func (c *Controller) startFetchLocked(n types.Node, st *nodeState) {
	if !n.HasLoader() || st.loading || st.loaded {
		return
	}
	st.loading = true
	st.errored = false
	c.nextToken++
	st.token = c.nextToken

	tok := st.token
	go func() {
		children, err := n.Loader(context.Background())
		c.complete(n.ID, tok, children, err)
	}()
}

// complete commits a settled fetch. A result whose token no longer
// matches the node's current token is discarded; that covers late
// arrivals after an Invalidate or Reset.
func (c *Controller) complete(id string, tok uint64, children []types.Node, err error) {
	c.mu.Lock()
	st, ok := c.states[id]
	if !ok || st.token != tok {
		c.mu.Unlock()
		log.Debugf("discarding stale load result for node %s", id)
		return
	}
	st.loading = false
	if err != nil {
		st.errored = true
		log.Error(errors.NewLoadError(id, err))
	} else {
		st.loaded = true
		st.children = children
		for _, child := range children {
			c.registerLocked(child)
		}
	}
	c.mu.Unlock()
	c.notify()
}

// Invalidate drops a folder's cache so its children are fetched again:
// immediately if the folder is currently expanded, otherwise on its next
// expansion. Unknown or never-touched nodes are ignored.
func (c *Controller) Invalidate(id string) {
	c.mu.Lock()
	n, ok := c.nodes[id]
	st := c.states[id]
	if !ok || st == nil {
		c.mu.Unlock()
		return
	}
	st.loaded = false
	st.children = nil
	st.errored = false
	st.loading = false
	st.token = 0
	if st.expanded {
		c.startFetchLocked(n, st)
	}
	c.mu.Unlock()
	c.notify()
}

// Reset drops all per-node state and selection, as on a fresh mount, then
// remounts. Results still in flight from before the reset are discarded
// by the token check.
func (c *Controller) Reset() {
	c.mu.Lock()
	c.states = make(map[string]*nodeState)
	c.nodes = make(map[string]types.Node)
	c.registerLocked(c.root)
	c.selected = ""
	c.mu.Unlock()
	c.Mount()
}

// Rows flattens the tree into renderable rows: a row per visible node,
// placeholder rows under loading folders, nothing under a folder whose
// fetch failed (the folder row itself carries the error flag). Children
// appear in the order the data source produced them.
func (c *Controller) Rows() []types.Row {
	c.mu.Lock()
	defer c.mu.Unlock()
	var rows []types.Row
	c.appendRowsLocked(&rows, c.root, 0)
	return rows
}

func (c *Controller) appendRowsLocked(rows *[]types.Row, n types.Node, depth int) {
	st := c.states[n.ID]
	row := types.Row{
		Node:     n,
		Depth:    depth,
		Kind:     types.RowNode,
		Selected: c.selected == n.ID,
	}
	if st != nil {
		row.Expanded = st.expanded
		row.Loading = st.loading
		row.Errored = st.errored
	}
	*rows = append(*rows, row)

	if !n.IsFolder() || st == nil || !st.expanded {
		return
	}

	switch {
	case st.loading:
		for i := 0; i < c.placeholderRows; i++ {
			*rows = append(*rows, types.Row{
				Node:  types.Node{ID: n.ID, Kind: types.KindFile},
				Depth: depth + 1,
				Kind:  types.RowPlaceholder,
			})
		}
	case st.errored:
		// Folder row shows the error affordance; no child rows.
	case st.loaded:
		for _, child := range st.children {
			c.appendRowsLocked(rows, child, depth+1)
		}
	default:
		for _, child := range n.StaticChildren() {
			c.appendRowsLocked(rows, child, depth+1)
		}
	}
}

// Root returns the root node.
func (c *Controller) Root() types.Node {
	return c.root
}

// Node looks up a registered node by identifier.
func (c *Controller) Node(id string) (types.Node, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	n, ok := c.nodes[id]
	return n, ok
}

// State returns a snapshot of a node's ephemeral state. The second
// return is false if no state entry exists yet.
func (c *Controller) State(id string) (Snapshot, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	st, ok := c.states[id]
	if !ok {
		return Snapshot{}, false
	}
	return Snapshot{
		Expanded: st.expanded,
		Loading:  st.loading,
		Errored:  st.errored,
		Loaded:   st.loaded,
		Children: st.children,
	}, true
}

// SelectedID returns the identifier of the selected node, or "".
func (c *Controller) SelectedID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selected
}

// InitialLoading reports whether the root auto-fetch is still in flight.
func (c *Controller) InitialLoading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	st, ok := c.states[c.root.ID]
	return ok && st.loading
}

func (c *Controller) notify() {
	if c.onChange != nil {
		c.onChange()
	}
}
