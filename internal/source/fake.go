package source

import (
	"context"
	"sync"
	"time"

	"lazytree/internal/errors"
	"lazytree/pkg/types"
)

// FakeSource serves a canned tree after a fixed delay. It stands in for a
// network-backed source in demos and tests, and can be scripted to fail
// for chosen identifiers.
type FakeSource struct {
	mu      sync.Mutex
	delay   time.Duration
	entries map[string][]types.Node
	failIDs map[string]bool
	calls   map[string]int
}

// NewFakeSource creates a fake source with the given per-call delay.
func NewFakeSource(delay time.Duration) *FakeSource {
	return &FakeSource{
		delay:   delay,
		entries: make(map[string][]types.Node),
		failIDs: make(map[string]bool),
		calls:   make(map[string]int),
	}
}

// SetChildren scripts the children returned for a parent identifier.
func (f *FakeSource) SetChildren(parentID string, children []types.Node) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries[parentID] = children
}

// FailFor makes every fetch for the identifier fail.
func (f *FakeSource) FailFor(parentID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failIDs[parentID] = true
}

// Calls returns how many times children were requested for the identifier.
func (f *FakeSource) Calls(parentID string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[parentID]
}

// LoadChildren implements Source. The delay elapses before failure is
// reported, matching a slow remote that times out rather than failing fast.
func (f *FakeSource) LoadChildren(ctx context.Context, parentID string) ([]types.Node, error) {
	f.mu.Lock()
	f.calls[parentID]++
	delay := f.delay
	fail := f.failIDs[parentID]
	children := f.entries[parentID]
	f.mu.Unlock()

	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	if fail {
		return nil, errors.NewSourceError("fetch failed", parentID, errors.SourceReadFailed, nil)
	}

	out := make([]types.Node, len(children))
	copy(out, children)
	return out, nil
}

// DemoTree populates a fake source with the canned browsing demo: a root
// with a small mixed listing and a couple of lazily loaded subfolders,
// one of which always fails.
func DemoTree(f *FakeSource) types.Node {
	f.SetChildren("root", []types.Node{
		types.NewFile("root/report.pdf", "report.pdf", 30),
		types.NewFolder("root/photos", "photos"),
		types.NewFolder("root/music", "music"),
		types.NewFile("root/notes.txt", "notes.txt", 2),
	})
	f.SetChildren("root/photos", []types.Node{
		types.NewFile("root/photos/beach.png", "beach.png", 2048),
		types.NewFile("root/photos/city.png", "city.png", 1024),
	})
	f.SetChildren("root/music", []types.Node{
		types.NewFile("root/music/track01.mp3", "track01.mp3", 4096),
		types.NewFolder("root/music/albums", "albums"),
	})
	f.FailFor("root/music/albums")
	return Lazy(f, "root", "Files")
}
