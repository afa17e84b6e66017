package source

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingInvalidator struct {
	mu  sync.Mutex
	ids []string
}

func (r *recordingInvalidator) Invalidate(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ids = append(r.ids, id)
}

func (r *recordingInvalidator) has(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, got := range r.ids {
		if got == id {
			return true
		}
	}
	return false
}

func TestRefresherInvalidatesOnCreate(t *testing.T) {
	dir := t.TempDir()
	rec := &recordingInvalidator{}

	r, err := NewRefresher(rec)
	require.NoError(t, err)
	require.NoError(t, r.Watch(dir))
	require.NoError(t, r.Start())
	defer r.Stop()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "new.txt"), []byte("x"), 0644))

	require.Eventually(t, func() bool {
		return rec.has(dir)
	}, 3*time.Second, 10*time.Millisecond, "creating an entry invalidates the containing folder")
}

func TestRefresherLifecycle(t *testing.T) {
	rec := &recordingInvalidator{}
	r, err := NewRefresher(rec)
	require.NoError(t, err)

	assert.False(t, r.IsRunning())
	require.NoError(t, r.Start())
	assert.True(t, r.IsRunning())
	assert.Error(t, r.Start(), "double start is rejected")

	r.Stop()
	assert.False(t, r.IsRunning())
	r.Stop() // idempotent
}

func TestRefresherWatchDeduplicates(t *testing.T) {
	dir := t.TempDir()
	r, err := NewRefresher(&recordingInvalidator{})
	require.NoError(t, err)
	defer r.Stop()

	require.NoError(t, r.Watch(dir))
	require.NoError(t, r.Watch(dir))
	assert.Len(t, r.Directories(), 1)

	assert.Error(t, r.Watch(filepath.Join(dir, "missing")))
}

func TestRefresherStopWithoutStart(t *testing.T) {
	r, err := NewRefresher(&recordingInvalidator{})
	require.NoError(t, err)

	// Stop must release the watcher even when Start was never called.
	r.Stop()
	assert.False(t, r.IsRunning())
	assert.Error(t, r.Watch(t.TempDir()), "watcher is closed after Stop")
}
