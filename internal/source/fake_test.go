package source

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lazytree/internal/errors"
	"lazytree/pkg/types"
)

func TestFakeSourceServesScriptedChildren(t *testing.T) {
	f := NewFakeSource(0)
	f.SetChildren("root", []types.Node{
		types.NewFile("root/a", "a", 30),
		types.NewFolder("root/b", "b"),
	})

	children, err := f.LoadChildren(context.Background(), "root")
	require.NoError(t, err)
	require.Len(t, children, 2)
	assert.Equal(t, "a", children[0].Name)
	assert.Equal(t, 1, f.Calls("root"))

	// Unknown parents yield an empty listing, not an error.
	children, err = f.LoadChildren(context.Background(), "nowhere")
	require.NoError(t, err)
	assert.Empty(t, children)
}

func TestFakeSourceDelay(t *testing.T) {
	f := NewFakeSource(50 * time.Millisecond)
	f.SetChildren("root", []types.Node{types.NewFile("root/a", "a", 1)})

	start := time.Now()
	_, err := f.LoadChildren(context.Background(), "root")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
}

func TestFakeSourceDelayRespectsContext(t *testing.T) {
	f := NewFakeSource(5 * time.Second)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := f.LoadChildren(ctx, "root")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestFakeSourceScriptedFailure(t *testing.T) {
	f := NewFakeSource(0)
	f.FailFor("root/b")

	_, err := f.LoadChildren(context.Background(), "root/b")
	require.Error(t, err)
	assert.True(t, errors.IsSourceError(err))
	assert.Equal(t, 1, f.Calls("root/b"))
}

func TestLazyBindsFolderLoaders(t *testing.T) {
	f := NewFakeSource(0)
	root := DemoTree(f)

	require.True(t, root.HasLoader())
	children, err := root.Loader(context.Background())
	require.NoError(t, err)
	require.Len(t, children, 4)

	var photos types.Node
	for _, c := range children {
		if c.Name == "photos" {
			photos = c
		}
	}
	require.True(t, photos.HasLoader(), "folder children come back lazily loadable")

	grandchildren, err := photos.Loader(context.Background())
	require.NoError(t, err)
	assert.Len(t, grandchildren, 2)

	// The albums subfolder is scripted to fail.
	_, err = f.LoadChildren(context.Background(), "root/music/albums")
	assert.Error(t, err)
}
