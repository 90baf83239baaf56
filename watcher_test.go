package vaporgrid

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcher(t *testing.T) {

	dir := t.TempDir()
	config := filepath.Join(dir, "config.toml")
	other := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(config, []byte("variant = \"lit\"\n"), 0o644))

	watcher, err := NewWatcher(config, "")
	require.NoError(t, err)
	defer watcher.Close()

	// Files that aren't watched don't report changes.
	require.NoError(t, os.WriteFile(other, []byte("hello"), 0o644))

	require.NoError(t, os.WriteFile(config, []byte("variant = \"basic\"\n"), 0o644))

	abs, err := filepath.Abs(config)
	require.NoError(t, err)

	var changed []string
	require.Eventually(t, func() bool {
		changed = append(changed, watcher.Pending()...)
		return len(changed) > 0
	}, 5*time.Second, 20*time.Millisecond, "no change reported for %s", config)

	// Anything else queued is for the same file.
	time.Sleep(50 * time.Millisecond)
	changed = append(changed, watcher.Pending()...)
	for _, name := range changed {
		assert.Equal(t, abs, name)
	}

}

func TestWatcherPendingDeduplicates(t *testing.T) {

	dir := t.TempDir()
	config := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(config, nil, 0o644))

	watcher, err := NewWatcher(config)
	require.NoError(t, err)
	defer watcher.Close()

	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(config, []byte("fog:\n  far: 3\n"), 0o644))
	}

	abs, _ := filepath.Abs(config)
	assert.Eventually(t, func() bool {
		pending := watcher.Pending()
		return len(pending) == 1 && pending[0] == abs
	}, 5*time.Second, 20*time.Millisecond)

}

func TestWatcherReportsEveryFile(t *testing.T) {

	dir := t.TempDir()
	var files []string
	for i := 0; i < 24; i++ {
		name := filepath.Join(dir, fmt.Sprintf("texture%d.png", i))
		require.NoError(t, os.WriteFile(name, nil, 0o644))
		files = append(files, name)
	}

	watcher, err := NewWatcher(files...)
	require.NoError(t, err)
	defer watcher.Close()

	// Many events for one file don't crowd out changes to the others.
	for i := 0; i < 40; i++ {
		require.NoError(t, os.WriteFile(files[0], []byte{byte(i)}, 0o644))
	}
	for _, name := range files[1:] {
		require.NoError(t, os.WriteFile(name, []byte("changed"), 0o644))
	}

	seen := map[string]int{}
	assert.Eventually(t, func() bool {
		for _, name := range watcher.Pending() {
			seen[name]++
		}
		return len(seen) == len(files)
	}, 5*time.Second, 20*time.Millisecond)

	for _, name := range files {
		abs, _ := filepath.Abs(name)
		assert.Contains(t, seen, abs)
	}

}

func TestWatcherMissingDirectory(t *testing.T) {
	_, err := NewWatcher(filepath.Join(t.TempDir(), "nope", "config.toml"))
	assert.Error(t, err)
}
