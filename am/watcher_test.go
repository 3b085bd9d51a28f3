package am

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigWatcher_ReloadsOnWrite(t *testing.T) {
	_, project := isolate(t)

	path := filepath.Join(project, ProjectConfigName)
	writeFile(t, path, "[display]\nindent_depth_limit = 1\n")

	cw, err := NewConfigWatcher(path)
	require.NoError(t, err)
	cw.debouncePeriod = 10 * time.Millisecond

	reloaded := make(chan *Config, 1)
	cw.OnReload(func(cfg *Config) error {
		select {
		case reloaded <- cfg:
		default:
		}
		return nil
	})
	cw.Start()
	t.Cleanup(func() { cw.Stop() })

	require.NoError(t, os.WriteFile(path, []byte("[display]\nindent_depth_limit = 4\n"), 0644))

	select {
	case cfg := <-reloaded:
		assert.Equal(t, 4, cfg.Display.IndentDepthLimit)
	case <-time.After(5 * time.Second):
		t.Fatal("config was not reloaded")
	}
}

func TestConfigWatcher_IgnoresBackups(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	writeFile(t, path, "")

	cw, err := NewConfigWatcher(path)
	require.NoError(t, err)
	defer cw.Stop()

	assert.True(t, cw.isWatched(path))
	assert.False(t, cw.isWatched(path+".back1"))
	assert.False(t, cw.isWatched(filepath.Join(dir, "other.toml")))
}

func TestNewConfigWatcher_NoPaths(t *testing.T) {
	_, err := NewConfigWatcher()
	assert.Error(t, err)
}
