//go:build !timeit_off

package timeit

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "timeit.toml")
	content := "tree = false\nbasename = \"bench\"\nsummary = true\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	c, err := LoadConfig(path)
	require.NoError(t, err)

	assert.False(t, c.Tree)
	assert.True(t, c.Table, "omitted flags keep their defaults")
	assert.True(t, c.Summary)
	assert.Equal(t, "bench", c.Basename)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}

func TestConfigApply(t *testing.T) {
	redirect(t)
	t.Cleanup(func() {
		CollectSummary(false)
		ResetSummary()
	})

	base := filepath.Join(t.TempDir(), "applied")
	c := Config{Tree: true, Table: true, Basename: base}

	f := c.Apply()
	require.NotNil(t, f)
	StartNamed("cfg", "x").Stop()
	f.Close()

	tabData, err := os.ReadFile(base + ".csv")
	require.NoError(t, err)
	assert.Contains(t, string(tabData), "0,cfg,x,")
}

func TestConfigApplyWithoutBasename(t *testing.T) {
	redirect(t)

	assert.Nil(t, Config{Tree: true, Table: true}.Apply())
}