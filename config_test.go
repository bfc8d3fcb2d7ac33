package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	config := loadConfigFile(defaultConfig(), filepath.Join(t.TempDir(), "missing"), "/home/nobody")

	assert.Equal(t, "", config.SaveDirectory)
	assert.True(t, config.Confirmations)
	assert.Equal(t, defaultDivisions, config.Divisions)
	assert.Equal(t, defaultColor, config.Color)
	assert.Equal(t, defaultThickness, config.Thickness)
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	rc := filepath.Join(dir, ".thrumrc")
	content := `# thrum config
savedirectory = ~/patterns
confirmations = false
divisions = 24
color = 3
thickness = 4
`
	require.NoError(t, os.WriteFile(rc, []byte(content), 0644))

	config := loadConfigFile(defaultConfig(), rc, "/home/someone")

	assert.Equal(t, "/home/someone/patterns", config.SaveDirectory)
	assert.False(t, config.Confirmations)
	assert.Equal(t, 24, config.Divisions)
	assert.Equal(t, 3, config.Color)
	assert.Equal(t, 4.0, config.Thickness)
}

func TestLoadConfigClampsAndIgnoresJunk(t *testing.T) {
	dir := t.TempDir()
	rc := filepath.Join(dir, ".thrumrc")
	content := `divisions = 99
color = 42
thickness = -3
not a key value line
stray =
`
	require.NoError(t, os.WriteFile(rc, []byte(content), 0644))

	config := loadConfigFile(defaultConfig(), rc, dir)

	assert.Equal(t, maxDivisions, config.Divisions)
	assert.Equal(t, defaultColor, config.Color, "out-of-range color falls back")
	assert.Equal(t, defaultThickness, config.Thickness, "out-of-range thickness falls back")
}

func TestGetSavePath(t *testing.T) {
	config := defaultConfig()
	assert.Equal(t, "out.png", config.GetSavePath("out.png"))

	dir := filepath.Join(t.TempDir(), "exports")
	config.SaveDirectory = dir
	assert.Equal(t, filepath.Join(dir, "out.png"), config.GetSavePath("out.png"))

	// GetSavePath creates the directory on demand.
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
