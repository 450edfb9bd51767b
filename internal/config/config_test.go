package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "gonum", c.Renderer)
	assert.Equal(t, 800, c.Width)
	assert.Equal(t, 480, c.Height)
	assert.Equal(t, "maxTheatersSqrt", c.XField)
	assert.Equal(t, "totalGrossDoubleSqrt", c.YField)
	assert.True(t, c.RequireFinancial)
	assert.Equal(t, 50, c.MinTheaters)
	assert.Zero(t, c.MaxTheaters)
	assert.Equal(t, 20, c.HTTPTimeoutSec)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	c, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, c.Set("renderer", "GoChart"))
	require.NoError(t, c.Set("min_gross", "1000000"))
	require.NoError(t, c.Set("sort_descending", "true"))
	require.NoError(t, Save(c, path))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "gochart", got.Renderer)
	assert.Equal(t, int64(1000000), got.MinGross)
	assert.True(t, got.SortDescending)
	assert.Equal(t, 50, got.MinTheaters)
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("min_theaters: 10\n"), 0o644))
	t.Setenv("BOXOFFICE_MIN_THEATERS", "75")

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 75, c.MinTheaters)
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("width: [1, 2\n"), 0o644))
	_, err := Load(path)
	assert.Error(t, err)
}

func TestSetValidation(t *testing.T) {
	var c Global
	assert.Error(t, c.Set("width", "wide"))
	assert.Error(t, c.Set("min_theaters", "-1"))
	assert.Error(t, c.Set("labels", "maybe"))
	assert.ErrorContains(t, c.Set("api_key", "x"), "unknown key")
	require.NoError(t, c.Set("Title", "2014"))
	assert.Equal(t, "2014", c.Title)
}

func TestKeysSorted(t *testing.T) {
	keys := Keys()
	assert.IsIncreasing(t, keys)
	assert.Contains(t, keys, "log_level")
	assert.Len(t, keys, 17)
}

func TestDefaultIgnoresFiles(t *testing.T) {
	t.Setenv("BOXOFFICE_RENDERER", "gochart")
	c, err := Default()
	require.NoError(t, err)
	assert.Equal(t, "gochart", c.Renderer)
	assert.Equal(t, "2014box.csv", c.Source)
}

func TestSetFailureKeepsPreviousValue(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)
	require.Error(t, c.Set("width", "wide"))
	assert.Equal(t, 800, c.Width)
	require.Error(t, c.Set("min_theaters", "-5"))
	assert.Equal(t, 50, c.MinTheaters)
	require.Error(t, c.Set("labels", "sometimes"))
	assert.True(t, c.Labels)
	require.Error(t, c.Set("min_gross", "1e6"))
	assert.Zero(t, c.MinGross)

	require.NoError(t, c.Set("min_gross", "5000000000"))
	assert.Equal(t, int64(5000000000), c.MinGross)
}
