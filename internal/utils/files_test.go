package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSafeWriteFileCreatesParents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "chart.svg")
	require.NoError(t, SafeWriteFile(path, []byte("<svg/>")))
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "<svg/>", string(b))
	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))

	require.NoError(t, SafeWriteFile(path, []byte("<svg></svg>")))
	b, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "<svg></svg>", string(b))
}

func TestPrettyJSON(t *testing.T) {
	b, err := PrettyJSON(map[string]int{"n": 1})
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"n\": 1\n}", string(b))

	_, err = PrettyJSON(func() {})
	assert.Error(t, err)
}
