package util

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string `yaml:"name"`
	Count int    `yaml:"count"`
}

func TestConfigRoundTrip(t *testing.T) {

	path := filepath.Join(t.TempDir(), "cfg.yaml")

	err := WriteConfig(sample{Name: "tablo", Count: 3}, path, 0644)
	require.NoError(t, err)

	got := sample{}
	err = LoadConfig(&got, path)
	require.NoError(t, err)
	assert.Equal(t, sample{Name: "tablo", Count: 3}, got)
}

func TestLoadConfigErrors(t *testing.T) {

	dir := t.TempDir()

	err := LoadConfig(&sample{}, filepath.Join(dir, "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read from")

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("name: [unclosed"), 0644))

	err = LoadConfig(&sample{}, bad)
	assert.ErrorContains(t, err, "failed to unmarshal")

	misspelt := filepath.Join(dir, "misspelt.yaml")
	require.NoError(t, os.WriteFile(misspelt, []byte("name: tablo\ncuont: 3\n"), 0644))

	err = LoadConfig(&sample{}, misspelt)
	assert.ErrorContains(t, err, "cuont")
}

func TestLoadConfigEmpty(t *testing.T) {

	path := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	got := sample{Name: "kept"}
	err := LoadConfig(&got, path)
	require.NoError(t, err)
	assert.Equal(t, sample{Name: "kept"}, got)
}

func TestOpenLog(t *testing.T) {

	path := filepath.Join(t.TempDir(), "test.log")

	warn := &bytes.Buffer{}

	file := OpenLog(path, 0644, warn)
	_, err := io.WriteString(file, "hello\n")
	require.NoError(t, err)
	CloseLog(file)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello\n", string(data))

	assert.Empty(t, warn.String())

	file = OpenLog(filepath.Join(path, "not-a-dir", "x.log"), 0644, warn)
	assert.Equal(t, io.Discard, file)
	assert.Contains(t, warn.String(), "warning: not logging")
	CloseLog(file)
}
