package catalog

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFallsBackToBuiltin(t *testing.T) {
	c, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, BuiltinVersion, c.Version())
}

func TestLoadDirOverride(t *testing.T) {
	builtin := Builtin()
	fc := fileCatalog{
		Version:    "override-1",
		Vendors:    builtin.Vendors(),
		Industries: builtin.Industries(),
		Frameworks: builtin.Frameworks(),
	}
	data, err := json.Marshal(fc)
	require.NoError(t, err)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, catalogFile), data, 0o644))

	c, err := LoadDir(dir)
	require.NoError(t, err)
	assert.Equal(t, "override-1", c.Version())
	assert.Len(t, c.Vendors(), 12)
}

func TestLoadDirMissingFile(t *testing.T) {
	_, err := LoadDir(t.TempDir())
	require.Error(t, err)
}

func TestLoadDirRejectsInvalidCatalog(t *testing.T) {
	dir := t.TempDir()
	// Valid JSON, but no baseline vendor
	require.NoError(t, os.WriteFile(filepath.Join(dir, catalogFile),
		[]byte(`{"version":"bad","vendors":[],"industries":[],"frameworks":[]}`), 0o644))

	_, err := LoadDir(dir)
	require.Error(t, err)
}

func TestLoadDirRequiresVersion(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, catalogFile),
		[]byte(`{"vendors":[],"industries":[],"frameworks":[]}`), 0o644))

	_, err := LoadDir(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "version is required")
}
