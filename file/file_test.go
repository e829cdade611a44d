package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadSource_ReturnsContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "source.lci")
	require.NoError(t, os.WriteFile(path, []byte("sq <- \\x. x * x; sq 5"), 0644))

	content, err := ReadSource(path)
	require.NoError(t, err)
	assert.Equal(t, "sq <- \\x. x * x; sq 5", content)
}

func TestReadSource_MissingFile(t *testing.T) {
	_, err := ReadSource(filepath.Join(t.TempDir(), "does-not-exist.lci"))
	require.Error(t, err)
}
