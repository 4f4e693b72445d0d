package utils

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompressFormats(t *testing.T) {
	data := bytes.Repeat([]byte("<source>https://example.com/file.lua</source>\n"), 200)

	for _, name := range []string{"gzip", "zstd", "xz"} {
		t.Run(name, func(t *testing.T) {
			c, err := ParseCompression(name)
			require.NoError(t, err)

			compressed, err := Compress(c, data)
			require.NoError(t, err)
			assert.Less(t, len(compressed), len(data))

			back, err := Decompress(c, compressed)
			require.NoError(t, err)
			assert.Equal(t, data, back)
		})
	}
}

func TestParseCompression(t *testing.T) {
	c, err := ParseCompression(" GZIP ")
	require.NoError(t, err)
	assert.Equal(t, Gzip, c)
	assert.Equal(t, ".gz", c.Extension())
	assert.Equal(t, ".zst", Zstd.Extension())
	assert.Equal(t, ".xz", Xz.Extension())

	_, err = ParseCompression("bzip2")
	assert.Error(t, err)
}

func TestWriteFileReplacesAtomically(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "index.xml")

	require.NoError(t, WriteFile(path, []byte("first"), 0644))
	require.NoError(t, WriteFile(path, []byte("second"), 0644))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must be cleaned up")
}

func TestCalculateChecksum(t *testing.T) {
	sum := CalculateChecksum([]byte("abc"))
	assert.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", sum.SHA256)
	assert.Equal(t, int64(3), sum.Size)
}
