package document

import (
	"errors"
	"testing"

	"github.com/ralt/toml2index/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const orderedDoc = `
[index]
version = 1
name = "Test"

[reapack.zeta]
name = "zeta.lua"

[reapack.alpha]
name = "alpha.lua"

[reapack.alpha.version."2.0"]
time = "2020-01-02T00:00:00Z"

[reapack.alpha.version."1.0"]
time = "2020-01-01T00:00:00Z"
files = ["a.lua", { src = "b.lua", main = true }]

[[reapack.alpha.metadata.screenshots]]
href = "one.png"

[[reapack.alpha.metadata.screenshots]]
href = "two.png"
text = "Two"

[reapack.middle]
name = "middle.lua"
`

func TestLoadPreservesDocumentOrder(t *testing.T) {
	doc, err := Parse(orderedDoc)
	require.NoError(t, err)

	assert.Equal(t, []string{"index", "reapack"}, doc.Keys())

	packs, err := Get(doc, "reapack", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"zeta", "alpha", "middle"}, packs.Keys())

	versions, err := Get(doc, "reapack.alpha.version", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"2.0", "1.0"}, versions.Keys())
}

func TestLoadKinds(t *testing.T) {
	doc, err := Parse(orderedDoc)
	require.NoError(t, err)

	v, err := Get(doc, "index.version", nil)
	require.NoError(t, err)
	assert.Equal(t, Integer, v.Kind())

	versions, err := Get(doc, "reapack.alpha.version", nil)
	require.NoError(t, err)
	v10, ok := versions.Field("1.0")
	require.True(t, ok)

	files, err := Get(v10, "files", nil)
	require.NoError(t, err)
	require.Equal(t, 2, files.Len())
	assert.Equal(t, String, files.Items()[0].Kind())

	entry := files.Items()[1]
	assert.Equal(t, Mapping, entry.Kind())
	flag, ok := entry.Field("main")
	require.True(t, ok)
	assert.Equal(t, Boolean, flag.Kind())
	assert.Equal(t, "true", flag.Text())

	shots, err := Get(doc, "reapack.alpha.metadata.screenshots", nil)
	require.NoError(t, err)
	require.Equal(t, Sequence, shots.Kind())
	assert.Equal(t, 2, shots.Len())
	text, err := GetText(shots, "1.text", nil)
	require.NoError(t, err)
	assert.Equal(t, "Two", text)
}

func TestLoadSyntaxError(t *testing.T) {
	_, err := Parse("[index\nname = 1")
	require.Error(t, err)

	var ie *models.IndexError
	require.True(t, errors.As(err, &ie))
	assert.Equal(t, models.ErrParse, ie.Type)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(t.TempDir() + "/nope.toml")

	var ie *models.IndexError
	require.True(t, errors.As(err, &ie))
	assert.Equal(t, models.ErrFileOp, ie.Type)
}
