package template

import (
	"errors"
	"testing"

	"github.com/ralt/toml2index/internal/document"
	"github.com/ralt/toml2index/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpand(t *testing.T) {
	vars := map[string]string{
		"x":       "bar",
		"version": "1.2",
		"nested":  "${x}",
		"ünï":     "u",
	}

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "foo.lua", "foo.lua"},
		{"single", "${x}.lua", "bar.lua"},
		{"several", "${x}/${version}/${x}", "bar/1.2/bar"},
		{"escape", "${$}", "$"},
		{"escape inline", "cost ${$}{x}", "cost ${x}"},
		{"not recursive", "${nested}", "${x}"},
		{"unicode name", "${ünï}", "u"},
		{"unterminated", "${x", "${x"},
		{"empty name", "${}", "${}"},
		{"bare dollar", "$x and $", "$x and $"},
		{"invalid chars", "${a-b}", "${a-b}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Expand(tt.in, vars, document.NewPath("p"))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExpandWithoutPlaceholdersIgnoresVars(t *testing.T) {
	for _, vars := range []map[string]string{nil, {}, {"a": "b"}} {
		got, err := Expand("some/plain path.lua", vars, nil)
		require.NoError(t, err)
		assert.Equal(t, "some/plain path.lua", got)
	}
}

func TestExpandEscapeOverridesUserVariable(t *testing.T) {
	got, err := Expand("${$}", map[string]string{"$": "dollar"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "$", got)
}

func TestExpandUnknownVariable(t *testing.T) {
	path := document.NewPath("reapack", "pkg", "version").Quoted("1.0").Key("files").Index(2)
	_, err := Expand("${x}/${missing}", map[string]string{"x": "1"}, path)
	require.Error(t, err)

	var uv *models.UnknownVariableError
	require.True(t, errors.As(err, &uv))
	assert.Equal(t, "missing", uv.Name)
	assert.Equal(t, `reapack.pkg.version."1.0".files.2`, uv.Path)
	assert.Contains(t, err.Error(), `unknown variable "missing"`)
}

func TestExpandDoesNotMutateVars(t *testing.T) {
	vars := map[string]string{"x": "1"}
	_, err := Expand("${$}${x}", vars, nil)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"x": "1"}, vars)
}

func TestVars(t *testing.T) {
	v := document.Map(
		document.Field{Key: "name", Value: document.Str("n")},
		document.Field{Key: "n", Value: document.Int(3)},
		document.Field{Key: "b", Value: document.Bool(false)},
	)
	assert.Equal(t, map[string]string{"name": "n", "n": "3", "b": "false"}, Vars(v))
	assert.Empty(t, Vars(document.Value{}))
}
