package document

import (
	"strconv"
	"strings"

	"github.com/ralt/toml2index/internal/models"
)

// Path is a diagnostic location inside the input document, rendered as a
// dotted string in error messages. It is never used for lookups.
type Path []string

// NewPath returns a Path made of the given keys
func NewPath(keys ...string) Path {
	return append(Path(nil), keys...)
}

// Key returns a copy of p extended with key
func (p Path) Key(key string) Path {
	return p.with(key)
}

// Quoted returns a copy of p extended with key wrapped in double quotes, for
// keys that could otherwise be mistaken for sequence indices.
func (p Path) Quoted(key string) Path {
	return p.with(`"` + key + `"`)
}

// Index returns a copy of p extended with the integer i
func (p Path) Index(i int) Path {
	return p.with(strconv.Itoa(i))
}

func (p Path) with(seg string) Path {
	out := make(Path, len(p), len(p)+1)
	copy(out, p)
	return append(out, seg)
}

// String returns the dotted form of p
func (p Path) String() string {
	return strings.Join(p, ".")
}

// Lookup walks path from root. Numeric segments index into sequences; any
// other miss (absent key, bad index, scalar in the way) reports false.
func Lookup(root Value, path string) (Value, bool) {
	cur := root
	for _, seg := range strings.Split(path, ".") {
		var ok bool
		switch cur.Kind() {
		case Sequence:
			i, err := strconv.Atoi(seg)
			if err != nil {
				return Value{}, false
			}
			cur, ok = cur.Index(i)
		case Mapping:
			cur, ok = cur.Field(seg)
		default:
			ok = false
		}
		if !ok {
			return Value{}, false
		}
	}
	return cur, true
}

// GetOr resolves path from root and returns def when it is not found.
func GetOr(root Value, path string, def Value) Value {
	if v, ok := Lookup(root, path); ok {
		return v
	}
	return def
}

// Get resolves a required field. A missing field, or an empty sequence,
// yields a MissingField error naming prefix followed by the full path.
func Get(root Value, path string, prefix Path) (Value, error) {
	v, ok := Lookup(root, path)
	if !ok || (v.Kind() == Sequence && v.Len() == 0) {
		full := append(append(Path(nil), prefix...), strings.Split(path, ".")...)
		return Value{}, models.NewMissingField(full.String())
	}
	return v, nil
}

// GetText is Get followed by Value.Text
func GetText(root Value, path string, prefix Path) (string, error) {
	v, err := Get(root, path, prefix)
	if err != nil {
		return "", err
	}
	return v.Text(), nil
}
