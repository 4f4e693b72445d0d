package document

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/ralt/toml2index/internal/models"
)

// keyOrder records, for every table path, its child keys in the order they
// first appear in the TOML source. Tables inside arrays share the path of
// the array, without an index.
type keyOrder map[string][]string

func newKeyOrder(md toml.MetaData) keyOrder {
	order := make(keyOrder)
	seen := make(map[string]bool)
	for _, key := range md.Keys() {
		// Implicit parent tables are never reported on their own
		for i := range key {
			parent := joinKey(key[:i])
			id := parent + "\x00" + key[i]
			if seen[id] {
				continue
			}
			seen[id] = true
			order[parent] = append(order[parent], key[i])
		}
	}
	return order
}

func joinKey(parts []string) string {
	return strings.Join(parts, "\x00")
}

// Load decodes a TOML document from r
func Load(r io.Reader) (Value, error) {
	var raw map[string]interface{}
	md, err := toml.NewDecoder(r).Decode(&raw)
	if err != nil {
		return Value{}, &models.IndexError{
			Type: models.ErrParse,
			Err:  err,
		}
	}
	return fromRaw(raw, nil, newKeyOrder(md)), nil
}

// LoadFile decodes the TOML document at path
func LoadFile(path string) (Value, error) {
	f, err := os.Open(path)
	if err != nil {
		return Value{}, &models.IndexError{
			Type: models.ErrFileOp,
			Path: path,
			Err:  err,
		}
	}
	defer f.Close()

	v, err := Load(f)
	if err != nil {
		if ie, ok := err.(*models.IndexError); ok && ie.Path == "" {
			ie.Path = path
		}
		return Value{}, err
	}
	return v, nil
}

// Parse decodes a TOML document held in a string
func Parse(data string) (Value, error) {
	return Load(strings.NewReader(data))
}

func fromRaw(raw interface{}, path []string, order keyOrder) Value {
	switch x := raw.(type) {
	case map[string]interface{}:
		return fromTable(x, path, order)
	case []map[string]interface{}:
		items := make([]Value, 0, len(x))
		for _, t := range x {
			items = append(items, fromTable(t, path, order))
		}
		return Value{kind: Sequence, items: items}
	case []interface{}:
		items := make([]Value, 0, len(x))
		for _, e := range x {
			items = append(items, fromRaw(e, path, order))
		}
		return Value{kind: Sequence, items: items}
	case string:
		return Str(x)
	case int64:
		return Int(x)
	case float64:
		return Flt(x)
	case bool:
		return Bool(x)
	case time.Time:
		return Time(x)
	default:
		return Str(fmt.Sprint(x))
	}
}

func fromTable(t map[string]interface{}, path []string, order keyOrder) Value {
	keys := make([]string, 0, len(t))
	placed := make(map[string]bool, len(t))
	for _, k := range order[joinKey(path)] {
		if _, ok := t[k]; ok && !placed[k] {
			keys = append(keys, k)
			placed[k] = true
		}
	}

	// Keys the metadata did not report keep a stable order at the end.
	var rest []string
	for k := range t {
		if !placed[k] {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	keys = append(keys, rest...)

	v := Value{kind: Mapping, keys: keys, fields: make(map[string]Value, len(keys))}
	for _, k := range keys {
		child := append(append([]string(nil), path...), k)
		v.fields[k] = fromRaw(t[k], child, order)
	}
	return v
}
