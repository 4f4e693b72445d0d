// Package template expands ${name} placeholders in file source strings.
package template

import (
	"regexp"
	"strings"

	"github.com/ralt/toml2index/internal/document"
	"github.com/ralt/toml2index/internal/models"
)

// placeholderRe matches ${name} where name is made of word characters or $
var placeholderRe = regexp.MustCompile(`\$\{([\p{L}\p{N}\p{Mn}_$]+)\}`)

// Vars builds a variable scope from a vars mapping. Scalars are stringified;
// anything that is not a mapping yields an empty scope.
func Vars(v document.Value) map[string]string {
	vars := make(map[string]string, v.Len())
	for _, f := range v.Fields() {
		vars[f.Key] = f.Value.Text()
	}
	return vars
}

// Expand replaces every ${name} in text with vars[name], in a single pass.
// ${$} always expands to a literal $. vars is not modified.
func Expand(text string, vars map[string]string, path document.Path) (string, error) {
	matches := placeholderRe.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return text, nil
	}

	var b strings.Builder
	last := 0
	for _, m := range matches {
		name := text[m[2]:m[3]]
		value, ok := lookup(vars, name)
		if !ok {
			return "", models.NewUnknownVariable(name, path.String())
		}
		b.WriteString(text[last:m[0]])
		b.WriteString(value)
		last = m[1]
	}
	b.WriteString(text[last:])
	return b.String(), nil
}

func lookup(vars map[string]string, name string) (string, bool) {
	if name == "$" {
		return "$", true
	}
	v, ok := vars[name]
	return v, ok
}
