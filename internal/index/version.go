package index

import (
	"github.com/ralt/toml2index/internal/document"
	"github.com/ralt/toml2index/internal/template"
)

// processVersion builds a <version> node. packageAuthor is used when the
// version has no author of its own; an empty author is omitted.
func processVersion(version document.Value, key string, path document.Path, packageAuthor string) (*Node, error) {
	vars := template.Vars(document.GetOr(version, "vars", document.Map()))

	node := NewNode("version", Attr{Name: "name", Value: key})

	author := document.GetOr(version, "author", document.Str("")).Text()
	if author == "" {
		author = packageAuthor
	}
	if author != "" {
		node.SetAttr("author", author)
	}

	t, err := document.GetText(version, "time", path)
	if err != nil {
		return nil, err
	}
	node.SetAttr("time", t)

	changelog, err := document.GetText(version, "changelog", path)
	if err != nil {
		return nil, err
	}
	node.AppendText("changelog", changelog).CDATA = true

	files, err := document.Get(version, "files", path)
	if err != nil {
		return nil, err
	}

	for i, file := range files.Items() {
		// Diagnostic paths count files from 1
		fpath := path.Key("files").Index(i + 1)

		source, err := processSource(file, vars, fpath)
		if err != nil {
			return nil, err
		}
		node.Append(source)
	}

	return node, nil
}

// processSource builds a <source> node from a bare string, or from a table
// whose src field becomes the text and whose other fields become attributes.
func processSource(file document.Value, vars map[string]string, path document.Path) (*Node, error) {
	if file.Kind() != document.Mapping {
		text, err := template.Expand(file.Text(), vars, path)
		if err != nil {
			return nil, err
		}
		node := NewNode("source")
		node.Text = text
		return node, nil
	}

	if _, err := document.Get(file, "src", path); err != nil {
		return nil, err
	}

	node := NewNode("source")
	for _, f := range file.Fields() {
		value, err := template.Expand(f.Value.Text(), vars, path)
		if err != nil {
			return nil, err
		}
		if f.Key == "src" {
			node.Text = value
			continue
		}
		node.SetAttr(f.Key, value)
	}
	return node, nil
}
