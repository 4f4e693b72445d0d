package index

import (
	"context"

	"github.com/ralt/toml2index/internal/document"
	"github.com/ralt/toml2index/internal/filter"
	"github.com/ralt/toml2index/internal/models"
	"github.com/sirupsen/logrus"
)

// Converter turns a decoded TOML document into an index tree
type Converter struct {
	filter filter.Filter
}

// NewConverter creates a Converter. Descriptions are passed through f; a
// nil f keeps them as written.
func NewConverter(f filter.Filter) *Converter {
	return &Converter{filter: f}
}

// categoryGroups keeps packages grouped by category in first-seen order
type categoryGroups struct {
	names    []string
	packages map[string][]*Node
}

func (g *categoryGroups) add(category string, pkg *Node) {
	if g.packages == nil {
		g.packages = make(map[string][]*Node)
	}
	if _, ok := g.packages[category]; !ok {
		g.names = append(g.names, category)
	}
	g.packages[category] = append(g.packages[category], pkg)
}

// Convert builds the <index> tree for data
func (c *Converter) Convert(ctx context.Context, data document.Value) (*Node, error) {
	version, err := document.GetText(data, "index.version", nil)
	if err != nil {
		return nil, err
	}
	name, err := document.GetText(data, "index.name", nil)
	if err != nil {
		return nil, err
	}

	root := NewNode("index",
		Attr{Name: "version", Value: version},
		Attr{Name: "name", Value: name},
	)

	packs, err := document.Get(data, "reapack", nil)
	if err != nil {
		return nil, err
	}

	var groups categoryGroups
	for _, f := range packs.Fields() {
		path := document.NewPath("reapack", f.Key)
		logrus.Debugf("Processing package %s", path)

		category, pkg, err := c.convertPackage(ctx, f.Value, path)
		if err != nil {
			return nil, err
		}
		groups.add(category, pkg)
	}

	for _, category := range groups.names {
		node := NewNode("category", Attr{Name: "name", Value: category})
		node.Append(groups.packages[category]...)
		root.Append(node)
	}

	logrus.Infof("Converted %d packages in %d categories", packs.Len(), len(groups.names))
	return root, nil
}

func (c *Converter) convertPackage(ctx context.Context, pack document.Value, path document.Path) (string, *Node, error) {
	name, err := document.GetText(pack, "name", path)
	if err != nil {
		return "", nil, err
	}
	typ, err := document.GetText(pack, "type", path)
	if err != nil {
		return "", nil, err
	}
	category, err := document.GetText(pack, "category", path)
	if err != nil {
		return "", nil, err
	}

	node := NewNode("reapack",
		Attr{Name: "name", Value: name},
		Attr{Name: "type", Value: typ},
	)

	if meta, ok := document.Lookup(pack, "metadata"); ok {
		m, err := c.renderMetadata(ctx, meta, path)
		if err != nil {
			return "", nil, err
		}
		node.Append(m)
	}

	versions, err := document.Get(pack, "version", path)
	if err != nil {
		return "", nil, err
	}
	if versions.Len() == 0 {
		return "", nil, models.NewMissingField(path.Key("version").String())
	}

	author := document.GetOr(pack, "author", document.Str("")).Text()
	for _, v := range versions.Fields() {
		vpath := path.Key("version").Quoted(v.Key)
		logrus.Debugf("Processing version %s", vpath)

		xmlver, err := processVersion(v.Value, v.Key, vpath, author)
		if err != nil {
			return "", nil, err
		}
		node.Append(xmlver)
	}

	return category, node, nil
}
