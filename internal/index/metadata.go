package index

import (
	"context"
	"errors"

	"github.com/ralt/toml2index/internal/document"
	"github.com/ralt/toml2index/internal/models"
)

// linkTypes are the single-valued links a package may declare
var linkTypes = []string{"website", "donation"}

// renderMetadata builds the <metadata> node of a package
func (c *Converter) renderMetadata(ctx context.Context, meta document.Value, path document.Path) (*Node, error) {
	node := NewNode("metadata")

	for _, rel := range linkTypes {
		v, ok := document.Lookup(meta, rel)
		if !ok || v.Empty() {
			continue
		}
		node.AppendText("link", v.Text(), Attr{Name: "rel", Value: rel})
	}

	screenshots := document.GetOr(meta, "screenshots", document.List())
	for i, shot := range screenshots.Items() {
		spath := path.Key("metadata").Key("screenshots").Index(i)

		href, err := document.GetText(shot, "href", spath)
		if err != nil {
			return nil, err
		}
		text := document.GetOr(shot, "text", document.Str(href)).Text()
		node.AppendText("link", text,
			Attr{Name: "rel", Value: "screenshot"},
			Attr{Name: "href", Value: href},
		)
	}

	if desc, ok := document.Lookup(meta, "description"); ok && !desc.Empty() {
		text := desc.Text()
		if c.filter != nil {
			rendered, err := c.filter.Render(ctx, text)
			if err != nil {
				return nil, filterError(err, path.Key("metadata").Key("description"))
			}
			text = rendered
		}
		node.AppendText("description", text)
	}

	return node, nil
}

// filterError attaches the description path to a filter failure
func filterError(err error, path document.Path) error {
	var ie *models.IndexError
	if errors.As(err, &ie) {
		if ie.Path == "" {
			ie.Path = path.String()
		}
		return err
	}
	return &models.IndexError{
		Type: models.ErrFilter,
		Path: path.String(),
		Err:  err,
	}
}
