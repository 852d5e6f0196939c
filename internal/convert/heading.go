package convert

import (
	"github.com/gerunddev/notionbridge/internal/ast"
	"github.com/gerunddev/notionbridge/internal/notion"
)

// HeadingConverter converts Header nodes. Levels outside 1..3 are clamped
// since Notion only has three heading sizes.
type HeadingConverter struct {
	inline *InlineConverter
}

func NewHeadingConverter(inline *InlineConverter) *HeadingConverter {
	return &HeadingConverter{inline: inline}
}

func (c *HeadingConverter) Name() string { return "heading" }

func (c *HeadingConverter) CanConvert(node ast.Block) bool {
	_, ok := node.(*ast.Header)
	return ok
}

func (c *HeadingConverter) Convert(node ast.Block) ([]notion.Block, error) {
	h, ok := node.(*ast.Header)
	if !ok {
		return nil, malformed(c, node)
	}
	runs := c.inline.ConvertPlain(h.Content)
	return []notion.Block{notion.NewHeading(h.Level, runs...)}, nil
}
