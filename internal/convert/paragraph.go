package convert

import (
	"github.com/gerunddev/notionbridge/internal/ast"
	"github.com/gerunddev/notionbridge/internal/notion"
)

// ParagraphConverter converts Para and Plain nodes.
type ParagraphConverter struct {
	inline *InlineConverter
}

func NewParagraphConverter(inline *InlineConverter) *ParagraphConverter {
	return &ParagraphConverter{inline: inline}
}

func (c *ParagraphConverter) Name() string { return "paragraph" }

func (c *ParagraphConverter) CanConvert(node ast.Block) bool {
	switch node.(type) {
	case *ast.Para, *ast.Plain:
		return true
	}
	return false
}

func (c *ParagraphConverter) Convert(node ast.Block) ([]notion.Block, error) {
	if !c.CanConvert(node) {
		return nil, malformed(c, node)
	}
	content := node.(ast.InlineContainer).Inlines()
	return []notion.Block{notion.NewParagraph(c.inline.ConvertPlain(content)...)}, nil
}
