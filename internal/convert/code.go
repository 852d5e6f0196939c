package convert

import (
	"strings"

	"github.com/gerunddev/notionbridge/internal/ast"
	"github.com/gerunddev/notionbridge/internal/notion"
)

// CodeConverter converts CodeBlock nodes. The language comes from the
// block's first class, falling back to a "language" attribute; the caption
// from a "caption" or "filename" attribute.
type CodeConverter struct{}

func NewCodeConverter() *CodeConverter { return &CodeConverter{} }

func (c *CodeConverter) Name() string { return "code" }

func (c *CodeConverter) CanConvert(node ast.Block) bool {
	_, ok := node.(*ast.CodeBlock)
	return ok
}

func (c *CodeConverter) Convert(node ast.Block) ([]notion.Block, error) {
	cb, ok := node.(*ast.CodeBlock)
	if !ok {
		return nil, malformed(c, node)
	}
	return []notion.Block{notion.NewCode(cb.Text, codeLanguage(cb.Attr), codeCaption(cb.Attr))}, nil
}

func codeLanguage(attr ast.Attr) string {
	if len(attr.Classes) > 0 {
		return strings.TrimPrefix(attr.Classes[0], "language-")
	}
	if lang, ok := attr.Get("language"); ok {
		return lang
	}
	return ""
}

func codeCaption(attr ast.Attr) string {
	if caption, ok := attr.Get("caption"); ok {
		return caption
	}
	if name, ok := attr.Get("filename"); ok {
		return name
	}
	return ""
}
