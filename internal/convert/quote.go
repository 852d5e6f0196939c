package convert

import (
	"github.com/gerunddev/notionbridge/internal/ast"
	"github.com/gerunddev/notionbridge/internal/notion"
)

// QuoteConverter converts BlockQuote nodes.
//
// A Notion quote holds one rich text plus child blocks, so a blockquote is
// flattened: its first child supplies the quote's text and every later
// child becomes a nested block. Children nothing can convert are dropped.
type QuoteConverter struct {
	inline   *InlineConverter
	registry *Registry
}

// NewQuoteConverter returns a quote converter that converts nested content
// through registry.
func NewQuoteConverter(inline *InlineConverter, registry *Registry) *QuoteConverter {
	return &QuoteConverter{inline: inline, registry: registry}
}

func (c *QuoteConverter) Name() string { return "quote" }

func (c *QuoteConverter) CanConvert(node ast.Block) bool {
	_, ok := node.(*ast.BlockQuote)
	return ok
}

func (c *QuoteConverter) Convert(node ast.Block) ([]notion.Block, error) {
	bq, ok := node.(*ast.BlockQuote)
	if !ok {
		return nil, malformed(c, node)
	}
	q, err := c.convertQuote(bq)
	if err != nil {
		return nil, err
	}
	return []notion.Block{q}, nil
}

func (c *QuoteConverter) convertQuote(bq *ast.BlockQuote) (*notion.Quote, error) {
	q := notion.NewQuote()
	for i, child := range bq.Content {
		if i == 0 {
			if err := c.convertFirst(q, child); err != nil {
				return nil, err
			}
			continue
		}

		if nested, ok := child.(*ast.BlockQuote); ok {
			nq, err := c.convertQuote(nested)
			if err != nil {
				return nil, err
			}
			q.AddChild(nq)
			continue
		}

		blocks, err := c.registry.ConvertChild(child)
		if err != nil {
			if isMalformed(err) {
				return nil, err
			}
			continue
		}
		q.AddChild(blocks...)
	}

	if len(q.Runs) == 0 {
		q.AddText(notion.NewText(""))
	}
	return q, nil
}

// convertFirst fills the quote's own text from its first child.
func (c *QuoteConverter) convertFirst(q *notion.Quote, child ast.Block) error {
	if ic, ok := child.(ast.InlineContainer); ok {
		if runs := c.inline.ConvertPlain(ic.Inlines()); len(runs) > 0 {
			q.AddText(runs...)
			return nil
		}
	}

	blocks, err := c.registry.ConvertChild(child)
	if err != nil {
		if isMalformed(err) {
			return err
		}
		return nil
	}
	if len(blocks) == 0 {
		return nil
	}
	if rt, ok := blocks[0].(notion.RichTextBlock); ok {
		q.AddText(rt.RichText()...)
		blocks = blocks[1:]
	}
	q.AddChild(blocks...)
	return nil
}
