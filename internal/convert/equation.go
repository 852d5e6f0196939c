package convert

import (
	"github.com/gerunddev/notionbridge/internal/ast"
	"github.com/gerunddev/notionbridge/internal/notion"
)

// EquationConverter turns a paragraph holding nothing but one display math
// node into a block equation. It must be registered ahead of the paragraph
// converter.
type EquationConverter struct {
	// Numbers appends a "(n)" paragraph after equations that carry a
	// \tag or \label.
	Numbers bool
}

func NewEquationConverter(numbers bool) *EquationConverter {
	return &EquationConverter{Numbers: numbers}
}

func (c *EquationConverter) Name() string { return "equation" }

func (c *EquationConverter) CanConvert(node ast.Block) bool {
	return displayMath(node) != nil
}

func (c *EquationConverter) Convert(node ast.Block) ([]notion.Block, error) {
	m := displayMath(node)
	if m == nil {
		return nil, malformed(c, node)
	}
	var number string
	if c.Numbers {
		number, _ = EquationNumber(m.Text)
	}
	eq := notion.NewEquation(NormalizeLatex(m.Text), number)
	return eq.NumberedBlocks(), nil
}

// displayMath returns the single display math node of a Para or Plain,
// ignoring surrounding whitespace, or nil.
func displayMath(node ast.Block) *ast.Math {
	var content []ast.Inline
	switch n := node.(type) {
	case *ast.Para:
		content = n.Content
	case *ast.Plain:
		content = n.Content
	default:
		return nil
	}
	var found *ast.Math
	for _, in := range content {
		switch n := in.(type) {
		case *ast.Space, *ast.SoftBreak, *ast.LineBreak:
			continue
		case *ast.Math:
			if n.Type != ast.DisplayMath || found != nil {
				return nil
			}
			found = n
		default:
			return nil
		}
	}
	return found
}
