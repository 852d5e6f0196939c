package convert

import (
	"strings"

	"github.com/gerunddev/notionbridge/internal/ast"
	"github.com/gerunddev/notionbridge/internal/notion"
)

const (
	uncheckedBox = "☐"
	checkedBox   = "☒"
)

// ListConverter converts BulletList and OrderedList nodes. Items whose text
// starts with a checkbox glyph become todo items.
type ListConverter struct {
	inline *InlineConverter
}

func NewListConverter(inline *InlineConverter) *ListConverter {
	return &ListConverter{inline: inline}
}

func (c *ListConverter) Name() string { return "list" }

func (c *ListConverter) CanConvert(node ast.Block) bool {
	switch node.(type) {
	case *ast.BulletList, *ast.OrderedList:
		return true
	}
	return false
}

func (c *ListConverter) Convert(node ast.Block) ([]notion.Block, error) {
	switch n := node.(type) {
	case *ast.BulletList:
		return []notion.Block{c.convertList(notion.Bulleted, n.Items)}, nil
	case *ast.OrderedList:
		return []notion.Block{c.convertList(notion.Numbered, n.Items)}, nil
	}
	return nil, malformed(c, node)
}

func (c *ListConverter) convertList(kind notion.ItemKind, items [][]ast.Block) *notion.List {
	l := notion.NewList(kind)
	for _, item := range items {
		l.AddItem(c.convertItem(kind, item))
	}
	return l
}

// convertItem joins the item's paragraphs into one rich text and nests its
// sub-lists. Notion list items hold no other block kinds, so code blocks,
// quotes and the like inside an item are dropped.
func (c *ListConverter) convertItem(kind notion.ItemKind, blocks []ast.Block) *notion.ListItem {
	first := firstTextBlock(blocks)
	var (
		checked, todo bool
		stripped      []ast.Inline
	)
	if first >= 0 {
		stripped, checked, todo = stripCheckbox(blocks[first].(ast.InlineContainer).Inlines())
	}
	if todo {
		kind = notion.Todo
	}

	item := notion.NewListItem(kind, checked)
	var paragraphs int
	for i, b := range blocks {
		switch n := b.(type) {
		case *ast.Plain, *ast.Para:
			content := n.(ast.InlineContainer).Inlines()
			if i == first && todo {
				content = stripped
			}
			if paragraphs > 0 {
				item.AddText(notion.NewText("\n"))
			}
			item.AddText(c.inline.ConvertPlain(content)...)
			paragraphs++
		case *ast.BulletList:
			item.AddChild(c.convertList(notion.Bulleted, n.Items))
		case *ast.OrderedList:
			item.AddChild(c.convertList(notion.Numbered, n.Items))
		}
	}
	item.Runs = notion.MergeTexts(item.Runs)
	return item
}

// firstTextBlock returns the index of the first Plain or Para, or -1.
func firstTextBlock(blocks []ast.Block) int {
	for i, b := range blocks {
		switch b.(type) {
		case *ast.Plain, *ast.Para:
			return i
		}
	}
	return -1
}

// stripCheckbox reports whether content opens with a checkbox glyph and, if
// so, returns a copy of content with the glyph and one following space
// removed. content itself is never modified.
func stripCheckbox(content []ast.Inline) (rest []ast.Inline, checked, ok bool) {
	if len(content) == 0 {
		return content, false, false
	}
	str, isStr := content[0].(*ast.Str)
	if !isStr {
		return content, false, false
	}

	var remainder string
	switch {
	case strings.HasPrefix(str.Text, uncheckedBox):
		remainder = strings.TrimPrefix(str.Text, uncheckedBox)
	case strings.HasPrefix(str.Text, checkedBox):
		remainder, checked = strings.TrimPrefix(str.Text, checkedBox), true
	default:
		return content, false, false
	}

	remainder = strings.TrimPrefix(remainder, " ")
	if remainder != "" {
		rest = make([]ast.Inline, 0, len(content))
		rest = append(rest, &ast.Str{Text: remainder})
		return append(rest, content[1:]...), checked, true
	}

	tail := content[1:]
	if len(tail) > 0 {
		if _, sp := tail[0].(*ast.Space); sp {
			tail = tail[1:]
		}
	}
	return append([]ast.Inline(nil), tail...), checked, true
}
