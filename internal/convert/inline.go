package convert

import (
	"strings"

	"github.com/gerunddev/notionbridge/internal/ast"
	"github.com/gerunddev/notionbridge/internal/notion"
)

// InlineHandler converts one inline node directly into an inline element,
// bypassing text accumulation.
type InlineHandler func(node ast.Inline, ann notion.Annotations) notion.InlineElement

// InlineConverter turns runs of inline AST nodes into Notion rich text.
//
// Nodes are processed as a stream: plain text accumulates in a buffer and
// is emitted as a single Text run whenever the formatting changes or a
// specialized node (code, math, mention) interrupts it. Formatting nodes
// are descended into with updated annotations. Afterwards adjacent runs with
// identical styling are merged, so the output holds the fewest runs that
// still respect every formatting boundary.
//
// An InlineConverter is safe for concurrent use once handlers are
// registered.
type InlineConverter struct {
	handlers map[string]InlineHandler
}

// NewInlineConverter returns a converter with handlers for inline code,
// math and mentions.
func NewInlineConverter() *InlineConverter {
	c := &InlineConverter{handlers: make(map[string]InlineHandler)}
	c.Register((&ast.Code{}).Tag(), convertCode)
	c.Register((&ast.Math{}).Tag(), convertMath)
	c.Register((&ast.Mention{}).Tag(), convertMention)
	return c
}

// Register installs a specialized handler for nodes with the given tag,
// replacing any existing one. Registration is a setup step; do not call it
// while conversions are running.
func (c *InlineConverter) Register(tag string, h InlineHandler) {
	c.handlers[tag] = h
}

// Convert converts nodes starting from the base annotations.
func (c *InlineConverter) Convert(nodes []ast.Inline, base notion.Annotations) []notion.InlineElement {
	s := &inlineStream{handlers: c.handlers}
	s.walk(nodes, style{ann: base})
	return notion.MergeTexts(s.out)
}

// ConvertPlain converts nodes with default annotations.
func (c *InlineConverter) ConvertPlain(nodes []ast.Inline) []notion.InlineElement {
	return c.Convert(nodes, notion.Annotations{})
}

// style is the formatting state of the stream: annotations plus the link
// target inherited from an enclosing link.
type style struct {
	ann  notion.Annotations
	link string
}

func (s style) equal(o style) bool {
	return s.link == o.link && s.ann.Equal(o.ann)
}

type inlineStream struct {
	handlers map[string]InlineHandler
	out      []notion.InlineElement
	buf      strings.Builder
}

// flush emits the buffered text under st.
func (s *inlineStream) flush(st style) {
	if s.buf.Len() == 0 {
		return
	}
	s.out = append(s.out, &notion.Text{
		Content:     s.buf.String(),
		Annotations: st.ann.Copy(),
		Link:        st.link,
	})
	s.buf.Reset()
}

func (s *inlineStream) walk(nodes []ast.Inline, st style) {
	for _, node := range nodes {
		if h, ok := s.handlers[node.Tag()]; ok {
			s.flush(st)
			if el := h(node, st.ann.Copy()); el != nil {
				s.out = append(s.out, el)
			}
			continue
		}

		switch n := node.(type) {
		case *ast.Str:
			s.buf.WriteString(n.Text)
		case *ast.Space:
			s.buf.WriteByte(' ')
		case *ast.SoftBreak, *ast.LineBreak:
			s.buf.WriteByte('\n')
		case *ast.Quoted:
			open, closing := "“", "”"
			if n.Type == ast.SingleQuote {
				open, closing = "‘", "’"
			}
			s.buf.WriteString(open)
			s.walk(n.Content, st)
			s.buf.WriteString(closing)
		default:
			children, next, ok := format(node, st)
			if !ok {
				s.flush(st)
				continue
			}
			if !next.equal(st) {
				s.flush(st)
			}
			s.walk(children, next)
		}
	}
	s.flush(st)
}

// format applies a formatting node to st and returns its children. ok is
// false when node is not a formatting node.
func format(node ast.Inline, st style) (children []ast.Inline, next style, ok bool) {
	next = st
	switch n := node.(type) {
	case *ast.Strong:
		next.ann.SetBold(true)
		return n.Content, next, true
	case *ast.Emph:
		next.ann.SetItalic(true)
		return n.Content, next, true
	case *ast.Strikeout:
		next.ann.SetStrikethrough(true)
		return n.Content, next, true
	case *ast.Underline:
		next.ann.SetUnderline(true)
		return n.Content, next, true
	case *ast.Link:
		if n.URL != "" {
			next.link = n.URL
		}
		return n.Content, next, true
	case *ast.Span:
		return n.Content, next, true
	case *ast.SmallCaps:
		return n.Content, next, true
	}
	return nil, st, false
}

func convertCode(node ast.Inline, ann notion.Annotations) notion.InlineElement {
	n, ok := node.(*ast.Code)
	if !ok {
		return nil
	}
	return notion.NewInlineCode(n.Text, ann)
}

func convertMath(node ast.Inline, ann notion.Annotations) notion.InlineElement {
	n, ok := node.(*ast.Math)
	if !ok {
		return nil
	}
	return notion.NewInlineEquation(NormalizeLatex(n.Text), ann)
}

func convertMention(node ast.Inline, ann notion.Annotations) notion.InlineElement {
	n, ok := node.(*ast.Mention)
	if !ok {
		return nil
	}
	return notion.NewMention(notion.MentionType(n.Type), n.ID, n.Label, ann)
}
