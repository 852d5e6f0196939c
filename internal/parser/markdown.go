package parser

import (
	"bytes"
	"strings"

	"github.com/gerunddev/notionbridge/internal/ast"
	"github.com/yuin/goldmark"
	gast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	gparser "github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// Task list checkboxes are read as the glyphs pandoc emits for them.
const (
	uncheckedGlyph = "☐"
	checkedGlyph   = "☒"
)

var markdown = goldmark.New(
	goldmark.WithExtensions(
		extension.Strikethrough,
		extension.TaskList,
	),
	goldmark.WithParserOptions(
		gparser.WithInlineParsers(util.Prioritized(&mathParser{}, 150)),
	),
)

func parseMarkdown(src []byte) (*ast.Document, error) {
	meta, body, err := splitFrontMatter(src)
	if err != nil {
		return nil, err
	}
	root := markdown.Parser().Parse(text.NewReader(body))
	w := &mdWalker{src: body}
	return &ast.Document{Meta: meta, Blocks: w.blocks(root)}, nil
}

// mdWalker maps a goldmark tree onto ast nodes.
type mdWalker struct {
	src []byte
}

func (w *mdWalker) blocks(parent gast.Node) []ast.Block {
	var out []ast.Block
	for n := parent.FirstChild(); n != nil; n = n.NextSibling() {
		out = append(out, w.block(n))
	}
	return out
}

func (w *mdWalker) block(n gast.Node) ast.Block {
	switch n := n.(type) {
	case *gast.Paragraph:
		return &ast.Para{Content: w.inlines(n)}
	case *gast.TextBlock:
		return &ast.Plain{Content: w.inlines(n)}
	case *gast.Heading:
		return &ast.Header{Level: n.Level, Content: w.inlines(n)}
	case *gast.FencedCodeBlock:
		return &ast.CodeBlock{Attr: w.infoAttr(n), Text: w.lines(n)}
	case *gast.CodeBlock:
		return &ast.CodeBlock{Text: w.lines(n)}
	case *gast.Blockquote:
		return &ast.BlockQuote{Content: w.blocks(n)}
	case *gast.List:
		var items [][]ast.Block
		for item := n.FirstChild(); item != nil; item = item.NextSibling() {
			items = append(items, w.blocks(item))
		}
		if n.IsOrdered() {
			return &ast.OrderedList{Start: n.Start, Items: items}
		}
		return &ast.BulletList{Items: items}
	case *gast.ThematicBreak:
		return &ast.HorizontalRule{}
	case *gast.HTMLBlock:
		return &ast.RawBlock{Format: "html", Text: w.lines(n)}
	}
	return &ast.Unsupported{Name: n.Kind().String()}
}

// lines joins a block's raw lines, dropping the final newline.
func (w *mdWalker) lines(n gast.Node) string {
	var buf bytes.Buffer
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		buf.Write(seg.Value(w.src))
	}
	return strings.TrimSuffix(buf.String(), "\n")
}

// infoAttr reads a fence info string such as `go caption="main.go"`: the
// first word is the language class, later key=value words become
// attributes.
func (w *mdWalker) infoAttr(n *gast.FencedCodeBlock) ast.Attr {
	var attr ast.Attr
	if n.Info == nil {
		return attr
	}
	fields := strings.Fields(string(n.Info.Segment.Value(w.src)))
	for i, f := range fields {
		key, value, ok := strings.Cut(f, "=")
		if !ok {
			if i == 0 {
				attr.Classes = append(attr.Classes, strings.Trim(f, "{}."))
			}
			continue
		}
		attr.Attributes = append(attr.Attributes, ast.KeyVal{
			Key:   key,
			Value: strings.Trim(value, `"'`),
		})
	}
	return attr
}

func (w *mdWalker) inlines(parent gast.Node) []ast.Inline {
	var out []ast.Inline
	for n := parent.FirstChild(); n != nil; n = n.NextSibling() {
		out = append(out, w.inline(n)...)
	}
	return out
}

func (w *mdWalker) inline(n gast.Node) []ast.Inline {
	switch n := n.(type) {
	case *gast.Text:
		out := ast.Words(string(n.Segment.Value(w.src)))
		switch {
		case n.HardLineBreak():
			out = append(out, &ast.LineBreak{})
		case n.SoftLineBreak():
			out = append(out, &ast.SoftBreak{})
		}
		return out
	case *gast.String:
		return ast.Words(string(n.Value))
	case *gast.CodeSpan:
		return []ast.Inline{&ast.Code{Text: w.rawText(n)}}
	case *gast.Emphasis:
		content := w.inlines(n)
		if n.Level >= 2 {
			return []ast.Inline{&ast.Strong{Content: content}}
		}
		return []ast.Inline{&ast.Emph{Content: content}}
	case *east.Strikethrough:
		return []ast.Inline{&ast.Strikeout{Content: w.inlines(n)}}
	case *gast.Link:
		content := w.inlines(n)
		dest := string(n.Destination)
		if m, ok := ast.ParseMention(dest, ast.Stringify(content)); ok {
			return []ast.Inline{m}
		}
		return []ast.Inline{&ast.Link{Content: content, URL: dest, Title: string(n.Title)}}
	case *gast.AutoLink:
		label := string(n.Label(w.src))
		return []ast.Inline{&ast.Link{Content: ast.Words(label), URL: string(n.URL(w.src))}}
	case *gast.Image:
		return []ast.Inline{&ast.Image{Content: w.inlines(n), URL: string(n.Destination), Title: string(n.Title)}}
	case *gast.RawHTML:
		var buf bytes.Buffer
		for i := 0; i < n.Segments.Len(); i++ {
			seg := n.Segments.At(i)
			buf.Write(seg.Value(w.src))
		}
		return []ast.Inline{&ast.RawInline{Format: "html", Text: buf.String()}}
	case *east.TaskCheckBox:
		glyph := uncheckedGlyph
		if n.IsChecked {
			glyph = checkedGlyph
		}
		return []ast.Inline{&ast.Str{Text: glyph}, &ast.Space{}}
	case *mathNode:
		kind := ast.InlineMath
		if n.display {
			kind = ast.DisplayMath
		}
		return []ast.Inline{&ast.Math{Type: kind, Text: string(n.value)}}
	}
	return []ast.Inline{&ast.Unsupported{Name: n.Kind().String()}}
}

// rawText concatenates the text segments under n, folding line endings
// into spaces the way code spans are rendered.
func (w *mdWalker) rawText(n gast.Node) string {
	var buf bytes.Buffer
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch c := c.(type) {
		case *gast.Text:
			buf.Write(c.Segment.Value(w.src))
		case *gast.String:
			buf.Write(c.Value)
		}
	}
	return strings.ReplaceAll(buf.String(), "\n", " ")
}
