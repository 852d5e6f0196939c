package convert

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/gerunddev/notionbridge/internal/ast"
	"github.com/gerunddev/notionbridge/internal/notion"
)

// stubConverter accepts every node of one tag and returns a fixed result.
type stubConverter struct {
	name   string
	tag    string
	blocks []notion.Block
	err    error
}

func (s *stubConverter) Name() string                   { return s.name }
func (s *stubConverter) CanConvert(node ast.Block) bool { return node.Tag() == s.tag }
func (s *stubConverter) Convert(node ast.Block) ([]notion.Block, error) {
	return s.blocks, s.err
}

func convertQuoteNode(t *testing.T, bq *ast.BlockQuote) *notion.Quote {
	t.Helper()
	r := DefaultRegistry(DefaultOptions())
	blocks, err := r.Convert(bq)
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if len(blocks) != 1 {
		t.Fatalf("got %d blocks, want 1", len(blocks))
	}
	q, ok := blocks[0].(*notion.Quote)
	if !ok {
		t.Fatalf("got %T, want *notion.Quote", blocks[0])
	}
	return q
}

func TestEmptyQuote(t *testing.T) {
	q := convertQuoteNode(t, &ast.BlockQuote{})

	data, err := json.Marshal(q.Serialize()[0])
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	if !strings.Contains(string(data), `"rich_text":[{"type":"text","text":{"content":"","link":null}`) {
		t.Errorf("empty quote should hold one empty text run, got %s", data)
	}
	if len(q.Children) != 0 {
		t.Errorf("got %d children, want 0", len(q.Children))
	}
}

func TestQuoteFlattening(t *testing.T) {
	tests := []struct {
		name     string
		content  []ast.Block
		text     string
		children []notion.BlockType
	}{
		{
			name:    "single paragraph",
			content: []ast.Block{para("only")},
			text:    "only",
		},
		{
			name:     "three paragraphs",
			content:  []ast.Block{para("first"), para("second"), para("third")},
			text:     "first",
			children: []notion.BlockType{notion.TypeParagraph, notion.TypeParagraph},
		},
		{
			name:     "heading first",
			content:  []ast.Block{&ast.Header{Level: 2, Content: ast.Words("Title")}, para("body")},
			text:     "Title",
			children: []notion.BlockType{notion.TypeParagraph},
		},
		{
			name:     "list first",
			content:  []ast.Block{&ast.BulletList{Items: [][]ast.Block{{plain("a")}}}},
			text:     "",
			children: []notion.BlockType{notion.TypeBulleted},
		},
		{
			name:     "code first",
			content:  []ast.Block{&ast.CodeBlock{Text: "x := 1"}, para("after")},
			text:     "",
			children: []notion.BlockType{notion.TypeCode, notion.TypeParagraph},
		},
		{
			name:     "nested quote",
			content:  []ast.Block{para("outer"), &ast.BlockQuote{Content: []ast.Block{para("inner")}}},
			text:     "outer",
			children: []notion.BlockType{notion.TypeQuote},
		},
		{
			name:     "unsupported child dropped",
			content:  []ast.Block{para("a"), &ast.Unsupported{Name: "Table"}, para("b")},
			text:     "a",
			children: []notion.BlockType{notion.TypeParagraph},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := convertQuoteNode(t, &ast.BlockQuote{Content: tt.content})
			if got := notion.PlainText(q.Runs); got != tt.text {
				t.Errorf("quote text = %q, want %q", got, tt.text)
			}
			if len(q.Runs) == 0 {
				t.Error("quote rich text must never be empty")
			}
			if len(q.Children) != len(tt.children) {
				t.Fatalf("got %d children, want %d", len(q.Children), len(tt.children))
			}
			for i, want := range tt.children {
				if got := q.Children[i].Type(); got != want {
					t.Errorf("child %d type = %s, want %s", i, got, want)
				}
			}
		})
	}
}

func TestQuoteNestedText(t *testing.T) {
	q := convertQuoteNode(t, &ast.BlockQuote{Content: []ast.Block{
		para("outer"),
		&ast.BlockQuote{Content: []ast.Block{para("inner"), para("deeper")}},
	}})
	inner := q.Children[0].(*notion.Quote)
	if notion.PlainText(inner.Runs) != "inner" || len(inner.Children) != 1 {
		t.Errorf("inner quote = %q with %d children, want \"inner\" with 1",
			notion.PlainText(inner.Runs), len(inner.Children))
	}
}

func TestQuoteChildErrors(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		malformed bool
	}{
		{"malformed child propagates", &MalformedNodeError{Converter: "rule", Tag: "HorizontalRule"}, true},
		{"other child error is dropped", errors.New("boom"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegistry()
			r.Register(NewQuoteConverter(NewInlineConverter(), r))
			r.Register(NewParagraphConverter(NewInlineConverter()))
			r.Register(&stubConverter{name: "rule", tag: "HorizontalRule", err: tt.err})

			for _, content := range [][]ast.Block{
				{para("a"), &ast.HorizontalRule{}},
				{&ast.HorizontalRule{}},
			} {
				blocks, err := r.Convert(&ast.BlockQuote{Content: content})
				if tt.malformed {
					if !errors.Is(err, ErrMalformedNode) {
						t.Errorf("error = %v, want ErrMalformedNode", err)
					}
					continue
				}
				if err != nil {
					t.Fatalf("Convert() error = %v", err)
				}
				if q := blocks[0].(*notion.Quote); len(q.Children) != 0 {
					t.Errorf("got %d children, want failed child dropped", len(q.Children))
				}
			}
		})
	}
}
