package parser

import (
	"testing"

	"github.com/gerunddev/notionbridge/internal/ast"
)

func parseMD(t *testing.T, src string) *ast.Document {
	t.Helper()
	doc, err := Parse([]byte(src), Markdown)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	return doc
}

// findInline returns the first inline of type T in a depth-first walk.
func findInline[T ast.Inline](inlines []ast.Inline) (T, bool) {
	var zero T
	for _, in := range inlines {
		if v, ok := in.(T); ok {
			return v, true
		}
		var children []ast.Inline
		switch n := in.(type) {
		case *ast.Strong:
			children = n.Content
		case *ast.Emph:
			children = n.Content
		case *ast.Strikeout:
			children = n.Content
		case *ast.Link:
			children = n.Content
		}
		if v, ok := findInline[T](children); ok {
			return v, true
		}
	}
	return zero, false
}

func TestMarkdownBlocks(t *testing.T) {
	src := "# Title\n\nSome text.\n\n> quoted\n\n---\n\n1. one\n2. two\n"
	doc := parseMD(t, src)

	want := []string{"Header", "Para", "BlockQuote", "HorizontalRule", "OrderedList"}
	if len(doc.Blocks) != len(want) {
		t.Fatalf("got %d blocks, want %d", len(doc.Blocks), len(want))
	}
	for i, tag := range want {
		if got := doc.Blocks[i].Tag(); got != tag {
			t.Errorf("block %d = %s, want %s", i, got, tag)
		}
	}

	h := doc.Blocks[0].(*ast.Header)
	if h.Level != 1 || ast.Stringify(h.Content) != "Title" {
		t.Errorf("heading = level %d %q", h.Level, ast.Stringify(h.Content))
	}
	ol := doc.Blocks[4].(*ast.OrderedList)
	if ol.Start != 1 || len(ol.Items) != 2 {
		t.Errorf("ordered list start %d with %d items, want 1 with 2", ol.Start, len(ol.Items))
	}
}

func TestMarkdownInlines(t *testing.T) {
	doc := parseMD(t, "Some **bold *italic* bold** and ~~gone~~ `code` [link](https://go.dev).\n")
	p := doc.Blocks[0].(*ast.Para)

	if got := ast.Stringify(p.Content); got != "Some bold italic bold and gone code link." {
		t.Errorf("text = %q", got)
	}
	strong, ok := findInline[*ast.Strong](p.Content)
	if !ok {
		t.Fatal("no Strong node")
	}
	if _, ok := findInline[*ast.Emph](strong.Content); !ok {
		t.Error("italic should be nested in bold")
	}
	if _, ok := findInline[*ast.Strikeout](p.Content); !ok {
		t.Error("no Strikeout node")
	}
	if code, ok := findInline[*ast.Code](p.Content); !ok || code.Text != "code" {
		t.Error("no Code node with text code")
	}
	if link, ok := findInline[*ast.Link](p.Content); !ok || link.URL != "https://go.dev" {
		t.Error("no Link to https://go.dev")
	}
}

func TestMarkdownMention(t *testing.T) {
	doc := parseMD(t, "See [Roadmap](notion://page/abc123).\n")
	m, ok := findInline[*ast.Mention](doc.Blocks[0].(*ast.Para).Content)
	if !ok {
		t.Fatal("no Mention node")
	}
	if m.Type != "page" || m.ID != "abc123" || m.Label != "Roadmap" {
		t.Errorf("mention = %+v", m)
	}
}

func TestMarkdownMath(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		display bool
		expr    string
	}{
		{"inline", "Euler: $e^{i\\pi}+1=0$ done\n", false, `e^{i\pi}+1=0`},
		{"display one line", "$$E=mc^2$$\n", true, "E=mc^2"},
		{"display multi line", "$$\n\\begin{aligned}\na &= b\n\\end{aligned}\n$$\n", true, "\\begin{aligned}\na &= b\n\\end{aligned}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := parseMD(t, tt.src)
			p := doc.Blocks[0].(*ast.Para)
			m, ok := findInline[*ast.Math](p.Content)
			if !ok {
				t.Fatalf("no Math node in %q", ast.Stringify(p.Content))
			}
			if (m.Type == ast.DisplayMath) != tt.display {
				t.Errorf("display = %v, want %v", m.Type == ast.DisplayMath, tt.display)
			}
			if m.Text != tt.expr {
				t.Errorf("expression = %q, want %q", m.Text, tt.expr)
			}
		})
	}
}

func TestMarkdownDollarsWithoutMath(t *testing.T) {
	for _, src := range []string{"It costs $5 and $10.\n", "A lone $ sign\n", "$ not math$\n"} {
		doc := parseMD(t, src)
		p := doc.Blocks[0].(*ast.Para)
		if _, ok := findInline[*ast.Math](p.Content); ok {
			t.Errorf("%q should not contain math", src)
		}
	}
}

func TestMarkdownTaskList(t *testing.T) {
	doc := parseMD(t, "- [ ] A\n- [x] B\n- C\n")
	list, ok := doc.Blocks[0].(*ast.BulletList)
	if !ok {
		t.Fatalf("block = %T, want *ast.BulletList", doc.Blocks[0])
	}
	want := []string{"☐ A", "☒ B", "C"}
	if len(list.Items) != len(want) {
		t.Fatalf("got %d items, want %d", len(list.Items), len(want))
	}
	for i, w := range want {
		item := list.Items[i][0].(ast.InlineContainer)
		if got := ast.Stringify(item.Inlines()); got != w {
			t.Errorf("item %d = %q, want %q", i, got, w)
		}
	}
}

func TestMarkdownFencedCode(t *testing.T) {
	doc := parseMD(t, "```go caption=\"main.go\"\nfmt.Println(\"hi\")\n```\n\n```\nraw\n```\n")
	cb := doc.Blocks[0].(*ast.CodeBlock)
	if cb.Text != `fmt.Println("hi")` {
		t.Errorf("code = %q", cb.Text)
	}
	if !cb.Attr.HasClass("go") {
		t.Errorf("classes = %v, want go", cb.Attr.Classes)
	}
	if caption, _ := cb.Attr.Get("caption"); caption != "main.go" {
		t.Errorf("caption = %q, want main.go", caption)
	}

	bare := doc.Blocks[1].(*ast.CodeBlock)
	if bare.Text != "raw" || len(bare.Attr.Classes) != 0 {
		t.Errorf("bare fence = %+v", bare)
	}
}

func TestMarkdownFrontMatter(t *testing.T) {
	src := "---\ntitle: My Notes\ntags: [a, b]\ndate: 2024-05-01\n---\n# Heading\n"
	doc := parseMD(t, src)

	if doc.Title() != "My Notes" {
		t.Errorf("Title() = %q, want My Notes", doc.Title())
	}
	tags, ok := doc.Meta["tags"].([]any)
	if !ok || len(tags) != 2 || tags[0] != "a" {
		t.Errorf("tags = %#v, want [a b]", doc.Meta["tags"])
	}
	if doc.Meta["date"] != "2024-05-01" {
		t.Errorf("date = %#v, want 2024-05-01", doc.Meta["date"])
	}
	if len(doc.Blocks) != 1 || doc.Blocks[0].Tag() != "Header" {
		t.Errorf("body blocks = %d, want the heading only", len(doc.Blocks))
	}
}

func TestSplitFrontMatter(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		hasMeta  bool
		wantBody string
	}{
		{"none", "# Title\n", false, "# Title\n"},
		{"dots closer", "---\na: 1\n...\nbody\n", true, "body\n"},
		{"byte order mark", "\ufeff---\na: 1\n---\nbody", true, "body"},
		{"unterminated", "---\na: 1\nbody\n", false, "---\na: 1\nbody\n"},
		{"empty header", "---\n---\nbody\n", true, "body\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta, body, err := splitFrontMatter([]byte(tt.src))
			if err != nil {
				t.Fatalf("splitFrontMatter() error = %v", err)
			}
			if (meta != nil) != tt.hasMeta {
				t.Errorf("meta = %v, want present=%v", meta, tt.hasMeta)
			}
			if string(body) != tt.wantBody {
				t.Errorf("body = %q, want %q", body, tt.wantBody)
			}
		})
	}
}
