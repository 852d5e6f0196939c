package convert

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/gerunddev/notionbridge/internal/ast"
	"github.com/gerunddev/notionbridge/internal/logger"
	"github.com/gerunddev/notionbridge/internal/notion"
)

func sampleDocument() *ast.Document {
	return &ast.Document{
		Meta: map[string]any{"title": "My Notes", "draft": true},
		Blocks: []ast.Block{
			&ast.Header{Level: 5, Content: ast.Words("Intro")},
			para("hello world"),
			&ast.Unsupported{Name: "Table"},
			&ast.CodeBlock{Attr: ast.Attr{Classes: []string{"py"}}, Text: "print(1)"},
			displayMathPara(`E=mc^2 \tag{1}`),
			&ast.BulletList{Items: [][]ast.Block{{plain("☐ A")}, {plain("☒ B")}, {plain("C")}}},
			&ast.BlockQuote{Content: []ast.Block{para("first"), para("second")}},
		},
	}
}

func blockTypes(blocks []notion.Block) []notion.BlockType {
	types := make([]notion.BlockType, len(blocks))
	for i, b := range blocks {
		types[i] = b.Type()
	}
	return types
}

func TestAssemblerConvert(t *testing.T) {
	var buf bytes.Buffer
	a := NewAssembler(nil, DefaultOptions(), logger.NewWithLevel(&buf, log.WarnLevel))

	res, err := a.Convert(sampleDocument())
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}

	want := []notion.BlockType{
		notion.TypeHeading1,
		notion.TypeHeading3,
		notion.TypeParagraph,
		notion.TypeCode,
		notion.TypeEquation,
		notion.TypeBulleted,
		notion.TypeQuote,
	}
	got := blockTypes(res.Blocks)
	if len(got) != len(want) {
		t.Fatalf("block types = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("block %d type = %s, want %s", i, got[i], want[i])
		}
	}
	if title := notion.PlainText(res.Blocks[0].(*notion.Heading).Runs); title != "My Notes" {
		t.Errorf("title heading = %q, want My Notes", title)
	}

	if len(res.Skipped) != 1 {
		t.Fatalf("got %d skipped nodes, want 1", len(res.Skipped))
	}
	skipped := res.Skipped[0]
	if skipped.Index != 2 || skipped.Tag != "Table" || !errors.Is(skipped, ErrUnsupportedNode) {
		t.Errorf("skipped = %v, want block 2 (Table) unsupported", skipped)
	}
	if !strings.Contains(buf.String(), "node skipped") {
		t.Errorf("log output %q should mention the skipped node", buf.String())
	}
	if res.Metadata != nil {
		t.Error("metadata should be omitted unless requested")
	}
}

func TestAssemblerOptions(t *testing.T) {
	doc := sampleDocument()

	res, err := NewAssembler(nil, Options{}, nil).Convert(doc)
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if res.Blocks[0].Type() != notion.TypeHeading3 {
		t.Errorf("first block = %s, want the document's own heading without a title", res.Blocks[0].Type())
	}

	res, err = NewAssembler(nil, Options{IncludeMetadata: true, EquationNumbers: true}, nil).Convert(doc)
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if res.Metadata["title"] != "My Notes" {
		t.Errorf("metadata = %v, want the document metadata", res.Metadata)
	}
	var numbered bool
	for _, b := range res.Blocks {
		if p, ok := b.(*notion.Paragraph); ok && notion.PlainText(p.Runs) == "(1)" {
			numbered = true
		}
	}
	if !numbered {
		t.Error("equation numbers enabled but no (1) paragraph found")
	}
}

func TestAssemblerNilDocument(t *testing.T) {
	if _, err := NewAssembler(nil, DefaultOptions(), nil).Convert(nil); !errors.Is(err, ErrNilDocument) {
		t.Errorf("Convert(nil) error = %v, want ErrNilDocument", err)
	}
}

func TestResultWire(t *testing.T) {
	res, err := NewAssembler(nil, DefaultOptions(), nil).Convert(&ast.Document{})
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	data, err := json.Marshal(res.Wire())
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	if string(data) != `{"children":[]}` {
		t.Errorf("empty document = %s, want {\"children\":[]}", data)
	}

	res, err = NewAssembler(nil, Options{IncludeMetadata: true}, nil).Convert(sampleDocument())
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	// heading, paragraph, code, equation, three list items, quote
	if n := len(res.Wire().Children); n != 8 {
		t.Errorf("got %d wire children, want 8", n)
	}

	res, err = NewAssembler(nil, Options{IncludeMetadata: true, EquationNumbers: true}, nil).Convert(sampleDocument())
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	out := res.Wire()
	if len(out.Children) != 9 {
		t.Fatalf("got %d wire children, want 9 with the equation number paragraph", len(out.Children))
	}
	if got := out.Children[3]["type"]; got != "equation" {
		t.Errorf("child 3 type = %v, want equation", got)
	}
	numberRuns := out.Children[4]["paragraph"].(map[string]any)["rich_text"].([]notion.RichText)
	if len(numberRuns) != 1 || numberRuns[0].PlainText != "(1)" {
		t.Errorf("child 4 = %+v, want the (1) paragraph", out.Children[4])
	}
	data, err = json.Marshal(out)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	if !strings.Contains(string(data), `"metadata":{"draft":true,"title":"My Notes"}`) {
		t.Errorf("wire output missing metadata: %s", data)
	}
}

func TestTraced(t *testing.T) {
	var buf bytes.Buffer
	traced := NewTraced(NewAssembler(nil, DefaultOptions(), nil), logger.NewWithLevel(&buf, log.InfoLevel), "notes.md")

	res, err := traced.Convert(sampleDocument())
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if len(res.Blocks) == 0 {
		t.Error("traced conversion returned no blocks")
	}
	out := buf.String()
	for _, want := range []string{"conversion started", "conversion completed", "notes.md"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}

	buf.Reset()
	if _, err := traced.Convert(nil); !errors.Is(err, ErrNilDocument) {
		t.Errorf("Convert(nil) error = %v, want ErrNilDocument", err)
	}
	if !strings.Contains(buf.String(), "conversion failed") {
		t.Errorf("log output missing failure:\n%s", buf.String())
	}
}

func TestConcurrentConversions(t *testing.T) {
	a := NewAssembler(nil, DefaultOptions(), nil)
	doc := sampleDocument()

	encode := func() (string, error) {
		res, err := a.Convert(doc)
		if err != nil {
			return "", err
		}
		data, err := json.Marshal(res.Wire())
		return string(data), err
	}

	want, err := encode()
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}

	const workers = 16
	results := make([]string, workers)
	errs := make([]error, workers)
	var wg sync.WaitGroup
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], errs[i] = encode()
		}()
	}
	wg.Wait()

	for i := range workers {
		if errs[i] != nil {
			t.Errorf("worker %d error = %v", i, errs[i])
			continue
		}
		if results[i] != want {
			t.Errorf("worker %d output differs from the serial conversion", i)
		}
	}

	if got := ast.Stringify(doc.Blocks[5].(*ast.BulletList).Items[0][0].(*ast.Plain).Content); got != "☐ A" {
		t.Errorf("source document was modified: %q", got)
	}
}
