// Package ast defines the document tree consumed by the Notion converter.
//
// The node set follows the pandoc document model: a Document is a list of
// Block nodes, and blocks that carry text hold a list of Inline nodes.
// Nodes are plain values; converters must treat them as read-only.
package ast

// Node is implemented by every block and inline node.
type Node interface {
	// Tag returns the pandoc constructor name ("Para", "Str", ...).
	Tag() string
}

// Block is a block-level node.
type Block interface {
	Node
	block()
}

// Inline is an inline node.
type Inline interface {
	Node
	inline()
}

// InlineContainer is implemented by blocks whose content is a run of inlines.
type InlineContainer interface {
	Block
	Inlines() []Inline
}

// Document is a parsed document.
type Document struct {
	Meta   map[string]any
	Blocks []Block
}

// Title returns the "title" metadata field, if it is a non-empty string.
func (d *Document) Title() string {
	if d == nil || d.Meta == nil {
		return ""
	}
	s, _ := d.Meta["title"].(string)
	return s
}

// KeyVal is one attribute key/value pair.
type KeyVal struct {
	Key   string
	Value string
}

// Attr is the pandoc (identifier, classes, attributes) triple.
type Attr struct {
	ID         string
	Classes    []string
	Attributes []KeyVal
}

// Get returns the value of the named attribute.
func (a Attr) Get(key string) (string, bool) {
	for _, kv := range a.Attributes {
		if kv.Key == key {
			return kv.Value, true
		}
	}
	return "", false
}

// HasClass reports whether the class list contains c.
func (a Attr) HasClass(c string) bool {
	for _, class := range a.Classes {
		if class == c {
			return true
		}
	}
	return false
}

// Blocks

type Plain struct {
	Content []Inline
}

type Para struct {
	Content []Inline
}

type Header struct {
	Level   int
	Attr    Attr
	Content []Inline
}

type CodeBlock struct {
	Attr Attr
	Text string
}

type BlockQuote struct {
	Content []Block
}

type BulletList struct {
	Items [][]Block
}

type OrderedList struct {
	Start int
	Items [][]Block
}

type HorizontalRule struct{}

type RawBlock struct {
	Format string
	Text   string
}

type Div struct {
	Attr    Attr
	Content []Block
}

func (*Plain) Tag() string          { return "Plain" }
func (*Para) Tag() string           { return "Para" }
func (*Header) Tag() string         { return "Header" }
func (*CodeBlock) Tag() string      { return "CodeBlock" }
func (*BlockQuote) Tag() string     { return "BlockQuote" }
func (*BulletList) Tag() string     { return "BulletList" }
func (*OrderedList) Tag() string    { return "OrderedList" }
func (*HorizontalRule) Tag() string { return "HorizontalRule" }
func (*RawBlock) Tag() string       { return "RawBlock" }
func (*Div) Tag() string            { return "Div" }

func (*Plain) block()          {}
func (*Para) block()           {}
func (*Header) block()         {}
func (*CodeBlock) block()      {}
func (*BlockQuote) block()     {}
func (*BulletList) block()     {}
func (*OrderedList) block()    {}
func (*HorizontalRule) block() {}
func (*RawBlock) block()       {}
func (*Div) block()            {}

func (p *Plain) Inlines() []Inline  { return p.Content }
func (p *Para) Inlines() []Inline   { return p.Content }
func (h *Header) Inlines() []Inline { return h.Content }

// Inlines

type Str struct {
	Text string
}

type Space struct{}

type SoftBreak struct{}

type LineBreak struct{}

type Emph struct {
	Content []Inline
}

type Strong struct {
	Content []Inline
}

type Strikeout struct {
	Content []Inline
}

type Underline struct {
	Content []Inline
}

type SmallCaps struct {
	Content []Inline
}

type Span struct {
	Attr    Attr
	Content []Inline
}

// QuoteType distinguishes single from double smart quotes.
type QuoteType int

const (
	SingleQuote QuoteType = iota
	DoubleQuote
)

type Quoted struct {
	Type    QuoteType
	Content []Inline
}

type Code struct {
	Attr Attr
	Text string
}

// MathType distinguishes $inline$ from $$display$$ math.
type MathType int

const (
	InlineMath MathType = iota
	DisplayMath
)

type Math struct {
	Type MathType
	Text string
}

type Link struct {
	Attr    Attr
	Content []Inline
	URL     string
	Title   string
}

type Image struct {
	Attr    Attr
	Content []Inline
	URL     string
	Title   string
}

type RawInline struct {
	Format string
	Text   string
}

// Mention references a Notion object (page, database, user or date).
type Mention struct {
	Type  string
	ID    string
	Label string
}

func (*Str) Tag() string       { return "Str" }
func (*Space) Tag() string     { return "Space" }
func (*SoftBreak) Tag() string { return "SoftBreak" }
func (*LineBreak) Tag() string { return "LineBreak" }
func (*Emph) Tag() string      { return "Emph" }
func (*Strong) Tag() string    { return "Strong" }
func (*Strikeout) Tag() string { return "Strikeout" }
func (*Underline) Tag() string { return "Underline" }
func (*SmallCaps) Tag() string { return "SmallCaps" }
func (*Span) Tag() string      { return "Span" }
func (*Quoted) Tag() string    { return "Quoted" }
func (*Code) Tag() string      { return "Code" }
func (*Math) Tag() string      { return "Math" }
func (*Link) Tag() string      { return "Link" }
func (*Image) Tag() string     { return "Image" }
func (*RawInline) Tag() string { return "RawInline" }
func (*Mention) Tag() string   { return "Mention" }

func (*Str) inline()       {}
func (*Space) inline()     {}
func (*SoftBreak) inline() {}
func (*LineBreak) inline() {}
func (*Emph) inline()      {}
func (*Strong) inline()    {}
func (*Strikeout) inline() {}
func (*Underline) inline() {}
func (*SmallCaps) inline() {}
func (*Span) inline()      {}
func (*Quoted) inline()    {}
func (*Code) inline()      {}
func (*Math) inline()      {}
func (*Link) inline()      {}
func (*Image) inline()     {}
func (*RawInline) inline() {}
func (*Mention) inline()   {}

// Words splits text into Str and Space nodes the way pandoc tokenizes
// running text. Runs of spaces collapse into a single Space.
func Words(text string) []Inline {
	var out []Inline
	start := -1
	for i, r := range text {
		if r == ' ' || r == '\t' {
			if start >= 0 {
				out = append(out, &Str{Text: text[start:i]})
				start = -1
			}
			if len(out) == 0 || !isSpace(out[len(out)-1]) {
				out = append(out, &Space{})
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		out = append(out, &Str{Text: text[start:]})
	}
	return out
}

func isSpace(n Inline) bool {
	_, ok := n.(*Space)
	return ok
}

// Stringify returns the plain text of a run of inlines.
func Stringify(inlines []Inline) string {
	var b []byte
	var walk func([]Inline)
	walk = func(ins []Inline) {
		for _, in := range ins {
			switch n := in.(type) {
			case *Str:
				b = append(b, n.Text...)
			case *Space:
				b = append(b, ' ')
			case *SoftBreak, *LineBreak:
				b = append(b, '\n')
			case *Code:
				b = append(b, n.Text...)
			case *Math:
				b = append(b, n.Text...)
			case *Mention:
				b = append(b, n.Label...)
			case *RawInline:
				b = append(b, n.Text...)
			case *Emph:
				walk(n.Content)
			case *Strong:
				walk(n.Content)
			case *Strikeout:
				walk(n.Content)
			case *Underline:
				walk(n.Content)
			case *SmallCaps:
				walk(n.Content)
			case *Span:
				walk(n.Content)
			case *Quoted:
				walk(n.Content)
			case *Link:
				walk(n.Content)
			case *Image:
				walk(n.Content)
			}
		}
	}
	walk(inlines)
	return string(b)
}

// Unsupported stands in for a pandoc construct with no counterpart in this
// package (tables, figures, notes, ...). It is both a Block and an Inline so
// that decoding never fails on unknown content; converters reject or skip it.
type Unsupported struct {
	Name string
}

func (u *Unsupported) Tag() string { return u.Name }
func (*Unsupported) block()        {}
func (*Unsupported) inline()       {}
