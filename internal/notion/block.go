package notion

import "fmt"

// BlockType is the Notion block "type" value.
type BlockType string

const (
	TypeParagraph BlockType = "paragraph"
	TypeHeading1  BlockType = "heading_1"
	TypeHeading2  BlockType = "heading_2"
	TypeHeading3  BlockType = "heading_3"
	TypeCode      BlockType = "code"
	TypeEquation  BlockType = "equation"
	TypeQuote     BlockType = "quote"
	TypeBulleted  BlockType = "bulleted_list_item"
	TypeNumbered  BlockType = "numbered_list_item"
	TypeToDo      BlockType = "to_do"
)

// Block is a node of the output document. Serialize returns the wire
// objects for the block; most blocks produce exactly one, a List produces
// one per item.
type Block interface {
	Type() BlockType
	Serialize() []Object
}

// RichTextBlock is a block that owns a rich text run list.
type RichTextBlock interface {
	Block
	RichText() []InlineElement
}

// SerializeAll flattens the wire objects of blocks, in order.
func SerializeAll(blocks []Block) []Object {
	out := make([]Object, 0, len(blocks))
	for _, b := range blocks {
		out = append(out, b.Serialize()...)
	}
	return out
}

// Paragraph is a plain text block.
type Paragraph struct {
	Runs []InlineElement
}

func NewParagraph(runs ...InlineElement) *Paragraph {
	return &Paragraph{Runs: runs}
}

// PlainParagraph returns a paragraph holding one unstyled text run.
func PlainParagraph(text string) *Paragraph {
	return NewParagraph(NewText(text))
}

func (p *Paragraph) Type() BlockType               { return TypeParagraph }
func (p *Paragraph) RichText() []InlineElement     { return p.Runs }
func (p *Paragraph) AddText(runs ...InlineElement) { p.Runs = append(p.Runs, runs...) }

func (p *Paragraph) Serialize() []Object {
	return []Object{newBlockObject(TypeParagraph, map[string]any{
		"rich_text": serializeRuns(p.Runs),
		"color":     string(ColorDefault),
	})}
}

// Heading is a level 1-3 heading. Notion has no deeper levels; NewHeading
// clamps anything outside the range.
type Heading struct {
	level int
	Runs  []InlineElement
}

func NewHeading(level int, runs ...InlineElement) *Heading {
	return &Heading{level: ClampHeadingLevel(level), Runs: runs}
}

// PlainHeading returns a heading holding one unstyled text run.
func PlainHeading(level int, text string) *Heading {
	return NewHeading(level, NewText(text))
}

// ClampHeadingLevel maps any source heading level onto 1..3.
func ClampHeadingLevel(level int) int {
	return min(max(level, 1), 3)
}

// Level returns the heading level, clamped to 1..3 even for a Heading not
// built with NewHeading.
func (h *Heading) Level() int                    { return ClampHeadingLevel(h.level) }
func (h *Heading) Type() BlockType               { return BlockType(fmt.Sprintf("heading_%d", h.Level())) }
func (h *Heading) RichText() []InlineElement     { return h.Runs }
func (h *Heading) AddText(runs ...InlineElement) { h.Runs = append(h.Runs, runs...) }

func (h *Heading) Serialize() []Object {
	return []Object{newBlockObject(h.Type(), map[string]any{
		"rich_text": serializeRuns(h.Runs),
		"color":     string(ColorDefault),
	})}
}

// Code is a code block.
type Code struct {
	Code     string
	Language string
	Caption  string
}

// NewCode returns a code block; language is resolved through the alias
// table, so unknown names become "plain text".
func NewCode(code, language, caption string) *Code {
	return &Code{Code: code, Language: LookupLanguage(language), Caption: caption}
}

func (c *Code) Type() BlockType { return TypeCode }

func (c *Code) Serialize() []Object {
	caption := []RichText{}
	if c.Caption != "" {
		caption = append(caption, NewText(c.Caption).ToWire())
	}
	lang := c.Language
	if lang == "" {
		lang = PlainTextLanguage
	}
	return []Object{newBlockObject(TypeCode, map[string]any{
		"caption":   caption,
		"rich_text": chunkText(c.Code),
		"language":  lang,
	})}
}

// chunkText splits s into text runs no longer than MaxTextLength runes.
func chunkText(s string) []RichText {
	runes := []rune(s)
	if len(runes) <= MaxTextLength {
		return []RichText{NewText(s).ToWire()}
	}
	var out []RichText
	for len(runes) > 0 {
		n := min(len(runes), MaxTextLength)
		out = append(out, NewText(string(runes[:n])).ToWire())
		runes = runes[n:]
	}
	return out
}

// Equation is a display (block level) equation.
type Equation struct {
	Expression string
	Number     string
}

func NewEquation(expr, number string) *Equation {
	return &Equation{Expression: expr, Number: number}
}

func (e *Equation) Type() BlockType { return TypeEquation }

func (e *Equation) Serialize() []Object {
	return []Object{newBlockObject(TypeEquation, map[string]any{
		"expression": e.Expression,
	})}
}

// NumberedBlocks returns the equation followed, when it is numbered, by a
// paragraph holding "(number)". Notion has no native equation numbers.
func (e *Equation) NumberedBlocks() []Block {
	blocks := []Block{e}
	if e.Number != "" {
		blocks = append(blocks, PlainParagraph("("+e.Number+")"))
	}
	return blocks
}

// Quote is a quote block: one rich text run list plus nested blocks.
type Quote struct {
	Runs     []InlineElement
	Children []Block
}

func NewQuote(runs ...InlineElement) *Quote {
	return &Quote{Runs: runs}
}

// PlainQuote returns a quote holding one unstyled text run.
func PlainQuote(text string) *Quote {
	return NewQuote(NewText(text))
}

func (q *Quote) Type() BlockType               { return TypeQuote }
func (q *Quote) RichText() []InlineElement     { return q.Runs }
func (q *Quote) AddText(runs ...InlineElement) { q.Runs = append(q.Runs, runs...) }
func (q *Quote) AddChild(children ...Block)    { q.Children = append(q.Children, children...) }

func (q *Quote) Serialize() []Object {
	obj := newBlockObject(TypeQuote, map[string]any{
		"rich_text": serializeRuns(q.Runs),
		"color":     string(ColorDefault),
	})
	attachChildren(obj, TypeQuote, SerializeAll(q.Children))
	return []Object{obj}
}
