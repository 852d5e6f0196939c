package notion

// InlineElement is anything that can appear in a rich_text array.
type InlineElement interface {
	// PlainText is the element's text without styling.
	PlainText() string
	ToWire() RichText
}

// Text is a styled run of text, optionally linked.
type Text struct {
	Content     string
	Annotations Annotations
	Link        string
}

// NewText returns an unstyled text run.
func NewText(content string) *Text {
	return &Text{Content: content}
}

func (t *Text) PlainText() string { return t.Content }

func (t *Text) ToWire() RichText {
	rt := RichText{
		Type:        RichTextText,
		Text:        &WireText{Content: t.Content},
		Annotations: t.Annotations.ToWire(),
		PlainText:   t.Content,
	}
	if t.Link != "" {
		rt.Text.Link = &WireLink{URL: t.Link}
	}
	return rt
}

// InlineEquation is a KaTeX expression rendered inside running text.
type InlineEquation struct {
	Expression  string
	Annotations Annotations
}

// NewInlineEquation returns an inline equation; the equation flag is always
// set on its annotations.
func NewInlineEquation(expr string, ann Annotations) *InlineEquation {
	ann.SetEquation(true)
	return &InlineEquation{Expression: expr, Annotations: ann}
}

func (e *InlineEquation) PlainText() string { return e.Expression }

func (e *InlineEquation) ToWire() RichText {
	return RichText{
		Type:        RichTextEquation,
		Equation:    &WireEquation{Expression: e.Expression},
		Annotations: e.Annotations.ToWire(),
		PlainText:   e.Expression,
	}
}

// InlineCode is a code span. It serializes as a text run with the code
// annotation forced on.
type InlineCode struct {
	Text        string
	Annotations Annotations
}

func NewInlineCode(text string, ann Annotations) *InlineCode {
	ann.SetCode(true)
	return &InlineCode{Text: text, Annotations: ann}
}

func (c *InlineCode) PlainText() string { return c.Text }

func (c *InlineCode) ToWire() RichText {
	ann := c.Annotations
	ann.SetCode(true)
	return RichText{
		Type:        RichTextText,
		Text:        &WireText{Content: c.Text},
		Annotations: ann.ToWire(),
		PlainText:   c.Text,
	}
}

// MentionType names the kind of object a mention references.
type MentionType string

const (
	MentionPage     MentionType = "page"
	MentionDatabase MentionType = "database"
	MentionUser     MentionType = "user"
	MentionDate     MentionType = "date"
)

// Mention references a page, database, user or date.
type Mention struct {
	MentionType MentionType
	Data        map[string]any
	Annotations Annotations
	Text        string
}

// NewMention builds a mention of the given type. For dates id is the ISO
// start date; for everything else it is the object id.
func NewMention(t MentionType, id, text string, ann Annotations) *Mention {
	data := map[string]any{"id": id}
	if t == MentionDate {
		data = map[string]any{"start": id}
	}
	return &Mention{MentionType: t, Data: data, Annotations: ann, Text: text}
}

func (m *Mention) PlainText() string { return m.Text }

func (m *Mention) ToWire() RichText {
	return RichText{
		Type:        RichTextMention,
		Mention:     map[string]any{string(m.MentionType): m.Data},
		Annotations: m.Annotations.ToWire(),
		PlainText:   m.Text,
	}
}

// MergeTexts coalesces adjacent Text runs whose annotations and link are
// equal. Other element kinds are barriers. The input is not modified.
func MergeTexts(elems []InlineElement) []InlineElement {
	out := make([]InlineElement, 0, len(elems))
	for _, el := range elems {
		cur, ok := el.(*Text)
		if ok && len(out) > 0 {
			if prev, ok := out[len(out)-1].(*Text); ok &&
				prev.Link == cur.Link && prev.Annotations.Equal(cur.Annotations) {
				merged := *prev
				merged.Content += cur.Content
				out[len(out)-1] = &merged
				continue
			}
		}
		out = append(out, el)
	}
	return out
}

// PlainText concatenates the plain text of every element.
func PlainText(elems []InlineElement) string {
	var s string
	for _, el := range elems {
		s += el.PlainText()
	}
	return s
}

// serializeRuns merges and serializes a run list. The result is never nil
// so that it encodes as [] rather than null.
func serializeRuns(elems []InlineElement) []RichText {
	merged := MergeTexts(elems)
	out := make([]RichText, 0, len(merged))
	for _, el := range merged {
		out = append(out, el.ToWire())
	}
	return out
}
