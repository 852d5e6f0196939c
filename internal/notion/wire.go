package notion

// Object is one serialized Notion block, ready for JSON encoding.
type Object map[string]any

// WireAnnotations is Notion's annotation object.
type WireAnnotations struct {
	Bold          bool  `json:"bold"`
	Italic        bool  `json:"italic"`
	Strikethrough bool  `json:"strikethrough"`
	Underline     bool  `json:"underline"`
	Code          bool  `json:"code"`
	Color         Color `json:"color"`
}

// WireLink is the link target of a text run.
type WireLink struct {
	URL string `json:"url"`
}

// WireText is the "text" payload of a rich text object. Link is encoded as
// null when absent.
type WireText struct {
	Content string    `json:"content"`
	Link    *WireLink `json:"link"`
}

// WireEquation is the "equation" payload of a rich text object.
type WireEquation struct {
	Expression string `json:"expression"`
}

// RichText is one element of a Notion rich_text array.
type RichText struct {
	Type        string          `json:"type"`
	Text        *WireText       `json:"text,omitempty"`
	Equation    *WireEquation   `json:"equation,omitempty"`
	Mention     map[string]any  `json:"mention,omitempty"`
	Annotations WireAnnotations `json:"annotations"`
	PlainText   string          `json:"plain_text"`
}

// Rich text type names.
const (
	RichTextText     = "text"
	RichTextEquation = "equation"
	RichTextMention  = "mention"
)

// MaxTextLength is the longest content Notion accepts in one text object.
const MaxTextLength = 2000

func newBlockObject(t BlockType, body map[string]any) Object {
	return Object{
		"object":  "block",
		"type":    string(t),
		string(t): body,
	}
}

// attachChildren stores serialized children inside the type body and marks
// the block as having children.
func attachChildren(obj Object, t BlockType, children []Object) {
	if len(children) == 0 {
		return
	}
	obj["has_children"] = true
	obj[string(t)].(map[string]any)["children"] = children
}
