package ast

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ErrPandocJSON is wrapped by every error returned from DecodePandocJSON.
var ErrPandocJSON = errors.New("invalid pandoc json")

// DecodeError reports where in the pandoc JSON tree decoding failed.
type DecodeError struct {
	Path string
	Msg  string
}

func (e *DecodeError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%v: %s", ErrPandocJSON, e.Msg)
	}
	return fmt.Sprintf("%v at %s: %s", ErrPandocJSON, e.Path, e.Msg)
}

func (e *DecodeError) Unwrap() error { return ErrPandocJSON }

func fail(path, format string, args ...any) error {
	return &DecodeError{Path: path, Msg: fmt.Sprintf(format, args...)}
}

// DecodePandocJSON reads the output of `pandoc -t json`.
func DecodePandocJSON(r io.Reader) (*Document, error) {
	var raw struct {
		Meta   map[string]any `json:"meta"`
		Blocks []any          `json:"blocks"`
	}
	dec := json.NewDecoder(r)
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPandocJSON, err)
	}
	if raw.Blocks == nil {
		return nil, fail("", "missing blocks")
	}

	blocks, err := loadBlocks(raw.Blocks, "blocks")
	if err != nil {
		return nil, err
	}

	meta := make(map[string]any, len(raw.Meta))
	for k, v := range raw.Meta {
		mv, err := loadMeta(v, "meta."+k)
		if err != nil {
			return nil, err
		}
		meta[k] = mv
	}
	return &Document{Meta: meta, Blocks: blocks}, nil
}

// tc splits a {"t": ..., "c": ...} object.
func tc(raw any, path string) (string, any, error) {
	m, ok := raw.(map[string]any)
	if !ok {
		return "", nil, fail(path, "expected object with t/c")
	}
	t, ok := m["t"].(string)
	if !ok {
		return "", nil, fail(path, "missing t")
	}
	return t, m["c"], nil
}

func loadArray(raw any, n int, path string) ([]any, error) {
	arr, ok := raw.([]any)
	if !ok {
		return nil, fail(path, "expected array")
	}
	if n >= 0 && len(arr) != n {
		return nil, fail(path, "expected %d elements, got %d", n, len(arr))
	}
	return arr, nil
}

func loadString(raw any, path string) (string, error) {
	s, ok := raw.(string)
	if !ok {
		return "", fail(path, "expected string")
	}
	return s, nil
}

func loadInt(raw any, path string) (int, error) {
	n, ok := raw.(json.Number)
	if !ok {
		return 0, fail(path, "expected number")
	}
	i, err := n.Int64()
	if err != nil {
		return 0, fail(path, "expected integer: %v", err)
	}
	return int(i), nil
}

func loadAttr(raw any, path string) (Attr, error) {
	arr, err := loadArray(raw, 3, path)
	if err != nil {
		return Attr{}, err
	}
	var a Attr
	if a.ID, err = loadString(arr[0], path+"[0]"); err != nil {
		return Attr{}, err
	}
	classes, err := loadArray(arr[1], -1, path+"[1]")
	if err != nil {
		return Attr{}, err
	}
	for i, c := range classes {
		s, err := loadString(c, fmt.Sprintf("%s[1][%d]", path, i))
		if err != nil {
			return Attr{}, err
		}
		a.Classes = append(a.Classes, s)
	}
	kvs, err := loadArray(arr[2], -1, path+"[2]")
	if err != nil {
		return Attr{}, err
	}
	for i, kv := range kvs {
		p := fmt.Sprintf("%s[2][%d]", path, i)
		pair, err := loadArray(kv, 2, p)
		if err != nil {
			return Attr{}, err
		}
		k, err := loadString(pair[0], p+"[0]")
		if err != nil {
			return Attr{}, err
		}
		v, err := loadString(pair[1], p+"[1]")
		if err != nil {
			return Attr{}, err
		}
		a.Attributes = append(a.Attributes, KeyVal{Key: k, Value: v})
	}
	return a, nil
}

func loadBlocks(raw any, path string) ([]Block, error) {
	arr, err := loadArray(raw, -1, path)
	if err != nil {
		return nil, err
	}
	out := make([]Block, 0, len(arr))
	for i, item := range arr {
		b, err := loadBlock(item, fmt.Sprintf("%s[%d]", path, i))
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}

func loadItems(raw any, path string) ([][]Block, error) {
	arr, err := loadArray(raw, -1, path)
	if err != nil {
		return nil, err
	}
	items := make([][]Block, 0, len(arr))
	for i, item := range arr {
		blocks, err := loadBlocks(item, fmt.Sprintf("%s[%d]", path, i))
		if err != nil {
			return nil, err
		}
		items = append(items, blocks)
	}
	return items, nil
}

func loadBlock(raw any, path string) (Block, error) {
	t, c, err := tc(raw, path)
	if err != nil {
		return nil, err
	}
	cp := path + ".c"

	switch t {
	case "Plain", "Para":
		inlines, err := loadInlines(c, cp)
		if err != nil {
			return nil, err
		}
		if t == "Plain" {
			return &Plain{Content: inlines}, nil
		}
		return &Para{Content: inlines}, nil
	case "LineBlock":
		lines, err := loadArray(c, -1, cp)
		if err != nil {
			return nil, err
		}
		para := &Para{}
		for i, line := range lines {
			inlines, err := loadInlines(line, fmt.Sprintf("%s[%d]", cp, i))
			if err != nil {
				return nil, err
			}
			if i > 0 {
				para.Content = append(para.Content, &LineBreak{})
			}
			para.Content = append(para.Content, inlines...)
		}
		return para, nil
	case "Header":
		arr, err := loadArray(c, 3, cp)
		if err != nil {
			return nil, err
		}
		level, err := loadInt(arr[0], cp+"[0]")
		if err != nil {
			return nil, err
		}
		attr, err := loadAttr(arr[1], cp+"[1]")
		if err != nil {
			return nil, err
		}
		inlines, err := loadInlines(arr[2], cp+"[2]")
		if err != nil {
			return nil, err
		}
		return &Header{Level: level, Attr: attr, Content: inlines}, nil
	case "CodeBlock":
		arr, err := loadArray(c, 2, cp)
		if err != nil {
			return nil, err
		}
		attr, err := loadAttr(arr[0], cp+"[0]")
		if err != nil {
			return nil, err
		}
		text, err := loadString(arr[1], cp+"[1]")
		if err != nil {
			return nil, err
		}
		return &CodeBlock{Attr: attr, Text: text}, nil
	case "RawBlock":
		arr, err := loadArray(c, 2, cp)
		if err != nil {
			return nil, err
		}
		format, err := loadString(arr[0], cp+"[0]")
		if err != nil {
			return nil, err
		}
		text, err := loadString(arr[1], cp+"[1]")
		if err != nil {
			return nil, err
		}
		return &RawBlock{Format: format, Text: text}, nil
	case "BlockQuote":
		blocks, err := loadBlocks(c, cp)
		if err != nil {
			return nil, err
		}
		return &BlockQuote{Content: blocks}, nil
	case "BulletList":
		items, err := loadItems(c, cp)
		if err != nil {
			return nil, err
		}
		return &BulletList{Items: items}, nil
	case "OrderedList":
		arr, err := loadArray(c, 2, cp)
		if err != nil {
			return nil, err
		}
		listAttrs, err := loadArray(arr[0], 3, cp+"[0]")
		if err != nil {
			return nil, err
		}
		start, err := loadInt(listAttrs[0], cp+"[0][0]")
		if err != nil {
			return nil, err
		}
		items, err := loadItems(arr[1], cp+"[1]")
		if err != nil {
			return nil, err
		}
		return &OrderedList{Start: start, Items: items}, nil
	case "HorizontalRule":
		return &HorizontalRule{}, nil
	case "Div":
		arr, err := loadArray(c, 2, cp)
		if err != nil {
			return nil, err
		}
		attr, err := loadAttr(arr[0], cp+"[0]")
		if err != nil {
			return nil, err
		}
		blocks, err := loadBlocks(arr[1], cp+"[1]")
		if err != nil {
			return nil, err
		}
		return &Div{Attr: attr, Content: blocks}, nil
	default:
		return &Unsupported{Name: t}, nil
	}
}

func loadInlines(raw any, path string) ([]Inline, error) {
	arr, err := loadArray(raw, -1, path)
	if err != nil {
		return nil, err
	}
	out := make([]Inline, 0, len(arr))
	for i, item := range arr {
		in, err := loadInline(item, fmt.Sprintf("%s[%d]", path, i))
		if err != nil {
			return nil, err
		}
		out = append(out, in)
	}
	return out, nil
}

func loadInline(raw any, path string) (Inline, error) {
	t, c, err := tc(raw, path)
	if err != nil {
		return nil, err
	}
	cp := path + ".c"

	switch t {
	case "Str":
		s, err := loadString(c, cp)
		if err != nil {
			return nil, err
		}
		return &Str{Text: s}, nil
	case "Space":
		return &Space{}, nil
	case "SoftBreak":
		return &SoftBreak{}, nil
	case "LineBreak":
		return &LineBreak{}, nil
	case "Emph", "Strong", "Strikeout", "Underline", "SmallCaps", "Superscript", "Subscript":
		inlines, err := loadInlines(c, cp)
		if err != nil {
			return nil, err
		}
		switch t {
		case "Emph":
			return &Emph{Content: inlines}, nil
		case "Strong":
			return &Strong{Content: inlines}, nil
		case "Strikeout":
			return &Strikeout{Content: inlines}, nil
		case "Underline":
			return &Underline{Content: inlines}, nil
		case "SmallCaps":
			return &SmallCaps{Content: inlines}, nil
		}
		// Notion has no super/subscript; keep the text.
		return &Span{Content: inlines}, nil
	case "Quoted":
		arr, err := loadArray(c, 2, cp)
		if err != nil {
			return nil, err
		}
		qt, _, err := tc(arr[0], cp+"[0]")
		if err != nil {
			return nil, err
		}
		inlines, err := loadInlines(arr[1], cp+"[1]")
		if err != nil {
			return nil, err
		}
		q := &Quoted{Type: DoubleQuote, Content: inlines}
		if qt == "SingleQuote" {
			q.Type = SingleQuote
		}
		return q, nil
	case "Cite":
		arr, err := loadArray(c, 2, cp)
		if err != nil {
			return nil, err
		}
		inlines, err := loadInlines(arr[1], cp+"[1]")
		if err != nil {
			return nil, err
		}
		return &Span{Content: inlines}, nil
	case "Code":
		arr, err := loadArray(c, 2, cp)
		if err != nil {
			return nil, err
		}
		attr, err := loadAttr(arr[0], cp+"[0]")
		if err != nil {
			return nil, err
		}
		text, err := loadString(arr[1], cp+"[1]")
		if err != nil {
			return nil, err
		}
		return &Code{Attr: attr, Text: text}, nil
	case "Math":
		arr, err := loadArray(c, 2, cp)
		if err != nil {
			return nil, err
		}
		mt, _, err := tc(arr[0], cp+"[0]")
		if err != nil {
			return nil, err
		}
		text, err := loadString(arr[1], cp+"[1]")
		if err != nil {
			return nil, err
		}
		m := &Math{Type: InlineMath, Text: text}
		if mt == "DisplayMath" {
			m.Type = DisplayMath
		}
		return m, nil
	case "RawInline":
		arr, err := loadArray(c, 2, cp)
		if err != nil {
			return nil, err
		}
		format, err := loadString(arr[0], cp+"[0]")
		if err != nil {
			return nil, err
		}
		text, err := loadString(arr[1], cp+"[1]")
		if err != nil {
			return nil, err
		}
		return &RawInline{Format: format, Text: text}, nil
	case "Link", "Image":
		arr, err := loadArray(c, 3, cp)
		if err != nil {
			return nil, err
		}
		attr, err := loadAttr(arr[0], cp+"[0]")
		if err != nil {
			return nil, err
		}
		inlines, err := loadInlines(arr[1], cp+"[1]")
		if err != nil {
			return nil, err
		}
		target, err := loadArray(arr[2], 2, cp+"[2]")
		if err != nil {
			return nil, err
		}
		u, err := loadString(target[0], cp+"[2][0]")
		if err != nil {
			return nil, err
		}
		title, err := loadString(target[1], cp+"[2][1]")
		if err != nil {
			return nil, err
		}
		if t == "Image" {
			return &Image{Attr: attr, Content: inlines, URL: u, Title: title}, nil
		}
		if m, ok := ParseMention(u, Stringify(inlines)); ok {
			return m, nil
		}
		return &Link{Attr: attr, Content: inlines, URL: u, Title: title}, nil
	case "Span":
		arr, err := loadArray(c, 2, cp)
		if err != nil {
			return nil, err
		}
		attr, err := loadAttr(arr[0], cp+"[0]")
		if err != nil {
			return nil, err
		}
		inlines, err := loadInlines(arr[1], cp+"[1]")
		if err != nil {
			return nil, err
		}
		return &Span{Attr: attr, Content: inlines}, nil
	default:
		return &Unsupported{Name: t}, nil
	}
}

// loadMeta flattens pandoc metadata values into plain Go values: strings,
// bools, []any and map[string]any. Inline and block values become text.
func loadMeta(raw any, path string) (any, error) {
	t, c, err := tc(raw, path)
	if err != nil {
		return nil, err
	}
	switch t {
	case "MetaString":
		return loadString(c, path+".c")
	case "MetaBool":
		b, ok := c.(bool)
		if !ok {
			return nil, fail(path+".c", "expected bool")
		}
		return b, nil
	case "MetaInlines":
		inlines, err := loadInlines(c, path+".c")
		if err != nil {
			return nil, err
		}
		return Stringify(inlines), nil
	case "MetaBlocks":
		blocks, err := loadBlocks(c, path+".c")
		if err != nil {
			return nil, err
		}
		var text string
		for i, b := range blocks {
			ic, ok := b.(InlineContainer)
			if !ok {
				continue
			}
			if i > 0 {
				text += "\n"
			}
			text += Stringify(ic.Inlines())
		}
		return text, nil
	case "MetaList":
		arr, err := loadArray(c, -1, path+".c")
		if err != nil {
			return nil, err
		}
		out := make([]any, 0, len(arr))
		for i, item := range arr {
			v, err := loadMeta(item, fmt.Sprintf("%s.c[%d]", path, i))
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	case "MetaMap":
		m, ok := c.(map[string]any)
		if !ok {
			return nil, fail(path+".c", "expected object")
		}
		out := make(map[string]any, len(m))
		for k, v := range m {
			mv, err := loadMeta(v, path+".c."+k)
			if err != nil {
				return nil, err
			}
			out[k] = mv
		}
		return out, nil
	default:
		return nil, fail(path, "unknown meta value %q", t)
	}
}
