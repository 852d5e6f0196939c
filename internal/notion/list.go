package notion

// ItemKind is the kind of a list item.
type ItemKind string

const (
	Bulleted ItemKind = "bulleted"
	Numbered ItemKind = "numbered"
	Todo     ItemKind = "todo"
)

// BlockType maps the item kind to its Notion block type.
func (k ItemKind) BlockType() BlockType {
	switch k {
	case Numbered:
		return TypeNumbered
	case Todo:
		return TypeToDo
	default:
		return TypeBulleted
	}
}

// ListItem is one entry of a List. Nested lists hang off Children.
type ListItem struct {
	Runs     []InlineElement
	Children []*List
	Kind     ItemKind
	checked  bool
}

// NewListItem creates an item; checked is kept only for todo items.
func NewListItem(kind ItemKind, checked bool, runs ...InlineElement) *ListItem {
	return &ListItem{Runs: runs, Kind: kind, checked: checked && kind == Todo}
}

func (i *ListItem) Checked() bool                 { return i.checked }
func (i *ListItem) RichText() []InlineElement     { return i.Runs }
func (i *ListItem) AddText(runs ...InlineElement) { i.Runs = append(i.Runs, runs...) }
func (i *ListItem) AddChild(children ...*List)    { i.Children = append(i.Children, children...) }

// Serialize returns the item's block with nested lists serialized into its
// children array.
func (i *ListItem) Serialize() Object {
	t := i.Kind.BlockType()
	body := map[string]any{
		"rich_text": serializeRuns(i.Runs),
		"color":     string(ColorDefault),
	}
	if t == TypeToDo {
		body["checked"] = i.checked
	}
	obj := newBlockObject(t, body)

	var children []Object
	for _, child := range i.Children {
		children = append(children, child.Serialize()...)
	}
	attachChildren(obj, t, children)
	return obj
}

// List groups the items of one source list. It is not a Notion block of
// its own: Serialize yields one sibling block per item.
type List struct {
	Kind  ItemKind
	Items []*ListItem
}

func NewList(kind ItemKind, items ...*ListItem) *List {
	return &List{Kind: kind, Items: items}
}

// Type reports the block type of the list's context kind. Items may differ,
// for example todo items inside a bulleted list.
func (l *List) Type() BlockType            { return l.Kind.BlockType() }
func (l *List) AddItem(items ...*ListItem) { l.Items = append(l.Items, items...) }

func (l *List) Serialize() []Object {
	out := make([]Object, 0, len(l.Items))
	for _, item := range l.Items {
		out = append(out, item.Serialize())
	}
	return out
}

// NewBulletedList builds a bulleted list of plain text items.
func NewBulletedList(texts ...string) *List {
	return listFromTexts(Bulleted, texts, nil)
}

// NewNumberedList builds a numbered list of plain text items.
func NewNumberedList(texts ...string) *List {
	return listFromTexts(Numbered, texts, nil)
}

// NewTodoList builds a todo list; the items at the checked indices are
// marked done.
func NewTodoList(texts []string, checked ...int) *List {
	return listFromTexts(Todo, texts, checked)
}

func listFromTexts(kind ItemKind, texts []string, checked []int) *List {
	done := make(map[int]bool, len(checked))
	for _, i := range checked {
		done[i] = true
	}
	l := NewList(kind)
	for i, text := range texts {
		l.AddItem(NewListItem(kind, done[i], NewText(text)))
	}
	return l
}
