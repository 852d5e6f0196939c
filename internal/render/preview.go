// Package render draws converted Notion blocks for the terminal.
package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"
	"github.com/gerunddev/notionbridge/internal/notion"
	"github.com/gerunddev/notionbridge/internal/styles"
)

// Tree renders blocks as a tree rooted at title. Nested quote and list
// children hang below their parent.
func Tree(title string, blocks []notion.Block) string {
	t := tree.Root(styles.TitleStyle.Render(title)).
		Enumerator(tree.RoundedEnumerator).
		EnumeratorStyle(styles.BranchStyle)
	for _, b := range blocks {
		addBlock(t, b)
	}
	return t.String()
}

func addBlock(parent *tree.Tree, b notion.Block) {
	switch b := b.(type) {
	case *notion.List:
		for _, item := range b.Items {
			addItem(parent, item)
		}
	case *notion.Quote:
		node := tree.Root(Label(b))
		for _, child := range b.Children {
			addBlock(node, child)
		}
		if len(b.Children) == 0 {
			parent.Child(Label(b))
			return
		}
		parent.Child(node)
	default:
		parent.Child(Label(b))
	}
}

func addItem(parent *tree.Tree, item *notion.ListItem) {
	label := itemLabel(item)
	if len(item.Children) == 0 {
		parent.Child(label)
		return
	}
	node := tree.Root(label)
	for _, child := range item.Children {
		addBlock(node, child)
	}
	parent.Child(node)
}

// Label is a one-line styled summary of a block.
func Label(b notion.Block) string {
	kind := styles.BlockLabel(b.Type()).Render(string(b.Type()))
	switch b := b.(type) {
	case *notion.Code:
		return fmt.Sprintf("%s %s %s", kind, styles.DimStyle.Render("("+b.Language+")"), firstLine(b.Code))
	case *notion.Equation:
		s := fmt.Sprintf("%s %s", kind, styles.EquationStyle.Render(b.Expression))
		if b.Number != "" {
			s += styles.DimStyle.Render(" (" + b.Number + ")")
		}
		return s
	case *notion.List:
		return fmt.Sprintf("%s %s", kind, styles.DimStyle.Render(fmt.Sprintf("%d items", len(b.Items))))
	case notion.RichTextBlock:
		return fmt.Sprintf("%s %s", kind, RichText(b.RichText()))
	}
	return kind
}

func itemLabel(item *notion.ListItem) string {
	marker := "•"
	switch {
	case item.Kind == notion.Todo && item.Checked():
		marker = "☒"
	case item.Kind == notion.Todo:
		marker = "☐"
	case item.Kind == notion.Numbered:
		marker = "#"
	}
	return styles.BlockLabel(item.Kind.BlockType()).Render(marker) + " " + RichText(item.Runs)
}

// RichText renders runs with their annotations approximated by terminal
// styles.
func RichText(runs []notion.InlineElement) string {
	var b strings.Builder
	for _, run := range runs {
		b.WriteString(renderRun(run))
	}
	return b.String()
}

func renderRun(run notion.InlineElement) string {
	switch r := run.(type) {
	case *notion.Text:
		style := annotationStyle(r.Annotations)
		if r.Link != "" {
			style = style.Inherit(styles.LinkStyle)
		}
		return style.Render(r.Content)
	case *notion.InlineCode:
		return styles.CodeStyle.Render(r.Text)
	case *notion.InlineEquation:
		return styles.EquationStyle.Render("$" + r.Expression + "$")
	case *notion.Mention:
		return styles.LinkStyle.Render("@" + r.Text)
	}
	return run.PlainText()
}

func annotationStyle(a notion.Annotations) lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(a.Bold()).
		Italic(a.Italic()).
		Strikethrough(a.Strikethrough()).
		Underline(a.Underline())
}

func firstLine(s string) string {
	line, _, more := strings.Cut(s, "\n")
	if more {
		line += " …"
	}
	return line
}

// Counts tallies serialized blocks by type, nested children included.
func Counts(objs []notion.Object) map[string]int {
	counts := map[string]int{}
	var walk func([]notion.Object)
	walk = func(objs []notion.Object) {
		for _, obj := range objs {
			t, _ := obj["type"].(string)
			counts[t]++
			body, _ := obj[t].(map[string]any)
			if children, ok := body["children"].([]notion.Object); ok {
				walk(children)
			}
		}
	}
	walk(objs)
	return counts
}

// Summary renders Counts as "3 paragraph, 1 quote" in a stable order.
func Summary(objs []notion.Object) string {
	counts := Counts(objs)
	kinds := make([]string, 0, len(counts))
	for k := range counts {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	parts := make([]string, 0, len(kinds))
	for _, k := range kinds {
		parts = append(parts, fmt.Sprintf("%d %s", counts[k], k))
	}
	return strings.Join(parts, ", ")
}
