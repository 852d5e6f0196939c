// Package parser reads source documents into the ast document tree.
package parser

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gerunddev/notionbridge/internal/ast"
)

// Format names an input format.
type Format string

const (
	Markdown   Format = "markdown"
	PandocJSON Format = "pandoc-json"
)

// Formats lists the supported input formats.
func Formats() []Format {
	return []Format{Markdown, PandocJSON}
}

// ParseFormat resolves a format name. "md" and "json" are accepted as
// short forms.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "markdown", "md", "":
		return Markdown, nil
	case "pandoc-json", "pandoc", "json":
		return PandocJSON, nil
	}
	return "", fmt.Errorf("unknown input format %q (want markdown or pandoc-json)", name)
}

// FormatForPath guesses the format from a file extension, falling back to
// def.
func FormatForPath(path string, def Format) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return PandocJSON
	case ".md", ".markdown", ".mdown":
		return Markdown
	}
	return def
}

// Error reports a document that could not be parsed.
type Error struct {
	Format Format
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Format, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Parse reads src in the given format.
func Parse(src []byte, format Format) (*ast.Document, error) {
	switch format {
	case Markdown:
		doc, err := parseMarkdown(src)
		if err != nil {
			return nil, &Error{Format: format, Err: err}
		}
		return doc, nil
	case PandocJSON:
		doc, err := ast.DecodePandocJSON(bytes.NewReader(src))
		if err != nil {
			return nil, &Error{Format: format, Err: err}
		}
		return doc, nil
	}
	return nil, &Error{Format: format, Err: fmt.Errorf("unsupported format")}
}
