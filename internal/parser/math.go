package parser

import (
	"bytes"
	"strconv"

	gast "github.com/yuin/goldmark/ast"
	gparser "github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

var kindMath = gast.NewNodeKind("Math")

// mathNode is a $inline$ or $$display$$ TeX span.
type mathNode struct {
	gast.BaseInline
	display bool
	value   []byte
}

func (n *mathNode) Kind() gast.NodeKind { return kindMath }

func (n *mathNode) Dump(source []byte, level int) {
	gast.DumpHelper(n, source, level, map[string]string{
		"Display": strconv.FormatBool(n.display),
		"Value":   string(n.value),
	}, nil)
}

// mathParser reads TeX math delimited by $ or $$, following pandoc's
// tex_math_dollars rules: an inline opener must be followed by a non-space,
// an inline closer must follow a non-space and not precede a digit. Math
// may span the lines of a paragraph.
type mathParser struct{}

func (p *mathParser) Trigger() []byte {
	return []byte{'$'}
}

func (p *mathParser) Parse(parent gast.Node, block text.Reader, pc gparser.Context) gast.Node {
	line, _ := block.PeekLine()
	delim := 1
	if len(line) > 1 && line[1] == '$' {
		delim = 2
	}
	if delim == 1 && (len(line) < 2 || util.IsSpace(line[1])) {
		return nil
	}

	savedLine, savedSeg := block.Position()
	block.Advance(delim)
	var value []byte
	for {
		line, _ := block.PeekLine()
		if line == nil {
			block.SetPosition(savedLine, savedSeg)
			return nil
		}
		if i := closingDelimiter(line, delim); i >= 0 {
			value = append(value, line[:i]...)
			block.Advance(i + delim)
			break
		}
		value = append(value, line...)
		block.AdvanceLine()
	}

	trimmed := bytes.TrimSpace(value)
	if len(trimmed) == 0 || (delim == 1 && util.IsSpace(value[len(value)-1])) {
		block.SetPosition(savedLine, savedSeg)
		return nil
	}
	return &mathNode{display: delim == 2, value: trimmed}
}

// closingDelimiter returns the offset of the closing delimiter in line, or
// -1. Backslash escapes are skipped.
func closingDelimiter(line []byte, delim int) int {
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case '\\':
			i++
		case '$':
			next := byte(0)
			if i+1 < len(line) {
				next = line[i+1]
			}
			if delim == 2 {
				if next == '$' {
					return i
				}
				continue
			}
			if next >= '0' && next <= '9' {
				continue
			}
			return i
		}
	}
	return -1
}
