package convert

import (
	"errors"

	"github.com/gerunddev/notionbridge/internal/ast"
	"github.com/gerunddev/notionbridge/internal/notion"
)

// Converter turns one block node into Notion blocks.
type Converter interface {
	// Name identifies the converter in logs and in Registry.Names.
	Name() string
	// CanConvert reports whether the converter accepts node. It must not
	// inspect anything but the node itself.
	CanConvert(node ast.Block) bool
	// Convert converts node. It returns a *MalformedNodeError when handed a
	// node CanConvert rejects.
	Convert(node ast.Block) ([]notion.Block, error)
}

// Registry is an ordered list of block converters. The first converter
// whose CanConvert accepts a node wins, so more specific converters must be
// registered before more general ones.
type Registry struct {
	converters []Converter
}

func NewRegistry(converters ...Converter) *Registry {
	r := &Registry{}
	for _, c := range converters {
		r.Register(c)
	}
	return r
}

// Register appends c unless a converter with the same name is already
// registered.
func (r *Registry) Register(c Converter) {
	for _, existing := range r.converters {
		if existing.Name() == c.Name() {
			return
		}
	}
	r.converters = append(r.converters, c)
}

// Find returns the first converter that accepts node, or nil.
func (r *Registry) Find(node ast.Block) Converter {
	if node == nil {
		return nil
	}
	for _, c := range r.converters {
		if c.CanConvert(node) {
			return c
		}
	}
	return nil
}

// Convert converts a top-level node. A node no converter accepts yields an
// *UnsupportedNodeError.
func (r *Registry) Convert(node ast.Block) ([]notion.Block, error) {
	c := r.Find(node)
	if c == nil {
		return nil, &UnsupportedNodeError{Tag: tagOf(node)}
	}
	return c.Convert(node)
}

// ConvertChild converts a node nested inside another block. Unlike Convert,
// a node no converter accepts yields an empty result and no error.
func (r *Registry) ConvertChild(node ast.Block) ([]notion.Block, error) {
	c := r.Find(node)
	if c == nil {
		return nil, nil
	}
	return c.Convert(node)
}

// Names lists the registered converters in order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.converters))
	for i, c := range r.converters {
		names[i] = c.Name()
	}
	return names
}

// DefaultRegistry returns the standard converter set. The order matters:
// the equation converter must see display-math paragraphs before the
// paragraph converter does.
func DefaultRegistry(opts Options) *Registry {
	inline := NewInlineConverter()
	r := &Registry{}
	r.Register(NewQuoteConverter(inline, r))
	r.Register(NewHeadingConverter(inline))
	r.Register(NewCodeConverter())
	r.Register(NewListConverter(inline))
	r.Register(NewEquationConverter(opts.EquationNumbers))
	r.Register(NewParagraphConverter(inline))
	return r
}

func tagOf(node ast.Node) string {
	if node == nil {
		return "nil"
	}
	return node.Tag()
}

func malformed(c Converter, node ast.Node) error {
	return &MalformedNodeError{Converter: c.Name(), Tag: tagOf(node)}
}

// isMalformed reports whether err signals a routing bug that must not be
// swallowed.
func isMalformed(err error) bool {
	return errors.Is(err, ErrMalformedNode)
}
