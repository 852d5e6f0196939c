package convert

import (
	"errors"

	"github.com/gerunddev/notionbridge/internal/ast"
	"github.com/gerunddev/notionbridge/internal/logger"
	"github.com/gerunddev/notionbridge/internal/notion"
)

// ErrNilDocument is returned when Convert is handed no document.
var ErrNilDocument = errors.New("nil document")

// Options controls document assembly.
type Options struct {
	// TitleFromMetadata prepends a level 1 heading holding the "title"
	// metadata value, when there is one.
	TitleFromMetadata bool
	// IncludeMetadata attaches the document metadata to the result.
	IncludeMetadata bool
	// EquationNumbers follows numbered display equations with a "(n)"
	// paragraph.
	EquationNumbers bool
}

// DefaultOptions returns the options the CLI starts from.
func DefaultOptions() Options {
	return Options{TitleFromMetadata: true}
}

// Result is a converted document.
type Result struct {
	Blocks   []notion.Block
	Metadata map[string]any
	// Skipped lists top-level nodes that could not be converted, in
	// document order.
	Skipped []*NodeError
}

// Output is the JSON shape of a Result.
type Output struct {
	Children []notion.Object `json:"children"`
	Metadata map[string]any  `json:"metadata,omitempty"`
}

// Wire serializes the result.
func (r *Result) Wire() Output {
	children := notion.SerializeAll(r.Blocks)
	if children == nil {
		children = []notion.Object{}
	}
	return Output{Children: children, Metadata: r.Metadata}
}

// DocumentConverter converts a whole document.
type DocumentConverter interface {
	Convert(doc *ast.Document) (*Result, error)
}

// Assembler walks a document's top-level blocks through a registry. A
// block that fails to convert is logged and skipped; the rest of the
// document still converts.
type Assembler struct {
	registry *Registry
	opts     Options
	log      *logger.Logger
}

// NewAssembler returns an assembler. A nil registry means
// DefaultRegistry(opts); a nil logger discards.
func NewAssembler(registry *Registry, opts Options, log *logger.Logger) *Assembler {
	if registry == nil {
		registry = DefaultRegistry(opts)
	}
	if log == nil {
		log = logger.Discard()
	}
	return &Assembler{registry: registry, opts: opts, log: log}
}

// Registry returns the registry the assembler dispatches through.
func (a *Assembler) Registry() *Registry { return a.registry }

func (a *Assembler) Convert(doc *ast.Document) (*Result, error) {
	if doc == nil {
		return nil, ErrNilDocument
	}

	res := &Result{Blocks: make([]notion.Block, 0, len(doc.Blocks)+1)}
	if a.opts.TitleFromMetadata {
		if title := doc.Title(); title != "" {
			res.Blocks = append(res.Blocks, notion.PlainHeading(1, title))
		}
	}
	if a.opts.IncludeMetadata && len(doc.Meta) > 0 {
		res.Metadata = doc.Meta
	}

	for i, node := range doc.Blocks {
		blocks, err := a.registry.Convert(node)
		if err != nil {
			nerr := &NodeError{Index: i, Tag: tagOf(node), Err: err}
			a.log.NodeSkipped(i, nerr.Tag, err)
			res.Skipped = append(res.Skipped, nerr)
			continue
		}
		res.Blocks = append(res.Blocks, blocks...)
	}
	return res, nil
}
