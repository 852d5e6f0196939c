package convert

import (
	"time"

	"github.com/gerunddev/notionbridge/internal/ast"
	"github.com/gerunddev/notionbridge/internal/logger"
	"github.com/google/uuid"
)

// Traced wraps a DocumentConverter and logs the start and end of every
// conversion under a fresh conversion id.
type Traced struct {
	next   DocumentConverter
	log    *logger.Logger
	source string
}

// NewTraced wraps next. source names the input in log lines.
func NewTraced(next DocumentConverter, log *logger.Logger, source string) *Traced {
	if log == nil {
		log = logger.Discard()
	}
	return &Traced{next: next, log: log, source: source}
}

func (t *Traced) Convert(doc *ast.Document) (*Result, error) {
	id := uuid.NewString()
	var blocks int
	if doc != nil {
		blocks = len(doc.Blocks)
	}
	t.log.ConversionStarted(id, t.source, blocks)

	start := time.Now()
	res, err := t.next.Convert(doc)
	if err != nil {
		t.log.Error("conversion failed", "id", id, "source", t.source, "error", err)
		return nil, err
	}
	t.log.ConversionCompleted(id, len(res.Blocks), len(res.Skipped), time.Since(start))
	return res, nil
}
