// Package diff compares a conversion result against a stored expectation.
package diff

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/glamour"
	"github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
	"github.com/hexops/gotextdiff/span"
)

// Unified returns a unified diff turning want into got, or "" when they are
// equal.
func Unified(wantName, gotName, want, got string) string {
	if want == got {
		return ""
	}
	edits := myers.ComputeEdits(span.URIFromPath(wantName), want, got)
	return fmt.Sprint(gotextdiff.ToUnified(wantName, gotName, want, edits))
}

// Generate diffs got, the JSON produced from source, against the file at
// expectedPath. The diff is rendered for the terminal; equal inputs yield
// "".
func Generate(source string, got []byte, expectedPath string) (string, error) {
	want, err := os.ReadFile(expectedPath)
	if err != nil {
		return "", fmt.Errorf("failed to read expected file: %w", err)
	}

	unified := Unified(filepath.Base(expectedPath), filepath.Base(source), normalize(want), normalize(got))
	if unified == "" {
		return "", nil
	}
	return Render(unified), nil
}

// Render wraps a unified diff in a diff code fence and renders it with
// Glamour. It falls back to the fenced text if rendering fails.
func Render(unified string) string {
	fenced := fmt.Sprintf("```diff\n%s```\n", unified)

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(120),
	)
	if err != nil {
		return fenced
	}

	rendered, err := renderer.Render(fenced)
	if err != nil {
		return fenced
	}
	return rendered
}

// normalize makes sure both sides end in a newline so a missing final
// newline does not show up as a change.
func normalize(b []byte) string {
	s := string(b)
	if len(s) > 0 && s[len(s)-1] != '\n' {
		s += "\n"
	}
	return s
}
