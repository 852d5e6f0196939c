package convert

import (
	"regexp"
	"strings"
)

// Environments whose wrapper KaTeX does not need.
var mathEnvironments = []string{"equation", "align", "aligned", "gather"}

var (
	labelPattern = regexp.MustCompile(`\\label\{[^}]*\}`)
	tagPattern   = regexp.MustCompile(`\\tag\*?\{([^}]*)\}`)
	labelCapture = regexp.MustCompile(`\\label\{([^}]*)\}`)
)

// NormalizeLatex rewrites a LaTeX math expression into something KaTeX
// renders: a single enclosing equation/align/aligned/gather environment is
// removed when both markers are present, \label{...} spans are dropped and
// \eqref becomes \ref.
func NormalizeLatex(expr string) string {
	expr = strings.TrimSpace(expr)
	for _, env := range mathEnvironments {
		begin, end := `\begin{`+env+`}`, `\end{`+env+`}`
		if strings.HasPrefix(expr, begin) && strings.HasSuffix(expr, end) && len(expr) >= len(begin)+len(end) {
			expr = strings.TrimSpace(expr[len(begin) : len(expr)-len(end)])
			break
		}
	}
	expr = labelPattern.ReplaceAllString(expr, "")
	expr = strings.ReplaceAll(expr, `\eqref`, `\ref`)
	return strings.TrimSpace(expr)
}

// EquationNumber extracts an equation number from \tag{...}, falling back to
// \label{...}. It must run on the expression before NormalizeLatex strips
// the labels.
func EquationNumber(expr string) (string, bool) {
	if m := tagPattern.FindStringSubmatch(expr); m != nil && m[1] != "" {
		return m[1], true
	}
	if m := labelCapture.FindStringSubmatch(expr); m != nil && m[1] != "" {
		return m[1], true
	}
	return "", false
}
