package notion

import (
	"sort"
	"strings"
)

// PlainTextLanguage is the language of code blocks with no known language.
const PlainTextLanguage = "plain text"

// languageAliases maps lower-case source language tags to Notion's code
// block languages.
var languageAliases = map[string]string{
	"abap":         "abap",
	"arduino":      "arduino",
	"bash":         "bash",
	"basic":        "basic",
	"c":            "c",
	"clojure":      "clojure",
	"coffeescript": "coffeescript",
	"cpp":          "c++",
	"c++":          "c++",
	"csharp":       "c#",
	"c#":           "c#",
	"css":          "css",
	"dart":         "dart",
	"diff":         "diff",
	"docker":       "docker",
	"dockerfile":   "docker",
	"elixir":       "elixir",
	"elm":          "elm",
	"erlang":       "erlang",
	"flow":         "flow",
	"fortran":      "fortran",
	"fsharp":       "f#",
	"f#":           "f#",
	"gherkin":      "gherkin",
	"glsl":         "glsl",
	"go":           "go",
	"golang":       "go",
	"graphql":      "graphql",
	"groovy":       "groovy",
	"haskell":      "haskell",
	"html":         "html",
	"java":         "java",
	"javascript":   "javascript",
	"js":           "javascript",
	"jsx":          "javascript",
	"json":         "json",
	"julia":        "julia",
	"kotlin":       "kotlin",
	"latex":        "latex",
	"tex":          "latex",
	"less":         "less",
	"lisp":         "lisp",
	"livescript":   "livescript",
	"lua":          "lua",
	"makefile":     "makefile",
	"make":         "makefile",
	"markdown":     "markdown",
	"md":           "markdown",
	"markup":       "markup",
	"matlab":       "matlab",
	"mermaid":      "mermaid",
	"nix":          "nix",
	"objective-c":  "objective-c",
	"objc":         "objective-c",
	"ocaml":        "ocaml",
	"pascal":       "pascal",
	"perl":         "perl",
	"php":          "php",
	"powershell":   "powershell",
	"ps1":          "powershell",
	"prolog":       "prolog",
	"protobuf":     "protobuf",
	"proto":        "protobuf",
	"python":       "python",
	"py":           "python",
	"r":            "r",
	"reason":       "reason",
	"ruby":         "ruby",
	"rb":           "ruby",
	"rust":         "rust",
	"rs":           "rust",
	"sass":         "sass",
	"scala":        "scala",
	"scheme":       "scheme",
	"scss":         "scss",
	"shell":        "shell",
	"console":      "shell",
	"terminal":     "shell",
	"sh":           "bash",
	"zsh":          "bash",
	"sql":          "sql",
	"swift":        "swift",
	"typescript":   "typescript",
	"ts":           "typescript",
	"tsx":          "typescript",
	"vb":           "visual basic",
	"vbnet":        "visual basic",
	"verilog":      "verilog",
	"vhdl":         "vhdl",
	"webassembly":  "webassembly",
	"wasm":         "webassembly",
	"xml":          "xml",
	"yaml":         "yaml",
	"yml":          "yaml",
	"plaintext":    PlainTextLanguage,
	"text":         PlainTextLanguage,
	"txt":          PlainTextLanguage,
}

// LookupLanguage resolves a source language tag, case-insensitively.
// Unknown or empty tags resolve to "plain text".
func LookupLanguage(tag string) string {
	if lang, ok := languageAliases[strings.ToLower(strings.TrimSpace(tag))]; ok {
		return lang
	}
	return PlainTextLanguage
}

// LanguageAlias is one entry of the alias table.
type LanguageAlias struct {
	Alias    string
	Language string
}

// LanguageAliases returns the alias table sorted by alias.
func LanguageAliases() []LanguageAlias {
	out := make([]LanguageAlias, 0, len(languageAliases))
	for alias, lang := range languageAliases {
		out = append(out, LanguageAlias{Alias: alias, Language: lang})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Alias < out[j].Alias })
	return out
}
