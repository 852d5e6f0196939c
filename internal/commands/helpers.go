package commands

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/gerunddev/notionbridge/internal/config"
	"github.com/gerunddev/notionbridge/internal/convert"
	"github.com/gerunddev/notionbridge/internal/logger"
	"github.com/gerunddev/notionbridge/internal/parser"
	"github.com/gerunddev/notionbridge/internal/styles"
)

const stdinName = "-"

// stderr receives status and warning lines.
var stderr io.Writer = os.Stderr

// runArgs holds the parsed command line of a conversion command
type runArgs struct {
	Positional []string
	Output     string
	Format     string
	Options    convert.Options
	Verbose    bool
}

// parseArgs reads conversion flags. Flag defaults come from cfg.
func parseArgs(args []string, cfg *config.Config) (*runArgs, error) {
	a := &runArgs{Options: cfg.ConvertOptions()}

	for i := 0; i < len(args); i++ {
		arg := args[i]
		name, value, hasValue := strings.Cut(arg, "=")

		takeValue := func() (string, error) {
			if hasValue {
				return value, nil
			}
			if i+1 >= len(args) {
				return "", fmt.Errorf("flag %s needs a value", name)
			}
			i++
			return args[i], nil
		}

		var err error
		switch name {
		case "-o", "--output":
			a.Output, err = takeValue()
		case "-f", "--from":
			a.Format, err = takeValue()
		case "--title":
			a.Options.TitleFromMetadata = true
		case "--no-title":
			a.Options.TitleFromMetadata = false
		case "--metadata":
			a.Options.IncludeMetadata = true
		case "--no-metadata":
			a.Options.IncludeMetadata = false
		case "--equation-numbers":
			a.Options.EquationNumbers = true
		case "-v", "--verbose":
			a.Verbose = true
		default:
			if strings.HasPrefix(arg, "-") && arg != stdinName {
				return nil, fmt.Errorf("unknown flag: %s", arg)
			}
			a.Positional = append(a.Positional, arg)
		}
		if err != nil {
			return nil, err
		}
	}
	return a, nil
}

// input returns the i-th positional argument, or stdin for a missing
// first argument.
func (a *runArgs) input(i int) string {
	if i < len(a.Positional) {
		return a.Positional[i]
	}
	if i == 0 {
		return stdinName
	}
	return ""
}

// format resolves the input format: an explicit --from wins, then the file
// extension, then the configured default.
func (a *runArgs) format(path string, cfg *config.Config) (parser.Format, error) {
	if a.Format != "" {
		return parser.ParseFormat(a.Format)
	}
	if path == stdinName {
		return cfg.Format(), nil
	}
	return parser.FormatForPath(path, cfg.Format()), nil
}

// setupLogger builds the command logger: to the configured log file when
// there is one, otherwise to stderr. The returned cleanup closes the file.
func setupLogger(cfg *config.Config, verbose bool) (*logger.Logger, func()) {
	level := logger.ParseLevel(cfg.LogLevel)
	if verbose {
		level = log.DebugLevel
	}
	if cfg.LogFile != "" {
		l, cleanup, err := logger.NewFileLogger(cfg.LogFile, level)
		if err == nil {
			return l, cleanup
		}
		msg := fmt.Sprintf("⚠ Cannot open log file %s, logging to stderr: %v", cfg.LogFile, err)
		fmt.Fprintln(stderr, styles.WarningStyle.Render(msg))
	}
	return logger.NewWithLevel(stderr, level), func() {}
}

// readInput reads a file, or stdin for "-".
func readInput(path string) ([]byte, error) {
	if path == stdinName {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func sourceName(path string) string {
	if path == stdinName {
		return "stdin"
	}
	return path
}

// convertInput parses and converts one input.
func convertInput(path string, format parser.Format, opts convert.Options, l *logger.Logger) (*convert.Result, error) {
	src, err := readInput(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	doc, err := parser.Parse(src, format)
	if err != nil {
		l.ParseError(sourceName(path), string(format), err)
		return nil, err
	}

	conv := convert.NewTraced(convert.NewAssembler(nil, opts, l), l, sourceName(path))
	return conv.Convert(doc)
}

// encodeResult renders a result as indented JSON.
func encodeResult(res *convert.Result, indent string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)
	if err := enc.Encode(res.Wire()); err != nil {
		return nil, fmt.Errorf("failed to encode result: %w", err)
	}
	return buf.Bytes(), nil
}

// writeOutput writes data to path, or stdout when path is empty or "-".
func writeOutput(path string, data []byte) error {
	if path == "" || path == stdinName {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// fail prints a styled error and exits with status 1. Callers must have
// run their deferred cleanups already.
func fail(format string, args ...any) {
	fmt.Fprintln(stderr, styles.ErrorStyle.Render("✗ "+fmt.Sprintf(format, args...)))
	os.Exit(1)
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}
	return cfg, nil
}
