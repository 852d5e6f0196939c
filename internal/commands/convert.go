package commands

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gerunddev/notionbridge/internal/config"
	"github.com/gerunddev/notionbridge/internal/diff"
	"github.com/gerunddev/notionbridge/internal/render"
	"github.com/gerunddev/notionbridge/internal/styles"
)

// Convert converts one document to Notion block JSON
func Convert(args []string) {
	if err := runConvert(args); err != nil {
		fail("%v", err)
	}
}

func runConvert(args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	a, err := parseArgs(args, cfg)
	if err != nil {
		return err
	}
	if len(a.Positional) > 1 {
		return errors.New("convert takes at most one input file")
	}

	l, cleanup := setupLogger(cfg, a.Verbose)
	defer cleanup()
	l.ConfigLoaded(config.ConfigPath(), cfg.InputFormat)

	path := a.input(0)
	format, err := a.format(path, cfg)
	if err != nil {
		return err
	}

	res, err := convertInput(path, format, a.Options, l)
	if err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}

	data, err := encodeResult(res, cfg.Indent)
	if err != nil {
		return err
	}
	if err := writeOutput(a.Output, data); err != nil {
		return err
	}
	l.OutputWritten(outputName(a.Output), len(res.Blocks))

	if a.Output != "" && a.Output != stdinName {
		msg := fmt.Sprintf("✓ Wrote %d blocks to %s", len(res.Blocks), a.Output)
		fmt.Fprintln(stderr, styles.SuccessStyle.Render(msg))
	}
	for _, skipped := range res.Skipped {
		fmt.Fprintln(stderr, styles.WarningStyle.Render("⚠ Skipped "+skipped.Error()))
	}
	return nil
}

func outputName(path string) string {
	if path == "" || path == stdinName {
		return "stdout"
	}
	return path
}

// Preview converts a document and prints its block tree
func Preview(args []string) {
	if err := runPreview(args); err != nil {
		fail("%v", err)
	}
}

func runPreview(args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	a, err := parseArgs(args, cfg)
	if err != nil {
		return err
	}

	l, cleanup := setupLogger(cfg, a.Verbose)
	defer cleanup()

	path := a.input(0)
	format, err := a.format(path, cfg)
	if err != nil {
		return err
	}

	res, err := convertInput(path, format, a.Options, l)
	if err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}

	fmt.Println(render.Tree(sourceName(path), res.Blocks))
	fmt.Println()
	fmt.Println(styles.DimStyle.Render(render.Summary(res.Wire().Children)))
	for _, skipped := range res.Skipped {
		fmt.Println(styles.WarningStyle.Render("⚠ Skipped " + skipped.Error()))
	}
	return nil
}

// errDifferences reports a conversion that does not match the expected file.
var errDifferences = errors.New("conversion differs from expected output")

// Diff compares a conversion against a stored JSON result
func Diff(args []string) {
	err := runDiff(args, os.Stdout)
	if errors.Is(err, errDifferences) {
		os.Exit(1)
	}
	if err != nil {
		fail("%v", err)
	}
}

func runDiff(args []string, w io.Writer) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	a, err := parseArgs(args, cfg)
	if err != nil {
		return err
	}
	if len(a.Positional) != 2 {
		return errors.New("usage: notionbridge diff <file> <expected.json>")
	}

	l, cleanup := setupLogger(cfg, a.Verbose)
	defer cleanup()

	path, expected := a.input(0), a.input(1)
	format, err := a.format(path, cfg)
	if err != nil {
		return err
	}

	res, err := convertInput(path, format, a.Options, l)
	if err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}
	data, err := encodeResult(res, cfg.Indent)
	if err != nil {
		return err
	}

	out, err := diff.Generate(sourceName(path), data, expected)
	if err != nil {
		return err
	}
	if out == "" {
		fmt.Fprintln(w, styles.SuccessStyle.Render("✓ No differences"))
		return nil
	}
	fmt.Fprint(w, out)
	return errDifferences
}
