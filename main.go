package main

import (
	"fmt"
	"os"

	"github.com/gerunddev/notionbridge/internal/commands"
	"github.com/gerunddev/notionbridge/internal/config"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "convert":
		commands.Convert(os.Args[2:])
	case "preview", "tree":
		commands.Preview(os.Args[2:])
	case "browse":
		commands.Browse(os.Args[2:])
	case "diff":
		commands.Diff(os.Args[2:])
	case "languages":
		commands.Languages()
	case "config":
		commands.Config(os.Args[2:])
	case "version", "--version":
		fmt.Printf("notionbridge v%s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	usage := fmt.Sprintf(`notionbridge - Convert markdown and pandoc documents to Notion blocks

Usage:
  notionbridge <command> [options]

Commands:
  convert     Convert a document to Notion block JSON
  preview     Show the converted block tree
  browse      Browse converted blocks interactively
  diff        Compare a conversion with an expected JSON file
  languages   List code block language aliases
  config      Show configuration (config init writes the defaults)
  version     Show version information
  help        Show this help message

Options:
  -o, --output FILE        Write JSON to FILE instead of stdout
  -f, --from FORMAT        Input format: markdown or pandoc-json
  --title, --no-title      Prepend a heading from the title metadata
  --metadata               Include document metadata in the output
  --equation-numbers       Add "(n)" after numbered equations
  -v, --verbose            Debug logging

Examples:
  notionbridge convert notes.md -o notes.json
  pandoc -t json paper.tex | notionbridge convert --from pandoc-json
  notionbridge preview notes.md
  notionbridge diff notes.md testdata/notes.json

Configuration:
  Config file: %s

For more information, visit: https://github.com/gerunddev/notionbridge
`, config.ConfigPath())
	fmt.Print(usage)
}
