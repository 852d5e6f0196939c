package commands

import (
	"errors"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gerunddev/notionbridge/internal/tui"
)

// Browse converts a document and opens the interactive block browser
func Browse(args []string) {
	if err := runBrowse(args); err != nil {
		fail("%v", err)
	}
}

func runBrowse(args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	a, err := parseArgs(args, cfg)
	if err != nil {
		return err
	}

	// The terminal belongs to the browser, so only a log file gets output.
	l, cleanup := setupLogger(cfg, false)
	defer cleanup()
	if cfg.LogFile == "" {
		l.SetOutput(io.Discard)
	}

	path := a.input(0)
	if path == stdinName {
		return errors.New("browse needs an input file")
	}
	format, err := a.format(path, cfg)
	if err != nil {
		return err
	}

	m := tui.InitBrowseModel(cfg.Indent)
	p := tea.NewProgram(m, tea.WithAltScreen())

	go func() {
		res, err := convertInput(path, format, a.Options, l)
		if err != nil {
			p.Send(tui.BrowseMsg{Err: err})
			return
		}
		data := &tui.BrowseData{
			Source:  sourceName(path),
			Objects: res.Wire().Children,
		}
		for _, s := range res.Skipped {
			data.Skipped = append(data.Skipped, s.Error())
		}
		p.Send(tui.BrowseMsg{Data: data})
	}()

	_, err = p.Run()
	return err
}
