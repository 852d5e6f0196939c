package tui

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/gerunddev/notionbridge/internal/notion"
	"github.com/gerunddev/notionbridge/internal/styles"
)

var (
	titleStyle = styles.TitleStyle
	labelStyle = styles.DimStyle
	helpStyle  = styles.HelpStyle
	errorStyle = styles.ErrorStyle
	warnStyle  = styles.WarningStyle
	tableStyle = styles.TableStyle
)

// BrowseData holds the serialized blocks of one converted document
type BrowseData struct {
	Source  string
	Objects []notion.Object
	Skipped []string
}

// BrowseMsg is sent when the conversion finished
type BrowseMsg struct {
	Data *BrowseData
	Err  error
}

type browseModel struct {
	table       table.Model
	viewport    viewport.Model
	data        *BrowseData
	err         error
	ready       bool
	showingJSON bool
	selected    int
	indent      string
	width       int
	height      int
}

// InitBrowseModel creates a new block browser model. indent is used when
// showing a block's JSON.
func InitBrowseModel(indent string) browseModel {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Type", Width: 20},
		{Title: "Content", Width: 60},
		{Title: "Children", Width: 8},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(20),
	)

	ts := table.DefaultStyles()
	ts.Header = ts.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(styles.Border)).
		BorderBottom(true).
		Bold(false)
	ts.Selected = ts.Selected.
		Foreground(lipgloss.Color(styles.Background)).
		Background(lipgloss.Color(styles.Yellow)).
		Bold(false)
	t.SetStyles(ts)

	vp := viewport.New(100, 20)
	vp.Style = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(styles.Border)).
		Padding(1)

	return browseModel{
		table:    t,
		viewport: vp,
		indent:   indent,
	}
}

func (m browseModel) Init() tea.Cmd {
	return nil
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetHeight(msg.Height - 10)
		m.viewport.Width = msg.Width - 4
		m.viewport.Height = msg.Height - 6

	case tea.KeyMsg:
		if m.showingJSON {
			switch msg.String() {
			case "ctrl+c":
				return m, tea.Quit
			case "q", "esc":
				m.showingJSON = false
				return m, nil
			case "up", "k", "down", "j", "pgup", "pgdown":
				m.viewport, cmd = m.viewport.Update(msg)
				return m, cmd
			}
			return m, nil
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "up", "k", "down", "j":
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		case "enter":
			if m.data == nil || len(m.data.Objects) == 0 {
				return m, nil
			}
			m.selected = m.table.Cursor()
			if m.selected < len(m.data.Objects) {
				m.showingJSON = true
				m.viewport.SetContent(m.blockJSON(m.data.Objects[m.selected]))
				m.viewport.GotoTop()
			}
			return m, nil
		}

	case BrowseMsg:
		m.ready = true
		m.data = msg.Data
		m.err = msg.Err
		if m.data != nil {
			m.table.SetRows(Rows(m.data.Objects))
		}
		return m, nil
	}

	return m, nil
}

func (m browseModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("NotionBridge Block Browser"))
	b.WriteString("\n\n")

	if m.err != nil {
		return b.String() + errorStyle.Render("✗ Error: "+m.err.Error()) + "\n"
	}

	if !m.ready || m.data == nil {
		b.WriteString(labelStyle.Render("Converting..."))
		b.WriteString("\n")
		return b.String()
	}

	if m.showingJSON {
		b.WriteString(labelStyle.Render(fmt.Sprintf("Block %d of %d", m.selected+1, len(m.data.Objects))))
		b.WriteString("\n\n")
		b.WriteString(m.viewport.View())
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("↑/k up • ↓/j down • esc/q back"))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(labelStyle.Render(fmt.Sprintf("%s: %d blocks", m.data.Source, len(m.data.Objects))))
	b.WriteString("\n")
	for _, s := range m.data.Skipped {
		b.WriteString(warnStyle.Render("⚠ skipped " + s))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(tableStyle.Render(m.table.View()))
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("↑/k up • ↓/j down • enter json • q quit"))
	b.WriteString("\n")

	return b.String()
}

func (m browseModel) blockJSON(obj notion.Object) string {
	data, err := json.MarshalIndent(obj, "", m.indent)
	if err != nil {
		return errorStyle.Render("✗ " + err.Error())
	}
	return string(data)
}

// Rows builds one table row per top-level block.
func Rows(objs []notion.Object) []table.Row {
	rows := make([]table.Row, 0, len(objs))
	for i, obj := range objs {
		t, _ := obj["type"].(string)
		body, _ := obj[t].(map[string]any)
		children, _ := body["children"].([]notion.Object)
		rows = append(rows, table.Row{
			fmt.Sprint(i + 1),
			t,
			truncate(blockText(body), 60),
			fmt.Sprint(len(children)),
		})
	}
	return rows
}

// blockText returns the plain text of a serialized block body.
func blockText(body map[string]any) string {
	if expr, ok := body["expression"].(string); ok {
		return expr
	}
	runs, _ := body["rich_text"].([]notion.RichText)
	var b strings.Builder
	for _, r := range runs {
		b.WriteString(r.PlainText)
	}
	return strings.ReplaceAll(b.String(), "\n", " ⏎ ")
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
