package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/gerunddev/notionbridge/internal/config"
	"github.com/gerunddev/notionbridge/internal/convert"
	"github.com/gerunddev/notionbridge/internal/notion"
	"github.com/gerunddev/notionbridge/internal/styles"
)

// Languages prints the code block language alias table
func Languages() {
	fmt.Println(styles.TitleStyle.Render("Code block languages"))
	fmt.Println()
	for _, alias := range notion.LanguageAliases() {
		fmt.Printf("  %-14s %s %s\n", alias.Alias, styles.DimStyle.Render("→"), alias.Language)
	}
	fmt.Println()
	fmt.Println(styles.DimStyle.Render("Any other name converts to \"" + notion.PlainTextLanguage + "\"."))
}

// Config shows the configuration, or writes the default one with "init"
func Config(args []string) {
	if len(args) > 0 && args[0] == "init" {
		initConfig(len(args) > 1 && args[1] == "--force")
		return
	}

	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		fail("%v", err)
	}

	fmt.Println(styles.TitleStyle.Render("NotionBridge Configuration"))
	fmt.Println(styles.DimStyle.Render(config.ConfigPath()))
	fmt.Println()
	fmt.Println(string(data))
	fmt.Println()
	fmt.Println(styles.DimStyle.Render("Block converters: " + strings.Join(convert.DefaultRegistry(cfg.ConvertOptions()).Names(), ", ")))
}

func initConfig(force bool) {
	path := config.ConfigPath()
	if _, err := os.Stat(path); err == nil && !force {
		fail("Config already exists at %s (use --force to overwrite)", path)
	}
	if err := config.DefaultConfig().Save(); err != nil {
		fail("%v", err)
	}
	fmt.Println(styles.SuccessStyle.Render("✓ Wrote default config to " + path))
}
