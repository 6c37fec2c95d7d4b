package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/seo-optimizer/contentscore/analyzer"
	"github.com/seo-optimizer/contentscore/config"
)

func ScoreAction(c *cli.Context) error {
	raw, err := readInput(c)
	if err != nil {
		return err
	}

	cfg, err := config.LoadAnalysisConfig(c.String("config"))
	if err != nil {
		return err
	}
	if locale := c.String("locale"); locale != "" {
		cfg.Locale = locale
	}
	if date := c.String("date"); date != "" {
		if cfg.Now, err = time.Parse("2006-01-02", date); err != nil {
			return fmt.Errorf("invalid --date: %w", err)
		}
	}

	res := analyzer.AnalyzeJSON(raw, &cfg)
	if err := writeResult(c.App.Writer, c.String("format"), res); err != nil {
		return err
	}

	if floor := c.Int("fail-under"); c.IsSet("fail-under") && res.Score < floor {
		return cli.Exit(fmt.Sprintf("score %d is lower than %d", res.Score, floor), 1)
	}
	return nil
}

func GroupsAction(c *cli.Context) error {
	for _, g := range analyzer.Groups() {
		fmt.Fprintln(c.App.Writer, g)
	}
	return nil
}

// readInput returns the page as a JSON document. YAML input is converted, and
// --html replaces the body of the page.
func readInput(c *cli.Context) ([]byte, error) {
	page := map[string]interface{}{}

	if path := c.String("input"); path != "" {
		data, err := readSource(c, path)
		if err != nil {
			return nil, fmt.Errorf("failed to read input: %w", err)
		}
		if isYAML(path, data) {
			if err := yaml.Unmarshal(data, &page); err != nil {
				return nil, fmt.Errorf("invalid YAML input: %w", err)
			}
		} else if c.String("html") == "" {
			return data, nil
		} else if err := json.Unmarshal(data, &page); err != nil {
			return nil, fmt.Errorf("invalid JSON input: %w", err)
		}
	}

	if path := c.String("html"); path != "" {
		body, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read HTML: %w", err)
		}
		page["bodyHtml"] = string(body)
	}

	if c.String("input") == "" && c.String("html") == "" {
		return nil, fmt.Errorf("no page provided via --input or --html")
	}
	return json.Marshal(page)
}

func readSource(c *cli.Context, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(c.App.Reader)
	}
	return os.ReadFile(path)
}

func isYAML(path string, data []byte) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	case ".json":
		return false
	}
	trimmed := strings.TrimSpace(string(data))
	return trimmed != "" && trimmed[0] != '{' && trimmed[0] != '['
}

func writeResult(w io.Writer, format string, res analyzer.Result) error {
	switch strings.ToLower(format) {
	case "", "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(res); err != nil {
			return err
		}
		return enc.Close()
	case "text":
		fmt.Fprintf(w, "Score: %d/100 (%s)\n", res.Score, res.Level)
		for _, check := range res.Checks {
			fmt.Fprintf(w, "[%-7s] %-28s %s\n", check.Status, check.ID, check.Message)
		}
		return nil
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
