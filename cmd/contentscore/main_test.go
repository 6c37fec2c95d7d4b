package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/seo-optimizer/contentscore/analyzer"
)

var fixture = filepath.Join("..", "..", "analyzer", "testdata", "local_page.json")

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("ANALYSIS_CONFIG", "")
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = &out
	app.Reader = strings.NewReader(stdin)
	app.ExitErrHandler = func(*cli.Context, error) {}
	err := app.Run(append([]string{"contentscore"}, args...))
	return out.String(), err
}

func TestScoreJSON(t *testing.T) {
	out, err := run(t, "", "score", "--input", fixture, "--locale", "fr", "--date", "2026-06-01")
	require.NoError(t, err)

	var res analyzer.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.GreaterOrEqual(t, res.Score, 71)
	assert.NotEmpty(t, res.Checks)
}

func TestScoreYAMLInputFromStdin(t *testing.T) {
	page := `
metaTitle: Mentions légales
slug: mentions-legales
updatedAt: 2025-01-10T00:00:00Z
bodyHtml: "<h1>Mentions légales</h1><p>Éditeur du site.</p>"
`
	out, err := run(t, page, "score", "--input", "-", "--format", "yaml", "--date", "2026-06-01")
	require.NoError(t, err)

	var res struct {
		Score  int    `yaml:"score"`
		Level  string `yaml:"level"`
		Checks []struct {
			ID     string `yaml:"id"`
			Status string `yaml:"status"`
		} `yaml:"checks"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &res))
	assert.NotEmpty(t, res.Level)

	statuses := map[string]string{}
	for _, c := range res.Checks {
		statuses[c.ID] = c.Status
	}
	assert.Equal(t, "pass", statuses["freshness-age"])
	assert.Equal(t, "pass", statuses["headings-h1"])
}

func TestScoreYAMLPlainDate(t *testing.T) {
	page := `
metaTitle: Tarifs de nos sites vitrines
slug: tarifs
isPost: "false"
updatedAt: 2026-05-01
bodyHtml: "<h1>Tarifs</h1><p>Nos tarifs.</p>"
`
	out, err := run(t, page, "score", "--input", "-", "--format", "text", "--date", "2026-06-01")
	require.NoError(t, err)
	assert.NotContains(t, out, "Score: 0/100")
	assert.Regexp(t, `\[pass\s*\] freshness-age\s+Updated 31 days ago`, out)
}

func TestScoreHTMLWithConfig(t *testing.T) {
	dir := t.TempDir()
	html := filepath.Join(dir, "page.html")
	require.NoError(t, os.WriteFile(html, []byte("<h1>Tarifs</h1><p>Nos tarifs.</p>"), 0o644))
	rules := filepath.Join(dir, "rules.yaml")
	require.NoError(t, os.WriteFile(rules, []byte("disabledRules: [readability, accessibility]\n"), 0o644))

	out, err := run(t, "", "score", "--html", html, "--config", rules, "--format", "text")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Score: "), out)
	assert.Contains(t, out, "headings-h1")
	assert.NotContains(t, out, "accessibility-")
}

func TestScoreFailUnder(t *testing.T) {
	_, err := run(t, "{}", "score", "--input", "-", "--fail-under", "90")
	require.Error(t, err)

	var exit cli.ExitCoder
	require.ErrorAs(t, err, &exit)
	assert.Equal(t, 1, exit.ExitCode())
}

func TestScoreErrors(t *testing.T) {
	_, err := run(t, "", "score")
	assert.ErrorContains(t, err, "no page provided")

	_, err = run(t, "{}", "score", "--input", "-", "--format", "xml")
	assert.ErrorContains(t, err, "unknown output format")

	_, err = run(t, "{}", "score", "--input", "-", "--date", "yesterday")
	assert.ErrorContains(t, err, "invalid --date")
}

func TestGroups(t *testing.T) {
	out, err := run(t, "", "groups")
	require.NoError(t, err)
	assert.Equal(t, analyzer.Groups(), strings.Fields(out))
}
