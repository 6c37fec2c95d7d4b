// Command contentscore scores page content from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

func newApp() *cli.App {
	return &cli.App{
		Name:  "contentscore",
		Usage: "score page content against on-page SEO rules",
		Commands: []*cli.Command{
			{
				Name:      "score",
				Usage:     "analyze one page and print the result",
				ArgsUsage: " ",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "input", Aliases: []string{"i"}, Usage: "page as JSON or YAML, - for stdin"},
					&cli.StringFlag{Name: "html", Usage: "HTML file used as the page body"},
					&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "YAML rule configuration", EnvVars: []string{"ANALYSIS_CONFIG"}},
					&cli.StringFlag{Name: "locale", Aliases: []string{"l"}, Usage: "fr, en or auto, overrides the configuration"},
					&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Value: "json", Usage: "output format: json, yaml or text"},
					&cli.StringFlag{Name: "date", Usage: "reference date of freshness rules (YYYY-MM-DD), default today"},
					&cli.IntFlag{Name: "fail-under", Usage: "exit with status 1 when the score is lower"},
				},
				Action: ScoreAction,
			},
			{
				Name:   "groups",
				Usage:  "list the rule groups",
				Action: GroupsAction,
			},
		},
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
