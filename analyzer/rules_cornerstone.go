package analyzer

import (
	"fmt"
	"strings"

	"github.com/seo-optimizer/contentscore/textnorm"
)

func evaluateCornerstone(in *Input, ctx *Context) []Check {
	l := newChecks(GroupCornerstone)
	t := ctx.Config.Thresholds

	switch wc := ctx.WordCount; {
	case wc >= t.CornerstoneWords:
		l.pass("length", "Pillar length", CategoryImportant, fmt.Sprintf("%d words, enough for pillar content.", wc))
	case wc*3 >= t.CornerstoneWords*2:
		l.warn("length", "Pillar length", CategoryImportant,
			fmt.Sprintf("%d words, pillar content should reach %d.", wc, t.CornerstoneWords),
			"Pillar pages cover a topic exhaustively.")
	default:
		l.fail("length", "Pillar length", CategoryImportant,
			fmt.Sprintf("Only %d words, pillar content should reach %d.", wc, t.CornerstoneWords),
			"Pillar pages cover a topic exhaustively.")
	}

	internal, _, _ := countLinks(ctx.Links, ctx.Config.SiteURL)
	switch {
	case internal >= t.CornerstoneInternalLinks:
		l.pass("internal-links", "Pillar linking", CategoryImportant, fmt.Sprintf("%d internal links to the topic cluster.", internal))
	case internal >= t.MinInternalLinks:
		l.warn("internal-links", "Pillar linking", CategoryImportant,
			fmt.Sprintf("%d internal links, pillar content should have %d.", internal, t.CornerstoneInternalLinks),
			"Link every article of the topic cluster from the pillar page.")
	default:
		l.fail("internal-links", "Pillar linking", CategoryImportant,
			fmt.Sprintf("%d internal links, pillar content should have %d.", internal, t.CornerstoneInternalLinks),
			"Link every article of the topic cluster from the pillar page.")
	}

	if ctx.Keyword == "" {
		l.fail("keyword", "Pillar keyword", CategoryCritical, "Pillar content must define a focus keyword.", "")
	} else if textnorm.KeywordMatches(ctx.Keyword, ctx.NormText) {
		l.pass("keyword", "Pillar keyword", CategoryCritical, "The focus keyword is defined and used.")
	} else {
		l.fail("keyword", "Pillar keyword", CategoryCritical, "The focus keyword is not used in the content.", "")
	}

	if strings.TrimSpace(in.MetaDescription) == "" {
		l.fail("description", "Pillar description", CategoryCritical, "Pillar content must have a meta description.", "")
	} else {
		l.pass("description", "Pillar description", CategoryCritical, "The meta description is set.")
	}
	return l.list()
}
