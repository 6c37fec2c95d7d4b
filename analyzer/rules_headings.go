package analyzer

import (
	"fmt"

	"github.com/seo-optimizer/contentscore/doctree"
	"github.com/seo-optimizer/contentscore/textnorm"
)

// wordsPerSubheading is the longest stretch of copy expected between two
// subheadings.
const wordsPerSubheading = 350

func evaluateHeadings(in *Input, ctx *Context) []Check {
	l := newChecks(GroupHeadings)

	var h1s, h2s []doctree.Heading
	subheadings := 0
	for _, h := range ctx.Headings {
		switch h.Level() {
		case 1:
			h1s = append(h1s, h)
		case 2:
			h2s = append(h2s, h)
			subheadings++
		default:
			subheadings++
		}
	}

	switch len(h1s) {
	case 0:
		l.fail("h1", "H1 heading", CategoryCritical, "The page has no H1 heading.",
			"Add one H1 that states the topic of the page.")
	case 1:
		l.pass("h1", "H1 heading", CategoryCritical, "The page has exactly one H1 heading.")
	default:
		l.fail("h1", "H1 heading", CategoryCritical, fmt.Sprintf("The page has %d H1 headings.", len(h1s)),
			"Keep a single H1 and turn the others into H2.")
	}

	if ctx.Keyword != "" && len(h1s) > 0 {
		if anyHeadingMatches(h1s, ctx.Keyword) {
			l.pass("h1-keyword", "Keyword in H1", CategoryCritical, "The H1 contains the focus keyword.")
		} else {
			l.fail("h1-keyword", "Keyword in H1", CategoryCritical, "The H1 does not contain the focus keyword.",
				"Rephrase the H1 around the keyword.")
		}
	}

	if HeadingHierarchyValid(ctx.Headings) {
		l.pass("hierarchy", "Heading hierarchy", CategoryImportant, "Heading levels are nested without gaps.")
	} else {
		l.fail("hierarchy", "Heading hierarchy", CategoryImportant, "A heading level is skipped (for example H1 followed by H3).",
			"Go down one level at a time: H1, H2, then H3.")
	}

	if ctx.Keyword != "" && len(h2s) > 0 {
		if anyHeadingMatches(h2s, ctx.Keyword) {
			l.pass("h2-keyword", "Keyword in H2", CategoryImportant, "At least one H2 contains the focus keyword.")
		} else {
			l.warn("h2-keyword", "Keyword in H2", CategoryImportant, "No H2 contains the focus keyword.",
				"Use the keyword or a variant in one of the H2 headings.")
		}
	}

	if ctx.WordCount >= wordsPerSubheading {
		switch {
		case subheadings == 0:
			l.warn("density", "Subheadings", CategoryBonus, fmt.Sprintf("%d words without any subheading.", ctx.WordCount),
				"Split the content into sections with H2 headings.")
		case ctx.WordCount/subheadings > wordsPerSubheading:
			l.warn("density", "Subheadings", CategoryBonus,
				fmt.Sprintf("%d subheadings for %d words is few.", subheadings, ctx.WordCount),
				fmt.Sprintf("Add a subheading every %d words or so.", wordsPerSubheading))
		default:
			l.pass("density", "Subheadings", CategoryBonus, "The content is well divided by subheadings.")
		}
	}

	if len(h1s) > 0 && in.MetaTitle != "" {
		if textnorm.Normalize(h1s[0].Text) == textnorm.Normalize(in.MetaTitle) {
			l.warn("h1-title", "H1 and title", CategoryImportant, "The H1 is identical to the meta title.",
				"Use the H1 to vary the wording and cover a related expression.")
		} else {
			l.pass("h1-title", "H1 and title", CategoryImportant, "The H1 differs from the meta title.")
		}
	}
	return l.list()
}

// HeadingHierarchyValid reports whether the heading levels never jump more
// than one level below the deepest level seen so far.
func HeadingHierarchyValid(headings []doctree.Heading) bool {
	deepest := 0
	for _, h := range headings {
		level := h.Level()
		if level == 0 {
			continue
		}
		if level > deepest+1 {
			return false
		}
		if level > deepest {
			deepest = level
		}
	}
	return true
}

func anyHeadingMatches(headings []doctree.Heading, keyword string) bool {
	for _, h := range headings {
		if textnorm.KeywordMatches(keyword, textnorm.Normalize(h.Text)) {
			return true
		}
	}
	return false
}
