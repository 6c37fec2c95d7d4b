package analyzer

import (
	"fmt"
	"strings"

	"github.com/seo-optimizer/contentscore/linguistics"
	"github.com/seo-optimizer/contentscore/textnorm"
)

// repeatedBlockWords is the minimum length of a sentence for its repetition
// to count as a duplicated block.
const repeatedBlockWords = 6

func evaluateQuality(_ *Input, ctx *Context) []Check {
	l := newChecks(GroupQuality)

	var boilerplate []string
	for _, re := range ctx.Lexicon().BoilerplatePatterns {
		if m := re.FindString(ctx.Text); m != "" {
			boilerplate = append(boilerplate, m)
		}
	}
	if len(boilerplate) > 0 {
		l.warn("boilerplate", "Boilerplate", CategoryImportant,
			fmt.Sprintf("The content contains generic phrases: %s.", quoteAll(boilerplate, 3)),
			"Replace stock phrases with information specific to your business.")
	} else if ctx.WordCount > 0 {
		l.pass("boilerplate", "Boilerplate", CategoryImportant, "No stock phrase was found.")
	}

	if dup := repeatedSentences(ctx.Sentences); len(dup) > 0 {
		l.fail("duplicate-blocks", "Duplicated content", CategoryImportant,
			fmt.Sprintf("%d passage(s) are repeated on the page, for example \"%s\".", len(dup), truncate(dup[0], 60)),
			"Each block should bring new information.")
	} else if ctx.WordCount > 0 {
		l.pass("duplicate-blocks", "Duplicated content", CategoryImportant, "No passage is repeated.")
	}

	t := ctx.Config.Thresholds
	switch wc := ctx.WordCount; {
	case wc < t.ThinWords+50:
		l.fail("thin-band", "Content depth", CategoryImportant, fmt.Sprintf("%d words is too little to be useful.", wc),
			"Aim for at least 300 words of original content.")
	case wc < t.ThinWords*3:
		l.warn("thin-band", "Content depth", CategoryImportant, fmt.Sprintf("%d words is a light page.", wc),
			"Aim for at least 300 words of original content.")
	default:
		l.pass("thin-band", "Content depth", CategoryImportant, fmt.Sprintf("%d words of content.", wc))
	}
	return l.list()
}

// repeatedSentences returns the sentences of at least repeatedBlockWords words
// that appear more than once, in order of first repetition.
func repeatedSentences(sentences []string) []string {
	seen := map[string]int{}
	var dup []string
	for _, s := range sentences {
		if len(linguistics.Words(s)) < repeatedBlockWords {
			continue
		}
		key := textnorm.Normalize(s)
		seen[key]++
		if seen[key] == 2 {
			dup = append(dup, s)
		}
	}
	return dup
}

func truncate(s string, n int) string {
	r := []rune(strings.TrimSpace(s))
	if len(r) <= n {
		return string(r)
	}
	return string(r[:n]) + "…"
}
