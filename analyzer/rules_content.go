package analyzer

import (
	"fmt"
	"regexp"

	"github.com/seo-optimizer/contentscore/pageclass"
	"github.com/seo-optimizer/contentscore/textnorm"
)

const (
	introLength          = 500
	distributionMinWords = 300
	listMinWords         = 500
)

// sentenceBreak is a period that ends a sentence: followed by whitespace, so
// that domains and decimals are not cut.
var sentenceBreak = regexp.MustCompile(`[.!?]\s`)

func evaluateContent(_ *Input, ctx *Context) []Check {
	l := newChecks(GroupContent)
	t := ctx.Config.Thresholds
	wc := ctx.WordCount

	floor := pageclass.MinWordCount(ctx.PageType)
	switch {
	case wc >= floor:
		l.pass("length", "Content length", CategoryCritical,
			fmt.Sprintf("%d words, enough for a %s page (min %d).", wc, ctx.PageType, floor))
	case wc >= floor/2:
		l.warn("length", "Content length", CategoryCritical,
			fmt.Sprintf("%d words, a %s page should have at least %d.", wc, ctx.PageType, floor),
			"Answer the questions your visitors ask about this topic.")
	default:
		l.fail("length", "Content length", CategoryCritical,
			fmt.Sprintf("Only %d words, a %s page should have at least %d.", wc, ctx.PageType, floor),
			"Develop the content: services, process, examples, FAQ.")
	}

	if wc < t.ThinWords {
		l.fail("thin", "Thin content", CategoryImportant,
			fmt.Sprintf("%d words is considered thin content (min %d).", wc, t.ThinWords),
			"Pages with very little text rarely rank.")
	} else {
		l.pass("thin", "Thin content", CategoryImportant, "The page is not thin content.")
	}

	if ctx.Keyword != "" && wc > 0 {
		if textnorm.KeywordMatches(ctx.Keyword, textnorm.Normalize(introduction(ctx.Text))) {
			l.pass("keyword-intro", "Keyword in introduction", CategoryImportant, "The keyword appears in the introduction.")
		} else {
			l.fail("keyword-intro", "Keyword in introduction", CategoryImportant, "The keyword is missing from the introduction.",
				"Use the keyword in the first paragraph.")
		}

		occ := textnorm.CountOccurrences(ctx.Keyword, ctx.NormText, wc)
		switch {
		case !occ.WordLevelMatch:
			l.fail("keyword-density", "Keyword density", CategoryImportant, "The keyword never appears in the content.",
				"Use the keyword naturally a few times in the text.")
		case occ.ExactCount == 0:
			l.warn("keyword-density", "Keyword density", CategoryImportant,
				fmt.Sprintf("The keyword words are present but never as an exact phrase (about %.1f%%).", occ.EstimatedDensity),
				"Use the exact expression at least once.")
		case occ.EstimatedDensity < t.DensityMin:
			l.warn("keyword-density", "Keyword density", CategoryImportant,
				fmt.Sprintf("The keyword density is low (%.1f%%, aim for %.1f-%.1f%%).", occ.EstimatedDensity, t.DensityMin, t.DensityMax),
				"Repeat the keyword or close variants in the text.")
		case occ.EstimatedDensity > t.DensityMax*2:
			l.fail("keyword-density", "Keyword density", CategoryImportant,
				fmt.Sprintf("The keyword density is excessive (%.1f%%, max %.1f%%).", occ.EstimatedDensity, t.DensityMax),
				"Replace some occurrences with synonyms to avoid keyword stuffing.")
		case occ.EstimatedDensity > t.DensityMax:
			l.warn("keyword-density", "Keyword density", CategoryImportant,
				fmt.Sprintf("The keyword density is high (%.1f%%, max %.1f%%).", occ.EstimatedDensity, t.DensityMax),
				"Replace some occurrences with synonyms.")
		default:
			l.pass("keyword-density", "Keyword density", CategoryImportant,
				fmt.Sprintf("The keyword density is good (%.1f%%, %d occurrences).", occ.EstimatedDensity, occ.ExactCount))
		}

		if wc >= distributionMinWords {
			switch n := keywordThirds(ctx.Text, ctx.Keyword); {
			case n >= 2:
				l.pass("keyword-distribution", "Keyword distribution", CategoryImportant,
					fmt.Sprintf("The keyword appears in %d thirds of the content.", n))
			case n == 1:
				l.warn("keyword-distribution", "Keyword distribution", CategoryImportant,
					"The keyword is concentrated in one third of the content.",
					"Use the keyword at the beginning, the middle and the end of the page.")
			default:
				l.fail("keyword-distribution", "Keyword distribution", CategoryImportant,
					"The keyword does not appear in any third of the content.",
					"Use the keyword at the beginning, the middle and the end of the page.")
			}
		}
	}

	var placeholders []string
	for _, re := range ctx.Lexicon().PlaceholderPatterns {
		if m := re.FindString(ctx.Text); m != "" {
			placeholders = append(placeholders, m)
		}
	}
	if len(placeholders) > 0 {
		l.fail("placeholder", "Placeholder text", CategoryCritical,
			fmt.Sprintf("The content still contains placeholder text: %s.", quoteAll(placeholders, 3)),
			"Replace the placeholder text before publishing.")
	} else {
		l.pass("placeholder", "Placeholder text", CategoryCritical, "No placeholder text was found.")
	}

	if wc >= listMinWords {
		if len(ctx.Lists) > 0 {
			l.pass("lists", "Lists", CategoryBonus, fmt.Sprintf("The content uses %d list(s).", len(ctx.Lists)))
		} else {
			l.warn("lists", "Lists", CategoryBonus, "This long content has no list.",
				"Bulleted lists make long pages easier to scan.")
		}
	}
	return l.list()
}

// introduction returns the first introLength characters of text, extended to
// the end of the sentence in progress.
func introduction(text string) string {
	runes := []rune(text)
	if len(runes) <= introLength {
		return text
	}
	head := len(string(runes[:introLength]))
	if loc := sentenceBreak.FindStringIndex(text[head:]); loc != nil {
		return text[:head+loc[1]]
	}
	return text
}

// keywordThirds splits text into three parts of equal character length and
// counts the parts that contain keyword.
func keywordThirds(text, keyword string) int {
	runes := []rune(text)
	size := len(runes) / 3
	if size == 0 {
		return 0
	}
	count := 0
	for i := 0; i < 3; i++ {
		end := (i + 1) * size
		if i == 2 {
			end = len(runes)
		}
		if textnorm.KeywordMatches(keyword, textnorm.Normalize(string(runes[i*size:end]))) {
			count++
		}
	}
	return count
}
