package analyzer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/seo-optimizer/contentscore/textnorm"
)

var (
	titleSeparators = regexp.MustCompile(`\s*[|–—:·•»]\s*|\s+-\s+`)
	hasDigit        = regexp.MustCompile(`\d`)
)

func evaluateTitle(in *Input, ctx *Context) []Check {
	l := newChecks(GroupTitle)
	t := ctx.Config.Thresholds
	title := strings.TrimSpace(in.MetaTitle)
	if title == "" {
		l.fail("present", "Meta title", CategoryCritical, "The page has no meta title.",
			"Write a unique title that starts with the focus keyword.")
		return l.list()
	}
	l.pass("present", "Meta title", CategoryCritical, "The page has a meta title.")

	n := runeLen(title)
	switch {
	case n < t.TitleMin/2:
		l.fail("length", "Title length", CategoryCritical,
			fmt.Sprintf("The title is far too short (%d characters, aim for %d-%d).", n, t.TitleMin, t.TitleMax),
			"Describe the page and add the keyword or a location.")
	case n < t.TitleMin:
		l.warn("length", "Title length", CategoryCritical,
			fmt.Sprintf("The title is short (%d characters, aim for %d-%d).", n, t.TitleMin, t.TitleMax),
			"Use the remaining space for a benefit or the brand.")
	case n > t.TitleMax+15:
		l.fail("length", "Title length", CategoryCritical,
			fmt.Sprintf("The title is far too long (%d characters, max %d) and will be cut in results.", n, t.TitleMax),
			"Keep the most important words in the first 50 characters.")
	case n > t.TitleMax:
		l.warn("length", "Title length", CategoryCritical,
			fmt.Sprintf("The title is long (%d characters, max %d) and may be truncated.", n, t.TitleMax),
			"Shorten the title or move the brand to the end.")
	default:
		l.pass("length", "Title length", CategoryCritical, fmt.Sprintf("The title length is good (%d characters).", n))
	}

	normTitle := textnorm.Normalize(title)
	if ctx.Keyword == "" {
		l.warn("keyword", "Keyword in title", CategoryCritical, "No focus keyword is defined for this page.",
			"Set a focus keyword to enable keyword checks.")
	} else if textnorm.KeywordMatches(ctx.Keyword, normTitle) {
		l.pass("keyword", "Keyword in title", CategoryCritical, "The title contains the focus keyword.")
		if i := strings.Index(normTitle, ctx.Keyword); i >= 0 && i <= len(normTitle)/2 {
			l.pass("keyword-position", "Keyword position", CategoryBonus, "The keyword appears in the first half of the title.")
		} else {
			l.warn("keyword-position", "Keyword position", CategoryBonus, "The keyword is not at the start of the title.",
				"Move the exact keyword towards the beginning of the title.")
		}
	} else {
		l.fail("keyword", "Keyword in title", CategoryCritical, "The title does not contain the focus keyword.",
			fmt.Sprintf("Add \"%s\" to the title.", ctx.Keyword))
	}

	if dup := repeatedSegment(title); dup != "" {
		l.fail("duplicate-segments", "Repeated segments", CategoryImportant,
			fmt.Sprintf("The segment \"%s\" is repeated in the title.", dup),
			"Check the title template: the brand is probably appended twice.")
	} else {
		l.pass("duplicate-segments", "Repeated segments", CategoryImportant, "No segment is repeated in the title.")
	}

	lex := ctx.Lexicon()
	tok := tokenize(title)
	var signals []string
	if len(tok.matching(lex.PowerWords)) > 0 {
		signals = append(signals, "power word")
	}
	if hasDigit.MatchString(title) {
		signals = append(signals, "number")
	}
	if strings.Contains(title, "?") || containsString(lex.QuestionWords, tok.first()) {
		signals = append(signals, "question")
	}
	if len(tok.matching(lex.SentimentWords)) > 0 {
		signals = append(signals, "sentiment")
	}
	if len(signals) > 0 {
		l.pass("engagement", "Click appeal", CategoryBonus, "The title uses: "+strings.Join(signals, ", ")+".")
	} else {
		l.warn("engagement", "Click appeal", CategoryBonus, "The title has no power word, number, question or emotional word.",
			"A number or a strong word can improve the click-through rate.")
	}
	return l.list()
}

// repeatedSegment returns the first segment of title, split on the usual
// separators, that appears more than once after normalization.
func repeatedSegment(title string) string {
	seen := map[string]struct{}{}
	for _, seg := range titleSeparators.Split(title, -1) {
		n := textnorm.Normalize(seg)
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			return strings.TrimSpace(seg)
		}
		seen[n] = struct{}{}
	}
	return ""
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
