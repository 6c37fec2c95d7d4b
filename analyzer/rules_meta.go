package analyzer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/seo-optimizer/contentscore/textnorm"
)

var numericList = regexp.MustCompile(`(?:^|\s)\d+\s+\p{L}{3,}`)

func evaluateMeta(in *Input, ctx *Context) []Check {
	l := newChecks(GroupMeta)
	t := ctx.Config.Thresholds
	desc := strings.TrimSpace(in.MetaDescription)
	if desc == "" {
		l.fail("present", "Meta description", CategoryCritical, "The page has no meta description.",
			"Summarize the page in one or two sentences with the keyword and a call to action.")
		return l.list()
	}
	l.pass("present", "Meta description", CategoryCritical, "The page has a meta description.")

	n := runeLen(desc)
	switch {
	case n < t.DescriptionMin/2:
		l.fail("length", "Description length", CategoryCritical,
			fmt.Sprintf("The description is far too short (%d characters, aim for %d-%d).", n, t.DescriptionMin, t.DescriptionMax),
			"Search engines may replace it with a random excerpt of the page.")
	case n < t.DescriptionMin:
		l.warn("length", "Description length", CategoryCritical,
			fmt.Sprintf("The description is short (%d characters, aim for %d-%d).", n, t.DescriptionMin, t.DescriptionMax),
			"Add a benefit or a call to action.")
	case n > t.DescriptionMax:
		l.warn("length", "Description length", CategoryCritical,
			fmt.Sprintf("The description is long (%d characters, max %d) and will be truncated.", n, t.DescriptionMax),
			"Keep the key message in the first 120 characters.")
	default:
		l.pass("length", "Description length", CategoryCritical, fmt.Sprintf("The description length is good (%d characters).", n))
	}

	if ctx.Keyword != "" {
		if textnorm.KeywordMatches(ctx.Keyword, textnorm.Normalize(desc)) {
			l.pass("keyword", "Keyword in description", CategoryImportant, "The description contains the focus keyword.")
		} else {
			l.fail("keyword", "Keyword in description", CategoryImportant, "The description does not contain the focus keyword.",
				"Search engines highlight the searched words in the description.")
		}
	}

	lex := ctx.Lexicon()
	tok := tokenize(desc)
	switch {
	case len(tok.matching(lex.ActionVerbs)) > 0,
		numericList.MatchString(desc),
		strings.Contains(desc, "?"),
		containsString(lex.QuestionWords, tok.first()):
		l.pass("cta", "Call to action", CategoryBonus, "The description invites the reader to act.")
	default:
		l.warn("cta", "Call to action", CategoryBonus, "The description has no call to action.",
			"End with an action verb such as \"discover\" or \"contact us\".")
	}
	return l.list()
}
