package analyzer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/seo-optimizer/contentscore/pageclass"
	"github.com/seo-optimizer/contentscore/textnorm"
)

var slugCharset = regexp.MustCompile(`^[a-z0-9]+(?:[-/][a-z0-9]+)*$`)

func evaluateURL(in *Input, ctx *Context) []Check {
	l := newChecks(GroupURL)
	slug := strings.Trim(strings.TrimSpace(in.Slug), "/")
	if slug == "" {
		if ctx.PageType == pageclass.Home {
			l.pass("present", "URL", CategoryCritical, "The home page is served at the site root.")
		} else {
			l.fail("present", "URL", CategoryCritical, "The page has no slug.", "Set a short slug that contains the keyword.")
		}
		return l.list()
	}
	l.pass("present", "URL", CategoryCritical, "The page has a slug.")

	maxLen := ctx.Config.Thresholds.SlugMaxLength
	if n := len([]rune(slug)); n > maxLen {
		l.warn("length", "URL length", CategoryImportant, fmt.Sprintf("The slug is long (%d characters, max %d).", n, maxLen),
			"Remove stop words and keep the keyword.")
	} else {
		l.pass("length", "URL length", CategoryImportant, fmt.Sprintf("The slug length is good (%d characters).", n))
	}

	if slugCharset.MatchString(slug) {
		l.pass("charset", "URL characters", CategoryImportant, "The slug only uses lowercase letters, digits and hyphens.")
	} else {
		l.fail("charset", "URL characters", CategoryImportant, "The slug contains uppercase, accented or special characters.",
			fmt.Sprintf("Use \"%s\" instead.", textnorm.Slugify(strings.ReplaceAll(slug, "/", " "))))
	}

	normSlug := textnorm.Normalize(slug)
	if ctx.Keyword != "" {
		switch {
		case containsString(normalizeSlugs(ctx.Config.UtilitySlugs), normSlug):
			l.pass("keyword", "Keyword in URL", CategoryImportant, "Utility pages keep their conventional slug.")
		case slugHasKeyword(normSlug, ctx.Keyword):
			l.pass("keyword", "Keyword in URL", CategoryImportant, "The slug contains the focus keyword.")
		default:
			l.fail("keyword", "Keyword in URL", CategoryImportant, "The slug does not contain the focus keyword.",
				fmt.Sprintf("A slug such as \"%s\" would match the keyword.", textnorm.Slugify(ctx.Keyword)))
		}
	}

	if stops := slugStopWords(normSlug, ctx); len(stops) > 0 {
		l.warn("stop-words", "Stop words in URL", CategoryBonus,
			fmt.Sprintf("The slug contains stop words: %s.", quoteAll(stops, 5)),
			"Short slugs without articles or prepositions are easier to read and share.")
	} else {
		l.pass("stop-words", "Stop words in URL", CategoryBonus, "The slug has no stop words.")
	}
	return l.list()
}

func slugHasKeyword(normSlug, keyword string) bool {
	kwSlug := textnorm.Slugify(keyword)
	if kwSlug != "" && strings.Contains(normSlug, kwSlug) {
		return true
	}
	words := textnorm.SignificantWords(keyword)
	if len(words) < 2 {
		return false
	}
	for _, w := range words {
		if !strings.Contains(normSlug, w) {
			return false
		}
	}
	return true
}

// slugStopWords returns the stop words found in the hyphen segments of the
// slug, once the configured compound expressions have been removed.
func slugStopWords(normSlug string, ctx *Context) []string {
	stripped := "-" + strings.ReplaceAll(normSlug, "/", "-") + "-"
	for _, compound := range normalizeSlugs(ctx.Config.StopWordCompounds) {
		if compound != "" {
			stripped = strings.ReplaceAll(stripped, "-"+compound+"-", "-")
		}
	}
	lex := ctx.Lexicon()
	var found []string
	for _, seg := range strings.Split(stripped, "-") {
		if seg != "" && lex.IsStopWord(seg) && !containsString(found, seg) {
			found = append(found, seg)
		}
	}
	return found
}

func normalizeSlugs(list []string) []string {
	out := make([]string, 0, len(list))
	for _, s := range list {
		out = append(out, strings.Trim(textnorm.Normalize(s), "/"))
	}
	return out
}
