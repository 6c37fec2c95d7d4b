package analyzer

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/seo-optimizer/contentscore/pageclass"
)

var yearPattern = regexp.MustCompile(`\b(19|20)\d{2}\b`)

func evaluateFreshness(in *Input, ctx *Context) []Check {
	l := newChecks(GroupFreshness)
	t := ctx.Config.Thresholds

	limit := t.FreshnessDays
	if pageclass.IsEvergreen(ctx.PageType) {
		limit = t.EvergreenDays
	}

	age := -1
	if in.UpdatedAt != nil && !in.UpdatedAt.IsZero() {
		age = daysBetween(*in.UpdatedAt, ctx.Now)
		if age <= limit {
			l.pass("age", "Last update", CategoryImportant, fmt.Sprintf("Updated %d days ago.", age))
		} else {
			l.fail("age", "Last update", CategoryImportant,
				fmt.Sprintf("Updated %d days ago, a %s page should be reviewed every %d days.", age, ctx.PageType, limit),
				"Refresh the figures, examples and dates of the page.")
		}
	} else {
		l.warn("age", "Last update", CategoryImportant, "The page has no update date.",
			"Publish the update date so that visitors and search engines know the content is current.")
	}

	if in.LastReviewedAt != nil && !in.LastReviewedAt.IsZero() {
		if days := daysBetween(*in.LastReviewedAt, ctx.Now); days <= t.ReviewDays {
			l.pass("review", "Editorial review", CategoryBonus, fmt.Sprintf("Reviewed %d days ago.", days))
		} else {
			l.warn("review", "Editorial review", CategoryBonus, fmt.Sprintf("Last reviewed %d days ago.", days),
				"Check that the information is still accurate.")
		}
	}

	if stale := staleYears(ctx, in); len(stale) > 0 {
		l.warn("stale-years", "Dated mentions", CategoryBonus,
			fmt.Sprintf("The title or headings mention past years: %s.", strings.Join(stale, ", ")),
			"Update the year or remove it from the headline.")
	} else {
		l.pass("stale-years", "Dated mentions", CategoryBonus, "No outdated year in the title or headings.")
	}

	if age >= 0 {
		if age > limit && ctx.WordCount < t.ThinWords*3 {
			l.fail("thin-old", "Outdated thin page", CategoryImportant,
				fmt.Sprintf("The page is both short (%d words) and old (%d days).", ctx.WordCount, age),
				"Expand and update the page, or merge it into a stronger one.")
		} else {
			l.pass("thin-old", "Outdated thin page", CategoryImportant, "The page is not both short and outdated.")
		}
	}
	return l.list()
}

// staleYears returns the years older than last year mentioned in the title,
// the description or a heading.
func staleYears(ctx *Context, in *Input) []string {
	sources := []string{in.MetaTitle, in.MetaDescription}
	for _, h := range ctx.Headings {
		sources = append(sources, h.Text)
	}
	current := ctx.Now.Year()
	var stale []string
	for _, s := range sources {
		for _, m := range yearPattern.FindAllString(s, -1) {
			year, err := strconv.Atoi(m)
			if err != nil || year >= current-1 {
				continue
			}
			if !containsString(stale, m) {
				stale = append(stale, m)
			}
		}
	}
	return stale
}

func daysBetween(from, to time.Time) int {
	d := to.Sub(from)
	if d < 0 {
		return 0
	}
	return int(d.Hours() / 24)
}
