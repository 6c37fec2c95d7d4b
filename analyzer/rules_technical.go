package analyzer

import (
	"fmt"
	"net/url"
	"strings"
)

func evaluateTechnical(in *Input, ctx *Context) []Check {
	l := newChecks(GroupTechnical)

	if canonical := strings.TrimSpace(in.CanonicalURL); canonical != "" {
		u, err := url.Parse(canonical)
		switch {
		case err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https"):
			l.fail("canonical", "Canonical URL", CategoryImportant,
				fmt.Sprintf("The canonical URL \"%s\" is not absolute.", canonical),
				"Use a full URL such as https://example.com/page.")
		case ctx.Config.SiteURL != "" && !sameOrigin(canonical, ctx.Config.SiteURL):
			l.fail("canonical", "Canonical URL", CategoryImportant,
				fmt.Sprintf("The canonical URL points to another site than %s.", ctx.Config.SiteURL),
				"A cross-domain canonical removes this page from search results.")
		default:
			l.pass("canonical", "Canonical URL", CategoryImportant, "The canonical URL is valid.")
		}
	}

	robots := strings.ToLower(in.Robots)
	if strings.Contains(robots, "noindex") {
		if containsString(ctx.Config.NoindexPageTypes, string(ctx.PageType)) {
			l.warn("noindex", "Indexing", CategoryCritical,
				fmt.Sprintf("The %s page is excluded from search results.", ctx.PageType),
				"This is usual for this kind of page, check that it is intended.")
		} else {
			l.fail("noindex", "Indexing", CategoryCritical, "The page is excluded from search results (noindex).",
				"Remove the noindex directive unless the page must stay private.")
		}
	} else {
		l.pass("noindex", "Indexing", CategoryCritical, "The page can be indexed.")
	}

	if strings.Contains(robots, "nofollow") {
		l.warn("nofollow", "Link following", CategoryBonus, "Search engines will not follow the links of this page (nofollow).",
			"Remove nofollow so that internal links pass authority.")
	}
	return l.list()
}
