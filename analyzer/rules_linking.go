package analyzer

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/seo-optimizer/contentscore/doctree"
	"github.com/seo-optimizer/contentscore/pageclass"
	"github.com/seo-optimizer/contentscore/textnorm"
)

type linkKind int

const (
	linkPlaceholder linkKind = iota
	linkInternal
	linkExternal
)

// classifyLink sorts a link target. A link is internal when it is relative,
// starts with "/" or "#", or points to the configured site.
func classifyLink(raw, siteURL string) linkKind {
	u := strings.TrimSpace(raw)
	lower := strings.ToLower(u)
	switch {
	case u == "", u == "#", strings.HasPrefix(lower, "javascript:"):
		return linkPlaceholder
	case strings.HasPrefix(u, "/"), strings.HasPrefix(u, "#"):
		return linkInternal
	case !strings.Contains(u, ":"):
		return linkInternal
	}
	if siteURL != "" && sameOrigin(u, siteURL) {
		return linkInternal
	}
	return linkExternal
}

func sameOrigin(a, b string) bool {
	ua, err := url.Parse(a)
	if err != nil {
		return false
	}
	ub, err := url.Parse(b)
	if err != nil {
		return false
	}
	return ua.Host != "" && strings.EqualFold(ua.Scheme, ub.Scheme) && strings.EqualFold(ua.Host, ub.Host)
}

func countLinks(links []doctree.Link, siteURL string) (internal, external, placeholder int) {
	for _, lk := range links {
		switch classifyLink(lk.URL, siteURL) {
		case linkInternal:
			internal++
		case linkExternal:
			external++
		default:
			placeholder++
		}
	}
	return internal, external, placeholder
}

func evaluateLinking(_ *Input, ctx *Context) []Check {
	l := newChecks(GroupLinking)
	t := ctx.Config.Thresholds
	internal, external, placeholder := countLinks(ctx.Links, ctx.Config.SiteURL)

	switch {
	case internal >= t.MinInternalLinks:
		l.pass("internal", "Internal links", CategoryImportant, fmt.Sprintf("The page has %d internal links.", internal))
	case internal > 0:
		l.warn("internal", "Internal links", CategoryImportant,
			fmt.Sprintf("The page has %d internal link, %d are recommended.", internal, t.MinInternalLinks),
			"Link to related services, articles or the contact page.")
	default:
		l.fail("internal", "Internal links", CategoryImportant, "The page has no internal link.",
			"Internal links help visitors and search engines discover your other pages.")
	}

	switch {
	case pageclass.IsUtility(ctx.PageType):
		l.pass("external", "External links", CategoryBonus,
			fmt.Sprintf("External links are not expected on a %s page.", ctx.PageType))
	case external > 0:
		l.pass("external", "External links", CategoryBonus, fmt.Sprintf("The page cites %d external source(s).", external))
	default:
		l.warn("external", "External links", CategoryBonus, "The page has no external link.",
			"Citing a reliable source can strengthen the credibility of the content.")
	}

	if len(ctx.Links) == 0 {
		return l.list()
	}

	generic := genericAnchors(ctx.Links, ctx.Lexicon().GenericAnchors)
	if len(generic) > 0 {
		l.warn("anchor-text", "Anchor text", CategoryImportant,
			fmt.Sprintf("%d link(s) use a generic anchor: %s.", len(generic), quoteAll(generic, 3)),
			"Describe the target page in the link text.")
	} else {
		l.pass("anchor-text", "Anchor text", CategoryImportant, "Link texts describe their target.")
	}

	if placeholder > 0 {
		l.fail("empty-href", "Empty links", CategoryImportant,
			fmt.Sprintf("%d link(s) have an empty or placeholder target.", placeholder),
			"Set a real URL or remove the link.")
	} else {
		l.pass("empty-href", "Empty links", CategoryImportant, "Every link has a target.")
	}
	return l.list()
}

func genericAnchors(links []doctree.Link, anchors []string) []string {
	var found []string
	for _, lk := range links {
		text := textnorm.Normalize(lk.Text)
		if text != "" && containsString(anchors, text) {
			found = append(found, strings.TrimSpace(lk.Text))
		}
	}
	return found
}
