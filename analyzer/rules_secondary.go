package analyzer

import (
	"fmt"

	"github.com/seo-optimizer/contentscore/doctree"
	"github.com/seo-optimizer/contentscore/textnorm"
)

func evaluateSecondary(in *Input, ctx *Context) []Check {
	l := newChecks(GroupSecondary)
	title := textnorm.Normalize(in.MetaTitle)
	desc := textnorm.Normalize(in.MetaDescription)

	var subheadings []doctree.Heading
	for _, h := range ctx.Headings {
		if lvl := h.Level(); lvl == 2 || lvl == 3 {
			subheadings = append(subheadings, h)
		}
	}

	for _, kw := range ctx.SecondaryKeywords {
		id := textnorm.Slugify(kw)

		if textnorm.KeywordMatches(kw, title) {
			l.pass(id+"-title", "Secondary keyword in title", CategoryBonus, fmt.Sprintf("\"%s\" appears in the title.", kw))
		} else {
			l.warn(id+"-title", "Secondary keyword in title", CategoryBonus, fmt.Sprintf("\"%s\" is not in the title.", kw),
				"Secondary keywords can complete the title when space allows.")
		}

		if textnorm.KeywordMatches(kw, desc) {
			l.pass(id+"-description", "Secondary keyword in description", CategoryBonus,
				fmt.Sprintf("\"%s\" appears in the description.", kw))
		} else {
			l.warn(id+"-description", "Secondary keyword in description", CategoryBonus,
				fmt.Sprintf("\"%s\" is not in the description.", kw), "")
		}

		occ := textnorm.CountOccurrences(kw, ctx.NormText, ctx.WordCount)
		switch {
		case !occ.WordLevelMatch:
			l.fail(id+"-content", "Secondary keyword in content", CategoryImportant,
				fmt.Sprintf("\"%s\" never appears in the content.", kw), "Cover this topic in a paragraph.")
		case occ.EstimatedDensity > ctx.Config.Thresholds.DensityMax:
			l.warn(id+"-content", "Secondary keyword in content", CategoryImportant,
				fmt.Sprintf("\"%s\" is overused (%.1f%%).", kw, occ.EstimatedDensity), "Use synonyms.")
		default:
			l.pass(id+"-content", "Secondary keyword in content", CategoryImportant,
				fmt.Sprintf("\"%s\" appears in the content (%.1f%%).", kw, occ.EstimatedDensity))
		}

		if anyHeadingMatches(subheadings, kw) {
			l.pass(id+"-subheading", "Secondary keyword in subheading", CategoryBonus,
				fmt.Sprintf("\"%s\" appears in a subheading.", kw))
		} else {
			l.warn(id+"-subheading", "Secondary keyword in subheading", CategoryBonus,
				fmt.Sprintf("\"%s\" is not in any H2 or H3.", kw), "Dedicate a section to this keyword.")
		}
	}
	return l.list()
}
