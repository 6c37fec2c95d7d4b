package analyzer

import (
	"fmt"

	"github.com/seo-optimizer/contentscore/linguistics"
	"github.com/seo-optimizer/contentscore/pageclass"
	"github.com/seo-optimizer/contentscore/textnorm"
)

const descriptiveAltWords = 4

func evaluateImages(in *Input, ctx *Context) []Check {
	l := newChecks(GroupImages)
	if !pageclass.ExpectsImagery(ctx.PageType) {
		l.pass("not-required", "Images", CategoryImportant,
			fmt.Sprintf("Images are not expected on a %s page.", ctx.PageType))
		return l.list()
	}

	img := ctx.Images
	if img.Total > 0 {
		ratio := float64(img.WithAlt) / float64(img.Total)
		switch {
		case ratio >= 1:
			l.pass("alt-coverage", "Alt text", CategoryImportant, fmt.Sprintf("All %d images have an alt text.", img.Total))
		case ratio >= 0.5:
			l.warn("alt-coverage", "Alt text", CategoryImportant,
				fmt.Sprintf("%d of %d images have an alt text.", img.WithAlt, img.Total),
				"Describe every informative image for screen readers and image search.")
		default:
			l.fail("alt-coverage", "Alt text", CategoryImportant,
				fmt.Sprintf("Only %d of %d images have an alt text.", img.WithAlt, img.Total),
				"Describe every informative image for screen readers and image search.")
		}

		if descriptiveAlt(img.AltTexts, ctx.Keyword) {
			l.pass("alt-keyword", "Descriptive alt text", CategoryBonus, "At least one alt text is descriptive or contains the keyword.")
		} else {
			l.warn("alt-keyword", "Descriptive alt text", CategoryBonus, "No alt text contains the keyword or describes the image precisely.",
				"Describe the main image in a short sentence that includes the keyword.")
		}
	}

	minImages := 1
	if in.IsPost {
		minImages = 2
	}
	switch {
	case img.Total >= minImages:
		l.pass("count", "Number of images", CategoryImportant, fmt.Sprintf("The page has %d image(s).", img.Total))
	case img.Total == 0:
		l.fail("count", "Number of images", CategoryImportant, "The page has no image.",
			"Add at least one relevant image with an alt text.")
	default:
		l.warn("count", "Number of images", CategoryImportant,
			fmt.Sprintf("The page has %d image, %d are recommended.", img.Total, minImages),
			"Illustrate the main sections of the article.")
	}
	return l.list()
}

func descriptiveAlt(alts []string, keyword string) bool {
	for _, alt := range alts {
		if keyword != "" && textnorm.KeywordMatches(keyword, textnorm.Normalize(alt)) {
			return true
		}
		if len(linguistics.Words(alt)) >= descriptiveAltWords {
			return true
		}
	}
	return false
}
