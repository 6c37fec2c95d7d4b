package analyzer

import (
	"fmt"
	"strings"
)

// Character limits of link previews on the main social platforms.
const (
	socialTitleLimit       = 70
	socialDescriptionLimit = 200
)

func evaluateSocial(in *Input, ctx *Context) []Check {
	l := newChecks(GroupSocial)

	switch {
	case in.OGImage != nil && in.OGImage.URL != "":
		l.pass("image", "Preview image", CategoryImportant, "A social preview image is set.")
	case ctx.Images.Total > 0:
		l.warn("image", "Preview image", CategoryImportant, "No preview image is set, platforms will pick one from the page.",
			"Choose a 1200x630 image for shares on social networks.")
	default:
		l.fail("image", "Preview image", CategoryImportant, "No preview image is set and the page has no image.",
			"Shares without an image get far fewer clicks.")
	}

	title := firstNonEmpty(in.OGTitle, in.MetaTitle)
	if n := runeLen(title); n > socialTitleLimit {
		l.warn("title", "Preview title", CategoryBonus,
			fmt.Sprintf("The shared title (%d characters) will be cut after %d.", n, socialTitleLimit),
			"Set a shorter social title.")
	} else if n > 0 {
		l.pass("title", "Preview title", CategoryBonus, "The shared title fits in previews.")
	}

	desc := firstNonEmpty(in.OGDescription, in.MetaDescription)
	if n := runeLen(desc); n > socialDescriptionLimit {
		l.warn("description", "Preview description", CategoryBonus,
			fmt.Sprintf("The shared description (%d characters) will be cut after %d.", n, socialDescriptionLimit),
			"Set a shorter social description.")
	} else if n > 0 {
		l.pass("description", "Preview description", CategoryBonus, "The shared description fits in previews.")
	}
	return l.list()
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
