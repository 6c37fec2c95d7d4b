package analyzer

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/seo-optimizer/contentscore/doctree"
	"github.com/seo-optimizer/contentscore/linguistics"
	"github.com/seo-optimizer/contentscore/textnorm"
)

const (
	minAnchorRunes = 3
	linkTextRatio  = 0.3
)

var (
	filenameAlt = regexp.MustCompile(`(?i)(\.(jpe?g|png|gif|webp|svg|avif|heic)$|^[\w-]*_[\w-]*\d+$)`)
	cameraAlt   = regexp.MustCompile(`(?i)^(img|dsc|dscn|dscf|dcim|pxl|gopr|photo|screenshot)[\s_-]?\d+`)
)

func evaluateAccessibility(_ *Input, ctx *Context) []Check {
	l := newChecks(GroupAccessibility)

	if len(ctx.Links) > 0 {
		short := 0
		for _, lk := range ctx.Links {
			if runeLen(lk.Text) < minAnchorRunes {
				short++
			}
		}
		if short > 0 {
			l.warn("short-anchors", "Link text length", CategoryImportant,
				fmt.Sprintf("%d link(s) have a text shorter than %d characters.", short, minAnchorRunes),
				"Screen reader users navigate by link text, make it explicit.")
		} else {
			l.pass("short-anchors", "Link text length", CategoryImportant, "Every link has a readable text.")
		}
	}

	if len(ctx.Images.AltTexts) > 0 {
		if bad := poorAltTexts(ctx.Images.AltTexts, ctx.Lexicon()); len(bad) > 0 {
			l.warn("alt-quality", "Alt text quality", CategoryImportant,
				fmt.Sprintf("Some alt texts do not describe the image: %s.", quoteAll(bad, 3)),
				"Describe what the image shows instead of its file name.")
		} else {
			l.pass("alt-quality", "Alt text quality", CategoryImportant, "Alt texts describe their images.")
		}
	}

	if len(ctx.Headings) > 0 {
		empty := 0
		for _, h := range ctx.Headings {
			if h.Level() > 1 && strings.TrimSpace(h.Text) == "" {
				empty++
			}
		}
		if empty > 0 {
			l.fail("empty-headings", "Empty headings", CategoryImportant, fmt.Sprintf("%d heading(s) are empty.", empty),
				"Remove empty headings, they are announced by screen readers.")
		} else {
			l.pass("empty-headings", "Empty headings", CategoryImportant, "No heading is empty.")
		}

		var shouting []string
		for _, h := range ctx.Headings {
			if isAllCaps(h.Text) {
				shouting = append(shouting, h.Text)
			}
		}
		if len(shouting) > 0 {
			l.warn("all-caps", "Capitalized headings", CategoryBonus,
				fmt.Sprintf("%d heading(s) are written in capitals.", len(shouting)),
				"Use CSS for capitals, some screen readers spell them letter by letter.")
		} else {
			l.pass("all-caps", "Capitalized headings", CategoryBonus, "Headings are not written in capitals.")
		}
	}

	if len(ctx.Links) > 1 {
		dup := 0
		for i := 1; i < len(ctx.Links); i++ {
			prev, cur := ctx.Links[i-1], ctx.Links[i]
			if cur.URL != "" && cur.URL == prev.URL {
				dup++
			}
		}
		if dup > 0 {
			l.warn("duplicate-links", "Adjacent duplicate links", CategoryBonus,
				fmt.Sprintf("%d link(s) repeat the target of the previous link.", dup),
				"Merge adjacent links to the same page.")
		} else {
			l.pass("duplicate-links", "Adjacent duplicate links", CategoryBonus, "No adjacent links share a target.")
		}
	}

	if ctx.WordCount > 0 && len(ctx.Links) > 0 {
		linkWords := 0
		for _, lk := range ctx.Links {
			linkWords += len(linguistics.Words(lk.Text))
		}
		ratio := float64(linkWords) / float64(ctx.WordCount)
		if ratio > linkTextRatio {
			l.warn("link-ratio", "Link density", CategoryBonus,
				fmt.Sprintf("%s of the words are link text.", percent(ratio)),
				"Too many links make the text hard to follow.")
		} else {
			l.pass("link-ratio", "Link density", CategoryBonus, "Links are balanced with the text.")
		}
	}

	if hasImageBlock(ctx.Blocks) {
		if dup := altDuplicatingHeading(ctx.Blocks); dup != "" {
			l.warn("alt-heading", "Alt text and headings", CategoryBonus,
				fmt.Sprintf("The alt text \"%s\" repeats the adjacent heading.", dup),
				"Screen readers would read the same text twice, describe the image instead.")
		} else {
			l.pass("alt-heading", "Alt text and headings", CategoryBonus, "Alt texts do not repeat adjacent headings.")
		}
	}
	return l.list()
}

func poorAltTexts(alts []string, lex *linguistics.Lexicon) []string {
	var bad []string
	for _, alt := range alts {
		norm := textnorm.Normalize(alt)
		if containsString(lex.GenericAltWords, norm) || filenameAlt.MatchString(alt) || cameraAlt.MatchString(alt) {
			bad = append(bad, alt)
		}
	}
	return bad
}

// isAllCaps reports whether text has at least four letters, all uppercase.
func isAllCaps(text string) bool {
	letters := 0
	for _, r := range text {
		if !unicode.IsLetter(r) {
			continue
		}
		if !unicode.IsUpper(r) {
			return false
		}
		letters++
	}
	return letters >= 4
}

func hasImageBlock(blocks []doctree.Block) bool {
	for _, b := range blocks {
		if b.Kind == doctree.BlockImage && b.Text != "" {
			return true
		}
	}
	return false
}

// altDuplicatingHeading returns the first image alt text equal to the heading
// right before or after it.
func altDuplicatingHeading(blocks []doctree.Block) string {
	for i, b := range blocks {
		if b.Kind != doctree.BlockImage || b.Text == "" {
			continue
		}
		alt := textnorm.Normalize(b.Text)
		for _, j := range []int{i - 1, i + 1} {
			if j >= 0 && j < len(blocks) && blocks[j].Kind == doctree.BlockHeading && textnorm.Normalize(blocks[j].Text) == alt {
				return b.Text
			}
		}
	}
	return ""
}
