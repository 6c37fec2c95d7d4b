package analyzer

import (
	"fmt"
	"strings"

	"github.com/seo-optimizer/contentscore/textnorm"
)

const (
	productDescriptionWords = 200
	productImages           = 3
)

func evaluateEcommerce(in *Input, ctx *Context) []Check {
	l := newChecks(GroupEcommerce)
	lex := ctx.Lexicon()

	if lex.PricePattern.MatchString(ctx.Text + " " + in.MetaDescription) {
		l.pass("price", "Price", CategoryImportant, "The price is mentioned.")
	} else {
		l.fail("price", "Price", CategoryImportant, "The product page does not mention a price.",
			"Show the price in the text so it can appear in search results.")
	}

	switch wc := ctx.WordCount; {
	case wc >= productDescriptionWords:
		l.pass("description", "Product description", CategoryImportant, fmt.Sprintf("The product description has %d words.", wc))
	case wc >= productDescriptionWords/2:
		l.warn("description", "Product description", CategoryImportant,
			fmt.Sprintf("The product description is short (%d words).", wc),
			"Describe materials, dimensions, uses and benefits.")
	default:
		l.fail("description", "Product description", CategoryImportant,
			fmt.Sprintf("The product description is too short (%d words).", wc),
			"Avoid reusing the manufacturer description as is.")
	}

	switch n := ctx.Images.Total; {
	case n >= productImages:
		l.pass("images", "Product images", CategoryImportant, fmt.Sprintf("%d product images.", n))
	case n > 0:
		l.warn("images", "Product images", CategoryImportant,
			fmt.Sprintf("%d product image(s), %d are recommended.", n, productImages),
			"Show the product from several angles and in use.")
	default:
		l.fail("images", "Product images", CategoryImportant, "The product has no image.", "")
	}

	title := textnorm.Normalize(in.MetaTitle)
	brand := textnorm.Normalize(in.Brand)
	switch {
	case brand != "" && strings.Contains(title, brand):
		l.pass("title", "Product title", CategoryBonus, "The title contains the brand.")
	case ctx.Keyword != "" && textnorm.KeywordMatches(ctx.Keyword, title):
		l.pass("title", "Product title", CategoryBonus, "The title contains the product keyword.")
	default:
		l.warn("title", "Product title", CategoryBonus, "The title has neither the brand nor the product keyword.",
			"Shoppers often search for the brand and model.")
	}

	tok := tokenize(ctx.Text)
	if len(tok.matching(lex.AvailabilityPhrases)) > 0 {
		l.pass("availability", "Availability", CategoryBonus, "Availability or delivery is mentioned.")
	} else {
		l.warn("availability", "Availability", CategoryBonus, "Availability and delivery are not mentioned.",
			"Tell shoppers whether the product is in stock and when it ships.")
	}

	if len(tok.matching(lex.ReviewPhrases)) > 0 {
		l.pass("reviews", "Reviews", CategoryBonus, "Customer reviews or ratings are mentioned.")
	} else {
		l.warn("reviews", "Reviews", CategoryBonus, "No customer review or rating is mentioned.",
			"Reviews reassure shoppers and can show stars in results.")
	}
	return l.list()
}
