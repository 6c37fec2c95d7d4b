package analyzer

import (
	"strings"
)

func evaluateSchema(in *Input, ctx *Context) []Check {
	l := newChecks(GroupSchema)
	var missing []string
	if strings.TrimSpace(firstNonEmpty(in.MetaTitle, in.Title)) == "" {
		missing = append(missing, "title")
	}
	if strings.TrimSpace(in.MetaDescription) == "" {
		missing = append(missing, "description")
	}
	if ctx.Images.Total == 0 {
		missing = append(missing, "image")
	}
	if len(missing) > 0 {
		l.fail("ready", "Structured data", CategoryImportant,
			"Structured data cannot be generated, missing: "+strings.Join(missing, ", ")+".",
			"Rich results need a title, a description and at least one image.")
	} else {
		l.pass("ready", "Structured data", CategoryImportant, "The page has everything needed for structured data.")
	}
	return l.list()
}
