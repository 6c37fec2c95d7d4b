package analyzer

import (
	"math"
	"strings"
)

// Rule group identifiers. They are the keys accepted by Config.DisabledRules
// and Config.WeightOverrides.
const (
	GroupTitle         = "title"
	GroupMeta          = "meta"
	GroupURL           = "url"
	GroupHeadings      = "headings"
	GroupContent       = "content"
	GroupImages        = "images"
	GroupLinking       = "linking"
	GroupSocial        = "social"
	GroupSchema        = "schema"
	GroupReadability   = "readability"
	GroupQuality       = "quality"
	GroupSecondary     = "secondary"
	GroupCornerstone   = "cornerstone"
	GroupFreshness     = "freshness"
	GroupTechnical     = "technical"
	GroupEcommerce     = "ecommerce"
	GroupAccessibility = "accessibility"
)

// Rule is a registered rule group.
type Rule struct {
	Group string
	// Enabled gates the group on the input. Nil means always enabled.
	Enabled  func(in *Input, ctx *Context) bool
	Evaluate func(in *Input, ctx *Context) []Check
}

var registry = []Rule{
	{Group: GroupTitle, Evaluate: evaluateTitle},
	{Group: GroupMeta, Evaluate: evaluateMeta},
	{Group: GroupURL, Evaluate: evaluateURL},
	{Group: GroupHeadings, Evaluate: evaluateHeadings},
	{Group: GroupContent, Evaluate: evaluateContent},
	{Group: GroupImages, Evaluate: evaluateImages},
	{Group: GroupLinking, Evaluate: evaluateLinking},
	{Group: GroupSocial, Evaluate: evaluateSocial},
	{Group: GroupSchema, Evaluate: evaluateSchema},
	{Group: GroupReadability, Evaluate: evaluateReadability},
	{Group: GroupQuality, Evaluate: evaluateQuality},
	{
		Group:    GroupSecondary,
		Enabled:  func(_ *Input, ctx *Context) bool { return len(ctx.SecondaryKeywords) > 0 },
		Evaluate: evaluateSecondary,
	},
	{
		Group:    GroupCornerstone,
		Enabled:  func(in *Input, _ *Context) bool { return in.IsCornerstone },
		Evaluate: evaluateCornerstone,
	},
	{Group: GroupFreshness, Evaluate: evaluateFreshness},
	{Group: GroupTechnical, Evaluate: evaluateTechnical},
	{
		Group:    GroupEcommerce,
		Enabled:  func(in *Input, _ *Context) bool { return in.IsProduct },
		Evaluate: evaluateEcommerce,
	},
	{Group: GroupAccessibility, Evaluate: evaluateAccessibility},
}

// Groups returns the registered rule groups in evaluation order.
func Groups() []string {
	groups := make([]string, 0, len(registry))
	for _, r := range registry {
		groups = append(groups, r.Group)
	}
	return groups
}

// evaluate runs every enabled, non-disabled rule group and applies weight
// overrides to the checks it produced.
func evaluate(in *Input, ctx *Context) []Check {
	disabled := make(map[string]struct{}, len(ctx.Config.DisabledRules))
	for _, g := range ctx.Config.DisabledRules {
		disabled[strings.ToLower(strings.TrimSpace(g))] = struct{}{}
	}

	checks := []Check{}
	for _, r := range registry {
		if _, off := disabled[r.Group]; off {
			continue
		}
		if r.Enabled != nil && !r.Enabled(in, ctx) {
			continue
		}
		produced := r.Evaluate(in, ctx)
		if w, ok := ctx.Config.WeightOverrides[r.Group]; ok && w > 0 && !math.IsInf(w, 0) {
			for i := range produced {
				produced[i].Weight = w
			}
		}
		checks = append(checks, produced...)
	}
	return checks
}

// Aggregate computes the weighted score of checks. A pass earns its full
// weight, a warning half of it and a failure nothing.
func Aggregate(checks []Check) Result {
	if checks == nil {
		checks = []Check{}
	}
	var earned, possible float64
	for _, c := range checks {
		possible += c.Weight
		switch c.Status {
		case StatusPass:
			earned += c.Weight
		case StatusWarning:
			earned += c.Weight / 2
		}
	}
	score := 0
	if possible > 0 {
		score = int(math.Round(100 * earned / possible))
	}
	return Result{Score: score, Level: LevelFor(score), Checks: checks}
}

// LevelFor returns the qualitative band of score.
func LevelFor(score int) Level {
	switch {
	case score >= 91:
		return LevelExcellent
	case score >= 71:
		return LevelGood
	case score >= 41:
		return LevelOK
	default:
		return LevelPoor
	}
}
