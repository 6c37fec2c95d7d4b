package analyzer

import (
	"time"

	"github.com/seo-optimizer/contentscore/doctree"
)

// Config tunes one analysis. The zero value is valid: every unset field falls
// back to its default.
type Config struct {
	Locale            string             `json:"locale,omitempty" yaml:"locale"`
	DisabledRules     []string           `json:"disabledRules,omitempty" yaml:"disabledRules"`
	WeightOverrides   map[string]float64 `json:"weightOverrides,omitempty" yaml:"weightOverrides"`
	LocalSlugs        []string           `json:"localSlugs,omitempty" yaml:"localSlugs"`
	StopWordCompounds []string           `json:"stopWordCompounds,omitempty" yaml:"stopWordCompounds"`
	UtilitySlugs      []string           `json:"utilitySlugs,omitempty" yaml:"utilitySlugs"`
	NoindexPageTypes  []string           `json:"noindexPageTypes,omitempty" yaml:"noindexPageTypes"`
	MaxDepth          int                `json:"maxDepth,omitempty" yaml:"maxDepth"`
	MaxNodes          int                `json:"maxNodes,omitempty" yaml:"maxNodes"`
	SiteURL           string             `json:"siteUrl,omitempty" yaml:"siteUrl"`
	Thresholds        Thresholds         `json:"thresholds" yaml:"thresholds"`

	// Now is the reference time of date-based rules. Zero means time.Now().
	Now time.Time `json:"-" yaml:"-"`
}

// Thresholds are the numeric limits used by the rules.
type Thresholds struct {
	TitleMin                 int     `json:"titleMin,omitempty" yaml:"titleMin"`
	TitleMax                 int     `json:"titleMax,omitempty" yaml:"titleMax"`
	DescriptionMin           int     `json:"descriptionMin,omitempty" yaml:"descriptionMin"`
	DescriptionMax           int     `json:"descriptionMax,omitempty" yaml:"descriptionMax"`
	SlugMaxLength            int     `json:"slugMaxLength,omitempty" yaml:"slugMaxLength"`
	DensityMin               float64 `json:"densityMin,omitempty" yaml:"densityMin"`
	DensityMax               float64 `json:"densityMax,omitempty" yaml:"densityMax"`
	ThinWords                int     `json:"thinWords,omitempty" yaml:"thinWords"`
	FreshnessDays            int     `json:"freshnessDays,omitempty" yaml:"freshnessDays"`
	EvergreenDays            int     `json:"evergreenDays,omitempty" yaml:"evergreenDays"`
	ReviewDays               int     `json:"reviewDays,omitempty" yaml:"reviewDays"`
	ReadabilityMin           int     `json:"readabilityMin,omitempty" yaml:"readabilityMin"`
	LongSentenceWords        int     `json:"longSentenceWords,omitempty" yaml:"longSentenceWords"`
	LongSentenceRatio        float64 `json:"longSentenceRatio,omitempty" yaml:"longSentenceRatio"`
	ParagraphWords           int     `json:"paragraphWords,omitempty" yaml:"paragraphWords"`
	SectionWords             int     `json:"sectionWords,omitempty" yaml:"sectionWords"`
	PassiveRatio             float64 `json:"passiveRatio,omitempty" yaml:"passiveRatio"`
	TransitionRatio          float64 `json:"transitionRatio,omitempty" yaml:"transitionRatio"`
	OpenerRepeat             int     `json:"openerRepeat,omitempty" yaml:"openerRepeat"`
	MinInternalLinks         int     `json:"minInternalLinks,omitempty" yaml:"minInternalLinks"`
	CornerstoneWords         int     `json:"cornerstoneWords,omitempty" yaml:"cornerstoneWords"`
	CornerstoneInternalLinks int     `json:"cornerstoneInternalLinks,omitempty" yaml:"cornerstoneInternalLinks"`
}

// DefaultThresholds returns the limits applied when a threshold is unset.
func DefaultThresholds() Thresholds {
	return Thresholds{
		TitleMin:                 30,
		TitleMax:                 60,
		DescriptionMin:           120,
		DescriptionMax:           160,
		SlugMaxLength:            75,
		DensityMin:               0.5,
		DensityMax:               2.5,
		ThinWords:                100,
		FreshnessDays:            365,
		EvergreenDays:            730,
		ReviewDays:               365,
		ReadabilityMin:           40,
		LongSentenceWords:        25,
		LongSentenceRatio:        0.25,
		ParagraphWords:           150,
		SectionWords:             300,
		PassiveRatio:             0.15,
		TransitionRatio:          0.2,
		OpenerRepeat:             3,
		MinInternalLinks:         2,
		CornerstoneWords:         1500,
		CornerstoneInternalLinks: 5,
	}
}

var (
	defaultUtilitySlugs = []string{
		"contact", "contactez-nous", "nous-contacter", "mentions-legales", "politique-de-confidentialite",
		"cgv", "cgu", "cookies", "plan-du-site", "a-propos", "privacy", "terms", "sitemap", "about",
	}
	defaultStopWordCompounds = []string{
		"a-propos", "qui-sommes-nous", "mise-en-place", "prise-en-charge", "sur-mesure", "en-ligne",
		"pret-a-porter", "mentions-legales", "de-a-z", "how-to",
	}
	defaultNoindexPageTypes = []string{"legal", "form"}
)

// withDefaults returns a copy of c with every unset field filled in.
func (c Config) withDefaults() Config {
	if c.MaxDepth <= 0 {
		c.MaxDepth = doctree.DefaultMaxDepth
	}
	if c.MaxNodes <= 0 {
		c.MaxNodes = doctree.DefaultMaxNodes
	}
	if c.Now.IsZero() {
		c.Now = time.Now()
	}
	if len(c.NoindexPageTypes) == 0 {
		c.NoindexPageTypes = defaultNoindexPageTypes
	}
	c.UtilitySlugs = append(append([]string(nil), defaultUtilitySlugs...), c.UtilitySlugs...)
	c.StopWordCompounds = append(append([]string(nil), defaultStopWordCompounds...), c.StopWordCompounds...)
	c.Thresholds = c.Thresholds.withDefaults()
	return c
}

func (t Thresholds) withDefaults() Thresholds {
	d := DefaultThresholds()
	fillInt(&t.TitleMin, d.TitleMin)
	fillInt(&t.TitleMax, d.TitleMax)
	fillInt(&t.DescriptionMin, d.DescriptionMin)
	fillInt(&t.DescriptionMax, d.DescriptionMax)
	fillInt(&t.SlugMaxLength, d.SlugMaxLength)
	fillFloat(&t.DensityMin, d.DensityMin)
	fillFloat(&t.DensityMax, d.DensityMax)
	fillInt(&t.ThinWords, d.ThinWords)
	fillInt(&t.FreshnessDays, d.FreshnessDays)
	fillInt(&t.EvergreenDays, d.EvergreenDays)
	fillInt(&t.ReviewDays, d.ReviewDays)
	fillInt(&t.ReadabilityMin, d.ReadabilityMin)
	fillInt(&t.LongSentenceWords, d.LongSentenceWords)
	fillFloat(&t.LongSentenceRatio, d.LongSentenceRatio)
	fillInt(&t.ParagraphWords, d.ParagraphWords)
	fillInt(&t.SectionWords, d.SectionWords)
	fillFloat(&t.PassiveRatio, d.PassiveRatio)
	fillFloat(&t.TransitionRatio, d.TransitionRatio)
	fillInt(&t.OpenerRepeat, d.OpenerRepeat)
	fillInt(&t.MinInternalLinks, d.MinInternalLinks)
	fillInt(&t.CornerstoneWords, d.CornerstoneWords)
	fillInt(&t.CornerstoneInternalLinks, d.CornerstoneInternalLinks)
	return t
}

func fillInt(v *int, def int) {
	if *v <= 0 {
		*v = def
	}
}

func fillFloat(v *float64, def float64) {
	if *v <= 0 {
		*v = def
	}
}
