package analyzer

import (
	"time"

	"github.com/seo-optimizer/contentscore/doctree"
)

// Input is the editable content of one page, as supplied by the content store.
type Input struct {
	MetaTitle         string         `json:"metaTitle"`
	Title             string         `json:"title"`
	MetaDescription   string         `json:"metaDescription"`
	Slug              string         `json:"slug"`
	FocusKeyword      string         `json:"focusKeyword"`
	SecondaryKeywords []string       `json:"secondaryKeywords"`
	Collection        string         `json:"collection"`
	Hero              *Hero          `json:"hero"`
	Layout            []LayoutBlock  `json:"layout"`
	Content           *doctree.Node  `json:"content"`
	BodyHTML          string         `json:"bodyHtml"`
	IsPost            bool           `json:"isPost"`
	IsProduct         bool           `json:"isProduct"`
	IsCornerstone     bool           `json:"isCornerstone"`
	UpdatedAt         *time.Time     `json:"updatedAt"`
	LastReviewedAt    *time.Time     `json:"lastReviewedAt"`
	CanonicalURL      string         `json:"canonicalUrl"`
	Robots            string         `json:"robots"`
	OGTitle           string         `json:"ogTitle"`
	OGDescription     string         `json:"ogDescription"`
	OGImage           *doctree.Media `json:"ogImage"`
	Brand             string         `json:"brand"`
}

// Hero is the banner at the top of a page.
type Hero struct {
	RichText *doctree.Node  `json:"richText"`
	Links    []LinkField    `json:"links"`
	Media    *doctree.Media `json:"media"`
}

// LinkField is a link edited outside of rich text (buttons, call-to-actions).
type LinkField struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// LayoutBlock is one block of the page builder.
type LayoutBlock struct {
	BlockType string         `json:"blockType"`
	RichText  *doctree.Node  `json:"richText"`
	Columns   []Column       `json:"columns"`
	Text      string         `json:"text"`
	Items     []BlockItem    `json:"items"`
	Links     []LinkField    `json:"links"`
	Image     *doctree.Media `json:"image"`
}

// Column is a rich-text column of a layout block.
type Column struct {
	RichText *doctree.Node `json:"richText"`
}

// BlockItem is a typed entry of a layout block, such as a service card or a
// testimonial.
type BlockItem struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

// Status is the outcome of a check.
type Status string

const (
	StatusPass    Status = "pass"
	StatusWarning Status = "warning"
	StatusFail    Status = "fail"
)

// Category ranks how much a check matters.
type Category string

const (
	CategoryCritical  Category = "critical"
	CategoryImportant Category = "important"
	CategoryBonus     Category = "bonus"
)

// Check is one atomic result produced by a rule group.
type Check struct {
	ID       string   `json:"id"`
	Label    string   `json:"label"`
	Status   Status   `json:"status"`
	Message  string   `json:"message"`
	Category Category `json:"category"`
	Weight   float64  `json:"weight"`
	Group    string   `json:"group"`
	Tip      string   `json:"tip,omitempty"`
}

// Level is the qualitative band of a score.
type Level string

const (
	LevelPoor      Level = "poor"
	LevelOK        Level = "ok"
	LevelGood      Level = "good"
	LevelExcellent Level = "excellent"
)

// Result is the outcome of one analysis.
type Result struct {
	Score  int     `json:"score"`
	Level  Level   `json:"level"`
	Checks []Check `json:"checks"`
}
