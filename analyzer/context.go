package analyzer

import (
	"strings"
	"time"

	"github.com/seo-optimizer/contentscore/doctree"
	"github.com/seo-optimizer/contentscore/htmltree"
	"github.com/seo-optimizer/contentscore/linguistics"
	"github.com/seo-optimizer/contentscore/pageclass"
	"github.com/seo-optimizer/contentscore/textnorm"
)

// Context holds everything derived once from an Input and shared read-only by
// every rule group.
type Context struct {
	Text      string
	NormText  string
	WordCount int
	Sentences []string

	Headings []doctree.Heading
	Links    []doctree.Link
	Images   doctree.ImageStats
	Lists    []doctree.List
	Blocks   []doctree.Block

	// Keyword is the normalized focus keyword, empty when none was set.
	Keyword           string
	SecondaryKeywords []string

	PageType     pageclass.Type
	Locale       linguistics.Locale
	Config       Config
	Now          time.Time
	HasVirtualH1 bool
}

// Lexicon is a shortcut to the word tables of the resolved locale.
func (c *Context) Lexicon() *linguistics.Lexicon {
	return c.Locale.Lexicon()
}

// BuildContext merges every text-bearing field of in into a single analysis
// context. Fields are read in display order: hero, layout blocks, then the
// main content.
func BuildContext(in *Input, cfg Config) *Context {
	cfg = cfg.withDefaults()
	ctx := &Context{Config: cfg, Now: cfg.Now}
	b := &builder{ctx: ctx, limits: doctree.Limits{MaxDepth: cfg.MaxDepth, MaxNodes: cfg.MaxNodes}}

	if in.Hero != nil {
		b.addTree(in.Hero.RichText)
		b.addLinkFields(in.Hero.Links)
		b.addMedia(in.Hero.Media)
	}
	for _, block := range in.Layout {
		b.addTree(block.RichText)
		for _, col := range block.Columns {
			b.addTree(col.RichText)
		}
		for _, item := range block.Items {
			b.addPlain(item.Title)
			b.addPlain(item.Text)
		}
		b.addPlain(block.Text)
		b.addLinkFields(block.Links)
		b.addMedia(block.Image)
	}
	b.addTree(mainContent(in))
	b.addMedia(in.OGImage)

	ctx.Text = strings.Join(b.texts, " ")
	applyPostTitleHeading(in, ctx)

	ctx.NormText = textnorm.Normalize(ctx.Text)
	ctx.Locale = linguistics.Resolve(cfg.Locale, ctx.Text)
	ctx.Sentences = linguistics.SplitSentences(ctx.Text, ctx.Locale)
	ctx.WordCount = len(linguistics.Words(ctx.Text))

	ctx.Keyword = textnorm.Normalize(in.FocusKeyword)
	ctx.SecondaryKeywords = secondaryKeywords(in.SecondaryKeywords, ctx.Keyword)

	if in.IsPost {
		ctx.PageType = pageclass.Blog
	} else {
		ctx.PageType = pageclass.Classify(in.Slug, in.Collection, cfg.LocalSlugs)
	}
	return ctx
}

// applyPostTitleHeading gives posts without an H1 a virtual one: their title
// is rendered as the page heading outside of the edited content.
func applyPostTitleHeading(in *Input, ctx *Context) {
	title := strings.TrimSpace(in.Title)
	if !in.IsPost || title == "" {
		return
	}
	for _, h := range ctx.Headings {
		if h.Level() == 1 {
			return
		}
	}
	h1 := doctree.Heading{Tag: "h1", Text: title}
	ctx.Headings = append([]doctree.Heading{h1}, ctx.Headings...)
	ctx.Blocks = append([]doctree.Block{{Kind: doctree.BlockHeading, Tag: "h1", Text: title}}, ctx.Blocks...)
	if ctx.Text == "" {
		ctx.Text = title
	} else {
		ctx.Text = title + " " + ctx.Text
	}
	ctx.HasVirtualH1 = true
}

// mainContent returns the rich-text body, parsing the HTML body when no tree
// was supplied. Unparseable HTML contributes nothing.
func mainContent(in *Input) *doctree.Node {
	if in.Content != nil || strings.TrimSpace(in.BodyHTML) == "" {
		return in.Content
	}
	tree, err := htmltree.Parse(in.BodyHTML)
	if err != nil {
		return nil
	}
	return tree
}

// secondaryKeywords normalizes raw and drops keywords that share a slug with
// the primary keyword or an earlier one, since check ids are built from it.
func secondaryKeywords(raw []string, primary string) []string {
	seen := map[string]struct{}{}
	if primary != "" {
		seen[textnorm.Slugify(primary)] = struct{}{}
	}
	var out []string
	for _, kw := range raw {
		n := textnorm.Normalize(kw)
		slug := textnorm.Slugify(n)
		if slug == "" {
			continue
		}
		if _, dup := seen[slug]; dup {
			continue
		}
		seen[slug] = struct{}{}
		out = append(out, n)
	}
	return out
}

type builder struct {
	ctx    *Context
	limits doctree.Limits
	texts  []string
}

func (b *builder) addTree(n *doctree.Node) {
	if n == nil {
		return
	}
	if text := b.limits.Text(n); text != "" {
		b.texts = append(b.texts, text)
	}
	b.ctx.Headings = append(b.ctx.Headings, b.limits.Headings(n)...)
	b.ctx.Links = append(b.ctx.Links, b.limits.Links(n)...)
	b.ctx.Images.Add(b.limits.Images(n))
	b.ctx.Lists = append(b.ctx.Lists, b.limits.Lists(n)...)
	b.ctx.Blocks = append(b.ctx.Blocks, b.limits.Blocks(n)...)
}

func (b *builder) addPlain(text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	b.texts = append(b.texts, text)
	b.ctx.Blocks = append(b.ctx.Blocks, doctree.Block{Kind: doctree.BlockParagraph, Text: text})
}

func (b *builder) addLinkFields(fields []LinkField) {
	for _, f := range fields {
		if strings.TrimSpace(f.URL) == "" && strings.TrimSpace(f.Label) == "" {
			continue
		}
		b.ctx.Links = append(b.ctx.Links, doctree.Link{URL: strings.TrimSpace(f.URL), Text: strings.TrimSpace(f.Label)})
	}
}

func (b *builder) addMedia(m *doctree.Media) {
	if m == nil || (m.URL == "" && m.Alt == "" && m.Filename == "") {
		return
	}
	stats := doctree.ImageStats{Total: 1}
	if alt := strings.TrimSpace(m.Alt); alt != "" {
		stats.WithAlt = 1
		stats.AltTexts = []string{alt}
	}
	b.ctx.Images.Add(stats)
}
