package analyzer

import (
	"github.com/seo-optimizer/contentscore/doctree"
	"github.com/seo-optimizer/contentscore/jsonfield"
)

// The content store is loose about types: dates come without a time, flags
// as strings and text as numbers. Every page type is therefore decoded field
// by field and a bad value only loses that field.

// UnmarshalJSON decodes in field by field. Anything that is not an object
// yields an empty input.
func (in *Input) UnmarshalJSON(data []byte) error {
	o, _ := jsonfield.Parse(data)
	*in = Input{
		MetaTitle:         o.String("metaTitle"),
		Title:             o.String("title"),
		MetaDescription:   o.String("metaDescription"),
		Slug:              o.String("slug"),
		FocusKeyword:      o.String("focusKeyword"),
		SecondaryKeywords: o.Strings("secondaryKeywords"),
		Collection:        o.String("collection"),
		Hero:              jsonfield.Decode[*Hero](o, "hero"),
		Layout:            jsonfield.Decode[[]LayoutBlock](o, "layout"),
		Content:           jsonfield.Decode[*doctree.Node](o, "content"),
		BodyHTML:          o.String("bodyHtml"),
		IsPost:            o.Bool("isPost"),
		IsProduct:         o.Bool("isProduct"),
		IsCornerstone:     o.Bool("isCornerstone"),
		UpdatedAt:         o.Time("updatedAt"),
		LastReviewedAt:    o.Time("lastReviewedAt"),
		CanonicalURL:      o.String("canonicalUrl"),
		Robots:            o.String("robots"),
		OGTitle:           o.String("ogTitle"),
		OGDescription:     o.String("ogDescription"),
		OGImage:           jsonfield.Decode[*doctree.Media](o, "ogImage"),
		Brand:             o.String("brand"),
	}
	return nil
}

func (h *Hero) UnmarshalJSON(data []byte) error {
	o, _ := jsonfield.Parse(data)
	*h = Hero{
		RichText: jsonfield.Decode[*doctree.Node](o, "richText"),
		Links:    jsonfield.Decode[[]LinkField](o, "links"),
		Media:    jsonfield.Decode[*doctree.Media](o, "media"),
	}
	return nil
}

func (l *LinkField) UnmarshalJSON(data []byte) error {
	o, _ := jsonfield.Parse(data)
	*l = LinkField{Label: o.String("label"), URL: o.String("url")}
	return nil
}

func (b *LayoutBlock) UnmarshalJSON(data []byte) error {
	o, _ := jsonfield.Parse(data)
	*b = LayoutBlock{
		BlockType: o.String("blockType"),
		RichText:  jsonfield.Decode[*doctree.Node](o, "richText"),
		Columns:   jsonfield.Decode[[]Column](o, "columns"),
		Text:      o.String("text"),
		Items:     jsonfield.Decode[[]BlockItem](o, "items"),
		Links:     jsonfield.Decode[[]LinkField](o, "links"),
		Image:     jsonfield.Decode[*doctree.Media](o, "image"),
	}
	return nil
}

func (c *Column) UnmarshalJSON(data []byte) error {
	o, _ := jsonfield.Parse(data)
	*c = Column{RichText: jsonfield.Decode[*doctree.Node](o, "richText")}
	return nil
}

func (i *BlockItem) UnmarshalJSON(data []byte) error {
	o, _ := jsonfield.Parse(data)
	*i = BlockItem{Title: o.String("title"), Text: o.String("text")}
	return nil
}
