// Package doctree reads the recursive rich-text document trees supplied by the
// content store and extracts the plain text, headings, links, images and lists
// they contain. Every traversal is read-only and bounded by an explicit depth
// ceiling and a node budget.
package doctree

import "github.com/seo-optimizer/contentscore/jsonfield"

// Node types recognised by the extractors. Anything else is treated as a
// generic container and only its children are inspected.
const (
	TypeRoot      = "root"
	TypeText      = "text"
	TypeHeading   = "heading"
	TypeParagraph = "paragraph"
	TypeQuote     = "quote"
	TypeLink      = "link"
	TypeAutoLink  = "autolink"
	TypeUpload    = "upload"
	TypeImage     = "image"
	TypeList      = "list"
	TypeListItem  = "listitem"
)

// Node is one element of a document tree. Only the fields relevant to the
// node's Type are populated.
type Node struct {
	Type     string  `json:"type"`
	Tag      string  `json:"tag,omitempty"`
	Text     string  `json:"text,omitempty"`
	URL      string  `json:"url,omitempty"`
	ListType string  `json:"listType,omitempty"`
	Fields   *Fields `json:"fields,omitempty"`
	Value    *Media  `json:"value,omitempty"`
	Root     *Node   `json:"root,omitempty"`
	Children []*Node `json:"children,omitempty"`
}

// Fields holds the structured attributes editors attach to links and uploads.
type Fields struct {
	URL      string `json:"url,omitempty"`
	LinkType string `json:"linkType,omitempty"`
	NewTab   bool   `json:"newTab,omitempty"`
	Alt      string `json:"alt,omitempty"`
}

// Media is a populated reference to an uploaded file.
type Media struct {
	URL      string `json:"url,omitempty"`
	Alt      string `json:"alt,omitempty"`
	Filename string `json:"filename,omitempty"`
}

// UnmarshalJSON decodes n field by field. Values of the wrong type are
// dropped and anything that is not an object yields an empty node.
func (n *Node) UnmarshalJSON(data []byte) error {
	o, ok := jsonfield.Parse(data)
	if !ok {
		*n = Node{}
		return nil
	}
	*n = Node{
		Type:     o.String("type"),
		Tag:      o.String("tag"),
		Text:     o.String("text"),
		URL:      o.String("url"),
		ListType: o.String("listType"),
		Fields:   jsonfield.Decode[*Fields](o, "fields"),
		Value:    jsonfield.Decode[*Media](o, "value"),
		Root:     jsonfield.Decode[*Node](o, "root"),
		Children: jsonfield.Decode[[]*Node](o, "children"),
	}
	return nil
}

// UnmarshalJSON is lenient like Node.UnmarshalJSON.
func (f *Fields) UnmarshalJSON(data []byte) error {
	o, _ := jsonfield.Parse(data)
	*f = Fields{
		URL:      o.String("url"),
		LinkType: o.String("linkType"),
		NewTab:   o.Bool("newTab"),
		Alt:      o.String("alt"),
	}
	return nil
}

// UnmarshalJSON accepts an unpopulated relation (a bare id) as an empty Media
// instead of failing the whole document.
func (m *Media) UnmarshalJSON(data []byte) error {
	o, _ := jsonfield.Parse(data)
	*m = Media{
		URL:      o.String("url"),
		Alt:      o.String("alt"),
		Filename: o.String("filename"),
	}
	return nil
}

// Heading is a heading found in a document, in document order.
type Heading struct {
	Tag  string `json:"tag"`
	Text string `json:"text"`
}

// Level returns the numeric level of the heading tag (h1 => 1) or 0 when the
// tag is not recognised.
func (h Heading) Level() int {
	if len(h.Tag) == 2 && (h.Tag[0] == 'h' || h.Tag[0] == 'H') && h.Tag[1] >= '1' && h.Tag[1] <= '6' {
		return int(h.Tag[1] - '0')
	}
	return 0
}

// Link is a hyperlink found in a document.
type Link struct {
	URL  string `json:"url"`
	Text string `json:"text"`
}

// ImageStats summarises the embedded images of a document.
type ImageStats struct {
	Total    int      `json:"total"`
	WithAlt  int      `json:"withAlt"`
	AltTexts []string `json:"altTexts"`
}

// Add merges other into s.
func (s *ImageStats) Add(other ImageStats) {
	s.Total += other.Total
	s.WithAlt += other.WithAlt
	s.AltTexts = append(s.AltTexts, other.AltTexts...)
}

// List describes one list node.
type List struct {
	ListType  string `json:"listType"`
	ItemCount int    `json:"itemCount"`
}

// Block kinds returned by ExtractBlocks.
const (
	BlockHeading   = "heading"
	BlockParagraph = "paragraph"
	BlockImage     = "image"
	BlockList      = "list"
)

// Block is a top-level unit of content in reading order. For images Text holds
// the alt text.
type Block struct {
	Kind string `json:"kind"`
	Tag  string `json:"tag,omitempty"`
	Text string `json:"text"`
}
