package doctree

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDocument = `{
  "root": {
    "type": "root",
    "children": [
      {"type": "heading", "tag": "h1", "children": [{"type": "text", "text": "Agence web"}, {"type": "text", "text": " à Ussel"}]},
      {"type": "paragraph", "children": [
        {"type": "text", "text": "Nous créons des sites. "},
        {"type": "link", "fields": {"url": "/contact", "linkType": "custom"}, "children": [{"type": "text", "text": "Contactez-nous"}]},
        {"type": "autolink", "url": "https://example.org", "children": [{"type": "text", "text": "example.org"}]}
      ]},
      {"type": "heading", "tag": "h2", "children": [{"type": "text", "text": "Nos services"}]},
      {"type": "list", "listType": "number", "children": [
        {"type": "listitem", "children": [{"type": "text", "text": "Design"}]},
        {"type": "listitem", "children": [{"type": "text", "text": "SEO"}]}
      ]},
      {"type": "upload", "value": {"url": "/media/a.jpg", "alt": "  Bureau de l'agence "}},
      {"type": "upload", "value": "64f1c2"},
      {"type": "upload", "value": {"url": "/media/b.jpg", "alt": "   "}}
    ]
  }
}`

func loadSample(t *testing.T) *Node {
	t.Helper()
	var doc Node
	require.NoError(t, json.Unmarshal([]byte(sampleDocument), &doc))
	return &doc
}

func TestExtractText(t *testing.T) {
	doc := loadSample(t)
	text := ExtractText(doc, DefaultMaxDepth)
	assert.Equal(t, "Agence web à Ussel Nous créons des sites. Contactez-nous example.org Nos services Design SEO", text)
}

func TestExtractHeadings(t *testing.T) {
	headings := ExtractHeadings(loadSample(t), DefaultMaxDepth)
	require.Len(t, headings, 2)
	assert.Equal(t, Heading{Tag: "h1", Text: "Agence web à Ussel"}, headings[0])
	assert.Equal(t, 2, headings[1].Level())
}

func TestExtractLinks(t *testing.T) {
	links := ExtractLinks(loadSample(t), DefaultMaxDepth)
	assert.Equal(t, []Link{
		{URL: "/contact", Text: "Contactez-nous"},
		{URL: "https://example.org", Text: "example.org"},
	}, links)
}

func TestExtractImages(t *testing.T) {
	stats := ExtractImages(loadSample(t), DefaultMaxDepth)
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 1, stats.WithAlt)
	assert.Equal(t, []string{"Bureau de l'agence"}, stats.AltTexts)
}

func TestExtractLists(t *testing.T) {
	lists := ExtractLists(loadSample(t), DefaultMaxDepth)
	assert.Equal(t, []List{{ListType: "number", ItemCount: 2}}, lists)
}

func TestExtractBlocks(t *testing.T) {
	blocks := ExtractBlocks(loadSample(t), DefaultMaxDepth)
	kinds := make([]string, 0, len(blocks))
	for _, b := range blocks {
		kinds = append(kinds, b.Kind)
	}
	assert.Equal(t, []string{BlockHeading, BlockParagraph, BlockHeading, BlockList, BlockImage, BlockImage, BlockImage}, kinds)
	assert.Equal(t, "Bureau de l'agence", blocks[4].Text)
}

func deepTree(levels int) *Node {
	leaf := &Node{Type: TypeText, Text: "bottom"}
	current := leaf
	for i := 0; i < levels; i++ {
		current = &Node{Type: TypeParagraph, Children: []*Node{{Type: TypeText, Text: "level"}, current}}
	}
	return current
}

func TestExtractTextDepthCeiling(t *testing.T) {
	tree := deepTree(100)

	t.Run("stops at the ceiling", func(t *testing.T) {
		text := ExtractText(tree, 10)
		assert.NotContains(t, text, "bottom")
		assert.Equal(t, 10, strings.Count(text, "level"))
	})

	t.Run("reaches the leaf when the ceiling allows it", func(t *testing.T) {
		text := ExtractText(tree, 200)
		assert.Contains(t, text, "bottom")
		assert.Equal(t, 100, strings.Count(text, "level"))
	})

	t.Run("negative ceiling yields nothing", func(t *testing.T) {
		assert.Empty(t, ExtractText(tree, -1))
	})
}

func TestRootIndirectionCountsAsDepth(t *testing.T) {
	doc := &Node{Root: &Node{Type: TypeRoot, Children: []*Node{{Type: TypeText, Text: "hello"}}}}
	assert.Equal(t, "hello", ExtractText(doc, 2))
	assert.Empty(t, ExtractText(doc, 1))
}

func TestNodeBudget(t *testing.T) {
	wide := &Node{Type: TypeRoot}
	for i := 0; i < 50; i++ {
		wide.Children = append(wide.Children, &Node{Type: TypeText, Text: "w"})
	}
	text := Limits{MaxDepth: DefaultMaxDepth, MaxNodes: 11}.Text(wide)
	assert.Equal(t, 10, strings.Count(text, "w"))
}

func TestNilTree(t *testing.T) {
	assert.Empty(t, ExtractText(nil, DefaultMaxDepth))
	assert.Empty(t, ExtractHeadings(nil, DefaultMaxDepth))
	assert.Equal(t, ImageStats{}, ExtractImages(nil, DefaultMaxDepth))
}

func TestLenientDecoding(t *testing.T) {
	raw := `{"root": {"type": "root", "children": [
		{"type": "paragraph", "children": [{"type": "text", "text": 42}, null, "stray", {"type": "text", "text": "ans"}]},
		{"type": "heading", "tag": "h2", "children": [{"type": "text", "text": "Titre", "format": "bold"}]},
		{"type": "link", "fields": {"url": "/contact", "newTab": "true"}, "children": [{"type": "text", "text": "Contact"}]},
		{"type": "upload", "value": 17},
		{"type": "upload", "value": {"url": "/a.jpg", "alt": ["bad"]}},
		{"type": "list", "children": {"not": "an array"}}
	]}}`

	var doc Node
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))

	assert.Equal(t, "42 ans Titre Contact", ExtractText(&doc, DefaultMaxDepth))
	assert.Equal(t, []Link{{URL: "/contact", Text: "Contact"}}, ExtractLinks(&doc, DefaultMaxDepth))

	link := doc.Root.Children[2]
	require.NotNil(t, link.Fields)
	assert.True(t, link.Fields.NewTab)

	images := ExtractImages(&doc, DefaultMaxDepth)
	assert.Equal(t, 2, images.Total)
	assert.Equal(t, 0, images.WithAlt)
	assert.Equal(t, "/a.jpg", doc.Root.Children[4].Value.URL)
	assert.Empty(t, doc.Root.Children[5].Children)
}

