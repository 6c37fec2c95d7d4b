package htmltree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seo-optimizer/contentscore/doctree"
)

const sample = `
<h1>Agence web à Ussel</h1>
<p>Nous créons des <a href="/services">sites rapides</a> pour les artisans.</p>
<script>alert("x")</script>
<h2>Nos services</h2>
<ul><li>Création</li><li>Référencement</li></ul>
<img src="/media/equipe.jpg" alt="L'équipe de l'agence">
<div><img src="/media/logo.png"></div>
`

func TestParse(t *testing.T) {
	tree, err := Parse(sample)
	require.NoError(t, err)

	limits := doctree.DefaultLimits()

	t.Run("text without scripts", func(t *testing.T) {
		text := limits.Text(tree)
		assert.Contains(t, text, "Agence web à Ussel")
		assert.Contains(t, text, "sites rapides")
		assert.NotContains(t, text, "alert")
	})

	t.Run("headings", func(t *testing.T) {
		assert.Equal(t, []doctree.Heading{
			{Tag: "h1", Text: "Agence web à Ussel"},
			{Tag: "h2", Text: "Nos services"},
		}, limits.Headings(tree))
	})

	t.Run("links", func(t *testing.T) {
		links := limits.Links(tree)
		require.Len(t, links, 1)
		assert.Equal(t, "/services", links[0].URL)
		assert.Equal(t, "sites rapides", links[0].Text)
	})

	t.Run("images", func(t *testing.T) {
		images := limits.Images(tree)
		assert.Equal(t, 2, images.Total)
		assert.Equal(t, 1, images.WithAlt)
		assert.Equal(t, []string{"L'équipe de l'agence"}, images.AltTexts)
	})

	t.Run("lists", func(t *testing.T) {
		assert.Equal(t, []doctree.List{{ListType: "bullet", ItemCount: 2}}, limits.Lists(tree))
	})
}

func TestParseEmpty(t *testing.T) {
	tree, err := Parse("   ")
	require.NoError(t, err)
	assert.Empty(t, doctree.DefaultLimits().Text(tree))
}
