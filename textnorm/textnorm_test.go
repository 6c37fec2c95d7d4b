package textnorm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "accents", input: "Élégance Créée", want: "elegance creee"},
		{name: "trim", input: "  Agence Web  ", want: "agence web"},
		{name: "cedilla", input: "Façade", want: "facade"},
		{name: "empty", input: "", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	for _, s := range []string{"Ça va très bien", "ÀÉÎÕÜ", "déjà-vu 2024", "straße"} {
		once := Normalize(s)
		assert.Equal(t, once, Normalize(once), s)
	}
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "agence-web-a-ussel", Slugify("Agence Web à Ussel"))
	assert.Equal(t, "cafe-creme", Slugify("  Café -- crème!  "))
	assert.Equal(t, "seo-2025", Slugify("SEO 2025 ?"))
}

func TestKeywordMatches(t *testing.T) {
	tests := []struct {
		name    string
		keyword string
		text    string
		want    bool
	}{
		{name: "exact", keyword: "agence web", text: "une agence web locale", want: true},
		{name: "inserted article", keyword: "creation site internet", text: "la creation de votre site sur internet", want: true},
		{name: "missing component", keyword: "creation site internet", text: "la creation de votre site", want: false},
		{name: "single significant word", keyword: "agence web", text: "une agence de communication", want: false},
		{name: "empty keyword", keyword: "", text: "anything", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KeywordMatches(tt.keyword, tt.text))
		})
	}
}

func TestKeywordMatchesVerbatimContainment(t *testing.T) {
	keyword := "Rénovation Énergétique"
	text := "Nous accompagnons la Rénovation Énergétique des maisons."
	assert.True(t, KeywordMatches(Normalize(keyword), Normalize(text)))
}

func TestCountOccurrences(t *testing.T) {
	t.Run("exact phrase", func(t *testing.T) {
		occ := CountOccurrences("agence web", "agence web a ussel est une agence web de qualite", 10)
		assert.Equal(t, 2, occ.ExactCount)
		assert.True(t, occ.WordLevelMatch)
		assert.InDelta(t, 40.0, occ.EstimatedDensity, 0.001)
	})

	t.Run("word level fallback uses the minimum count", func(t *testing.T) {
		text := "la creation du site puis la creation du logo pour votre site internet"
		occ := CountOccurrences("creation site internet", text, 13)
		assert.Equal(t, 0, occ.ExactCount)
		assert.True(t, occ.WordLevelMatch)
		assert.InDelta(t, 100.0/13.0, occ.EstimatedDensity, 0.001)
	})

	t.Run("absent", func(t *testing.T) {
		occ := CountOccurrences("plombier", "un electricien", 2)
		assert.Equal(t, Occurrences{}, occ)
	})

	t.Run("non overlapping", func(t *testing.T) {
		assert.Equal(t, 2, CountOccurrences("aa", "aaaa", 1).ExactCount)
	})
}
