package pageclass

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		slug       string
		collection string
		extraLocal []string
		want       Type
	}{
		{name: "posts collection wins over slug", slug: "mentions-legales", collection: "posts", want: Blog},
		{name: "empty slug", slug: "", want: Home},
		{name: "home alias", slug: "accueil", want: Home},
		{name: "legal allow-list", slug: "mentions-legales", want: Legal},
		{name: "legal fragment", slug: "notre-politique-cookies", want: Legal},
		{name: "contact", slug: "contact", want: Contact},
		{name: "form intent", slug: "demande-de-devis", want: Form},
		{name: "local pattern", slug: "agence-web-a-ussel", want: Local},
		{name: "local allow-list", slug: "correze", extraLocal: []string{"Corrèze"}, want: Local},
		{name: "service prefix", slug: "services/creation-site", want: Service},
		{name: "resource prefix", slug: "guides/seo-local", want: Resource},
		{name: "about keyword", slug: "qui-sommes-nous", want: About},
		{name: "blog prefix", slug: "blog/nouveautes", want: Blog},
		{name: "generic", slug: "tarifs", want: Generic},
		{name: "accented slug", slug: "Mentions-Légales", want: Legal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.slug, tt.collection, tt.extraLocal))
		})
	}
}

func TestPageTypeTraits(t *testing.T) {
	assert.True(t, IsEvergreen(Legal))
	assert.False(t, IsEvergreen(Generic))
	assert.True(t, IsUtility(Contact))
	assert.False(t, ExpectsImagery(Legal))
	assert.True(t, ExpectsImagery(Blog))
	assert.Greater(t, MinWordCount(Blog), MinWordCount(Contact))
}
