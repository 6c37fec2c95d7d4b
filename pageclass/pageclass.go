// Package pageclass maps a page slug to the semantic page type used to tune
// rule severity.
package pageclass

import (
	"regexp"
	"strings"

	"github.com/seo-optimizer/contentscore/textnorm"
)

// Type is a semantic page classification.
type Type string

const (
	Home     Type = "home"
	Blog     Type = "blog"
	Legal    Type = "legal"
	Contact  Type = "contact"
	Form     Type = "form"
	Local    Type = "local"
	Service  Type = "service"
	Resource Type = "resource"
	About    Type = "about"
	Generic  Type = "generic"
)

var (
	homeSlugs        = []string{"", "home", "accueil", "index", "/"}
	legalSlugs       = []string{
		"mentions-legales", "politique-de-confidentialite", "cgv", "cgu", "conditions-generales",
		"cookies", "rgpd", "legal", "privacy", "privacy-policy", "terms", "terms-of-service",
		"terms-and-conditions", "imprint", "gdpr",
	}
	legalFragments   = []string{"mentions-legales", "confidentialite", "conditions-generales", "privacy", "cookie", "terms-of"}
	contactSlugs     = []string{"contact", "contactez-nous", "nous-contacter", "contact-us"}
	formPattern      = regexp.MustCompile(`(^|[-/])(devis|demande|inscription|rendez-vous|reservation|quote|booking|signup|sign-up|register|estimation|simulation)([-/]|$)`)
	localPattern     = regexp.MustCompile(`(^|[-/])(a|en|au|aux|pres-de|near|in)-[a-z]+(-[a-z]+)?$`)
	servicePrefixes  = []string{"services/", "service/", "prestations/", "offres/", "solutions/"}
	resourcePrefixes = []string{"ressources/", "resources/", "guides/", "guide/", "docs/", "documentation/", "faq"}
	aboutPattern     = regexp.MustCompile(`(^|[-/])(a-propos|qui-sommes-nous|about|about-us|agence|equipe|team|notre-histoire)([-/]|$)`)
	blogPrefixes     = []string{"blog/", "actualites/", "actus/", "news/", "articles/", "posts/"}
)

// Classify returns the page type of slug. collectionHint is the name of the
// collection the page belongs to ("posts" forces Blog); extraLocalSlugs lists
// slugs to treat as local-SEO landing pages. Rules are applied in a fixed
// priority order and the first match wins.
func Classify(slug, collectionHint string, extraLocalSlugs []string) Type {
	switch strings.ToLower(strings.TrimSpace(collectionHint)) {
	case "posts", "post", "articles", "blog":
		return Blog
	}

	s := strings.Trim(textnorm.Normalize(slug), "/")

	if contains(homeSlugs, s) {
		return Home
	}
	if contains(legalSlugs, s) || containsAny(s, legalFragments) {
		return Legal
	}
	if contains(contactSlugs, s) {
		return Contact
	}
	if formPattern.MatchString(s) {
		return Form
	}
	if contains(normalizeAll(extraLocalSlugs), s) || localPattern.MatchString(s) {
		return Local
	}
	if hasAnyPrefix(s, servicePrefixes) {
		return Service
	}
	if hasAnyPrefix(s, resourcePrefixes) {
		return Resource
	}
	if aboutPattern.MatchString(s) {
		return About
	}
	if hasAnyPrefix(s, blogPrefixes) {
		return Blog
	}
	return Generic
}

// IsEvergreen reports whether pages of type t keep their value without
// regular updates.
func IsEvergreen(t Type) bool {
	switch t {
	case Legal, Contact, About, Form, Home:
		return true
	}
	return false
}

// IsUtility reports whether t is a functional page where outbound links and
// long copy are not expected.
func IsUtility(t Type) bool {
	switch t {
	case Legal, Contact, Form:
		return true
	}
	return false
}

// ExpectsImagery reports whether pages of type t are expected to carry images.
func ExpectsImagery(t Type) bool {
	return !IsUtility(t)
}

// MinWordCount is the recommended minimum body length for pages of type t.
func MinWordCount(t Type) int {
	switch t {
	case Blog:
		return 600
	case Resource:
		return 500
	case Local, Service:
		return 400
	case Home, Generic:
		return 300
	case About:
		return 250
	case Legal:
		return 150
	case Contact, Form:
		return 80
	}
	return 300
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func containsAny(s string, fragments []string) bool {
	for _, f := range fragments {
		if strings.Contains(s, f) {
			return true
		}
	}
	return false
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

func normalizeAll(list []string) []string {
	out := make([]string, 0, len(list))
	for _, v := range list {
		out = append(out, strings.Trim(textnorm.Normalize(v), "/"))
	}
	return out
}
