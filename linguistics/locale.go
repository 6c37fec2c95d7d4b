// Package linguistics implements the locale-dependent text measurements used
// by the content rules: sentence splitting, syllable counting, readability,
// passive-voice and transition-word detection.
package linguistics

import (
	"regexp"
	"strings"
	"sync"

	"github.com/pemistahl/lingua-go"
)

// Locale is the capability every supported language provides. Implementations
// are stateless and safe for concurrent use.
type Locale interface {
	// Code is the two-letter language code.
	Code() string
	// Lexicon returns the immutable word tables of the language.
	Lexicon() *Lexicon
	// CountSyllables estimates the syllables of a single lowercase word.
	CountSyllables(word string) int
	// Flesch returns the readability formula coefficients.
	Flesch() Flesch
	// IsParticiple reports whether a lowercase token has the shape of a past participle.
	IsParticiple(token string) bool
}

// Flesch holds the coefficients of a Flesch reading-ease formula:
// Base - SentenceWeight*ASL - SyllableWeight*ASW.
type Flesch struct {
	Base           float64
	SentenceWeight float64
	SyllableWeight float64
}

// Lexicon groups the static word tables of one language. All entries are
// normalized (lowercase, without diacritics) unless stated otherwise.
type Lexicon struct {
	// Abbreviations are matched case-sensitively.
	Abbreviations       []string
	// NumberAbbreviations only abbreviate when a number follows, as in
	// "No. 5".
	NumberAbbreviations []string
	StopWords           map[string]struct{}
	ActionVerbs         []string
	PowerWords          []string
	SentimentWords      []string
	QuestionWords       []string
	GenericAnchors      []string
	GenericAltWords     []string
	AvailabilityPhrases []string
	ReviewPhrases       []string
	TransitionWords     []string
	PassiveAuxiliaries  map[string]struct{}
	PassiveExclusions   map[string]struct{}
	PlaceholderPatterns []*regexp.Regexp
	BoilerplatePatterns []*regexp.Regexp
	PricePattern        *regexp.Regexp

	abbreviationPattern *regexp.Regexp
}

// IsStopWord reports whether the normalized word is a stop word.
func (l *Lexicon) IsStopWord(word string) bool {
	_, ok := l.StopWords[word]
	return ok
}

func (l *Lexicon) compile() *Lexicon {
	alternatives := make([]string, 0, len(l.Abbreviations)+len(l.NumberAbbreviations))
	for _, a := range l.Abbreviations {
		alternatives = append(alternatives, regexp.QuoteMeta(a))
	}
	for _, a := range l.NumberAbbreviations {
		alternatives = append(alternatives, regexp.QuoteMeta(a)+`\s*\d`)
	}
	l.abbreviationPattern = regexp.MustCompile(`(?:^|[\s(])(?:` + strings.Join(alternatives, "|") + `)`)
	return l
}

func set(words ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}

// inflect expands each base with the given suffixes, keeping the base itself.
func inflect(bases []string, suffixes ...string) []string {
	out := make([]string, 0, len(bases)*(len(suffixes)+1))
	for _, b := range bases {
		out = append(out, b)
		for _, s := range suffixes {
			out = append(out, b+s)
		}
	}
	return out
}

// Registered locales.
var (
	French  Locale = frenchLocale{}
	English Locale = englishLocale{}
)

// Default is used whenever a locale code is unknown.
var Default = French

// Lookup returns the locale for a language code such as "fr", "en" or
// "en-GB". Unknown codes fall back to Default.
func Lookup(code string) Locale {
	code = strings.ToLower(strings.TrimSpace(code))
	if i := strings.IndexAny(code, "-_"); i >= 0 {
		code = code[:i]
	}
	switch code {
	case "en":
		return English
	case "fr":
		return French
	default:
		return Default
	}
}

var (
	detectorOnce sync.Once
	detector     lingua.LanguageDetector
)

// DetectLocale guesses the language of text among the supported locales.
func DetectLocale(text string) Locale {
	if strings.TrimSpace(text) == "" {
		return Default
	}
	detectorOnce.Do(func() {
		detector = lingua.NewLanguageDetectorBuilder().
			FromLanguages(lingua.French, lingua.English).
			Build()
	})
	if lang, ok := detector.DetectLanguageOf(text); ok && lang == lingua.English {
		return English
	}
	return French
}

// Resolve returns the locale for code, detecting it from text when code is "auto".
func Resolve(code, text string) Locale {
	if strings.EqualFold(strings.TrimSpace(code), "auto") {
		return DetectLocale(text)
	}
	return Lookup(code)
}
