package linguistics

import (
	"math"
	"regexp"
	"strings"
	"unicode"

	"github.com/seo-optimizer/contentscore/textnorm"
)

// abbreviationDot stands in for the period of an abbreviation while sentences
// are split. U+2024 ONE DOT LEADER never ends a sentence.
const abbreviationDot = "․"

var sentenceEnd = regexp.MustCompile(`[.!?…]+(?:\s+|$)`)

// SplitSentences splits text into sentences, ignoring the periods of the
// locale's known abbreviations.
func SplitSentences(text string, loc Locale) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	masked := loc.Lexicon().abbreviationPattern.ReplaceAllStringFunc(text, func(m string) string {
		return strings.ReplaceAll(m, ".", abbreviationDot)
	})

	var sentences []string
	appendSentence := func(s string) {
		s = strings.TrimSpace(strings.ReplaceAll(s, abbreviationDot, "."))
		if s != "" {
			sentences = append(sentences, s)
		}
	}
	start := 0
	for _, m := range sentenceEnd.FindAllStringIndex(masked, -1) {
		appendSentence(masked[start:m[1]])
		start = m[1]
	}
	if start < len(masked) {
		appendSentence(masked[start:])
	}
	return sentences
}

// Words splits text into words. Apostrophes and hyphens inside a word are kept
// ("l'agence", "contactez-nous").
func Words(text string) []string {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\'' && r != '’' && r != '-'
	})
	words := fields[:0]
	for _, f := range fields {
		f = strings.Trim(f, "'’-")
		if f != "" {
			words = append(words, f)
		}
	}
	return words
}

// CountSyllables estimates the syllables of word with the locale's heuristic.
func CountSyllables(word string, loc Locale) int {
	return loc.CountSyllables(strings.ToLower(word))
}

// ReadabilityScore computes the locale's Flesch reading ease of text, clamped
// to [0, 100] and rounded. Text without words or sentences scores 0.
func ReadabilityScore(text string, loc Locale) int {
	sentences := SplitSentences(text, loc)
	words := Words(text)
	if len(sentences) == 0 || len(words) == 0 {
		return 0
	}
	syllables := 0
	for _, w := range words {
		syllables += CountSyllables(w, loc)
	}
	asl := float64(len(words)) / float64(len(sentences))
	asw := float64(syllables) / float64(len(words))
	f := loc.Flesch()
	score := f.Base - f.SentenceWeight*asl - f.SyllableWeight*asw
	return int(math.Round(math.Max(0, math.Min(100, score))))
}

// DetectPassiveVoice reports whether sentence contains a conjugated "to be"
// auxiliary immediately followed by a past participle that is not one of the
// locale's motion or state verbs.
func DetectPassiveVoice(sentence string, loc Locale) bool {
	lex := loc.Lexicon()
	tokens := Words(strings.ToLower(sentence))
	for i := 0; i+1 < len(tokens); i++ {
		if _, ok := lex.PassiveAuxiliaries[textnorm.Normalize(tokens[i])]; !ok {
			continue
		}
		next := tokens[i+1]
		if _, excluded := lex.PassiveExclusions[textnorm.Normalize(next)]; excluded {
			continue
		}
		if loc.IsParticiple(next) {
			return true
		}
	}
	return false
}

// HasTransitionWord reports whether sentence starts with, or contains between
// spaces or commas, one of the locale's connective words.
func HasTransitionWord(sentence string, loc Locale) bool {
	tokens := strings.FieldsFunc(textnorm.Normalize(sentence), func(r rune) bool {
		return unicode.IsSpace(r) || strings.ContainsRune(",;:.!?()«»\"", r)
	})
	if len(tokens) == 0 {
		return false
	}
	padded := " " + strings.Join(tokens, " ") + " "
	for _, w := range loc.Lexicon().TransitionWords {
		if strings.Contains(padded, " "+w+" ") {
			return true
		}
	}
	return false
}
