// Package textnorm normalizes text for accent-insensitive comparisons and
// matches focus keywords against page content.
package textnorm

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	slugInvalid  = regexp.MustCompile(`[^a-z0-9\s-]`)
	slugSeparate = regexp.MustCompile(`[\s-]+`)
)

// functionWords longer than three letters that never count as significant
// keyword components.
var functionWords = map[string]struct{}{
	"avec": {}, "dans": {}, "pour": {}, "sans": {}, "sous": {}, "chez": {}, "vers": {},
	"leur": {}, "leurs": {}, "nous": {}, "vous": {}, "votre": {}, "notre": {}, "cette": {},
	"with": {}, "from": {}, "that": {}, "this": {}, "your": {}, "their": {}, "into": {},
	"about": {}, "over": {}, "than": {},
}

// Normalize lowercases text, strips combining diacritical marks after
// canonical decomposition and trims surrounding whitespace.
func Normalize(text string) string {
	if text == "" {
		return ""
	}
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))
	out, _, err := transform.String(t, strings.ToLower(text))
	if err != nil {
		out = strings.ToLower(text)
	}
	return strings.TrimSpace(out)
}

// Slugify turns a keyword into the slug an editor would be expected to use.
func Slugify(keyword string) string {
	s := slugInvalid.ReplaceAllString(Normalize(keyword), "")
	s = slugSeparate.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// SignificantWords returns the components of a normalized keyword that carry
// meaning: longer than three characters and not a function word.
func SignificantWords(normKeyword string) []string {
	var words []string
	for _, w := range strings.FieldsFunc(normKeyword, isWordSeparator) {
		if len([]rune(w)) <= 3 {
			continue
		}
		if _, skip := functionWords[w]; skip {
			continue
		}
		words = append(words, w)
	}
	return words
}

func isWordSeparator(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

// KeywordMatches reports whether normText contains normKeyword, either
// verbatim or, for multi-word keywords, with every significant word present
// somewhere in the text.
func KeywordMatches(normKeyword, normText string) bool {
	if normKeyword == "" || normText == "" {
		return false
	}
	if strings.Contains(normText, normKeyword) {
		return true
	}
	words := SignificantWords(normKeyword)
	if len(words) < 2 {
		return false
	}
	for _, w := range words {
		if !strings.Contains(normText, w) {
			return false
		}
	}
	return true
}

// Occurrences is the result of CountOccurrences.
type Occurrences struct {
	ExactCount       int     `json:"exactCount"`
	WordLevelMatch   bool    `json:"wordLevelMatch"`
	EstimatedDensity float64 `json:"estimatedDensity"`
}

// CountOccurrences counts non-overlapping occurrences of normKeyword in
// normText and estimates its density against totalWords. When the phrase never
// appears verbatim, a multi-word keyword falls back to the smallest count of
// any of its significant words.
func CountOccurrences(normKeyword, normText string, totalWords int) Occurrences {
	var occ Occurrences
	if normKeyword == "" || normText == "" {
		return occ
	}
	occ.ExactCount = countNonOverlapping(normText, normKeyword)
	if occ.ExactCount > 0 {
		occ.WordLevelMatch = true
		if totalWords > 0 {
			kwWords := len(strings.Fields(normKeyword))
			occ.EstimatedDensity = float64(occ.ExactCount*kwWords) / float64(totalWords) * 100
		}
		return occ
	}

	words := SignificantWords(normKeyword)
	if len(words) < 2 {
		return occ
	}
	minCount := -1
	for _, w := range words {
		c := countNonOverlapping(normText, w)
		if minCount < 0 || c < minCount {
			minCount = c
		}
	}
	if minCount > 0 {
		occ.WordLevelMatch = true
		if totalWords > 0 {
			occ.EstimatedDensity = float64(minCount) / float64(totalWords) * 100
		}
	}
	return occ
}

func countNonOverlapping(text, sub string) int {
	count := 0
	for idx := 0; ; {
		i := strings.Index(text[idx:], sub)
		if i < 0 {
			return count
		}
		count++
		idx += i + len(sub)
	}
}
