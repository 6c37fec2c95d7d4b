package linguistics

import (
	"regexp"
	"strings"
)

type englishLocale struct{}

func (englishLocale) Code() string       { return "en" }
func (englishLocale) Lexicon() *Lexicon { return englishLexicon }

func (englishLocale) Flesch() Flesch {
	return Flesch{Base: 206.835, SentenceWeight: 1.015, SyllableWeight: 84.6}
}

var (
	englishVowelGroup = regexp.MustCompile(`[aeiouy]+`)

	// Words the vowel-group heuristic gets wrong.
	englishIrregular = map[string]int{
		"the": 1, "every": 2, "everything": 3, "business": 2, "businesses": 3, "different": 3,
		"area": 3, "idea": 3, "ideas": 3, "people": 2, "create": 2, "created": 3, "being": 2,
		"science": 2, "quiet": 2, "poem": 2, "poet": 2, "real": 1, "really": 2, "eyes": 1,
		"one": 1, "once": 1, "some": 1, "come": 1, "done": 1, "gone": 1, "none": 1, "where": 1,
		"there": 1, "here": 1, "were": 1, "are": 1, "fire": 1, "hour": 1, "our": 1, "seo": 3,
		"via": 2, "video": 3, "radio": 3, "lion": 2, "diet": 2, "society": 4, "variety": 4,
	}

	englishIrregularParticiples = map[string]struct{}{
		"written": {}, "done": {}, "made": {}, "given": {}, "taken": {}, "seen": {}, "known": {},
		"shown": {}, "built": {}, "found": {}, "sold": {}, "held": {}, "told": {}, "brought": {},
		"bought": {}, "caught": {}, "taught": {}, "thought": {}, "sent": {}, "spent": {}, "left": {},
		"kept": {}, "meant": {}, "paid": {}, "said": {}, "set": {}, "put": {}, "cut": {}, "read": {},
		"run": {}, "won": {}, "driven": {}, "chosen": {}, "spoken": {}, "broken": {}, "stolen": {},
		"forgotten": {}, "hidden": {}, "eaten": {}, "fallen": {}, "drawn": {}, "grown": {},
		"thrown": {}, "worn": {}, "torn": {}, "born": {}, "begun": {}, "sung": {}, "hung": {},
		"led": {}, "fed": {}, "met": {}, "lost": {}, "felt": {}, "heard": {}, "understood": {},
	}
)

func (englishLocale) CountSyllables(word string) int {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" {
		return 0
	}
	if n, ok := englishIrregular[word]; ok {
		return n
	}
	count := len(englishVowelGroup.FindAllStringIndex(word, -1))
	if count > 1 && strings.HasSuffix(word, "e") && !strings.HasSuffix(word, "le") {
		count--
	}
	if count > 1 && strings.HasSuffix(word, "ed") && len(word) > 3 {
		if before := word[len(word)-3]; before != 't' && before != 'd' {
			count--
		}
	}
	if count < 1 {
		count = 1
	}
	return count
}

func (englishLocale) IsParticiple(token string) bool {
	if _, ok := englishIrregularParticiples[token]; ok {
		return true
	}
	return len(token) > 3 && strings.HasSuffix(token, "ed")
}

var englishLexicon = (&Lexicon{
	Abbreviations: []string{
		"Mr.", "Mrs.", "Ms.", "Dr.", "Prof.", "Sr.", "Jr.", "St.", "vs.", "etc.", "e.g.", "i.e.",
		"approx.", "Inc.", "Ltd.", "Co.", "Jan.", "Feb.", "Aug.", "Sept.", "Oct.",
		"Nov.", "Dec.", "U.S.", "a.m.", "p.m.",
	},
	NumberAbbreviations: []string{"No.", "no.", "Fig.", "fig."},
	StopWords: set(
		"a", "an", "and", "are", "as", "at", "be", "but", "by", "for", "from", "has", "have", "he",
		"her", "his", "how", "i", "if", "in", "into", "is", "it", "its", "me", "my", "no", "not", "of",
		"on", "or", "our", "she", "so", "that", "the", "their", "them", "then", "there", "these",
		"they", "this", "to", "too", "us", "was", "we", "were", "what", "when", "where", "which",
		"who", "why", "will", "with", "you", "your",
	),
	ActionVerbs: []string{
		"discover", "learn", "get", "try", "start", "book", "buy", "order", "download", "call",
		"contact", "compare", "explore", "find", "join", "request", "shop", "sign up", "subscribe",
		"read", "save", "claim", "see", "check", "quote",
	},
	PowerWords: []string{
		"free", "best", "ultimate", "essential", "complete", "guide", "exclusive", "proven", "easy",
		"simple", "quick", "fast", "new", "secret", "powerful", "effective", "expert", "top",
		"tips", "definitive", "instant", "guaranteed",
	},
	SentimentWords: []string{
		"amazing", "incredible", "awesome", "perfect", "surprising", "mistake", "mistakes",
		"avoid", "success", "successful", "brilliant", "reliable", "stunning", "worst",
	},
	QuestionWords: []string{"how", "why", "what", "when", "where", "which", "who", "can", "should", "does", "is"},
	GenericAnchors: []string{
		"click here", "here", "read more", "learn more", "more", "link", "this page", "click",
		"see more", "continue", "this", "page", "more info",
	},
	GenericAltWords: []string{"image", "photo", "picture", "img", "graphic", "icon", "logo", "banner"},
	AvailabilityPhrases: []string{
		"in stock", "available", "ships", "shipping", "delivery", "out of stock", "pre-order",
		"backorder", "pickup",
	},
	ReviewPhrases: []string{"review", "reviews", "rating", "ratings", "stars", "testimonial", "testimonials", "rated"},
	TransitionWords: []string{
		"also", "moreover", "furthermore", "in addition", "additionally", "besides", "likewise",
		"however", "but", "nevertheless", "nonetheless", "on the other hand", "instead", "although",
		"therefore", "thus", "consequently", "as a result", "because", "since", "so", "hence",
		"first", "firstly", "second", "secondly", "then", "next", "finally", "lastly", "meanwhile",
		"in conclusion", "to summarize", "in summary", "overall", "for example", "for instance",
		"in fact", "indeed", "especially", "in particular", "similarly",
	},
	PassiveAuxiliaries: set("am", "is", "are", "was", "were", "be", "been", "being", "isn't", "aren't", "wasn't", "weren't"),
	PassiveExclusions: set(
		"tired", "interested", "excited", "pleased", "bored", "worried", "married", "concerned",
		"used", "supposed", "gone", "scared", "surprised", "ashamed", "delighted", "need", "needed",
	),
	PlaceholderPatterns: []*regexp.Regexp{
		regexp.MustCompile(`(?i)lorem ipsum`),
		regexp.MustCompile(`(?i)dolor sit amet`),
		regexp.MustCompile(`(?i)\b(coming soon|text goes here|placeholder|sample text)\b`),
		regexp.MustCompile(`(?i)\bTODO\b`),
		regexp.MustCompile(`(?i)\[(insert|your|name)[^\]]*\]`),
		regexp.MustCompile(`(?i)\bxxx+\b`),
	},
	BoilerplatePatterns: []*regexp.Regexp{
		regexp.MustCompile(`(?i)all rights reserved`),
		regexp.MustCompile(`(?i)welcome to (our|my) (web)?site`),
		regexp.MustCompile(`(?i)do not hesitate to contact us`),
		regexp.MustCompile(`(?i)this page is under construction`),
	},
	PricePattern: regexp.MustCompile(`(?i)([$£€]\s?\d+(?:[.,]\d{1,2})?|\d+(?:[.,]\d{1,2})?\s?(?:usd|gbp|eur|dollars?)\b|\bprice\b|\bfrom only\b)`),
}).compile()
