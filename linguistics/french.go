package linguistics

import (
	"regexp"
	"strings"
)

type frenchLocale struct{}

func (frenchLocale) Code() string       { return "fr" }
func (frenchLocale) Lexicon() *Lexicon { return frenchLexicon }

// Kandel & Moles adaptation of the Flesch formula.
func (frenchLocale) Flesch() Flesch {
	return Flesch{Base: 207, SentenceWeight: 1.015, SyllableWeight: 73.6}
}

var (
	frenchVowelGroup = regexp.MustCompile(`[aeiouyàâäéèêëîïôöùûüÿœæ]{1,2}`)
	// Three-vowel sequences pronounced as a single syllable that the two-vowel
	// grouping splits in two.
	frenchTripleVowels = []string{"eau", "oeu", "oui", "oue", "aie", "eui", "oie", "uie", "ieu"}
)

func (frenchLocale) CountSyllables(word string) int {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" {
		return 0
	}
	count := len(frenchVowelGroup.FindAllStringIndex(word, -1))
	if count > 1 && strings.HasSuffix(word, "e") {
		count--
	}
	for _, tv := range frenchTripleVowels {
		count -= strings.Count(word, tv)
	}
	if count < 1 {
		count = 1
	}
	return count
}

var frenchParticipleSuffixes = []string{
	"é", "ée", "és", "ées",
	"it", "ite", "its", "ites",
	"ert", "erte", "erts", "ertes",
	"int", "inte", "ints", "intes",
	"i", "ie", "is", "ies",
	"u", "ue", "us", "ues",
}

func (frenchLocale) IsParticiple(token string) bool {
	if len([]rune(token)) < 3 {
		return false
	}
	for _, suffix := range frenchParticipleSuffixes {
		if strings.HasSuffix(token, suffix) {
			return true
		}
	}
	return false
}

var frenchLexicon = (&Lexicon{
	Abbreviations: []string{
		"M.", "MM.", "Mme.", "Mmes.", "Mlle.", "Dr.", "Pr.", "Me.", "St.", "Ste.",
		"etc.", "cf.", "p. ex.", "ex.", "env.", "av.", "bd.", "tél.", "c.-à-d.", "Cie.", "J.-C.",
	},
	NumberAbbreviations: []string{"n°.", "fig.", "p."},
	StopWords: set(
		"a", "au", "aux", "avec", "ce", "ces", "dans", "de", "des", "du", "elle", "en", "et", "eux",
		"il", "je", "la", "le", "les", "leur", "lui", "ma", "mais", "me", "meme", "mes", "moi", "mon",
		"ne", "nos", "notre", "nous", "on", "ou", "par", "pas", "pour", "qu", "que", "qui", "sa", "se",
		"ses", "son", "sur", "ta", "te", "tes", "toi", "ton", "tu", "un", "une", "vos", "votre", "vous",
		"c", "d", "j", "l", "m", "n", "s", "t", "y", "est", "sont", "ete", "etre", "chez", "cette", "cet",
	),
	ActionVerbs: []string{
		"decouvrez", "contactez", "demandez", "obtenez", "profitez", "reservez", "commandez",
		"essayez", "telechargez", "inscrivez", "appelez", "achetez", "comparez", "consultez",
		"trouvez", "beneficiez", "choisissez", "rejoignez", "testez", "lisez", "apprenez",
		"explorez", "confiez", "parlez", "visitez", "simulez", "devis",
	},
	PowerWords: []string{
		"gratuit", "meilleur", "meilleure", "meilleurs", "essentiel", "ultime", "complet", "complete",
		"guide", "exclusif", "rapide", "facile", "simple", "nouveau", "nouvelle", "secret", "efficace",
		"incontournable", "expert", "garanti", "prouve", "astuces", "conseils", "top",
	},
	SentimentWords: []string{
		"incroyable", "excellent", "parfait", "genial", "surprenant", "erreur", "erreurs", "piege",
		"pieges", "eviter", "reussir", "succes", "puissant", "fiable", "sur mesure", "unique",
	},
	QuestionWords: []string{
		"comment", "pourquoi", "quand", "quel", "quelle", "quels", "quelles", "qui", "que", "quoi",
		"ou", "combien", "est-ce",
	},
	GenericAnchors: []string{
		"cliquez ici", "ici", "en savoir plus", "lire la suite", "voir plus", "plus", "lien",
		"cliquez", "cette page", "suite", "voir", "decouvrir", "la suite", "page",
	},
	GenericAltWords: []string{"image", "photo", "illustration", "img", "picture", "visuel", "logo", "icone"},
	AvailabilityPhrases: []string{
		"en stock", "disponible", "livraison", "expedie", "expedition", "rupture de stock",
		"sur commande", "retrait en magasin",
	},
	ReviewPhrases: []string{"avis", "note", "etoiles", "temoignage", "temoignages", "evaluation", "recommande"},
	TransitionWords: []string{
		"de plus", "en outre", "par ailleurs", "egalement", "aussi", "de meme", "d'ailleurs",
		"cependant", "toutefois", "neanmoins", "pourtant", "en revanche", "au contraire", "mais", "or",
		"donc", "ainsi", "c'est pourquoi", "par consequent", "en effet", "car", "parce que", "puisque",
		"grace a", "d'abord", "tout d'abord", "ensuite", "puis", "enfin", "premierement", "deuxiemement",
		"finalement", "en conclusion", "pour conclure", "en resume", "bref", "en somme", "notamment",
		"par exemple", "en particulier", "alors", "apres", "avant tout",
	},
	PassiveAuxiliaries: set(
		"est", "sont", "etait", "etaient", "sera", "seront", "ete", "soit", "soient", "fut", "furent",
		"serait", "seraient", "etre", "es", "suis", "sommes", "etes",
	),
	PassiveExclusions: set(append(inflect([]string{
		"alle", "venu", "parti", "arrive", "entre", "sorti", "monte", "descendu", "ne", "mort",
		"reste", "retourne", "tombe", "devenu", "revenu", "passe", "rentre", "decede", "apparu",
		"intervenu", "parvenu", "survenu",
	}, "e", "s", "es"),
		"aussi", "ainsi", "ici", "parmi", "voici", "celui", "lundi", "mardi", "jeudi", "vendredi",
		"samedi", "midi", "plus", "nous", "vous", "tous", "dessus", "ceci", "merci", "aujourd'hui",
		"lui", "joli", "jolie", "assis", "assise", "une", "petit", "petite", "parfait", "parfaite",
		"gratuit", "gratuite", "tout", "toute", "seul", "seule",
	)...),
	PlaceholderPatterns: []*regexp.Regexp{
		regexp.MustCompile(`(?i)lorem ipsum`),
		regexp.MustCompile(`(?i)dolor sit amet`),
		regexp.MustCompile(`(?i)\b(texte|contenu) (a|à) (venir|remplacer|compléter)\b`),
		regexp.MustCompile(`(?i)\bTODO\b`),
		regexp.MustCompile(`(?i)\[(ins[ée]rer|votre|nom)[^\]]*\]`),
		regexp.MustCompile(`(?i)\bxxx+\b`),
	},
	BoilerplatePatterns: []*regexp.Regexp{
		regexp.MustCompile(`(?i)tous droits r[ée]serv[ée]s`),
		regexp.MustCompile(`(?i)bienvenue sur (notre|mon) site`),
		regexp.MustCompile(`(?i)n'h[ée]sitez pas [àa] nous contacter`),
		regexp.MustCompile(`(?i)cette page est en construction`),
	},
	PricePattern: regexp.MustCompile(`(?i)(\d+(?:[.,]\d{1,2})?\s?(?:€|(?:eur|euros?)\b)|€\s?\d+|\bprix\b|\btarifs?\b|(?:^|\s)à partir de\s)`),
}).compile()
