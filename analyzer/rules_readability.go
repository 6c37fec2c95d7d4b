package analyzer

import (
	"fmt"

	"github.com/seo-optimizer/contentscore/doctree"
	"github.com/seo-optimizer/contentscore/linguistics"
	"github.com/seo-optimizer/contentscore/textnorm"
)

const readabilityMinWords = 100

func evaluateReadability(_ *Input, ctx *Context) []Check {
	l := newChecks(GroupReadability)
	if ctx.WordCount < readabilityMinWords || len(ctx.Sentences) == 0 {
		return l.list()
	}
	t := ctx.Config.Thresholds
	loc := ctx.Locale

	score := linguistics.ReadabilityScore(ctx.Text, loc)
	switch {
	case score >= t.ReadabilityMin:
		l.pass("score", "Reading ease", CategoryImportant, fmt.Sprintf("Reading ease score: %d/100.", score))
	case score >= t.ReadabilityMin-20:
		l.warn("score", "Reading ease", CategoryImportant,
			fmt.Sprintf("The text is somewhat hard to read (%d/100).", score),
			"Use shorter sentences and simpler words.")
	default:
		l.fail("score", "Reading ease", CategoryImportant,
			fmt.Sprintf("The text is hard to read (%d/100).", score),
			"Use shorter sentences and simpler words.")
	}

	long, passive, transitions := 0, 0, 0
	for _, s := range ctx.Sentences {
		if len(linguistics.Words(s)) > t.LongSentenceWords {
			long++
		}
		if linguistics.DetectPassiveVoice(s, loc) {
			passive++
		}
		if linguistics.HasTransitionWord(s, loc) {
			transitions++
		}
	}
	total := float64(len(ctx.Sentences))

	longRatio := float64(long) / total
	switch {
	case longRatio <= t.LongSentenceRatio:
		l.pass("sentence-length", "Sentence length", CategoryImportant,
			fmt.Sprintf("%s of sentences are longer than %d words.", percent(longRatio), t.LongSentenceWords))
	case longRatio <= t.LongSentenceRatio*1.6:
		l.warn("sentence-length", "Sentence length", CategoryImportant,
			fmt.Sprintf("%s of sentences are longer than %d words.", percent(longRatio), t.LongSentenceWords),
			"Split long sentences in two.")
	default:
		l.fail("sentence-length", "Sentence length", CategoryImportant,
			fmt.Sprintf("%s of sentences are longer than %d words.", percent(longRatio), t.LongSentenceWords),
			"Split long sentences in two.")
	}

	longParagraphs, paragraphs := 0, 0
	for _, b := range ctx.Blocks {
		if b.Kind != doctree.BlockParagraph {
			continue
		}
		paragraphs++
		if len(linguistics.Words(b.Text)) > t.ParagraphWords {
			longParagraphs++
		}
	}
	if paragraphs > 0 {
		if longParagraphs > 0 {
			l.warn("paragraph-length", "Paragraph length", CategoryBonus,
				fmt.Sprintf("%d paragraph(s) are longer than %d words.", longParagraphs, t.ParagraphWords),
				"Short paragraphs are easier to read on mobile.")
		} else {
			l.pass("paragraph-length", "Paragraph length", CategoryBonus, "Paragraphs have a comfortable length.")
		}
	}

	passiveRatio := float64(passive) / total
	if passiveRatio <= t.PassiveRatio {
		l.pass("passive-voice", "Passive voice", CategoryImportant,
			fmt.Sprintf("%s of sentences use the passive voice.", percent(passiveRatio)))
	} else {
		l.warn("passive-voice", "Passive voice", CategoryImportant,
			fmt.Sprintf("%s of sentences use the passive voice (max %s).", percent(passiveRatio), percent(t.PassiveRatio)),
			"Prefer the active voice: say who does what.")
	}

	transitionRatio := float64(transitions) / total
	if transitionRatio >= t.TransitionRatio {
		l.pass("transitions", "Transition words", CategoryBonus,
			fmt.Sprintf("%s of sentences contain a transition word.", percent(transitionRatio)))
	} else {
		l.warn("transitions", "Transition words", CategoryBonus,
			fmt.Sprintf("Only %s of sentences contain a transition word (min %s).", percent(transitionRatio), percent(t.TransitionRatio)),
			"Link your ideas with words such as \"however\", \"therefore\" or \"first\".")
	}

	if run, word := longestOpenerRun(ctx.Sentences); run >= t.OpenerRepeat {
		l.warn("sentence-openers", "Sentence openers", CategoryBonus,
			fmt.Sprintf("%d consecutive sentences start with \"%s\".", run, word),
			"Vary the beginning of your sentences.")
	} else {
		l.pass("sentence-openers", "Sentence openers", CategoryBonus, "Sentence openers are varied.")
	}

	if longest := longestSection(ctx.Blocks); longest > t.SectionWords {
		l.warn("sections", "Section length", CategoryBonus,
			fmt.Sprintf("A section runs for %d words without a heading (max %d).", longest, t.SectionWords),
			"Add a subheading to break up long sections.")
	} else {
		l.pass("sections", "Section length", CategoryBonus, "Sections are regularly broken by headings.")
	}
	return l.list()
}

// longestOpenerRun returns the longest run of consecutive sentences that start
// with the same word, and that word.
func longestOpenerRun(sentences []string) (int, string) {
	best, bestWord := 0, ""
	run, prev := 0, ""
	for _, s := range sentences {
		words := linguistics.Words(s)
		if len(words) == 0 {
			run, prev = 0, ""
			continue
		}
		first := textnorm.Normalize(words[0])
		if first == prev {
			run++
		} else {
			run, prev = 1, first
		}
		if run > best {
			best, bestWord = run, words[0]
		}
	}
	return best, bestWord
}

// longestSection returns the largest number of words between two headings.
func longestSection(blocks []doctree.Block) int {
	longest, current := 0, 0
	for _, b := range blocks {
		switch b.Kind {
		case doctree.BlockHeading:
			current = 0
		case doctree.BlockParagraph, doctree.BlockList:
			current += len(linguistics.Words(b.Text))
			if current > longest {
				longest = current
			}
		}
	}
	return longest
}
