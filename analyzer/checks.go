package analyzer

import (
	"fmt"
	"strings"

	"github.com/seo-optimizer/contentscore/linguistics"
	"github.com/seo-optimizer/contentscore/textnorm"
)

// Default weight of each category.
const (
	weightCritical  = 3
	weightImportant = 2
	weightBonus     = 1
)

func weightOf(c Category) float64 {
	switch c {
	case CategoryCritical:
		return weightCritical
	case CategoryImportant:
		return weightImportant
	default:
		return weightBonus
	}
}

// checkList accumulates the checks of one rule group.
type checkList struct {
	group  string
	checks []Check
}

func newChecks(group string) *checkList {
	return &checkList{group: group}
}

func (l *checkList) add(id, label string, status Status, cat Category, message, tip string) {
	l.checks = append(l.checks, Check{
		ID:       l.group + "-" + id,
		Label:    label,
		Status:   status,
		Message:  message,
		Category: cat,
		Weight:   weightOf(cat),
		Group:    l.group,
		Tip:      tip,
	})
}

func (l *checkList) pass(id, label string, cat Category, message string) {
	l.add(id, label, StatusPass, cat, message, "")
}

func (l *checkList) warn(id, label string, cat Category, message, tip string) {
	l.add(id, label, StatusWarning, cat, message, tip)
}

func (l *checkList) fail(id, label string, cat Category, message, tip string) {
	l.add(id, label, StatusFail, cat, message, tip)
}

func (l *checkList) list() []Check {
	return l.checks
}

// tokens is a normalized text as space-separated words, padded with a space
// on both sides so that whole words and phrases can be searched with
// strings.Contains. Hyphens separate words ("contactez-nous" holds
// "contactez").
type tokens string

func tokenize(text string) tokens {
	words := linguistics.Words(strings.ReplaceAll(textnorm.Normalize(text), "-", " "))
	if len(words) == 0 {
		return ""
	}
	return tokens(" " + strings.Join(words, " ") + " ")
}

func (t tokens) has(phrase string) bool {
	return t != "" && strings.Contains(string(t), " "+strings.ReplaceAll(phrase, "-", " ")+" ")
}

// matching returns the phrases of list present in t.
func (t tokens) matching(list []string) []string {
	var found []string
	for _, p := range list {
		if t.has(p) {
			found = append(found, p)
		}
	}
	return found
}

func (t tokens) first() string {
	s := strings.TrimSpace(string(t))
	if i := strings.IndexByte(s, ' '); i >= 0 {
		return s[:i]
	}
	return s
}

func runeLen(s string) int {
	return len([]rune(strings.TrimSpace(s)))
}

func percent(ratio float64) string {
	return fmt.Sprintf("%.0f%%", ratio*100)
}

func quoteAll(items []string, limit int) string {
	more := ""
	if len(items) > limit {
		items, more = items[:limit], ", …"
	}
	return `"` + strings.Join(items, `", "`) + `"` + more
}
