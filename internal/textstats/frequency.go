package textstats

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// FrequencyTable counts case-folded words and remembers the order in which
// each word was first seen.
type FrequencyTable struct {
	counts map[string]int
	order  []string
}

func WordFrequency(tokens []string) *FrequencyTable {
	t := &FrequencyTable{counts: make(map[string]int, len(tokens))}
	for _, tok := range tokens {
		w := foldWord(tok)
		if _, ok := t.counts[w]; !ok {
			t.order = append(t.order, w)
		}
		t.counts[w]++
	}
	return t
}

// foldWord lowercases like the locale-independent Unicode default mapping:
// capital sigma becomes final sigma at the end of a word and U+0130 keeps
// its dot as U+0307, which the per-rune unicode.ToLower mapping does not do.
func foldWord(s string) string {
	if !strings.ContainsAny(s, "\u03a3\u0130") {
		return strings.ToLower(s)
	}
	var b strings.Builder
	b.Grow(len(s) + 2)
	for i, r := range s {
		switch r {
		case '\u0130':
			b.WriteString("i\u0307")
		case '\u03a3':
			if finalSigma(s, i) {
				b.WriteRune('\u03c2')
			} else {
				b.WriteRune('\u03c3')
			}
		default:
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}

// finalSigma reports whether the sigma at byte offset i follows a cased
// letter and is not followed by one, skipping case-ignorable marks.
func finalSigma(s string, i int) bool {
	before := false
	for j := i; j > 0; {
		r, size := utf8.DecodeLastRuneInString(s[:j])
		j -= size
		if caseIgnorable(r) {
			continue
		}
		before = cased(r)
		break
	}
	if !before {
		return false
	}
	for _, r := range s[i+utf8.RuneLen('\u03a3'):] {
		if caseIgnorable(r) {
			continue
		}
		return !cased(r)
	}
	return true
}

func cased(r rune) bool {
	return unicode.IsUpper(r) || unicode.IsLower(r) || unicode.IsTitle(r)
}

func caseIgnorable(r rune) bool {
	return unicode.In(r, unicode.Mn, unicode.Me, unicode.Cf, unicode.Lm, unicode.Sk) ||
		r == '\'' || r == '.' || r == ':' || r == '\u00b7' || r == '\u2019'
}

func (t *FrequencyTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.order)
}

func (t *FrequencyTable) Count(word string) int {
	if t == nil {
		return 0
	}
	return t.counts[word]
}

// Words returns the distinct words in first-seen order.
func (t *FrequencyTable) Words() []string {
	if t == nil {
		return nil
	}
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

// MostFrequentWord folds the table in first-seen order and only replaces the
// current pick on a strictly greater count, so ties keep the earlier word.
func MostFrequentWord(t *FrequencyTable) (string, int, error) {
	if t.Len() == 0 {
		return "", 0, ErrEmptyInput
	}
	best := t.order[0]
	bestCount := t.counts[best]
	for _, w := range t.order[1:] {
		if c := t.counts[w]; c > bestCount {
			best, bestCount = w, c
		}
	}
	return best, bestCount, nil
}

// NGrams counts every run of n consecutive tokens joined by a single space.
// The table is empty when there are fewer than n tokens or n < 1.
func NGrams(tokens []string, n int) map[string]int {
	out := map[string]int{}
	if n < 1 {
		return out
	}
	for i := 0; i+n <= len(tokens); i++ {
		out[strings.Join(tokens[i:i+n], " ")]++
	}
	return out
}
