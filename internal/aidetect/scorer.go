package aidetect

import (
	"regexp"

	"ai_detector/internal/textstats"
)

const (
	markerBase   = 41
	baselineBase = 9

	varianceThreshold  = 5.0
	variedAdjust       = 6
	uniformAdjust      = -4
	repetitionLimit    = 2
	repetitiveAdjust   = 5
	unrepetitiveAdjust = -4
)

// Stock phrases, matched case-insensitively anywhere in the text.
var markerPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)in conclusion`),
	regexp.MustCompile(`(?i)it is important to note`),
	regexp.MustCompile(`(?i)as mentioned above`),
	regexp.MustCompile(`(?i)thus`),
	regexp.MustCompile(`(?i)moreover`),
}

// Breakdown records every signal that went into a probability score.
type Breakdown struct {
	MarkerMatched      bool `json:"markerMatched"`
	Base               int  `json:"base"`
	SentenceComplexity int  `json:"sentenceComplexity"`
	Repetition         int  `json:"repetition"`
	Probability        int  `json:"probability"`
}

// Score applies the fixed linear rule to text and the population variance of
// its sentence lengths.
func Score(text string, sentenceVariance float64) Breakdown {
	b := Breakdown{Base: baselineBase}
	if MatchesMarkerPhrase(text) {
		b.MarkerMatched = true
		b.Base = markerBase
	}

	b.SentenceComplexity = uniformAdjust
	if sentenceVariance > varianceThreshold {
		b.SentenceComplexity = variedAdjust
	}

	b.Repetition = unrepetitiveAdjust
	if HasRepetition(text) {
		b.Repetition = repetitiveAdjust
	}

	b.Probability = clamp100(b.Base + b.SentenceComplexity + b.Repetition)
	return b
}

func MatchesMarkerPhrase(text string) bool {
	for _, re := range markerPatterns {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}

// HasRepetition reports whether any raw token occurs more than twice. Tokens
// come from a plain whitespace split that keeps empty edge pieces, which is
// not the tokenizer the metrics use.
func HasRepetition(text string) bool {
	counts := map[string]int{}
	for _, w := range textstats.SplitWhitespace(text) {
		counts[w]++
		if counts[w] > repetitionLimit {
			return true
		}
	}
	return false
}

func clamp100(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
