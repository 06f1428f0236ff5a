// Package textstats computes lexical statistics over a single text blob:
// tokens, sentences, frequency and n-gram tables and sentence-length
// dispersion. Every function is pure and safe for concurrent use.
package textstats

import (
	"errors"
	"regexp"
	"strings"
	"unicode"
)

// ErrEmptyInput is returned when a text yields zero tokens, so no most
// frequent word exists.
var ErrEmptyInput = errors.New("text contains no words")

// Whitespace is the ECMAScript \s set, wider than RE2's ASCII-only \s.
var whitespaceRun = regexp.MustCompile(`[\t\n\v\f\r\p{Zs}\x{2028}\x{2029}\x{FEFF}]+`)
var sentenceEnd = regexp.MustCompile(`[.!?]+`)

type Metrics struct {
	Characters             int
	Words                  int
	Sentences              int
	UniqueWords            int
	AverageSentenceLength  float64
	MostUsedWord           string
	MostUsedWordCount      int
	MeanSentenceLength     float64
	VarianceSentenceLength float64
	TypeTokenRatio         float64
	Bigrams                map[string]int
	Trigrams               map[string]int

	// Tokens is the case-preserved token sequence the counts were derived from.
	Tokens []string
}

// Measure derives the full metric set for text. It fails with ErrEmptyInput
// when text is empty or whitespace only.
func Measure(text string) (Metrics, error) {
	words := Tokenize(text)
	freq := WordFrequency(words)
	top, topCount, err := MostFrequentWord(freq)
	if err != nil {
		return Metrics{}, err
	}

	sentences := SplitSentences(text)
	mean, variance := MeanAndVariance(SentenceLengths(sentences))

	avg := 0.0
	if len(sentences) > 0 {
		avg = float64(len(words)) / float64(len(sentences))
	}

	return Metrics{
		Characters:             CountCharacters(text),
		Words:                  len(words),
		Sentences:              len(sentences),
		UniqueWords:            freq.Len(),
		AverageSentenceLength:  avg,
		MostUsedWord:           top,
		MostUsedWordCount:      topCount,
		MeanSentenceLength:     mean,
		VarianceSentenceLength: variance,
		TypeTokenRatio:         TypeTokenRatio(len(words), freq.Len()),
		Bigrams:                NGrams(words, 2),
		Trigrams:               NGrams(words, 3),
		Tokens:                 words,
	}, nil
}

// CountCharacters returns the length of text in UTF-16 code units.
func CountCharacters(text string) int {
	n := 0
	for _, r := range text {
		if r > 0xFFFF {
			n += 2
			continue
		}
		n++
	}
	return n
}

func Tokenize(text string) []string {
	parts := whitespaceRun.Split(text, -1)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// SplitWhitespace splits on whitespace runs and keeps the empty pieces a
// leading or trailing separator produces.
func SplitWhitespace(text string) []string {
	return whitespaceRun.Split(text, -1)
}

// SplitSentences splits on runs of . ! ? and returns the trimmed, non-empty
// pieces without their terminal punctuation.
func SplitSentences(text string) []string {
	parts := sentenceEnd.Split(text, -1)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimFunc(p, IsSpace)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

func SentenceLengths(sentences []string) []int {
	out := make([]int, len(sentences))
	for i, s := range sentences {
		out[i] = len(Tokenize(s))
	}
	return out
}

// MeanAndVariance returns the population mean and variance of lengths, both
// 0 for an empty sequence.
func MeanAndVariance(lengths []int) (mean, variance float64) {
	if len(lengths) == 0 {
		return 0, 0
	}
	for _, l := range lengths {
		mean += float64(l)
	}
	mean /= float64(len(lengths))
	for _, l := range lengths {
		d := float64(l) - mean
		variance += d * d
	}
	variance /= float64(len(lengths))
	return mean, variance
}

func TypeTokenRatio(wordsCount, uniqueWordCount int) float64 {
	if wordsCount <= 0 {
		return 0
	}
	return float64(uniqueWordCount) / float64(wordsCount)
}

// IsSpace reports whether r belongs to the whitespace set used for
// tokenization.
func IsSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', 0x2028, 0x2029, 0xFEFF:
		return true
	}
	return unicode.Is(unicode.Zs, r)
}
