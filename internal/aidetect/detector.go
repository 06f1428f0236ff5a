// Package aidetect turns lexical statistics into a heuristic 0-100 score of
// how likely a text is to be machine-written. The score is a fixed, auditable
// rule over three signals and makes no accuracy claim.
package aidetect

import (
	"ai_detector/internal/textstats"
)

// ErrEmptyInput is returned by Analyze for empty or whitespace-only text.
var ErrEmptyInput = textstats.ErrEmptyInput

type Result struct {
	CharactersCount        int            `json:"charactersCount"`
	WordsCount             int            `json:"wordsCount"`
	SentencesCount         int            `json:"sentencesCount"`
	UniqueWordCount        int            `json:"uniqueWordCount"`
	AverageSentenceLength  float64        `json:"averageSentenceLength"`
	MostUsedWord           string         `json:"mostUsedWord"`
	MostUsedWordCount      int            `json:"mostUsedWordCount"`
	MeanSentenceLength     float64        `json:"meanSentenceLength"`
	VarianceSentenceLength float64        `json:"varianceSentenceLength"`
	TypeTokenRatio         float64        `json:"typeTokenRatio"`
	Bigrams                map[string]int `json:"bigrams"`
	Trigrams               map[string]int `json:"trigrams"`
	HeuristicMatches       bool           `json:"heuristicMatches"`
	AIProbability          int            `json:"aiProbability"`
}

type Summary struct {
	CharactersCount int `json:"charactersCount"`
	WordsCount      int `json:"wordsCount"`
	SentencesCount  int `json:"sentencesCount"`
	UniqueWordCount int `json:"uniqueWordCount"`
}

type ProbabilityView struct {
	AIProbability int `json:"aiProbability"`
}

// Analyze measures text and scores it. Each call builds a fresh Result.
func Analyze(text string) (Result, error) {
	m, err := textstats.Measure(text)
	if err != nil {
		return Result{}, err
	}
	score := Score(text, m.VarianceSentenceLength)
	return Result{
		CharactersCount:        m.Characters,
		WordsCount:             m.Words,
		SentencesCount:         m.Sentences,
		UniqueWordCount:        m.UniqueWords,
		AverageSentenceLength:  m.AverageSentenceLength,
		MostUsedWord:           m.MostUsedWord,
		MostUsedWordCount:      m.MostUsedWordCount,
		MeanSentenceLength:     m.MeanSentenceLength,
		VarianceSentenceLength: m.VarianceSentenceLength,
		TypeTokenRatio:         m.TypeTokenRatio,
		Bigrams:                m.Bigrams,
		Trigrams:               m.Trigrams,
		HeuristicMatches:       score.MarkerMatched,
		AIProbability:          score.Probability,
	}, nil
}

func (r Result) Summary() Summary {
	return Summary{
		CharactersCount: r.CharactersCount,
		WordsCount:      r.WordsCount,
		SentencesCount:  r.SentencesCount,
		UniqueWordCount: r.UniqueWordCount,
	}
}

func (r Result) Probability() ProbabilityView {
	return ProbabilityView{AIProbability: r.AIProbability}
}
