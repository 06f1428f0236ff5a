package aidetect

import (
	"errors"
	"fmt"

	"ai_detector/internal/chunk"
	"ai_detector/internal/pipeline"
	"ai_detector/internal/textstats"
)

type WindowOptions struct {
	WindowWords  int
	OverlapWords int
	Workers      int
}

type WindowResult struct {
	WindowID         string `json:"windowId"`
	Index            int    `json:"index"`
	StartWord        int    `json:"startWord"`
	EndWord          int    `json:"endWord"`
	WordsCount       int    `json:"wordsCount"`
	HeuristicMatches bool   `json:"heuristicMatches"`
	AIProbability    int    `json:"aiProbability"`
}

// AnalyzeWindows scores overlapping word windows of text independently.
// Windows are rebuilt from tokens joined by single spaces, so their scores
// reflect the window's words rather than the source spacing.
func AnalyzeWindows(text string, opts WindowOptions) ([]WindowResult, error) {
	if opts.WindowWords <= 0 {
		return nil, fmt.Errorf("window size must be positive, got %d", opts.WindowWords)
	}
	segments := chunk.SlidingWindow(textstats.Tokenize(text), opts.WindowWords, opts.OverlapWords)
	if len(segments) == 0 {
		return nil, ErrEmptyInput
	}

	out := make([]WindowResult, len(segments))
	errs := pipeline.Run(segments, opts.Workers, func(i int, seg chunk.Segment) error {
		res, err := Analyze(seg.Text)
		if err != nil {
			return fmt.Errorf("%s: %w", windowID(seg.Index), err)
		}
		out[i] = WindowResult{
			WindowID:         windowID(seg.Index),
			Index:            seg.Index,
			StartWord:        seg.StartToken,
			EndWord:          seg.EndToken,
			WordsCount:       res.WordsCount,
			HeuristicMatches: res.HeuristicMatches,
			AIProbability:    res.AIProbability,
		}
		return nil
	})
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return out, nil
}

func windowID(i int) string {
	return fmt.Sprintf("w-%03d", i)
}
