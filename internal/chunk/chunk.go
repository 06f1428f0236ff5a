package chunk

import (
	"strings"

	"ai_detector/internal/textstats"
)

// Segment is a contiguous run of tokens [StartToken, EndToken).
type Segment struct {
	Index      int
	StartToken int
	EndToken   int
	Text       string
}

func (s Segment) Len() int {
	return s.EndToken - s.StartToken
}

// Split tokenizes text the same way the metrics do and windows the tokens.
func Split(text string, windowTokens, overlapTokens int) []Segment {
	return SlidingWindow(textstats.Tokenize(text), windowTokens, overlapTokens)
}

// SlidingWindow covers every token with windows of windowTokens tokens that
// overlap by overlapTokens. The last window may be shorter.
func SlidingWindow(tokens []string, windowTokens, overlapTokens int) []Segment {
	if windowTokens <= 0 || len(tokens) == 0 {
		return nil
	}
	if overlapTokens < 0 {
		overlapTokens = 0
	}
	if overlapTokens >= windowTokens {
		overlapTokens = windowTokens - 1
	}

	step := windowTokens - overlapTokens
	segments := make([]Segment, 0, (len(tokens)/step)+1)
	for start := 0; start < len(tokens); start += step {
		end := min(start+windowTokens, len(tokens))
		segments = append(segments, Segment{
			Index:      len(segments),
			StartToken: start,
			EndToken:   end,
			Text:       strings.Join(tokens[start:end], " "),
		})
		if end == len(tokens) {
			break
		}
	}
	return segments
}
