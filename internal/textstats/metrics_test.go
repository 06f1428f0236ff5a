package textstats

import (
	"errors"
	"reflect"
	"testing"
)

func TestTokenizeDropsEmptyPieces(t *testing.T) {
	got := Tokenize("  Hello  world\n\tfoo bar  ")
	want := []string{"Hello", "world", "foo", "bar"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected tokens: %q", got)
	}
	if len(Tokenize("")) != 0 {
		t.Fatal("expected no tokens for empty text")
	}

	// Unicode space separators split words; NEL is not whitespace here.
	got = Tokenize("a\u00a0b\u3000c\uFEFFd e\u0085f\u2028g\u2029h")
	want = []string{"a", "b", "c", "d", "e\u0085f", "g", "h"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected unicode tokens: %q", got)
	}
}

func TestSplitWhitespaceKeepsEdgePieces(t *testing.T) {
	got := SplitWhitespace(" a  b ")
	want := []string{"", "a", "b", ""}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected pieces: %q", got)
	}

	got = SplitWhitespace("go\u00a0go\u00a0\u00a0go")
	want = []string{"go", "go", "go"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected NBSP pieces: %q", got)
	}
}

func TestSplitSentences(t *testing.T) {
	sentences := SplitSentences("Hello world. How are you?")
	if !reflect.DeepEqual(sentences, []string{"Hello world", "How are you"}) {
		t.Fatalf("unexpected sentences: %q", sentences)
	}
	lengths := SentenceLengths(sentences)
	if !reflect.DeepEqual(lengths, []int{2, 3}) {
		t.Fatalf("unexpected lengths: %v", lengths)
	}
	if got := SplitSentences("?!.. ... !"); len(got) != 0 {
		t.Fatalf("expected punctuation-only text to have no sentences, got %q", got)
	}
}

func TestCountCharactersUsesUTF16Units(t *testing.T) {
	if got := CountCharacters("héllo"); got != 5 {
		t.Fatalf("expected 5, got %d", got)
	}
	if got := CountCharacters("ok \U0001F600"); got != 5 {
		t.Fatalf("expected surrogate pair to count twice, got %d", got)
	}
	if got := CountCharacters("  "); got != 2 {
		t.Fatalf("expected whitespace to be counted, got %d", got)
	}
}

func TestMostFrequentWordKeepsEarliestOnTie(t *testing.T) {
	table := WordFrequency([]string{"b", "A", "a", "B", "c"})
	word, count, err := MostFrequentWord(table)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if word != "b" || count != 2 {
		t.Fatalf("expected b x2, got %s x%d", word, count)
	}
	if !reflect.DeepEqual(table.Words(), []string{"b", "a", "c"}) {
		t.Fatalf("unexpected insertion order: %q", table.Words())
	}
}

func TestMostFrequentWordEmptyTable(t *testing.T) {
	_, _, err := MostFrequentWord(WordFrequency(nil))
	if !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("expected ErrEmptyInput, got %v", err)
	}
}

func TestWordFrequencyFoldsGreekAndTurkishCapitals(t *testing.T) {
	cases := map[string]string{
		"ΟΔΟΣ":            "οδος",
		"ΟΔΟΣ.":           "οδος.",
		"ΣΑΣ":             "σας",
		"Σ":               "σ",
		"ΣΟΦΙΑ":           "σοφια",
		"\u0130ZM\u0130R": "i\u0307zmi\u0307r",
		"Hello":           "hello",
	}
	for in, want := range cases {
		if got := foldWord(in); got != want {
			t.Fatalf("foldWord(%q) = %q, want %q", in, got, want)
		}
	}

	word, count, err := MostFrequentWord(WordFrequency([]string{"ΟΔΟΣ", "οδος", "δρομος"}))
	if err != nil || word != "οδος" || count != 2 {
		t.Fatalf("unexpected most frequent word %q (%d): %v", word, count, err)
	}
}

func TestMeanAndVariance(t *testing.T) {
	mean, variance := MeanAndVariance([]int{2, 3})
	if mean != 2.5 || variance != 0.25 {
		t.Fatalf("unexpected stats: mean=%v variance=%v", mean, variance)
	}
	mean, variance = MeanAndVariance(nil)
	if mean != 0 || variance != 0 {
		t.Fatalf("expected zero stats for empty input, got %v %v", mean, variance)
	}
}

func TestTypeTokenRatio(t *testing.T) {
	if got := TypeTokenRatio(0, 0); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
	if got := TypeTokenRatio(4, 2); got != 0.5 {
		t.Fatalf("expected 0.5, got %v", got)
	}
}

func TestNGrams(t *testing.T) {
	tokens := Tokenize("a b c")
	if got := NGrams(tokens, 2); !reflect.DeepEqual(got, map[string]int{"a b": 1, "b c": 1}) {
		t.Fatalf("unexpected bigrams: %v", got)
	}
	if got := NGrams(tokens, 3); !reflect.DeepEqual(got, map[string]int{"a b c": 1}) {
		t.Fatalf("unexpected trigrams: %v", got)
	}
	if got := NGrams(tokens, 4); len(got) != 0 {
		t.Fatalf("expected empty table, got %v", got)
	}
	if got := NGrams(Tokenize("Go go Go go"), 2); got["Go go"] != 2 || got["go Go"] != 1 {
		t.Fatalf("expected case-preserving keys, got %v", got)
	}
}

func TestMeasure(t *testing.T) {
	m, err := Measure("Cat cat cat dog.")
	if err != nil {
		t.Fatalf("measure: %v", err)
	}
	if m.Words != 4 || m.UniqueWords != 2 || m.Sentences != 1 {
		t.Fatalf("unexpected counts: %+v", m)
	}
	if m.MostUsedWord != "cat" || m.MostUsedWordCount != 3 {
		t.Fatalf("unexpected most used word: %s x%d", m.MostUsedWord, m.MostUsedWordCount)
	}
	if m.AverageSentenceLength != 4 || m.TypeTokenRatio != 0.5 {
		t.Fatalf("unexpected ratios: avg=%v ttr=%v", m.AverageSentenceLength, m.TypeTokenRatio)
	}
	if m.Characters != 16 {
		t.Fatalf("expected 16 characters, got %d", m.Characters)
	}
}

func TestMeasureWithoutSentences(t *testing.T) {
	m, err := Measure("...")
	if err != nil {
		t.Fatalf("measure: %v", err)
	}
	if m.Words != 1 || m.Sentences != 0 {
		t.Fatalf("unexpected counts: %+v", m)
	}
	if m.AverageSentenceLength != 0 || m.MeanSentenceLength != 0 || m.VarianceSentenceLength != 0 {
		t.Fatalf("expected zeroed sentence stats, got %+v", m)
	}
}

func TestMeasureEmptyInput(t *testing.T) {
	for _, text := range []string{"", "   ", "\n\t "} {
		if _, err := Measure(text); !errors.Is(err, ErrEmptyInput) {
			t.Fatalf("expected ErrEmptyInput for %q, got %v", text, err)
		}
	}
}
