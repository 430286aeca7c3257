package result

import (
	"errors"
	"math/rand"
	"testing"
)

func TestCalculateExactMatch(t *testing.T) {
	res, err := Calculate([]string{"the", "cat"}, []string{"the", "cat"}, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Result{WPM: 12, Accuracy: 100, Consistency: 100}
	if res != want {
		t.Fatalf("expected %+v, got %+v", want, res)
	}
}

func TestCalculateBrokenPrefix(t *testing.T) {
	res, err := Calculate([]string{"the", "cat"}, []string{"the", "dog"}, 6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Result{WPM: 20, Accuracy: 50, Consistency: 50}
	if res != want {
		t.Fatalf("expected %+v, got %+v", want, res)
	}
}

func TestCalculateRoundsAccuracy(t *testing.T) {
	res, err := Calculate([]string{"a", "b", "c"}, []string{"x", "b", "c"}, 60)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Accuracy != 67 {
		t.Fatalf("expected accuracy 67, got %v", res.Accuracy)
	}
	if res.Consistency != 0 {
		t.Fatalf("expected consistency 0, got %v", res.Consistency)
	}
	if res.WPM != 3 {
		t.Fatalf("expected wpm 3, got %v", res.WPM)
	}
}

func TestCalculateEmptyTarget(t *testing.T) {
	res, err := Calculate(nil, []string{"anything"}, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Result{WPM: 12, Accuracy: 0, Consistency: 0}
	if res != want {
		t.Fatalf("expected %+v, got %+v", want, res)
	}
}

func TestCalculateZeroDuration(t *testing.T) {
	res, err := Calculate([]string{"a", "b"}, []string{"a", "x"}, 0)
	if !errors.Is(err, ErrDurationTooShort) {
		t.Fatalf("expected ErrDurationTooShort, got %v", err)
	}
	if res.WPM != 0 {
		t.Fatalf("expected zero wpm, got %v", res.WPM)
	}
	if res.Accuracy != 50 || res.Consistency != 50 {
		t.Fatalf("expected partial scores 50/50, got %+v", res)
	}
}

func TestCalculateTypedLongerThanTarget(t *testing.T) {
	res, err := Calculate([]string{"go"}, []string{"go", "extra", "words"}, 60)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Accuracy != 100 || res.Consistency != 100 {
		t.Fatalf("extra typed words must be ignored, got %+v", res)
	}
	if res.WPM != 3 {
		t.Fatalf("expected wpm to count every typed word, got %v", res.WPM)
	}
}

func TestCalculateEmptyTyped(t *testing.T) {
	res, err := Calculate([]string{"one", "two"}, nil, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Accuracy != 0 || res.Consistency != 0 || res.WPM != 0 {
		t.Fatalf("expected all zero scores, got %+v", res)
	}
}

func TestCalculateCaseSensitive(t *testing.T) {
	if got := Accuracy([]string{"Go"}, []string{"go"}); got != 0 {
		t.Fatalf("expected case-sensitive mismatch, got %v", got)
	}
}

func TestScoreBoundsAndOrdering(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	vocab := []string{"a", "b", "c", "d"}
	pick := func(n int) []string {
		out := make([]string, n)
		for i := range out {
			out[i] = vocab[rnd.Intn(len(vocab))]
		}
		return out
	}
	for i := 0; i < 500; i++ {
		target := pick(rnd.Intn(8))
		typed := pick(rnd.Intn(8))
		acc := Accuracy(target, typed)
		cons := Consistency(target, typed)
		if acc < 0 || acc > 100 || cons < 0 || cons > 100 {
			t.Fatalf("scores out of range: acc=%v cons=%v target=%v typed=%v", acc, cons, target, typed)
		}
		if cons > acc {
			t.Fatalf("consistency %v exceeds accuracy %v for target=%v typed=%v", cons, acc, target, typed)
		}
		if len(target) > 0 {
			if Accuracy(target, target) != 100 || Consistency(target, target) != 100 {
				t.Fatalf("identical sequences must score 100: %v", target)
			}
		}
	}
}

func TestSplitTyped(t *testing.T) {
	words := SplitTyped("  the\tcat \n sat  ")
	if len(words) != 3 {
		t.Fatalf("expected 3 words, got %d: %q", len(words), words)
	}
	if words[0] != "the" || words[1] != "cat" || words[2] != "sat" {
		t.Fatalf("unexpected split: %q", words)
	}
	if got := SplitTyped("   "); len(got) != 0 {
		t.Fatalf("expected no words for blank input, got %q", got)
	}
}
