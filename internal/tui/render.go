package tui

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/verte-zerg/katype/internal/diff"
	"github.com/verte-zerg/katype/internal/result"
)

// Report holds everything printed after a finished test.
type Report struct {
	Words   []string
	Typed   []string
	Result  result.Result
	Err     error
	Seconds int
	Lang    string
	Code    string
}

// RenderReport renders the per-word feedback followed by the scores,
// wrapped to width cells.
func RenderReport(r Report, width int) string {
	lines := []string{
		wrapStyledRunes(styleWordPairs(r.Words, r.Typed), width),
		"",
	}
	if errors.Is(r.Err, result.ErrDurationTooShort) {
		lines = append(lines,
			"wpm: "+incorrectStyle.Render("n/a"),
			incorrectStyle.Render(r.Err.Error()),
		)
	} else {
		lines = append(lines, "wpm: "+valueStyle.Render(formatScore(r.Result.WPM)))
	}
	chars := utf8.RuneCountInString(strings.Join(r.Words, ""))
	lines = append(lines,
		"acc: "+valueStyle.Render(formatScore(r.Result.Accuracy))+"%",
		fmt.Sprintf("total %s chars in %s words", valueStyle.Render(fmt.Sprint(chars)), valueStyle.Render(fmt.Sprint(len(r.Words)))),
		"consistency: "+valueStyle.Render(formatScore(r.Result.Consistency))+"%",
		fmt.Sprintf("time: %s %s", valueStyle.Render(fmt.Sprintf("%ds", r.Seconds)), valueStyle.Render(r.Lang)),
	)
	if r.Code != "" {
		lines = append(lines, "code: "+valueStyle.Render(r.Code))
	}
	return strings.Join(lines, "\n")
}

// RenderTimeout renders the notice shown when the timeout ends a test.
func RenderTimeout() string {
	return incorrectStyle.Render("The timeout ended.")
}

// RenderCode renders the output of the code generator.
func RenderCode(code string) string {
	return strings.Join([]string{
		"There is your code: " + valueStyle.Render(code),
		"You can run test with this code via: " + valueStyle.Render("katype --code "+code),
	}, "\n")
}

// styleWordPairs renders each target word that has a typed counterpart.
func styleWordPairs(words, typed []string) []styledRune {
	pairs := diff.ClassifyWords(words, typed)
	out := make([]styledRune, 0, len(pairs)*6)
	for i, classes := range pairs {
		if i > 0 {
			out = append(out, styledRune{s: " ", width: 1, isSpace: true})
		}
		out = appendClassified(out, words[i], classes, missingStyle)
	}
	return out
}

func formatScore(v float64) string {
	return fmt.Sprintf("%.0f", v)
}
