// Package result scores a finished typing test.
package result

import (
	"errors"
	"math"
	"strings"
)

// ErrDurationTooShort is returned when the elapsed time is too small to
// derive a words-per-minute value.
var ErrDurationTooShort = errors.New("duration too small to measure")

// Result holds the rounded scores of a single test run.
type Result struct {
	WPM         float64 `json:"wpm"`
	Accuracy    float64 `json:"acc"`
	Consistency float64 `json:"consistency"`
}

// Calculate scores typed words against target words over elapsedSeconds.
//
// Words are compared positionally with exact, case-sensitive equality. All
// values are rounded half away from zero. When elapsedSeconds is not
// positive the returned Result carries accuracy and consistency with a zero
// WPM, and the error is ErrDurationTooShort.
func Calculate(target, typed []string, elapsedSeconds int) (Result, error) {
	res := Result{
		Accuracy:    Accuracy(target, typed),
		Consistency: Consistency(target, typed),
	}
	if elapsedSeconds <= 0 {
		return res, ErrDurationTooShort
	}
	minutes := float64(elapsedSeconds) / 60.0
	res.WPM = math.Round(float64(len(typed)) / minutes)
	return res, nil
}

// Accuracy returns the rounded percentage of target words matched at the
// same position in typed. Extra typed words are ignored.
func Accuracy(target, typed []string) float64 {
	if len(target) == 0 {
		return 0
	}
	return percent(CorrectWords(target, typed), len(target))
}

// Consistency returns the rounded percentage of target words covered by the
// longest correct prefix of typed.
func Consistency(target, typed []string) float64 {
	if len(target) == 0 {
		return 0
	}
	return percent(CorrectPrefix(target, typed), len(target))
}

// CorrectWords counts positions where target and typed hold the same word.
func CorrectWords(target, typed []string) int {
	n := min(len(target), len(typed))
	correct := 0
	for i := 0; i < n; i++ {
		if target[i] == typed[i] {
			correct++
		}
	}
	return correct
}

// CorrectPrefix counts matching words from index 0 up to the first mismatch.
// A typed sequence that ends early counts as a mismatch at that index.
func CorrectPrefix(target, typed []string) int {
	n := min(len(target), len(typed))
	for i := 0; i < n; i++ {
		if target[i] != typed[i] {
			return i
		}
	}
	return n
}

// SplitTyped splits raw input into words on runs of whitespace.
func SplitTyped(raw string) []string {
	return strings.Fields(raw)
}

func percent(part, whole int) float64 {
	return math.Round(float64(part) / float64(whole) * 100)
}
