// Package code encodes word sequences into shareable test codes.
package code

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ErrEmptyWords is returned when a code would carry no words.
var ErrEmptyWords = errors.New("no words to encode")

// Encode returns the share code for words: a JSON array in URL-safe base64.
func Encode(words []string) (string, error) {
	if words == nil {
		words = []string{}
	}
	data, err := json.Marshal(words)
	if err != nil {
		return "", fmt.Errorf("failed to encode words: %w", err)
	}
	return base64.URLEncoding.EncodeToString(data), nil
}

// Decode resolves a share code back into its words.
func Decode(code string) ([]string, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, fmt.Errorf("code is empty")
	}
	data, err := base64.URLEncoding.DecodeString(code)
	if err != nil {
		return nil, fmt.Errorf("invalid base64 in code: %w", err)
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("invalid utf-8 in code")
	}
	var words []string
	if err := json.Unmarshal(data, &words); err != nil {
		return nil, fmt.Errorf("invalid json in code: %w", err)
	}
	if words == nil {
		words = []string{}
	}
	return words, nil
}

// FromList builds a code from a comma separated word list.
func FromList(list string) (string, error) {
	words := ParseList(list)
	if len(words) == 0 {
		return "", ErrEmptyWords
	}
	return Encode(words)
}

// ParseList splits a comma separated list, trimming blanks.
func ParseList(list string) []string {
	parts := strings.Split(list, ",")
	words := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		words = append(words, part)
	}
	return words
}
