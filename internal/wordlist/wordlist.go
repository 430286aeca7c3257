// Package wordlist resolves the words a typing test draws from.
package wordlist

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrUnknownLanguage is returned when neither a bundled nor a custom list
// exists for a language.
var ErrUnknownLanguage = errors.New("unimplemented language")

// Resolve returns the words for lang: a bundled list if one exists,
// otherwise <dir>/<lang>.txt filtered for the language.
func Resolve(lang, dir string) ([]string, error) {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if words, ok := Builtin(lang); ok {
		return words, nil
	}
	path := filepath.Join(dir, lang+".txt")
	words, err := LoadWords(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w %q", ErrUnknownLanguage, lang)
		}
		return nil, fmt.Errorf("failed to load word list %s: %w", path, err)
	}
	words = Filter(words, FilterForLang(lang))
	if len(words) == 0 {
		return nil, fmt.Errorf("word list %s has no usable words", path)
	}
	return words, nil
}

// Languages lists bundled languages plus any <lang>.txt files in dir.
func Languages(dir string) ([]string, error) {
	seen := map[string]struct{}{}
	for _, lang := range BuiltinLanguages() {
		seen[lang] = struct{}{}
	}
	entries, err := os.ReadDir(dir)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read wordlist directory: %w", err)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, ".txt") {
			continue
		}
		seen[strings.TrimSuffix(name, ".txt")] = struct{}{}
	}
	langs := make([]string, 0, len(seen))
	for lang := range seen {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs, nil
}

// LoadWords reads one word per line from the provided file path.
func LoadWords(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only word list.
			_ = cerr
		}
	}()

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("word list is empty")
	}
	return words, nil
}
