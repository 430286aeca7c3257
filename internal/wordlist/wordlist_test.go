package wordlist

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestResolveBuiltin(t *testing.T) {
	words, err := Resolve("ES", t.TempDir())
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if len(words) == 0 {
		t.Fatalf("expected bundled spanish words")
	}
	words[0] = "mutated"
	again, _ := Builtin("es")
	if again[0] == "mutated" {
		t.Fatalf("Builtin must return a copy")
	}
}

func TestResolveCustomFile(t *testing.T) {
	dir := t.TempDir()
	content := "# comment\nalpha\n\nbeta\n"
	if err := os.WriteFile(filepath.Join(dir, "xx.txt"), []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	words, err := Resolve("xx", dir)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if strings.Join(words, ",") != "alpha,beta" {
		t.Fatalf("unexpected words: %q", words)
	}
}

func TestResolveUnknownLanguage(t *testing.T) {
	_, err := Resolve("zz", t.TempDir())
	if !errors.Is(err, ErrUnknownLanguage) {
		t.Fatalf("expected ErrUnknownLanguage, got %v", err)
	}
}

func TestLanguagesMergesCustom(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "de.txt"), []byte("hallo\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	langs, err := Languages(dir)
	if err != nil {
		t.Fatalf("Languages failed: %v", err)
	}
	if strings.Join(langs, ",") != "de,en,es" {
		t.Fatalf("unexpected languages: %q", langs)
	}
	langs, err = Languages(filepath.Join(dir, "missing"))
	if err != nil {
		t.Fatalf("missing dir should not fail: %v", err)
	}
	if strings.Join(langs, ",") != "en,es" {
		t.Fatalf("unexpected languages: %q", langs)
	}
}
