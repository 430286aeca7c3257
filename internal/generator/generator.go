// Package generator builds typing test word sequences.
package generator

import (
	"math/rand"
	"time"
	"unicode"
)

// Generator produces randomized word sequences from an injected source.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator for seed. A zero seed uses the current time.
func New(seed int64) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return NewWithSource(rand.NewSource(seed))
}

// NewWithSource returns a Generator drawing from src.
func NewWithSource(src rand.Source) *Generator {
	return &Generator{rnd: rand.New(src)}
}

// Sample picks up to count distinct entries of words in random order.
// Duplicates in words may still appear more than once.
func (g *Generator) Sample(words []string, count int) []string {
	if count <= 0 || len(words) == 0 {
		return []string{}
	}
	if count > len(words) {
		count = len(words)
	}
	idx := g.rnd.Perm(len(words))[:count]
	out := make([]string, count)
	for i, j := range idx {
		out[i] = words[j]
	}
	return out
}

// Generate samples up to count distinct entries of words like Sample and
// decorates each one with caps/punctuation rules.
func (g *Generator) Generate(words []string, count int, capsPct, punctPct float64, punctSet []rune) []string {
	result := g.Sample(words, count)
	for i, word := range result {
		result[i] = g.Decorate(word, capsPct, punctPct, punctSet)
	}
	return result
}

// Decorate capitalizes and punctuates word according to the probabilities.
func (g *Generator) Decorate(word string, capsPct, punctPct float64, punctSet []rune) string {
	word = applyCaps(g.rnd, word, capsPct)
	return applyPunct(g.rnd, word, punctPct, punctSet)
}

func applyCaps(rnd *rand.Rand, word string, capsPct float64) string {
	if capsPct <= 0 {
		return word
	}
	if rnd.Float64() > capsPct {
		return word
	}
	runes := []rune(word)
	if len(runes) == 0 {
		return word
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

func applyPunct(rnd *rand.Rand, word string, punctPct float64, punctSet []rune) string {
	if punctPct <= 0 || len(punctSet) == 0 {
		return word
	}
	if rnd.Float64() > punctPct {
		return word
	}
	punct := punctSet[rnd.Intn(len(punctSet))]
	return word + string(punct)
}
