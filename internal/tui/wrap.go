package tui

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/katype/internal/diff"
)

type styledRune struct {
	s       string
	width   int
	isSpace bool
}

// buildStyledRunes renders target words against the raw input typed so far.
// Finished words show their character diff, the word being typed shows its
// untyped tail highlighted, and later words stay pending.
func buildStyledRunes(target []string, raw string) []styledRune {
	typed := strings.Fields(raw)
	current := len(typed)
	if current > 0 && !endsWithSpace(raw) {
		current--
	}

	out := make([]styledRune, 0, len(target)*6)
	for i, word := range target {
		if i > 0 {
			out = append(out, styledRune{s: " ", width: 1, isSpace: true})
		}
		switch {
		case i < len(typed):
			missing := missingStyle
			if i == current {
				missing = currentWordStyle
			}
			out = appendClassified(out, word, diff.Classify(word, typed[i]), missing)
		case i == current:
			out = appendStyled(out, word, currentWordStyle)
		default:
			out = appendStyled(out, word, pendingStyle)
		}
	}
	return out
}

func appendClassified(out []styledRune, target string, classes []diff.Class, missing lipgloss.Style) []styledRune {
	for i, r := range []rune(target) {
		out = append(out, styledRune{
			s:     styleFor(classes[i], missing).Render(string(r)),
			width: runewidth.RuneWidth(r),
		})
	}
	return out
}

func appendStyled(out []styledRune, word string, style lipgloss.Style) []styledRune {
	for _, r := range word {
		out = append(out, styledRune{
			s:     style.Render(string(r)),
			width: runewidth.RuneWidth(r),
		})
	}
	return out
}

func styleFor(class diff.Class, missing lipgloss.Style) lipgloss.Style {
	switch class {
	case diff.Correct:
		return correctStyle
	case diff.Incorrect:
		return incorrectStyle
	default:
		return missing
	}
}

// endsWithSpace uses the same notion of space as strings.Fields.
func endsWithSpace(s string) bool {
	r, size := utf8.DecodeLastRuneInString(s)
	return size > 0 && unicode.IsSpace(r)
}

func renderStyledRunes(runes []styledRune) string {
	var b strings.Builder
	for _, item := range runes {
		b.WriteString(item.s)
	}
	return b.String()
}

func wrapStyledRunes(runes []styledRune, width int) string {
	if width <= 0 {
		return renderStyledRunes(runes)
	}
	var out strings.Builder
	line := make([]styledRune, 0, len(runes))
	lineWidth := 0
	lastSpaceIdx := -1

	for i := 0; i < len(runes); {
		item := runes[i]
		if lineWidth+item.width > width && len(line) > 0 {
			if lastSpaceIdx >= 0 {
				out.WriteString(renderStyledRunes(line[:lastSpaceIdx]))
				out.WriteRune('\n')
				line = append([]styledRune{}, line[lastSpaceIdx+1:]...)
				lineWidth = lineWidthOf(line)
				lastSpaceIdx = lastSpaceIndex(line)
			} else {
				out.WriteString(renderStyledRunes(line))
				out.WriteRune('\n')
				line = line[:0]
				lineWidth = 0
				lastSpaceIdx = -1
			}
			continue
		}
		line = append(line, item)
		lineWidth += item.width
		if item.isSpace {
			lastSpaceIdx = len(line) - 1
		}
		i++
	}
	out.WriteString(renderStyledRunes(line))
	return out.String()
}

func lineWidthOf(line []styledRune) int {
	total := 0
	for _, item := range line {
		total += item.width
	}
	return total
}

func lastSpaceIndex(line []styledRune) int {
	for i := len(line) - 1; i >= 0; i-- {
		if line[i].isSpace {
			return i
		}
	}
	return -1
}
