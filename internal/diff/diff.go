// Package diff classifies typed characters against a target word.
package diff

// Class tags a single target character.
type Class int

const (
	// Missing means nothing was typed at this position.
	Missing Class = iota
	// Correct means the typed character equals the target character.
	Correct
	// Incorrect means a different character was typed.
	Incorrect
)

func (c Class) String() string {
	switch c {
	case Correct:
		return "correct"
	case Incorrect:
		return "incorrect"
	case Missing:
		return "missing"
	default:
		return "unknown"
	}
}

// Classify compares typed to target rune by rune. The result has one entry
// per rune of target; typed runes past the end of target are ignored.
func Classify(target, typed string) []Class {
	targetRunes := []rune(target)
	typedRunes := []rune(typed)
	out := make([]Class, len(targetRunes))
	for i, r := range targetRunes {
		switch {
		case i >= len(typedRunes):
			out[i] = Missing
		case typedRunes[i] == r:
			out[i] = Correct
		default:
			out[i] = Incorrect
		}
	}
	return out
}

// ClassifyWords classifies word pairs at matching positions. Only indices
// present in both sequences are returned.
func ClassifyWords(target, typed []string) [][]Class {
	n := min(len(target), len(typed))
	out := make([][]Class, n)
	for i := 0; i < n; i++ {
		out[i] = Classify(target[i], typed[i])
	}
	return out
}
