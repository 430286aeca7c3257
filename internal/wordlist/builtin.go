package wordlist

import "sort"

var builtin = map[string][]string{
	"en": {
		"a", "and", "away", "big", "blue", "can", "come", "down", "find", "for", "funny", "go",
		"help", "here", "I", "in", "is", "it", "jump", "little", "look", "make", "me", "my", "not",
		"one", "play", "red", "run", "said", "see", "the", "three", "to", "two", "up", "we",
		"where", "yellow", "you", "all", "am", "are", "at", "ate", "be", "black", "brown", "but",
		"came", "did", "do", "eat", "four", "get", "good", "have", "he", "into", "like", "must",
		"new", "no", "now", "on", "our", "out", "please", "pretty", "ran", "ride", "saw", "say",
		"she", "so", "soon", "that", "there", "they", "this", "too", "under", "want", "was",
		"well", "went", "what", "white", "who", "will", "with", "yes", "after", "again", "an",
		"any", "as", "ask", "by", "could", "every", "fly", "from", "give", "going", "had", "has",
		"her", "him", "his", "how", "just", "know", "let", "live", "may", "of", "old", "once",
		"open", "over", "put", "round", "some", "stop", "take", "thank", "them", "then", "think",
		"walk", "were", "when", "always", "around", "because", "been", "before", "best", "both",
		"buy", "call", "cold", "does", "don't", "fast", "first", "five", "found", "gave", "goes",
		"green", "its", "left", "made", "many", "off", "or", "pull", "read", "right", "sing",
		"sit", "sleep", "tell", "their", "these", "those", "upon", "us", "use", "very", "wash",
		"which", "why", "wish", "work", "would", "write", "your", "about", "better", "bring",
		"carry", "clean", "cut", "done", "draw", "drink", "eight", "fall", "far", "full", "got",
		"grow", "hold", "hot", "hurt", "if", "keep", "kind", "laugh", "light", "long", "much",
		"myself", "never", "only", "own", "pick", "seven", "shall", "show", "six", "small",
		"start", "ten", "today", "together", "try", "warm",
	},
	"es": {
		"el", "la", "de", "que", "y", "a", "en", "un", "ser", "se", "no", "haber", "por", "con",
		"su", "para", "como", "estar", "tener", "le", "lo", "todo", "pero", "más", "hacer", "o",
		"poder", "decir", "este", "ir", "otro", "ese", "si", "me", "ya", "ver", "porque", "dar",
		"cuando", "él", "muy", "sin", "vez", "mucho", "saber", "qué", "sobre", "mi", "alguno",
		"mismo", "yo", "también", "hasta", "año", "dos", "querer", "entre", "así", "primero",
		"desde", "grande", "eso", "ni", "nos", "llegar", "pasar", "tiempo", "ella", "sí", "día",
		"uno", "bien", "poco", "deber", "entonces", "poner", "cosa", "tanto", "hombre", "parecer",
		"nuestro", "tan", "donde", "ahora", "parte", "después", "vida", "quedar", "siempre",
		"creer", "hablar", "llevar", "dejar", "nada", "cada", "seguir", "menos", "nuevo",
		"encontrar",
	},
}

// Builtin returns a copy of the bundled word list for lang.
func Builtin(lang string) ([]string, bool) {
	words, ok := builtin[lang]
	if !ok {
		return nil, false
	}
	return append([]string(nil), words...), true
}

// BuiltinLanguages lists bundled language codes in sorted order.
func BuiltinLanguages() []string {
	langs := make([]string, 0, len(builtin))
	for lang := range builtin {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}
