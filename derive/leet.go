package derive

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// The nine replacement tables, one entry per letter 'a'..'z'. Higher levels
// substitute more letters and use more elaborate look-alikes. The tables
// reproduce the published reference set exactly; editing an entry breaks
// compatibility with every previously generated password.
var leetTables = [MaxLeetLevel][26]string{
	{"4", "b", "c", "d", "3", "f", "g", "h", "i", "j", "k", "1", "m", "n", "0", "p", "9", "r", "s", "7", "u", "v", "w", "x", "y", "z"},
	{"4", "b", "c", "d", "3", "f", "g", "h", "1", "j", "k", "1", "m", "n", "0", "p", "9", "r", "5", "7", "u", "v", "w", "x", "y", "2"},
	{"4", "8", "c", "d", "3", "f", "6", "h", "'", "j", "k", "1", "m", "n", "0", "p", "9", "r", "5", "7", "u", "v", "w", "x", "'/", "2"},
	{"@", "8", "c", "d", "3", "f", "6", "h", "'", "j", "k", "1", "m", "n", "0", "p", "9", "r", "5", "7", "u", "v", "w", "x", "'/", "2"},
	{"@", "|3", "c", "d", "3", "f", "6", "#", "!", "7", "|<", "1", "m", "n", "0", "|>", "9", "|2", "$", "7", "u", "\\/", "w", "x", "'/", "2"},
	{"@", "|3", "c", "|)", "&", "|=", "6", "#", "!", ",|", "|<", "1", "m", "n", "0", "|>", "9", "|2", "$", "7", "u", "\\/", "w", "x", "'/", "2"},
	{"@", "|3", "[", "|)", "&", "|=", "6", "#", "!", ",|", "|<", "1", "^^", "^/", "0", "|*", "9", "|2", "5", "7", "(_)", "\\/", "\\/\\/", "><", "'/", "2"},
	{"@", "8", "(", "|)", "&", "|=", "6", "|-|", "!", "_|", "|(", "1", "|\\/|", "|\\|", "()", "|>", "(,)", "|2", "$", "|", "|_|", "\\/", "\\^/", ")(", "'/", "\"/_"},
	{"@", "8", "(", "|)", "&", "|=", "6", "|-|", "!", "_|", "|{", "|_", "/\\/\\", "|\\|", "()", "|>", "(,)", "|2", "$", "|", "|_|", "\\/", "\\^/", ")(", "'/", "\"/_"},
}

// leetTable returns the replacement table for a level, or nil for level 0
// (the identity transform).
func leetTable(level int) *[26]string {
	if level < 1 || level > MaxLeetLevel {
		return nil
	}
	return &leetTables[level-1]
}

// leetify lowercases input and substitutes the letters 'a'..'z' according to
// table. Lowercasing runs over the whole input with full Unicode context, so
// a word-final capital sigma becomes ς rather than σ — per-character folding
// would get that wrong.
func leetify(table *[26]string, input string) string {
	lowered := cases.Lower(language.Und).String(input)
	var b strings.Builder
	b.Grow(len(lowered))
	for _, r := range lowered {
		if r >= 'a' && r <= 'z' {
			b.WriteString(table[r-'a'])
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
