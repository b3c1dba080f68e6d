package actors

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Classify returns the labels of every library entry matching the text,
// in library (descending-label) order. Blacklisted phrases are removed
// before matching, and the text is padded with a leading and trailing
// space so boundary guards can match at the ends.
func Classify(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	cleaned := text
	for _, phrase := range Blacklist() {
		cleaned = removeFold(cleaned, phrase)
	}
	padded := " " + cleaned + " "

	var labels []string
	seen := make(map[string]bool)
	for _, entry := range DutyholderLibrary() {
		if seen[entry.Label] {
			continue
		}
		if entry.Pattern.MatchString(padded) {
			labels = append(labels, entry.Label)
			seen[entry.Label] = true
		}
	}
	return labels
}

// removeFold replaces every case-insensitive occurrence of phrase with a
// space. The scan folds rune by rune against the original text; lowering
// a copy up front is unsafe because some runes change byte length under
// ToLower and the indices stop lining up.
func removeFold(text, phrase string) string {
	if phrase == "" {
		return text
	}
	var b strings.Builder
	for i := 0; i < len(text); {
		if n := foldPrefixLen(text[i:], phrase); n > 0 {
			b.WriteByte(' ')
			i += n
			continue
		}
		_, size := utf8.DecodeRuneInString(text[i:])
		b.WriteString(text[i : i+size])
		i += size
	}
	return b.String()
}

// foldPrefixLen returns the byte length of the prefix of s matching
// phrase rune-wise under ToLower folding, or 0 if s does not start
// with the phrase.
func foldPrefixLen(s, phrase string) int {
	i := 0
	for _, pr := range phrase {
		r, size := utf8.DecodeRuneInString(s[i:])
		if size == 0 || unicode.ToLower(r) != unicode.ToLower(pr) {
			return 0
		}
		i += size
	}
	return i
}
