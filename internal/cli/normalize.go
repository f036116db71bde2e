package cli

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Normalize converts a raw option or flag name to lower camelCase.
// Any rune that is not a letter or digit separates words and is dropped.
// Each word after the first starts upper-case and the result starts
// lower-case. Every other letter is kept as given, in any script, so
// "dry-run" and "dry_run" become "dryRun", "HTTPPort" becomes "hTTPPort"
// and "über-größe" becomes "überGröße". The empty string stays empty.
func Normalize(name string) string {
	words := strings.FieldsFunc(name, isSeparator)

	var b strings.Builder
	b.Grow(len(name))
	for i, word := range words {
		r, size := utf8.DecodeRuneInString(word)
		if i == 0 {
			r = unicode.ToLower(r)
		} else {
			r = unicode.ToUpper(r)
		}
		b.WriteRune(r)
		b.WriteString(word[size:])
	}
	return b.String()
}

func isSeparator(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}
