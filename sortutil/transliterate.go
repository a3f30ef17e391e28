package sortutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// letters that do not decompose into a base letter plus marks.
var specialLetters = strings.NewReplacer(
	"ß", "ss",
	"Æ", "AE", "æ", "ae",
	"Œ", "OE", "œ", "oe",
	"Ø", "O", "ø", "o",
	"Ł", "L", "ł", "l",
	"Đ", "D", "đ", "d",
	"Ð", "D", "ð", "d",
	"Þ", "TH", "þ", "th",
	"ı", "i",
)

// folder turns strings into accent- and case-insensitive sort keys. It holds
// stateful transformers and must not be shared between goroutines.
type folder struct {
	strip transform.Transformer
	lower cases.Caser
}

func newFolder(tag language.Tag) *folder {
	return &folder{
		strip: transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC),
		lower: cases.Lower(tag),
	}
}

func (f *folder) fold(s string) string {
	stripped, _, err := transform.String(f.strip, s)
	if err != nil {
		stripped = s
	}
	return specialLetters.Replace(f.lower.String(stripped))
}

// Fold returns the key SortBy uses for s: diacritics removed, lower-cased,
// then special letters spelled out in ASCII.
func Fold(s string) string {
	return newFolder(language.Und).fold(s)
}
