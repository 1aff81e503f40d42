// Package textstat computes length and composition statistics for input
// text. Counts operate on NFC-normalized runes so that combining-character
// sequences are measured the way a user perceives them.
package textstat

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Stats summarizes one piece of text.
type Stats struct {
	Characters         int `json:"characters"`
	CharactersNoSpaces int `json:"characters_no_spaces"`
	Words              int `json:"words"`
	Paragraphs         int `json:"paragraphs"`
	Lines              int `json:"lines"`
}

// Length returns the character count of text: NFC-normalized runes,
// whitespace included. This is the count the 5000-character input limit
// is checked against.
func Length(text string) int {
	return len([]rune(norm.NFC.String(text)))
}

// Calculate computes the full statistics for text.
func Calculate(text string) Stats {
	if text == "" {
		return Stats{}
	}

	text = norm.NFC.String(text)

	var noSpaces int
	for _, r := range text {
		if !unicode.IsSpace(r) {
			noSpaces++
		}
	}

	return Stats{
		Characters:         len([]rune(text)),
		CharactersNoSpaces: noSpaces,
		Words:              countWords(text),
		Paragraphs:         countParagraphs(text),
		Lines:              strings.Count(text, "\n") + 1,
	}
}

// countWords counts CJK ideographs individually and everything else as
// whitespace-separated words, so mixed-language text is measured sensibly.
func countWords(text string) int {
	var cjk int
	var latin strings.Builder

	for _, r := range text {
		if unicode.Is(unicode.Han, r) {
			cjk++
			latin.WriteRune(' ')
		} else {
			latin.WriteRune(r)
		}
	}

	return cjk + len(strings.Fields(latin.String()))
}

func countParagraphs(text string) int {
	var n int
	for _, block := range strings.Split(text, "\n\n") {
		if strings.TrimSpace(block) != "" {
			n++
		}
	}
	return n
}
