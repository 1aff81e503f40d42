// Package detector classifies the dominant script of a text. The result is
// used to log transformations and to warn when a provider response comes
// back in a different script than the input, which signals the model
// ignored the language-preservation instruction.
package detector

import "unicode"

// ScriptKind identifies the dominant writing system of a text.
type ScriptKind string

const (
	ScriptUnknown  ScriptKind = "unknown"
	ScriptMixed    ScriptKind = "mixed"
	ScriptLatin    ScriptKind = "latin"
	ScriptChinese  ScriptKind = "chinese"
	ScriptJapanese ScriptKind = "japanese"
	ScriptKorean   ScriptKind = "korean"
	ScriptCyrillic ScriptKind = "cyrillic"
	ScriptArabic   ScriptKind = "arabic"
	ScriptThai     ScriptKind = "thai"
)

// dominanceThreshold is the share of letter runes a script must reach to
// count as dominant.
const dominanceThreshold = 0.3

// DetectScript returns the dominant script of text. Texts without letters
// are unknown; texts where no script reaches the threshold are mixed.
//
// Japanese kana is checked before Han so that Japanese prose, which mixes
// kana and kanji, is not misreported as Chinese.
func DetectScript(text string) ScriptKind {
	counts := make(map[ScriptKind]int)
	total := 0

	for _, r := range text {
		if unicode.IsSpace(r) || unicode.IsPunct(r) || unicode.IsDigit(r) || unicode.IsSymbol(r) {
			continue
		}
		total++
		switch {
		case unicode.Is(unicode.Hiragana, r) || unicode.Is(unicode.Katakana, r):
			counts[ScriptJapanese]++
		case unicode.Is(unicode.Han, r):
			counts[ScriptChinese]++
		case unicode.Is(unicode.Hangul, r):
			counts[ScriptKorean]++
		case unicode.Is(unicode.Cyrillic, r):
			counts[ScriptCyrillic]++
		case unicode.Is(unicode.Arabic, r):
			counts[ScriptArabic]++
		case unicode.Is(unicode.Thai, r):
			counts[ScriptThai]++
		case unicode.Is(unicode.Latin, r):
			counts[ScriptLatin]++
		}
	}

	if total == 0 {
		return ScriptUnknown
	}

	// Kana presence marks Japanese even when kanji dominates the count.
	if counts[ScriptJapanese] > 0 && float64(counts[ScriptJapanese]+counts[ScriptChinese])/float64(total) > dominanceThreshold {
		return ScriptJapanese
	}

	best, bestKind := 0, ScriptMixed
	for kind, n := range counts {
		if n > best {
			best, bestKind = n, kind
		}
	}
	if float64(best)/float64(total) > dominanceThreshold {
		return bestKind
	}
	return ScriptMixed
}

// SameScript reports whether two texts share a dominant script. Unknown or
// mixed results never count as a mismatch; this is a logging aid, not a
// validation gate.
func SameScript(a, b string) bool {
	ka, kb := DetectScript(a), DetectScript(b)
	if ka == ScriptUnknown || kb == ScriptUnknown || ka == ScriptMixed || kb == ScriptMixed {
		return true
	}
	return ka == kb
}
