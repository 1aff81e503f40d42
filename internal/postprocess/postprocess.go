// Package postprocess strips common LLM artifacts from generated output
// before it is returned as the transformed text.
package postprocess

import (
	"regexp"
	"strings"
)

// Clean removes LLM artifacts from generated text and returns the trimmed
// result. Three artifact classes are handled:
//  1. Thinking / reasoning blocks
//  2. Instruction echoes (prompt leakage such as "Transformed text:")
//  3. Whole-output quote wrapping
func Clean(text string) string {
	text = stripThinkingBlocks(text)
	text = stripInstructionEchoes(text)
	text = stripQuoteWrapping(text)
	return strings.TrimSpace(text)
}

// thinkingBlockRe matches complete <thinking>…</thinking> style blocks.
// Variants are listed explicitly; RE2 has no backreferences.
var thinkingBlockRe = regexp.MustCompile(
	`(?is)<thinking>.*?</thinking>|<think>.*?</think>|<reasoning>.*?</reasoning>`,
)

// openThinkingRe matches a thinking tag that was never closed because the
// model hit its token limit mid-thought.
var openThinkingRe = regexp.MustCompile(
	`(?is)(?:<thinking>|<think>|<reasoning>).*$`,
)

func stripThinkingBlocks(text string) string {
	text = thinkingBlockRe.ReplaceAllString(text, "")
	text = openThinkingRe.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

// echoPatterns match lead-in phrases models prepend despite instructions.
// Each is anchored at the start and requires a colon to avoid eating
// legitimate content.
var echoPatterns = []*regexp.Regexp{
	// "Here is / Here's [the] [transformed|rewritten|restyled] [text|version]:"
	regexp.MustCompile(`(?i)^here(?:'s| is)(?: the)? (?:transformed |rewritten |restyled )?(?:text|version)\s*:`),
	// "[The] transformed text:" / "Rewritten version:", including the prompt's own trailing label
	regexp.MustCompile(`(?i)^(?:the )?(?:transformed|rewritten|restyled) (?:text|version)\s*:`),
	// "Sure / Certainly[,] here is the transformed text:"
	regexp.MustCompile(`(?i)^(?:certainly|sure|of course)[,.]? here(?:'s| is)(?: the)? (?:transformed |rewritten |restyled )?(?:text|version)\s*:`),
}

func stripInstructionEchoes(text string) string {
	for _, re := range echoPatterns {
		if loc := re.FindStringIndex(text); loc != nil && loc[0] == 0 {
			text = strings.TrimSpace(text[loc[1]:])
		}
	}
	return text
}

// quotePairs are the outer quote pairs stripped when they wrap the entire
// output.
var quotePairs = [][2]rune{
	{'"', '"'},
	{'\'', '\''},
	{'«', '»'},
	{'“', '”'}, // " "
	{'‘', '’'}, // ' '
}

func stripQuoteWrapping(text string) string {
	runes := []rune(text)
	n := len(runes)
	if n < 2 {
		return text
	}
	for _, pair := range quotePairs {
		if runes[0] == pair[0] && runes[n-1] == pair[1] {
			return strings.TrimSpace(string(runes[1 : n-1]))
		}
	}
	return text
}
