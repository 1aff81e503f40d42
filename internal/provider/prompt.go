package provider

import (
	"fmt"
	"strings"
)

// SystemInstruction is the fixed system message for every transformation
// call. Its only job is to pin the output language to the input language;
// the style work is carried by the user prompt.
const SystemInstruction = "You are a professional multilingual text style transformation assistant. " +
	"Your primary rule is to ALWAYS respond in the same language as the input text. " +
	"You can work with any language (English, Chinese, Japanese, Korean, Spanish, French, German, Thai, Vietnamese, etc.) " +
	"and transform writing styles while preserving the original language completely. " +
	"Never translate or change the language of the content."

const languageBlock = `CRITICAL INSTRUCTION: You MUST respond in the EXACT SAME LANGUAGE as the input text below. Do not translate, do not change the language. Only transform the writing style while preserving the original language completely.

Examples:
- If input is in English → respond in English
- If input is in Chinese → respond in Chinese
- If input is in Japanese → respond in Japanese
- If input is in Spanish → respond in Spanish
- If input is in any other language → respond in that same language`

// BuildPrompt composes the user prompt for one transformation: the style
// instruction, an optional length requirement, the language-preservation
// block, and the original text.
func BuildPrompt(styleInstruction string, targetLength int, text string) string {
	var b strings.Builder

	b.WriteString(styleInstruction)

	if targetLength > 0 {
		fmt.Fprintf(&b, "\n\nLENGTH REQUIREMENT: The output should be approximately %d characters or less. "+
			"Adjust the content accordingly while maintaining the core message and style.", targetLength)
	}

	b.WriteString("\n\n")
	b.WriteString(languageBlock)
	b.WriteString("\n\nOriginal text:\n")
	b.WriteString(text)
	b.WriteString("\n\nTransformed text:")

	return b.String()
}
