package postprocess

import "testing"

func TestClean_PlainTextUntouched(t *testing.T) {
	input := "Officials confirmed the new policy Tuesday. The change takes effect next month."
	if got := Clean(input); got != input {
		t.Errorf("expected unchanged text, got %q", got)
	}
}

func TestClean_ThinkingBlocks(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"closed block", "Before<thinking>analysis here</thinking>After", "BeforeAfter"},
		{"reasoning block", "Start<reasoning>why</reasoning>End", "StartEnd"},
		{"truncated block", "Result text<think>cut off mid", "Result text"},
		{"only a block", "<thinking>nothing else</thinking>", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clean(tt.input); got != tt.expected {
				t.Errorf("Clean(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestClean_InstructionEchoes(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"here is prefix", "Here is the transformed text: Bold new copy.", "Bold new copy."},
		{"label prefix", "Transformed text: Bold new copy.", "Bold new copy."},
		{"rewritten version", "The rewritten version: Bold new copy.", "Bold new copy."},
		{"sure prefix", "Sure, here's the text: Bold new copy.", "Bold new copy."},
		{"colon required", "Here is the thing I wrote about text handling.", "Here is the thing I wrote about text handling."},
		{"mid-text label untouched", "Intro. Transformed text: not a prefix.", "Intro. Transformed text: not a prefix."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clean(tt.input); got != tt.expected {
				t.Errorf("Clean(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestClean_QuoteWrapping(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"straight quotes", `"Wrapped output."`, "Wrapped output."},
		{"curly quotes", "“Wrapped output.”", "Wrapped output."},
		{"guillemets", "«Wrapped output.»", "Wrapped output."},
		{"mismatched pair kept", `"Half wrapped.'`, `"Half wrapped.'`},
		{"internal quotes kept", `She said "hi" to him.`, `She said "hi" to him.`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clean(tt.input); got != tt.expected {
				t.Errorf("Clean(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestClean_CombinedArtifacts(t *testing.T) {
	input := "<thinking>plan the rewrite</thinking>Here is the transformed text: \"Final copy.\""
	if got := Clean(input); got != "Final copy." {
		t.Errorf("Clean() = %q, want %q", got, "Final copy.")
	}
}
