package main

import (
	"strings"
	"unicode"
)

// Summarize produces a short summary: the first two sentences of the text
// (or the single one available), truncated to maxChars characters at a word
// boundary with a trailing ellipsis when over budget.
func Summarize(text string, maxChars int) string {
	sentences := splitSentences(text)

	var s string
	switch {
	case len(sentences) >= 2:
		s = sentences[0] + " " + sentences[1]
	case len(sentences) == 1:
		s = sentences[0]
	}
	s = strings.TrimSpace(s)

	runes := []rune(s)
	if len(runes) > maxChars {
		cut := string(runes[:maxChars])
		// Back up to the last whole word
		if idx := strings.LastIndex(cut, " "); idx >= 0 {
			cut = cut[:idx]
		}
		s = cut + "..."
	}

	return s
}

// splitSentences splits text at runs of whitespace that directly follow a
// '.', '!' or '?'. The punctuation stays attached to its sentence.
func splitSentences(text string) []string {
	runes := []rune(text)
	var sentences []string
	start := 0

	for i := 0; i < len(runes)-1; i++ {
		r := runes[i]
		if (r == '.' || r == '!' || r == '?') && unicode.IsSpace(runes[i+1]) {
			sentences = append(sentences, string(runes[start:i+1]))

			// Skip the whitespace run to the start of the next sentence
			j := i + 1
			for j < len(runes) && unicode.IsSpace(runes[j]) {
				j++
			}
			start = j
			i = j - 1
		}
	}

	if start < len(runes) {
		sentences = append(sentences, string(runes[start:]))
	}

	return sentences
}
