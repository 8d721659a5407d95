package models

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// StatusSummary holds the counts shown in the status bar.
type StatusSummary struct {
	Words      int
	Characters int
}

// Summarize counts whitespace-separated words and runes. A single trailing
// newline is not counted as a character.
func Summarize(text string) StatusSummary {
	chars := utf8.RuneCountInString(text)
	if strings.HasSuffix(text, "\n") {
		chars--
	}
	return StatusSummary{
		Words:      len(strings.Fields(text)),
		Characters: chars,
	}
}

func (s StatusSummary) String() string {
	return fmt.Sprintf("Words: %d  Characters: %d", s.Words, s.Characters)
}
