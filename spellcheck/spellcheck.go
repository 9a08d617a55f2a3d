package spellcheck

import (
	"fmt"

	"github.com/asylumcs/fadw/dict"
	"github.com/asylumcs/fadw/models"
	"github.com/asylumcs/fadw/scan"
)

// Check scans text and tallies its words against wd.
// emit, if not nil, is called with each non-dictionary word
// the first time it appears.
func Check(wd *dict.Dictionary, text string, opt scan.Options, emit func(word string)) models.Tally {
	t := models.NewTally()
	pending := scan.Words(text, opt, func(word string) {
		t = Add(t, wd, word, emit)
	})
	t.Pending = pending
	return t
}

// Add folds one word into the tally
func Add(t models.Tally, wd *dict.Dictionary, word string, emit func(word string)) models.Tally {
	t.Total++
	if _, ok := t.Seen[word]; ok {
		return t
	}
	t.Unique++
	t.Seen[word] = struct{}{}
	if !wd.Contains(word) {
		t.NonDict++
		t.Findings = append(t.Findings, word)
		if emit != nil {
			emit(word)
		}
	}
	return t
}

// Summary returns the report lines that follow the findings
func Summary(t models.Tally) []string {
	return []string{
		"",
		fmt.Sprintf("Total words: %d", t.Total),
		fmt.Sprintf("Unique words: %d", t.Unique),
		fmt.Sprintf("Number of non-english words: %d", t.NonDict),
	}
}
