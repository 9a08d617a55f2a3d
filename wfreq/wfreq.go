package wfreq

import (
	"fmt"
	"sort"

	"github.com/asylumcs/fadw/scan"
)

/*  input: the text, split into words the same way the spellcheck does
    output: a map of words and frequency of occurence of each word
*/

func GetWordList(text string, opt scan.Options) map[string]int {
	m := make(map[string]int) // map to hold words, counts
	scan.Words(text, opt, func(word string) {
		m[word]++
	})
	return m
}

type WordCount struct {
	Word  string
	Count int
}

// Ranked returns the counts for words, most frequent first.
// ties are in word order.
func Ranked(m map[string]int, words []string) []WordCount {
	wc := make([]WordCount, 0, len(words))
	for _, w := range words {
		wc = append(wc, WordCount{Word: w, Count: m[w]})
	}
	sort.Slice(wc, func(i, j int) bool {
		if wc[i].Count != wc[j].Count {
			return wc[i].Count > wc[j].Count
		}
		return wc[i].Word < wc[j].Word
	})
	return wc
}

// Report formats the ranked counts as report lines
func Report(wc []WordCount) []string {
	rs := []string{"", "Non-english word frequency"}
	if len(wc) == 0 {
		return append(rs, "  none")
	}
	for _, c := range wc {
		rs = append(rs, fmt.Sprintf("  %6d: %s", c.Count, c.Word))
	}
	return rs
}
