package leven

import (
	"fmt"
	"unicode/utf8"

	"github.com/asylumcs/fadw/dict"
)

// MinLength is the shortest suspect word, in runes, that gets suggestions
const MinLength = 5

func Levenshtein(str1, str2 []rune) int {
	s1len := len(str1)
	s2len := len(str2)
	column := make([]int, len(str1)+1)

	for y := 1; y <= s1len; y++ {
		column[y] = y
	}
	for x := 1; x <= s2len; x++ {
		column[0] = x
		lastkey := x - 1
		for y := 1; y <= s1len; y++ {
			oldkey := column[y]
			var incr int
			if str1[y-1] != str2[x-1] {
				incr = 1
			}

			column[y] = minimum(column[y]+1, column[y-1]+1, lastkey+incr)
			lastkey = oldkey
		}
	}
	return column[s1len]
}

func minimum(a, b, c int) int {
	if a < b {
		if a < c {
			return a
		}
	} else {
		if b < c {
			return b
		}
	}
	return c
}

// Near returns the dictionary words one edit away from suspect.
// words that differ only by a trailing "s" are not reported.
func Near(wd *dict.Dictionary, suspect string) []string {
	var near []string
	rsuspect := []rune(suspect)
	if len(rsuspect) < MinLength {
		return near
	}
	for _, okword := range wd.Words() {
		n := utf8.RuneCountInString(okword)
		if n < len(rsuspect)-1 || n > len(rsuspect)+1 {
			continue // cannot be within one edit
		}
		// differ only by apparent plural
		if suspect == okword+"s" || suspect+"s" == okword {
			continue
		}
		if Levenshtein(rsuspect, []rune(okword)) < 2 {
			near = append(near, okword)
		}
	}
	return near
}

// Levencheck reports, for each suspect word at least MinLength runes
// long, the dictionary words that are "near" it.
func Levencheck(wd *dict.Dictionary, suspects []string) []string {
	rs := []string{"", "Suggestions (edit distance 1)"}
	nreports := 0
	for _, suspect := range suspects {
		for _, okword := range Near(wd, suspect) {
			rs = append(rs, fmt.Sprintf("  %s: %s", suspect, okword))
			nreports++
		}
	}
	if nreports == 0 {
		rs = append(rs, "  none")
	}
	return rs
}
