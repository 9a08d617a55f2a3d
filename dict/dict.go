package dict

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"
	"unicode/utf8"
)

var BOM = string([]byte{239, 187, 191}) // UTF-8 specific

// Sep separates entries in the dictionary file
const Sep = "\x00"

// Dictionary is a sorted, de-duplicated list of lowercase words.
// It is never modified once built; Merge returns a new one.
type Dictionary struct {
	words []string
}

// New builds a dictionary from words in any order and case.
// empty strings are dropped
func New(words ...string) *Dictionary {
	wd := make([]string, 0, len(words))
	for _, w := range words {
		if w == "" {
			continue
		}
		wd = append(wd, strings.ToLower(w))
	}
	// need the words in a sorted list for binary search later
	sort.Strings(wd)
	return &Dictionary{words: compact(wd)}
}

// compact removes adjacent duplicates from a sorted slice
func compact(wd []string) []string {
	if len(wd) < 2 {
		return wd
	}
	n := 1
	for i := 1; i < len(wd); i++ {
		if wd[i] != wd[n-1] {
			wd[n] = wd[i]
			n++
		}
	}
	return wd[:n]
}

// Contains reports whether word is in the dictionary. word must
// already be lower case.
func (d *Dictionary) Contains(word string) bool {
	ip := sort.SearchStrings(d.words, word)          // where it would insert
	return ip != len(d.words) && d.words[ip] == word // true if we found it
}

func (d *Dictionary) Len() int {
	return len(d.words)
}

// Words returns the sorted word list. callers must not modify it.
func (d *Dictionary) Words() []string {
	return d.words
}

// Merge returns a new dictionary holding the words of d plus words.
func (d *Dictionary) Merge(words ...string) *Dictionary {
	all := make([]string, 0, len(d.words)+len(words))
	all = append(all, d.words...)
	all = append(all, words...)
	return New(all...)
}

// ReadDict loads the dictionary word list, entries separated by
// a null byte. the whole file is read before it is split.
func ReadDict(infile string) (*Dictionary, error) {
	b, err := os.ReadFile(infile)
	if err != nil {
		return nil, fmt.Errorf("reading dictionary: %w", err)
	}
	if !utf8.Valid(b) {
		return nil, fmt.Errorf("reading dictionary: %s is not valid UTF-8", infile)
	}
	// remove BOM if present
	s := strings.TrimPrefix(string(b), BOM)
	return New(strings.Split(s, Sep)...), nil
}

// ReadWordList reads a project good word list, one word per line.
// a missing list is not an error.
func ReadWordList(infile string) ([]string, error) {
	wd := []string{}
	file, err := os.Open(infile) // try to open wordlist
	if os.IsNotExist(err) {
		return wd, nil // early exit if it isn't present
	}
	if err != nil {
		return nil, fmt.Errorf("reading word list: %w", err)
	}
	defer file.Close() // here if it opened
	scanner := bufio.NewScanner(file)
	first := true
	for scanner.Scan() {
		line := scanner.Text()
		if first {
			line = strings.TrimPrefix(line, BOM) // remove BOM if present
			first = false
		}
		if w := strings.TrimSpace(line); w != "" {
			wd = append(wd, w)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading word list: %w", err)
	}
	return wd, nil
}
