package models

type Params struct {
	Infile     string
	Dictfile   string
	GWFilename string
	Outfile    string
	Unicode    bool
	Trailing   bool
	Freq       bool
	Suggest    bool
	NoBOM      bool
	UseLF      bool
	Verbose    bool
}

// Tally is the running state of one scan of the input.
// It is built fresh for every file and returned when the scan ends.
type Tally struct {
	// Seen has every distinct word in the text so far
	Seen map[string]struct{}

	Total   int // word occurrences
	Unique  int // distinct words
	NonDict int // distinct words not in the dictionary

	// Findings holds the non-dictionary words, first occurrence first
	Findings []string

	// Pending is an unterminated word at end of input that was not counted
	Pending string
}

func NewTally() Tally {
	return Tally{Seen: make(map[string]struct{})}
}
