package scan

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// State of the tokenizer between runes
type State int

const (
	Boundary State = iota // not in a word
	InWord                // buffering letters
)

func (s State) String() string {
	if s == InWord {
		return "IN_WORD"
	}
	return "BOUNDARY"
}

type Options struct {
	// Unicode classifies letters with unicode.IsLetter.
	// default is ASCII A-Z and a-z only.
	Unicode bool

	// FlushTrailing counts a word that runs to the end of the text
	// without a boundary after it. By default it is dropped.
	FlushTrailing bool
}

func isASCIILetter(r rune) bool {
	return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
}

func asciiLower(r rune) rune {
	if 'A' <= r && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}

// IsLetter reports whether r is part of a word under opt
func (opt Options) IsLetter(r rune) bool {
	if opt.Unicode {
		return unicode.IsLetter(r)
	}
	return isASCIILetter(r)
}

func (opt Options) lower(r rune) rune {
	if opt.Unicode {
		return unicode.ToLower(r)
	}
	return asciiLower(r)
}

// Words walks text one rune at a time and calls fn with each
// lower-cased word as the boundary after it is reached.
// A word still being buffered when the text ends is returned
// as pending, unless opt.FlushTrailing is set in which case it
// goes to fn like any other.
func Words(text string, opt Options, fn func(word string)) (pending string) {
	var sb strings.Builder
	state := Boundary
	for len(text) > 0 {
		r, size := utf8.DecodeRuneInString(text) // invalid bytes come back as RuneError
		text = text[size:]
		if opt.IsLetter(r) {
			sb.WriteRune(opt.lower(r))
			state = InWord
			continue
		}
		if state == InWord {
			fn(sb.String())
			sb.Reset()
			state = Boundary
		}
	}
	if state == InWord {
		if opt.FlushTrailing {
			fn(sb.String())
			return ""
		}
		return sb.String()
	}
	return ""
}

// Split returns the words Words would report, in order.
func Split(text string, opt Options) []string {
	var ws []string
	Words(text, opt, func(w string) {
		ws = append(ws, w)
	})
	return ws
}
