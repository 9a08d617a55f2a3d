package fileio

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"
)

var BOM = string([]byte{239, 187, 191}) // UTF-8 Byte Order Mark

// ReadError is returned by ReadText when the input file cannot be
// opened, read or decoded.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	if e == nil {
		return ""
	}
	return e.Err.Error()
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// ReadText returns the whole input file as one string.
// The file is closed before ReadText returns.
func ReadText(infile string) (string, error) {
	b, err := os.ReadFile(infile)
	if err != nil {
		return "", &ReadError{Path: infile, Err: err}
	}
	if !utf8.Valid(b) {
		return "", &ReadError{Path: infile, Err: fmt.Errorf("%s: not valid UTF-8 text", infile)}
	}
	// successfully read. remove BOM if present
	return strings.TrimPrefix(string(b), BOM), nil
}

// SaveText saves report lines to outfile.
// unless noBOM, the report starts with a Byte Order Mark.
// lines end in CRLF unless useLF.
func SaveText(a []string, outfile string, noBOM bool, useLF bool) error {
	f2, err := os.Create(outfile)
	if err != nil {
		return fmt.Errorf("saving report: %w", err)
	}
	w := bufio.NewWriter(f2)
	if !noBOM && len(a) > 0 { // normally provide a Byte Order Mark
		w.WriteString(BOM)
	}
	for _, line := range a {
		if useLF {
			fmt.Fprintf(w, "%s\n", line)
		} else {
			s := strings.Replace(line, "\n", "\r\n", -1)
			fmt.Fprintf(w, "%s\r\n", s)
		}
	}
	if err := w.Flush(); err != nil {
		f2.Close()
		return fmt.Errorf("saving report: %w", err)
	}
	if err := f2.Close(); err != nil {
		return fmt.Errorf("saving report: %w", err)
	}
	return nil
}
