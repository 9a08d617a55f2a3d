/*
filename:  fadw.go
license:   GPL
status:    development
*/

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/asylumcs/fadw/dict"
	"github.com/asylumcs/fadw/fileio"
	"github.com/asylumcs/fadw/leven"
	"github.com/asylumcs/fadw/models"
	"github.com/asylumcs/fadw/scan"
	"github.com/asylumcs/fadw/spellcheck"
	"github.com/asylumcs/fadw/wfreq"
)

const VERSION string = "2026.10.18"

const usage = "Usage: fadw [filename]"

var errUsage = errors.New("exactly one input file is required")

// doparams parses the command line. it never touches the filesystem.
func doparams(args []string) (models.Params, error) {
	p := models.Params{}
	fs := flag.NewFlagSet("fadw", flag.ContinueOnError)
	fs.SetOutput(io.Discard) // usage goes to stdout, printed by the caller
	fs.StringVar(&p.Dictfile, "d", "sorted.bin", "dictionary file, words separated by null bytes")
	fs.StringVar(&p.GWFilename, "g", "", "good words file")
	fs.StringVar(&p.Outfile, "o", "", "also save report to file")
	fs.BoolVar(&p.Unicode, "u", false, "treat all Unicode letters as word characters")
	fs.BoolVar(&p.Trailing, "t", false, "count a word at end of file with no delimiter after it")
	fs.BoolVar(&p.Freq, "f", false, "report frequency of non-english words")
	fs.BoolVar(&p.Suggest, "s", false, "suggest dictionary words one edit away")
	fs.BoolVar(&p.NoBOM, "noBOM", false, "no BOM on report file")
	fs.BoolVar(&p.UseLF, "useLF", false, "LF line endings on report file")
	fs.BoolVar(&p.Verbose, "v", false, "Verbose: run log on stderr")
	if err := fs.Parse(args); err != nil {
		return p, err
	}
	if fs.NArg() != 1 {
		return p, errUsage
	}
	p.Infile = fs.Arg(0)
	return p, nil
}

// loadDict builds the working dictionary: the word list plus
// any words from the optional good words file
func loadDict(p models.Params, vlog *log.Logger) (*dict.Dictionary, error) {
	wd, err := dict.ReadDict(p.Dictfile)
	if err != nil {
		return nil, err
	}
	vlog.Printf("using wordlist: %s (%d words)", p.Dictfile, wd.Len())

	if len(p.GWFilename) == 0 {
		return wd, nil
	}
	if _, err := os.Stat(p.GWFilename); os.IsNotExist(err) {
		vlog.Printf("no %s found", p.GWFilename)
		return wd, nil
	}
	gwl, err := dict.ReadWordList(p.GWFilename)
	if err != nil {
		return nil, err
	}
	vlog.Printf("good word count: %d words", len(gwl))
	return wd.Merge(gwl...), nil
}

// run checks the input file against wd, writing findings to stdout
// as they are found. it returns the process exit code.
func run(p models.Params, wd *dict.Dictionary, stdout io.Writer, vlog *log.Logger) int {
	start := time.Now()

	text, err := fileio.ReadText(p.Infile)
	if err != nil {
		fmt.Fprintf(stdout, "Error: %v\n", err)
		return 1
	}

	opt := scan.Options{Unicode: p.Unicode, FlushTrailing: p.Trailing}
	var rpt []string // full report for -o
	t := spellcheck.Check(wd, text, opt, func(word string) {
		fmt.Fprintln(stdout, word)
		rpt = append(rpt, word)
	})
	if t.Pending != "" {
		vlog.Printf("trailing word %q at end of file not counted", t.Pending)
	}

	rs := spellcheck.Summary(t)
	if p.Freq {
		rs = append(rs, wfreq.Report(wfreq.Ranked(wfreq.GetWordList(text, opt), t.Findings))...)
	}
	if p.Suggest {
		rs = append(rs, leven.Levencheck(wd, t.Findings)...)
	}
	for _, line := range rs {
		fmt.Fprintln(stdout, line)
	}
	rpt = append(rpt, rs...)

	if p.Outfile != "" {
		if err := fileio.SaveText(rpt, p.Outfile, p.NoBOM, p.UseLF); err != nil {
			log.Print(err)
			return 1
		}
		vlog.Printf("report saved to %s", p.Outfile)
	}
	vlog.Printf("execution time: %.2f seconds", time.Since(start).Seconds())
	return 0
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("fadw: ")

	p, err := doparams(os.Args[1:])
	if err != nil {
		fmt.Println(usage)
		os.Exit(1)
	}

	vlog := log.New(io.Discard, "fadw: ", 0)
	if p.Verbose {
		vlog.SetOutput(os.Stderr)
		vlog.Printf("fadw version: %s", VERSION)
	}

	// dictionary must load before any input is read
	wd, err := loadDict(p, vlog)
	if err != nil {
		log.Fatal(err)
	}

	os.Exit(run(p, wd, os.Stdout, vlog))
}
