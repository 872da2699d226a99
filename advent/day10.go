package main

import (
	"flag"
	"fmt"
	"io"
	"math/big"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/dustin/go-humanize"

	"github.com/reillysiemens/advent/brackets"
)

func init() {
	register("2021-10", day10)
}

func day10(args []string) error {
	fs := flag.NewFlagSet("2021-10", flag.ExitOnError)
	interactive := fs.Bool("i", false, "Validate lines typed at a prompt")
	verbose := fs.Bool("v", cfg.verbose, "Print a summary of line outcomes to stderr")
	fs.Parse(args)

	if *interactive {
		return bracketsPrompt()
	}
	r, err := openInput("2021-10", fs.Args())
	if err != nil {
		return err
	}
	defer r.Close()

	var summary io.Writer
	if *verbose {
		summary = os.Stderr
	}
	return scoreBrackets(r, os.Stdout, summary)
}

// scoreBrackets prints both answers for the input in r to w. If summary is
// non-nil, per-status line counts are written there too.
func scoreBrackets(r io.Reader, w, summary io.Writer) error {
	tally, err := brackets.ScoreLines(r)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Part 1: %d\n", tally.CorruptionScore())
	if median, ok := tally.MedianIncomplete(); ok {
		fmt.Fprintf(w, "Part 2: %d\n", median)
	} else {
		fmt.Fprintln(w, "Part 2: N/A")
	}
	if summary != nil {
		fmt.Fprintln(summary, summarize(tally))
	}
	return nil
}

func summarize(t *brackets.Tally) string {
	return fmt.Sprintf(
		"checked %s lines: %s corrupt, %s incomplete, %s valid",
		humanize.Comma(int64(t.Lines)),
		humanize.Comma(int64(t.Corrupt)),
		humanize.Comma(int64(t.Incomplete)),
		humanize.Comma(int64(t.Valid)),
	)
}

func describe(o brackets.Outcome) string {
	switch o.Status {
	case brackets.Corrupt, brackets.Incomplete:
		return fmt.Sprintf("%s (score %s)", o, humanize.BigComma(new(big.Int).SetUint64(o.Score())))
	}
	return o.String()
}

func bracketsPrompt() error {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "brackets> ",
		HistoryFile:     filepath.Join(os.TempDir(), "advent-brackets-history"),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return err
	}
	defer l.Close()

	var tally brackets.Tally
	for {
		line, err := l.Readline()
		switch err {
		case nil:
		case readline.ErrInterrupt:
			continue
		case io.EOF:
			fmt.Fprintln(l.Stdout(), summarize(&tally))
			return nil
		default:
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		o := brackets.Validate(line)
		fmt.Fprintln(l.Stdout(), describe(o))
		// Invalid lines are reported but not tallied.
		if o.Err() == nil {
			tally.Add(o)
		}
	}
}
