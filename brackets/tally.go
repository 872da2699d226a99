package brackets

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
)

// A Tally accumulates outcomes across many lines. The zero value is ready
// to use.
type Tally struct {
	Lines      int
	Valid      int
	Corrupt    int
	Incomplete int

	corruption uint64
	missing    []uint64
}

// Add records o. If o is InvalidCharacter, Add leaves t unchanged and
// returns the outcome's *InvalidCharError.
func (t *Tally) Add(o Outcome) error {
	if err := o.Err(); err != nil {
		return err
	}
	t.Lines++
	switch o.Status {
	case Valid:
		t.Valid++
	case Corrupt:
		t.Corrupt++
		t.corruption += o.Score()
	case Incomplete:
		t.Incomplete++
		t.missing = append(t.missing, o.Score())
	}
	return nil
}

// CorruptionScore is the total score of all corrupt lines.
func (t *Tally) CorruptionScore() uint64 {
	return t.corruption
}

// MedianIncomplete returns the middle score of the incomplete lines: the
// element at index n/2 once the n scores are sorted. It reports false if
// no incomplete lines were recorded.
func (t *Tally) MedianIncomplete() (uint64, bool) {
	if len(t.missing) == 0 {
		return 0, false
	}
	scores := make([]uint64, len(t.missing))
	copy(scores, t.missing)
	sort.Slice(scores, func(i, j int) bool { return scores[i] < scores[j] })
	return scores[len(scores)/2], true
}

// LineError is an invalid line encountered by ScoreLines.
type LineError struct {
	Line int // 1-based
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }

// ScoreLines validates each line read from r. Lines may be any length and
// may end in "\n" or "\r\n". It stops at the first line
// containing an invalid character and returns a *LineError wrapping its
// *InvalidCharError.
func ScoreLines(r io.Reader) (*Tally, error) {
	var t Tally
	br := bufio.NewReader(r)
	for n := 1; ; n++ {
		line, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, fmt.Errorf("error reading brackets: %w", err)
		}
		if line == "" && err == io.EOF {
			return &t, nil
		}
		line = strings.TrimSuffix(line, "\n")
		line = strings.TrimSuffix(line, "\r")
		if err := t.Add(Validate(line)); err != nil {
			return nil, &LineError{Line: n, Err: err}
		}
		if err == io.EOF {
			return &t, nil
		}
	}
}

// IsInvalid reports whether err is (or wraps) an *InvalidCharError.
func IsInvalid(err error) bool {
	var ice *InvalidCharError
	return errors.As(err, &ice)
}
