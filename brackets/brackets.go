// Package brackets validates and scores lines of nested brackets, as in the
// "syntax scoring" puzzle (Advent of Code 2021, day 10).
//
// A line is built from the four bracket pairs ( ) [ ] { } < >. Validate
// classifies it as valid, corrupt (a close bracket that doesn't match the
// most recent open), incomplete (open brackets left over at the end), or
// invalid (anything else).
package brackets

import (
	"fmt"
	"math"
	"strings"
)

// Kind is one of the four bracket families.
type Kind uint8

const (
	Parens Kind = iota
	Square
	Curly
	Angle
)

var kindInfo = [...]struct {
	name         string
	open, close  rune
	corruptScore uint64
	missingScore uint64
}{
	Parens: {"parens", '(', ')', 3, 1},
	Square: {"square", '[', ']', 57, 2},
	Curly:  {"curly", '{', '}', 1197, 3},
	Angle:  {"angle", '<', '>', 25137, 4},
}

func (k Kind) String() string {
	if int(k) >= len(kindInfo) {
		return fmt.Sprintf("Kind(%d)", k)
	}
	return kindInfo[k].name
}

// Open returns the opening character of k.
func (k Kind) Open() rune { return kindInfo[k].open }

// Close returns the closing character of k.
func (k Kind) Close() rune { return kindInfo[k].close }

// CorruptionWeight is the score of a corrupt line whose first illegal
// character is a close bracket of kind k.
func (k Kind) CorruptionWeight() uint64 { return kindInfo[k].corruptScore }

// IncompleteWeight is the per-position weight of k in an incomplete line's
// completion.
func (k Kind) IncompleteWeight() uint64 { return kindInfo[k].missingScore }

// A Bracket is a single open or close bracket character.
type Bracket struct {
	Kind Kind
	Open bool
}

// ParseBracket maps r to its Bracket. It reports false if r is not one of
// the eight bracket characters.
func ParseBracket(r rune) (Bracket, bool) {
	for k, info := range kindInfo {
		switch r {
		case info.open:
			return Bracket{Kind: Kind(k), Open: true}, true
		case info.close:
			return Bracket{Kind: Kind(k)}, true
		}
	}
	return Bracket{}, false
}

// Pair returns the bracket that pairs with b.
func (b Bracket) Pair() Bracket {
	return Bracket{Kind: b.Kind, Open: !b.Open}
}

// Rune returns the character for b.
func (b Bracket) Rune() rune {
	if b.Open {
		return b.Kind.Open()
	}
	return b.Kind.Close()
}

func (b Bracket) String() string { return string(b.Rune()) }

// Status classifies a validated line.
type Status uint8

const (
	Valid Status = iota
	Corrupt
	Incomplete
	InvalidCharacter
)

func (s Status) String() string {
	switch s {
	case Valid:
		return "valid"
	case Corrupt:
		return "corrupt"
	case Incomplete:
		return "incomplete"
	case InvalidCharacter:
		return "invalid character"
	}
	return fmt.Sprintf("Status(%d)", s)
}

// An Outcome is the result of validating one line. Which fields are
// meaningful depends on Status.
type Outcome struct {
	Status Status

	// Corrupt: the kind that should have closed, and the kind that did.
	Expected Kind
	Found    Kind

	// Incomplete: the kinds still waiting to close, innermost first.
	Missing []Kind

	// InvalidCharacter: the offending character.
	Char rune

	// Pos is the byte offset at which the outcome was decided. For
	// Incomplete it is the length of the line; for Valid it is unset.
	Pos int
}

// Validate checks line in a single pass, stopping at the first corrupt or
// invalid character.
//
// A close bracket with nothing open is reported as InvalidCharacter, not
// Corrupt: there is no expected kind to compare it against.
func Validate(line string) Outcome {
	var stack []Kind
	for i, r := range line {
		b, ok := ParseBracket(r)
		if !ok {
			return Outcome{Status: InvalidCharacter, Char: r, Pos: i}
		}
		if b.Open {
			stack = append(stack, b.Kind)
			continue
		}
		if len(stack) == 0 {
			return Outcome{Status: InvalidCharacter, Char: r, Pos: i}
		}
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top != b.Kind {
			return Outcome{Status: Corrupt, Expected: top, Found: b.Kind, Pos: i}
		}
	}
	if len(stack) == 0 {
		return Outcome{Status: Valid}
	}
	missing := make([]Kind, len(stack))
	for i, k := range stack {
		missing[len(stack)-1-i] = k
	}
	return Outcome{Status: Incomplete, Missing: missing, Pos: len(line)}
}

// Score returns the puzzle score of o. Valid and invalid lines score 0.
//
// An incomplete line's score grows by a factor of 5 per missing bracket, so
// it exceeds a uint64 once about 28 brackets are left open. Such a score
// saturates at math.MaxUint64.
func (o Outcome) Score() uint64 {
	switch o.Status {
	case Corrupt:
		return o.Found.CorruptionWeight()
	case Incomplete:
		var score uint64
		for _, k := range o.Missing {
			w := k.IncompleteWeight()
			if score > (math.MaxUint64-w)/5 {
				return math.MaxUint64
			}
			score = score*5 + w
		}
		return score
	}
	return 0
}

// Completion returns the characters that would complete an incomplete
// line. It is empty for every other status.
func (o Outcome) Completion() string {
	if o.Status != Incomplete {
		return ""
	}
	var b strings.Builder
	for _, k := range o.Missing {
		b.WriteRune(k.Close())
	}
	return b.String()
}

// Err returns an *InvalidCharError if o is InvalidCharacter and nil
// otherwise. Corrupt and incomplete lines are not errors.
func (o Outcome) Err() error {
	if o.Status != InvalidCharacter {
		return nil
	}
	return &InvalidCharError{Char: o.Char, Pos: o.Pos}
}

func (o Outcome) String() string {
	switch o.Status {
	case Corrupt:
		return fmt.Sprintf("corrupt: expected %c, but found %c instead", o.Expected.Close(), o.Found.Close())
	case Incomplete:
		return fmt.Sprintf("incomplete: complete with %s", o.Completion())
	case InvalidCharacter:
		return fmt.Sprintf("invalid character %q at offset %d", o.Char, o.Pos)
	}
	return o.Status.String()
}

// InvalidCharError reports a character that cannot be validated: either
// not a bracket at all, or a close bracket with nothing open.
type InvalidCharError struct {
	Char rune
	Pos  int
}

func (e *InvalidCharError) Error() string {
	return fmt.Sprintf("brackets: invalid character %q at offset %d", e.Char, e.Pos)
}
