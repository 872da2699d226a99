package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/reillysiemens/advent/brackets"
)

const day10Sample = `[({(<(())[]>[[{[]{<()<>>
[(()[<>])]({[<{<<[]>>(
{([(<{}[<>[]}>{[]{[(<()>
(((({<>}<{<{<>}{[]{[]{}
[[<[([]))<([[{}[[()]]]
[{[{({}]{}}([{[{{{}}([]
{<[[]]>}<{[{[{[]{()[[[]
[<(<(<(<{}))><([]([]()
<{([([[(<>()){}]>(<<{{
<{([{{}}[<[[[<>{}]]]>[]]
`

func TestScoreBrackets(t *testing.T) {
	for _, tt := range []struct {
		name  string
		input string
		want  string
	}{
		{"sample", day10Sample, "Part 1: 26397\nPart 2: 288957\n"},
		{"no incomplete", "()\n[<>]\n{([)}\n", "Part 1: 3\nPart 2: N/A\n"},
		{"empty", "", "Part 1: 0\nPart 2: N/A\n"},
	} {
		var out bytes.Buffer
		if err := scoreBrackets(strings.NewReader(tt.input), &out, nil); err != nil {
			t.Errorf("%s: %s", tt.name, err)
			continue
		}
		if got := out.String(); got != tt.want {
			t.Errorf("%s: got %q; want %q", tt.name, got, tt.want)
		}
	}
}

func TestScoreBracketsSummary(t *testing.T) {
	var out, summary bytes.Buffer
	input := strings.Repeat(day10Sample, 150)
	if err := scoreBrackets(strings.NewReader(input), &out, &summary); err != nil {
		t.Fatal(err)
	}
	want := "checked 1,500 lines: 750 corrupt, 750 incomplete, 0 valid\n"
	if got := summary.String(); got != want {
		t.Errorf("got summary %q; want %q", got, want)
	}
}

func TestScoreBracketsInvalid(t *testing.T) {
	var out bytes.Buffer
	err := scoreBrackets(strings.NewReader("()\n(a)\n"), &out, nil)
	if !brackets.IsInvalid(err) {
		t.Fatalf("got err %v; want invalid character error", err)
	}
	if out.Len() > 0 {
		t.Errorf("got output %q after invalid input", out.String())
	}
}

func TestDay10File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "10.txt")
	if err := os.WriteFile(path, []byte(day10Sample), 0o644); err != nil {
		t.Fatal(err)
	}
	r, err := openInput("2021-10", []string{path})
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	var out bytes.Buffer
	if err := scoreBrackets(r, &out, nil); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out.String(), "Part 1: 26397\n") {
		t.Errorf("got %q", out.String())
	}
	if _, err := openInput("2021-10", []string{"a", "b"}); err == nil {
		t.Error("two input args: got nil error")
	}
}

func TestDescribe(t *testing.T) {
	for _, tt := range []struct {
		line string
		want string
	}{
		{"[<>({}){}[([])<>]]", "valid"},
		{"<{([([[(<>()){}]>(<<{{", "corrupt: expected ], but found > instead (score 25,137)"},
		{"<{([", "incomplete: complete with ])}> (score 294)"},
		{"{a}", `invalid character 'a' at offset 1`},
		{
			strings.Repeat("<", 30),
			"incomplete: complete with " + strings.Repeat(">", 30) + " (score 18,446,744,073,709,551,615)",
		},
	} {
		if got := describe(brackets.Validate(tt.line)); got != tt.want {
			t.Errorf("describe(%q): got %q; want %q", tt.line, got, tt.want)
		}
	}
}
