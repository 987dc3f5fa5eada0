package gcode

import (
	"io"
	"strings"
)

// Program is an ordered sequence of program lines. Lines carry no
// terminators; FinalNewline records whether the source text ended
// with one, so output can reproduce it exactly.
//
// Normalized is set by the Normalizer. The Annotator reads axis flags
// from lines as given, so feeding it a raw program silently changes
// the flags it emits; the tag lets it detect (and warn about) that.
type Program struct {
	Lines        []string
	FinalNewline bool
	Normalized   bool
}

// ReadProgram reads an entire program from r. It never fails on
// content, only on I/O.
func ReadProgram(r io.Reader) (Program, error) {
	var sb strings.Builder
	if _, err := io.Copy(&sb, r); err != nil {
		return Program{}, err
	}
	return ParseProgram(sb.String()), nil
}

// ParseProgram splits program text into lines.
func ParseProgram(text string) Program {
	if text == "" {
		return Program{}
	}
	var p Program
	if strings.HasSuffix(text, "\n") {
		p.FinalNewline = true
		text = strings.TrimSuffix(text, "\n")
	}
	p.Lines = strings.Split(text, "\n")
	return p
}

func (p Program) String() string {
	s := strings.Join(p.Lines, "\n")
	if p.FinalNewline && len(p.Lines) > 0 {
		s += "\n"
	}
	return s
}

// WriteTo writes the program text to w in a single call.
func (p Program) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, p.String())
	return int64(n), err
}
