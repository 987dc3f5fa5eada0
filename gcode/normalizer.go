package gcode

import (
	"log"
	"strings"
)

// NormalizeStats reports what a normalization pass did.
type NormalizeStats struct {
	Lines               int
	MnemonicsNormalized int
	CoordinatesRemoved  int
	MnemonicsInserted   int
}

// LineChanges reports what NormalizeLine did to a single line.
type LineChanges struct {
	Canonicalized bool
	Removed       int
	Inserted      bool
}

// Normalizer canonicalizes motion mnemonics, strips positionally
// redundant coordinates, and makes modal motion commands explicit.
// Running it on its own output is a fixed point.
type Normalizer struct {
	// Start is the modal state at the first line. The zero value is the
	// power-on default.
	Start State
}

// NormalizeLine applies one normalization step: (state, line) ->
// (state, line, changes). Comment and blank lines pass through
// untouched and never affect state.
func NormalizeLine(s State, raw string) (State, string, LineChanges) {
	var ch LineChanges

	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || strings.HasPrefix(trimmed, "(") || strings.HasPrefix(trimmed, ";") {
		return s, raw, ch
	}

	line := compactTokens(trimmed)
	line, ch.Canonicalized = CanonicalizeMnemonics(line)

	// Modal update first: a tool change on this line must reset
	// position tracking before redundancy is judged.
	s = s.Update(line)

	axes := ExtractAxes(line)
	if len(axes) == 0 {
		return s, line, ch
	}

	surviving := 0
	for _, w := range axes {
		if s.Pos.Redundant(w.W, w.Arg) {
			line = removeAxisWord(line, w.W)
			ch.Removed++
		} else {
			surviving++
		}
	}

	// Make the modal motion explicit when the line moves an axis but
	// carries no G word of its own.
	if surviving > 0 && s.Motion != MotionUnset && !rxGWord.MatchString(line) {
		line = insertMnemonic(line, s.Motion.Mnemonic())
		ch.Inserted = true
	}

	// The machine still moves to a removed coordinate; track every axis
	// value from the original line.
	for _, w := range axes {
		s.Pos.Set(w.W, w.Arg)
	}

	return s, line, ch
}

// Run normalizes a whole program. The returned program is tagged
// Normalized for the Annotator.
func (n Normalizer) Run(p Program) (Program, NormalizeStats) {
	out := Program{
		Lines:        make([]string, 0, len(p.Lines)),
		FinalNewline: p.FinalNewline,
		Normalized:   true,
	}

	s := n.Start
	var st NormalizeStats
	for _, raw := range p.Lines {
		var line string
		var ch LineChanges
		s, line, ch = NormalizeLine(s, raw)
		out.Lines = append(out.Lines, line)

		st.Lines++
		if ch.Canonicalized {
			st.MnemonicsNormalized++
		}
		st.CoordinatesRemoved += ch.Removed
		if ch.Inserted {
			st.MnemonicsInserted++
		}
		if st.Lines%1000 == 0 {
			log.Printf("normalize: processed %d lines", st.Lines)
		}
	}

	return out, st
}

func insertMnemonic(line, mnemonic string) string {
	if n := rxLineNum.FindString(line); n != "" {
		return n + mnemonic + line[len(n):]
	}
	return mnemonic + line
}
