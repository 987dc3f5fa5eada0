package gcode

import (
	"regexp"
	"strconv"
	"strings"
)

// Line scanning for word-address programs. Matching follows the
// digit-boundary rule: a mnemonic like G1 only matches when the next
// character is not another digit, so G1 never matches inside G10 or G17.
// Go regexp has no lookahead, so patterns consume a boundary group instead.

type LineClass int

const (
	LineOpaque LineClass = iota
	LineBlank
	LineComment
	LineMotion
)

// Line is the per-line classification shared by both passes.
type Line struct {
	Raw    string
	Class  LineClass
	Number string // leading N-token, "" if none
	Motion Motion // explicit motion mnemonic on the line
	Axes   []Word // axis words, first occurrence per axis
	HasG   bool   // any G word present
}

var (
	rxAxisWord   = regexp.MustCompile(`(?i)([XYZ])([+-]?[0-9]*\.?[0-9]+)`)
	rxLineNum    = regexp.MustCompile(`^N[0-9]+`)
	rxGWord      = regexp.MustCompile(`G[0-9]`)
	rxToolChange = regexp.MustCompile(`T[0-9]+M0*6([^0-9]|$)`)
)

var axisRemove = map[byte]*regexp.Regexp{
	'X': regexp.MustCompile(`(?i)X[+-]?[0-9]*\.?[0-9]+`),
	'Y': regexp.MustCompile(`(?i)Y[+-]?[0-9]*\.?[0-9]+`),
	'Z': regexp.MustCompile(`(?i)Z[+-]?[0-9]*\.?[0-9]+`),
}

var canonRules = []struct {
	rx   *regexp.Regexp
	repl string
}{
	{regexp.MustCompile(`G0([^0-9]|$)`), "G00${1}"},
	{regexp.MustCompile(`G1([^0-9]|$)`), "G01${1}"},
	{regexp.MustCompile(`G2([^0-9]|$)`), "G02${1}"},
	{regexp.MustCompile(`G3([^0-9]|$)`), "G03${1}"},
}

var motionRules = []struct {
	m  Motion
	rx *regexp.Regexp
}{
	{MotionRapid, regexp.MustCompile(`G0+([^0-9]|$)`)},
	{MotionLinear, regexp.MustCompile(`G0*1([^0-9]|$)`)},
	{MotionArcCW, regexp.MustCompile(`G0*2([^0-9]|$)`)},
	{MotionArcCCW, regexp.MustCompile(`G0*3([^0-9]|$)`)},
}

// ScanLine classifies a single line of program text.
func ScanLine(raw string) Line {
	ln := Line{Raw: raw, Class: LineOpaque}

	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		ln.Class = LineBlank
		return ln
	}
	if strings.HasPrefix(trimmed, "(") || strings.HasPrefix(trimmed, ";") {
		ln.Class = LineComment
		return ln
	}

	ln.Number = rxLineNum.FindString(trimmed)
	ln.HasG = rxGWord.MatchString(trimmed)
	ln.Motion = matchMotion(trimmed)
	ln.Axes = ExtractAxes(trimmed)
	if ln.Motion != MotionUnset || len(ln.Axes) > 0 {
		ln.Class = LineMotion
	}
	return ln
}

// CanonicalizeMnemonics rewrites short-form motion mnemonics to their
// two-digit form (G0 -> G00 .. G3 -> G03). The rewrite is lexical and
// leaves every other token alone.
func CanonicalizeMnemonics(s string) (string, bool) {
	out := s
	for _, r := range canonRules {
		out = r.rx.ReplaceAllString(out, r.repl)
	}
	return out, out != s
}

// ExtractAxes returns the X/Y/Z words present on a line, first
// occurrence per axis, in order of appearance.
func ExtractAxes(s string) []Word {
	matches := rxAxisWord.FindAllStringSubmatch(s, -1)
	if len(matches) == 0 {
		return nil
	}
	var seen [3]bool
	words := make([]Word, 0, 3)
	for _, m := range matches {
		axis := upperAxis(m[1][0])
		i := axisIndex(axis)
		if i < 0 || seen[i] {
			continue
		}
		v, err := strconv.ParseFloat(m[2], 64)
		if err != nil {
			// opaque by contract, never an error
			continue
		}
		seen[i] = true
		words = append(words, Word{W: axis, Arg: v})
	}
	return words
}

func matchMotion(s string) Motion {
	for _, r := range motionRules {
		if r.rx.MatchString(s) {
			return r.m
		}
	}
	return MotionUnset
}

// IsToolChange reports whether a line carries a tool number immediately
// followed by a tool-change mnemonic (T3M6, T12M06).
func IsToolChange(s string) bool {
	return rxToolChange.MatchString(s)
}

func removeAxisWord(s string, axis byte) string {
	rx, ok := axisRemove[upperAxis(axis)]
	if !ok {
		return s
	}
	return rx.ReplaceAllString(s, "")
}

// compactTokens strips whitespace between command tokens. A trailing
// parenthesized or semicolon comment is left verbatim.
func compactTokens(s string) string {
	end := len(s)
	if i := strings.IndexAny(s, "(;"); i >= 0 {
		end = i
	}
	head := strings.Join(strings.Fields(s[:end]), "")
	return head + s[end:]
}

func upperAxis(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - 'a' + 'A'
	}
	return b
}

func axisIndex(b byte) int {
	switch b {
	case 'X':
		return 0
	case 'Y':
		return 1
	case 'Z':
		return 2
	}
	return -1
}
