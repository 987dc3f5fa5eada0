package gcode

import (
	"fmt"
	"log"
)

// Safety directive contract with the machine controller. The variable
// numbers and the M150 check are fixed; the controller reads #600-#603
// before executing the line that follows.
const (
	varMotionMode = "#600"
	varFlagX      = "#601"
	varFlagY      = "#602"
	varFlagZ      = "#603"
	safetyCheck   = "M150"
)

// AnnotateStats reports what an annotation pass did.
type AnnotateStats struct {
	Lines        int
	SafetyBlocks int
}

// Annotator injects a safety block before every linear or circular
// motion line. Rapid (G00) motion is deliberately not annotated.
type Annotator struct{}

// motionCode returns the safety motion-mode code for a line, or 0 when
// the line is not a recognized cutting/arc motion command.
func motionCode(line string) int {
	return safetyCode(matchMotion(line))
}

func safetyCode(m Motion) int {
	switch m {
	case MotionLinear:
		return 1
	case MotionArcCW:
		return 2
	case MotionArcCCW:
		return 3
	}
	return 0
}

// Run inserts safety blocks. Axis flags are read from each line as
// given: on a normalized program a removed (redundant) axis reads 0,
// which is exactly what the controller should see.
func (a Annotator) Run(p Program) (Program, AnnotateStats) {
	if !p.Normalized {
		log.Println("annotating a program that was not normalized; axis flags reflect the text as given")
	}

	out := Program{
		Lines:        make([]string, 0, len(p.Lines)),
		FinalNewline: p.FinalNewline,
		Normalized:   p.Normalized,
	}

	var st AnnotateStats
	for _, raw := range p.Lines {
		st.Lines++

		ln := ScanLine(raw)
		if ln.Class != LineMotion {
			out.Lines = append(out.Lines, raw)
			continue
		}

		code := safetyCode(ln.Motion)
		if code == 0 {
			out.Lines = append(out.Lines, raw)
			continue
		}

		out.Lines = append(out.Lines, safetyBlock(code, ln.Axes)...)
		out.Lines = append(out.Lines, raw)
		st.SafetyBlocks++
	}

	return out, st
}

func safetyBlock(code int, axes []Word) []string {
	var flags [3]int
	for _, w := range axes {
		if w.IsAxis() {
			flags[axisIndex(w.W)] = 1
		}
	}
	return []string{
		fmt.Sprintf("%s = %d", varMotionMode, code),
		fmt.Sprintf("%s = %d", varFlagX, flags[0]),
		fmt.Sprintf("%s = %d", varFlagY, flags[1]),
		fmt.Sprintf("%s = %d", varFlagZ, flags[2]),
		safetyCheck,
	}
}
