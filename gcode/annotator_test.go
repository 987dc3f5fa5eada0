package gcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnnotator_AxisFlags(t *testing.T) {
	p := Program{Lines: []string{"G01X5.0Z-2.0"}, Normalized: true}

	out, st := Annotator{}.Run(p)
	assert.Equal(t, []string{
		"#600 = 1",
		"#601 = 1",
		"#602 = 0",
		"#603 = 1",
		"M150",
		"G01X5.0Z-2.0",
	}, out.Lines)
	assert.Equal(t, 1, st.SafetyBlocks)
}

func TestAnnotator_MotionCodes(t *testing.T) {
	p := Program{Lines: []string{
		"G00X0Y0", // rapid: never annotated
		"G01X10",
		"G02X20Y10I10J0",
		"G03X0Y0I-10J0",
	}, Normalized: true}

	out, st := Annotator{}.Run(p)
	assert.Equal(t, 3, st.SafetyBlocks)
	assert.Equal(t, 4, st.Lines)

	require.Len(t, out.Lines, 19)
	assert.Equal(t, "G00X0Y0", out.Lines[0])
	assert.Equal(t, "#600 = 1", out.Lines[1])
	assert.Equal(t, "#600 = 2", out.Lines[7])
	assert.Equal(t, "#600 = 3", out.Lines[13])
}

func TestAnnotator_BlockPrecedesLine(t *testing.T) {
	p := Program{Lines: []string{
		"(start)",
		"G01X1",
		"",
		"G02X2Y2I1J0",
	}, Normalized: true}

	out, _ := Annotator{}.Run(p)

	// every M150 is immediately followed by the line it describes
	for i, ln := range out.Lines {
		if ln != safetyCheck {
			continue
		}
		require.Less(t, i+1, len(out.Lines))
		assert.NotEqual(t, 0, motionCode(out.Lines[i+1]))
	}
}

func TestAnnotator_ShortFormAndLineNumbers(t *testing.T) {
	// non-normalized input still works; short mnemonics are recognized
	p := ParseProgram("N20 G1 X10 Y0 F300\n")

	out, st := Annotator{}.Run(p)
	assert.Equal(t, 1, st.SafetyBlocks)
	assert.Equal(t, []string{
		"#600 = 1",
		"#601 = 1",
		"#602 = 1",
		"#603 = 0",
		"M150",
		"N20 G1 X10 Y0 F300",
	}, out.Lines)
}

func TestAnnotator_PassThrough(t *testing.T) {
	p := Program{Lines: []string{
		"(G01 in a comment-only line is ignored)",
		"",
		"G00X5",
		"G17G21",
		"M30",
	}, Normalized: true}

	out, st := Annotator{}.Run(p)
	assert.Equal(t, p.Lines, out.Lines)
	assert.Equal(t, 0, st.SafetyBlocks)
}

func TestAnnotator_G17NotLinear(t *testing.T) {
	p := Program{Lines: []string{"G17X1Y1"}, Normalized: true}
	out, st := Annotator{}.Run(p)
	assert.Equal(t, 0, st.SafetyBlocks)
	assert.Equal(t, p.Lines, out.Lines)
}
