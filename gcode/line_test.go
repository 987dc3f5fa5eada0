package gcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeMnemonics(t *testing.T) {
	cases := []struct {
		in      string
		out     string
		changed bool
	}{
		{"N10G0X0Y0", "N10G00X0Y0", true},
		{"G1X10F300", "G01X10F300", true},
		{"G2X1Y1I0.5", "G02X1Y1I0.5", true},
		{"G3", "G03", true},
		{"G0", "G00", true},
		{"G00X1", "G00X1", false},
		{"G01", "G01", false},
		{"G10L2P1", "G10L2P1", false},
		{"G17G21G90", "G17G21G90", false},
		{"G90", "G90", false},
		{"M30", "M30", false},
	}
	for _, c := range cases {
		out, changed := CanonicalizeMnemonics(c.in)
		assert.Equal(t, c.out, out, c.in)
		assert.Equal(t, c.changed, changed, c.in)
	}
}

func TestScanLine(t *testing.T) {
	ln := ScanLine("")
	assert.Equal(t, LineBlank, ln.Class)

	ln = ScanLine("   ")
	assert.Equal(t, LineBlank, ln.Class)

	ln = ScanLine("(tool list: T3 flat endmill)")
	assert.Equal(t, LineComment, ln.Class)

	ln = ScanLine("; grbl style comment")
	assert.Equal(t, LineComment, ln.Class)

	ln = ScanLine("N20 G1 X10 Y0 F300")
	assert.Equal(t, LineMotion, ln.Class)
	assert.Equal(t, "N20", ln.Number)
	assert.Equal(t, MotionLinear, ln.Motion)
	assert.True(t, ln.HasG)
	assert.Equal(t, []Word{{W: 'X', Arg: 10}, {W: 'Y', Arg: 0}}, ln.Axes)

	ln = ScanLine("X5.5")
	assert.Equal(t, LineMotion, ln.Class)
	assert.Equal(t, MotionUnset, ln.Motion)
	assert.False(t, ln.HasG)

	ln = ScanLine("M05")
	assert.Equal(t, LineOpaque, ln.Class)

	// G10 must never be read as G1
	ln = ScanLine("G10L2P1")
	assert.Equal(t, MotionUnset, ln.Motion)
}

func TestExtractAxes(t *testing.T) {
	assert.Equal(t, []Word{
		{W: 'X', Arg: 1.5},
		{W: 'Y', Arg: -2},
		{W: 'Z', Arg: 0.25},
	}, ExtractAxes("G01X1.5Y-2Z+0.25"))

	assert.Equal(t, []Word{{W: 'X', Arg: 5}}, ExtractAxes("x5"))

	// first occurrence wins per axis
	assert.Equal(t, []Word{{W: 'X', Arg: 1}}, ExtractAxes("X1X2"))

	assert.Nil(t, ExtractAxes("G17G21"))
}

func TestIsToolChange(t *testing.T) {
	assert.True(t, IsToolChange("T3M6"))
	assert.True(t, IsToolChange("T12M06"))
	assert.True(t, IsToolChange("N50T3M6X1"))
	assert.False(t, IsToolChange("T3M60"))
	assert.False(t, IsToolChange("M6"))
	assert.False(t, IsToolChange("G01X5"))
}

func TestWord(t *testing.T) {
	assert.Equal(t, "X10", Word{W: 'X', Arg: 10}.String())
	assert.Equal(t, "Z-2.5", Word{W: 'Z', Arg: -2.5}.String())
	assert.True(t, Word{W: 'Y', Arg: 1}.IsAxis())
	assert.False(t, Word{W: 'F', Arg: 300}.IsAxis())
}

func TestCompactTokens(t *testing.T) {
	assert.Equal(t, "N10G00X0Y0", compactTokens("N10 G00 X0 Y0"))
	assert.Equal(t, "G01X5(ramp in)", compactTokens("G01 X5 (ramp in)"))
	assert.Equal(t, "M30", compactTokens("M30"))
}
